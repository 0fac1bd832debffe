// Package config loads game settings from defaults, an optional TOML file and command line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/system"
)

// Color modes for the terminal frontend
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

// Config is the complete runtime configuration
type Config struct {
	// Seed for all gameplay randomness, 0 seeds from the clock
	Seed uint64 `toml:"seed"`
	// Lives at session start
	Lives int `toml:"lives"`
	// GameOver ends the session when lives reach zero
	GameOver bool `toml:"game_over"`
	Mute     bool `toml:"mute"`
	Debug    bool `toml:"debug"`
	// FeedAddr is the spectator websocket listen address, empty disables the feed
	FeedAddr string `toml:"feed_addr"`
	// ScoresPath is the session history database, empty disables persistence
	ScoresPath string `toml:"scores_path"`
	ColorMode  string `toml:"color_mode"`

	Spawn Spawn `toml:"spawn"`
}

// Spawn holds spawner and cleanup tuning
type Spawn struct {
	IntervalMin time.Duration `toml:"interval_min"`
	IntervalMax time.Duration `toml:"interval_max"`
	LateralMax  float64       `toml:"lateral_max"`
	UpMin       float64       `toml:"up_min"`
	UpMax       float64       `toml:"up_max"`
	FloorY      float64       `toml:"floor_y"`
	// BadColor and Palette are #rrggbb strings
	BadColor string   `toml:"bad_color"`
	Palette  []string `toml:"palette"`
}

// Default returns the stock configuration
func Default() Config {
	palette := make([]string, len(system.DefaultPalette))
	for i, c := range system.DefaultPalette {
		palette[i] = c.Hex()
	}
	return Config{
		Lives:      parameter.InitialLives,
		GameOver:   true,
		ScoresPath: "data/scores.db",
		ColorMode:  ColorAuto,
		Spawn: Spawn{
			IntervalMin: parameter.SpawnIntervalMin,
			IntervalMax: parameter.SpawnIntervalMax,
			LateralMax:  parameter.ImpulseLateralMax,
			UpMin:       parameter.ImpulseUpMin,
			UpMax:       parameter.ImpulseUpMax,
			FloorY:      parameter.CleanupFloorY,
			BadColor:    core.RGBRed.Hex(),
			Palette:     palette,
		},
	}
}

// Load decodes the TOML file at path over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	s := c.Spawn
	switch {
	case s.IntervalMin <= 0:
		return errors.New("spawn.interval_min must be positive")
	case s.IntervalMax < s.IntervalMin:
		return fmt.Errorf("spawn.interval_max %v is below interval_min %v", s.IntervalMax, s.IntervalMin)
	case s.LateralMax < 0:
		return errors.New("spawn.lateral_max must not be negative")
	case s.UpMin <= 0:
		return errors.New("spawn.up_min must be positive")
	case s.UpMin <= s.LateralMax:
		return fmt.Errorf("spawn.up_min %v must exceed lateral_max %v", s.UpMin, s.LateralMax)
	case s.UpMax < s.UpMin:
		return fmt.Errorf("spawn.up_max %v is below up_min %v", s.UpMax, s.UpMin)
	case c.Lives < 1:
		return errors.New("lives must be at least 1")
	case len(s.Palette) == 0:
		return errors.New("spawn.palette must not be empty")
	}
	switch c.ColorMode {
	case ColorAuto, Color256, ColorTrueColor:
	default:
		return fmt.Errorf("color_mode %q: want auto, 256 or truecolor", c.ColorMode)
	}
	if _, err := core.ParseHex(s.BadColor); err != nil {
		return fmt.Errorf("spawn.bad_color: %w", err)
	}
	for _, hex := range s.Palette {
		if _, err := core.ParseHex(hex); err != nil {
			return fmt.Errorf("spawn.palette: %w", err)
		}
	}
	return nil
}

// SpawnConfig converts the spawn section, call after Validate
func (c Config) SpawnConfig() system.SpawnConfig {
	out := system.SpawnConfig{
		IntervalMin: c.Spawn.IntervalMin,
		IntervalMax: c.Spawn.IntervalMax,
		LateralMax:  c.Spawn.LateralMax,
		UpMin:       c.Spawn.UpMin,
		UpMax:       c.Spawn.UpMax,
	}
	out.BadColor, _ = core.ParseHex(c.Spawn.BadColor)
	for _, hex := range c.Spawn.Palette {
		if rgb, err := core.ParseHex(hex); err == nil {
			out.Palette = append(out.Palette, rgb)
		}
	}
	return out
}

// FromArgs builds the configuration from command line args
// Flags override values from the -config file, which override defaults
func FromArgs(name string, args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	def := Default()
	var (
		path       = fs.String("config", "", "TOML config file")
		seed       = fs.Uint64("seed", def.Seed, "random seed, 0 seeds from the clock")
		lives      = fs.Int("lives", def.Lives, "lives at session start")
		noGameOver = fs.Bool("no-game-over", false, "keep playing when lives run out")
		mute       = fs.Bool("mute", def.Mute, "disable sound")
		debug      = fs.Bool("debug", def.Debug, "write a debug log to logs/")
		feed       = fs.String("feed", def.FeedAddr, "spectator websocket address, e.g. :8090")
		scores     = fs.String("scores", def.ScoresPath, "session history database, empty disables")
		color      = fs.String("color", def.ColorMode, "terminal colors: auto, 256 or truecolor")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	// Only flags given explicitly override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "lives":
			cfg.Lives = *lives
		case "no-game-over":
			cfg.GameOver = !*noGameOver
		case "mute":
			cfg.Mute = *mute
		case "debug":
			cfg.Debug = *debug
		case "feed":
			cfg.FeedAddr = *feed
		case "scores":
			cfg.ScoresPath = *scores
		case "color":
			cfg.ColorMode = *color
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
