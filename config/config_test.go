package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	sc := cfg.SpawnConfig()
	if sc.BadColor != core.RGBRed || len(sc.Palette) != 8 {
		t.Errorf("unexpected spawn config %+v", sc)
	}
	if sc.IntervalMin != parameter.SpawnIntervalMin || sc.IntervalMax != parameter.SpawnIntervalMax {
		t.Errorf("unexpected interval %v..%v", sc.IntervalMin, sc.IntervalMax)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 42
lives = 5
game_over = false

[spawn]
interval_min = "100ms"
interval_max = "2s"
palette = ["#ff0000", "#00ff00"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 42 || cfg.Lives != 5 || cfg.GameOver {
		t.Errorf("top-level keys not applied: %+v", cfg)
	}
	if cfg.Spawn.IntervalMin != 100*time.Millisecond || cfg.Spawn.IntervalMax != 2*time.Second {
		t.Errorf("durations not decoded: %v %v", cfg.Spawn.IntervalMin, cfg.Spawn.IntervalMax)
	}
	if cfg.Spawn.UpMax != parameter.ImpulseUpMax {
		t.Errorf("unset keys should keep defaults, up_max=%v", cfg.Spawn.UpMax)
	}
	if len(cfg.SpawnConfig().Palette) != 2 {
		t.Errorf("expected 2 palette colors")
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "livez = 3\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "livez") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Spawn.IntervalMin = 0 }},
		{"inverted interval", func(c *Config) { c.Spawn.IntervalMax = c.Spawn.IntervalMin - 1 }},
		{"negative lateral", func(c *Config) { c.Spawn.LateralMax = -1 }},
		{"inverted up", func(c *Config) { c.Spawn.UpMin = 20 }},
		{"zero up", func(c *Config) { c.Spawn.UpMin = 0 }},
		{"negative up", func(c *Config) { c.Spawn.UpMin, c.Spawn.UpMax = -5, 5 }},
		{"up not above lateral", func(c *Config) { c.Spawn.LateralMax = c.Spawn.UpMin }},
		{"no lives", func(c *Config) { c.Lives = 0 }},
		{"empty palette", func(c *Config) { c.Spawn.Palette = nil }},
		{"bad hex", func(c *Config) { c.Spawn.Palette = []string{"red"} }},
		{"bad color mode", func(c *Config) { c.ColorMode = "16" }},
		{"bad bad color", func(c *Config) { c.Spawn.BadColor = "#zz0000" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFromArgsPrecedence(t *testing.T) {
	path := writeConfig(t, "lives = 7\nseed = 1\nmute = true\n")

	cfg, err := FromArgs("test", []string{"-config", path, "-seed", "99", "-no-game-over"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lives != 7 {
		t.Errorf("file value should apply when no flag is given, lives=%d", cfg.Lives)
	}
	if cfg.Seed != 99 {
		t.Errorf("flag should override file, seed=%d", cfg.Seed)
	}
	if !cfg.Mute || cfg.GameOver {
		t.Errorf("expected mute from file and game over disabled by flag: %+v", cfg)
	}
}

func TestFromArgsErrors(t *testing.T) {
	if _, err := FromArgs("test", []string{"-lives", "0"}, io.Discard); err == nil {
		t.Error("expected validation error for zero lives")
	}
	if _, err := FromArgs("test", []string{"-nope"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
	if _, err := FromArgs("test", []string{"-config", "/does/not/exist.toml"}, io.Discard); err == nil {
		t.Error("expected error for missing config file")
	}
}
