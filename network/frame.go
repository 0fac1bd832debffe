package network

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/geometry-fighter/engine"
)

// Frame is one HUD update on the spectator feed, sent as a binary msgpack message
type Frame struct {
	Seq       uint64 `msgpack:"seq"`
	SessionID string `msgpack:"session_id"`
	Score     int    `msgpack:"score"`
	Lives     int    `msgpack:"lives"`
	Best      int    `msgpack:"best"`
	Objects   int    `msgpack:"objects"`
	Over      bool   `msgpack:"over"`
	Paused    bool   `msgpack:"paused"`
}

// FrameFromHUD copies the broadcast fields of h, the tick counter is not part of a frame
func FrameFromHUD(h engine.HUD) Frame {
	return Frame{
		SessionID: h.SessionID,
		Score:     h.Score,
		Lives:     h.Lives,
		Best:      h.Best,
		Objects:   h.Objects,
		Over:      h.Over,
		Paused:    h.Paused,
	}
}

// Encode serializes the frame
func (f *Frame) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses a frame received from the feed
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}
