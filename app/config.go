package app

import (
	"time"

	"cydgui/hal"
)

// Config holds the board and loop parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Width, Height int
	BufRows       int

	Tick         time.Duration
	TouchTimeout time.Duration
	Calibration  hal.Calibration

	// Seed feeds the generator for the initial chart and slider values.
	Seed int64
}

// DefaultConfig returns the ESP32-2432S028 settings.
func DefaultConfig() Config {
	return Config{
		Width:        240,
		Height:       320,
		BufRows:      40,
		Tick:         5 * time.Millisecond,
		TouchTimeout: 600 * time.Millisecond,
		Calibration:  hal.Calibration{405, 3238, 287, 3292, 2},
		Seed:         1,
	}
}
