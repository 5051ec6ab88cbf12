package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction (backlight enable on the panel boards).
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrFrameSize      = errors.New("invalid frame size")
	ErrWindow         = errors.New("address window outside panel")
)

// Transport is the panel's pixel sink: an addressable window followed by a bulk
// write of w*h RGB565 pixels.
//
// PushPixels returns once the data has been queued or sent; the caller may reuse
// px after it returns.
type Transport interface {
	BeginWrite()
	SetAddrWindow(x, y, w, h int16)
	PushPixels(px []uint16) error
	EndWrite()
}

// Display describes the attached panel.
type Display interface {
	Width() int
	Height() int
	Transport() Transport

	// AllocFrame returns a pixel buffer usable for bulk transfer. It is meant to be
	// called once per buffer at startup; the buffer lives for the process lifetime.
	AllocFrame(pixels int) ([]uint16, error)
}

// TouchSensor is a single-point touch controller.
type TouchSensor interface {
	// SetCalibration installs the raw-to-pixel mapping. Called once at setup.
	SetCalibration(c Calibration)

	// GetTouch samples the sensor. It never blocks longer than timeout.
	// Coordinates are in display pixels.
	GetTouch(timeout time.Duration) (x, y int16, touched bool)
}

// HAL provides the only contact point between the GUI and the outside world.
type HAL interface {
	Logger() Logger
	Backlight() LED
	Display() Display
	Touch() TouchSensor
}

// StepFunc runs one scheduler tick.
type StepFunc func() error

// NewAppFunc performs one-time setup against a HAL and returns the tick function.
type NewAppFunc func(HAL) (StepFunc, error)
