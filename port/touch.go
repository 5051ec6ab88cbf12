package port

import (
	"time"

	"cydgui/gui"
	"cydgui/hal"
)

// TouchSample is a single sensor query result.
type TouchSample struct {
	Pressed bool
	X, Y    int16
}

// Released is the sample reported when nothing touches the panel.
var Released = TouchSample{}

// Pressed returns a touched sample at x, y.
func Pressed(x, y int16) TouchSample { return TouchSample{Pressed: true, X: x, Y: y} }

// TouchSource answers the renderer's input reads from a touch sensor. It keeps
// no state between reads.
type TouchSource struct {
	sensor  hal.TouchSensor
	timeout time.Duration
}

// NewTouchSource installs cal on sensor and returns the source. Each query
// waits at most timeout.
func NewTouchSource(sensor hal.TouchSensor, cal hal.Calibration, timeout time.Duration) *TouchSource {
	sensor.SetCalibration(cal)
	return &TouchSource{sensor: sensor, timeout: timeout}
}

// Poll queries the sensor once.
func (s *TouchSource) Poll() TouchSample {
	x, y, ok := s.sensor.GetTouch(s.timeout)
	if !ok {
		return Released
	}
	return Pressed(x, y)
}

// Read is the renderer's input callback.
func (s *TouchSource) Read() gui.InputState {
	p := s.Poll()
	return gui.InputState{Pressed: p.Pressed, X: p.X, Y: p.Y}
}
