package hal

import (
	"time"

	"tinygo.org/x/drivers/touch"
)

// touchPanel is the part of a resistive controller the sampler needs.
type touchPanel interface {
	touch.Pointer
	Touched() bool
}

const (
	touchMinPressure = 16
	// touchSamples bounds one query to a re-sample, so a light touch costs
	// two conversions rather than the whole timeout.
	touchSamples     = 2
)

// sampleTouch reads dev at most touchSamples times, stopping early once the
// timeout has passed. Readings below touchMinPressure count as untouched.
func sampleTouch(dev touchPanel, cal Calibration, w, h int, timeout time.Duration) (x, y int16, touched bool) {
	deadline := time.Now().Add(timeout)
	for i := 0; i < touchSamples && dev.Touched(); i++ {
		p := dev.ReadTouchPoint()
		if p.Z >= touchMinPressure {
			// The driver scales to 16 bits and flips Y; undo both to get the
			// 12-bit readings the calibration words are expressed in.
			rawX := p.X >> 4
			rawY := 4096 - p.Y>>4
			mx, my := cal.Map(rawX, rawY, w, h)
			return int16(mx), int16(my), true
		}
		if !time.Now().Before(deadline) {
			break
		}
	}
	return 0, 0, false
}

// powerUpPanel holds the panel enable line low while configure brings the
// controller up, then releases it. The backlight is left to the caller.
func powerUpPanel(enable LED, configure func()) {
	enable.Low()
	configure()
	enable.High()
}
