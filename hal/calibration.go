package hal

import "fmt"

// Calibration holds the five touch calibration words used by XPT2046 boards:
// X origin, X span, Y origin, Y span and a flags word.
//
// Flags: bit 0 swaps the raw axes, bit 1 inverts X, bit 2 inverts Y.
type Calibration [5]uint16

const (
	CalRotate  = 0x01
	CalInvertX = 0x02
	CalInvertY = 0x04
)

// IdentityCalibration maps a 0..w, 0..h raw range onto itself.
func IdentityCalibration(w, h int) Calibration {
	return Calibration{0, uint16(w), 0, uint16(h), 0}
}

func (c Calibration) String() string {
	return fmt.Sprintf("x0=%d xs=%d y0=%d ys=%d flags=%#x", c[0], c[1], c[2], c[3], c[4])
}

// Map converts a raw sensor reading into display pixels for a w x h panel.
// Results are not clamped; readings outside the calibrated range land outside
// the panel and are ignored by hit testing.
func (c Calibration) Map(rawX, rawY, w, h int) (x, y int) {
	x0, xs := int(c[0]), int(c[1])
	y0, ys := int(c[2]), int(c[3])
	if xs == 0 {
		xs = 1
	}
	if ys == 0 {
		ys = 1
	}
	if c[4]&CalRotate != 0 {
		rawX, rawY = rawY, rawX
	}
	x = (rawX - x0) * w / xs
	y = (rawY - y0) * h / ys
	if c[4]&CalInvertX != 0 {
		x = w - x
	}
	if c[4]&CalInvertY != 0 {
		y = h - y
	}
	return x, y
}
