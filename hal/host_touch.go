//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// VirtualTouch is a host touch sensor fed by the window/terminal mouse or by tests.
// Points are reported in display pixels; calibration is recorded but not applied.
type VirtualTouch struct {
	mu      sync.Mutex
	touched bool
	x, y    int16

	cal     Calibration
	calSets int
	queries int
}

func (t *VirtualTouch) Press(x, y int16) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touched = true
	t.x, t.y = x, y
}

func (t *VirtualTouch) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touched = false
}

func (t *VirtualTouch) SetCalibration(c Calibration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cal = c
	t.calSets++
}

func (t *VirtualTouch) GetTouch(time.Duration) (x, y int16, touched bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queries++
	if !t.touched {
		return 0, 0, false
	}
	return t.x, t.y, true
}

// Calibration returns the installed calibration and how many times it was set.
func (t *VirtualTouch) Calibration() (Calibration, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cal, t.calSets
}

// Queries returns the number of GetTouch calls so far.
func (t *VirtualTouch) Queries() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.queries
}
