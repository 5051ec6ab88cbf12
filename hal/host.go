//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Host is the desktop HAL: an in-memory panel, a virtual touch sensor and a
// stdout logger. The window, terminal and headless runners all drive one.
type Host struct {
	logger *hostLogger
	led    *hostLED
	panel  *MemPanel
	touch  *VirtualTouch
}

// New returns a host HAL with the CYD panel geometry (240x320).
func New() HAL {
	return NewHost(240, 320, os.Stdout)
}

// NewHost returns a host HAL for a w x h panel logging to w.
func NewHost(width, height int, log io.Writer) *Host {
	if log == nil {
		log = io.Discard
	}
	logger := &hostLogger{w: log}
	return &Host{
		logger: logger,
		led:    &hostLED{logger: logger},
		panel:  NewMemPanel(width, height),
		touch:  &VirtualTouch{},
	}
}

func (h *Host) Logger() Logger        { return h.logger }
func (h *Host) Backlight() LED        { return h.led }
func (h *Host) Display() Display      { return h.panel }
func (h *Host) Touch() TouchSensor    { return h.touch }
func (h *Host) Panel() *MemPanel      { return h.panel }
func (h *Host) Sensor() *VirtualTouch { return h.touch }

// BacklightOn reports the last level written to the backlight pin.
func (h *Host) BacklightOn() bool {
	h.led.mu.Lock()
	defer h.led.mu.Unlock()
	return h.led.on
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("backlight: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("backlight: LOW")
}
