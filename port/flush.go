// Package port binds the renderer to the HAL: drawn strips go out through a
// PixelSink and pointer samples come in through a TouchSource.
package port

import (
	"errors"
	"fmt"

	"cydgui/gui"
	"cydgui/hal"
)

var ErrTransport = errors.New("panel transport fault")

// Readier is notified once a flushed buffer may be reused.
type Readier interface {
	FlushReady()
}

// PixelSink copies rendered strips to the panel transport. Once a push
// fails the fault is latched: readiness is withheld, so the renderer stalls,
// and every later flush is refused without touching the transport.
type PixelSink struct {
	t   hal.Transport
	log hal.Logger

	err     error
	flushes uint64
}

func NewPixelSink(t hal.Transport, log hal.Logger) *PixelSink {
	return &PixelSink{t: t, log: log}
}

// Flush is the renderer's flush callback.
func (s *PixelSink) Flush(d *gui.Display, area gui.Area, px []uint16) {
	_ = s.Deliver(area, px, d)
}

// Deliver writes px into area and signals done as its last action. On error
// done is not called.
func (s *PixelSink) Deliver(area gui.Area, px []uint16, done Readier) error {
	if s.err != nil {
		return s.err
	}
	w, h := area.Width(), area.Height()
	if w <= 0 || h <= 0 || len(px) < int(w)*int(h) {
		return s.fail(fmt.Errorf("region %dx%d with %d pixels: %w", w, h, len(px), ErrTransport))
	}

	s.t.BeginWrite()
	s.t.SetAddrWindow(area.X1, area.Y1, w, h)
	err := s.t.PushPixels(px[:int(w)*int(h)])
	s.t.EndWrite()
	if err != nil {
		return s.fail(fmt.Errorf("push %dx%d at (%d,%d): %w: %w", w, h, area.X1, area.Y1, ErrTransport, err))
	}

	s.flushes++
	done.FlushReady()
	return nil
}

func (s *PixelSink) fail(err error) error {
	s.err = err
	if s.log != nil {
		s.log.WriteLineString("port: " + err.Error())
	}
	return err
}

// Err returns the latched transport fault, if any.
func (s *PixelSink) Err() error { return s.err }

// Flushes counts regions delivered successfully.
func (s *PixelSink) Flushes() uint64 { return s.flushes }
