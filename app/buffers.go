package app

import (
	"errors"
	"fmt"

	"cydgui/hal"
)

var ErrBufferAlloc = errors.New("frame buffer allocation failed")

// FramePair is the two strip buffers the renderer draws into. They are
// allocated once and never resized or freed.
type FramePair struct {
	A, B []uint16
}

// Pixels is the capacity of one buffer.
func (f FramePair) Pixels() int { return len(f.A) }

func allocFramePair(d hal.Display, pixels int) (FramePair, error) {
	a, err := d.AllocFrame(pixels)
	if err != nil {
		return FramePair{}, fmt.Errorf("first buffer (%d px): %w: %w", pixels, ErrBufferAlloc, err)
	}
	b, err := d.AllocFrame(pixels)
	if err != nil {
		return FramePair{}, fmt.Errorf("second buffer (%d px): %w: %w", pixels, ErrBufferAlloc, err)
	}
	if len(a) != pixels || len(b) != pixels {
		return FramePair{}, fmt.Errorf("got %d and %d px, want %d: %w", len(a), len(b), pixels, ErrBufferAlloc)
	}
	return FramePair{A: a, B: b}, nil
}
