package gui

import (
	"errors"
	"fmt"
)

var ErrDrawBuf = errors.New("invalid draw buffer")

// DrawBuf lends one or two strip buffers to a Display. The caller keeps
// ownership; the renderer composes only into a buffer that is not being flushed.
type DrawBuf struct {
	bufs   [2][]uint16
	double bool
	size   int

	act      int
	flushing bool
	flushIdx int
}

// NewDrawBuf wraps buf1 and optional buf2 (nil for single buffering). Both must
// have the same non-zero length.
func NewDrawBuf(buf1, buf2 []uint16) (*DrawBuf, error) {
	if len(buf1) == 0 {
		return nil, fmt.Errorf("first buffer empty: %w", ErrDrawBuf)
	}
	b := &DrawBuf{size: len(buf1)}
	b.bufs[0] = buf1
	if buf2 != nil {
		if len(buf2) != len(buf1) {
			return nil, fmt.Errorf("buffer sizes differ (%d, %d): %w", len(buf1), len(buf2), ErrDrawBuf)
		}
		b.bufs[1] = buf2
		b.double = true
	}
	return b, nil
}

// Size is the pixel capacity of one buffer.
func (b *DrawBuf) Size() int { return b.size }

// Flushing reports whether a flush is waiting for FlushReady, and which buffer
// it holds.
func (b *DrawBuf) Flushing() (idx int, ok bool) { return b.flushIdx, b.flushing }

// free returns the buffer the next strip may be composed into, or -1.
func (b *DrawBuf) free() int {
	if !b.flushing {
		return b.act
	}
	if b.double {
		return 1 - b.flushIdx
	}
	return -1
}

func (b *DrawBuf) startFlush(idx int) {
	b.flushing = true
	b.flushIdx = idx
	if b.double {
		b.act = 1 - idx
	}
}
