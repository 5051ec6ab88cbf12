//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"sync"
)

var errNoSession = errors.New("pixel push outside write session")

// MemPanel is an in-memory RGB565 panel with LCD-style windowed writes. It is
// both the host Display and its Transport.
type MemPanel struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []uint16

	open   bool
	wx, wy int
	ww, wh int
	cursor int

	fault    error
	sessions int
	version  uint64
}

func NewMemPanel(width, height int) *MemPanel {
	return &MemPanel{
		width:  width,
		height: height,
		pix:    make([]uint16, width*height),
	}
}

func (p *MemPanel) Width() int           { return p.width }
func (p *MemPanel) Height() int          { return p.height }
func (p *MemPanel) Transport() Transport { return p }

func (p *MemPanel) AllocFrame(pixels int) ([]uint16, error) {
	if pixels <= 0 || pixels > p.width*p.height {
		return nil, fmt.Errorf("alloc %d pixels: %w", pixels, ErrFrameSize)
	}
	return make([]uint16, pixels), nil
}

func (p *MemPanel) BeginWrite() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = true
}

func (p *MemPanel) SetAddrWindow(x, y, w, h int16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wx, p.wy = int(x), int(y)
	p.ww, p.wh = int(w), int(h)
	p.cursor = 0
}

func (p *MemPanel) PushPixels(px []uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fault != nil {
		return p.fault
	}
	if !p.open {
		return errNoSession
	}
	if p.ww <= 0 || p.wh <= 0 || p.wx < 0 || p.wy < 0 || p.wx+p.ww > p.width || p.wy+p.wh > p.height {
		return fmt.Errorf("window %d,%d %dx%d: %w", p.wx, p.wy, p.ww, p.wh, ErrWindow)
	}

	total := p.ww * p.wh
	for _, c := range px {
		if p.cursor >= total {
			return fmt.Errorf("push of %d pixels overruns %dx%d window: %w", len(px), p.ww, p.wh, ErrWindow)
		}
		x := p.wx + p.cursor%p.ww
		y := p.wy + p.cursor/p.ww
		p.pix[y*p.width+x] = c
		p.cursor++
	}
	p.version++
	return nil
}

func (p *MemPanel) EndWrite() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.open {
		p.sessions++
	}
	p.open = false
}

// FailWith makes every following PushPixels return err. Passing nil clears it.
func (p *MemPanel) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fault = err
}

// Pixel returns the RGB565 value at x, y.
func (p *MemPanel) Pixel(x, y int) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return 0
	}
	return p.pix[y*p.width+x]
}

// Sessions returns the number of completed write sessions.
func (p *MemPanel) Sessions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessions
}

// Snapshot copies the panel into dst and returns the content version.
func (p *MemPanel) Snapshot(dst []uint16) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.pix)
	return p.version
}

// Version increases on every successful pixel push.
func (p *MemPanel) Version() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version
}
