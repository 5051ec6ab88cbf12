package gui

import (
	"errors"
	"fmt"
)

// Logger receives renderer diagnostics. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}

// FlushFunc sends px (area.Size() pixels, row-major) to the panel. It must call
// d.FlushReady exactly once when px may be reused; until then the renderer will
// not start another flush.
type FlushFunc func(d *Display, area Area, px []uint16)

// maxInvAreas bounds the invalid list; overflowing it invalidates the screen.
const maxInvAreas = 32

var ErrDisplayConfig = errors.New("invalid display config")

// DisplayConfig registers a panel with the renderer.
type DisplayConfig struct {
	HorRes int16
	VerRes int16
	Buf    *DrawBuf
	Flush  FlushFunc
	Logger Logger
}

// Stats counts renderer activity since creation.
type Stats struct {
	Ticks          uint64
	Flushes        uint64
	Readies        uint64
	DuplicateReady uint64
	Stalls         uint64
}

// Display is a registered panel: resolution, draw buffers, flush callback and
// the widget tree rooted at its screen.
type Display struct {
	hor, ver int16
	buf      *DrawBuf
	flushCB  FlushFunc
	log      Logger

	screen *Obj
	indev  *InputDevice

	inv []Area

	job      []Area
	row      int16
	composed bool
	compArea Area
	compIdx  int

	stats Stats
}

// NewDisplay validates cfg and creates the display with an empty screen.
func NewDisplay(cfg DisplayConfig) (*Display, error) {
	if cfg.HorRes <= 0 || cfg.VerRes <= 0 {
		return nil, fmt.Errorf("resolution %dx%d: %w", cfg.HorRes, cfg.VerRes, ErrDisplayConfig)
	}
	if cfg.Buf == nil {
		return nil, fmt.Errorf("no draw buffer: %w", ErrDisplayConfig)
	}
	if cfg.Buf.Size() < int(cfg.HorRes) {
		return nil, fmt.Errorf("draw buffer of %d px shorter than one %d px row: %w", cfg.Buf.Size(), cfg.HorRes, ErrDisplayConfig)
	}
	d := &Display{
		hor:     cfg.HorRes,
		ver:     cfg.VerRes,
		buf:     cfg.Buf,
		flushCB: cfg.Flush,
		log:     cfg.Logger,
	}
	d.screen = newScreen(d)
	d.screen.Invalidate()
	return d, nil
}

func (d *Display) HorRes() int16  { return d.hor }
func (d *Display) VerRes() int16  { return d.ver }
func (d *Display) Screen() *Obj   { return d.screen }
func (d *Display) Stats() Stats   { return d.stats }
func (d *Display) Area() Area     { return Area{X2: d.hor - 1, Y2: d.ver - 1} }
func (d *Display) Flushing() bool { return d.buf.flushing }

// Pending reports whether any invalid area is still waiting to be drawn or flushed.
func (d *Display) Pending() bool {
	return len(d.inv) > 0 || len(d.job) > 0 || d.composed || d.buf.flushing
}

func (d *Display) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString("gui: " + fmt.Sprintf(format, args...))
}

// FlushReady acknowledges the flush in progress. Calls without a flush in
// progress are counted and ignored.
func (d *Display) FlushReady() {
	if !d.buf.flushing {
		d.stats.DuplicateReady++
		d.logf("flush ready without pending flush (%d)", d.stats.DuplicateReady)
		return
	}
	d.buf.flushing = false
	d.stats.Readies++
}

// Invalidate marks a rectangle for redraw.
func (d *Display) Invalidate(a Area) {
	a, ok := a.Intersect(d.Area())
	if !ok {
		return
	}
	for _, cur := range d.inv {
		if cur.Covers(a) {
			return
		}
	}
	if len(d.inv) >= maxInvAreas {
		d.inv = append(d.inv[:0], d.Area())
		return
	}
	d.inv = append(d.inv, a)
}

// TimerHandler runs one slice of renderer work: the input device is read once,
// its events are dispatched, then invalid areas are drawn and flushed until
// done or until a flush is still in flight.
func (d *Display) TimerHandler() {
	d.stats.Ticks++
	if d.indev != nil {
		d.indev.process()
	}
	d.refresh()
}

func (d *Display) refresh() {
	for {
		if d.composed {
			if d.buf.flushing {
				d.stats.Stalls++
				return
			}
			d.flushComposed()
			continue
		}

		idx := d.buf.free()
		if idx < 0 {
			d.stats.Stalls++
			return
		}
		strip, ok := d.nextStrip()
		if !ok {
			return
		}
		d.compose(strip, idx)
	}
}

func (d *Display) nextStrip() (Area, bool) {
	if len(d.job) == 0 {
		if len(d.inv) == 0 {
			return Area{}, false
		}
		d.job = joinAreas(d.inv)
		d.inv = d.inv[:0]
		d.row = d.job[0].Y1
	}

	a := d.job[0]
	rows := int16(d.buf.size / int(a.Width()))
	y2 := min16(d.row+rows-1, a.Y2)
	strip := Area{X1: a.X1, Y1: d.row, X2: a.X2, Y2: y2}

	if y2 >= a.Y2 {
		d.job = d.job[1:]
		if len(d.job) > 0 {
			d.row = d.job[0].Y1
		}
	} else {
		d.row = y2 + 1
	}
	return strip, true
}

func (d *Display) compose(strip Area, idx int) {
	if i, ok := d.buf.Flushing(); ok && i == idx {
		panic("gui: compose into a buffer that is being flushed")
	}
	px := d.buf.bufs[idx][:strip.Size()]
	c := newCanvas(px, strip)
	d.screen.render(c, strip)

	d.composed = true
	d.compArea = strip
	d.compIdx = idx
}

func (d *Display) flushComposed() {
	d.composed = false
	d.buf.startFlush(d.compIdx)
	d.stats.Flushes++

	px := d.buf.bufs[d.compIdx][:d.compArea.Size()]
	if d.flushCB == nil {
		d.FlushReady()
		return
	}
	d.flushCB(d, d.compArea, px)
}

// joinAreas merges areas whose bounding box is no larger than the two parts.
func joinAreas(in []Area) []Area {
	out := append([]Area(nil), in...)
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				u := out[i].Union(out[j])
				if u.Size() > out[i].Size()+out[j].Size() {
					continue
				}
				out[i] = u
				out = append(out[:j], out[j+1:]...)
				j--
				merged = true
			}
		}
	}
	return out
}
