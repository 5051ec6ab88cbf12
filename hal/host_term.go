//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var errQuit = errors.New("quit")

// TermConfig controls the terminal runner.
type TermConfig struct {
	Hz int
}

// RunTerminal renders the panel into the terminal with half-block cells (two
// pixel rows per cell, downscaled to fit) and maps mouse button 1 to touch.
// Esc, q or Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp NewAppFunc, cfg TermConfig) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal mode requires a TTY on stdout")
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 200
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Logs would scribble over the screen.
	h := NewHost(240, 320, nil)
	step, err := newApp(h)
	if err != nil {
		screen.Fini()
		return err
	}

	tv := &termView{h: h, screen: screen, scratch: make([]uint16, h.panel.width*h.panel.height)}
	events := make(chan tcell.Event, 64)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer screen.Fini()
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case ev := <-events:
				if err := tv.handle(ev); err != nil {
					return err
				}
			case <-t.C:
				if err := step(); err != nil {
					return err
				}
				tv.draw()
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

type termView struct {
	h       *Host
	screen  tcell.Screen
	scratch []uint16
	shown   uint64
	scale   int
	valid   bool
}

func (v *termView) layout() {
	cols, rows := v.screen.Size()
	w, h := v.h.panel.width, v.h.panel.height
	scale := 1
	if cols > 0 {
		if s := (w + cols - 1) / cols; s > scale {
			scale = s
		}
	}
	if rows > 0 {
		if s := (h + 2*rows - 1) / (2 * rows); s > scale {
			scale = s
		}
	}
	v.scale = scale
}

func (v *termView) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return errQuit
		}
	case *tcell.EventResize:
		v.screen.Clear()
		v.valid = false
	case *tcell.EventMouse:
		if v.scale == 0 {
			v.layout()
		}
		cx, cy := ev.Position()
		if ev.Buttons()&tcell.Button1 == 0 {
			v.h.touch.Release()
			return nil
		}
		x := cx*v.scale + v.scale/2
		y := cy*2*v.scale + v.scale
		v.h.touch.Press(int16(x), int16(y))
	}
	return nil
}

func (v *termView) draw() {
	p := v.h.panel
	if v.valid && p.Version() == v.shown {
		return
	}
	v.layout()
	v.shown = p.Snapshot(v.scratch)
	v.valid = true

	s := v.scale
	for cy := 0; 2*cy*s < p.height; cy++ {
		for cx := 0; cx*s < p.width; cx++ {
			top := v.scratch[(2*cy*s)*p.width+cx*s]
			bottom := top
			if y := (2*cy + 1) * s; y < p.height {
				bottom = v.scratch[y*p.width+cx*s]
			}
			st := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bottom))
			v.screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
	v.screen.Show()
}

func termColor(px uint16) tcell.Color {
	r, g, b := RGB888(px)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
