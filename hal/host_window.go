//go:build !tinygo && cgo

package hal

import (
	"image"
	"os"

	"cydgui/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	TPS   int
}

// RunWindow opens a desktop window that shows the panel and feeds the left mouse
// button (or the first touch) into the virtual touch sensor. It blocks until the
// window closes.
func RunWindow(newApp NewAppFunc, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 200
	}

	h := NewHost(240, 320, os.Stdout)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("cydgui (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.panel.width*cfg.Scale, h.panel.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *Host
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []uint16
	shown   uint64
	step    StepFunc
}

func (g *hostGame) Update() error {
	g.pollPointer()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) pollPointer() {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		g.h.touch.Press(int16(x), int16(y))
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.h.touch.Press(int16(x), int16(y))
		return
	}
	g.h.touch.Release()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	if g.img == nil || g.img.Bounds().Dx() != p.width || g.img.Bounds().Dy() != p.height {
		g.img = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
		g.scratch = make([]uint16, p.width*p.height)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(p.width, p.height)
		g.shown = ^uint64(0)
	}

	if v := p.Version(); v != g.shown {
		g.shown = p.Snapshot(g.scratch)
		dst := g.img.Pix
		for i, px := range g.scratch {
			r, gg, b := RGB888(px)
			j := i * 4
			dst[j+0] = r
			dst[j+1] = gg
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.width, g.h.panel.height
}
