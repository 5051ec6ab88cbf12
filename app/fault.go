package app

import (
	"fmt"
	"image/color"
	"strings"

	"cydgui/gui"
	"cydgui/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	faultLineHeight = 13
	faultAscent     = 10
)

var faultBackground = gui.Hex(0xB71C1C)

// showFault logs err and paints it on the panel, one text row per transfer.
// Setup may have failed with the backlight still off, so it is switched on
// first. Transport errors are ignored: the panel may be the thing that failed.
func showFault(h hal.HAL, err error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("app: fatal: %v", err))
	}
	if bl := h.Backlight(); bl != nil {
		bl.High()
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	w := disp.Width()
	row, aerr := disp.AllocFrame(w * faultLineHeight)
	if aerr != nil {
		return
	}

	font := &proggy.TinySZ8pt7b
	_, cw := tinyfont.LineWidth(font, "0")
	cols := w
	if cw > 0 {
		cols = w / int(cw)
	}

	lines := append([]string{"Fatal error:"}, faultLines(err.Error(), cols)...)

	t := disp.Transport()
	c := rowCanvas{px: row, w: int16(w)}
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for i := 0; (i+1)*faultLineHeight <= disp.Height(); i++ {
		c.clear(uint16(faultBackground))
		if i < len(lines) {
			tinyfont.WriteLine(&c, font, 2, faultAscent, lines[i], fg)
		}
		t.BeginWrite()
		t.SetAddrWindow(0, int16(i*faultLineHeight), int16(w), faultLineHeight)
		perr := t.PushPixels(row)
		t.EndWrite()
		if perr != nil {
			return
		}
	}
}

// rowCanvas is a single text row for tinyfont.
type rowCanvas struct {
	px []uint16
	w  int16
}

func (c *rowCanvas) clear(p uint16) {
	for i := range c.px {
		c.px[i] = p
	}
}

func (c *rowCanvas) Size() (x, y int16) { return c.w, faultLineHeight }

func (c *rowCanvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= faultLineHeight {
		return
	}
	c.px[int(y)*int(c.w)+int(x)] = uint16(gui.RGB(col.R, col.G, col.B))
}

func (c *rowCanvas) Display() error { return nil }

// faultLines breaks msg at each ": " of its wrap chain and hard-wraps every
// part to cols runes.
func faultLines(msg string, cols int) []string {
	cols = max(cols, 1)
	var out []string
	for _, part := range strings.Split(msg, ": ") {
		rs := []rune(strings.TrimSpace(part))
		for len(rs) > cols {
			out = append(out, string(rs[:cols]))
			rs = []rune(strings.TrimLeft(string(rs[cols:]), " "))
		}
		if len(rs) > 0 {
			out = append(out, string(rs))
		}
	}
	return out
}
