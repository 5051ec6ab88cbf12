package gui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var font tinyfont.Fonter = &proggy.TinySZ8pt7b

const (
	fontHeight int16 = 13
	fontAscent int16 = 10
)

// TextWidth returns the advance of s in the UI font.
func TextWidth(s string) int16 {
	_, w := tinyfont.LineWidth(font, s)
	return int16(w)
}

// Canvas draws into one strip buffer. Every primitive is clipped to the
// current clip, which never exceeds the strip.
type Canvas struct {
	buf    []uint16
	area   Area
	stride int
	clip   Area
	ok     bool
}

func newCanvas(buf []uint16, area Area) *Canvas {
	return &Canvas{buf: buf, area: area, stride: int(area.Width()), clip: area, ok: true}
}

// SetClip restricts drawing to a within the strip. It reports whether anything
// remains drawable.
func (c *Canvas) SetClip(a Area) bool {
	c.clip, c.ok = a.Intersect(c.area)
	return c.ok
}

func (c *Canvas) Clip() Area { return c.clip }

func (c *Canvas) put(x, y int16, col Color) {
	c.buf[int(y-c.area.Y1)*c.stride+int(x-c.area.X1)] = uint16(col)
}

func (c *Canvas) hline(x1, x2, y int16, col Color) {
	if !c.ok || y < c.clip.Y1 || y > c.clip.Y2 {
		return
	}
	x1 = max16(x1, c.clip.X1)
	x2 = min16(x2, c.clip.X2)
	if x1 > x2 {
		return
	}
	row := int(y-c.area.Y1) * c.stride
	for x := x1; x <= x2; x++ {
		c.buf[row+int(x-c.area.X1)] = uint16(col)
	}
}

func (c *Canvas) FillRect(a Area, col Color) {
	r, ok := a.Intersect(c.clip)
	if !c.ok || !ok {
		return
	}
	for y := r.Y1; y <= r.Y2; y++ {
		c.hline(r.X1, r.X2, y, col)
	}
}

func (c *Canvas) FillRoundRect(a Area, radius int16, col Color) {
	r, ok := a.Intersect(c.clip)
	if !c.ok || !ok {
		return
	}
	for y := r.Y1; y <= r.Y2; y++ {
		x1, x2 := roundSpan(a, radius, y)
		c.hline(x1, x2, y, col)
	}
}

// StrokeRoundRect draws a border of width w inside a.
func (c *Canvas) StrokeRoundRect(a Area, radius, w int16, col Color) {
	r, ok := a.Intersect(c.clip)
	if !c.ok || !ok || w <= 0 {
		return
	}
	in := a.Inset(w)
	inR := max16(radius-w, 0)
	for y := r.Y1; y <= r.Y2; y++ {
		ox1, ox2 := roundSpan(a, radius, y)
		if in.Empty() || y < in.Y1 || y > in.Y2 {
			c.hline(ox1, ox2, y, col)
			continue
		}
		ix1, ix2 := roundSpan(in, inR, y)
		c.hline(ox1, ix1-1, y, col)
		c.hline(ix2+1, ox2, y, col)
	}
}

// Line draws a w pixel wide segment.
func (c *Canvas) Line(x0, y0, x1, y1, w int16, col Color) {
	if !c.ok {
		return
	}
	if w < 1 {
		w = 1
	}
	lo, hi := (w-1)/2, w/2
	bounds := Area{X1: min16(x0, x1) - lo, Y1: min16(y0, y1) - lo, X2: max16(x0, x1) + hi, Y2: max16(y0, y1) + hi}
	if _, ok := bounds.Intersect(c.clip); !ok {
		return
	}

	dx := abs16(x1 - x0)
	dy := -abs16(y1 - y0)
	sx, sy := int16(1), int16(1)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.FillRect(Area{X1: x0 - lo, Y1: y0 - lo, X2: x0 + hi, Y2: y0 + hi}, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text draws s with its top-left corner at x, y.
func (c *Canvas) Text(x, y int16, s string, col Color) {
	if !c.ok || s == "" {
		return
	}
	if y > c.clip.Y2 || y+fontHeight <= c.clip.Y1 {
		return
	}
	tinyfont.WriteLine(c, font, x, y+fontAscent, s, col.RGBA())
}

// Size, SetPixel and Display make Canvas a drivers.Displayer for tinyfont.
func (c *Canvas) Size() (x, y int16) { return c.area.X2 + 1, c.area.Y2 + 1 }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if !c.ok || !c.clip.Contains(Point{X: x, Y: y}) {
		return
	}
	c.put(x, y, colorFromRGBA(col))
}

func (c *Canvas) Display() error { return nil }

// roundSpan returns the horizontal extent of row y of a rounded rectangle.
func roundSpan(a Area, radius, y int16) (x1, x2 int16) {
	radius = min16(radius, min16(a.Width()/2, a.Height()/2))
	if radius <= 0 {
		return a.X1, a.X2
	}
	k := int16(-1)
	switch {
	case y < a.Y1+radius:
		k = y - a.Y1
	case y > a.Y2-radius:
		k = a.Y2 - y
	}
	if k < 0 {
		return a.X1, a.X2
	}
	d := int32(2*(radius-k) - 1)
	r := int32(radius)
	inset := radius - int16(isqrt(r*r-d*d/4))
	return a.X1 + inset, a.X2 - inset
}

func isqrt(v int32) int32 {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
