package gui

import "math"

// PointNone marks a chart point without a value.
const PointNone int16 = math.MaxInt16

type ChartType uint8

const (
	ChartNone ChartType = iota
	ChartLine
)

const (
	chartHDiv     = 3
	chartVDiv     = 5
	chartLineW    = 2
	chartDivColor = 0xE0E0E0
)

// Series is one line of a chart. Values are stored in a ring; start is the
// index of the oldest point.
type Series struct {
	color Color
	ys    []int16
	start int
}

func (s *Series) Color() Color { return s.color }

// Values returns the points oldest first.
func (s *Series) Values() []int16 {
	out := make([]int16, len(s.ys))
	for i := range s.ys {
		out[i] = s.ys[(s.start+i)%len(s.ys)]
	}
	return out
}

// Chart plots series of fixed point count against a Y range.
type Chart struct {
	*Obj
	typ    ChartType
	min    int16
	max    int16
	points int
	series []*Series
}

func NewChart(parent *Obj) *Chart {
	ch := &Chart{Obj: NewObj(parent), typ: ChartLine, max: 100, points: 10}
	ch.impl = ch
	ch.scrollable = false
	ch.scrollDir = DirNone
	ch.SetSize(200, 150)
	return ch
}

func (ch *Chart) SetType(t ChartType) { ch.typ = t; ch.Invalidate() }

// SetRange sets the primary Y axis range.
func (ch *Chart) SetRange(min, max int16) {
	if min >= max {
		return
	}
	ch.min, ch.max = min, max
	ch.Invalidate()
}

// SetPointCount resizes every series, keeping the newest values.
func (ch *Chart) SetPointCount(n int) {
	if n < 1 {
		n = 1
	}
	if n == ch.points {
		return
	}
	for _, s := range ch.series {
		old := s.Values()
		s.ys = make([]int16, n)
		for i := range s.ys {
			s.ys[i] = PointNone
		}
		for i := 0; i < n && i < len(old); i++ {
			s.ys[n-1-i] = old[len(old)-1-i]
		}
		s.start = 0
	}
	ch.points = n
	ch.Invalidate()
}

func (ch *Chart) PointCount() int { return ch.points }

// AddSeries adds an empty series drawn in c.
func (ch *Chart) AddSeries(c Color) *Series {
	s := &Series{color: c, ys: make([]int16, ch.points)}
	for i := range s.ys {
		s.ys[i] = PointNone
	}
	ch.series = append(ch.series, s)
	return s
}

// SetNextValue shifts v into s, dropping the oldest point.
func (ch *Chart) SetNextValue(s *Series, v int16) {
	s.ys[s.start] = v
	s.start = (s.start + 1) % len(s.ys)
	ch.Invalidate()
}

func (ch *Chart) drawContent(c *Canvas, coords Area) {
	in := coords.Inset(ch.style.Pad)
	if in.Empty() {
		return
	}
	w, h := int32(in.Width()-1), int32(in.Height()-1)
	div := Hex(chartDivColor)
	for i := int32(1); i <= chartHDiv; i++ {
		y := in.Y1 + int16(h*i/(chartHDiv+1))
		c.hline(in.X1, in.X2, y, div)
	}
	for i := int32(1); i <= chartVDiv; i++ {
		x := in.X1 + int16(w*i/(chartVDiv+1))
		c.Line(x, in.Y1, x, in.Y2, 1, div)
	}
	if ch.typ != ChartLine || ch.points < 1 {
		return
	}

	span := int32(ch.max) - int32(ch.min)
	for _, s := range ch.series {
		vals := s.Values()
		var px, py int16
		have := false
		for i, v := range vals {
			if v == PointNone {
				have = false
				continue
			}
			x := in.X1
			if ch.points > 1 {
				x += int16(w * int32(i) / int32(ch.points-1))
			}
			y := in.Y2 - int16(h*(int32(v)-int32(ch.min))/span)
			y = clamp16(y, in.Y1, in.Y2)
			if have {
				c.Line(px, py, x, y, chartLineW, s.color)
			}
			px, py, have = x, y, true
		}
	}
}
