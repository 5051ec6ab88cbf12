package gui

const (
	sliderTrack   int16 = 10
	sliderKnobPad int16 = 4
	sliderHeight        = sliderTrack + 2*sliderKnobPad
)

// Slider selects an integer in [min, max] by dragging its knob. The object
// box includes the knob overhang; the track is drawn inset. Pressing a slider
// never scrolls its parents.
type Slider struct {
	*Obj
	min, max int16
	value    int16
}

func NewSlider(parent *Obj) *Slider {
	s := &Slider{Obj: NewObj(parent), max: 100}
	s.impl = s
	s.scrollable = false
	s.scrollDir = DirNone
	s.style = Style{}
	s.SetSize(150, sliderHeight)
	return s
}

func (s *Slider) Value() int16 { return s.value }

func (s *Slider) Range() (min, max int16) { return s.min, s.max }

func (s *Slider) SetRange(min, max int16) {
	if min >= max {
		return
	}
	s.min, s.max = min, max
	s.SetValue(s.value)
}

// SetValue clamps v into range. It does not send ValueChanged.
func (s *Slider) SetValue(v int16) {
	v = clamp16(v, s.min, s.max)
	if v == s.value {
		return
	}
	s.value = v
	s.Invalidate()
}

func (s *Slider) track(coords Area) Area {
	r := sliderHeight / 2
	return Area{X1: coords.X1 + r, Y1: coords.Y1 + sliderKnobPad, X2: coords.X2 - r, Y2: coords.Y2 - sliderKnobPad}
}

func (s *Slider) knobX(track Area) int16 {
	w := int32(track.Width() - 1)
	return track.X1 + int16(w*int32(s.value-s.min)/int32(s.max-s.min))
}

func (s *Slider) valueAt(x int16) int16 {
	t := s.track(s.Coords())
	w := int32(t.Width() - 1)
	if w <= 0 {
		return s.min
	}
	off := int32(clamp16(x, t.X1, t.X2) - t.X1)
	return s.min + int16((off*int32(s.max-s.min)+w/2)/w)
}

// drag moves the knob under p. It reports whether the value changed.
func (s *Slider) drag(p Point) bool {
	v := s.valueAt(p.X)
	if v == s.value {
		return false
	}
	s.SetValue(v)
	s.send(EventValueChanged, p)
	return true
}

func (s *Slider) drawContent(c *Canvas, coords Area) {
	t := s.track(coords)
	if t.Empty() {
		return
	}
	c.FillRoundRect(t, sliderTrack/2, PaletteLighten(PaletteBlue, 4))

	kx := s.knobX(t)
	c.FillRoundRect(Area{X1: t.X1, Y1: t.Y1, X2: kx, Y2: t.Y2}, sliderTrack/2, PaletteMain(PaletteBlue))

	r := sliderHeight / 2
	cy := coords.Y1 + r
	c.FillRoundRect(Area{X1: kx - r, Y1: cy - r, X2: kx + r, Y2: cy + r}, r, PaletteMain(PaletteBlue))
	c.FillRoundRect(Area{X1: kx - 2, Y1: cy - 2, X2: kx + 2, Y2: cy + 2}, 2, White)
}
