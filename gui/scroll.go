package gui

const (
	scrollbarWidth int16 = 4
	scrollbarPad   int16 = 2
)

// ScrollY returns the vertical scroll offset of o's content.
func (o *Obj) ScrollY() int16 { return o.scrollY }

// contentHeight is the extent of o's children below the top of its content
// area, ignoring scroll.
func (o *Obj) contentHeight() int16 {
	var bottom int16
	top := o.contentArea().Y1 - o.scrollY
	for _, ch := range o.children {
		if ch.hidden {
			continue
		}
		if b := ch.Coords().Y2 - top + 1; b > bottom {
			bottom = b
		}
	}
	return bottom
}

// maxScrollY is the largest offset that still keeps content inside the area.
func (o *Obj) maxScrollY() int16 {
	m := o.contentHeight() - o.contentArea().Height()
	if m < 0 {
		return 0
	}
	return m
}

// ScrollBy moves o's content up by dy pixels, clamped to the content extent.
// It returns the applied delta.
func (o *Obj) ScrollBy(dy int16) int16 {
	next := clamp16(o.scrollY+dy, 0, o.maxScrollY())
	applied := next - o.scrollY
	if applied == 0 {
		return 0
	}
	o.scrollY = next
	o.Invalidate()
	return applied
}

// ScrollTo sets the offset directly.
func (o *Obj) ScrollTo(y int16) { o.ScrollBy(y - o.scrollY) }

// scrollTarget returns o or its nearest ancestor that can scroll vertically.
func (o *Obj) scrollTarget() *Obj {
	for p := o; p != nil; p = p.parent {
		if p.scrollable && p.scrollDir&DirVer != 0 && p.maxScrollY() > 0 {
			return p
		}
	}
	return nil
}

func (o *Obj) scrollbarShown() bool {
	switch o.sbMode {
	case ScrollbarOff:
		return false
	case ScrollbarOn:
		return true
	case ScrollbarActive:
		return o.scrolling && o.maxScrollY() > 0
	}
	return o.scrollable && o.scrollDir&DirVer != 0 && o.maxScrollY() > 0
}

func (o *Obj) drawScrollbar(c *Canvas, coords Area) {
	if !o.scrollbarShown() {
		return
	}
	track := Area{
		X1: coords.X2 - scrollbarPad - scrollbarWidth + 1,
		Y1: coords.Y1 + scrollbarPad,
		X2: coords.X2 - scrollbarPad,
		Y2: coords.Y2 - scrollbarPad,
	}
	trackH := track.Height()
	viewH := o.contentArea().Height()
	total := viewH + o.maxScrollY()
	if total <= 0 || trackH <= 0 {
		return
	}
	thumbH := max16(int16(int32(trackH)*int32(viewH)/int32(total)), scrollbarWidth*2)
	thumbH = min16(thumbH, trackH)
	span := trackH - thumbH
	var off int16
	if m := o.maxScrollY(); m > 0 {
		off = int16(int32(span) * int32(o.scrollY) / int32(m))
	}
	thumb := Area{X1: track.X1, Y1: track.Y1 + off, X2: track.X2, Y2: track.Y1 + off + thumbH - 1}
	c.FillRoundRect(thumb, scrollbarWidth/2, PaletteMain(PaletteGrey))
}
