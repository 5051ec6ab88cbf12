package gui

// AlignType positions an object inside its parent's content area.
type AlignType uint8

const (
	AlignDefault AlignType = iota
	AlignTopMid
	AlignCenter
	AlignBottomMid
)

// ScrollDir is a bit set of allowed scroll directions.
type ScrollDir uint8

const (
	DirNone ScrollDir = 0
	DirHor  ScrollDir = 1 << 0
	DirVer  ScrollDir = 1 << 1
	DirAll            = DirHor | DirVer
)

type ScrollbarMode uint8

const (
	ScrollbarAuto ScrollbarMode = iota
	ScrollbarOff
	ScrollbarOn
	ScrollbarActive
)

type EventCode uint8

const (
	EventAll EventCode = iota
	EventPressed
	EventPressing
	EventPressLost
	EventReleased
	EventClicked
	EventValueChanged
	EventScrollBegin
	EventScrollEnd
)

func (c EventCode) String() string {
	switch c {
	case EventAll:
		return "all"
	case EventPressed:
		return "pressed"
	case EventPressing:
		return "pressing"
	case EventPressLost:
		return "press-lost"
	case EventReleased:
		return "released"
	case EventClicked:
		return "clicked"
	case EventValueChanged:
		return "value-changed"
	case EventScrollBegin:
		return "scroll-begin"
	case EventScrollEnd:
		return "scroll-end"
	}
	return "unknown"
}

// Event is delivered synchronously to callbacks registered on Target.
type Event struct {
	Code   EventCode
	Target *Obj
	Point  Point
}

type EventCallback func(e *Event)

type eventDsc struct {
	cb     EventCallback
	filter EventCode
}

// Style holds the drawing properties of one object.
type Style struct {
	BgColor     Color
	BgOpa       bool
	BorderColor Color
	BorderWidth int16
	Radius      int16
	Pad         int16

	TextColor    Color
	hasTextColor bool
}

// widget is implemented by object kinds with content of their own.
type widget interface {
	drawContent(c *Canvas, coords Area)
}

// dragger is implemented by widgets that follow the pointer while pressed.
type dragger interface {
	drag(p Point) bool
}

// Obj is a node in the widget tree. Plain objects are containers.
type Obj struct {
	disp     *Display
	parent   *Obj
	children []*Obj

	w, h           int16
	align          AlignType
	alignX, alignY int16

	hidden     bool
	clickable  bool
	scrollable bool
	scrollDir  ScrollDir
	sbMode     ScrollbarMode
	scrollY    int16
	scrolling  bool

	style Style
	cbs   []eventDsc
	impl  widget
}

func newScreen(d *Display) *Obj {
	return &Obj{
		disp:      d,
		w:         d.hor,
		h:         d.ver,
		clickable: true,
		style:     Style{BgColor: White, BgOpa: true},
	}
}

// NewObj creates a container under parent with the default look: white, a
// thin grey border, rounded corners, scrollable in both directions.
func NewObj(parent *Obj) *Obj {
	o := &Obj{
		disp:       parent.disp,
		parent:     parent,
		w:          100,
		h:          100,
		clickable:  true,
		scrollable: true,
		scrollDir:  DirAll,
		style: Style{
			BgColor:     White,
			BgOpa:       true,
			BorderColor: PaletteLighten(PaletteGrey, 2),
			BorderWidth: 2,
			Radius:      8,
			Pad:         10,
		},
	}
	parent.children = append(parent.children, o)
	o.Invalidate()
	return o
}

func (o *Obj) Display() *Display { return o.disp }
func (o *Obj) Parent() *Obj      { return o.parent }
func (o *Obj) ChildCount() int   { return len(o.children) }

// Child returns the i-th child, or nil.
func (o *Obj) Child(i int) *Obj {
	if i < 0 || i >= len(o.children) {
		return nil
	}
	return o.children[i]
}

// Size returns the object's width and height.
func (o *Obj) Size() (w, h int16) { return o.w, o.h }

func (o *Obj) SetSize(w, h int16) {
	if o.w == w && o.h == h {
		return
	}
	o.Invalidate()
	o.w, o.h = w, h
	o.Invalidate()
}

func (o *Obj) SetWidth(w int16)  { o.SetSize(w, o.h) }
func (o *Obj) SetHeight(h int16) { o.SetSize(o.w, h) }

// Align places o relative to its parent's content area.
func (o *Obj) Align(a AlignType, x, y int16) {
	o.Invalidate()
	o.align, o.alignX, o.alignY = a, x, y
	o.Invalidate()
}

// Center is Align(AlignCenter, 0, 0).
func (o *Obj) Center() { o.Align(AlignCenter, 0, 0) }

func (o *Obj) Hidden() bool { return o.hidden }

// SetHidden hides or shows o and its subtree.
func (o *Obj) SetHidden(v bool) {
	if o.hidden == v {
		return
	}
	o.hidden = v
	o.invalidateArea(o.Coords())
}

func (o *Obj) SetClickable(v bool) { o.clickable = v }
func (o *Obj) Clickable() bool     { return o.clickable }

func (o *Obj) SetScrollable(v bool) { o.scrollable = v }
func (o *Obj) Scrollable() bool     { return o.scrollable }

func (o *Obj) SetScrollDir(d ScrollDir)         { o.scrollDir = d }
func (o *Obj) SetScrollbarMode(m ScrollbarMode) { o.sbMode = m; o.Invalidate() }

func (o *Obj) Style() Style { return o.style }

func (o *Obj) SetBgColor(c Color) {
	o.style.BgColor = c
	o.style.BgOpa = true
	o.Invalidate()
}

func (o *Obj) SetBorderWidth(w int16) { o.style.BorderWidth = w; o.Invalidate() }
func (o *Obj) SetRadius(r int16)      { o.style.Radius = r; o.Invalidate() }
func (o *Obj) SetPadAll(p int16)      { o.style.Pad = p; o.Invalidate() }

func (o *Obj) SetTextColor(c Color) {
	o.style.TextColor = c
	o.style.hasTextColor = true
	o.Invalidate()
}

// textColor resolves the inherited text color.
func (o *Obj) textColor() Color {
	for p := o; p != nil; p = p.parent {
		if p.style.hasTextColor {
			return p.style.TextColor
		}
	}
	return Black
}

// AddEventCallback registers cb for events matching filter (EventAll for every event).
func (o *Obj) AddEventCallback(cb EventCallback, filter EventCode) {
	o.cbs = append(o.cbs, eventDsc{cb: cb, filter: filter})
}

func (o *Obj) send(code EventCode, p Point) {
	if len(o.cbs) == 0 {
		return
	}
	e := Event{Code: code, Target: o, Point: p}
	for _, d := range o.cbs {
		if d.filter == EventAll || d.filter == code {
			d.cb(&e)
		}
	}
}

// Coords returns o's rectangle in screen coordinates.
func (o *Obj) Coords() Area {
	if o.parent == nil {
		return Area{X2: o.w - 1, Y2: o.h - 1}
	}
	pc := o.parent.contentArea()
	cw, ch := pc.Width(), pc.Height()

	x, y := o.alignX, o.alignY
	switch o.align {
	case AlignTopMid:
		x += (cw - o.w) / 2
	case AlignCenter:
		x += (cw - o.w) / 2
		y += (ch - o.h) / 2
	case AlignBottomMid:
		x += (cw - o.w) / 2
		y += ch - o.h
	}
	x1 := pc.X1 + x
	y1 := pc.Y1 + y - o.parent.scrollY
	return Area{X1: x1, Y1: y1, X2: x1 + o.w - 1, Y2: y1 + o.h - 1}
}

func (o *Obj) contentArea() Area {
	return o.Coords().Inset(o.style.Pad)
}

// Visible reports whether o and all its ancestors are shown.
func (o *Obj) Visible() bool {
	for p := o; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

// Invalidate schedules o's visible area for redraw.
func (o *Obj) Invalidate() {
	if o.hidden {
		return
	}
	o.invalidateArea(o.Coords())
}

// invalidateArea clips a to every ancestor, skipping hidden branches.
func (o *Obj) invalidateArea(a Area) {
	for p := o.parent; p != nil; p = p.parent {
		if p.hidden {
			return
		}
		var ok bool
		if a, ok = a.Intersect(p.Coords()); !ok {
			return
		}
	}
	o.disp.Invalidate(a)
}

func (o *Obj) render(c *Canvas, clip Area) {
	if o.hidden {
		return
	}
	coords := o.Coords()
	area, ok := coords.Intersect(clip)
	if !ok || !c.SetClip(area) {
		return
	}

	if o.style.BgOpa {
		c.FillRoundRect(coords, o.style.Radius, o.style.BgColor)
	}
	if o.style.BorderWidth > 0 {
		c.StrokeRoundRect(coords, o.style.Radius, o.style.BorderWidth, o.style.BorderColor)
	}
	if o.impl != nil {
		o.impl.drawContent(c, coords)
	}

	for _, ch := range o.children {
		ch.render(c, area)
	}

	if c.SetClip(area) {
		o.drawScrollbar(c, coords)
	}
}

// hitTest returns the topmost visible clickable object under p.
func (o *Obj) hitTest(p Point) *Obj {
	if o.hidden || !o.Coords().Contains(p) {
		return nil
	}
	for i := len(o.children) - 1; i >= 0; i-- {
		if hit := o.children[i].hitTest(p); hit != nil {
			return hit
		}
	}
	if o.clickable {
		return o
	}
	return nil
}
