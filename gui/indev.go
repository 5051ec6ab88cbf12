package gui

// ScrollLimit is how far a press must travel vertically before it turns into
// a scroll.
const ScrollLimit int16 = 10

// InputState is one pointer sample. X and Y are meaningful only while Pressed.
type InputState struct {
	Pressed bool
	X, Y    int16
}

// ReadFunc samples the pointer. It is called once per TimerHandler.
type ReadFunc func() InputState

// InputDevice turns pointer samples into object events.
type InputDevice struct {
	disp *Display
	read ReadFunc

	pressed bool
	last    Point
	start   Point

	act       *Obj
	lost      bool
	scrollObj *Obj

	reads uint64
}

// RegisterInput attaches a pointer device to d, replacing any previous one.
func (d *Display) RegisterInput(read ReadFunc) *InputDevice {
	in := &InputDevice{disp: d, read: read}
	d.indev = in
	return in
}

// Reads counts read callback invocations.
func (in *InputDevice) Reads() uint64 { return in.reads }

// Active returns the object the current press started on, or nil.
func (in *InputDevice) Active() *Obj { return in.act }

// Scrolling reports whether the current press is scrolling a container.
func (in *InputDevice) Scrolling() bool { return in.scrollObj != nil }

func (in *InputDevice) process() {
	in.reads++
	st := in.read()
	p := Point{X: st.X, Y: st.Y}

	switch {
	case st.Pressed && !in.pressed:
		in.pressed = true
		in.start, in.last = p, p
		in.pressBegin(p)
	case st.Pressed:
		in.pressing(p)
		in.last = p
	case in.pressed:
		in.pressed = false
		in.release(in.last)
	}
}

func (in *InputDevice) pressBegin(p Point) {
	in.lost = false
	in.scrollObj = nil
	in.act = in.disp.screen.hitTest(p)
	if in.act == nil {
		return
	}
	in.act.send(EventPressed, p)
	if dr, ok := in.act.impl.(dragger); ok {
		dr.drag(p)
	}
}

func (in *InputDevice) pressing(p Point) {
	if in.scrollObj != nil {
		in.scrollObj.ScrollBy(in.last.Y - p.Y)
		return
	}
	act := in.act
	if act == nil || in.lost {
		return
	}
	if dr, ok := act.impl.(dragger); ok {
		dr.drag(p)
		act.send(EventPressing, p)
		return
	}

	if abs16(p.Y-in.start.Y) > ScrollLimit {
		if target := act.scrollTarget(); target != nil {
			in.lost = true
			act.send(EventPressLost, p)
			in.scrollObj = target
			target.scrolling = true
			target.send(EventScrollBegin, p)
			target.ScrollBy(in.start.Y - p.Y)
			return
		}
	}

	if !act.Coords().Contains(p) {
		in.lost = true
		act.send(EventPressLost, p)
		return
	}
	act.send(EventPressing, p)
}

func (in *InputDevice) release(p Point) {
	if s := in.scrollObj; s != nil {
		in.scrollObj = nil
		s.scrolling = false
		s.Invalidate()
		s.send(EventScrollEnd, p)
	}
	act := in.act
	in.act = nil
	if act == nil || in.lost {
		return
	}
	act.send(EventReleased, p)
	if act.Visible() {
		act.send(EventClicked, p)
	}
}
