package gui

import (
	"reflect"
	"testing"
)

// pointer is a scripted input device.
type pointer struct {
	st InputState
}

func (p *pointer) read() InputState { return p.st }
func (p *pointer) press(x, y int16) { p.st = InputState{Pressed: true, X: x, Y: y} }
func (p *pointer) release()         { p.st = InputState{} }

type eventLog struct {
	events []string
}

func (l *eventLog) track(name string, o *Obj) {
	o.AddEventCallback(func(e *Event) {
		l.events = append(l.events, name+":"+e.Code.String())
	}, EventAll)
}

func newInputDisplay(t *testing.T) (*Display, *pointer) {
	t.Helper()
	d := newTestDisplay(t, 240, 320, 40, true, nil)
	p := &pointer{}
	d.RegisterInput(p.read)
	return d, p
}

func TestClickOncePerPressRelease(t *testing.T) {
	d, p := newInputDisplay(t)
	btn := NewButton(d.Screen())
	btn.SetSize(100, 40)
	btn.Align(AlignDefault, 20, 20)
	log := &eventLog{}
	log.track("btn", btn)

	p.press(50, 30)
	d.TimerHandler()
	d.TimerHandler()
	p.release()
	d.TimerHandler()
	d.TimerHandler()

	want := []string{"btn:pressed", "btn:pressing", "btn:released", "btn:clicked"}
	if !reflect.DeepEqual(log.events, want) {
		t.Fatalf("events = %v, want %v", log.events, want)
	}
	if got := d.indev.Reads(); got != 4 {
		t.Fatalf("Reads() = %d, want 4", got)
	}
}

func TestLeavingObjectLosesPress(t *testing.T) {
	d, p := newInputDisplay(t)
	btn := NewButton(d.Screen())
	btn.SetSize(100, 40)
	log := &eventLog{}
	log.track("btn", btn)

	p.press(10, 10)
	d.TimerHandler()
	p.press(150, 12)
	d.TimerHandler()
	p.release()
	d.TimerHandler()

	want := []string{"btn:pressed", "btn:press-lost"}
	if !reflect.DeepEqual(log.events, want) {
		t.Fatalf("events = %v, want %v", log.events, want)
	}
}

func TestHiddenObjectIsNotHit(t *testing.T) {
	d, p := newInputDisplay(t)
	under := NewButton(d.Screen())
	under.SetSize(100, 100)
	over := NewButton(d.Screen())
	over.SetSize(100, 100)
	over.SetHidden(true)

	log := &eventLog{}
	log.track("under", under)
	log.track("over", over)

	p.press(50, 50)
	d.TimerHandler()
	p.release()
	d.TimerHandler()

	want := []string{"under:pressed", "under:released", "under:clicked"}
	if !reflect.DeepEqual(log.events, want) {
		t.Fatalf("events = %v, want %v", log.events, want)
	}

	over.SetHidden(false)
	log.events = nil
	p.press(50, 50)
	d.TimerHandler()
	p.release()
	d.TimerHandler()
	if len(log.events) == 0 || log.events[0] != "over:pressed" {
		t.Fatalf("events = %v, want the top object hit once shown", log.events)
	}
}

// scrollPanel is 200x100 with 10 px padding and three 180x60 items 70 px
// apart, so content overflows by 120 px.
func scrollPanel(scr *Obj) (*Obj, []*Obj) {
	panel := NewObj(scr)
	panel.SetSize(200, 100)
	panel.SetScrollDir(DirVer)
	panel.SetScrollbarMode(ScrollbarActive)
	var items []*Obj
	for i := 0; i < 3; i++ {
		it := NewObj(panel)
		it.SetSize(180, 60)
		it.Align(AlignTopMid, 0, int16(i*70))
		it.SetScrollable(false)
		items = append(items, it)
	}
	return panel, items
}

func TestVerticalDragScrollsAndCancelsClick(t *testing.T) {
	d, p := newInputDisplay(t)
	panel, items := scrollPanel(d.Screen())
	log := &eventLog{}
	log.track("item", items[0])
	log.track("panel", panel)

	if got := panel.maxScrollY(); got != 120 {
		t.Fatalf("maxScrollY() = %d, want 120", got)
	}

	p.press(50, 40)
	d.TimerHandler()
	p.press(50, 35)
	d.TimerHandler()
	if panel.ScrollY() != 0 {
		t.Fatalf("ScrollY() = %d below the scroll limit, want 0", panel.ScrollY())
	}
	p.press(50, 10)
	d.TimerHandler()
	if got := panel.ScrollY(); got != 30 {
		t.Fatalf("ScrollY() = %d, want 30", got)
	}
	if !d.indev.Scrolling() {
		t.Fatalf("Scrolling() = false, want true")
	}
	p.press(50, 0)
	d.TimerHandler()
	if got := panel.ScrollY(); got != 40 {
		t.Fatalf("ScrollY() = %d, want 40", got)
	}
	p.release()
	d.TimerHandler()

	want := []string{
		"item:pressed", "item:pressing", "item:press-lost",
		"panel:scroll-begin", "panel:scroll-end",
	}
	if !reflect.DeepEqual(log.events, want) {
		t.Fatalf("events = %v, want %v", log.events, want)
	}
	if items[0].Coords().Y1 != 10-40 {
		t.Fatalf("item Y1 = %d, want %d", items[0].Coords().Y1, 10-40)
	}
}

func TestScrollClampsToContent(t *testing.T) {
	d, _ := newInputDisplay(t)
	panel, _ := scrollPanel(d.Screen())

	if got := panel.ScrollBy(500); got != 120 {
		t.Fatalf("ScrollBy(500) = %d, want 120", got)
	}
	if got := panel.ScrollBy(-500); got != -120 {
		t.Fatalf("ScrollBy(-500) = %d, want -120", got)
	}
	if got := panel.ScrollY(); got != 0 {
		t.Fatalf("ScrollY() = %d, want 0", got)
	}
}

func TestNonScrollableParentDoesNotScroll(t *testing.T) {
	d, p := newInputDisplay(t)
	btn := NewButton(d.Screen())
	btn.SetSize(100, 100)
	log := &eventLog{}
	log.track("btn", btn)

	p.press(50, 20)
	d.TimerHandler()
	p.press(50, 60)
	d.TimerHandler()
	p.release()
	d.TimerHandler()

	want := []string{"btn:pressed", "btn:pressing", "btn:released", "btn:clicked"}
	if !reflect.DeepEqual(log.events, want) {
		t.Fatalf("events = %v, want %v", log.events, want)
	}
}

func TestSliderDragSendsValueChanged(t *testing.T) {
	d, p := newInputDisplay(t)
	s := NewSlider(d.Screen())
	s.SetSize(150, sliderHeight)
	s.Align(AlignDefault, 0, 100)

	var values []int16
	s.AddEventCallback(func(e *Event) { values = append(values, s.Value()) }, EventValueChanged)

	tr := s.track(s.Coords())
	p.press(tr.X2, 105)
	d.TimerHandler()
	p.press(tr.X1, 140)
	d.TimerHandler()
	p.press(tr.X1-20, 105)
	d.TimerHandler()
	p.release()
	d.TimerHandler()

	if want := []int16{100, 0}; !reflect.DeepEqual(values, want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
}

func TestSliderSetValueClamps(t *testing.T) {
	d, _ := newInputDisplay(t)
	s := NewSlider(d.Screen())

	s.SetValue(150)
	if s.Value() != 100 {
		t.Fatalf("Value() = %d, want 100", s.Value())
	}
	s.SetValue(-3)
	if s.Value() != 0 {
		t.Fatalf("Value() = %d, want 0", s.Value())
	}
}
