package port

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"cydgui/gui"
)

type fakeTransport struct {
	calls []string
	got   []uint16
	err   error
}

func (t *fakeTransport) BeginWrite() { t.calls = append(t.calls, "begin") }
func (t *fakeTransport) EndWrite()   { t.calls = append(t.calls, "end") }

func (t *fakeTransport) SetAddrWindow(x, y, w, h int16) {
	t.calls = append(t.calls, "window")
	t.got = append(t.got[:0], uint16(x), uint16(y), uint16(w), uint16(h))
}

func (t *fakeTransport) PushPixels(px []uint16) error {
	t.calls = append(t.calls, "push")
	if t.err != nil {
		return t.err
	}
	t.got = append(t.got, uint16(len(px)))
	return nil
}

// readyRec records FlushReady against the transport call log.
type readyRec struct {
	t     *fakeTransport
	count int
}

func (r *readyRec) FlushReady() {
	r.count++
	r.t.calls = append(r.t.calls, "ready")
}

type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestDeliverSequence(t *testing.T) {
	tr := &fakeTransport{}
	rd := &readyRec{t: tr}
	s := NewPixelSink(tr, nil)

	area := gui.Area{X1: 0, Y1: 0, X2: 239, Y2: 39}
	if err := s.Deliver(area, make([]uint16, 240*40), rd); err != nil {
		t.Fatalf("Deliver() err = %v, want nil", err)
	}

	if want := []string{"begin", "window", "push", "end", "ready"}; !reflect.DeepEqual(tr.calls, want) {
		t.Fatalf("calls = %v, want %v", tr.calls, want)
	}
	if want := []uint16{0, 0, 240, 40, 9600}; !reflect.DeepEqual(tr.got, want) {
		t.Fatalf("window/push = %v, want %v", tr.got, want)
	}
	if rd.count != 1 || s.Flushes() != 1 {
		t.Fatalf("ready = %d, Flushes() = %d, want 1 and 1", rd.count, s.Flushes())
	}
}

func TestDeliverSinglePixel(t *testing.T) {
	tr := &fakeTransport{}
	rd := &readyRec{t: tr}
	s := NewPixelSink(tr, nil)

	if err := s.Deliver(gui.Area{X1: 239, Y1: 319, X2: 239, Y2: 319}, []uint16{0xFFFF}, rd); err != nil {
		t.Fatalf("Deliver() err = %v, want nil", err)
	}
	if want := []uint16{239, 319, 1, 1, 1}; !reflect.DeepEqual(tr.got, want) {
		t.Fatalf("window/push = %v, want %v", tr.got, want)
	}
	if rd.count != 1 {
		t.Fatalf("ready = %d, want 1", rd.count)
	}
}

func TestDeliverFaultWithholdsReady(t *testing.T) {
	boom := errors.New("spi dma timeout")
	tr := &fakeTransport{err: boom}
	rd := &readyRec{t: tr}
	log := &lineLog{}
	s := NewPixelSink(tr, log)

	area := gui.Area{X2: 9, Y2: 9}
	err := s.Deliver(area, make([]uint16, 100), rd)
	if !errors.Is(err, ErrTransport) || !errors.Is(err, boom) {
		t.Fatalf("Deliver() err = %v, want ErrTransport wrapping %v", err, boom)
	}
	if rd.count != 0 {
		t.Fatalf("ready = %d after fault, want 0", rd.count)
	}
	if want := []string{"begin", "window", "push", "end"}; !reflect.DeepEqual(tr.calls, want) {
		t.Fatalf("calls = %v, want session closed without ready: %v", tr.calls, want)
	}
	if !errors.Is(s.Err(), ErrTransport) {
		t.Fatalf("Err() = %v, want latched ErrTransport", s.Err())
	}

	// Latched: no more transport traffic, no second log line.
	tr.calls = nil
	if err := s.Deliver(area, make([]uint16, 100), rd); !errors.Is(err, ErrTransport) {
		t.Fatalf("second Deliver() err = %v, want ErrTransport", err)
	}
	if len(tr.calls) != 0 || rd.count != 0 {
		t.Fatalf("calls = %v, ready = %d after latch, want none", tr.calls, rd.count)
	}
	if len(log.lines) != 1 || !strings.HasPrefix(log.lines[0], "port: ") {
		t.Fatalf("log = %q, want one port: line", log.lines)
	}
}

func TestDeliverShortRegion(t *testing.T) {
	tr := &fakeTransport{}
	rd := &readyRec{t: tr}
	s := NewPixelSink(tr, nil)

	err := s.Deliver(gui.Area{X2: 9, Y2: 9}, make([]uint16, 99), rd)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("Deliver() err = %v, want ErrTransport", err)
	}
	if len(tr.calls) != 0 || rd.count != 0 {
		t.Fatalf("calls = %v, ready = %d, want nothing sent", tr.calls, rd.count)
	}
}

// Every region the renderer submits gets exactly one readiness signal.
func TestFlushCompletenessWithRenderer(t *testing.T) {
	tr := &fakeTransport{}
	s := NewPixelSink(tr, nil)
	buf1, buf2 := make([]uint16, 240*40), make([]uint16, 240*40)
	db, err := gui.NewDrawBuf(buf1, buf2)
	if err != nil {
		t.Fatalf("NewDrawBuf() err = %v", err)
	}
	d, err := gui.NewDisplay(gui.DisplayConfig{HorRes: 240, VerRes: 320, Buf: db, Flush: s.Flush})
	if err != nil {
		t.Fatalf("NewDisplay() err = %v", err)
	}

	d.TimerHandler()

	st := d.Stats()
	if st.Flushes != 8 || st.Readies != st.Flushes || st.DuplicateReady != 0 {
		t.Fatalf("Stats() = %+v, want 8 flushes each acknowledged once", st)
	}
	if s.Flushes() != 8 {
		t.Fatalf("Flushes() = %d, want 8", s.Flushes())
	}
}

func TestFlushFaultStallsRenderer(t *testing.T) {
	tr := &fakeTransport{err: errors.New("bus error")}
	s := NewPixelSink(tr, nil)
	db, _ := gui.NewDrawBuf(make([]uint16, 240*40), make([]uint16, 240*40))
	d, err := gui.NewDisplay(gui.DisplayConfig{HorRes: 240, VerRes: 320, Buf: db, Flush: s.Flush})
	if err != nil {
		t.Fatalf("NewDisplay() err = %v", err)
	}

	d.TimerHandler()
	d.TimerHandler()

	if st := d.Stats(); st.Flushes != 1 || st.Readies != 0 {
		t.Fatalf("Stats() = %+v, want one unacknowledged flush", st)
	}
	if !d.Flushing() {
		t.Fatalf("Flushing() = false, want the faulted flush still pending")
	}
}
