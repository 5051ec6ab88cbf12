package app

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"cydgui/gui"
	"cydgui/hal"
	"cydgui/port"
)

func newTestSystem(t *testing.T) (*System, *hal.Host, *bytes.Buffer) {
	t.Helper()
	var log bytes.Buffer
	h := hal.NewHost(240, 320, &log)
	s, err := New(h, DefaultConfig())
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	return s, h, &log
}

func runTicks(t *testing.T, s *System, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step() err = %v", err)
		}
	}
}

func tap(t *testing.T, s *System, h *hal.Host, x, y int16) {
	t.Helper()
	h.Sensor().Press(x, y)
	runTicks(t, s, 2)
	h.Sensor().Release()
	runTicks(t, s, 2)
}

func TestSetupOrder(t *testing.T) {
	s, h, log := newTestSystem(t)

	out := log.String()
	lo := strings.Index(out, "backlight: LOW")
	hi := strings.Index(out, "backlight: HIGH")
	done := strings.Index(out, "app: Setup done")
	if lo < 0 || hi < lo || done < hi {
		t.Fatalf("log = %q, want backlight LOW, HIGH, then Setup done", out)
	}
	if !h.BacklightOn() {
		t.Fatalf("BacklightOn() = false after setup")
	}

	cal, n := h.Sensor().Calibration()
	if n != 1 || cal != (hal.Calibration{405, 3238, 287, 3292, 2}) {
		t.Fatalf("Calibration() = %v set %d times, want CYD words once", cal, n)
	}
	if f := s.Frames(); len(f.A) != 240*40 || len(f.B) != 240*40 {
		t.Fatalf("Frames() = %d, %d px, want 9600 each", len(f.A), len(f.B))
	}
	if s.View() != PanelVisible || !s.Chart().Hidden() || s.Panel().Hidden() {
		t.Fatalf("initial view = %v, chart hidden %v, panel hidden %v", s.View(), s.Chart().Hidden(), s.Panel().Hidden())
	}
	if got := s.ButtonLabel().Text(); got != LabelShowChart {
		t.Fatalf("button label = %q, want %q", got, LabelShowChart)
	}
}

func TestUISeedData(t *testing.T) {
	s, _, _ := newTestSystem(t)

	ch := s.Chart()
	if ch.PointCount() != 10 {
		t.Fatalf("PointCount() = %d, want 10", ch.PointCount())
	}
	for i, sr := range s.ui.series {
		lo, hi := int16(20), int16(79)
		if i == 1 {
			lo, hi = 10, 89
		}
		for _, v := range sr.Values() {
			if v < lo || v > hi {
				t.Fatalf("series %d value %d outside [%d, %d]", i, v, lo, hi)
			}
		}
	}
	for i := 0; i < panelItems; i++ {
		v := s.Slider(i).Value()
		if v < 0 || v > 99 {
			t.Fatalf("slider %d = %d, want 0..99", i, v)
		}
		want := fmt.Sprintf("Valor: %d", v)
		if got := s.ValueLabel(i).Text(); got != want {
			t.Fatalf("value label %d = %q, want %q", i, got, want)
		}
	}
}

func TestSameSeedSameData(t *testing.T) {
	a, _, _ := newTestSystem(t)
	b, _, _ := newTestSystem(t)
	for i := range a.ui.series {
		av, bv := a.ui.series[i].Values(), b.ui.series[i].Values()
		for j := range av {
			if av[j] != bv[j] {
				t.Fatalf("series %d point %d: %d vs %d with the same seed", i, j, av[j], bv[j])
			}
		}
	}
}

func TestTapButtonShowsChart(t *testing.T) {
	s, h, _ := newTestSystem(t)
	runTicks(t, s, 3)

	c := s.Chart().Coords()
	panelBg := uint16(gui.PaletteLighten(gui.PaletteGrey, 1))

	b := s.Button().Coords()
	tap(t, s, h, (b.X1+b.X2)/2, (b.Y1+b.Y2)/2)

	if s.View() != ChartVisible {
		t.Fatalf("View() = %v after one tap, want chart", s.View())
	}
	if s.Chart().Hidden() || !s.Panel().Hidden() || s.ButtonLabel().Text() != LabelShowPanel {
		t.Fatalf("chart hidden %v, panel hidden %v, label %q", s.Chart().Hidden(), s.Panel().Hidden(), s.ButtonLabel().Text())
	}

	var red int
	for y := int(c.Y1); y <= int(c.Y2); y++ {
		for x := int(c.X1); x <= int(c.X2); x++ {
			if h.Panel().Pixel(x, y) == uint16(gui.PaletteMain(gui.PaletteRed)) {
				red++
			}
		}
	}
	if red == 0 {
		t.Fatalf("no red series pixels on the panel after showing the chart")
	}

	tap(t, s, h, (b.X1+b.X2)/2, (b.Y1+b.Y2)/2)
	if s.View() != PanelVisible || s.ButtonLabel().Text() != LabelShowChart {
		t.Fatalf("View() = %v, label %q after two taps", s.View(), s.ButtonLabel().Text())
	}
	p := s.Panel().Coords()
	if got := h.Panel().Pixel(int(p.X1)+3, int(p.Y1)+100); got != panelBg {
		t.Fatalf("panel pixel = %#04x, want panel background %#04x", got, panelBg)
	}
}

func TestDragPanelScrollsWithoutToggling(t *testing.T) {
	s, h, _ := newTestSystem(t)
	runTicks(t, s, 3)

	p := s.Panel().Coords()
	x := (p.X1 + p.X2) / 2
	h.Sensor().Press(x, p.Y2-20)
	runTicks(t, s, 1)
	for y := p.Y2 - 25; y >= p.Y2-80; y -= 5 {
		h.Sensor().Press(x, y)
		runTicks(t, s, 1)
	}
	h.Sensor().Release()
	runTicks(t, s, 2)

	if s.Panel().ScrollY() <= 0 {
		t.Fatalf("ScrollY() = %d, want scrolled", s.Panel().ScrollY())
	}
	if s.View() != PanelVisible {
		t.Fatalf("View() = %v after a drag, want panel", s.View())
	}
}

func TestSliderDragUpdatesLabel(t *testing.T) {
	s, h, _ := newTestSystem(t)
	runTicks(t, s, 3)

	sl := s.Slider(0)
	c := sl.Coords()
	y := (c.Y1 + c.Y2) / 2
	h.Sensor().Press(c.X2, y)
	runTicks(t, s, 2)
	h.Sensor().Release()
	runTicks(t, s, 1)

	if sl.Value() != 100 {
		t.Fatalf("slider Value() = %d, want 100", sl.Value())
	}
	if got := s.ValueLabel(0).Text(); got != "Valor: 100" {
		t.Fatalf("value label = %q, want %q", got, "Valor: 100")
	}
}

func TestTransportFaultSurfacesFromStep(t *testing.T) {
	var log bytes.Buffer
	h := hal.NewHost(240, 320, &log)
	s, err := New(h, DefaultConfig())
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	h.Panel().FailWith(errors.New("spi stuck"))

	err = s.Step()
	if !errors.Is(err, port.ErrTransport) {
		t.Fatalf("Step() err = %v, want ErrTransport", err)
	}
	if !errors.Is(s.Step(), port.ErrTransport) {
		t.Fatalf("second Step() did not report the latched fault")
	}
	if n := strings.Count(log.String(), "port: "); n != 1 {
		t.Fatalf("port log lines = %d, want 1", n)
	}
}

type noFrames struct {
	hal.Display
}

func (noFrames) AllocFrame(int) ([]uint16, error) { return nil, hal.ErrFrameSize }

type noFramesHAL struct {
	*hal.Host
}

func (h noFramesHAL) Display() hal.Display { return noFrames{h.Host.Display()} }

func TestSetupFailsWithoutBuffers(t *testing.T) {
	h := noFramesHAL{hal.NewHost(240, 320, nil)}
	_, err := New(h, DefaultConfig())
	if !errors.Is(err, ErrBufferAlloc) || !errors.Is(err, hal.ErrFrameSize) {
		t.Fatalf("New() err = %v, want ErrBufferAlloc wrapping ErrFrameSize", err)
	}
	if h.BacklightOn() {
		t.Fatalf("BacklightOn() = true after failed setup")
	}
}

func TestLoopStopsOnStepError(t *testing.T) {
	boom := errors.New("boom")
	var n int
	err := loop(func() error {
		n++
		if n == 3 {
			return boom
		}
		return nil
	}, 0, nil)
	if !errors.Is(err, boom) || n != 3 {
		t.Fatalf("loop() = %v after %d steps, want %v after 3", err, n, boom)
	}
}

func TestShowFaultPaintsPanel(t *testing.T) {
	h := hal.NewHost(240, 320, nil)
	h.Backlight().Low()
	showFault(h, errors.New("app: frame buffer allocation failed"))

	if got, want := h.Panel().Pixel(239, 0), uint16(faultBackground); got != want {
		t.Fatalf("Pixel(239, 0) = %#04x, want fault background %#04x", got, want)
	}
	if h.Panel().Sessions() == 0 {
		t.Fatalf("Sessions() = 0, want fault rows pushed")
	}
	if !h.BacklightOn() {
		t.Fatalf("BacklightOn() = false, want the fault screen lit")
	}
}

func TestSetupFailureFaultScreenIsLit(t *testing.T) {
	h := noFramesHAL{hal.NewHost(240, 320, nil)}
	_, err := New(h, DefaultConfig())
	if err == nil {
		t.Fatalf("New() err = nil, want allocation failure")
	}
	showFault(h.Host, err)
	if !h.BacklightOn() {
		t.Fatalf("BacklightOn() = false after fault screen")
	}
}

func TestFaultLines(t *testing.T) {
	cases := []struct {
		msg  string
		cols int
		want []string
	}{
		{"app: frame buffer allocation failed", 40, []string{"app", "frame buffer allocation failed"}},
		{"port: abcdefgh", 3, []string{"por", "t", "abc", "def", "gh"}},
		{"x", 0, []string{"x"}},
		{"é€ü", 2, []string{"é€", "ü"}},
	}
	for _, c := range cases {
		if got := faultLines(c.msg, c.cols); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("faultLines(%q, %d) = %q, want %q", c.msg, c.cols, got, c.want)
		}
	}
}
