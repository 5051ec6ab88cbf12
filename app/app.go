package app

import (
	"fmt"
	"math/rand"

	"cydgui/gui"
	"cydgui/hal"
	"cydgui/port"
)

// System owns the frame buffers, the renderer and the widget tree. It is
// driven by calling Step once per tick from a single goroutine.
type System struct {
	h   hal.HAL
	cfg Config
	log hal.Logger

	frames FramePair
	disp   *gui.Display
	indev  *gui.InputDevice
	sink   *port.PixelSink
	touch  *port.TouchSource

	ui     *widgets
	toggle *ViewToggle
}

// New performs one-time setup: backlight off, panel and touch bring-up,
// buffer allocation, renderer registration and widget creation, then
// backlight on. Any failure aborts setup.
func New(h hal.HAL, cfg Config) (*System, error) {
	s := &System{h: h, cfg: cfg, log: h.Logger()}

	bl := h.Backlight()
	bl.Low()

	panel := h.Display()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = panel.Width(), panel.Height()
	}
	if cfg.Width != panel.Width() || cfg.Height != panel.Height() {
		return nil, fmt.Errorf("app: config %dx%d does not match panel %dx%d", cfg.Width, cfg.Height, panel.Width(), panel.Height())
	}

	s.touch = port.NewTouchSource(h.Touch(), cfg.Calibration, cfg.TouchTimeout)

	frames, err := allocFramePair(panel, cfg.Width*cfg.BufRows)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.frames = frames

	buf, err := gui.NewDrawBuf(frames.A, frames.B)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.sink = port.NewPixelSink(panel.Transport(), s.log)
	s.disp, err = gui.NewDisplay(gui.DisplayConfig{
		HorRes: int16(cfg.Width),
		VerRes: int16(cfg.Height),
		Buf:    buf,
		Flush:  s.sink.Flush,
		Logger: s.log,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.indev = s.disp.RegisterInput(s.touch.Read)

	s.ui = buildUI(s.disp.Screen(), rand.New(rand.NewSource(cfg.Seed)))
	s.toggle = NewViewToggle(s.ui.chart, s.ui.panel, s.ui.buttonLabel)
	s.ui.button.AddEventCallback(s.toggle.OnEvent, gui.EventClicked)

	bl.High()
	s.logf("Setup done")
	return s, nil
}

// NewStep adapts New to the host runners.
func NewStep(cfg Config) hal.NewAppFunc {
	return func(h hal.HAL) (hal.StepFunc, error) {
		s, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return s.Step, nil
	}
}

// Step runs one renderer slice: one input read, event dispatch, and
// redraw of whatever became invalid. It returns a latched transport fault.
func (s *System) Step() error {
	if err := s.sink.Err(); err != nil {
		return err
	}
	s.disp.TimerHandler()
	return s.sink.Err()
}

func (s *System) View() View                  { return s.toggle.State() }
func (s *System) Toggle() *ViewToggle         { return s.toggle }
func (s *System) Display() *gui.Display       { return s.disp }
func (s *System) Input() *gui.InputDevice     { return s.indev }
func (s *System) Frames() FramePair           { return s.frames }
func (s *System) Sink() *port.PixelSink       { return s.sink }
func (s *System) ButtonLabel() *gui.Label     { return s.ui.buttonLabel }
func (s *System) Chart() *gui.Chart           { return s.ui.chart }
func (s *System) Panel() *gui.Obj             { return s.ui.panel }
func (s *System) Button() *gui.Obj            { return s.ui.button }
func (s *System) Slider(i int) *gui.Slider    { return s.ui.sliders[i] }
func (s *System) ValueLabel(i int) *gui.Label { return s.ui.values[i] }

func (s *System) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString("app: " + fmt.Sprintf(format, args...))
}
