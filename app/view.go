package app

import "cydgui/gui"

// View is the screen content currently shown under the toggle button.
type View uint8

const (
	PanelVisible View = iota
	ChartVisible
)

func (v View) String() string {
	if v == ChartVisible {
		return "chart"
	}
	return "panel"
}

const (
	LabelShowChart = "Ver Grafica"
	LabelShowPanel = "Ver Panel"
)

// Hider is anything that can be shown or hidden.
type Hider interface {
	SetHidden(bool)
}

// Texter is anything with a settable text.
type Texter interface {
	SetText(string)
}

// ViewToggle switches between the chart and the panel. It is the only writer
// of the two hidden flags and the button label.
type ViewToggle struct {
	state View
	chart Hider
	panel Hider
	label Texter
}

// NewViewToggle starts in PanelVisible and applies that state to the widgets.
func NewViewToggle(chart, panel Hider, label Texter) *ViewToggle {
	v := &ViewToggle{state: PanelVisible, chart: chart, panel: panel, label: label}
	v.apply()
	return v
}

func (v *ViewToggle) State() View { return v.state }

// Toggle flips the view and updates the widgets before returning.
func (v *ViewToggle) Toggle() {
	if v.state == PanelVisible {
		v.state = ChartVisible
	} else {
		v.state = PanelVisible
	}
	v.apply()
}

// OnEvent is the button callback. Only clicks toggle.
func (v *ViewToggle) OnEvent(e *gui.Event) {
	if e.Code != gui.EventClicked {
		return
	}
	v.Toggle()
}

func (v *ViewToggle) apply() {
	chart := v.state == ChartVisible
	v.chart.SetHidden(!chart)
	v.panel.SetHidden(chart)
	if chart {
		v.label.SetText(LabelShowPanel)
	} else {
		v.label.SetText(LabelShowChart)
	}
}
