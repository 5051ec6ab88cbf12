package gui

import "fmt"

// Label is a single line of text sized to its content.
type Label struct {
	*Obj
	text string
}

func NewLabel(parent *Obj) *Label {
	l := &Label{Obj: &Obj{disp: parent.disp, parent: parent}}
	l.impl = l
	parent.children = append(parent.children, l.Obj)
	l.SetText("Text")
	return l
}

func (l *Label) Text() string { return l.text }

// SetText replaces the text and resizes the label to fit it.
func (l *Label) SetText(s string) {
	if s == l.text && l.w != 0 {
		return
	}
	l.text = s
	l.SetSize(TextWidth(s), fontHeight)
	l.Invalidate()
}

func (l *Label) SetTextf(format string, args ...any) {
	l.SetText(fmt.Sprintf(format, args...))
}

func (l *Label) drawContent(c *Canvas, coords Area) {
	c.Text(coords.X1, coords.Y1, l.text, l.textColor())
}
