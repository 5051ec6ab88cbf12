package gui

// NewButton creates a clickable, non-scrollable container in the main blue.
func NewButton(parent *Obj) *Obj {
	b := NewObj(parent)
	b.scrollable = false
	b.scrollDir = DirNone
	b.style = Style{
		BgColor: PaletteMain(PaletteBlue),
		BgOpa:   true,
		Radius:  8,
	}
	b.SetSize(120, 40)
	return b
}
