package app

import (
	"math/rand"

	"cydgui/gui"
)

const panelItems = 5

// widgets are the handles the loop needs after the tree is built.
type widgets struct {
	button      *gui.Obj
	buttonLabel *gui.Label
	chart       *gui.Chart
	series      [2]*gui.Series
	panel       *gui.Obj
	sliders     [panelItems]*gui.Slider
	values      [panelItems]*gui.Label
}

func buildUI(scr *gui.Obj, rng *rand.Rand) *widgets {
	w := &widgets{}
	w.button, w.buttonLabel = createButton(scr)
	w.chart, w.series = createChart(scr, rng)
	w.panel = createPanel(scr, rng, w)
	return w
}

func createButton(scr *gui.Obj) (*gui.Obj, *gui.Label) {
	btn := gui.NewButton(scr)
	btn.SetSize(150, 40)
	btn.Align(gui.AlignTopMid, 0, 15)

	lbl := gui.NewLabel(btn)
	lbl.SetText(LabelShowChart)
	lbl.Center()

	btn.SetBgColor(gui.PaletteMain(gui.PaletteBlue))
	btn.SetTextColor(gui.White)
	btn.SetRadius(10)
	return btn, lbl
}

func createChart(scr *gui.Obj, rng *rand.Rand) (*gui.Chart, [2]*gui.Series) {
	ch := gui.NewChart(scr)
	ch.SetSize(200, 150)
	ch.Align(gui.AlignCenter, 0, 40)
	ch.SetType(gui.ChartLine)
	ch.SetRange(0, 100)
	ch.SetPointCount(10)

	red := ch.AddSeries(gui.PaletteMain(gui.PaletteRed))
	blue := ch.AddSeries(gui.PaletteMain(gui.PaletteBlue))
	for i := 0; i < 10; i++ {
		ch.SetNextValue(red, int16(randRange(rng, 20, 80)))
		ch.SetNextValue(blue, int16(randRange(rng, 10, 90)))
	}

	ch.SetBgColor(gui.PaletteLighten(gui.PaletteGrey, 1))
	ch.SetBorderWidth(1)
	ch.SetRadius(5)
	ch.SetHidden(true)
	return ch, [2]*gui.Series{red, blue}
}

func createPanel(scr *gui.Obj, rng *rand.Rand, w *widgets) *gui.Obj {
	p := gui.NewObj(scr)
	p.SetSize(220, 200)
	p.Align(gui.AlignCenter, 0, 40)
	p.SetBgColor(gui.PaletteLighten(gui.PaletteGrey, 1))
	p.SetRadius(5)
	p.SetPadAll(10)
	p.SetScrollbarMode(gui.ScrollbarActive)
	p.SetScrollDir(gui.DirVer)

	for i := 0; i < panelItems; i++ {
		item := gui.NewObj(p)
		item.SetSize(200, 80)
		item.Align(gui.AlignTopMid, 0, int16(i*90))
		item.SetBgColor(gui.PaletteLighten(gui.PaletteBlue, 1+i))
		item.SetRadius(5)
		item.SetScrollable(false)

		title := gui.NewLabel(item)
		title.SetTextf("Elemento %d", i+1)
		title.Align(gui.AlignTopMid, 0, 5)
		title.SetTextColor(gui.White)

		sl := gui.NewSlider(item)
		sl.SetWidth(180)
		sl.Align(gui.AlignCenter, 0, 5)
		sl.SetValue(int16(randRange(rng, 0, 100)))

		val := gui.NewLabel(item)
		val.SetTextf("Valor: %d", sl.Value())
		val.Align(gui.AlignBottomMid, 0, -5)
		val.SetTextColor(gui.White)

		sl.AddEventCallback(func(*gui.Event) {
			val.SetTextf("Valor: %d", sl.Value())
		}, gui.EventValueChanged)

		w.sliders[i] = sl
		w.values[i] = val
	}
	return p
}

// randRange returns a value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}
