package gui

import (
	"image/color"

	"cydgui/hal"
)

// Color is a native RGB565 pixel.
type Color uint16

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(hal.RGB565(r, g, b))
}

// Hex builds a Color from 0xRRGGBB.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// RGBA expands c for drawing libraries that take color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := hal.RGB888(uint16(c))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func colorFromRGBA(c color.RGBA) Color { return RGB(c.R, c.G, c.B) }

var (
	White = Hex(0xFFFFFF)
	Black = Hex(0x000000)
)

// Palette is a material design hue.
type Palette uint8

const (
	PaletteRed Palette = iota
	PaletteBlue
	PaletteGrey
)

var paletteMain = [...]uint32{
	PaletteRed:  0xF44336,
	PaletteBlue: 0x2196F3,
	PaletteGrey: 0x9E9E9E,
}

var paletteLight = [...][5]uint32{
	PaletteRed:  {0xEF5350, 0xE57373, 0xEF9A9A, 0xFFCDD2, 0xFFEBEE},
	PaletteBlue: {0x42A5F5, 0x64B5F6, 0x90CAF9, 0xBBDEFB, 0xE3F2FD},
	PaletteGrey: {0xBDBDBD, 0xE0E0E0, 0xEEEEEE, 0xF5F5F5, 0xFAFAFA},
}

// PaletteMain returns the main shade of p.
func PaletteMain(p Palette) Color { return Hex(paletteMain[p]) }

// PaletteLighten returns shade level 1..5 of p; out-of-range levels clamp.
func PaletteLighten(p Palette, level int) Color {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return Hex(paletteLight[p][level-1])
}
