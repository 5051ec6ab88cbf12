package hal

// RGB565 is the panel's native pixel layout, rrrrrggggggbbbbb.
const (
	redShift   = 11
	greenShift = 5
	red5       = 0x1F
	green6     = 0x3F
)

// RGB565 packs 8-bit channels by truncation.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<redShift | uint16(g>>2)<<greenShift | uint16(b>>3)
}

// RGB888 widens an RGB565 pixel, replicating the high bits into the low ones
// so full-scale channels stay at 0xFF.
func RGB888(p uint16) (r, g, b uint8) {
	r5 := uint8(p>>redShift) & red5
	g6 := uint8(p>>greenShift) & green6
	b5 := uint8(p) & red5
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}
