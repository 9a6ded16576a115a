package types

import "image/color"

// RGBW is one pixel-strip cell. W drives the separate white die on
// SK6812-style parts; it is not alpha.
type RGBW struct {
	R, G, B, W uint8
}

var (
	Off      = RGBW{}
	White    = RGBW{R: 255, G: 255, B: 255, W: 255}
	DimFill  = RGBW{W: 6}
	BootFill = RGBW{R: 255, W: 127}
)

// RGBA flattens the cell for RGB-only sinks, folding W into each channel.
func (c RGBW) RGBA() color.RGBA {
	add := func(v uint8) uint8 {
		s := uint16(v) + uint16(c.W)
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: 0xff}
}
