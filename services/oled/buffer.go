package oled

import "image/color"

// Buffer is an in-memory monochrome panel. The simulator renders it and
// tests inspect it.
type Buffer struct {
	w, h   int16
	px     []bool
	Frames int
}

func NewBuffer(w, h int16) *Buffer {
	return &Buffer{w: w, h: h, px: make([]bool, int(w)*int(h))}
}

func (b *Buffer) Size() (int16, int16) { return b.w, b.h }
func (b *Buffer) Display() error       { b.Frames++; return nil }

func (b *Buffer) ClearBuffer() {
	for i := range b.px {
		b.px[i] = false
	}
}

// SetPixel lights any pixel with a non-zero colour channel.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.px[int(y)*int(b.w)+int(x)] = c.R|c.G|c.B != 0
}

func (b *Buffer) At(x, y int16) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	return b.px[int(y)*int(b.w)+int(x)]
}

// Lit counts lit pixels, optionally within columns [x0, x1).
func (b *Buffer) Lit(x0, x1 int16) int {
	n := 0
	for y := int16(0); y < b.h; y++ {
		for x := x0; x < x1 && x < b.w; x++ {
			if b.At(x, y) {
				n++
			}
		}
	}
	return n
}
