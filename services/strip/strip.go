// Package strip is the RGBW pixel buffer and its GRBW wire encoding.
package strip

import (
	"io"

	"envbadge/errcode"
	"envbadge/types"
	"envbadge/x/mathx"
)

// Strip holds a fixed cell buffer and a global brightness applied at Show.
type Strip struct {
	w          io.Writer
	cells      []types.RGBW
	wire       []byte
	brightness float32
}

// New allocates n cells writing to w (a ws2812 device on hardware).
func New(w io.Writer, n int, brightness float32) *Strip {
	return &Strip{
		w:          w,
		cells:      make([]types.RGBW, n),
		wire:       make([]byte, 4*n),
		brightness: mathx.Unit(brightness),
	}
}

func (s *Strip) Len() int                { return len(s.cells) }
func (s *Strip) Brightness() float32     { return s.brightness }
func (s *Strip) SetBrightness(f float32) { s.brightness = mathx.Unit(f) }

// Cells exposes the buffer for previews. Callers must not keep it.
func (s *Strip) Cells() []types.RGBW { return s.cells }

func (s *Strip) At(i int) types.RGBW {
	if i < 0 || i >= len(s.cells) {
		return types.Off
	}
	return s.cells[i]
}

// Set ignores out-of-range indices.
func (s *Strip) Set(i int, c types.RGBW) {
	if i >= 0 && i < len(s.cells) {
		s.cells[i] = c
	}
}

func (s *Strip) Fill(c types.RGBW) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Encode writes the scaled buffer as G,R,B,W bytes into the wire buffer and
// returns it.
func (s *Strip) Encode() []byte {
	for i, c := range s.cells {
		o := 4 * i
		s.wire[o+0] = mathx.ScaleU8(c.G, s.brightness)
		s.wire[o+1] = mathx.ScaleU8(c.R, s.brightness)
		s.wire[o+2] = mathx.ScaleU8(c.B, s.brightness)
		s.wire[o+3] = mathx.ScaleU8(c.W, s.brightness)
	}
	return s.wire
}

// Show pushes the buffer to the writer.
func (s *Strip) Show() error {
	if s.w == nil {
		return nil
	}
	if _, err := s.w.Write(s.Encode()); err != nil {
		return errcode.Wrap("strip.Show", err)
	}
	return nil
}
