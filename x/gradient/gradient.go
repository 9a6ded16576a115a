// Package gradient maps a value inside a numeric domain onto a colour by
// piecewise-linear interpolation over ordered colour stops.
//
// R, G and B are interpolated independently. The white channel is the plain
// mean of the two bracketing stops' W values, not a proportional blend.
package gradient

import (
	"envbadge/errcode"
	"envbadge/types"
	"envbadge/x/mathx"
)

// Stop anchors a colour at a normalised position in [0, 1].
type Stop struct {
	Pos   float64
	Color types.RGBW
}

// Stops is an ascending stop table spanning exactly [0, 1].
// Build it with New so the invariants are checked once.
type Stops []Stop

// Fallback is returned when no bracketing pair exists.
var Fallback = types.White

// New validates and returns a stop table: at least two stops, first at 0,
// last at 1, strictly increasing positions.
func New(stops ...Stop) (Stops, error) {
	if len(stops) < 2 {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "gradient.New", Msg: "need at least two stops"}
	}
	if stops[0].Pos != 0 || stops[len(stops)-1].Pos != 1 {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "gradient.New", Msg: "stops must span [0,1]"}
	}
	for i := 1; i < len(stops); i++ {
		if !(stops[i].Pos > stops[i-1].Pos) {
			return nil, &errcode.E{C: errcode.InvalidConfig, Op: "gradient.New", Msg: "stop positions must increase"}
		}
	}
	out := make(Stops, len(stops))
	copy(out, stops)
	return out, nil
}

// Must is New for compiled-in tables; a bad table panics at startup.
func Must(stops ...Stop) Stops {
	s, err := New(stops...)
	if err != nil {
		panic(err)
	}
	return s
}

// Interpolate clamps value into [min, max], normalises it and blends the two
// stops bracketing it. A value landing exactly on a stop returns that stop.
func Interpolate(value, min, max float64, stops Stops) types.RGBW {
	f := mathx.Rescale(value, min, max, 0, 1, true)
	return stops.At(f)
}

// At returns the colour at normalised position f.
func (s Stops) At(f float64) types.RGBW {
	for i := 0; i+1 < len(s); i++ {
		lo, hi := s[i], s[i+1]
		if !(f >= lo.Pos && f <= hi.Pos) {
			continue
		}
		switch f {
		case lo.Pos:
			return lo.Color
		case hi.Pos:
			return hi.Color
		}
		t := (f - lo.Pos) / (hi.Pos - lo.Pos)
		return types.RGBW{
			R: mathx.LerpU8(lo.Color.R, hi.Color.R, t),
			G: mathx.LerpU8(lo.Color.G, hi.Color.G, t),
			B: mathx.LerpU8(lo.Color.B, hi.Color.B, t),
			W: uint8((uint16(lo.Color.W) + uint16(hi.Color.W)) / 2),
		}
	}
	return Fallback
}
