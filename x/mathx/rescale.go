package mathx

// Rescale maps v linearly from [oldMin, oldMax] to [newMin, newMax].
// With clamp set, the result is bounded to the target interval whichever way
// round its ends are given.
//
// A zero-width source interval is a configuration bug and panics.
func Rescale(v, oldMin, oldMax, newMin, newMax float64, clamp bool) float64 {
	if oldMax == oldMin {
		panic("mathx: rescale from zero-width range")
	}
	out := newMin + (v-oldMin)*(newMax-newMin)/(oldMax-oldMin)
	if clamp {
		out = Clamp(out, newMin, newMax)
	}
	return out
}
