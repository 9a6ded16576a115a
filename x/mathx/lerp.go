package mathx

// Lerp returns a + (b-a)*t. t is not clamped.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// LerpU8 interpolates between two 8-bit channel values with t clamped to
// [0, 1], rounding to nearest. The result stays within [min(a,b), max(a,b)].
func LerpU8(a, b uint8, t float64) uint8 {
	t = Unit(t)
	v := Lerp(float64(a), float64(b), t) + 0.5
	return uint8(Clamp(v, 0, 255))
}

// ScaleU8 multiplies an 8-bit value by f in [0, 1] (clamped), rounding to
// nearest.
func ScaleU8(v uint8, f float32) uint8 {
	f = Unit(f)
	return uint8(float32(v)*f + 0.5)
}
