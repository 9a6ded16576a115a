//go:build rp2040 || rp2350 || tinyfmt

// Package strconvx formats numbers for display strings. The chip build
// avoids strconv; the tinyfmt tag selects it on any target.
package strconvx

import "math"

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func FormatInt(i int64, base int) string {
	if i < 0 {
		return "-" + FormatUint(uint64(-i), base)
	}
	return FormatUint(uint64(i), base)
}

// FormatUint falls back to base 10 outside 2..36.
func FormatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	if u == 0 {
		return "0"
	}
	var buf [64]byte
	i := len(buf)
	for b := uint64(base); u > 0; u /= b {
		i--
		buf[i] = digits[u%b]
	}
	return string(buf[i:])
}

// FormatFloat writes f in fixed notation whatever fmt asks for. Rounding is
// half-up on the scaled fraction, which is enough for one or two places on
// sensor values.
func FormatFloat(f float64, _ byte, prec, _ int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if prec < 0 {
		prec = 6
	}
	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}
	scale := math.Pow(10, float64(prec))
	whole := uint64(f)
	frac := uint64((f-float64(whole))*scale + 0.5)
	if float64(frac) >= scale {
		whole++
		frac = 0
	}
	out := sign + FormatUint(whole, 10)
	if prec == 0 {
		return out
	}
	fs := FormatUint(frac, 10)
	buf := make([]byte, 0, len(out)+1+prec)
	buf = append(buf, out...)
	buf = append(buf, '.')
	for n := len(fs); n < prec; n++ {
		buf = append(buf, '0')
	}
	return string(append(buf, fs...))
}
