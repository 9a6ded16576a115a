//go:build rp2040 || rp2350 || tinyfmt

// Package fmtx is Sprintf for display strings. The chip build carries a
// small formatter instead of fmt; the tinyfmt tag selects it on any target.
package fmtx

import (
	"unicode/utf8"

	"envbadge/x/strconvx"
)

// Sprintf supports %s %d %f %t %v and %%, with a width on every verb and a
// precision on %s and %f. Missing arguments end the output early.
func Sprintf(format string, a ...any) string {
	out := make([]byte, 0, len(format)+16)
	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			out = append(out, c)
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			out = append(out, '%')
			continue
		}
		var width int
		prec := -1
		width, i = number(format, i)
		if i < len(format) && format[i] == '.' {
			prec, i = number(format, i+1)
			if prec < 0 {
				prec = 0
			}
		}
		if i >= len(format) || next >= len(a) {
			break
		}
		arg := a[next]
		next++

		var s string
		switch format[i] {
		case 's':
			s = str(arg)
			if prec >= 0 && prec < len(s) {
				s = s[:prec]
			}
		case 'd':
			s = integer(arg)
		case 'f':
			if prec < 0 {
				prec = 6
			}
			s = strconvx.FormatFloat(float(arg), 'f', prec, 64)
		case 't':
			s = "false"
			if v, ok := arg.(bool); ok && v {
				s = "true"
			}
		case 'v':
			s = str(arg)
		default:
			s = "%!" + string(format[i])
		}
		for n := utf8.RuneCountInString(s); n < width; n++ {
			out = append(out, ' ')
		}
		out = append(out, s...)
	}
	return string(out)
}

// number parses decimal digits at i; -1 when there are none.
func number(s string, i int) (int, int) {
	n := -1
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		if n < 0 {
			n = 0
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, i
}

func str(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float32, float64:
		return strconvx.FormatFloat(float(x), 'f', 6, 64)
	case error:
		return x.Error()
	}
	return integer(v)
}

func integer(v any) string {
	switch x := v.(type) {
	case int:
		return strconvx.FormatInt(int64(x), 10)
	case int8:
		return strconvx.FormatInt(int64(x), 10)
	case int16:
		return strconvx.FormatInt(int64(x), 10)
	case int32:
		return strconvx.FormatInt(int64(x), 10)
	case int64:
		return strconvx.FormatInt(x, 10)
	case uint:
		return strconvx.FormatUint(uint64(x), 10)
	case uint8:
		return strconvx.FormatUint(uint64(x), 10)
	case uint16:
		return strconvx.FormatUint(uint64(x), 10)
	case uint32:
		return strconvx.FormatUint(uint64(x), 10)
	case uint64:
		return strconvx.FormatUint(x, 10)
	}
	return "?"
}

func float(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}
