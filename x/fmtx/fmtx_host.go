//go:build !(rp2040 || rp2350 || tinyfmt)

package fmtx

import "fmt"

func Sprintf(format string, a ...any) string { return fmt.Sprintf(format, a...) }
