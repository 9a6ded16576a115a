package crc8

import "testing"

func TestChecksum(t *testing.T) {
	// Sensirion datasheet example: 0xBEEF -> 0x92 with init 0xFF.
	if got := Checksum([]byte{0xBE, 0xEF}, 0xFF); got != 0x92 {
		t.Fatalf("sensirion crc = %#x, want 0x92", got)
	}
	if got := Checksum(nil, 0xFF); got != 0xFF {
		t.Fatalf("empty = %#x", got)
	}
	if got := Checksum([]byte{0x00}, 0x00); got != 0x00 {
		t.Fatalf("zero = %#x", got)
	}
}
