package tsl2591

import (
	"errors"
	"math"
	"testing"

	"envbadge/errcode"
)

// fakeBus answers register reads from regs, keyed by the command byte.
type fakeBus struct {
	regs   map[byte][]byte
	writes [][]byte
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if len(r) == 0 {
		b.writes = append(b.writes, append([]byte(nil), w...))
		return nil
	}
	v, ok := b.regs[w[0]]
	if !ok {
		return errors.New("nack")
	}
	copy(r, v)
	return nil
}

func TestConfigureAndLux(t *testing.T) {
	b := &fakeBus{regs: map[byte][]byte{
		0xA0 | regID:      {deviceID},
		0xA0 | regC0DataL: {0xE8, 0x03, 0xC8, 0x00}, // full 1000, ir 200
	}}
	d := New(b)
	if err := d.Configure(Config{Gain: GainMed, Integration: Integration100ms}); err != nil {
		t.Fatal(err)
	}
	if len(b.writes) != 2 || b.writes[0][1] != byte(GainMed) || b.writes[1][1] != 0x03 {
		t.Fatalf("writes = %x", b.writes)
	}
	lux, err := d.ReadLux()
	if err != nil {
		t.Fatal(err)
	}
	// (1000-200)*(1-0.2) / (100*25/408)
	want := 800 * 0.8 / (2500.0 / 408)
	if math.Abs(lux-want) > 1e-9 {
		t.Fatalf("lux = %v, want %v", lux, want)
	}
}

func TestWrongIDAndOverflow(t *testing.T) {
	d := New(&fakeBus{regs: map[byte][]byte{0xA0 | regID: {0x11}}})
	if err := d.Configure(); !errors.Is(err, ErrWrongID) || errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("err = %v", err)
	}
	if _, err := d.Lux(0xFFFF, 10); !errors.Is(err, ErrOverflow) {
		t.Fatalf("overflow err = %v", err)
	}
	if lux, err := d.Lux(0, 0); err != nil || lux != 0 {
		t.Fatalf("dark = %v, %v", lux, err)
	}
}

func TestChannelsBusError(t *testing.T) {
	d := New(&fakeBus{regs: map[byte][]byte{}})
	if _, err := d.ReadLux(); errcode.Of(err) != errcode.BusError {
		t.Fatalf("err = %v", err)
	}
}
