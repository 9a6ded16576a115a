package strip

import (
	"bytes"
	"errors"
	"testing"

	"envbadge/types"
)

func TestShowEncodesGRBW(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 2, 0.5)
	s.Set(0, types.RGBW{R: 200, G: 100, B: 0, W: 10})
	s.Set(1, types.RGBW{B: 255})
	s.Set(5, types.White) // out of range, ignored
	if err := s.Show(); err != nil {
		t.Fatal(err)
	}
	want := []byte{50, 100, 0, 5, 0, 0, 128, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wire = %v, want %v", buf.Bytes(), want)
	}
}

func TestBrightnessClampedAndFill(t *testing.T) {
	s := New(nil, 3, 2)
	if s.Brightness() != 1 {
		t.Fatalf("brightness = %v", s.Brightness())
	}
	s.SetBrightness(-1)
	if s.Brightness() != 0 {
		t.Fatalf("brightness = %v", s.Brightness())
	}
	s.Fill(types.BootFill)
	for i := 0; i < s.Len(); i++ {
		if s.At(i) != types.BootFill {
			t.Fatalf("cell %d = %+v", i, s.At(i))
		}
	}
	if s.At(-1) != types.Off {
		t.Fatalf("out of range At")
	}
	if err := s.Show(); err != nil {
		t.Fatalf("nil writer: %v", err)
	}
}

type failWriter struct{}

var errWire = errors.New("wire")

func (failWriter) Write([]byte) (int, error) { return 0, errWire }

func TestShowError(t *testing.T) {
	s := New(failWriter{}, 1, 1)
	if err := s.Show(); !errors.Is(err, errWire) {
		t.Fatalf("err = %v", err)
	}
}
