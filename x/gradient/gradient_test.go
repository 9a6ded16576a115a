package gradient

import (
	"errors"
	"math"
	"testing"

	"envbadge/errcode"
	"envbadge/types"
)

var rgy = Must(
	Stop{0, types.RGBW{R: 0, G: 200, B: 10, W: 0}},
	Stop{0.5, types.RGBW{R: 200, G: 200, B: 10, W: 100}},
	Stop{1, types.RGBW{R: 250, G: 0, B: 10, W: 50}},
)

func TestInterpolateBoundariesExact(t *testing.T) {
	if got := Interpolate(-400, -400, 2000, rgy); got != rgy[0].Color {
		t.Fatalf("at min: %+v, want %+v", got, rgy[0].Color)
	}
	if got := Interpolate(2000, -400, 2000, rgy); got != rgy[2].Color {
		t.Fatalf("at max: %+v, want %+v", got, rgy[2].Color)
	}
	// Interior stop returns the stop itself.
	if got := Interpolate(800, -400, 2000, rgy); got != rgy[1].Color {
		t.Fatalf("at mid stop: %+v, want %+v", got, rgy[1].Color)
	}
}

func TestInterpolateClampsOutsideDomain(t *testing.T) {
	if got := Interpolate(-1e6, 0, 1, rgy); got != rgy[0].Color {
		t.Fatalf("below domain: %+v", got)
	}
	if got := Interpolate(1e6, 0, 1, rgy); got != rgy[2].Color {
		t.Fatalf("above domain: %+v", got)
	}
}

func TestInterpolateWhiteIsMeanOfBracket(t *testing.T) {
	got := Interpolate(0.1, 0, 1, rgy)
	if got.W != 50 {
		t.Fatalf("W = %d, want mean(0,100)=50", got.W)
	}
	got = Interpolate(0.9, 0, 1, rgy)
	if got.W != 75 {
		t.Fatalf("W = %d, want mean(100,50)=75", got.W)
	}
}

func TestInterpolateMonotonicBetweenStops(t *testing.T) {
	// R rises 0->200 over [0,0.5], G falls 200->0 over [0.5,1].
	prev := Interpolate(0, 0, 1, rgy)
	for i := 1; i <= 50; i++ {
		c := Interpolate(float64(i)/100, 0, 1, rgy)
		if c.R < prev.R {
			t.Fatalf("R not monotonic at %d: %d < %d", i, c.R, prev.R)
		}
		prev = c
	}
	prev = Interpolate(0.5, 0, 1, rgy)
	for i := 51; i <= 100; i++ {
		c := Interpolate(float64(i)/100, 0, 1, rgy)
		if c.G > prev.G {
			t.Fatalf("G not monotonic at %d: %d > %d", i, c.G, prev.G)
		}
		if c.B != 10 {
			t.Fatalf("flat channel drifted: B=%d", c.B)
		}
		prev = c
	}
}

func TestMalformedTableFallsBackToWhite(t *testing.T) {
	bad := Stops{{Pos: 0.2, Color: types.RGBW{R: 1}}, {Pos: 0.4, Color: types.RGBW{R: 2}}}
	if got := bad.At(0.9); got != Fallback {
		t.Fatalf("got %+v, want fallback", got)
	}
	if got := rgy.At(math.NaN()); got != Fallback {
		t.Fatalf("NaN got %+v, want fallback", got)
	}
	var empty Stops
	if got := empty.At(0.5); got != Fallback {
		t.Fatalf("empty got %+v, want fallback", got)
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	cases := [][]Stop{
		nil,
		{{Pos: 0}},
		{{Pos: 0.1}, {Pos: 1}},
		{{Pos: 0}, {Pos: 0.9}},
		{{Pos: 0}, {Pos: 0.5}, {Pos: 0.5}, {Pos: 1}},
		{{Pos: 0}, {Pos: 0.7}, {Pos: 0.3}, {Pos: 1}},
	}
	for i, c := range cases {
		_, err := New(c...)
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
		if errcode.Of(err) != errcode.InvalidConfig {
			t.Fatalf("case %d: code %q, want invalid_config", i, errcode.Of(err))
		}
		var e *errcode.E
		if !errors.As(err, &e) || e.Op != "gradient.New" {
			t.Fatalf("case %d: want *errcode.E with op, got %v", i, err)
		}
	}
}

func TestPalettesSpanUnit(t *testing.T) {
	for name, p := range map[string]Stops{"thermal": Thermal, "moisture": Moisture, "air": AirQuality} {
		if p[0].Pos != 0 || p[len(p)-1].Pos != 1 {
			t.Fatalf("%s does not span [0,1]", name)
		}
	}
}
