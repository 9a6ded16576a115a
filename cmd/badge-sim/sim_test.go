//go:build !(rp2040 || rp2350)

package main

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"envbadge/errcode"
	"envbadge/services/display"
	"envbadge/services/oled"
	"envbadge/types"
	"envbadge/x/timex"
)

func TestPanelViewHalfBlocks(t *testing.T) {
	b := oled.NewBuffer(4, 4)
	on := color.RGBA{R: 255, A: 255}
	b.SetPixel(0, 0, on)
	b.SetPixel(0, 1, on)
	b.SetPixel(1, 0, on)
	b.SetPixel(2, 1, on)
	b.SetPixel(3, 3, on)

	want := "█▀▄ \n   ▄"
	if got := panelView(b); got != want {
		t.Fatalf("panelView =\n%q\nwant\n%q", got, want)
	}
}

func TestStripViewOneGlyphPerCell(t *testing.T) {
	cells := []types.RGBW{types.Off, types.DimFill, types.BootFill}
	if got := strings.Count(stripView(cells), "■"); got != len(cells) {
		t.Fatalf("glyphs = %d, want %d", got, len(cells))
	}
}

func TestSimPortDeterministic(t *testing.T) {
	c1, c2 := timex.NewFake(time.Time{}), timex.NewFake(time.Time{})
	a, b := newSimPort(c1, 7, -1, 0), newSimPort(c2, 7, -1, 0)
	for i := 0; i < 5; i++ {
		c1.Advance(3 * time.Second)
		c2.Advance(3 * time.Second)
		ta, _ := a.ReadTemperature()
		tb, _ := b.ReadTemperature()
		if ta != tb {
			t.Fatalf("step %d: %v != %v", i, ta, tb)
		}
		eco2, err := a.ReadECO2()
		if err != nil || eco2 < 400 {
			t.Fatalf("eco2 = %d, %v", eco2, err)
		}
		_, _ = b.ReadECO2()
		lux, _ := a.ReadLux()
		_, _ = b.ReadLux()
		if lux < 0 {
			t.Fatalf("lux = %v", lux)
		}
	}
}

func TestSimPortFixedLuxAndFailures(t *testing.T) {
	clk := timex.NewFake(time.Time{})
	p := newSimPort(clk, 1, 3, 0)
	if lux, err := p.ReadLux(); err != nil || lux != 3 {
		t.Fatalf("lux = %v, %v", lux, err)
	}
	p.failRate = 1
	if _, err := p.ReadHumidity(); errcode.Of(err) != errcode.NotReady {
		t.Fatalf("err = %v", err)
	}
}

func TestScriptedButtonPresses(t *testing.T) {
	clk := timex.NewFake(time.Time{})
	btn := newScriptedButton(clk, time.Second, 300*time.Millisecond)
	edge := display.NewButton(30 * time.Millisecond)

	presses := 0
	for i := 0; i < 30; i++ {
		if edge.Update(btn.Get(), clk.Now()) == display.EdgePress {
			presses++
		}
		clk.Sleep(100 * time.Millisecond)
	}
	if presses != 3 {
		t.Fatalf("presses = %d, want 3", presses)
	}

	off := newScriptedButton(clk, 0, time.Second)
	if !off.Get() {
		t.Fatal("disabled button reads pressed")
	}
}

func TestParseLevel(t *testing.T) {
	if _, err := parseLevel("loud"); err == nil {
		t.Fatal("bad level accepted")
	}
	if l, err := parseLevel("WARN"); err != nil || l.String() != "WARN" {
		t.Fatalf("level = %v, %v", l, err)
	}
}
