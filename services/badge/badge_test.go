package badge

import (
	"context"
	"testing"
	"time"

	"envbadge/services/config"
	"envbadge/services/render"
	"envbadge/services/sensors"
	"envbadge/services/strip"
	"envbadge/types"
	"envbadge/x/gradient"
	"envbadge/x/timex"
)

type fakeDisplay struct {
	text    map[types.FieldID]string
	active  types.PageID
	flushes int
}

func (d *fakeDisplay) SetText(id types.FieldID, s string)  { d.text[id] = s }
func (d *fakeDisplay) MeasureWidth(id types.FieldID) int16 { return int16(6 * len(d.text[id])) }
func (d *fakeDisplay) MoveTo(types.FieldID, int16)         {}
func (d *fakeDisplay) Width() int16                        { return 128 }
func (d *fakeDisplay) SetActivePage(id types.PageID)       { d.active = id }
func (d *fakeDisplay) Flush() error                        { d.flushes++; return nil }

type pin struct{ level bool }

func (p *pin) Get() bool   { return p.level }
func (p *pin) Set(on bool) { p.level = on }

type counter struct{ n int }

func (c *counter) Write(p []byte) (int, error) { c.n++; return len(p), nil }

type rig struct {
	b     *Badge
	clk   *timex.Fake
	port  *sensors.FakePort
	disp  *fakeDisplay
	strip *strip.Strip
	wire  *counter
	btn   *pin
	led   *pin
}

func newRig(t *testing.T, variant string) *rig {
	t.Helper()
	cfg, err := config.Load(variant)
	if err != nil {
		t.Fatal(err)
	}
	r := &rig{
		clk:  timex.NewFake(time.Time{}),
		port: &sensors.FakePort{},
		disp: &fakeDisplay{text: map[types.FieldID]string{}},
		wire: &counter{},
		btn:  &pin{level: true},
		led:  &pin{},
	}
	r.port.Set(types.MetricTemperature, 25)
	r.port.Set(types.MetricHumidity, 50)
	r.port.Set(types.MetricPressure, 1013.2)
	r.port.Set(types.MetricLux, 200)
	r.port.Set(types.MetricTVOC, 1430)
	r.port.Set(types.MetricECO2, 400)
	r.strip = strip.New(r.wire, cfg.Strip.Length, cfg.Strip.Brightness)
	r.b = New(Deps{
		Config:  cfg,
		Clock:   r.clk,
		Sensors: r.port,
		Display: r.disp,
		Strip:   r.strip,
		Button:  r.btn,
		LED:     r.led,
		Seed:    1,
	})
	return r
}

// step runs one tick and the loop sleep.
func (r *rig) step() {
	r.b.Tick()
	r.clk.Sleep(r.b.cfg.Loop)
}

func (r *rig) press() {
	r.btn.level = false
	r.step()
	r.btn.level = true
	r.step()
}

func captures(p *sensors.FakePort) int { return len(p.Calls) / int(types.NumMetrics) }

func TestFirstTickRendersImmediately(t *testing.T) {
	r := newRig(t, "classic")
	r.b.Tick()
	if captures(r.port) != 1 || r.disp.flushes != 1 {
		t.Fatalf("captures=%d flushes=%d", captures(r.port), r.disp.flushes)
	}
	if got := r.disp.text[render.FieldID(0, 1)]; got != "T: 25.0C" {
		t.Fatalf("temperature field = %q", got)
	}
}

func TestSensorCadence(t *testing.T) {
	r := newRig(t, "classic")
	for i := 0; i < 20; i++ { // 0 .. 1.9 s
		r.step()
	}
	if n := captures(r.port); n != 1 {
		t.Fatalf("captures before interval = %d", n)
	}
	r.step() // 2.0 s
	if n := captures(r.port); n != 2 {
		t.Fatalf("captures at interval = %d", n)
	}
}

func TestButtonAdvancesAndWraps(t *testing.T) {
	r := newRig(t, "classic")
	r.step()
	r.btn.level = false
	r.step()
	if !r.led.level {
		t.Fatalf("led should be on while pressed")
	}
	if r.b.Active() != 1 || r.disp.active != 1 {
		t.Fatalf("active = %d / %d", r.b.Active(), r.disp.active)
	}
	// The new page is drawn at once from the last snapshot.
	if got := r.disp.text[render.FieldID(1, 0)]; got != "Temp (C) [warm]" {
		t.Fatalf("climate title = %q", got)
	}
	if r.clk.Sleeps <= 2 {
		t.Fatalf("transition did not play")
	}
	r.btn.level = true
	r.step()
	if r.led.level || r.b.Active() != 1 {
		t.Fatalf("release: led=%v active=%d", r.led.level, r.b.Active())
	}
	for i := 0; i < 3; i++ {
		r.press()
	}
	if r.b.Active() != 0 {
		t.Fatalf("after four presses active = %d", r.b.Active())
	}
}

func TestBarsPageTakesStrip(t *testing.T) {
	r := newRig(t, "bars")
	r.step()
	if r.b.Animator().Yielded() {
		t.Fatalf("detail page should leave the strip to the idle animation")
	}
	r.press() // climate
	r.press() // gas
	if r.b.Active() != 2 || !r.b.Animator().Yielded() {
		t.Fatalf("active=%d yielded=%v", r.b.Active(), r.b.Animator().Yielded())
	}
	// TVOC 1430 lights 8 of 12 cells; eCO2 400 lights none.
	if r.strip.At(0) != gradient.AirQuality[0].Color || r.strip.At(7) == types.DimFill || r.strip.At(8) != types.DimFill {
		t.Fatalf("tvoc bar = %+v", r.strip.Cells()[:12])
	}
	if r.strip.At(12) != types.DimFill {
		t.Fatalf("eco2 bar = %+v", r.strip.At(12))
	}
	before := append([]types.RGBW(nil), r.strip.Cells()...)
	r.step()
	for i, c := range r.strip.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed while the bars own the strip", i)
		}
	}
	r.press() // back to detail
	if r.b.Animator().Yielded() {
		t.Fatalf("strip not reclaimed on a bar-less page")
	}
}

func TestNightModeSlowsCadence(t *testing.T) {
	r := newRig(t, "bars")
	r.port.Set(types.MetricLux, 1)
	r.step()
	if !r.b.Animator().Night() {
		t.Fatalf("night mode not entered below threshold")
	}
	start := captures(r.port)
	for i := 0; i < 25; i++ { // 2.5 s more, day interval is 1 s
		r.step()
	}
	if captures(r.port) != start {
		t.Fatalf("sampled during night interval")
	}
	r.port.Set(types.MetricLux, 50)
	for i := 0; i < 10; i++ {
		r.step()
	}
	if r.b.Animator().Night() {
		t.Fatalf("night mode not left")
	}
}

func TestBootAndRun(t *testing.T) {
	r := newRig(t, "classic")
	r.b.Boot()
	if r.strip.At(0) != types.BootFill || r.wire.n != 2 {
		t.Fatalf("boot strip = %+v shows=%d", r.strip.At(0), r.wire.n)
	}
	if r.clk.Slept != r.b.cfg.Settle {
		t.Fatalf("settle = %v", r.clk.Slept)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.b.Run(ctx); err != context.Canceled {
		t.Fatalf("Run = %v", err)
	}
}
