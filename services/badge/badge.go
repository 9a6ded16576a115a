// Package badge is the run loop: one Tick polls the button, refreshes the
// sensors when their interval has elapsed, and advances the strip
// animation. Everything runs on the caller's goroutine.
package badge

import (
	"context"
	"log/slog"
	"time"

	"envbadge/services/ambient"
	"envbadge/services/config"
	"envbadge/services/display"
	"envbadge/services/render"
	"envbadge/services/sensors"
	"envbadge/types"
	"envbadge/x/timex"
)

// Display is the panel as the loop drives it.
type Display interface {
	render.Surface
	SetActivePage(id types.PageID)
	Flush() error
}

// Button reads the raw, active-low level (machine.Pin satisfies it).
type Button interface{ Get() bool }

// LED is the onboard indicator (machine.Pin satisfies it).
type LED interface{ Set(on bool) }

// Deps are the owned hardware handles. LED and System may be nil.
type Deps struct {
	Config  config.Config
	Clock   timex.Clock
	Sensors sensors.Port
	Display Display
	Strip   ambient.Strip
	Button  Button
	LED     LED
	System  render.SystemPort
	Log     *slog.Logger
	Seed    int64 // sparkle randomness
}

type Badge struct {
	cfg     config.Config
	clock   timex.Clock
	log     *slog.Logger
	port    sensors.Port
	disp    Display
	strip   ambient.Strip
	button  Button
	led     LED
	sampler *sensors.Sampler
	render  *render.Renderer
	ctrl    *display.Controller
	edge    *display.Button
	anim    *ambient.Animator

	started    bool
	lastSensor time.Time
	flushErr   bool
}

// New wires the components for cfg. The config must already be valid.
func New(d Deps) *Badge {
	if d.Clock == nil {
		d.Clock = timex.System{}
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	cfg := d.Config
	canvas := ambient.NewCanvas(d.Strip, cfg.Strip.Ceiling)
	b := &Badge{
		cfg:     cfg,
		clock:   d.Clock,
		log:     d.Log,
		port:    d.Sensors,
		disp:    d.Display,
		strip:   d.Strip,
		button:  d.Button,
		led:     d.LED,
		sampler: sensors.NewSampler(d.Clock, d.Log.With("svc", "sensors")),
		render:  render.New(d.Display, d.Strip, d.System, cfg.Layout()),
		ctrl:    display.NewController(len(cfg.Pages)),
		edge:    display.NewButton(cfg.Debounce),
	}
	opts := ambient.Options{
		Frame:      cfg.Frame,
		NightScale: cfg.Night.Scale,
		Fade:       4 * cfg.Frame,
		FadeSteps:  4,
	}
	b.anim = ambient.New(canvas, d.Clock, idleFor(cfg, canvas, d.Seed), transitionFor(cfg, canvas), opts, d.Log.With("svc", "ambient"))
	return b
}

func (b *Badge) Active() types.PageID        { return b.ctrl.Active() }
func (b *Badge) Snapshot() types.Snapshot    { return b.sampler.Last() }
func (b *Badge) Animator() *ambient.Animator { return b.anim }

// Boot paints the boot colour and waits for the panel to settle.
func (b *Badge) Boot() {
	b.strip.SetBrightness(b.cfg.Strip.Brightness)
	b.strip.Fill(types.Off)
	b.show()
	b.strip.Fill(types.BootFill)
	b.show()
	b.disp.SetActivePage(b.ctrl.Active())
	b.flush()
	b.log.Info("boot", "variant", b.cfg.Name, "pages", len(b.cfg.Pages))
	b.clock.Sleep(b.cfg.Settle)
}

// Run ticks until ctx is cancelled.
func (b *Badge) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		b.Tick()
		b.clock.Sleep(b.cfg.Loop)
	}
}

// Tick runs one loop iteration.
func (b *Badge) Tick() {
	now := b.clock.Now()

	level := b.button.Get()
	if b.led != nil {
		b.led.Set(!level)
	}
	if id, changed := b.ctrl.Handle(b.edge.Update(level, now)); changed {
		b.pageChanged(id)
	}

	if !b.started || now.Sub(b.lastSensor) >= b.cfg.SensorInterval(b.anim.Night()) {
		b.started = true
		b.lastSensor = now
		b.sensorTick()
	}

	b.anim.Tick(b.clock.Now())
}

// pageChanged redraws the new page from the last snapshot, plays the
// transition, then hands the strip to the page's bars or back to idle.
func (b *Badge) pageChanged(id types.PageID) {
	b.log.Info("page", "id", id)
	snap := b.sampler.Last()
	b.disp.SetActivePage(id)
	b.render.Render(id, snap, false)
	b.flush()
	b.anim.PlayTransition()

	if p, _ := b.render.Page(id); len(p.Bars) > 0 {
		b.render.PaintBars(id, snap)
		b.anim.Yield()
		b.show()
		return
	}
	b.anim.Reclaim()
}

func (b *Badge) sensorTick() {
	snap := b.sampler.Capture(b.port)
	if b.cfg.Night.Enabled && snap.Has(types.MetricLux) {
		// Single threshold, no hysteresis band.
		b.anim.SetNight(snap.Lux < b.cfg.Night.Lux)
	}
	id := b.ctrl.Active()
	painted := b.render.Render(id, snap, true)
	b.flush()
	if painted {
		b.anim.Yield()
		b.show()
	} else if b.anim.Yielded() {
		b.anim.Reclaim()
	}
}

func (b *Badge) flush() {
	err := b.disp.Flush()
	if err != nil && !b.flushErr {
		b.log.Warn("display flush failed", "err", err)
	}
	b.flushErr = err != nil
}

func (b *Badge) show() {
	if err := b.strip.Show(); err != nil {
		b.log.Debug("strip show failed", "err", err)
	}
}
