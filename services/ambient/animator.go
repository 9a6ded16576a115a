// Package ambient drives the pixel strip between sensor renders: an idle
// animation on its own frame cadence, one-shot transition effects, and the
// hand-over of the strip to data bars.
package ambient

import (
	"log/slog"
	"time"

	"envbadge/x/ramp"
	"envbadge/x/timex"
)

// Options tunes an Animator. Zero fields take defaults.
type Options struct {
	Frame      time.Duration // idle and transition frame period, default 50 ms
	MaxFrames  int           // transition guard, default 400
	NightScale float32       // ceiling multiplier at night, default 0.5
	Fade       time.Duration // ceiling ramp on night switch, default 0 (snap)
	FadeSteps  int
}

// Animator owns the strip whenever it has not yielded it to the bars.
type Animator struct {
	canvas     *Canvas
	strip      Strip
	clock      timex.Clock
	log        *slog.Logger
	idle       Animation
	transition Animation
	opts       Options

	base    float32
	last    time.Time
	yielded bool
	night   bool
	showErr bool
}

// New builds an animator over canvas. idle or transition may be nil.
func New(canvas *Canvas, clock timex.Clock, idle, transition Animation, opts Options, log *slog.Logger) *Animator {
	if opts.Frame <= 0 {
		opts.Frame = 50 * time.Millisecond
	}
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = 400
	}
	if opts.NightScale <= 0 {
		opts.NightScale = 0.5
	}
	if clock == nil {
		clock = timex.System{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Animator{
		canvas:     canvas,
		strip:      canvas.strip,
		clock:      clock,
		log:        log,
		idle:       idle,
		transition: transition,
		opts:       opts,
		base:       canvas.Ceiling(),
	}
}

func (a *Animator) Yielded() bool { return a.yielded }
func (a *Animator) Night() bool   { return a.night }

// Yield hands the strip to the bar renderer. The idle animation stays
// frozen until Reclaim. Bars are shown at the full ceiling.
func (a *Animator) Yield() {
	if !a.yielded {
		a.log.Debug("strip yielded to bars")
	}
	a.yielded = true
	a.canvas.Level(1)
}

// Reclaim takes the strip back; the next Tick draws immediately.
func (a *Animator) Reclaim() {
	if a.yielded {
		a.log.Debug("strip reclaimed")
	}
	a.yielded = false
	a.last = time.Time{}
}

// Tick steps the idle animation when a frame is due. It reports whether a
// frame was drawn.
func (a *Animator) Tick(now time.Time) bool {
	if a.yielded || a.idle == nil {
		return false
	}
	dt := a.opts.Frame
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
		if dt < a.opts.Frame {
			return false
		}
	}
	a.idle.Step(dt)
	a.show()
	a.last = now
	return true
}

// PlayTransition runs the transition effect to the end of one cycle,
// sleeping one frame between steps. It blocks the caller throughout and
// returns the number of frames drawn.
func (a *Animator) PlayTransition() int {
	if a.transition == nil {
		return 0
	}
	a.transition.Reset()
	frames := 0
	for frames < a.opts.MaxFrames {
		done := a.transition.Step(a.opts.Frame)
		a.show()
		frames++
		if done {
			break
		}
		a.clock.Sleep(a.opts.Frame)
	}
	if frames == a.opts.MaxFrames {
		a.log.Warn("transition cut short", "frames", frames)
	}
	a.last = time.Time{}
	return frames
}

// SetNight switches the brightness ceiling between day and night levels,
// ramping when a fade is configured. It reports whether the mode changed.
func (a *Animator) SetNight(on bool) bool {
	if on == a.night {
		return false
	}
	a.night = on
	to := a.base
	if on {
		to = a.base * a.opts.NightScale
	}
	a.log.Info("night mode", "on", on, "ceiling", to)
	ramp.Linear(a.canvas.Ceiling(), to, a.opts.Fade, a.opts.FadeSteps,
		func(d time.Duration) bool { a.clock.Sleep(d); return true },
		func(v float32) {
			a.canvas.SetCeiling(v)
			a.show()
		})
	return true
}

// show logs only the first of a run of failures.
func (a *Animator) show() {
	err := a.strip.Show()
	if err != nil && !a.showErr {
		a.log.Warn("strip show failed", "err", err)
	}
	a.showErr = err != nil
}
