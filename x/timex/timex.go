package timex

import "time"

// Clock is the only source of time for the run loop. Now must be monotonic.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System is the wall clock. time.Now carries a monotonic reading, so
// subtraction between two Now values is immune to clock steps.
type System struct{}

func (System) Now() time.Time        { return time.Now() }
func (System) Sleep(d time.Duration) { time.Sleep(d) }

// Fake is a manually driven clock. Sleep advances it without blocking.
type Fake struct {
	t      time.Time
	Slept  time.Duration
	Sleeps int
}

// NewFake starts a fake clock at start (zero time if start is zero).
func NewFake(start time.Time) *Fake {
	if start.IsZero() {
		start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &Fake{t: start}
}

func (f *Fake) Now() time.Time          { return f.t }
func (f *Fake) Advance(d time.Duration) { f.t = f.t.Add(d) }

func (f *Fake) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	f.t = f.t.Add(d)
	f.Slept += d
	f.Sleeps++
}
