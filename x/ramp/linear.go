package ramp

import (
	"time"

	"envbadge/x/mathx"
)

// Step applies one intermediate level.
type Step func(level float32)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear walks level from cur to to in steps equal increments spread over
// d, calling tick between increments. The caller drives timing, so this is
// synchronous. steps==0 or d==0 snaps to 'to'. Levels stay within [0, 1].
func Linear(cur, to float32, d time.Duration, steps int, tick Tick, set Step) {
	to = mathx.Unit(to)
	if steps <= 0 || d <= 0 {
		set(to)
		return
	}
	stepDur := d / time.Duration(steps)
	if stepDur <= 0 {
		stepDur = time.Millisecond
	}
	delta := (to - cur) / float32(steps)
	for i := 1; i < steps; i++ {
		if !tick(stepDur) {
			return
		}
		set(mathx.Unit(cur + delta*float32(i)))
	}
	if !tick(stepDur) {
		return
	}
	set(to)
}
