// Package display tracks the active page and turns raw button levels into
// press and release edges.
package display

import (
	"time"

	"envbadge/types"
)

// Edge is a button transition seen by one Update.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgePress
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgePress:
		return "press"
	case EdgeRelease:
		return "release"
	}
	return "none"
}

// Button is an active-low push button: level false means pressed.
type Button struct {
	prev      bool
	lastEvent time.Time
	debounce  time.Duration
}

// NewButton starts released. Transitions closer than debounce to the last
// accepted one are ignored; zero disables the filter.
func NewButton(debounce time.Duration) *Button {
	return &Button{prev: true, debounce: debounce}
}

// Pressed reports the last accepted level.
func (b *Button) Pressed() bool { return !b.prev }

// Update feeds one sampled level and returns the edge it causes, at most
// one per call.
func (b *Button) Update(level bool, now time.Time) Edge {
	if level == b.prev {
		return EdgeNone
	}
	if b.debounce > 0 && !b.lastEvent.IsZero() && now.Sub(b.lastEvent) < b.debounce {
		return EdgeNone
	}
	b.prev = level
	b.lastEvent = now
	if !level {
		return EdgePress
	}
	return EdgeRelease
}

// Controller holds the active page index.
type Controller struct {
	n   int
	cur types.PageID
}

// NewController starts on page 0 of n. n below 1 is treated as 1.
func NewController(n int) *Controller {
	if n < 1 {
		n = 1
	}
	return &Controller{n: n}
}

func (c *Controller) Active() types.PageID { return c.cur }
func (c *Controller) Pages() int           { return c.n }

// Advance moves to the next page, wrapping to 0 after the last.
func (c *Controller) Advance() types.PageID {
	c.cur = types.PageID((int(c.cur) + 1) % c.n)
	return c.cur
}

// Handle applies a button edge. Only a press changes page.
func (c *Controller) Handle(e Edge) (types.PageID, bool) {
	if e != EdgePress {
		return c.cur, false
	}
	return c.Advance(), true
}
