package display

import (
	"testing"
	"time"

	"envbadge/types"
)

func TestButtonEdges(t *testing.T) {
	b := NewButton(0)
	now := time.Unix(0, 0)
	steps := []struct {
		level bool
		want  Edge
	}{
		{true, EdgeNone},
		{false, EdgePress},
		{false, EdgeNone}, // held
		{true, EdgeRelease},
		{true, EdgeNone},
		{false, EdgePress},
	}
	for i, s := range steps {
		now = now.Add(100 * time.Millisecond)
		if got := b.Update(s.level, now); got != s.want {
			t.Fatalf("step %d: got %v, want %v", i, got, s.want)
		}
	}
	if !b.Pressed() {
		t.Fatalf("button should read pressed")
	}
}

func TestButtonDebounce(t *testing.T) {
	b := NewButton(50 * time.Millisecond)
	t0 := time.Unix(0, 0)
	if b.Update(false, t0) != EdgePress {
		t.Fatalf("first press missed")
	}
	if e := b.Update(true, t0.Add(10*time.Millisecond)); e != EdgeNone {
		t.Fatalf("bounce accepted: %v", e)
	}
	if e := b.Update(true, t0.Add(60*time.Millisecond)); e != EdgeRelease {
		t.Fatalf("release after window: %v", e)
	}
}

func TestControllerWraps(t *testing.T) {
	c := NewController(3)
	c.Advance()
	c.Advance()
	if c.Active() != 2 {
		t.Fatalf("active = %d", c.Active())
	}
	if got := c.Advance(); got != 0 {
		t.Fatalf("wrap from 2 of 3 = %d, want 0", got)
	}
}

func TestControllerHandle(t *testing.T) {
	c := NewController(4)
	if _, changed := c.Handle(EdgeRelease); changed || c.Active() != 0 {
		t.Fatalf("release changed page")
	}
	if _, changed := c.Handle(EdgeNone); changed {
		t.Fatalf("no edge changed page")
	}
	for want := types.PageID(1); want < 4; want++ {
		if got, changed := c.Handle(EdgePress); !changed || got != want {
			t.Fatalf("press -> %d changed=%v, want %d", got, changed, want)
		}
	}
	if got, _ := c.Handle(EdgePress); got != 0 {
		t.Fatalf("wrap = %d", got)
	}
	if NewController(0).Advance() != 0 {
		t.Fatalf("degenerate controller should stay on page 0")
	}
}
