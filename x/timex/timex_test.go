package timex

import (
	"testing"
	"time"
)

func TestFakeSleepAdvances(t *testing.T) {
	f := NewFake(time.Time{})
	t0 := f.Now()
	f.Sleep(100 * time.Millisecond)
	f.Sleep(0)
	f.Advance(2 * time.Second)
	if got := f.Now().Sub(t0); got != 2100*time.Millisecond {
		t.Fatalf("elapsed %v, want 2.1s", got)
	}
	if f.Sleeps != 1 || f.Slept != 100*time.Millisecond {
		t.Fatalf("sleep accounting: %d / %v", f.Sleeps, f.Slept)
	}
}

var _ Clock = System{}
var _ Clock = (*Fake)(nil)
