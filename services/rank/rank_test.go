package rank

import (
	"math"
	"testing"

	"envbadge/errcode"
)

func TestClassifyTables(t *testing.T) {
	type C struct {
		tab  *Table
		v    float64
		want Label
	}
	for _, c := range []C{
		{Temperature, 25.0, "warm"},
		{Temperature, 24.99, "norm"},
		{Temperature, 30, "hot"},
		{Temperature, 19.5, "cold"},
		{Temperature, 10, "HEAT"},
		{Temperature, 0, "freezing"},
		{Temperature, -40, "freezing"},
		{Humidity, 50, "norm"},
		{Humidity, 95, "wet"},
		{Humidity, 20, "dry"},
		{Humidity, 5, "DESERT"},
		{Humidity, 0, "dry"},
		{ECO2, 400, "low"},
		{ECO2, 401, "norm"},
		{ECO2, 1250, "VENT"},
		{ECO2, 1200, "VENT"},
		{ECO2, 1199.9, "HIGH"},
		{ECO2, 40000, "EVAC"},
		{TVOC, 220, "low"},
		{TVOC, 221, "fair"},
		{TVOC, 1430, "BAD"},
		{TVOC, 5500, "EVAC"},
	} {
		if got := c.tab.Classify(c.v); got != c.want {
			t.Fatalf("%s.Classify(%v) = %q, want %q", c.tab.Name(), c.v, got, c.want)
		}
	}
}

// Every table returns a defined label at, just below and just above each
// threshold, and far below the floor.
func TestClassifyTotal(t *testing.T) {
	for _, tab := range []*Table{Temperature, Humidity, ECO2, TVOC} {
		probe := []float64{tab.Floor() - 1e6, tab.Floor(), math.Inf(1), math.Inf(-1)}
		for _, th := range tab.Thresholds() {
			probe = append(probe, th.Min, th.Min-0.001, th.Min+0.001)
		}
		for _, v := range probe {
			if got := tab.Classify(v); got == "" {
				t.Fatalf("%s.Classify(%v) returned empty label", tab.Name(), v)
			}
		}
	}
}

func TestFloorWinsAndTop(t *testing.T) {
	for _, tab := range []*Table{Temperature, Humidity, ECO2, TVOC} {
		for _, v := range []float64{tab.Floor(), tab.Floor() - 0.5, tab.Floor() - 1000} {
			if got := tab.Classify(v); got != tab.FloorLabel() {
				t.Fatalf("%s.Classify(%v) = %q, want floor %q", tab.Name(), v, got, tab.FloorLabel())
			}
		}
		top := tab.Thresholds()[0]
		if got := tab.Classify(top.Min + 1); got != top.Label {
			t.Fatalf("%s above top = %q, want %q", tab.Name(), got, top.Label)
		}
	}
}

func TestNotAvailable(t *testing.T) {
	if got := Temperature.Classify(math.NaN()); got != NotAvailable {
		t.Fatalf("NaN = %q, want n/a", got)
	}
	if got := Classify(1, nil); got != NotAvailable {
		t.Fatalf("nil table = %q", got)
	}
	empty := MustTable("empty", 0, "low")
	if got := empty.Classify(-5); got != NotAvailable {
		t.Fatalf("empty table = %q, want n/a", got)
	}
	// Above the floor but below every threshold.
	gap := MustTable("gap", 0, "low", Threshold{10, "high"})
	if got := gap.Classify(5); got != NotAvailable {
		t.Fatalf("gap = %q, want n/a", got)
	}
}

func TestNewTableRejects(t *testing.T) {
	if _, err := NewTable("asc", 0, "low", Threshold{1, "a"}, Threshold{2, "b"}); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("ascending: err = %v", err)
	}
	if _, err := NewTable("dup", 0, "low", Threshold{2, "a"}, Threshold{2, "b"}); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("duplicate: err = %v", err)
	}
	if _, err := NewTable("nan", 0, "low", Threshold{math.NaN(), "a"}); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("NaN: err = %v", err)
	}
	if _, err := NewTable("nolabel", 0, ""); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("no floor label: err = %v", err)
	}
}

func TestNeutral(t *testing.T) {
	for l, want := range map[Label]bool{"norm": true, "low": true, "warm": false, "n/a": false, "": false} {
		if l.Neutral() != want {
			t.Fatalf("%q.Neutral() = %v", l, !want)
		}
	}
}
