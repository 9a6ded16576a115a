// Package rank classifies sensor readings into qualitative labels using
// compiled-in threshold tables.
package rank

import (
	"math"

	"envbadge/errcode"
)

// Label is a qualitative rank such as "warm" or "VENT".
type Label string

// NotAvailable is returned when no threshold matches, including NaN input.
const NotAvailable Label = "n/a"

// Neutral reports whether the label carries no news. Neutral labels are
// rendered blank on the detail page.
func (l Label) Neutral() bool { return l == "norm" || l == "low" }

// Threshold is the lowest value that earns Label.
type Threshold struct {
	Min   float64
	Label Label
}

// Table holds one metric's thresholds, highest first, plus the floor band.
type Table struct {
	name       string
	floor      float64
	floorLabel Label
	thresholds []Threshold
}

// NewTable checks that thresholds are strictly descending.
func NewTable(name string, floor float64, floorLabel Label, thresholds ...Threshold) (*Table, error) {
	if floorLabel == "" {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "rank.NewTable", Msg: name + ": empty floor label"}
	}
	for i, t := range thresholds {
		if math.IsNaN(t.Min) {
			return nil, &errcode.E{C: errcode.InvalidConfig, Op: "rank.NewTable", Msg: name + ": NaN threshold"}
		}
		if i > 0 && !(t.Min < thresholds[i-1].Min) {
			return nil, &errcode.E{C: errcode.InvalidConfig, Op: "rank.NewTable", Msg: name + ": thresholds must descend"}
		}
	}
	ts := make([]Threshold, len(thresholds))
	copy(ts, thresholds)
	return &Table{name: name, floor: floor, floorLabel: floorLabel, thresholds: ts}, nil
}

// MustTable is NewTable for package-level tables.
func MustTable(name string, floor float64, floorLabel Label, thresholds ...Threshold) *Table {
	t, err := NewTable(name, floor, floorLabel, thresholds...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Name() string      { return t.name }
func (t *Table) Floor() float64    { return t.floor }
func (t *Table) FloorLabel() Label { return t.floorLabel }

// Thresholds returns a copy, highest first.
func (t *Table) Thresholds() []Threshold {
	out := make([]Threshold, len(t.thresholds))
	copy(out, t.thresholds)
	return out
}

// Classify is shorthand for Classify(v, t).
func (t *Table) Classify(v float64) Label { return Classify(v, t) }

// Classify walks the table from the highest threshold down. The floor band
// is tested on every step before the threshold itself, so a value at or
// below the floor wins over an exact threshold match. A table without
// thresholds never reaches the floor test and yields NotAvailable.
func Classify(v float64, t *Table) Label {
	if t == nil || math.IsNaN(v) {
		return NotAvailable
	}
	for _, th := range t.thresholds {
		if v <= t.floor {
			return t.floorLabel
		}
		if v >= th.Min {
			return th.Label
		}
	}
	return NotAvailable
}
