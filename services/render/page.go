package render

import (
	"envbadge/types"
	"envbadge/x/gradient"
)

// Kind selects a page's field bindings.
type Kind uint8

const (
	KindDetail Kind = iota
	KindClimate
	KindGas
	KindStats
)

var kindNames = [...]string{"detail", "climate", "gas", "stats"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Bar is one pixel-bar region driven by a metric and a palette.
type Bar struct {
	Metric   types.Metric
	Start    int // first strip index
	Cells    int
	Min, Max float64
	Stops    gradient.Stops
}

// Page is a compiled-in page: its fields in slot order and any bars.
type Page struct {
	ID     types.PageID
	Kind   Kind
	Fields []types.Field
	Bars   []Bar
}

const slotsPerPage = 16

// FieldID numbers fields so no two pages share an ID.
func FieldID(page types.PageID, slot int) types.FieldID {
	return types.FieldID(int(page)*slotsPerPage + slot)
}

type slot struct {
	anchor types.Anchor
	y      int16
	scale  uint8
	text   string
}

// Detail page: six metric lines on the left, subtitle and ranks on the right.
const (
	detailTitle = iota
	detailTemp
	detailHum
	detailPres
	detailTVOC
	detailECO2
	detailSubtitle
	detailTempRank
	detailHumRank
	detailLux
	detailTVOCRank
	detailECO2Rank
)

var detailSlots = []slot{
	detailTitle:    {types.AnchorLeft, 4, 1, "Hello!"},
	detailTemp:     {types.AnchorLeft, 14, 1, ""},
	detailHum:      {types.AnchorLeft, 25, 1, ""},
	detailPres:     {types.AnchorLeft, 36, 1, ""},
	detailTVOC:     {types.AnchorLeft, 47, 1, ""},
	detailECO2:     {types.AnchorLeft, 59, 1, ""},
	detailSubtitle: {types.AnchorRight, 4, 1, "<3"},
	detailTempRank: {types.AnchorRight, 14, 1, ""},
	detailHumRank:  {types.AnchorRight, 24, 1, ""},
	detailLux:      {types.AnchorRight, 34, 1, ""},
	detailTVOCRank: {types.AnchorRight, 44, 1, ""},
	detailECO2Rank: {types.AnchorRight, 54, 1, ""},
}

// Large-format pages: title, big value, title, big value.
const (
	bigTitleA = iota
	bigValueA
	bigTitleB
	bigValueB
)

var bigSlots = []slot{
	bigTitleA: {types.AnchorLeft, 4, 1, ""},
	bigValueA: {types.AnchorLeft, 20, 2, ""},
	bigTitleB: {types.AnchorLeft, 40, 1, ""},
	bigValueB: {types.AnchorLeft, 56, 2, ""},
}

const (
	statsTitle = iota
	statsCPUTemp
	statsCPUFreq
	statsUSB
	statsSerial
)

var statsSlots = []slot{
	statsTitle:   {types.AnchorLeft, 4, 1, "Raspberry Pi Pico 2 W"},
	statsCPUTemp: {types.AnchorLeft, 14, 1, ""},
	statsCPUFreq: {types.AnchorLeft, 24, 1, ""},
	statsUSB:     {types.AnchorLeft, 34, 1, ""},
	statsSerial:  {types.AnchorLeft, 44, 1, ""},
}

// Bar layouts for the half-strip regions. stripLen is split in two.
func climateBars(stripLen int) []Bar {
	half := stripLen / 2
	return []Bar{
		{Metric: types.MetricTemperature, Start: 0, Cells: half, Min: 10, Max: 35, Stops: gradient.Thermal},
		{Metric: types.MetricHumidity, Start: half, Cells: stripLen - half, Min: 0, Max: 100, Stops: gradient.Moisture},
	}
}

func gasBars(stripLen int) []Bar {
	half := stripLen / 2
	return []Bar{
		{Metric: types.MetricTVOC, Start: 0, Cells: half, Min: -400, Max: 2000, Stops: gradient.AirQuality},
		{Metric: types.MetricECO2, Start: half, Cells: stripLen - half, Min: 400, Max: 2000, Stops: gradient.AirQuality},
	}
}

// Layout builds page id of the given kind. withBars adds the kind's bar
// regions over a strip of stripLen cells; detail and stats pages have none.
func Layout(id types.PageID, kind Kind, withBars bool, stripLen int) Page {
	var slots []slot
	var bars []Bar
	switch kind {
	case KindDetail:
		slots = detailSlots
	case KindClimate:
		slots = bigSlots
		if withBars {
			bars = climateBars(stripLen)
		}
	case KindGas:
		slots = bigSlots
		if withBars {
			bars = gasBars(stripLen)
		}
	case KindStats:
		slots = statsSlots
	}
	p := Page{ID: id, Kind: kind, Bars: bars, Fields: make([]types.Field, len(slots))}
	for i, s := range slots {
		p.Fields[i] = types.Field{
			ID:     FieldID(id, i),
			Page:   id,
			Anchor: s.anchor,
			Y:      s.y,
			Scale:  s.scale,
			Text:   s.text,
		}
	}
	return p
}

// Fields flattens every page's fields for surface registration.
func Fields(pages []Page) []types.Field {
	var out []types.Field
	for _, p := range pages {
		out = append(out, p.Fields...)
	}
	return out
}
