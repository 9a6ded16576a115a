// Package render turns a sensor snapshot into one page's text fields and
// pixel-bar cells.
package render

import (
	"math"
	"strings"

	"envbadge/services/rank"
	"envbadge/types"
	"envbadge/x/fmtx"
	"envbadge/x/gradient"
	"envbadge/x/mathx"
)

// Surface holds retained text fields for every page.
type Surface interface {
	SetText(id types.FieldID, s string)
	// MeasureWidth is the rendered width of the field's current text.
	MeasureWidth(id types.FieldID) int16
	MoveTo(id types.FieldID, x int16)
	Width() int16
}

// Strip is the writable half of the pixel buffer.
type Strip interface {
	Len() int
	Set(i int, c types.RGBW)
}

// SystemPort reports board health for the stats page.
type SystemPort interface {
	CPUTemperature() float64 // °C
	CPUFrequency() uint32    // Hz
	USBConnected() bool
	SerialConnected() bool
}

const placeholder = "n/a"

// Renderer owns the compiled-in pages. It writes only the fields of the
// page it is asked to render and, when that page is active, its bars.
type Renderer struct {
	surface Surface
	strip   Strip
	sys     SystemPort
	pages   []Page

	texts [slotsPerPage]string
}

// New places each page's fixed text once. strip and sys may be nil when no
// page uses them.
func New(surface Surface, strip Strip, sys SystemPort, pages []Page) *Renderer {
	r := &Renderer{surface: surface, strip: strip, sys: sys, pages: pages}
	for _, p := range pages {
		for _, f := range p.Fields {
			r.put(f, f.Text)
		}
	}
	return r
}

func (r *Renderer) Pages() []Page { return r.pages }

// Page returns page id, or false if it does not exist.
func (r *Renderer) Page(id types.PageID) (Page, bool) {
	if int(id) >= len(r.pages) {
		return Page{}, false
	}
	return r.pages[id], true
}

// Render updates page id's text from snap. When active is set and the page
// has bars they are painted too; the return value reports that.
func (r *Renderer) Render(id types.PageID, snap types.Snapshot, active bool) bool {
	p, ok := r.Page(id)
	if !ok {
		return false
	}
	texts := r.texts[:len(p.Fields)]
	switch p.Kind {
	case KindDetail:
		detailTexts(texts, snap)
	case KindClimate:
		climateTexts(texts, snap)
	case KindGas:
		gasTexts(texts, snap)
	case KindStats:
		r.statsTexts(texts)
	}
	for i, f := range p.Fields {
		r.put(f, texts[i])
	}
	if !active || len(p.Bars) == 0 {
		return false
	}
	r.PaintBars(id, snap)
	return true
}

// put sets a field and re-anchors it if right-aligned.
func (r *Renderer) put(f types.Field, s string) {
	r.surface.SetText(f.ID, s)
	if f.Anchor == types.AnchorRight {
		r.surface.MoveTo(f.ID, r.surface.Width()-r.surface.MeasureWidth(f.ID))
	}
}

// PaintBars fills each bar of page id from snap.
func (r *Renderer) PaintBars(id types.PageID, snap types.Snapshot) {
	p, ok := r.Page(id)
	if !ok || r.strip == nil {
		return
	}
	for _, b := range p.Bars {
		paintBar(r.strip, b, snap)
	}
}

// Filled returns how many leading cells of b are lit for value v.
func (b Bar) Filled(v float64) int {
	if b.Cells <= 0 || math.IsNaN(v) {
		return 0
	}
	if b.Cells == 1 {
		return 1
	}
	return int(math.Round(mathx.Rescale(v, b.Min, b.Max, 0, float64(b.Cells-1), true)))
}

func paintBar(s Strip, b Bar, snap types.Snapshot) {
	n := 0
	if snap.Has(b.Metric) {
		n = b.Filled(snap.Value(b.Metric))
	}
	for i := 0; i < b.Cells; i++ {
		idx := b.Start + i
		if idx < 0 || idx >= s.Len() {
			continue
		}
		if i >= n {
			s.Set(idx, types.DimFill)
			continue
		}
		// Each lit cell shows the colour of the value it stands for.
		at := b.Min
		if b.Cells > 1 {
			at = mathx.Rescale(float64(i), 0, float64(b.Cells-1), b.Min, b.Max, false)
		}
		s.Set(idx, gradient.Interpolate(at, b.Min, b.Max, b.Stops))
	}
}

func detailTexts(t []string, s types.Snapshot) {
	t[detailTitle] = "Hello!"
	t[detailSubtitle] = "<3"

	t[detailTemp] = "T: " + floatOr(s, types.MetricTemperature, "%.1fC")
	t[detailHum] = "H: " + floatOr(s, types.MetricHumidity, "%.1f%%")
	t[detailPres] = "P: " + placeholder
	if s.Has(types.MetricPressure) {
		t[detailPres] = fmtx.Sprintf("P: %.1fkPa", s.Pressure/10)
	}
	t[detailLux] = floatOr(s, types.MetricLux, "%.0flux")

	t[detailTVOC] = "TVOC: " + placeholder
	if s.Has(types.MetricTVOC) {
		t[detailTVOC] = "TVOC: " + ppm(s.TVOC)
		if s.TVOC >= 219 {
			t[detailTVOC] += " (" + string(rank.TVOC.Classify(float64(s.TVOC))) + ")"
		}
	}
	t[detailECO2] = "eCO2: " + placeholder
	if s.Has(types.MetricECO2) {
		switch {
		case s.ECO2 == 400:
			t[detailECO2] = "eCO2: low"
		case s.ECO2 >= 799:
			t[detailECO2] = fmtx.Sprintf("eCO2: %d (%s)", s.ECO2, string(rank.ECO2.Classify(float64(s.ECO2))))
		default:
			t[detailECO2] = fmtx.Sprintf("eCO2: %d", s.ECO2)
		}
	}

	t[detailTempRank] = sideRank(s, types.MetricTemperature, rank.Temperature)
	t[detailHumRank] = sideRank(s, types.MetricHumidity, rank.Humidity)
	t[detailTVOCRank] = sideRank(s, types.MetricTVOC, rank.TVOC)
	t[detailECO2Rank] = sideRank(s, types.MetricECO2, rank.ECO2)
}

func climateTexts(t []string, s types.Snapshot) {
	t[bigTitleA] = "Temp (C) [" + string(metricRank(s, types.MetricTemperature, rank.Temperature)) + "]"
	t[bigValueA] = floatOr(s, types.MetricTemperature, "%.1f C")
	t[bigTitleB] = "Humidity (RH) [" + string(metricRank(s, types.MetricHumidity, rank.Humidity)) + "]"
	t[bigValueB] = floatOr(s, types.MetricHumidity, "%.1f %%")
}

func gasTexts(t []string, s types.Snapshot) {
	t[bigTitleA] = "TVOC (ppb) [" + string(metricRank(s, types.MetricTVOC, rank.TVOC)) + "]"
	t[bigValueA] = placeholder
	if s.Has(types.MetricTVOC) {
		t[bigValueA] = fmtx.Sprintf("%d", s.TVOC)
	}
	t[bigTitleB] = "eCO2 (ppm) [" + string(metricRank(s, types.MetricECO2, rank.ECO2)) + "]"
	t[bigValueB] = placeholder
	if s.Has(types.MetricECO2) {
		if s.ECO2 == 400 {
			t[bigValueB] = "low"
		} else {
			t[bigValueB] = fmtx.Sprintf("%d", s.ECO2)
		}
	}
}

func (r *Renderer) statsTexts(t []string) {
	t[statsTitle] = "Raspberry Pi Pico 2 W"
	if r.sys == nil {
		for i := statsCPUTemp; i <= statsSerial; i++ {
			t[i] = placeholder
		}
		return
	}
	t[statsCPUTemp] = fmtx.Sprintf("CPU Temp: %.2fC", r.sys.CPUTemperature())
	t[statsCPUFreq] = fmtx.Sprintf("CPU Freq: %.2fMHz", float64(r.sys.CPUFrequency())/1e6)
	t[statsUSB] = fmtx.Sprintf("usb?: %t", r.sys.USBConnected())
	t[statsSerial] = fmtx.Sprintf("serial?: %t", r.sys.SerialConnected())
}

func floatOr(s types.Snapshot, m types.Metric, format string) string {
	if !s.Has(m) {
		return placeholder
	}
	return fmtx.Sprintf(format, s.Value(m))
}

func metricRank(s types.Snapshot, m types.Metric, t *rank.Table) rank.Label {
	if !s.Has(m) {
		return rank.NotAvailable
	}
	return t.Classify(s.Value(m))
}

// sideRank is a right-column rank: blank when neutral or unread.
func sideRank(s types.Snapshot, m types.Metric, t *rank.Table) string {
	if !s.Has(m) {
		return ""
	}
	l := t.Classify(s.Value(m))
	if l.Neutral() {
		return ""
	}
	return string(l)
}

// ppm formats a ppb count in ppm with no trailing zeros, keeping one
// decimal: 300 -> "0.3", 1430 -> "1.43", 2000 -> "2.0".
func ppm(ppb int) string {
	s := fmtx.Sprintf("%.3f", float64(ppb)/1000)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
