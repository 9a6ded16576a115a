package types

import "time"

// ------------------------
// Metrics
// ------------------------

type Metric uint8

const (
	MetricTemperature Metric = iota
	MetricHumidity
	MetricPressure
	MetricLux
	MetricTVOC
	MetricECO2

	NumMetrics
)

var metricNames = [NumMetrics]string{"temperature", "humidity", "pressure", "lux", "tvoc", "eco2"}

func (m Metric) String() string {
	if m < NumMetrics {
		return metricNames[m]
	}
	return "unknown"
}

// MetricSet is a bitmask over Metric.
type MetricSet uint8

func (s MetricSet) Has(m Metric) bool          { return s&(1<<m) != 0 }
func (s MetricSet) With(m Metric) MetricSet    { return s | 1<<m }
func (s MetricSet) Without(m Metric) MetricSet { return s &^ (1 << m) }
func (s MetricSet) Empty() bool                { return s == 0 }
func AllMetrics() MetricSet                    { return 1<<NumMetrics - 1 }

// ------------------------
// Snapshot
// ------------------------

// Snapshot is one read of every sensor, taken once per update tick and shared
// by every renderer in that tick.
type Snapshot struct {
	Temperature float64 // °C
	Humidity    float64 // %RH
	Pressure    float64 // hPa
	Lux         float64
	TVOC        int // ppb
	ECO2        int // ppm

	At time.Time

	// Valid marks metrics that hold a reading, fresh or carried over.
	Valid MetricSet
	// Stale marks metrics whose read failed this tick; the value is the last
	// good one.
	Stale MetricSet
}

func (s Snapshot) Has(m Metric) bool { return s.Valid.Has(m) }

// Value returns the metric as float64 regardless of its native type.
func (s Snapshot) Value(m Metric) float64 {
	switch m {
	case MetricTemperature:
		return s.Temperature
	case MetricHumidity:
		return s.Humidity
	case MetricPressure:
		return s.Pressure
	case MetricLux:
		return s.Lux
	case MetricTVOC:
		return float64(s.TVOC)
	case MetricECO2:
		return float64(s.ECO2)
	}
	return 0
}
