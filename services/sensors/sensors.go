// Package sensors takes one consistent snapshot of every metric per tick.
package sensors

import (
	"log/slog"
	"math"

	"envbadge/errcode"
	"envbadge/types"
	"envbadge/x/timex"
)

// Port is the set of blocking sensor reads. Each read fails independently.
type Port interface {
	ReadTemperature() (float64, error) // °C
	ReadHumidity() (float64, error)    // %RH
	ReadPressure() (float64, error)    // hPa
	ReadLux() (float64, error)
	ReadTVOC() (int, error) // ppb
	ReadECO2() (int, error) // ppm
}

// Sampler captures snapshots and carries the last good value of each metric
// across failed reads.
type Sampler struct {
	clock timex.Clock
	log   *slog.Logger

	last    types.Snapshot
	failing types.MetricSet
}

func NewSampler(clock timex.Clock, log *slog.Logger) *Sampler {
	if clock == nil {
		clock = timex.System{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Sampler{clock: clock, log: log}
}

// Last returns the most recent snapshot (zero before the first Capture).
func (s *Sampler) Last() types.Snapshot { return s.last }

// Capture reads every metric in a fixed order. A failed read keeps the
// previous value and marks the metric stale; a metric that has never been
// read stays invalid.
func (s *Sampler) Capture(p Port) types.Snapshot {
	snap := s.last
	snap.Stale = 0

	for m := types.Metric(0); m < types.NumMetrics; m++ {
		v, err := read(p, m)
		if err == nil && math.IsNaN(v) {
			err = &errcode.E{C: errcode.InvalidParams, Op: "sensors.Capture", Msg: "NaN reading"}
		}
		if err != nil {
			if snap.Valid.Has(m) {
				snap.Stale = snap.Stale.With(m)
			}
			if !s.failing.Has(m) {
				s.log.Warn("sensor read failed", "metric", m.String(), "code", string(errcode.Of(err)), "err", err)
			}
			s.failing = s.failing.With(m)
			continue
		}
		if s.failing.Has(m) {
			s.log.Info("sensor recovered", "metric", m.String())
			s.failing = s.failing.Without(m)
		}
		set(&snap, m, v)
		snap.Valid = snap.Valid.With(m)
	}

	snap.At = s.clock.Now()
	s.last = snap
	return snap
}

func read(p Port, m types.Metric) (float64, error) {
	switch m {
	case types.MetricTemperature:
		return p.ReadTemperature()
	case types.MetricHumidity:
		return p.ReadHumidity()
	case types.MetricPressure:
		return p.ReadPressure()
	case types.MetricLux:
		return p.ReadLux()
	case types.MetricTVOC:
		v, err := p.ReadTVOC()
		return float64(v), err
	case types.MetricECO2:
		v, err := p.ReadECO2()
		return float64(v), err
	}
	return 0, errcode.Unsupported
}

func set(s *types.Snapshot, m types.Metric, v float64) {
	switch m {
	case types.MetricTemperature:
		s.Temperature = v
	case types.MetricHumidity:
		s.Humidity = v
	case types.MetricPressure:
		s.Pressure = v
	case types.MetricLux:
		s.Lux = v
	case types.MetricTVOC:
		s.TVOC = int(v)
	case types.MetricECO2:
		s.ECO2 = int(v)
	}
}
