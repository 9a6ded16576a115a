package platform

import (
	"envbadge/drivers/htu31d"
	"envbadge/drivers/sgp30"
	"envbadge/errcode"
)

// Per-chip capabilities. A nil chip reads as not_ready so the badge still
// boots with a sensor missing.
type (
	Climate interface {
		Read() (htu31d.Sample, error)
	}
	Barometer interface {
		ReadPressure() (int32, error) // centipascals
	}
	Light interface {
		ReadLux() (float64, error)
	}
	Gas interface {
		Measure() (eco2, tvoc uint16, err error)
		SetHumidity(gm3 float64) error
	}
)

// SensorPort maps the four chips onto the per-metric reads. Temperature
// and TVOC reads start a new measurement; the humidity and eCO2 reads that
// follow them return the other half of the same measurement.
type SensorPort struct {
	climate Climate
	baro    Barometer
	light   Light
	gas     Gas

	clim    htu31d.Sample
	climErr error
	eco2    uint16
	tvoc    uint16
	gasErr  error
}

func NewSensorPort(c Climate, b Barometer, l Light, g Gas) *SensorPort {
	return &SensorPort{
		climate: c,
		baro:    b,
		light:   l,
		gas:     g,
		climErr: errcode.NotReady,
		gasErr:  errcode.NotReady,
	}
}

func (p *SensorPort) ReadTemperature() (float64, error) {
	if p.climate == nil {
		return 0, errcode.NotReady
	}
	p.clim, p.climErr = p.climate.Read()
	if p.climErr != nil {
		return 0, p.climErr
	}
	if p.gas != nil {
		// Humidity compensation; a failure here only costs accuracy.
		_ = p.gas.SetHumidity(sgp30.AbsoluteHumidity(p.clim.Celsius(), p.clim.RelHumidity()))
	}
	return p.clim.Celsius(), nil
}

func (p *SensorPort) ReadHumidity() (float64, error) {
	if p.climErr != nil {
		return 0, p.climErr
	}
	return p.clim.RelHumidity(), nil
}

// ReadPressure returns hPa.
func (p *SensorPort) ReadPressure() (float64, error) {
	if p.baro == nil {
		return 0, errcode.NotReady
	}
	cpa, err := p.baro.ReadPressure()
	if err != nil {
		return 0, errcode.Driver("bmp388.ReadPressure", err)
	}
	return float64(cpa) / 10000, nil
}

func (p *SensorPort) ReadLux() (float64, error) {
	if p.light == nil {
		return 0, errcode.NotReady
	}
	return p.light.ReadLux()
}

func (p *SensorPort) ReadTVOC() (int, error) {
	if p.gas == nil {
		return 0, errcode.NotReady
	}
	p.eco2, p.tvoc, p.gasErr = p.gas.Measure()
	if p.gasErr != nil {
		return 0, p.gasErr
	}
	return int(p.tvoc), nil
}

func (p *SensorPort) ReadECO2() (int, error) {
	if p.gasErr != nil {
		return 0, p.gasErr
	}
	return int(p.eco2), nil
}
