package sensors

import "envbadge/types"

// FakePort serves scripted readings. Set Errs[m] to make a read fail; Calls
// records the order reads were made in.
type FakePort struct {
	Values [types.NumMetrics]float64
	Errs   [types.NumMetrics]error
	Calls  []types.Metric
}

func (f *FakePort) get(m types.Metric) (float64, error) {
	f.Calls = append(f.Calls, m)
	if err := f.Errs[m]; err != nil {
		return 0, err
	}
	return f.Values[m], nil
}

func (f *FakePort) Set(m types.Metric, v float64) { f.Values[m] = v }

func (f *FakePort) ReadTemperature() (float64, error) { return f.get(types.MetricTemperature) }
func (f *FakePort) ReadHumidity() (float64, error)    { return f.get(types.MetricHumidity) }
func (f *FakePort) ReadPressure() (float64, error)    { return f.get(types.MetricPressure) }
func (f *FakePort) ReadLux() (float64, error)         { return f.get(types.MetricLux) }

func (f *FakePort) ReadTVOC() (int, error) {
	v, err := f.get(types.MetricTVOC)
	return int(v), err
}

func (f *FakePort) ReadECO2() (int, error) {
	v, err := f.get(types.MetricECO2)
	return int(v), err
}
