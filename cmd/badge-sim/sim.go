//go:build !(rp2040 || rp2350)

package main

import (
	"math"
	"math/rand"
	"time"

	"envbadge/errcode"
	"envbadge/x/timex"
)

// simPort follows slow sine curves from the clock, with seeded noise and
// optional random read failures.
type simPort struct {
	clock    timex.Clock
	start    time.Time
	rng      *rand.Rand
	lux      float64
	failRate float64
}

func newSimPort(clock timex.Clock, seed int64, lux, failRate float64) *simPort {
	return &simPort{
		clock:    clock,
		start:    clock.Now(),
		rng:      rand.New(rand.NewSource(seed)),
		lux:      lux,
		failRate: failRate,
	}
}

// wave is mid + amp*sin over period, evaluated at the current clock.
func (p *simPort) wave(mid, amp float64, period time.Duration) float64 {
	t := p.clock.Now().Sub(p.start).Seconds()
	return mid + amp*math.Sin(2*math.Pi*t/period.Seconds())
}

func (p *simPort) noise(scale float64) float64 { return (p.rng.Float64()*2 - 1) * scale }

func (p *simPort) fail(op string) error {
	if p.failRate > 0 && p.rng.Float64() < p.failRate {
		return &errcode.E{C: errcode.NotReady, Op: op, Msg: "simulated"}
	}
	return nil
}

func (p *simPort) ReadTemperature() (float64, error) {
	if err := p.fail("sim.temperature"); err != nil {
		return 0, err
	}
	return p.wave(23, 6, 90*time.Second) + p.noise(0.05), nil
}

func (p *simPort) ReadHumidity() (float64, error) {
	if err := p.fail("sim.humidity"); err != nil {
		return 0, err
	}
	return p.wave(50, 25, 120*time.Second) + p.noise(0.2), nil
}

func (p *simPort) ReadPressure() (float64, error) {
	if err := p.fail("sim.pressure"); err != nil {
		return 0, err
	}
	return p.wave(1013, 4, 5*time.Minute) + p.noise(0.02), nil
}

func (p *simPort) ReadLux() (float64, error) {
	if err := p.fail("sim.lux"); err != nil {
		return 0, err
	}
	if p.lux >= 0 {
		return p.lux, nil
	}
	return math.Max(0, p.wave(150, 170, time.Minute)), nil
}

func (p *simPort) ReadTVOC() (int, error) {
	if err := p.fail("sim.tvoc"); err != nil {
		return 0, err
	}
	return int(math.Round(p.wave(700, 650, 45*time.Second) + p.noise(5))), nil
}

func (p *simPort) ReadECO2() (int, error) {
	if err := p.fail("sim.eco2"); err != nil {
		return 0, err
	}
	return int(math.Max(400, math.Round(p.wave(900, 600, 70*time.Second)))), nil
}

// scriptedButton holds the button down for hold at the end of every period.
// Levels are active-low like the real pin.
type scriptedButton struct {
	clock       timex.Clock
	start       time.Time
	every, hold time.Duration
}

func newScriptedButton(clock timex.Clock, every, hold time.Duration) *scriptedButton {
	return &scriptedButton{clock: clock, start: clock.Now(), every: every, hold: hold}
}

func (b *scriptedButton) Get() bool {
	if b.every <= 0 || b.hold >= b.every {
		return true
	}
	phase := b.clock.Now().Sub(b.start) % b.every
	return phase < b.every-b.hold
}

type simSystem struct{ port *simPort }

func (s simSystem) CPUTemperature() float64 { return 27 + s.port.noise(0.5) }
func (s simSystem) CPUFrequency() uint32    { return 125_000_000 }
func (s simSystem) USBConnected() bool      { return true }
func (s simSystem) SerialConnected() bool   { return false }
