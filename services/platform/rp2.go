//go:build rp2040 || rp2350

package platform

import (
	"io"
	"log/slog"
	"machine"
	"runtime/interrupt"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/bmp388"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/drivers/ws2812"

	"envbadge/drivers/htu31d"
	"envbadge/drivers/sgp30"
	"envbadge/drivers/tsl2591"
	"envbadge/errcode"
	"envbadge/services/config"
)

// Open configures both I2C buses, the panel, the strip, the button and LED,
// and whichever sensors answer. A sensor that fails to configure is left
// out and reads as not_ready.
func Open(cfg config.Config) (*Board, error) {
	p := cfg.Pins
	sensorBus := machine.I2C0
	if err := sensorBus.Configure(machine.I2CConfig{
		SDA:       machine.Pin(p.I2C0SDA),
		SCL:       machine.Pin(p.I2C0SCL),
		Frequency: 100 * machine.KHz,
	}); err != nil {
		return nil, errcode.Driver("platform.Open i2c0", err)
	}
	panelBus := machine.I2C1
	if err := panelBus.Configure(machine.I2CConfig{
		SDA:       machine.Pin(p.I2C1SDA),
		SCL:       machine.Pin(p.I2C1SCL),
		Frequency: 400 * machine.KHz,
	}); err != nil {
		return nil, errcode.Driver("platform.Open i2c1", err)
	}

	panel := ssd1306.NewI2C(panelBus)
	panel.Configure(ssd1306.Config{
		Address: cfg.Display.Address,
		Width:   cfg.Display.Width,
		Height:  cfg.Display.Height,
	})
	panel.ClearDisplay()

	stripPin := machine.Pin(p.Strip)
	stripPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	button := machine.Pin(p.Button)
	button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	b := &Board{
		Panel:   &panel,
		Strip:   stripWriter{ws2812.New(stripPin)},
		Button:  button,
		LED:     led,
		System:  rp2System{},
		Console: machine.Serial,
	}
	if cfg.Console {
		u := uartx.UART0
		_ = u.Configure(uartx.UARTConfig{
			BaudRate: cfg.Baud,
			TX:       machine.Pin(p.ConsoleTX),
			RX:       machine.Pin(p.ConsoleRX),
		})
		b.Console = io.MultiWriter(machine.Serial, u)
	}
	b.Sensors = openSensors(sensorBus, cfg.Sensors)
	return b, nil
}

func openSensors(bus *machine.I2C, a config.Sensors) *SensorPort {
	var (
		climate Climate
		baro    Barometer
		light   Light
		gas     Gas
	)
	h := htu31d.New(bus)
	if err := h.Configure(htu31d.Config{Address: a.HTU31D}); err != nil {
		slog.Warn("htu31d absent", "err", err)
	} else {
		climate = &h
	}

	// The BMP388 stays at its default address, 0x77.
	bm := bmp388.New(bus)
	if err := bm.Configure(bmp388.Config{Mode: bmp388.Normal}); err != nil {
		slog.Warn("bmp388 absent", "err", err)
	} else {
		baro = &bm
	}

	t := tsl2591.New(bus)
	if err := t.Configure(tsl2591.Config{Address: a.TSL2591, Gain: tsl2591.GainMed, Integration: tsl2591.Integration100ms}); err != nil {
		slog.Warn("tsl2591 absent", "err", err)
	} else {
		light = &t
	}

	g := sgp30.New(bus)
	if err := g.Configure(sgp30.Config{Address: a.SGP30}); err != nil {
		slog.Warn("sgp30 absent", "err", err)
	} else {
		gas = &g
	}
	return NewSensorPort(climate, baro, light, gas)
}

// stripWriter sends a frame with interrupts masked; the WS2812 timing is
// bit-banged.
type stripWriter struct{ dev ws2812.Device }

func (w stripWriter) Write(b []byte) (int, error) {
	state := interrupt.Disable()
	n, err := w.dev.Write(b)
	interrupt.Restore(state)
	return n, err
}

type rp2System struct{}

func (rp2System) CPUTemperature() float64 { return float64(machine.ReadTemperature()) / 1000 }
func (rp2System) CPUFrequency() uint32    { return machine.CPUFrequency() }

func (rp2System) USBConnected() bool {
	if c, ok := any(machine.Serial).(interface{ Configured() bool }); ok {
		return c.Configured()
	}
	return false
}

func (rp2System) SerialConnected() bool {
	if d, ok := any(machine.Serial).(interface{ DTR() bool }); ok {
		return d.DTR()
	}
	return false
}
