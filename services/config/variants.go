package config

import (
	"time"

	"envbadge/services/render"
)

var variantOrder = []string{"classic", "bars"}

// Shared board wiring: sensors on I2C0 (GP4/GP5), the panel on I2C1
// (GP26/GP27), button on GP17, 24-cell GRBW strip on GP28.
var board = Pins{
	I2C0SDA: 4, I2C0SCL: 5,
	I2C1SDA: 26, I2C1SCL: 27,
	Button:    17,
	Strip:     28,
	ConsoleTX: 0, ConsoleRX: 1,
}

var sensorAddrs = Sensors{HTU31D: 0x40, TSL2591: 0x29, SGP30: 0x58}

var variants = map[string]Config{
	"classic": {
		Name:    "classic",
		Pins:    board,
		Sensors: sensorAddrs,
		Display: Display{Address: 0x3D, Width: 128, Height: 64},
		Strip:   Strip{Length: 24, Brightness: 0.03, Ceiling: 1},
		Pages: []Page{
			{Kind: render.KindDetail},
			{Kind: render.KindClimate},
			{Kind: render.KindGas},
			{Kind: render.KindStats},
		},
		Loop:       100 * time.Millisecond,
		Interval:   2 * time.Second,
		Frame:      100 * time.Millisecond,
		Settle:     1500 * time.Millisecond,
		Debounce:   30 * time.Millisecond,
		Idle:       IdleBreathing,
		Transition: TransitionComet,
	},
	"bars": {
		Name:    "bars",
		Pins:    board,
		Sensors: sensorAddrs,
		Display: Display{Address: 0x3D, Width: 128, Height: 64},
		Strip:   Strip{Length: 24, Brightness: 0.05, Ceiling: 0.3},
		Pages: []Page{
			{Kind: render.KindDetail},
			{Kind: render.KindClimate, Bars: true},
			{Kind: render.KindGas, Bars: true},
		},
		Loop:       100 * time.Millisecond,
		Interval:   time.Second,
		Frame:      50 * time.Millisecond,
		Settle:     1500 * time.Millisecond,
		Debounce:   30 * time.Millisecond,
		Idle:       IdleSparkle,
		Transition: TransitionComet2,
		Night: Night{
			Enabled:  true,
			Lux:      5,
			Scale:    0.5,
			Interval: 3 * time.Second,
		},
		Console: true,
		Baud:    115200,
	},
}
