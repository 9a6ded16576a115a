// Package config holds the compiled-in board variants. There is no runtime
// configuration: a build picks one variant by tag, and Load validates it.
package config

import (
	"time"

	"envbadge/errcode"
	"envbadge/services/render"
	"envbadge/types"
)

// Idle animation regimes.
const (
	IdleBreathing = "breathing"
	IdleSparkle   = "sparkle"
	IdleNone      = "none"
)

// Transition effects played on a page change.
const (
	TransitionComet  = "comet"
	TransitionComet2 = "comet2"
	TransitionPulse  = "pulse"
	TransitionNone   = "none"
)

// Pins are RP2 GPIO numbers.
type Pins struct {
	I2C0SDA, I2C0SCL uint8 // sensors
	I2C1SDA, I2C1SCL uint8 // display
	Button           uint8 // active-low, pulled up
	Strip            uint8
	ConsoleTX        uint8 // used only when Console is set
	ConsoleRX        uint8
}

// Sensors are I2C addresses on bus 0. The barometer is fixed at 0x77.
type Sensors struct {
	HTU31D, TSL2591, SGP30 uint16
}

type Display struct {
	Address       uint16
	Width, Height int16
}

type Strip struct {
	Length     int
	Brightness float32 // boot brightness
	Ceiling    float32 // animation and bar ceiling
}

// Page is one entry of the page list.
type Page struct {
	Kind render.Kind
	Bars bool
}

type Night struct {
	Enabled  bool
	Lux      float64 // below this the badge is in night mode
	Scale    float32 // brightness multiplier
	Interval time.Duration
}

// Config is one board variant.
type Config struct {
	Name       string
	Pins       Pins
	Sensors    Sensors
	Display    Display
	Strip      Strip
	Pages      []Page
	Loop       time.Duration // button poll period
	Interval   time.Duration // sensor update period
	Frame      time.Duration // animation frame period
	Settle     time.Duration // boot pause before the loop
	Debounce   time.Duration
	Idle       string
	Transition string
	Night      Night
	Console    bool // mirror logs to the UART console
	Baud       uint32
}

// VariantLookup resolves a variant by name. Tests may override it.
var VariantLookup = func(name string) (Config, bool) {
	c, ok := variants[name]
	return c, ok
}

// Variants lists the built-in variant names.
func Variants() []string {
	out := make([]string, 0, len(variants))
	for _, n := range variantOrder {
		if _, ok := variants[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Default is the variant this build was tagged for.
func Default() string { return defaultVariant }

// Load returns the named variant after validation. An empty name selects
// the build default.
func Load(name string) (Config, error) {
	if name == "" {
		name = defaultVariant
	}
	c, ok := VariantLookup(name)
	if !ok {
		return Config{}, &errcode.E{C: errcode.UnknownVariant, Op: "config.Load", Msg: name}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// MustLoad panics on a bad variant; configuration errors are fatal at boot.
func MustLoad(name string) Config {
	c, err := Load(name)
	if err != nil {
		panic(err)
	}
	return c
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.InvalidConfig, Op: "config.Validate", Msg: msg}
}

// Validate checks internal consistency.
func (c Config) Validate() error {
	switch {
	case len(c.Pages) == 0:
		return invalid("no pages")
	case len(c.Pages) > 16:
		return invalid("too many pages")
	case c.Strip.Length <= 0:
		return invalid("strip length must be positive")
	case c.Strip.Brightness < 0 || c.Strip.Brightness > 1:
		return invalid("strip brightness out of [0,1]")
	case c.Strip.Ceiling < 0 || c.Strip.Ceiling > 1:
		return invalid("strip ceiling out of [0,1]")
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return invalid("display size")
	case c.Loop <= 0 || c.Interval <= 0 || c.Frame <= 0:
		return invalid("periods must be positive")
	case c.Interval < c.Loop:
		return invalid("sensor interval shorter than loop")
	}
	for _, p := range c.Pages {
		if p.Kind > render.KindStats {
			return invalid("unknown page kind")
		}
		if p.Bars && p.Kind != render.KindClimate && p.Kind != render.KindGas {
			return invalid("bars on a " + p.Kind.String() + " page")
		}
	}
	switch c.Idle {
	case IdleBreathing, IdleSparkle, IdleNone:
	default:
		return invalid("idle " + c.Idle)
	}
	switch c.Transition {
	case TransitionComet, TransitionComet2, TransitionPulse, TransitionNone:
	default:
		return invalid("transition " + c.Transition)
	}
	if c.Night.Enabled {
		if c.Night.Scale <= 0 || c.Night.Scale > 1 {
			return invalid("night scale out of (0,1]")
		}
		if c.Night.Interval < c.Interval {
			return invalid("night interval shorter than day interval")
		}
	}
	if c.Console && c.Baud == 0 {
		return invalid("console without baud rate")
	}
	return nil
}

// Layout expands the page list into renderer pages.
func (c Config) Layout() []render.Page {
	out := make([]render.Page, len(c.Pages))
	for i, p := range c.Pages {
		out[i] = render.Layout(types.PageID(i), p.Kind, p.Bars, c.Strip.Length)
	}
	return out
}

// SensorInterval is the cadence for the given mode.
func (c Config) SensorInterval(night bool) time.Duration {
	if night && c.Night.Enabled {
		return c.Night.Interval
	}
	return c.Interval
}

// HasBars reports whether any page paints the strip.
func (c Config) HasBars() bool {
	for _, p := range c.Pages {
		if p.Bars {
			return true
		}
	}
	return false
}
