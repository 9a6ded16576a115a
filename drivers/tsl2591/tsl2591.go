// Package tsl2591 drives the AMS TSL2591 ambient light sensor.
package tsl2591

import (
	"errors"

	"tinygo.org/x/drivers"

	"envbadge/errcode"
)

const Address = 0x29

const (
	cmdBit = 0xA0 // command, normal transaction

	regEnable  = 0x00
	regControl = 0x01
	regID      = 0x12
	regC0DataL = 0x14

	enablePowerOn = 0x01
	enableAEN     = 0x02

	deviceID = 0x50

	luxDF = 408.0
)

// Gain selects the analog gain.
type Gain uint8

const (
	GainLow  Gain = 0x00 // 1x
	GainMed  Gain = 0x10 // 25x
	GainHigh Gain = 0x20 // 428x
	GainMax  Gain = 0x30 // 9876x
)

func (g Gain) factor() float64 {
	switch g {
	case GainMed:
		return 25
	case GainHigh:
		return 428
	case GainMax:
		return 9876
	}
	return 1
}

// Integration is the ADC integration time, 100 ms * (n+1).
type Integration uint8

const (
	Integration100ms Integration = iota
	Integration200ms
	Integration300ms
	Integration400ms
	Integration500ms
	Integration600ms
)

var (
	ErrWrongID  = errors.New("tsl2591: unexpected device id")
	ErrOverflow = errors.New("tsl2591: channel overflow")
)

type Config struct {
	Address     uint16
	Gain        Gain
	Integration Integration
}

type Device struct {
	bus     drivers.I2C
	Address uint16
	gain    Gain
	itime   Integration
	buf     [4]byte
}

func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address, gain: GainMed}
}

// Configure checks the chip ID, sets gain and timing, and powers the ADC.
func (d *Device) Configure(cfgs ...Config) error {
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Address != 0 {
			d.Address = c.Address
		}
		d.gain = c.Gain
		d.itime = c.Integration
	}
	id := d.buf[:1]
	if err := d.bus.Tx(d.Address, []byte{cmdBit | regID}, id); err != nil {
		return errcode.Driver("tsl2591.Configure", err)
	}
	if id[0] != deviceID {
		return &errcode.E{C: errcode.Unsupported, Op: "tsl2591.Configure", Err: ErrWrongID}
	}
	if err := d.bus.Tx(d.Address, []byte{cmdBit | regControl, byte(d.gain) | byte(d.itime)}, nil); err != nil {
		return errcode.Driver("tsl2591.Configure", err)
	}
	return errcode.Driver("tsl2591.Configure", d.Enable())
}

func (d *Device) Enable() error {
	return d.bus.Tx(d.Address, []byte{cmdBit | regEnable, enablePowerOn | enableAEN}, nil)
}

func (d *Device) Disable() error {
	return d.bus.Tx(d.Address, []byte{cmdBit | regEnable, 0}, nil)
}

// Channels returns the full-spectrum and infrared counts.
func (d *Device) Channels() (full, ir uint16, err error) {
	b := d.buf[:4]
	if err = d.bus.Tx(d.Address, []byte{cmdBit | regC0DataL}, b); err != nil {
		return 0, 0, errcode.Driver("tsl2591.Channels", err)
	}
	full = uint16(b[1])<<8 | uint16(b[0])
	ir = uint16(b[3])<<8 | uint16(b[2])
	return full, ir, nil
}

// Lux converts raw channels for the current gain and timing.
func (d *Device) Lux(full, ir uint16) (float64, error) {
	if full == 0xFFFF || ir == 0xFFFF {
		return 0, &errcode.E{C: errcode.Error, Op: "tsl2591.Lux", Err: ErrOverflow}
	}
	if full == 0 {
		return 0, nil
	}
	atime := 100 * float64(d.itime+1)
	cpl := atime * d.gain.factor() / luxDF
	c0, c1 := float64(full), float64(ir)
	lux := (c0 - c1) * (1 - c1/c0) / cpl
	if lux < 0 {
		lux = 0
	}
	return lux, nil
}

// ReadLux reads both channels and converts them.
func (d *Device) ReadLux() (float64, error) {
	full, ir, err := d.Channels()
	if err != nil {
		return 0, err
	}
	return d.Lux(full, ir)
}
