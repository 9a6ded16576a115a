// Package sgp30 drives the Sensirion SGP30 gas sensor (eCO2 and TVOC).
//
// After Configure the sensor runs its baseline algorithm and expects
// Measure roughly once per second. For the first ~15 s it reports the
// fixed values 400 ppm / 0 ppb.
package sgp30

import (
	"errors"
	"math"
	"time"

	"tinygo.org/x/drivers"

	"envbadge/drivers/crc8"
	"envbadge/errcode"
)

const Address = 0x58

const (
	cmdInitAirQuality    = 0x2003
	cmdMeasureAirQuality = 0x2008
	cmdGetBaseline       = 0x2015
	cmdSetBaseline       = 0x201E
	cmdSetHumidity       = 0x2061
	cmdFeatureSet        = 0x202F
	cmdSerial            = 0x3682

	crcInit = 0xFF
)

var ErrCRC = errors.New("sgp30: crc mismatch")

type Config struct {
	Address uint16
	Sleep   func(time.Duration) // default time.Sleep
}

type Device struct {
	bus     drivers.I2C
	Address uint16
	sleep   func(time.Duration)
	w       [8]byte
	r       [9]byte
}

func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address, sleep: time.Sleep}
}

// Configure starts the air-quality algorithm.
func (d *Device) Configure(cfgs ...Config) error {
	if len(cfgs) > 0 {
		if cfgs[0].Address != 0 {
			d.Address = cfgs[0].Address
		}
		if cfgs[0].Sleep != nil {
			d.sleep = cfgs[0].Sleep
		}
	}
	if err := d.command(cmdInitAirQuality, nil, 0, 10*time.Millisecond); err != nil {
		return errcode.Driver("sgp30.Configure", err)
	}
	return nil
}

// command writes cmd plus CRC-framed args, waits, then reads n words.
func (d *Device) command(cmd uint16, args []uint16, n int, wait time.Duration) error {
	w := d.w[:2]
	w[0], w[1] = byte(cmd>>8), byte(cmd)
	for _, a := range args {
		hi, lo := byte(a>>8), byte(a)
		w = append(w, hi, lo, crc8.Checksum([]byte{hi, lo}, crcInit))
	}
	if err := d.bus.Tx(d.Address, w, nil); err != nil {
		return err
	}
	if wait > 0 {
		d.sleep(wait)
	}
	if n == 0 {
		return nil
	}
	return d.bus.Tx(d.Address, nil, d.r[:3*n])
}

// word returns the i-th CRC-checked word of the last read.
func (d *Device) word(i int) (uint16, error) {
	b := d.r[3*i : 3*i+3]
	if crc8.Checksum(b[:2], crcInit) != b[2] {
		return 0, ErrCRC
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (d *Device) words(op string, out ...*uint16) error {
	for i, p := range out {
		v, err := d.word(i)
		if err != nil {
			return &errcode.E{C: errcode.CRCMismatch, Op: op, Err: err}
		}
		*p = v
	}
	return nil
}

// Measure returns eCO2 in ppm and TVOC in ppb.
func (d *Device) Measure() (eco2, tvoc uint16, err error) {
	if err = d.command(cmdMeasureAirQuality, nil, 2, 12*time.Millisecond); err != nil {
		return 0, 0, errcode.Driver("sgp30.Measure", err)
	}
	err = d.words("sgp30.Measure", &eco2, &tvoc)
	return eco2, tvoc, err
}

// Baseline returns the algorithm's eCO2 and TVOC baselines.
func (d *Device) Baseline() (eco2, tvoc uint16, err error) {
	if err = d.command(cmdGetBaseline, nil, 2, 10*time.Millisecond); err != nil {
		return 0, 0, errcode.Driver("sgp30.Baseline", err)
	}
	err = d.words("sgp30.Baseline", &eco2, &tvoc)
	return eco2, tvoc, err
}

// SetBaseline restores saved baselines. The sensor takes TVOC first.
func (d *Device) SetBaseline(eco2, tvoc uint16) error {
	return errcode.Driver("sgp30.SetBaseline", d.command(cmdSetBaseline, []uint16{tvoc, eco2}, 0, 10*time.Millisecond))
}

// FeatureSet returns the product type and version word.
func (d *Device) FeatureSet() (uint16, error) {
	if err := d.command(cmdFeatureSet, nil, 1, 10*time.Millisecond); err != nil {
		return 0, errcode.Driver("sgp30.FeatureSet", err)
	}
	var v uint16
	err := d.words("sgp30.FeatureSet", &v)
	return v, err
}

// Serial returns the 48-bit serial ID.
func (d *Device) Serial() (uint64, error) {
	if err := d.command(cmdSerial, nil, 3, time.Millisecond); err != nil {
		return 0, errcode.Driver("sgp30.Serial", err)
	}
	var a, b, c uint16
	if err := d.words("sgp30.Serial", &a, &b, &c); err != nil {
		return 0, err
	}
	return uint64(a)<<32 | uint64(b)<<16 | uint64(c), nil
}

// AbsoluteHumidity converts a climate reading to g/m³.
func AbsoluteHumidity(celsius, rh float64) float64 {
	return 216.7 * (rh / 100 * 6.112 * math.Exp(17.62*celsius/(243.12+celsius))) / (273.15 + celsius)
}

// SetHumidity feeds absolute humidity (g/m³) to the compensation stage.
// Zero disables compensation.
func (d *Device) SetHumidity(gm3 float64) error {
	if gm3 < 0 {
		gm3 = 0
	}
	if gm3 > 255.99 {
		gm3 = 255.99
	}
	fixed := uint16(gm3 * 256) // 8.8 fixed point
	return errcode.Driver("sgp30.SetHumidity", d.command(cmdSetHumidity, []uint16{fixed}, 0, 10*time.Millisecond))
}
