// Package htu31d drives the TE HTU31D temperature/humidity sensor.
//
//	d.Trigger()          // start a conversion
//	err := d.Collect(&s) // read it back, CRC checked
//
// Read does both with a sleep in between.
package htu31d

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"envbadge/drivers/crc8"
	"envbadge/errcode"
)

// I2C address with the ADDR pin low.
const Address = 0x40

const (
	cmdConversion = 0x40
	cmdReadTRH    = 0x00
	cmdSerial     = 0x0A
	cmdHeaterOn   = 0x04
	cmdHeaterOff  = 0x02
	cmdReset      = 0x1E
)

var ErrCRC = errors.New("htu31d: crc mismatch")

// Config is optional; zero values take defaults.
type Config struct {
	Address uint16
	// OSR is the oversampling level 1..3 for both channels. Zero keeps the
	// default of 3.
	OSR uint8
	// Sleep waits out the conversion. Default time.Sleep.
	Sleep func(time.Duration)
}

type Device struct {
	bus     drivers.I2C
	Address uint16

	osr   uint8
	sleep func(time.Duration)
	buf   [6]byte
}

// New wraps a configured bus. It does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address, osr: 3, sleep: time.Sleep}
}

// Configure applies cfg and soft-resets the sensor.
func (d *Device) Configure(cfgs ...Config) error {
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Address != 0 {
			d.Address = c.Address
		}
		if c.OSR != 0 && c.OSR <= 3 {
			d.osr = c.OSR
		}
		if c.Sleep != nil {
			d.sleep = c.Sleep
		}
	}
	if err := d.bus.Tx(d.Address, []byte{cmdReset}, nil); err != nil {
		return errcode.Driver("htu31d.Configure", err)
	}
	d.sleep(15 * time.Millisecond)
	return nil
}

// ConversionTime is the worst case for the current oversampling.
func (d *Device) ConversionTime() time.Duration {
	// Datasheet maxima for RH + T at OSR 0..3.
	return [4]time.Duration{
		3 * time.Millisecond,
		5 * time.Millisecond,
		9 * time.Millisecond,
		17 * time.Millisecond,
	}[d.osr&3] + 3*time.Millisecond
}

func (d *Device) Trigger() error {
	cmd := byte(cmdConversion | d.osr<<3 | d.osr<<1)
	return d.bus.Tx(d.Address, []byte{cmd}, nil)
}

// Sample holds the two raw 16-bit words.
type Sample struct {
	RawTemp     uint16
	RawHumidity uint16
}

// Celsius is -40 + 165*raw/65535.
func (s Sample) Celsius() float64 { return -40 + 165*float64(s.RawTemp)/65535 }

// RelHumidity is 100*raw/65535, clamped to [0, 100].
func (s Sample) RelHumidity() float64 {
	h := 100 * float64(s.RawHumidity) / 65535
	if h > 100 {
		return 100
	}
	return h
}

// Collect reads the last conversion.
func (d *Device) Collect(out *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, []byte{cmdReadTRH}, data); err != nil {
		return err
	}
	if crc8.Checksum(data[0:2], 0) != data[2] || crc8.Checksum(data[3:5], 0) != data[5] {
		return ErrCRC
	}
	if out != nil {
		out.RawTemp = uint16(data[0])<<8 | uint16(data[1])
		out.RawHumidity = uint16(data[3])<<8 | uint16(data[4])
	}
	return nil
}

// Read triggers, waits and collects.
func (d *Device) Read() (Sample, error) {
	var s Sample
	if err := d.Trigger(); err != nil {
		return s, errcode.Driver("htu31d.Read", err)
	}
	d.sleep(d.ConversionTime())
	if err := d.Collect(&s); err != nil {
		if err == ErrCRC {
			return s, &errcode.E{C: errcode.CRCMismatch, Op: "htu31d.Read", Err: err}
		}
		return s, errcode.Driver("htu31d.Read", err)
	}
	return s, nil
}

// Serial returns the 24-bit serial number.
func (d *Device) Serial() (uint32, error) {
	var b [4]byte
	if err := d.bus.Tx(d.Address, []byte{cmdSerial}, b[:]); err != nil {
		return 0, err
	}
	if crc8.Checksum(b[:3], 0) != b[3] {
		return 0, ErrCRC
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// Heater switches the on-chip heater.
func (d *Device) Heater(on bool) error {
	cmd := byte(cmdHeaterOff)
	if on {
		cmd = cmdHeaterOn
	}
	return d.bus.Tx(d.Address, []byte{cmd}, nil)
}
