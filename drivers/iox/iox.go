// Package iox drives a PCA6408-class 8-bit I/O expander wired as the demo
// boards wire it: ports 1, 3, 5, 7 carry low-active push buttons, ports
// 0, 2, 4, 6 drive high-active indicator LEDs. The bus is any drivers.I2C,
// typically an i2cbridge.Bus.
//
// Button reads are snapshot based: call Scan frequently (with a millisecond
// or so between calls to ride out contact bounce), then query IsDown/IsUp
// for levels and WentDown/WentUp for edges between the last two scans.
package iox

import (
	"tinygo.org/x/drivers"

	"ledchain-go/errcode"
)

// Addr is the fixed 7-bit device address of the expander on the demo boards.
const Addr = 0x20

// Expander registers.
const (
	regInVal  = 0x00 // incoming logic levels (read)
	regOutVal = 0x01 // outgoing logic levels of output pins (read/write)
	regInpInv = 0x02 // polarity inversion of input pins (read/write)
	regCfgInp = 0x03 // direction; 1 = input (read/write)
)

// Masks for the indicator LEDs (or-able).
const (
	LED0 uint8 = 0x02
	LED1 uint8 = 0x08
	LED2 uint8 = 0x20
	LED3 uint8 = 0x80

	LEDAll  = LED0 | LED1 | LED2 | LED3
	LEDNone = uint8(0x00)
)

// LED returns the mask of indicator LED n, 0 <= n <= 3.
func LED(n int) uint8 { return 1 << (n*2 + 1) }

// Masks for the buttons (or-able).
const (
	But0 uint8 = 0x01
	But1 uint8 = 0x04
	But2 uint8 = 0x10
	But3 uint8 = 0x40

	ButAll = But0 | But1 | But2 | But3
)

// Device wraps an I2C connection to one expander.
type Device struct {
	bus  drivers.I2C
	addr uint16

	leds uint8 // shadow of the output register
	prv  uint8 // button levels at the scan before last
	cur  uint8 // button levels at the last scan
}

// New creates a new expander connection at the board's device address.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus, addr: Addr}
}

// Present probes the expander with a one-byte read of the input register.
// A nack or timeout maps to errcode.NoI2CDev.
func (d *Device) Present() error {
	var buf [1]byte
	err := d.bus.Tx(d.addr, []byte{regInVal}, buf[:])
	if errcode.IsI2CFail(err) {
		return errcode.NoI2CDev
	}
	return err
}

// Init puts the expander in its working state: all LEDs off, button pins
// configured as inputs, and the scan state primed so the first edge query
// after the next Scan is meaningful.
func (d *Device) Init() error {
	if err := d.LEDSet(LEDNone); err != nil {
		return err
	}
	if err := d.bus.Tx(d.addr, []byte{regCfgInp, ButAll}, nil); err != nil {
		return err
	}
	return d.Scan()
}

func (d *Device) writeLEDs() error {
	return d.bus.Tx(d.addr, []byte{regOutVal, d.leds}, nil)
}

// LEDOn turns on the LEDs set in mask; others are unchanged.
func (d *Device) LEDOn(mask uint8) error {
	d.leds |= mask
	return d.writeLEDs()
}

// LEDOff turns off the LEDs set in mask; others are unchanged.
func (d *Device) LEDOff(mask uint8) error {
	d.leds &^= mask
	return d.writeLEDs()
}

// LEDSet turns on exactly the LEDs set in mask and turns off the rest.
func (d *Device) LEDSet(mask uint8) error {
	d.leds = mask
	return d.writeLEDs()
}

// Scan samples the button levels, keeping the previous sample for the edge
// queries.
func (d *Device) Scan() error {
	d.prv = d.cur
	var buf [1]byte
	if err := d.bus.Tx(d.addr, []byte{regInVal}, buf[:]); err != nil {
		return err
	}
	d.cur = buf[0]
	return nil
}

// Buttons are low active: down reads 0.

// WentDown returns the subset of mask that was up at the scan before last
// and down at the last scan.
func (d *Device) WentDown(mask uint8) uint8 { return d.prv & ^d.cur & mask }

// WentUp returns the subset of mask that was down at the scan before last
// and up at the last scan.
func (d *Device) WentUp(mask uint8) uint8 { return ^d.prv & d.cur & mask }

// IsDown returns the subset of mask that was down at the last scan.
func (d *Device) IsDown(mask uint8) uint8 { return ^d.cur & mask }

// IsUp returns the subset of mask that was up at the last scan.
func (d *Device) IsUp(mask uint8) uint8 { return d.cur & mask }
