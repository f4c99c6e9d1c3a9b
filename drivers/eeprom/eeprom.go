// Package eeprom drives AT24C02-class I2C EEPROMs: 256 bytes, 8-bit
// register addressing, 8-byte write pages, 5 ms self-timed write cycle.
// The bus is any drivers.I2C, typically an i2cbridge.Bus so the EEPROM can
// sit behind a chain node's I2C bridge.
package eeprom

import (
	"bytes"
	"time"

	"tinygo.org/x/drivers"

	"ledchain-go/errcode"
	"ledchain-go/x/mathx"
)

// Well-known 7-bit device addresses of the EEPROMs on the demo boards.
const (
	AddrMainBoard  = 0x54
	AddrBasicBoard = 0x50
	AddrStick      = 0x51
)

const (
	memSize   = 256
	pageSize  = 8 // some parts have 16-byte pages; 8 is safe for all
	writeWait = 5 * time.Millisecond

	maxWriteChunk = 6
)

// Write sizes a bridged bus carries in a single transaction; keeping to
// these sizes keeps one Tx one EEPROM write cycle.
var writeChunks = [...]int{6, 4, 2, 1}

// Device wraps an I2C connection to an EEPROM. The bus must already be
// configured and, for bridged buses, powered.
type Device struct {
	bus  drivers.I2C
	addr uint16
}

// New creates a new EEPROM connection at the given 7-bit device address.
func New(bus drivers.I2C, addr uint16) Device {
	return Device{bus: bus, addr: addr}
}

// Present checks for the device with a one-byte read of register 0. A nack
// or timeout maps to errcode.NoI2CDev; note the probe may false-positive on
// any device that answers register 0.
func (d Device) Present() error {
	var buf [1]byte
	err := d.bus.Tx(d.addr, []byte{0x00}, buf[:])
	if errcode.IsI2CFail(err) {
		return errcode.NoI2CDev
	}
	return err
}

// Read fills buf from memory address raddr onward.
func (d Device) Read(raddr uint8, buf []byte) error {
	if int(raddr)+len(buf) > memSize {
		return errcode.InvalidParams
	}
	return d.bus.Tx(d.addr, []byte{raddr}, buf)
}

// Write stores data at memory address raddr onward. Writes are split so no
// transaction crosses a page boundary, and each transaction is followed by
// the part's self-timed write cycle wait.
func (d Device) Write(raddr uint8, data []byte) error {
	if int(raddr)+len(data) > memSize {
		return errcode.InvalidParams
	}
	w := make([]byte, 0, 1+maxWriteChunk)
	for len(data) > 0 {
		fit := mathx.Min(pageSize-int(raddr)%pageSize, len(data))
		chunk := 1
		for _, n := range writeChunks {
			if fit >= n {
				chunk = n
				break
			}
		}
		w = append(w[:0], raddr)
		w = append(w, data[:chunk]...)
		err := d.bus.Tx(d.addr, w, nil)
		time.Sleep(writeWait)
		if err != nil {
			return err
		}
		raddr += uint8(chunk)
		data = data[chunk:]
	}
	return nil
}

// Compare reads from memory address raddr onward and compares against
// expect, returning errcode.CompareFail on the first differing chunk.
func (d Device) Compare(raddr uint8, expect []byte) error {
	if int(raddr)+len(expect) > memSize {
		return errcode.InvalidParams
	}
	var tmp [8]byte
	for len(expect) > 0 {
		chunk := mathx.Min(len(expect), len(tmp))
		if err := d.bus.Tx(d.addr, []byte{raddr}, tmp[:chunk]); err != nil {
			return err
		}
		if !bytes.Equal(tmp[:chunk], expect[:chunk]) {
			return errcode.CompareFail
		}
		raddr += uint8(chunk)
		expect = expect[chunk:]
	}
	return nil
}
