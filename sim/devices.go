package sim

import "ledchain-go/errcode"

// EEPROM models a 256-byte I2C EEPROM (AT24C02 class) with 8-bit register
// addressing. Page timing is not modelled; writes land immediately.
type EEPROM struct {
	Mem [256]byte
}

var _ Device = (*EEPROM)(nil)

func (e *EEPROM) ReadReg(raddr uint8, buf []byte) error {
	if int(raddr)+len(buf) > len(e.Mem) {
		return errcode.InvalidParams
	}
	copy(buf, e.Mem[raddr:])
	return nil
}

func (e *EEPROM) WriteReg(raddr uint8, data []byte) error {
	if int(raddr)+len(data) > len(e.Mem) {
		return errcode.InvalidParams
	}
	copy(e.Mem[raddr:], data)
	return nil
}

// IOX models a PCA6408-class 8-bit I/O expander: input, output, polarity and
// configuration registers. Button pins are low active, so released buttons
// read 1.
type IOX struct {
	inval  uint8
	outval uint8
	inpinv uint8
	cfg    uint8
}

var _ Device = (*IOX)(nil)

// NewIOX returns an expander with all input pins high (buttons released).
func NewIOX() *IOX { return &IOX{inval: 0xFF} }

// Press pulls the given input pins low.
func (x *IOX) Press(mask uint8) { x.inval &^= mask }

// Release lets the given input pins float high again.
func (x *IOX) Release(mask uint8) { x.inval |= mask }

// Outputs returns the output register, i.e. the LED pin levels.
func (x *IOX) Outputs() uint8 { return x.outval }

func (x *IOX) ReadReg(raddr uint8, buf []byte) error {
	if len(buf) != 1 {
		return errcode.InvalidParams
	}
	switch raddr {
	case 0x00:
		buf[0] = x.inval
	case 0x01:
		buf[0] = x.outval
	case 0x02:
		buf[0] = x.inpinv
	case 0x03:
		buf[0] = x.cfg
	default:
		return errcode.I2CNack
	}
	return nil
}

func (x *IOX) WriteReg(raddr uint8, data []byte) error {
	if len(data) != 1 {
		return errcode.InvalidParams
	}
	switch raddr {
	case 0x01:
		x.outval = data[0]
	case 0x02:
		x.inpinv = data[0]
	case 0x03:
		x.cfg = data[0]
	default:
		return errcode.I2CNack
	}
	return nil
}
