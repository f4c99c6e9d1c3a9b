// Package i2cbridge adapts the I2C bus behind a chain node's bridge to the
// tinygo.org/x/drivers I2C interface, so ordinary register-level device
// drivers can run over the chain's I2C passthrough telegrams.
//
// The passthrough is register-addressed: every transaction starts with a
// register byte. Tx therefore requires w to begin with the register address;
// transactions without one (current-address reads, raw command writes) are
// rejected with errcode.Unsupported.
package i2cbridge

import (
	"ledchain-go/errcode"
	"ledchain-go/telegram"
	"ledchain-go/topo"
	"ledchain-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Bus is one bridge's I2C bus. The device address passed to Tx selects the
// peripheral on that bus; the owning node is fixed at construction.
type Bus struct {
	tr   telegram.Transport
	addr uint16
}

var _ drivers.I2C = (*Bus)(nil)

// New returns the I2C bus behind the bridge of the node at addr. The bridge
// pads must be powered (a successful topo build does that).
func New(tr telegram.Transport, addr uint16) *Bus {
	return &Bus{tr: tr, addr: addr}
}

// ForBridge returns the I2C bus of discovered bridge bix; 0 <= bix < NumBridges().
func ForBridge(t *topo.Topo, bix uint16) *Bus {
	return New(t.Transport(), t.BridgeAddr(bix))
}

// NodeAddr returns the chain address of the bridge's owning node.
func (b *Bus) NodeAddr() uint16 { return b.addr }

// Tx performs one register-addressed transaction with device daddr:
// w = [reg] followed by r != nil reads len(r) bytes from reg onward;
// w = [reg, data...] with r == nil writes data at reg onward. Long
// transfers are split into passthrough-telegram sized pieces with the
// register address advanced accordingly.
func (b *Bus) Tx(daddr uint16, w, r []byte) error {
	if len(w) == 0 {
		return errcode.Unsupported
	}
	raddr := w[0]
	if len(r) > 0 {
		if len(w) != 1 {
			return errcode.Unsupported
		}
		return b.read(uint8(daddr), raddr, r)
	}
	if len(w) == 1 {
		return errcode.Unsupported
	}
	return b.write(uint8(daddr), raddr, w[1:])
}

func (b *Bus) read(daddr7, raddr uint8, buf []byte) error {
	for len(buf) > 0 {
		chunk := mathx.Min(len(buf), telegram.I2CMaxRead)
		if err := b.tr.I2CRead(b.addr, daddr7, raddr, buf[:chunk]); err != nil {
			return err
		}
		raddr += uint8(chunk)
		buf = buf[chunk:]
	}
	return nil
}

func (b *Bus) write(daddr7, raddr uint8, data []byte) error {
	for len(data) > 0 {
		chunk := 1
		for _, n := range telegram.I2CWriteSizes {
			if len(data) >= n {
				chunk = n
				break
			}
		}
		if err := b.tr.I2CWrite(b.addr, daddr7, raddr, data[:chunk]); err != nil {
			return err
		}
		raddr += uint8(chunk)
		data = data[chunk:]
	}
	return nil
}
