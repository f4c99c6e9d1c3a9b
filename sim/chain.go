// Package sim provides an in-memory chain that implements
// telegram.Transport: a configurable row of RGBI/SAID nodes with optional
// I2C bridges and attached I2C devices. It records every telegram so tests
// can assert on traffic, and a failure hook lets tests inject transport
// errors at any point of a build pass. The demo binaries run on it too.
package sim

import (
	"ledchain-go/errcode"
	"ledchain-go/telegram"
)

// Kind selects the chip a simulated node pretends to be.
type Kind uint8

const (
	KindRGBI Kind = iota
	KindSAID
)

// Device is an I2C peripheral behind a simulated bridge.
type Device interface {
	ReadReg(raddr uint8, buf []byte) error
	WriteReg(raddr uint8, data []byte) error
}

// Node describes one simulated chip.
type Node struct {
	Kind   Kind
	Bridge bool // SAID only: third channel wired for I2C
	ID     uint32 // identity override; zero derives one from Kind
	Devices map[uint8]Device // by 7-bit device address

	// Runtime state, written by telegrams.
	pwm        [3][3]uint16 // per channel: r, g, b
	pwmFlags   uint8
	curLevel   [3]uint8 // current tier per channel
	curFlags   [3]uint8
	setup      uint8
	padPowered bool
	active     bool
	errFlags   uint8
}

// RGBI returns a single-triplet node.
func RGBI() *Node { return &Node{Kind: KindRGBI} }

// SAID returns a three-channel node without a bridge.
func SAID() *Node { return &Node{Kind: KindSAID} }

// SAIDBridge returns a SAID whose third channel is an I2C bridge carrying
// the given devices.
func SAIDBridge(devices map[uint8]Device) *Node {
	return &Node{Kind: KindSAID, Bridge: true, Devices: devices}
}

func (n *Node) id() uint32 {
	if n.ID != 0 {
		return n.ID
	}
	switch n.Kind {
	case KindSAID:
		return telegram.MakeID(0xAA, 0x0040, 1)
	default:
		return telegram.MakeID(0xAA, 0x0000, 1)
	}
}

// PWM returns the last color telegram values seen by channel chn (an RGBI
// stores its whole-node color in channel 0).
func (n *Node) PWM(chn uint8) (r, g, b uint16) {
	return n.pwm[chn][0], n.pwm[chn][1], n.pwm[chn][2]
}

// PWMFlags returns the flags of the last whole-node color telegram.
func (n *Node) PWMFlags() uint8 { return n.pwmFlags }

// Active reports whether the node saw a go-active telegram.
func (n *Node) Active() bool { return n.active }

// Call is one recorded telegram.
type Call struct {
	Op      string
	Addr    uint16
	Chn     uint8
	R, G, B uint16
	Flags   uint8
}

// Chain is the simulated transport. Not safe for concurrent use, matching
// the single-caller model of the real link.
type Chain struct {
	LoopDir bool
	nodes   []*Node

	// Calls is the telegram trace, in emission order.
	Calls []Call

	// Fail, when set, is consulted before every telegram; returning a
	// non-nil error fails that telegram without touching chain state.
	Fail func(op string, addr uint16) error
}

var _ telegram.Transport = (*Chain)(nil)

// New builds a chain; nodes[0] gets address 1.
func New(loop bool, nodes ...*Node) *Chain {
	return &Chain{LoopDir: loop, nodes: nodes}
}

// Node returns the simulated node at the 1-based address addr.
func (c *Chain) Node(addr uint16) *Node { return c.nodes[addr-1] }

// Count returns how many telegrams of the given op were emitted.
func (c *Chain) Count(op string) int {
	n := 0
	for _, call := range c.Calls {
		if call.Op == op {
			n++
		}
	}
	return n
}

func (c *Chain) record(call Call) error {
	if c.Fail != nil {
		if err := c.Fail(call.Op, call.Addr); err != nil {
			return err
		}
	}
	c.Calls = append(c.Calls, call)
	return nil
}

func (c *Chain) node(addr uint16) (*Node, error) {
	if addr < 1 || int(addr) > len(c.nodes) {
		return nil, errcode.Timeout
	}
	return c.nodes[addr-1], nil
}

func (c *Chain) ResetInit() (uint16, bool, error) {
	if err := c.record(Call{Op: "resetinit"}); err != nil {
		return 0, false, err
	}
	for _, n := range c.nodes {
		n.active = false
		n.padPowered = false
		n.errFlags = 0x01 // power-on under-voltage flag
	}
	return uint16(len(c.nodes)), c.LoopDir, nil
}

func (c *Chain) Identify(addr uint16) (uint32, error) {
	if err := c.record(Call{Op: "identify", Addr: addr}); err != nil {
		return 0, err
	}
	n, err := c.node(addr)
	if err != nil {
		return 0, err
	}
	return n.id(), nil
}

func (c *Chain) I2CBridgeEnabled(addr uint16) (bool, error) {
	if err := c.record(Call{Op: "i2cenable", Addr: addr}); err != nil {
		return false, err
	}
	n, err := c.node(addr)
	if err != nil {
		return false, err
	}
	return n.Kind == KindSAID && n.Bridge, nil
}

func (c *Chain) ClearError(addr uint16) error {
	if err := c.record(Call{Op: "clrerror", Addr: addr}); err != nil {
		return err
	}
	if addr == telegram.Broadcast {
		for _, n := range c.nodes {
			n.errFlags = 0
		}
		return nil
	}
	n, err := c.node(addr)
	if err != nil {
		return err
	}
	n.errFlags = 0
	return nil
}

func (c *Chain) SetSetup(addr uint16, flags uint8) error {
	if err := c.record(Call{Op: "setsetup", Addr: addr, Flags: flags}); err != nil {
		return err
	}
	n, err := c.node(addr)
	if err != nil {
		return err
	}
	n.setup = flags
	return nil
}

func (c *Chain) SetCurrentChannel(addr uint16, chn uint8, flags uint8, r, g, b uint8) error {
	if err := c.record(Call{Op: "curchn", Addr: addr, Chn: chn, Flags: flags,
		R: uint16(r), G: uint16(g), B: uint16(b)}); err != nil {
		return err
	}
	n, err := c.node(addr)
	if err != nil {
		return err
	}
	if chn > 2 {
		return errcode.InvalidParams
	}
	n.curLevel[chn] = r
	n.curFlags[chn] = flags
	if chn == 2 && n.Bridge {
		n.padPowered = true
	}
	return nil
}

func (c *Chain) GoActive(addr uint16) error {
	if err := c.record(Call{Op: "goactive", Addr: addr}); err != nil {
		return err
	}
	if addr == telegram.Broadcast {
		for _, n := range c.nodes {
			if n.errFlags == 0 {
				n.active = true
			}
		}
		return nil
	}
	n, err := c.node(addr)
	if err != nil {
		return err
	}
	if n.errFlags == 0 {
		n.active = true
	}
	return nil
}

func (c *Chain) SetPWM(addr uint16, r, g, b uint16, flags uint8) error {
	if err := c.record(Call{Op: "setpwm", Addr: addr, R: r, G: g, B: b, Flags: flags}); err != nil {
		return err
	}
	n, err := c.node(addr)
	if err != nil {
		return err
	}
	n.pwm[0] = [3]uint16{r, g, b}
	n.pwmFlags = flags
	return nil
}

func (c *Chain) SetPWMChannel(addr uint16, chn uint8, r, g, b uint16) error {
	if err := c.record(Call{Op: "setpwmchn", Addr: addr, Chn: chn, R: r, G: g, B: b}); err != nil {
		return err
	}
	n, err := c.node(addr)
	if err != nil {
		return err
	}
	if chn > 2 {
		return errcode.InvalidParams
	}
	n.pwm[chn] = [3]uint16{r, g, b}
	return nil
}

func (c *Chain) i2cDevice(addr uint16, daddr7 uint8) (Device, error) {
	n, err := c.node(addr)
	if err != nil {
		return nil, err
	}
	if n.Kind != KindSAID || !n.Bridge {
		return nil, errcode.NoI2CBridge
	}
	if !n.padPowered {
		return nil, errcode.I2CTimeout
	}
	dev, ok := n.Devices[daddr7]
	if !ok {
		return nil, errcode.I2CNack
	}
	return dev, nil
}

func (c *Chain) I2CRead(addr uint16, daddr7 uint8, raddr uint8, buf []byte) error {
	if err := c.record(Call{Op: "i2cread", Addr: addr, Chn: daddr7, Flags: raddr}); err != nil {
		return err
	}
	if len(buf) > telegram.I2CMaxRead {
		return errcode.InvalidParams
	}
	dev, err := c.i2cDevice(addr, daddr7)
	if err != nil {
		return err
	}
	return dev.ReadReg(raddr, buf)
}

func (c *Chain) I2CWrite(addr uint16, daddr7 uint8, raddr uint8, data []byte) error {
	if err := c.record(Call{Op: "i2cwrite", Addr: addr, Chn: daddr7, Flags: raddr}); err != nil {
		return err
	}
	ok := false
	for _, n := range telegram.I2CWriteSizes {
		if len(data) == n {
			ok = true
			break
		}
	}
	if !ok {
		return errcode.InvalidParams
	}
	dev, err := c.i2cDevice(addr, daddr7)
	if err != nil {
		return err
	}
	return dev.WriteReg(raddr, data)
}
