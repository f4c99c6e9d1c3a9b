package topo

import (
	"ledchain-go/errcode"
	"ledchain-go/telegram"
)

// The builder walks these states in order. Scanning and configuring a chain
// takes several telegrams per node; with hundreds of nodes a single blocking
// call would hog the caller for a long time, so each BuildStep performs
// roughly one telegram and returns.
type buildState uint8

const (
	stateStart buildState = iota
	stateIdentifying
	stateClearError
	stateEnableCRC
	stateI2CPower
	stateSetCurrent
	stateGoActive
	stateDone
)

// BuildStart begins a fresh build pass. Any in-progress pass is discarded.
func (t *Topo) BuildStart() {
	t.state = stateStart
	t.result = nil
}

// BuildDone reports whether the pass has reached its terminal state. The
// stored result (nil or the first error) is what BuildStep keeps returning.
func (t *Topo) BuildDone() bool { return t.state == stateDone }

func (t *Topo) fail(err error) error {
	t.result = err
	t.state = stateDone
	return err
}

// BuildStep performs approximately one unit of transport work. Call it
// repeatedly until BuildDone. Any transport error ends the pass; there are
// no retries at this layer, the recourse is a new BuildStart.
func (t *Topo) BuildStep() error {
	switch t.state {

	case stateStart:
		// Reset and init the whole chain; this tells us how many nodes
		// answered and in which direction the chain runs.
		t.clear()
		last, loop, err := t.tr.ResetInit()
		if err != nil {
			return t.fail(err)
		}
		t.last, t.loop = last, loop
		t.addr = 1 // nodes to scan: 1 <= addr <= last
		t.state = stateIdentifying
		return nil

	case stateIdentifying:
		if t.addr <= t.last {
			if err := t.identifyNode(t.addr); err != nil {
				return t.fail(err)
			}
			t.addr++
			return nil
		}
		if t.numNodes != t.last {
			// A node answered init but dropped off during the scan
			// (or vice versa). Distinct from a transport error so
			// callers can decide to rescan.
			return t.fail(errcode.ChainChanged)
		}
		t.state = stateClearError
		return nil

	case stateClearError:
		// Broadcast-clear the latched under-voltage flag; a SAID
		// refuses to go active while it is set.
		if err := t.tr.ClearError(telegram.Broadcast); err != nil {
			return t.fail(err)
		}
		t.addr = 1 // nodes to enable CRC for
		t.state = stateEnableCRC
		return nil

	case stateEnableCRC:
		if t.addr <= t.last {
			if err := t.enableCRC(t.addr); err != nil {
				return t.fail(err)
			}
			t.addr++
			return nil
		}
		t.bix = 0 // bridges to power: 0 <= bix < numBridges
		t.state = stateI2CPower
		return nil

	case stateI2CPower:
		if t.bix < t.numBridges {
			if err := t.powerBridge(t.bix); err != nil {
				return t.fail(err)
			}
			t.bix++
			return nil
		}
		t.addr = 1 // nodes to program drive current for
		t.state = stateSetCurrent
		return nil

	case stateSetCurrent:
		if t.addr <= t.last {
			if err := t.SetNodeCurrents(t.addr, telegram.CurrentDither); err != nil {
				return t.fail(err)
			}
			t.addr++
			return nil
		}
		t.state = stateGoActive
		return nil

	case stateGoActive:
		if err := t.tr.GoActive(telegram.Broadcast); err != nil {
			return t.fail(err)
		}
		t.result = nil
		t.state = stateDone
		return nil
	}

	// stateDone: idempotent, no transport traffic.
	return t.result
}

// Build runs a whole pass in one blocking call, for callers that have
// nothing to interleave.
func (t *Topo) Build() error {
	t.BuildStart()
	for !t.BuildDone() {
		if err := t.BuildStep(); err != nil {
			return err
		}
	}
	return nil
}

func (t *Topo) clear() {
	t.numNodes = 0
	t.numTriplets = 0
	t.numBridges = 0
	t.loop = false
	t.last = 0
}

func (t *Topo) addTriplet(addr uint16, chn uint8) error {
	if int(t.numTriplets) >= t.lim.MaxTriplets {
		return errcode.CapacityExceeded
	}
	t.tripletAddr[t.numTriplets] = addr
	t.tripletChan[t.numTriplets] = chn
	t.numTriplets++
	return nil
}

// identifyNode asks one node for its identity and records it in the map:
// an RGBI contributes one channel-less triplet; a SAID contributes triplets
// for channels 0 and 1 plus, depending on its bridge configuration, either a
// channel 2 triplet or a bridge entry.
func (t *Topo) identifyNode(addr uint16) error {
	id, err := t.tr.Identify(addr)
	if err != nil {
		return err
	}
	if int(t.numNodes) >= t.lim.MaxNodes {
		return errcode.CapacityExceeded
	}
	t.numNodes++ // addresses are 1-based, so pre-increment
	t.nodeID[t.numNodes] = id
	t.nodeTriplet1[t.numNodes] = t.numTriplets

	switch {
	case telegram.IsRGBI(id):
		if err := t.addTriplet(addr, ChanNone); err != nil {
			return err
		}
		t.nodeNumTriplets[t.numNodes] = 1

	case telegram.IsSAID(id):
		if err := t.addTriplet(addr, 0); err != nil {
			return err
		}
		if err := t.addTriplet(addr, 1); err != nil {
			return err
		}
		bridge, err := t.tr.I2CBridgeEnabled(addr)
		if err != nil {
			return err
		}
		if bridge {
			if int(t.numBridges) >= t.lim.MaxBridges {
				return errcode.CapacityExceeded
			}
			t.bridgeAddr[t.numBridges] = addr
			t.numBridges++
			t.nodeNumTriplets[t.numNodes] = 2
		} else {
			if err := t.addTriplet(addr, 2); err != nil {
				return err
			}
			t.nodeNumTriplets[t.numNodes] = 3
		}

	default:
		return errcode.UnknownID
	}
	return nil
}

func (t *Topo) enableCRC(addr uint16) error {
	id := t.nodeID[addr]
	switch {
	case telegram.IsRGBI(id):
		return t.tr.SetSetup(addr, telegram.SetupDefaultRGBI|telegram.SetupCRCEnable)
	case telegram.IsSAID(id):
		return t.tr.SetSetup(addr, telegram.SetupDefaultSAID|telegram.SetupCRCEnable)
	}
	return errcode.UnknownID
}

// powerBridge supplies current to the I2C pads (channel 2) of one bridge.
func (t *Topo) powerBridge(bix uint16) error {
	return t.tr.SetCurrentChannel(t.bridgeAddr[bix], 2, telegram.CurrentDefault, 4, 4, 4)
}

// SetNodeCurrents programs the drive current of every triplet channel of the
// node at addr so that all triplets on the chain light equally bright for
// the same color value. The builder calls this with the dither flag; client
// code may call it again after a build to change flags.
//
// The chain-wide base current is 12 mA. SAID channel 0 is high power (tier 2
// is 12 mA there), channels 1 and 2 are low power (tier 3 is 12 mA). An RGBI
// has no current register; it is driven in night mode (10 mA) by SetTriplet
// instead.
func (t *Topo) SetNodeCurrents(addr uint16, flags uint8) error {
	t.assertAddr(addr)
	id := t.nodeID[addr]
	if telegram.IsRGBI(id) {
		return nil
	}
	if !telegram.IsSAID(id) {
		return errcode.UnknownID
	}
	if err := t.tr.SetCurrentChannel(addr, 0, flags, 2, 2, 2); err != nil {
		return err
	}
	if err := t.tr.SetCurrentChannel(addr, 1, flags, 3, 3, 3); err != nil {
		return err
	}
	if t.nodeNumTriplets[addr] == 2 {
		// Channel 2 is an I2C bridge, not a drivable triplet.
		return nil
	}
	return t.tr.SetCurrentChannel(addr, 2, flags, 3, 3, 3)
}
