// Package topo discovers and models the physical topology of a daisy-chained
// LED bus, and abstracts heterogeneous driver chips behind one flat index
// space of RGB triplets.
//
// Terminology: a node is an addressable chip on the chain. Its identity word
// classifies it as either an RGBI (drives one embedded triplet) or a SAID
// (three channels, each driving one external triplet). A SAID may instead be
// configured to use its third channel as an I2C bridge, in which case it
// drives only two triplets. A triplet is one controllable RGB unit; node
// addresses are 1-based, triplet and bridge indices 0-based.
//
// The topology map is produced by a build pass: BuildStart once, then
// BuildStep until BuildDone, or the blocking Build convenience wrapper. Each
// step performs roughly one telegram, so a caller can interleave other polled
// work (console input, button scanning) between steps on long chains. Once
// built, the map is inspected through the Node/Triplet/Bridge accessors and
// consumed by SetTriplet, which hides per-chip drive details: channel
// selection, current calibration and PWM bit layout.
//
// A Topo is not safe for concurrent use; it is a single-caller, cooperative
// object. A build pass is either completed or abandoned — calling BuildStart
// again discards all in-progress state.
package topo

import (
	"fmt"

	"ledchain-go/telegram"
)

// ChanNone marks a triplet driven by a node without channels (an RGBI).
const ChanNone uint8 = 0xFF

// Limits bounds the arenas the topology map is stored in. The zero value
// selects DefaultLimits. Exceeding a limit during a build ends the pass with
// errcode.CapacityExceeded.
type Limits struct {
	MaxNodes    int
	MaxTriplets int
	MaxBridges  int
}

// DefaultLimits fits the usual demo boards. The theoretical chain maximum is
// 1000 nodes; size Limits for the boards actually wired.
var DefaultLimits = Limits{MaxNodes: 100, MaxTriplets: 200, MaxBridges: 5}

func (l Limits) withDefaults() Limits {
	if l.MaxNodes <= 0 {
		l.MaxNodes = DefaultLimits.MaxNodes
	}
	if l.MaxTriplets <= 0 {
		l.MaxTriplets = DefaultLimits.MaxTriplets
	}
	if l.MaxBridges <= 0 {
		l.MaxBridges = DefaultLimits.MaxBridges
	}
	return l
}

// Topo owns the topology map of one chain. All mutation happens inside a
// build pass; every other component holds it read-only.
type Topo struct {
	tr  telegram.Transport
	lim Limits

	// Chain attributes from the reset+init response.
	loop bool
	last uint16

	// Node table; slot 0 unused, addresses are 1-based.
	numNodes        uint16
	nodeID          []uint32
	nodeNumTriplets []uint8
	nodeTriplet1    []uint16

	// Triplet table, laid out in node-address order.
	numTriplets uint16
	tripletAddr []uint16
	tripletChan []uint8

	// Bridge table, ascending node address.
	numBridges uint16
	bridgeAddr []uint16

	// Dim level survives across builds.
	dim int

	// Builder state. The two cursors are deliberately separate fields:
	// addr walks nodes, bix walks bridges.
	state  buildState
	result error
	addr   uint16
	bix    uint16
}

// New creates a Topo over the given transport. The map starts empty; nothing
// is queryable before a successful build pass.
func New(tr telegram.Transport, lim Limits) *Topo {
	lim = lim.withDefaults()
	return &Topo{
		tr:              tr,
		lim:             lim,
		nodeID:          make([]uint32, lim.MaxNodes+1),
		nodeNumTriplets: make([]uint8, lim.MaxNodes+1),
		nodeTriplet1:    make([]uint16, lim.MaxNodes+1),
		tripletAddr:     make([]uint16, lim.MaxTriplets),
		tripletChan:     make([]uint8, lim.MaxTriplets),
		bridgeAddr:      make([]uint16, lim.MaxBridges),
		dim:             DimDefault,
		state:           stateDone,
	}
}

// Transport returns the transport the map was built over, for collaborators
// that need raw telegram access (eg the I2C bridge adapter).
func (t *Topo) Transport() telegram.Transport { return t.tr }

// Accessor preconditions are programming contracts, not runtime conditions.
func (t *Topo) assertAddr(addr uint16) {
	if addr < 1 || addr > t.numNodes {
		panic(fmt.Sprintf("topo: node address %d out of range 1..%d", addr, t.numNodes))
	}
}

func (t *Topo) assertTix(tix uint16) {
	if tix >= t.numTriplets {
		panic(fmt.Sprintf("topo: triplet index %d out of range 0..%d", tix, int(t.numTriplets)-1))
	}
}

func (t *Topo) assertBix(bix uint16) {
	if bix >= t.numBridges {
		panic(fmt.Sprintf("topo: bridge index %d out of range 0..%d", bix, int(t.numBridges)-1))
	}
}
