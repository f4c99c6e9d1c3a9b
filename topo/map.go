package topo

// Loop reports whether the chain runs in loop direction (true) or
// bidirectional (false). Only meaningful after a successful build.
func (t *Topo) Loop() bool { return t.loop }

// NumNodes returns the number of nodes in the scanned chain.
func (t *Topo) NumNodes() uint16 { return t.numNodes }

// NodeID returns the identity word of the node at addr; 1 <= addr <= NumNodes().
func (t *Topo) NodeID(addr uint16) uint32 {
	t.assertAddr(addr)
	return t.nodeID[addr]
}

// NodeNumTriplets returns how many triplets the node at addr drives:
// 1 for an RGBI, 3 for a SAID, 2 for a SAID with an I2C bridge.
func (t *Topo) NodeNumTriplets(addr uint16) uint8 {
	t.assertAddr(addr)
	return t.nodeNumTriplets[addr]
}

// NodeTriplet1 returns the index of the first triplet driven by the node at
// addr. A node's triplets are numbered consecutively from there.
func (t *Topo) NodeTriplet1(addr uint16) uint16 {
	t.assertAddr(addr)
	return t.nodeTriplet1[addr]
}

// NumTriplets returns the number of triplets in the scanned chain.
func (t *Topo) NumTriplets() uint16 { return t.numTriplets }

// TripletAddr returns the address of the node driving triplet tix;
// 0 <= tix < NumTriplets().
func (t *Topo) TripletAddr(tix uint16) uint16 {
	t.assertTix(tix)
	return t.tripletAddr[tix]
}

// TripletOnChan reports whether triplet tix sits on a channel of a
// multi-channel node. Channel-less nodes take a whole-node color telegram,
// channel nodes take a per-channel one.
func (t *Topo) TripletOnChan(tix uint16) bool {
	t.assertTix(tix)
	return t.tripletChan[tix] != ChanNone
}

// TripletChan returns the channel triplet tix is attached to. Only defined
// when TripletOnChan(tix).
func (t *Topo) TripletChan(tix uint16) uint8 {
	t.assertTix(tix)
	if t.tripletChan[tix] == ChanNone {
		panic("topo: triplet is not on a channel")
	}
	return t.tripletChan[tix]
}

// NumBridges returns the number of I2C bridges in the scanned chain.
func (t *Topo) NumBridges() uint16 { return t.numBridges }

// BridgeAddr returns the address of the node owning I2C bridge bix;
// 0 <= bix < NumBridges().
func (t *Topo) BridgeAddr(bix uint16) uint16 {
	t.assertBix(bix)
	return t.bridgeAddr[bix]
}
