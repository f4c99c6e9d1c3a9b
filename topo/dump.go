package topo

import (
	"fmt"
	"io"
)

// Debug listings of the topology map. Nodes print as N<addr> (hex), triplets
// as T<tix>, bridges as I<bix>, matching the console's notation.

// DumpSummary writes a one-line overview of the map.
func (t *Topo) DumpSummary(w io.Writer) {
	fmt.Fprintf(w, "nodes(N) 1..%d, ", t.numNodes)
	fmt.Fprintf(w, "triplets(T) 0..%d, ", int(t.numTriplets)-1)
	if t.numBridges == 0 {
		fmt.Fprintf(w, "i2cbridges(I) none, ")
	} else {
		fmt.Fprintf(w, "i2cbridges(I) 0..%d, ", t.numBridges-1)
	}
	dir := "bidir"
	if t.loop {
		dir = "loop"
	}
	fmt.Fprintf(w, "dir %s\n", dir)
}

// DumpNodes lists every node with its identity, triplets and bridge.
func (t *Topo) DumpNodes(w io.Writer) {
	bix := uint16(0)
	for addr := uint16(1); addr <= t.numNodes; addr++ {
		fmt.Fprintf(w, "N%03X (%08X)", addr, t.NodeID(addr))
		first := t.NodeTriplet1(addr)
		for tix := first; tix < first+uint16(t.NodeNumTriplets(addr)); tix++ {
			fmt.Fprintf(w, " T%d", tix)
		}
		if bix < t.numBridges && t.BridgeAddr(bix) == addr {
			fmt.Fprintf(w, " I%d", bix)
			bix++
		}
		fmt.Fprintln(w)
	}
}

// DumpTriplets lists every triplet with its owning node and channel.
func (t *Topo) DumpTriplets(w io.Writer) {
	for tix := uint16(0); tix < t.numTriplets; tix++ {
		fmt.Fprintf(w, "T%d N%03X", tix, t.tripletAddr[tix])
		if t.TripletOnChan(tix) {
			fmt.Fprintf(w, ".C%d", t.TripletChan(tix))
		}
		fmt.Fprintln(w)
	}
}

// DumpBridges lists every I2C bridge with its owning node.
func (t *Topo) DumpBridges(w io.Writer) {
	for bix := uint16(0); bix < t.numBridges; bix++ {
		fmt.Fprintf(w, "I%d N%03X\n", bix, t.bridgeAddr[bix])
	}
}
