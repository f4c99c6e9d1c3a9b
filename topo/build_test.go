package topo

import (
	"errors"
	"testing"

	"ledchain-go/errcode"
	"ledchain-go/sim"
	"ledchain-go/telegram"
)

func mixedChain() *sim.Chain {
	return sim.New(true,
		sim.RGBI(),
		sim.SAIDBridge(nil),
		sim.SAID(),
		sim.RGBI(),
	)
}

func TestBuildMixedChain(t *testing.T) {
	chain := mixedChain()
	topo := New(chain, Limits{})

	if err := topo.Build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if got := topo.NumNodes(); got != 4 {
		t.Errorf("NumNodes = %d, want 4", got)
	}
	if !topo.Loop() {
		t.Error("Loop = false, want true")
	}

	wantTriplets := []uint8{1, 2, 3, 1}
	for addr := uint16(1); addr <= 4; addr++ {
		if got := topo.NodeNumTriplets(addr); got != wantTriplets[addr-1] {
			t.Errorf("NodeNumTriplets(%d) = %d, want %d", addr, got, wantTriplets[addr-1])
		}
	}
	if got := topo.NumTriplets(); got != 7 {
		t.Errorf("NumTriplets = %d, want 7", got)
	}

	// triplet ranges are contiguous in node order
	for addr := uint16(1); addr < topo.NumNodes(); addr++ {
		next := topo.NodeTriplet1(addr) + uint16(topo.NodeNumTriplets(addr))
		if next != topo.NodeTriplet1(addr+1) {
			t.Errorf("node %d triplet range ends at %d, node %d starts at %d",
				addr, next, addr+1, topo.NodeTriplet1(addr+1))
		}
	}

	if got := topo.NumBridges(); got != 1 {
		t.Fatalf("NumBridges = %d, want 1", got)
	}
	if got := topo.BridgeAddr(0); got != 2 {
		t.Errorf("BridgeAddr(0) = %d, want 2", got)
	}

	// RGBI triplets have no channel, SAID triplets do
	if topo.TripletOnChan(0) {
		t.Error("triplet 0 (RGBI) reports a channel")
	}
	if !topo.TripletOnChan(1) || topo.TripletChan(1) != 0 {
		t.Error("triplet 1 should be SAID channel 0")
	}
	if !topo.TripletOnChan(2) || topo.TripletChan(2) != 1 {
		t.Error("triplet 2 should be SAID channel 1")
	}
	// bridge node contributes no channel 2 triplet; node 3 does
	if topo.TripletChan(5) != 2 {
		t.Errorf("triplet 5 channel = %d, want 2", topo.TripletChan(5))
	}

	for addr := uint16(1); addr <= 4; addr++ {
		if !chain.Node(addr).Active() {
			t.Errorf("node %d not active after build", addr)
		}
	}
}

func TestBuildCurrentCalibration(t *testing.T) {
	chain := mixedChain()
	topo := New(chain, Limits{})
	if err := topo.Build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// tier per (node, channel): SAID channel 0 runs tier 2, channels 1/2
	// tier 3; the bridge pad power-up is tier 4 on channel 2.
	type tier struct {
		addr  uint16
		chn   uint8
		level uint16
		flags uint8
	}
	want := []tier{
		{2, 2, 4, telegram.CurrentDefault}, // bridge pad power, before current calibration
		{2, 0, 2, telegram.CurrentDither},
		{2, 1, 3, telegram.CurrentDither},
		{3, 0, 2, telegram.CurrentDither},
		{3, 1, 3, telegram.CurrentDither},
		{3, 2, 3, telegram.CurrentDither},
	}
	var got []tier
	for _, call := range chain.Calls {
		if call.Op == "curchn" {
			got = append(got, tier{call.Addr, call.Chn, call.R, call.Flags})
		}
	}
	if len(got) != len(want) {
		t.Fatalf("current telegrams = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("current telegram %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildStepwiseDoneIdempotent(t *testing.T) {
	chain := mixedChain()
	topo := New(chain, Limits{})

	topo.BuildStart()
	steps := 0
	for !topo.BuildDone() {
		if err := topo.BuildStep(); err != nil {
			t.Fatalf("step %d failed: %v", steps, err)
		}
		steps++
		if steps > 1000 {
			t.Fatal("build does not terminate")
		}
	}

	calls := len(chain.Calls)
	for i := 0; i < 3; i++ {
		if err := topo.BuildStep(); err != nil {
			t.Errorf("step after done returned %v", err)
		}
	}
	if len(chain.Calls) != calls {
		t.Errorf("steps after done emitted %d telegrams", len(chain.Calls)-calls)
	}
}

func TestBuildFailureDuringScan(t *testing.T) {
	boom := errcode.Timeout
	chain := mixedChain()
	chain.Fail = func(op string, addr uint16) error {
		if op == "identify" && addr == 3 {
			return boom
		}
		return nil
	}
	topo := New(chain, Limits{})

	topo.BuildStart()
	var err error
	for !topo.BuildDone() {
		err = topo.BuildStep()
	}
	if !errors.Is(err, boom) {
		t.Fatalf("build error = %v, want %v", err, boom)
	}

	// nodes before the failure stay fully recorded
	if got := topo.NumNodes(); got != 2 {
		t.Errorf("NumNodes = %d, want 2", got)
	}

	calls := len(chain.Calls)
	if got := topo.BuildStep(); !errors.Is(got, boom) {
		t.Errorf("step after failure = %v, want stored %v", got, boom)
	}
	if len(chain.Calls) != calls {
		t.Error("step after failure emitted telegrams")
	}
}

func TestBuildUnknownIdentity(t *testing.T) {
	weird := sim.RGBI()
	weird.ID = telegram.MakeID(0xAA, 0x0123, 1)
	chain := sim.New(false, sim.RGBI(), weird)
	topo := New(chain, Limits{})

	if err := topo.Build(); !errors.Is(err, errcode.UnknownID) {
		t.Fatalf("build error = %v, want %v", err, errcode.UnknownID)
	}
	if !topo.BuildDone() {
		t.Error("builder not done after classification error")
	}
}

func TestBuildCapacityExceeded(t *testing.T) {
	chain := sim.New(false, sim.SAID(), sim.SAID())
	topo := New(chain, Limits{MaxTriplets: 4})

	if err := topo.Build(); !errors.Is(err, errcode.CapacityExceeded) {
		t.Fatalf("build error = %v, want %v", err, errcode.CapacityExceeded)
	}
}

func TestBuildChainChanged(t *testing.T) {
	chain := mixedChain()
	topo := New(chain, Limits{})

	topo.BuildStart()
	for topo.state == stateStart || topo.addr <= topo.last {
		if err := topo.BuildStep(); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
	}
	// a node dropped off between the scan and the tally
	topo.numNodes--
	if err := topo.BuildStep(); !errors.Is(err, errcode.ChainChanged) {
		t.Fatalf("tally error = %v, want %v", err, errcode.ChainChanged)
	}
	if !topo.BuildDone() {
		t.Error("builder not done after chain change")
	}
}

func TestRebuildClearsMap(t *testing.T) {
	chain := mixedChain()
	topo := New(chain, Limits{})
	if err := topo.Build(); err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	if err := topo.Build(); err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	if got := topo.NumNodes(); got != 4 {
		t.Errorf("NumNodes after rebuild = %d, want 4", got)
	}
	if got := topo.NumTriplets(); got != 7 {
		t.Errorf("NumTriplets after rebuild = %d, want 7", got)
	}
	if got := topo.NumBridges(); got != 1 {
		t.Errorf("NumBridges after rebuild = %d, want 1", got)
	}
}

func TestAccessorContractPanics(t *testing.T) {
	chain := mixedChain()
	topo := New(chain, Limits{})
	if err := topo.Build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("NodeID(0)", func() { topo.NodeID(0) })
	mustPanic("NodeID(5)", func() { topo.NodeID(5) })
	mustPanic("TripletAddr(7)", func() { topo.TripletAddr(7) })
	mustPanic("BridgeAddr(1)", func() { topo.BridgeAddr(1) })
	mustPanic("TripletChan(0)", func() { topo.TripletChan(0) }) // RGBI, no channel
}
