package tscript

import (
	"errors"
	"testing"

	"ledchain-go/errcode"
	"ledchain-go/topo"
)

// canvas records the last color set per triplet.
type canvas struct {
	colors map[uint16]topo.RGB
	calls  int
	fail   error
}

var _ TripletSetter = (*canvas)(nil)

func newCanvas() *canvas { return &canvas{colors: map[uint16]topo.RGB{}} }

func (c *canvas) SetTriplet(tix uint16, rgb topo.RGB) error {
	if c.fail != nil {
		return c.fail
	}
	c.colors[tix] = rgb
	c.calls++
	return nil
}

func TestDecodeRegionMapping(t *testing.T) {
	// on 16 triplets the 8 regions map to 2 triplets each
	tests := []struct {
		code       uint16
		tix0, tix1 uint16
		withPrev   bool
		atEnd      bool
	}{
		{0o0007007, 0, 16, false, false}, // whole chain
		{0o0166100, 12, 14, true, false}, // region 6 only
		{0o0000700, 0, 2, false, false},  // region 0 only
		{0o0077007, 14, 16, false, false},
		{0o0070000, 0, 0, false, true}, // start > end: end marker
	}
	for _, tc := range tests {
		p := New([]uint16{tc.code, 0o0070000}, 16, newCanvas())
		inst := p.Get()
		if inst.AtEnd != tc.atEnd {
			t.Errorf("%#o: AtEnd = %v, want %v", tc.code, inst.AtEnd, tc.atEnd)
			continue
		}
		if tc.atEnd {
			continue
		}
		if inst.Tix0 != tc.tix0 || inst.Tix1 != tc.tix1 {
			t.Errorf("%#o: region = [%d,%d), want [%d,%d)",
				tc.code, inst.Tix0, inst.Tix1, tc.tix0, tc.tix1)
		}
		if inst.WithPrev != tc.withPrev {
			t.Errorf("%#o: WithPrev = %v, want %v", tc.code, inst.WithPrev, tc.withPrev)
		}
	}
}

func TestDecodeBrightness(t *testing.T) {
	p := New([]uint16{0o0007710, 0o0070000}, 8, newCanvas())
	c := p.Get().Color
	if c.R != 0x7F8B || c.G != 0x03C0 || c.B != 0x0000 {
		t.Errorf("color = %04X,%04X,%04X, want 7F8B,03C0,0000", c.R, c.G, c.B)
	}
}

func TestPlayFrameGroupsWithPrev(t *testing.T) {
	// blue background with a red block, the second instruction in the same
	// frame overpainting triplets 12..13
	script := []uint16{0o0007007, 0o0166100, 0o0070000}
	cv := newCanvas()
	p := New(script, 16, cv)

	if err := p.PlayFrame(); err != nil {
		t.Fatalf("PlayFrame: %v", err)
	}
	if cv.calls != 18 {
		t.Errorf("frame issued %d sets, want 16+2", cv.calls)
	}
	blue := topo.RGB{B: 0x7F8B}
	red := topo.RGB{R: 0x03C0}
	for tix := uint16(0); tix < 16; tix++ {
		want := blue
		if tix == 12 || tix == 13 {
			want = red
		}
		if cv.colors[tix] != want {
			t.Errorf("triplet %d = %v, want %v", tix, cv.colors[tix], want)
		}
	}
	if !p.AtEnd() {
		t.Error("cursor not at end after the only frame")
	}
}

func TestPlayFrameWrapsAtEnd(t *testing.T) {
	script := []uint16{0o0007700, 0o0007070, 0o0070000}
	cv := newCanvas()
	p := New(script, 8, cv)

	for i := 0; i < 3; i++ { // two frames, then wrap into the first again
		if err := p.PlayFrame(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if got := p.Get().Cursor; got != 1 {
		t.Errorf("cursor after wrap = %d, want 1", got)
	}
	// last frame played was the first instruction again: all red
	if cv.colors[0] != (topo.RGB{R: 0x7F8B}) {
		t.Errorf("triplet 0 = %v after wrapped frame", cv.colors[0])
	}
}

func TestPlayFrameTooManyWithPrev(t *testing.T) {
	script := make([]uint16, 0, 11)
	script = append(script, 0o0007700)
	for i := 0; i < 9; i++ {
		script = append(script, 0o0107070)
	}
	script = append(script, 0o0070000)

	p := New(script, 8, newCanvas())
	if err := p.PlayFrame(); !errors.Is(err, errcode.InvalidParams) {
		t.Errorf("PlayFrame = %v, want %v", err, errcode.InvalidParams)
	}
}

func TestPlayFramePropagatesError(t *testing.T) {
	cv := newCanvas()
	cv.fail = errcode.Timeout
	p := New([]uint16{0o0007007, 0o0070000}, 8, cv)
	if err := p.PlayFrame(); !errors.Is(err, errcode.Timeout) {
		t.Errorf("PlayFrame = %v, want %v", err, errcode.Timeout)
	}
}

func TestIteratorWalk(t *testing.T) {
	script := []uint16{0o0007700, 0o0007070, 0o0070000}
	p := New(script, 8, newCanvas())

	n := 0
	for !p.AtEnd() {
		if got := p.Get().Cursor; got != n {
			t.Errorf("cursor = %d, want %d", got, n)
		}
		p.GotoNext()
		n++
	}
	if n != 2 {
		t.Errorf("walked %d instructions, want 2", n)
	}
	p.GotoNext() // stays put at the marker
	if !p.AtEnd() {
		t.Error("GotoNext moved past the end marker")
	}
	p.GotoFirst()
	if p.AtEnd() || p.Get().Cursor != 0 {
		t.Error("GotoFirst did not rewind")
	}
}

func TestStockScriptsTerminate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		insts []uint16
	}{
		{"rainbow", Rainbow},
		{"bouncingblock", BouncingBlock},
		{"colormix", ColorMix},
		{"heartbeat", Heartbeat},
	} {
		cv := newCanvas()
		p := New(tc.insts, 16, cv)
		frames := 0
		for {
			if err := p.PlayFrame(); err != nil {
				t.Errorf("%s: frame %d: %v", tc.name, frames, err)
				break
			}
			frames++
			if p.AtEnd() {
				break
			}
			if frames > 10000 {
				t.Errorf("%s: does not reach the end marker", tc.name)
				break
			}
		}
		if frames == 0 {
			t.Errorf("%s: no frames played", tc.name)
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	img := Encode(Heartbeat)
	if len(img) != 2*len(Heartbeat) {
		t.Fatalf("image size = %d, want %d", len(img), 2*len(Heartbeat))
	}
	script, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(script) != len(Heartbeat) {
		t.Fatalf("decoded %d instructions, want %d", len(script), len(Heartbeat))
	}
	for i := range script {
		if script[i] != Heartbeat[i] {
			t.Fatalf("instruction %d = %#o, want %#o", i, script[i], Heartbeat[i])
		}
	}
}

func TestDecodeTruncatesAtMarker(t *testing.T) {
	img := Encode([]uint16{0o0007700, 0o0070000, 0o0007070})
	script, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(script) != 2 {
		t.Errorf("decoded %d instructions, want 2 (cut at marker)", len(script))
	}
}

func TestDecodeRejectsBadImages(t *testing.T) {
	if _, err := Decode([]byte{0x00}); !errors.Is(err, errcode.InvalidParams) {
		t.Errorf("odd length: err = %v", err)
	}
	if _, err := Decode(Encode([]uint16{0o0007700})); !errors.Is(err, errcode.InvalidParams) {
		t.Errorf("missing marker: err = %v", err)
	}
}
