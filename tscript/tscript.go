// Package tscript interprets tiny animation scripts. A script is a list of
// 16-bit instructions; one instruction paints a region (a consecutive run of
// triplets) in one color. Instructions marked "with previous" belong to the
// same frame as their predecessor, so a frame is one instruction followed by
// any number of with-previous ones.
//
// Everything about the format is tiny so a script fits a 256-byte EEPROM:
//
//	bit 15     with previous
//	bits 14-12 region start (0..7)
//	bits 11-9  region end, inclusive (0..7)
//	bits 8-6   red level (0..7)
//	bits 5-3   green level (0..7)
//	bits 2-0   blue level (0..7)
//
// The eight regions are spread linearly over however many triplets the chain
// actually has, and the eight levels are mapped exponentially onto the topo
// brightness range. A region start greater than its end is the end-of-script
// marker. Fields are three bits each, so instructions read naturally in
// octal: 0o007007 paints regions 0..7 (the whole chain) full blue.
package tscript

import (
	"ledchain-go/errcode"
	"ledchain-go/topo"
	"ledchain-go/x/mathx"
)

// TripletSetter is the subset of topo.Topo a player drives.
type TripletSetter interface {
	SetTriplet(tix uint16, rgb topo.RGB) error
}

// Levels map exponentially: round(0x3C0 * 1.8^(level-1)), level 0 is off.
var brightness = [8]uint16{
	0x0000, 0x03C0, 0x06C0, 0x0C26, 0x15DE, 0x275D, 0x46DB, 0x7F8B,
}

// Inst is one decoded instruction, with the region mapped to real triplet
// indices and the color mapped to the topo brightness range.
type Inst struct {
	Cursor   int    // index into the script
	Code     uint16 // raw instruction
	AtEnd    bool   // end-of-script marker
	WithPrev bool   // belongs to the frame of the previous instruction
	Tix0     uint16 // region start, inclusive
	Tix1     uint16 // region end, exclusive
	Color    topo.RGB
}

// Player iterates one script over one chain. It holds a cursor; use
// GotoFirst/GotoNext/AtEnd/Get for do-it-yourself playback, or PlayFrame to
// render whole frames.
type Player struct {
	insts       []uint16
	numTriplets int
	set         TripletSetter

	cursor int
	inst   Inst
}

// New installs a script and positions the cursor at the first instruction.
// numTriplets scales the script's eight regions onto the chain; set is where
// the colors go (typically a built *topo.Topo). The script must carry an
// end-of-script marker.
func New(script []uint16, numTriplets uint16, set TripletSetter) *Player {
	p := &Player{insts: script, numTriplets: int(numTriplets), set: set}
	p.GotoFirst()
	return p
}

func (p *Player) decode() {
	code := p.insts[p.cursor]
	r0 := int(code >> 12 & 7)
	r1 := int(code >> 9 & 7)
	tix1 := mathx.Min(((r1+1)*p.numTriplets+4)/8, p.numTriplets)
	p.inst = Inst{
		Cursor:   p.cursor,
		Code:     code,
		AtEnd:    r0 > r1,
		WithPrev: code>>15 != 0,
		Tix0:     uint16((r0*p.numTriplets + 4) / 8),
		Tix1:     uint16(tix1),
		Color: topo.RGB{
			R: brightness[code>>6&7],
			G: brightness[code>>3&7],
			B: brightness[code&7],
		},
	}
}

// GotoFirst moves the cursor to the first instruction.
func (p *Player) GotoFirst() {
	p.cursor = 0
	p.decode()
}

// GotoNext moves the cursor to the next instruction; at the end marker the
// cursor stays put.
func (p *Player) GotoNext() {
	if !p.AtEnd() {
		p.cursor++
		p.decode()
	}
}

// AtEnd reports whether the cursor is at the end-of-script marker.
func (p *Player) AtEnd() bool { return p.inst.AtEnd }

// Get returns the decoded instruction under the cursor.
func (p *Player) Get() Inst { return p.inst }

// PlayInst renders the instruction under the cursor: every triplet in its
// region is set to its color. The cursor does not move. Must not be called
// when AtEnd.
func (p *Player) PlayInst() error {
	for tix := p.inst.Tix0; tix < p.inst.Tix1; tix++ {
		if err := p.set.SetTriplet(tix, p.inst.Color); err != nil {
			return err
		}
	}
	return nil
}

// PlayFrame renders one frame: the instruction under the cursor plus all
// following with-previous instructions, advancing the cursor past them. At
// the end marker it wraps to the first instruction before playing, so a
// caller can still observe AtEnd between frames.
func (p *Player) PlayFrame() error {
	if p.AtEnd() {
		p.GotoFirst()
	}
	for n := 1; ; n++ {
		if n > 8 {
			// more with-previous than regions: malformed script
			return errcode.InvalidParams
		}
		if err := p.PlayInst(); err != nil {
			return err
		}
		p.GotoNext()
		if !p.inst.WithPrev {
			return nil
		}
	}
}
