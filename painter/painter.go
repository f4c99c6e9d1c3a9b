// Package painter computes flag patterns over a built chain: each painter
// divides the chain's triplets into color bands and sets them through the
// topo addressing layer.
//
// The demo boards carry a few triplets on the MCU board itself, before (and
// with a looped chain, after) the light strip. Band arithmetic excludes
// those when the strip alone is big enough, so the flag proper lands on the
// strip and the MCU triplets extend the outer bands.
package painter

import (
	"ledchain-go/errcode"
	"ledchain-go/topo"
)

// Flag selects a painter. The set is closed; Count and ByName cover it.
type Flag int

const (
	Dutch Flag = iota
	Colombia
	Japan
	Mali
	Italy
	Europe
	USA
	China
)

type painter struct {
	name  string
	paint func(t *topo.Topo) error
}

// Order defines the flag index space used by Name and Count.
var painters = [...]painter{
	Dutch:    {"dutch", paintDutch},
	Colombia: {"colombia", paintColombia},
	Japan:    {"japan", paintJapan},
	Mali:     {"mali", paintMali},
	Italy:    {"italy", paintItaly},
	Europe:   {"europe", paintEurope},
	USA:      {"usa", paintUSA},
	China:    {"china", paintChina},
}

// Count returns the number of flags.
func Count() int { return len(painters) }

// Name returns the name of flag f.
func (f Flag) Name() string { return painters[f].name }

// ByName looks a flag up by its name.
func ByName(name string) (Flag, bool) {
	for f, p := range painters {
		if p.name == name {
			return Flag(f), true
		}
	}
	return 0, false
}

// Paint renders flag f over the full triplet range of t. The chain must be
// built and active.
func Paint(t *topo.Topo, f Flag) error {
	if f < 0 || int(f) >= len(painters) {
		return errcode.InvalidParams
	}
	return painters[f].paint(t)
}

// strip reports how the chain splits into MCU board triplets and strip
// triplets: n1 before the strip, n3 after it (0 unless the chain loops
// back), and the strip size in between.
func strip(t *topo.Topo) (n1, pcb, n3 int) {
	n1 = int(t.NodeNumTriplets(1))
	if t.Loop() {
		n3 = int(t.NodeNumTriplets(t.NumNodes()))
	}
	pcb = int(t.NumTriplets()) - n1 - n3
	return n1, pcb, n3
}

// fill paints n consecutive triplets starting at *tix.
func fill(t *topo.Topo, tix *uint16, n int, rgb topo.RGB) error {
	for i := 0; i < n; i++ {
		if err := t.SetTriplet(*tix, rgb); err != nil {
			return err
		}
		*tix++
	}
	return nil
}

// threeBands splits the flag area into three equal bands. A single leftover
// triplet goes to the middle band; two leftovers go to the side bands. MCU
// triplets, when excluded from the flag area, extend the outer bands.
func threeBands(t *topo.Topo, band1, band2, band3 topo.RGB) error {
	n1, pcb, n3 := strip(t)
	numflag := int(t.NumTriplets())
	onPCB := pcb >= 3
	if onPCB {
		numflag = pcb
	}

	div, mod := numflag/3, numflag%3
	side := 0
	if mod == 2 {
		side = 1
	}
	mid := 0
	if mod == 1 {
		mid = 1
	}
	num1, num2, num3 := div+side, div+mid, div+side
	if onPCB {
		num1 += n1
		num3 += n3
	}

	var tix uint16
	if err := fill(t, &tix, num1, band1); err != nil {
		return err
	}
	if err := fill(t, &tix, num2, band2); err != nil {
		return err
	}
	return fill(t, &tix, num3, band3)
}

func paintDutch(t *topo.Topo) error {
	return threeBands(t, topo.Red, topo.White, topo.Blue)
}

func paintColombia(t *topo.Topo) error {
	return threeBands(t, topo.Yellow, topo.Blue, topo.Red)
}

func paintJapan(t *topo.Topo) error {
	return threeBands(t, topo.White, topo.Red, topo.White)
}

func paintMali(t *topo.Topo) error {
	return threeBands(t, topo.Green, topo.Yellow, topo.Red)
}

func paintItaly(t *topo.Topo) error {
	return threeBands(t, topo.Green, topo.White, topo.Red)
}

// paintEurope paints three blue bands with a single-triplet yellow star
// between each pair, when the strip is big enough to show stars at all.
func paintEurope(t *topo.Topo) error {
	n1, pcb, n3 := strip(t)
	stars := 0
	if pcb >= 5 {
		stars = 2
	}
	blue := pcb - stars

	div, mod := blue/3, blue%3
	side := 0
	if mod == 2 {
		side = 1
	}
	mid := 0
	if mod == 1 {
		mid = 1
	}

	var tix uint16
	if err := fill(t, &tix, n1+div+side, topo.Blue); err != nil {
		return err
	}
	if err := fill(t, &tix, stars/2, topo.Yellow); err != nil {
		return err
	}
	if err := fill(t, &tix, div+mid, topo.Blue); err != nil {
		return err
	}
	if err := fill(t, &tix, stars/2, topo.Yellow); err != nil {
		return err
	}
	return fill(t, &tix, div+side+n3, topo.Blue)
}

// paintUSA paints the blue corner as blue with interleaved white, then red
// with interleaved white for the stripes: blue, (white blue)*, red,
// (white red)*.
func paintUSA(t *topo.Topo) error {
	numtot := int(t.NumTriplets())
	nummcu := int(t.NodeNumTriplets(1))
	pairs := (numtot - 2 - nummcu) / 2
	corner := pairs / 3

	var tix uint16
	left := func() bool { return int(tix) < numtot }

	for mcu := 0; mcu < nummcu+1 && left(); mcu++ {
		if err := t.SetTriplet(tix, topo.Blue); err != nil {
			return err
		}
		tix++
	}
	for p := 0; p < corner && left(); p++ {
		if err := t.SetTriplet(tix, topo.White); err != nil {
			return err
		}
		tix++
		if left() {
			if err := t.SetTriplet(tix, topo.Blue); err != nil {
				return err
			}
			tix++
		}
	}
	if left() {
		if err := t.SetTriplet(tix, topo.Red); err != nil {
			return err
		}
		tix++
	}
	for left() {
		if err := t.SetTriplet(tix, topo.White); err != nil {
			return err
		}
		tix++
		if left() {
			if err := t.SetTriplet(tix, topo.Red); err != nil {
				return err
			}
			tix++
		}
	}
	return nil
}

// paintChina paints a red field with one double-width and one single-width
// yellow star near the start, when the strip is big enough to show stars.
func paintChina(t *topo.Topo) error {
	n1, pcb, n3 := strip(t)
	stars := 0
	if pcb >= 7 {
		stars = 3
	}
	red := pcb - stars

	num1 := 0
	if red > 1 {
		num1 = 1
	}
	num3 := 0
	if red > 2 {
		num3 = 1
	}
	num5 := red - num1 - num3

	var tix uint16
	if err := fill(t, &tix, n1+num1, topo.Red); err != nil {
		return err
	}
	if err := fill(t, &tix, (stars+1)/2, topo.Yellow); err != nil {
		return err
	}
	if err := fill(t, &tix, num3, topo.Red); err != nil {
		return err
	}
	if err := fill(t, &tix, stars/2, topo.Yellow); err != nil {
		return err
	}
	return fill(t, &tix, num5+n3, topo.Red)
}
