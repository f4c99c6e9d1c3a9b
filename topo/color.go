package topo

import (
	"ledchain-go/telegram"
	"ledchain-go/x/mathx"
)

// BrightnessMax is the top of the logical brightness range. Color values are
// given in this range regardless of the physical device; the actual PWM
// setting depends on the node type and its current calibration, both hidden
// by SetTriplet.
const BrightnessMax = 0x7FFF

// DimDefault is dim level 100/1024, roughly 10% of full PWM. Together with
// the 12 mA calibration current (half of the 24 mA maximum) the effective
// brightness out of the box is about 1/20 of maximum, which keeps a fully
// lit chain inside its power budget.
const DimDefault = 100

// RGB is a color in the logical brightness range; each component is
// 0..BrightnessMax.
type RGB struct {
	R, G, B uint16
	Name    string
}

// Predefined colors.
var (
	Red     = RGB{0x7FFF, 0x0000, 0x0000, "red"}
	Yellow  = RGB{0x7FFF, 0x7FFF, 0x0000, "yellow"}
	Green   = RGB{0x0000, 0x7FFF, 0x0000, "green"}
	Cyan    = RGB{0x0000, 0x7FFF, 0x7FFF, "cyan"}
	Blue    = RGB{0x0000, 0x0000, 0x7FFF, "blue"}
	Magenta = RGB{0x7FFF, 0x0000, 0x7FFF, "magenta"}
	White   = RGB{0x7FFF, 0x7FFF, 0x7FFF, "white"}
	Off     = RGB{0x0000, 0x0000, 0x0000, "off"}
)

// Colors lists the predefined colors, in the order above.
var Colors = []RGB{Red, Yellow, Green, Cyan, Blue, Magenta, White, Off}

// ColorByName looks a predefined color up by its name.
func ColorByName(name string) (RGB, bool) {
	for _, c := range Colors {
		if c.Name == name {
			return c, true
		}
	}
	return RGB{}, false
}

// SetTriplet sets the color of triplet tix, 0 <= tix < NumTriplets(). The
// color is first attenuated by the global dim level (integer truncation, so
// repeated builds and replays stay bit-for-bit identical), then routed as
// the owning node requires: per-channel telegrams get the values shifted up
// one bit (the vacated LSB feeds the hardware dither), channel-less nodes
// get a whole-node telegram in night mode to match the chain calibration.
// The transport result is returned unchanged; no retries.
func (t *Topo) SetTriplet(tix uint16, rgb RGB) error {
	r := uint16(uint32(rgb.R) * uint32(t.dim) / 1024)
	g := uint16(uint32(rgb.G) * uint32(t.dim) / 1024)
	b := uint16(uint32(rgb.B) * uint32(t.dim) / 1024)
	addr := t.TripletAddr(tix)
	if t.TripletOnChan(tix) {
		return t.tr.SetPWMChannel(addr, t.TripletChan(tix), r<<1, g<<1, b<<1)
	}
	return t.tr.SetPWM(addr, r, g, b, telegram.PWMNight)
}

// SetDim sets the global dim level, clamped to 0..1024 ("pro-kibi"). It only
// affects SetTriplet calls issued afterwards; triplets already lit keep
// their brightness. The dim level is independent of the map lifecycle and
// survives rebuilds.
func (t *Topo) SetDim(dim int) {
	t.dim = mathx.Clamp(dim, 0, 1024)
}

// Dim returns the current global dim level.
func (t *Topo) Dim() int { return t.dim }
