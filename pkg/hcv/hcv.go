// Package hcv implements the Hue/Chroma/Value colour model over exact
// fixed-point arithmetic, with bidirectional conversion to additive RGB in
// any supported numeric representation. At the fixed-point resolution the
// RGB→HCV→RGB round trip is exact: the reconstruction recovers the minimum
// channel by a truncating division that cancels the truncation of the
// forward hue computation, and derives the remaining channels by exact
// subtraction. Representation quantisation is therefore the only source of
// round-trip error, and it vanishes wherever the representation holds the
// value exactly.
package hcv

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jmylchreest/pigment/pkg/prop"
)

// HCV is the canonical hue/chroma/value form of a colour: an optional hue,
// the chroma, and the channel sum (value is sum over three). Invariants:
// chroma is zero exactly when the hue is absent; the sum stays in [0, 3];
// and with a hue present the chroma never exceeds MaxChromaForSum. The zero
// value is black.
type HCV struct {
	hue    Hue
	hasHue bool
	chroma prop.Prop
	sum    prop.Sum
}

// New builds an HCV from parts, clamping them into validity: the sum into
// [0, 3], the chroma to the hue's maximum for that sum. A zero chroma drops
// the hue.
func New(hue Hue, chroma prop.Prop, sum prop.Sum) HCV {
	three := prop.SumFromUnits(3)
	if sum.Cmp(three) > 0 {
		sum = three
	}
	if max := hue.MaxChromaForSum(sum); chroma > max {
		chroma = max
	}
	if chroma == 0 {
		return HCV{sum: sum}
	}
	return HCV{hue: hue, hasHue: true, chroma: chroma, sum: sum}
}

// Grey returns the achromatic HCV with the given sum.
func Grey(sum prop.Sum) HCV {
	three := prop.SumFromUnits(3)
	if sum.Cmp(three) > 0 {
		sum = three
	}
	return HCV{sum: sum}
}

// FromRGB converts an RGB colour in any representation to HCV.
func FromRGB[T Component](rgb RGB[T]) HCV {
	return hcvFromProps(rgb.Props())
}

// ToRGB converts an HCV colour to RGB in the requested representation.
func ToRGB[T Component](c HCV) RGB[T] {
	return FromProps[T](propsOf(c))
}

// Hue returns the hue, with ok false for greys.
func (c HCV) Hue() (Hue, bool) {
	return c.hue, c.hasHue
}

// Angle returns the hue angle in degrees, with ok false for greys.
func (c HCV) Angle() (float64, bool) {
	if !c.hasHue {
		return 0, false
	}
	return c.hue.Angle(), true
}

// Chroma returns the colourfulness magnitude in [0, 1].
func (c HCV) Chroma() prop.Prop { return c.chroma }

// Sum returns the channel sum in [0, 3].
func (c HCV) Sum() prop.Sum { return c.sum }

// Value returns the lightness, the channel sum over three.
func (c HCV) Value() prop.Prop {
	return c.sum.DivUint(3).Prop()
}

// Greyness returns how far the colour is from full saturation, 1 − chroma.
func (c HCV) Greyness() prop.Prop {
	return prop.One.Sub(c.chroma)
}

// IsGrey reports whether the colour is achromatic.
func (c HCV) IsGrey() bool { return !c.hasHue }

// Warmth returns the perceived hot/cold bias of the colour: 1 for pure red,
// 0 for white, 0.5 for both black and pure blue. The hue contributes
// (2 + cos angle)/3 weighted by chroma; the remainder is the achromatic
// term (3 − sum)/6 weighted by the greyness.
func (c HCV) Warmth() prop.Prop {
	chroma := c.chroma.Float64()
	achromatic := (3 - c.sum.Float64()) / 6
	if !c.hasHue {
		return prop.FromFloat(achromatic)
	}
	hueTerm := (2 + math.Cos(c.hue.Angle()*math.Pi/180)) / 3
	return prop.FromFloat(chroma*hueTerm + (1-chroma)*achromatic)
}

// BestForeground returns black or white as an HCV, whichever contrasts
// better with this colour as a background for overlay text.
func (c HCV) BestForeground() HCV {
	if bestForegroundIsWhite(propsOf(c)) {
		return FromRGB(White)
	}
	return FromRGB(Black)
}

// ApproxEq reports whether two colours are approximately equal: sums and
// chromas within the default tolerance and, for chromatic colours, hue
// angles within a small fraction of a degree.
func (c HCV) ApproxEq(o HCV) bool {
	if c.hasHue != o.hasHue {
		return false
	}
	if !c.chroma.ApproxEq(o.chroma) || !c.sum.ApproxEq(o.sum) {
		return false
	}
	if !c.hasHue {
		return true
	}
	delta := math.Abs(c.hue.Angle() - o.hue.Angle())
	if delta > 180 {
		delta = 360 - delta
	}
	return delta < 1e-6
}

// String formats the colour's three attributes.
func (c HCV) String() string {
	if !c.hasHue {
		return fmt.Sprintf("HCV(grey, value %s)", c.Value())
	}
	return fmt.Sprintf("HCV(%s, chroma %s, value %s)", c.hue, c.chroma, c.Value())
}

// hcvFromProps classifies a proportion triple into hue, chroma and sum.
func hcvFromProps(channels [3]prop.Prop) HCV {
	r, g, b := channels[0], channels[1], channels[2]
	sum := r.Add(g).AddProp(b)
	hue, chroma, ok := classifyProps(r, g, b)
	if !ok {
		return HCV{sum: sum}
	}
	return HCV{hue: hue, hasHue: true, chroma: chroma, sum: sum}
}

// classifyProps orders the channels and maps the ordering to a sector. The
// mid fraction (mid − min)/(max − min) becomes the sector offset directly
// in primary-led wedges and complemented in secondary-led ones, so the
// offset is always 0 at the wedge's leading colour. Equal max and min means
// grey (no hue).
func classifyProps(r, g, b prop.Prop) (Hue, prop.Prop, bool) {
	switch {
	case r == g && g == b:
		return Hue{}, 0, false

	case r > g && r > b: // red is max
		switch {
		case g > b:
			f := g.Sub(b).Div(r.Sub(b))
			return Hue{sector: SectorRed, pos: f}, r.Sub(b), true
		case b > g:
			f := b.Sub(g).Div(r.Sub(g))
			return Hue{sector: SectorMagenta, pos: prop.One.Sub(f)}, r.Sub(g), true
		default: // g == b, pure red
			return Hue{sector: SectorRed}, r.Sub(b), true
		}

	case g > r && g > b: // green is max
		switch {
		case b > r:
			f := b.Sub(r).Div(g.Sub(r))
			return Hue{sector: SectorGreen, pos: f}, g.Sub(r), true
		case r > b:
			f := r.Sub(b).Div(g.Sub(b))
			return Hue{sector: SectorYellow, pos: prop.One.Sub(f)}, g.Sub(b), true
		default: // r == b, pure green
			return Hue{sector: SectorGreen}, g.Sub(r), true
		}

	case b > r && b > g: // blue is max
		switch {
		case r > g:
			f := r.Sub(g).Div(b.Sub(g))
			return Hue{sector: SectorBlue, pos: f}, b.Sub(g), true
		case g > r:
			f := g.Sub(r).Div(b.Sub(r))
			return Hue{sector: SectorCyan, pos: prop.One.Sub(f)}, b.Sub(r), true
		default: // r == g, pure blue
			return Hue{sector: SectorBlue}, b.Sub(g), true
		}

	case r == g: // two-way tie at the top: yellow
		return Hue{sector: SectorYellow}, r.Sub(b), true
	case g == b: // cyan
		return Hue{sector: SectorCyan}, g.Sub(r), true
	default: // r == b: magenta
		return Hue{sector: SectorMagenta}, r.Sub(g), true
	}
}

// propsOf reconstructs the proportion triple of an HCV. The ordering of
// operations matters: the truncating division by three exactly cancels the
// truncation of the forward mid-fraction division, and the max and mid
// channels then follow by exact arithmetic.
func propsOf(c HCV) [3]prop.Prop {
	if !c.hasHue {
		v := c.sum.DivUint(3).Prop()
		return [3]prop.Prop{v, v, v}
	}

	f := c.hue.midFraction()
	cf := c.chroma.Mul(f)
	min := c.sum.SubProp(c.chroma).SubProp(cf).DivUint(3).Prop()
	max := min.Add(c.chroma).Prop()
	mid := c.sum.SubProp(max).SubProp(min).Prop()

	switch c.hue.sector {
	case SectorRed:
		return [3]prop.Prop{max, mid, min}
	case SectorYellow:
		return [3]prop.Prop{mid, max, min}
	case SectorGreen:
		return [3]prop.Prop{min, max, mid}
	case SectorCyan:
		return [3]prop.Prop{min, mid, max}
	case SectorBlue:
		return [3]prop.Prop{mid, min, max}
	default: // SectorMagenta
		return [3]prop.Prop{max, min, mid}
	}
}

// hcvWire is the serialized form: every field as its underlying fixed-point
// integers so the round trip is bit identical. A negative sector marks a
// grey colour.
type hcvWire struct {
	Sector   int       `json:"sector"`
	Position prop.Prop `json:"position"`
	Chroma   prop.Prop `json:"chroma"`
	Sum      prop.Sum  `json:"sum"`
}

// MarshalJSON encodes the colour's underlying fixed-point fields.
func (c HCV) MarshalJSON() ([]byte, error) {
	w := hcvWire{Sector: -1, Chroma: c.chroma, Sum: c.sum}
	if c.hasHue {
		w.Sector = int(c.hue.sector)
		w.Position = c.hue.pos
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a colour produced by MarshalJSON.
func (c *HCV) UnmarshalJSON(data []byte) error {
	var w hcvWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Sector < 0 {
		*c = HCV{sum: w.Sum, chroma: w.Chroma}
		return nil
	}
	if w.Sector > int(SectorMagenta) {
		return fmt.Errorf("hcv: sector %d out of range", w.Sector)
	}
	*c = HCV{
		hue:    Hue{sector: Sector(w.Sector), pos: w.Position},
		hasHue: true,
		chroma: w.Chroma,
		sum:    w.Sum,
	}
	return nil
}
