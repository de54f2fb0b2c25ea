package hcv

import (
	"fmt"
	"math"

	"github.com/jmylchreest/pigment/pkg/prop"
)

// Sector identifies one of the six 60° wedges of the hue hexagon, named for
// the primary or secondary colour at its leading edge.
type Sector int

const (
	SectorRed Sector = iota
	SectorYellow
	SectorGreen
	SectorCyan
	SectorBlue
	SectorMagenta
)

// String returns the sector's colour name.
func (s Sector) String() string {
	switch s {
	case SectorRed:
		return "red"
	case SectorYellow:
		return "yellow"
	case SectorGreen:
		return "green"
	case SectorCyan:
		return "cyan"
	case SectorBlue:
		return "blue"
	case SectorMagenta:
		return "magenta"
	default:
		return "unknown"
	}
}

// primaryLed reports whether the wedge's leading edge is a primary colour.
// Even sectors lead with a primary, odd sectors with a secondary.
func (s Sector) primaryLed() bool { return s%2 == 0 }

// Hue is an angular position on the colour wheel, stored as a sector plus
// the normalised offset within it: 0 at the wedge's leading colour, rising
// towards (but never reaching) 1 at the next one. The zero value is pure
// red. Grey colours have no hue at all; that absence is expressed by the
// types holding a Hue, not by Hue itself.
type Hue struct {
	sector Sector
	pos    prop.Prop
}

// NewHue returns the hue at the given offset within a sector.
func NewHue(sector Sector, pos prop.Prop) Hue {
	return Hue{sector: sector, pos: pos}
}

// HueFromAngle returns the hue at the given angle in degrees. Angles outside
// [0, 360) are wrapped.
func HueFromAngle(deg float64) Hue {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	sector := int(deg / 60)
	if sector > 5 {
		sector = 5
	}
	return Hue{
		sector: Sector(sector),
		pos:    prop.FromFloat(deg/60 - float64(sector)),
	}
}

// Sector returns the wedge the hue falls in.
func (h Hue) Sector() Sector { return h.sector }

// Position returns the normalised offset within the sector.
func (h Hue) Position() prop.Prop { return h.pos }

// Angle returns the hue angle in degrees, with red at 0°.
func (h Hue) Angle() float64 {
	return 60 * (float64(h.sector) + h.pos.Float64())
}

// midFraction returns the mid channel's share of the chroma, the quantity
// (mid − min) / (max − min) of any RGB triple with this hue. It equals the
// sector offset in primary-led wedges and its complement in secondary-led
// ones.
func (h Hue) midFraction() prop.Prop {
	if h.sector.primaryLed() {
		return h.pos
	}
	return prop.One.Sub(h.pos)
}

// MaxChromaForSum returns the greatest chroma for which an RGB triple with
// this hue and the given sum exists inside the unit cube. The profile is
// piecewise linear in the sum, peaking at the hue's full-chroma sum 1+f
// where f is the mid channel fraction: below it the min channel is the
// limit, above it the max channel is.
func (h Hue) MaxChromaForSum(sum prop.Sum) prop.Prop {
	three := prop.SumFromUnits(3)
	if sum.IsZero() || sum.Cmp(three) >= 0 {
		return 0
	}
	f := h.midFraction()
	onePlusF := prop.One.Add(f)
	switch sum.Cmp(onePlusF) {
	case -1:
		return sum.DivSum(onePlusF)
	case 0:
		return prop.One
	default:
		twoMinusF := prop.SumFromUnits(2).SubProp(f)
		return three.Sub(sum).DivSum(twoMinusF)
	}
}

// SumRangeForChroma returns the inclusive range of sums for which this hue
// can carry the given chroma: [c·(1+f), 3 − c·(2−f)].
func (h Hue) SumRangeForChroma(chroma prop.Prop) (lo, hi prop.Sum) {
	if chroma == 0 {
		return prop.Sum{}, prop.SumFromUnits(3)
	}
	f := h.midFraction()
	cf := chroma.Mul(f)
	lo = chroma.Add(cf)
	hi = prop.SumFromUnits(3).SubProp(chroma).SubProp(chroma).AddProp(cf)
	return lo, hi
}

// String formats the hue as its sector name and angle.
func (h Hue) String() string {
	return fmt.Sprintf("%s (%.2f°)", h.sector, h.Angle())
}
