package hcv

import (
	"fmt"

	"github.com/jmylchreest/pigment/pkg/prop"
)

// Component is the set of numeric representations an RGB value can be
// expressed in: fixed-width unsigned channels or floating point channels
// in [0, 1].
type Component interface {
	uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// RGB is an additive colour with red, green and blue channels in the
// representation T. Conversions between representations and to and from
// HCV go through the fixed-point Prop encoding; fixed-width channels of 32
// bits or less convert with no loss at all.
type RGB[T Component] struct {
	R, G, B T
}

// FromFloats builds an RGB from floating point channel values, clamped
// into [0, 1].
func FromFloats[T Component](channels [3]float64) RGB[T] {
	return RGB[T]{
		R: componentFromProp[T](prop.FromFloat(channels[0])),
		G: componentFromProp[T](prop.FromFloat(channels[1])),
		B: componentFromProp[T](prop.FromFloat(channels[2])),
	}
}

// FromComponents builds an RGB from channel values already in the target
// representation.
func FromComponents[T Component](channels [3]T) RGB[T] {
	return RGB[T]{R: channels[0], G: channels[1], B: channels[2]}
}

// FromProps builds an RGB from a proportion triple.
func FromProps[T Component](channels [3]prop.Prop) RGB[T] {
	return RGB[T]{
		R: componentFromProp[T](channels[0]),
		G: componentFromProp[T](channels[1]),
		B: componentFromProp[T](channels[2]),
	}
}

// Convert re-expresses an RGB in another representation.
func Convert[U, V Component](rgb RGB[U]) RGB[V] {
	return FromProps[V](rgb.Props())
}

// Props returns the three channels as proportions, in red, green, blue
// order.
func (rgb RGB[T]) Props() [3]prop.Prop {
	return [3]prop.Prop{
		propFromComponent(rgb.R),
		propFromComponent(rgb.G),
		propFromComponent(rgb.B),
	}
}

// HCV converts the colour to its canonical hue/chroma/sum form.
func (rgb RGB[T]) HCV() HCV {
	return FromRGB(rgb)
}

// Hue returns the colour's hue, with ok false for greys.
func (rgb RGB[T]) Hue() (Hue, bool) {
	return rgb.HCV().Hue()
}

// Chroma returns the colourfulness magnitude, max channel minus min.
func (rgb RGB[T]) Chroma() prop.Prop {
	return rgb.HCV().Chroma()
}

// Value returns the lightness of the colour, the channel sum over three.
func (rgb RGB[T]) Value() prop.Prop {
	return rgb.HCV().Value()
}

// Warmth returns the perceived hot/cold bias of the colour.
func (rgb RGB[T]) Warmth() prop.Prop {
	return rgb.HCV().Warmth()
}

// BestForeground returns black or white, whichever contrasts better with
// this colour as a background for overlay text.
func (rgb RGB[T]) BestForeground() RGB[T] {
	if bestForegroundIsWhite(rgb.Props()) {
		return Convert[float64, T](White)
	}
	return Convert[float64, T](Black)
}

// Hex formats the colour as a lowercase #rrggbb string at 8-bit depth.
func (rgb RGB[T]) Hex() string {
	p := rgb.Props()
	return fmt.Sprintf("#%02x%02x%02x", p[0].U8(), p[1].U8(), p[2].U8())
}

// Named constants in the float representation; convert as needed.
var (
	Red     = RGB[float64]{1, 0, 0}
	Green   = RGB[float64]{0, 1, 0}
	Blue    = RGB[float64]{0, 0, 1}
	Cyan    = RGB[float64]{0, 1, 1}
	Magenta = RGB[float64]{1, 0, 1}
	Yellow  = RGB[float64]{1, 1, 0}
	White   = RGB[float64]{1, 1, 1}
	Black   = RGB[float64]{0, 0, 0}
)

// Colour groups used by callers and by the geometry tests.
var (
	Primaries   = []RGB[float64]{Red, Green, Blue}
	Secondaries = []RGB[float64]{Cyan, Magenta, Yellow}

	// InBetweens sit halfway between a primary and a secondary, one per
	// sector interior.
	InBetweens = []RGB[float64]{
		{1, 0.5, 0}, // orange
		{0.5, 1, 0}, // chartreuse
		{0, 1, 0.5}, // spring green
		{0, 0.5, 1}, // azure
		{0.5, 0, 1}, // violet
		{1, 0, 0.5}, // rose
	}
)

// propFromComponent converts one channel value to the fixed-point encoding.
func propFromComponent[T Component](v T) prop.Prop {
	switch v := any(v).(type) {
	case uint8:
		return prop.FromU8(v)
	case uint16:
		return prop.FromU16(v)
	case uint32:
		return prop.FromU32(v)
	case uint64:
		return prop.FromU64(v)
	case float32:
		return prop.FromFloat(float64(v))
	case float64:
		return prop.FromFloat(v)
	default:
		panic("hcv: unsupported component type")
	}
}

// componentFromProp converts a fixed-point channel back to representation T.
func componentFromProp[T Component](p prop.Prop) T {
	var v T
	switch out := any(&v).(type) {
	case *uint8:
		*out = p.U8()
	case *uint16:
		*out = p.U16()
	case *uint32:
		*out = p.U32()
	case *uint64:
		*out = p.U64()
	case *float32:
		*out = float32(p.Float64())
	case *float64:
		*out = p.Float64()
	default:
		panic("hcv: unsupported component type")
	}
	return v
}
