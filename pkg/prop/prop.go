// Package prop provides fixed-point proportion arithmetic for colour maths.
//
// A Prop is an unsigned fraction in [0, 1] stored as a 64-bit numerator over
// the fixed denominator One (the maximum uint64). Because One is an exact
// multiple of every (2^n − 1), conversions to and from 8, 16 and 32 bit
// unsigned channel values are exact bijections, and 64 bit values convert
// with no loss at all.
//
// Sums of up to three proportions need more than 64 bits, so Sum widens the
// same encoding to 128 bits, and Diff is its signed counterpart for deltas.
// All divisions in this package truncate towards zero; the colour conversion
// layer depends on that rounding direction for exact round trips.
package prop

import (
	"math/bits"
	"strconv"
)

// Prop is a fixed-point proportion in [0, 1]. The zero value is 0.
type Prop uint64

// One is the largest Prop, representing exactly 1.0.
const One Prop = 1<<64 - 1

// Channel scale factors. One divides exactly by every (2^n − 1), which is
// what makes the fixed-width conversions bijective.
const (
	scale8  = uint64(One) / 0xFF
	scale16 = uint64(One) / 0xFFFF
	scale32 = uint64(One) / 0xFFFFFFFF
)

// defaultTolerance is the proportion-of-range difference below which two
// values are considered approximately equal (2^-32 of full range).
const defaultTolerance Prop = 1 << 32

// FromFloat converts a floating point value to a Prop, clamping the input
// into [0, 1]. Out-of-range inputs are clamped in all builds. For values
// representable at 64-bit resolution the float round trip is exact; the
// worst-case round-trip error is below 2^-52.
func FromFloat(f float64) Prop {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return One
	}
	// float64(One) rounds up to exactly 2^64, and f*2^64 stays below 2^64
	// for every float argument less than 1, so the conversion cannot wrap.
	return Prop(f * float64(One))
}

// Float64 returns the proportion as a floating point value in [0, 1].
func (p Prop) Float64() float64 {
	return float64(p) / float64(One)
}

// FromU8 converts an 8-bit channel value to a Prop. Exact for every input.
func FromU8(v uint8) Prop { return Prop(uint64(v) * scale8) }

// FromU16 converts a 16-bit channel value to a Prop. Exact for every input.
func FromU16(v uint16) Prop { return Prop(uint64(v) * scale16) }

// FromU32 converts a 32-bit channel value to a Prop. Exact for every input.
func FromU32(v uint32) Prop { return Prop(uint64(v) * scale32) }

// FromU64 converts a 64-bit channel value to a Prop. The identity mapping.
func FromU64(v uint64) Prop { return Prop(v) }

// U8 returns the proportion as an 8-bit channel value. Inverse of FromU8.
func (p Prop) U8() uint8 { return uint8(uint64(p) / scale8) }

// U16 returns the proportion as a 16-bit channel value. Inverse of FromU16.
func (p Prop) U16() uint16 { return uint16(uint64(p) / scale16) }

// U32 returns the proportion as a 32-bit channel value. Inverse of FromU32.
func (p Prop) U32() uint32 { return uint32(uint64(p) / scale32) }

// U64 returns the proportion as a 64-bit channel value. Inverse of FromU64.
func (p Prop) U64() uint64 { return uint64(p) }

// Add returns p + q. Two proportions can exceed 1.0, so the result is the
// widened Sum type.
func (p Prop) Add(q Prop) Sum {
	lo, carry := bits.Add64(uint64(p), uint64(q), 0)
	return Sum{hi: carry, lo: lo}
}

// Sub returns p − q, saturating at zero.
func (p Prop) Sub(q Prop) Prop {
	if q >= p {
		return 0
	}
	return p - q
}

// Mul returns p × q. The product of two proportions stays in [0, 1].
// The 128-bit intermediate is divided by One, truncating.
func (p Prop) Mul(q Prop) Prop {
	hi, lo := bits.Mul64(uint64(p), uint64(q))
	// hi is at most One−1 so the division cannot fault.
	quo, _ := bits.Div64(hi, lo, uint64(One))
	return Prop(quo)
}

// MulUint returns p × n as a widened Sum. Intended for small part counts;
// the result leaves the nominal [0, 3] Sum range when n exceeds 3.
func (p Prop) MulUint(n uint64) Sum {
	hi, lo := bits.Mul64(uint64(p), n)
	return Sum{hi: hi, lo: lo}
}

// Div returns p ÷ q, truncating, through a 128-bit intermediate so no
// precision is lost. Results above 1.0 (p > q) and division by zero clamp
// to One.
func (p Prop) Div(q Prop) Prop {
	if p >= q {
		return One
	}
	hi, lo := bits.Mul64(uint64(p), uint64(One))
	// hi < p < q, so the division cannot fault.
	quo, _ := bits.Div64(hi, lo, uint64(q))
	return Prop(quo)
}

// AbsDiff returns |p − q|.
func (p Prop) AbsDiff(q Prop) Prop {
	if p >= q {
		return p - q
	}
	return q - p
}

// ApproxEq reports whether p and q differ by no more than the default
// tolerance. Bit-identical values short-circuit to true.
func (p Prop) ApproxEq(q Prop) bool {
	return p.ApproxEqWithin(q, defaultTolerance)
}

// ApproxEqWithin reports whether p and q differ by no more than tol.
func (p Prop) ApproxEqWithin(q Prop, tol Prop) bool {
	if p == q {
		return true
	}
	return p.AbsDiff(q) <= tol
}

// String formats the proportion as a decimal fraction.
func (p Prop) String() string {
	return strconv.FormatFloat(p.Float64(), 'f', -1, 64)
}

// MarshalJSON encodes the underlying fixed-point numerator, guaranteeing a
// bit-identical round trip.
func (p Prop) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(p), 10), nil
}

// UnmarshalJSON decodes a fixed-point numerator produced by MarshalJSON.
func (p *Prop) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*p = Prop(v)
	return nil
}
