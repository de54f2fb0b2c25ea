package prop

import (
	"encoding/json"
	"math"
	"math/bits"
	"strconv"
)

// Sum is a 128-bit fixed-point value at the same scale as Prop, wide enough
// to hold the total of three proportions without wrapping. Its nominal range
// is [0, 3]; arithmetic beyond the representable bounds saturates rather
// than wraps. The zero value is 0.
type Sum struct {
	hi, lo uint64
}

// SumFromProp widens a proportion to a Sum.
func SumFromProp(p Prop) Sum {
	return Sum{lo: uint64(p)}
}

// SumFromUnits returns a Sum of n whole units, for n up to three.
func SumFromUnits(n uint8) Sum {
	var s Sum
	for i := uint8(0); i < n; i++ {
		s = s.AddProp(One)
	}
	return s
}

// SumFromFloat converts a floating point value to a Sum, clamping the input
// into [0, 3].
func SumFromFloat(f float64) Sum {
	if f <= 0 {
		return Sum{}
	}
	if f >= 3 {
		return SumFromUnits(3)
	}
	whole := uint8(f)
	return SumFromUnits(whole).AddProp(FromFloat(f - float64(whole)))
}

// Float64 returns the sum as a floating point value in [0, 3].
func (s Sum) Float64() float64 {
	return (float64(s.hi)*math.Exp2(64) + float64(s.lo)) / float64(One)
}

// IsZero reports whether the sum is exactly zero.
func (s Sum) IsZero() bool { return s.hi == 0 && s.lo == 0 }

// Cmp returns -1, 0 or 1 according to whether s is less than, equal to or
// greater than o.
func (s Sum) Cmp(o Sum) int {
	switch {
	case s.hi != o.hi:
		if s.hi < o.hi {
			return -1
		}
		return 1
	case s.lo != o.lo:
		if s.lo < o.lo {
			return -1
		}
		return 1
	}
	return 0
}

// AddProp returns s + p.
func (s Sum) AddProp(p Prop) Sum {
	lo, carry := bits.Add64(s.lo, uint64(p), 0)
	return Sum{hi: s.hi + carry, lo: lo}
}

// Add returns s + o, saturating at the representable maximum.
func (s Sum) Add(o Sum) Sum {
	lo, carry := bits.Add64(s.lo, o.lo, 0)
	hi, carry := bits.Add64(s.hi, o.hi, carry)
	if carry != 0 {
		return Sum{hi: 1<<64 - 1, lo: 1<<64 - 1}
	}
	return Sum{hi: hi, lo: lo}
}

// SubProp returns s − p, saturating at zero.
func (s Sum) SubProp(p Prop) Sum {
	return s.Sub(SumFromProp(p))
}

// Sub returns s − o, saturating at zero.
func (s Sum) Sub(o Sum) Sum {
	lo, borrow := bits.Sub64(s.lo, o.lo, 0)
	hi, borrow := bits.Sub64(s.hi, o.hi, borrow)
	if borrow != 0 {
		return Sum{}
	}
	return Sum{hi: hi, lo: lo}
}

// Prop narrows the sum to a proportion, clamping at One.
func (s Sum) Prop() Prop {
	if s.hi != 0 {
		return One
	}
	return Prop(s.lo)
}

// DivUint returns s ÷ n, truncating. n must be non-zero.
func (s Sum) DivUint(n uint64) Sum {
	qhi := s.hi / n
	qlo, _ := bits.Div64(s.hi%n, s.lo, n)
	return Sum{hi: qhi, lo: qlo}
}

// MulProp returns s × p, truncating. The 192-bit intermediate is divided by
// One with no precision loss on the way.
func (s Sum) MulProp(p Prop) Sum {
	h0, l0 := bits.Mul64(s.lo, uint64(p))
	h1, l1 := bits.Mul64(s.hi, uint64(p))
	mid, carry := bits.Add64(h0, l1, 0)
	top := h1 + carry
	// Long division of [top mid l0] by One, base 2^64.
	q1, r1 := bits.Div64(top, mid, uint64(One))
	q0, _ := bits.Div64(r1, l0, uint64(One))
	return Sum{hi: q1, lo: q0}
}

// DivSum returns s ÷ d as a proportion, truncating. Results above 1.0
// (s > d) and division by zero clamp to One.
func (s Sum) DivSum(d Sum) Prop {
	if d.IsZero() || s.Cmp(d) >= 0 {
		return One
	}
	// Numerator is s × One = (s << 64) − s, a 192-bit value. The quotient
	// fits in 64 bits because s < d. Restoring division, one quotient bit
	// per step.
	n0, borrow := bits.Sub64(0, s.lo, 0)
	n1, borrow := bits.Sub64(s.lo, s.hi, borrow)
	n2, _ := bits.Sub64(s.hi, 0, borrow)

	var q uint64
	for i := 63; i >= 0; i-- {
		// d << i as a 192-bit value. Go defines shifts of 64 or more
		// as zero, so i == 0 needs no special case.
		d0 := d.lo << i
		d1 := d.hi<<i | d.lo>>(64-i)
		d2 := d.hi >> (64 - i)

		b0, borrow := bits.Sub64(n0, d0, 0)
		b1, borrow := bits.Sub64(n1, d1, borrow)
		b2, borrow := bits.Sub64(n2, d2, borrow)
		if borrow == 0 {
			n0, n1, n2 = b0, b1, b2
			q |= 1 << i
		}
	}
	return Prop(q)
}

// ApproxEq reports whether s and o differ by no more than the default
// tolerance.
func (s Sum) ApproxEq(o Sum) bool {
	return s.ApproxEqWithin(o, defaultTolerance)
}

// ApproxEqWithin reports whether s and o differ by no more than tol.
func (s Sum) ApproxEqWithin(o Sum, tol Prop) bool {
	if s == o {
		return true
	}
	return DiffOfSums(s, o).Abs().Cmp(SumFromProp(tol)) <= 0
}

// String formats the sum as a decimal fraction.
func (s Sum) String() string {
	return strconv.FormatFloat(s.Float64(), 'f', -1, 64)
}

// MarshalJSON encodes the two underlying 64-bit limbs, high first,
// guaranteeing a bit-identical round trip.
func (s Sum) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint64{s.hi, s.lo})
}

// UnmarshalJSON decodes the limb pair produced by MarshalJSON.
func (s *Sum) UnmarshalJSON(data []byte) error {
	var limbs [2]uint64
	if err := json.Unmarshal(data, &limbs); err != nil {
		return err
	}
	s.hi, s.lo = limbs[0], limbs[1]
	return nil
}
