package prop

import (
	"math/bits"
	"strconv"
)

// Diff is the signed 128-bit counterpart of Sum, used for deltas between
// proportions or sums. Stored in two's complement; the zero value is 0.
type Diff struct {
	hi, lo uint64
}

// DiffOfProps returns a − b as a signed difference.
func DiffOfProps(a, b Prop) Diff {
	return DiffOfSums(SumFromProp(a), SumFromProp(b))
}

// DiffOfSums returns a − b as a signed difference.
func DiffOfSums(a, b Sum) Diff {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, borrow)
	return Diff{hi: hi, lo: lo}
}

// IsNeg reports whether the difference is negative.
func (d Diff) IsNeg() bool { return int64(d.hi) < 0 }

// Neg returns −d.
func (d Diff) Neg() Diff {
	lo, carry := bits.Add64(^d.lo, 1, 0)
	return Diff{hi: ^d.hi + carry, lo: lo}
}

// Add returns d + o.
func (d Diff) Add(o Diff) Diff {
	lo, carry := bits.Add64(d.lo, o.lo, 0)
	return Diff{hi: d.hi + o.hi + carry, lo: lo}
}

// Abs returns |d| as an unsigned Sum.
func (d Diff) Abs() Sum {
	if d.IsNeg() {
		d = d.Neg()
	}
	return Sum{hi: d.hi, lo: d.lo}
}

// Float64 returns the difference as a floating point value.
func (d Diff) Float64() float64 {
	if d.IsNeg() {
		return -d.Neg().Abs().Float64()
	}
	return d.Abs().Float64()
}

// String formats the difference as a signed decimal fraction.
func (d Diff) String() string {
	return strconv.FormatFloat(d.Float64(), 'f', -1, 64)
}
