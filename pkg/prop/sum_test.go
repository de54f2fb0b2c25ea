package prop

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSumFromUnits(t *testing.T) {
	for n := uint8(0); n <= 3; n++ {
		got := SumFromUnits(n).Float64()
		if math.Abs(got-float64(n)) > 1e-9 {
			t.Errorf("SumFromUnits(%d).Float64() = %v", n, got)
		}
	}
}

func TestSumFromFloatClamps(t *testing.T) {
	if got := SumFromFloat(-1); !got.IsZero() {
		t.Errorf("SumFromFloat(-1) = %v, want 0", got)
	}
	if got := SumFromFloat(4.2); got != SumFromUnits(3) {
		t.Errorf("SumFromFloat(4.2) = %v, want 3", got)
	}
	if got := SumFromFloat(1.5).Float64(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("SumFromFloat(1.5).Float64() = %v", got)
	}
}

func TestSumArithmetic(t *testing.T) {
	one := SumFromProp(One)
	three := SumFromUnits(3)

	if got := three.Sub(one).Sub(one).Sub(one); !got.IsZero() {
		t.Errorf("3 − 1 − 1 − 1 = %v, want 0", got)
	}
	if got := one.Sub(three); !got.IsZero() {
		t.Error("subtraction below zero must saturate at zero")
	}
	if got := one.AddProp(One).AddProp(One); got != three {
		t.Errorf("1 + 1 + 1 = %v, want exactly 3", got)
	}
	if got := three.DivUint(3); got != one {
		t.Errorf("3 ÷ 3 = %v, want exactly 1", got)
	}
}

func TestSumPropNarrowing(t *testing.T) {
	if got := SumFromUnits(2).Prop(); got != One {
		t.Errorf("narrowing 2.0 = %v, want One", got)
	}
	p := FromFloat(0.75)
	if got := SumFromProp(p).Prop(); got != p {
		t.Errorf("narrowing 0.75 = %v, want %v", got, p)
	}
}

func TestSumMulProp(t *testing.T) {
	tests := []struct {
		name string
		s    Sum
		p    Prop
		want float64
	}{
		{"two by half", SumFromUnits(2), FromFloat(0.5), 1.0},
		{"three by third", SumFromUnits(3), FromFloat(1.0 / 3.0), 1.0},
		{"identity", SumFromFloat(1.7), One, 1.7},
		{"zero", SumFromUnits(3), 0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.MulProp(tt.p).Float64()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v × %v = %v, want %v", tt.s, tt.p, got, tt.want)
			}
		})
	}
}

func TestSumDivSum(t *testing.T) {
	// Dividing by an exact unit reproduces the numerator bit for bit.
	one := SumFromProp(One)
	for _, p := range []Prop{0, 1, FromFloat(0.392157), One - 1} {
		if got := SumFromProp(p).DivSum(one); got != p {
			t.Errorf("(%v ÷ 1) = %v, want exact %v", p, got, p)
		}
	}

	tests := []struct {
		name string
		n, d Sum
		want float64
	}{
		{"one over two", SumFromUnits(1), SumFromUnits(2), 0.5},
		{"one over three", SumFromUnits(1), SumFromUnits(3), 1.0 / 3.0},
		{"half over two", SumFromFloat(0.5), SumFromUnits(2), 0.25},
		{"general", SumFromFloat(1.2), SumFromFloat(2.4), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.n.DivSum(tt.d).Float64()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v ÷ %v = %v, want %v", tt.n, tt.d, got, tt.want)
			}
		})
	}

	// Ratios of one or more, and division by zero, clamp to One.
	if got := SumFromUnits(2).DivSum(SumFromUnits(1)); got != One {
		t.Errorf("2 ÷ 1 = %v, want One", got)
	}
	if got := SumFromUnits(1).DivSum(Sum{}); got != One {
		t.Errorf("1 ÷ 0 = %v, want One", got)
	}
}

func TestMulUintDivUintExact(t *testing.T) {
	// Five parts of a full proportion averaged over fifteen parts is an
	// exact third: One is divisible by three.
	got := One.MulUint(5).DivUint(15).Prop()
	if got != One/3 {
		t.Errorf("5 × One ÷ 15 = %d, want %d", uint64(got), uint64(One/3))
	}
}

func TestSumApproxEq(t *testing.T) {
	a := SumFromFloat(1.5)
	if !a.ApproxEq(a.AddProp(1)) {
		t.Error("one ULP apart must compare approximately equal")
	}
	if a.ApproxEq(SumFromFloat(1.51)) {
		t.Error("1.5 and 1.51 must not compare equal at default tolerance")
	}
	if !a.ApproxEqWithin(SumFromFloat(1.51), FromFloat(0.02)) {
		t.Error("1.5 and 1.51 must compare equal at 0.02 tolerance")
	}
}

func TestSumJSONRoundTrip(t *testing.T) {
	for _, s := range []Sum{{}, SumFromProp(One), SumFromFloat(1.23456), SumFromUnits(3)} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %v: %v", s, err)
		}
		var got Sum
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != s {
			t.Errorf("JSON round trip of %v gave %v", s, got)
		}
	}
}
