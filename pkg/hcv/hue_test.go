package hcv

import (
	"math"
	"testing"

	"github.com/jmylchreest/pigment/pkg/prop"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		rgb       RGB[float64]
		sector    Sector
		wantAngle float64
	}{
		{"red", Red, SectorRed, 0},
		{"yellow", Yellow, SectorYellow, 60},
		{"green", Green, SectorGreen, 120},
		{"cyan", Cyan, SectorCyan, 180},
		{"blue", Blue, SectorBlue, 240},
		{"magenta", Magenta, SectorMagenta, 300},
		{"orange", InBetweens[0], SectorRed, 30},
		{"chartreuse", InBetweens[1], SectorYellow, 90},
		{"spring green", InBetweens[2], SectorGreen, 150},
		{"azure", InBetweens[3], SectorCyan, 210},
		{"violet", InBetweens[4], SectorBlue, 270},
		{"rose", InBetweens[5], SectorMagenta, 330},
		{"dark red", RGB[float64]{0.25, 0, 0}, SectorRed, 0},
		{"pale yellow", RGB[float64]{1, 1, 0.5}, SectorYellow, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hue, ok := tt.rgb.Hue()
			if !ok {
				t.Fatal("expected a hue")
			}
			if hue.Sector() != tt.sector {
				t.Errorf("sector = %v, want %v", hue.Sector(), tt.sector)
			}
			if got := hue.Angle(); math.Abs(got-tt.wantAngle) > 1e-6 {
				t.Errorf("angle = %v, want %v", got, tt.wantAngle)
			}
		})
	}
}

func TestGreysHaveNoHue(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		rgb := RGB[float64]{v, v, v}
		if _, ok := rgb.Hue(); ok {
			t.Errorf("grey %v should have no hue", rgb)
		}
		if got := rgb.Chroma(); got != 0 {
			t.Errorf("grey %v chroma = %v, want 0", rgb, got)
		}
	}
}

func TestHueFromAngle(t *testing.T) {
	tests := []struct {
		angle  float64
		sector Sector
		want   float64
	}{
		{0, SectorRed, 0},
		{29.5, SectorRed, 29.5},
		{60, SectorYellow, 60},
		{123.4, SectorGreen, 123.4},
		{359.9, SectorMagenta, 359.9},
		{-30, SectorMagenta, 330},
		{390, SectorRed, 30},
	}
	for _, tt := range tests {
		h := HueFromAngle(tt.angle)
		if h.Sector() != tt.sector {
			t.Errorf("HueFromAngle(%v) sector = %v, want %v", tt.angle, h.Sector(), tt.sector)
		}
		if got := h.Angle(); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("HueFromAngle(%v).Angle() = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestMaxChromaForSum(t *testing.T) {
	red, _ := Red.Hue()
	yellow, _ := Yellow.Hue()

	tests := []struct {
		name string
		hue  Hue
		sum  float64
		want float64
	}{
		// Red's full-chroma sum is 1: the profile rises linearly to it
		// and falls with slope 1/2 beyond it.
		{"red below peak", red, 0.5, 0.5},
		{"red at peak", red, 1.0, 1.0},
		{"red above peak", red, 2.0, 0.5},
		// Yellow peaks at 2.
		{"yellow below peak", yellow, 1.0, 0.5},
		{"yellow at peak", yellow, 2.0, 1.0},
		{"yellow above peak", yellow, 2.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.hue.MaxChromaForSum(prop.SumFromFloat(tt.sum)).Float64()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MaxChromaForSum(%v) = %v, want %v", tt.sum, got, tt.want)
			}
		})
	}

	// Empty and full sums leave no room for chroma at all.
	if got := red.MaxChromaForSum(prop.Sum{}); got != 0 {
		t.Errorf("MaxChromaForSum(0) = %v, want 0", got)
	}
	if got := red.MaxChromaForSum(prop.SumFromUnits(3)); got != 0 {
		t.Errorf("MaxChromaForSum(3) = %v, want 0", got)
	}
}

func TestSumRangeForChroma(t *testing.T) {
	red, _ := Red.Hue()
	yellow, _ := Yellow.Hue()

	tests := []struct {
		name   string
		hue    Hue
		chroma float64
		lo, hi float64
	}{
		{"red full chroma", red, 1, 1, 1},
		{"yellow full chroma", yellow, 1, 2, 2},
		{"red half chroma", red, 0.5, 0.5, 2},
		{"yellow half chroma", yellow, 0.5, 1, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.hue.SumRangeForChroma(prop.FromFloat(tt.chroma))
			if got := lo.Float64(); math.Abs(got-tt.lo) > 1e-9 {
				t.Errorf("lo = %v, want %v", got, tt.lo)
			}
			if got := hi.Float64(); math.Abs(got-tt.hi) > 1e-9 {
				t.Errorf("hi = %v, want %v", got, tt.hi)
			}
		})
	}

	// Zero chroma is realisable at any sum.
	lo, hi := red.SumRangeForChroma(0)
	if !lo.IsZero() || hi != prop.SumFromUnits(3) {
		t.Errorf("SumRangeForChroma(0) = [%v, %v], want [0, 3]", lo, hi)
	}
}

func TestGeometryMutualInverse(t *testing.T) {
	var hues []Hue
	for _, rgb := range append(append([]RGB[float64]{}, Primaries...), Secondaries...) {
		h, _ := rgb.Hue()
		hues = append(hues, h)
	}
	for _, rgb := range InBetweens {
		h, _ := rgb.Hue()
		hues = append(hues, h)
	}

	chromas := []float64{0.125, 0.25, 0.5, 0.75, 0.875, 1}
	for _, hue := range hues {
		for _, cf := range chromas {
			chroma := prop.FromFloat(cf)
			lo, hi := hue.SumRangeForChroma(chroma)
			if got := hue.MaxChromaForSum(lo); !got.ApproxEq(chroma) {
				t.Errorf("%v chroma %v: max chroma at lo %v = %v", hue, cf, lo, got)
			}
			if got := hue.MaxChromaForSum(hi); !got.ApproxEq(chroma) {
				t.Errorf("%v chroma %v: max chroma at hi %v = %v", hue, cf, hi, got)
			}
		}

		// At full chroma the range collapses to the single full-chroma
		// sum, where the maximum chroma is exactly one.
		lo, hi := hue.SumRangeForChroma(prop.One)
		if lo != hi {
			t.Errorf("%v: full-chroma sum range [%v, %v] should collapse", hue, lo, hi)
		}
		if got := hue.MaxChromaForSum(lo); got != prop.One {
			t.Errorf("%v: max chroma at full-chroma sum = %v, want One", hue, got)
		}
	}
}
