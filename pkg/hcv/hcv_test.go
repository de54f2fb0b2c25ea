package hcv

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/jmylchreest/pigment/pkg/prop"
)

func TestWarmth(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB[float64]
		want float64
	}{
		{"red", Red, 1},
		{"yellow", Yellow, 5.0 / 6},
		{"green", Green, 0.5},
		{"cyan", Cyan, 1.0 / 3},
		{"blue", Blue, 0.5},
		{"magenta", Magenta, 5.0 / 6},
		{"white", White, 0},
		{"black", Black, 0.5},
		{"mid grey", RGB[float64]{0.5, 0.5, 0.5}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRGB(tt.rgb).Warmth().Float64()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Warmth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBestForeground(t *testing.T) {
	tests := []struct {
		name      string
		rgb       RGB[float64]
		wantWhite bool
	}{
		// Red's relative luminance is 0.2126, close enough to the
		// threshold that black already wins on contrast ratio.
		{"red", Red, false},
		{"yellow", Yellow, false},
		{"green", Green, false},
		{"white", White, false},
		{"blue", Blue, true},
		{"black", Black, true},
		{"dark grey", RGB[float64]{0.1, 0.1, 0.1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := FromRGB(Black)
			if tt.wantWhite {
				want = FromRGB(White)
			}
			if got := FromRGB(tt.rgb).BestForeground(); got != want {
				t.Errorf("BestForeground() = %v, want %v", got, want)
			}
			wantRGB := Convert[float64, uint8](Black)
			if tt.wantWhite {
				wantRGB = Convert[float64, uint8](White)
			}
			if got := Convert[float64, uint8](tt.rgb).BestForeground(); got != wantRGB {
				t.Errorf("RGB BestForeground() = %v, want %v", got, wantRGB)
			}
		})
	}
}

func TestNewClamps(t *testing.T) {
	red, _ := Red.Hue()

	// Chroma is pulled down to the hue's maximum for the sum.
	c := New(red, prop.One, prop.SumFromFloat(2))
	if got := c.Chroma().Float64(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("chroma = %v, want 0.5", got)
	}

	// Sums above three collapse to three, which forces grey.
	c = New(red, prop.One, prop.SumFromFloat(5))
	if c.Sum() != prop.SumFromUnits(3) {
		t.Errorf("sum = %v, want 3", c.Sum())
	}
	if !c.IsGrey() {
		t.Error("a full sum admits no chroma, so the colour must be grey")
	}

	// Zero chroma drops the hue.
	c = New(red, 0, prop.SumFromFloat(1.5))
	if !c.IsGrey() {
		t.Error("zero chroma should be grey")
	}
	if _, ok := c.Hue(); ok {
		t.Error("grey colour should report no hue")
	}
}

func TestValueAndGreyness(t *testing.T) {
	c := FromRGB(RGB[float64]{0.6, 0.4, 0.2})
	if got := c.Value().Float64(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("Value() = %v, want 0.4", got)
	}
	if got := c.Greyness().Float64(); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Greyness() = %v, want 0.6", got)
	}

	grey := Grey(prop.SumFromFloat(1.5))
	if got := grey.Value().Float64(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("grey Value() = %v, want 0.5", got)
	}
	if grey.Greyness() != prop.One {
		t.Errorf("grey Greyness() = %v, want One", grey.Greyness())
	}
}

func TestJSONRoundTripBitIdentical(t *testing.T) {
	colours := []HCV{
		FromRGB(Red),
		FromRGB(RGB[float64]{0.6, 0.4, 0.2}),
		Grey(prop.SumFromFloat(1.5)),
		{},
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		colours = append(colours, FromRGB(RGB[float64]{
			rng.Float64(), rng.Float64(), rng.Float64(),
		}))
	}

	for _, c := range colours {
		data, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("marshal %v: %v", c, err)
		}
		var got HCV
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != c {
			t.Errorf("round trip of %v through %s gave %v", c, data, got)
		}
	}
}

func TestUnmarshalRejectsBadSector(t *testing.T) {
	var c HCV
	if err := json.Unmarshal([]byte(`{"sector":6,"position":0,"chroma":0,"sum":[0,0]}`), &c); err == nil {
		t.Error("expected an error for an out-of-range sector")
	}
}

func TestString(t *testing.T) {
	if got := (HCV{}).String(); got == "" {
		t.Error("String() of black should not be empty")
	}
	c := FromRGB(Red)
	if got := c.String(); got == "" {
		t.Error("String() of red should not be empty")
	}
}
