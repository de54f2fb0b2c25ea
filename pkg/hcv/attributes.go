package hcv

import (
	"math"

	"github.com/jmylchreest/pigment/pkg/prop"
)

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance[T Component](rgb RGB[T]) float64 {
	return luminanceOfProps(rgb.Props())
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio[T Component](c1, c2 RGB[T]) float64 {
	return contrastOfLuminances(luminanceOfProps(c1.Props()), luminanceOfProps(c2.Props()))
}

func luminanceOfProps(channels [3]prop.Prop) float64 {
	r := gammaCorrect(channels[0].Float64())
	g := gammaCorrect(channels[1].Float64())
	b := gammaCorrect(channels[2].Float64())
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func contrastOfLuminances(l1, l2 float64) float64 {
	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// bestForegroundIsWhite reports whether white text reads better than black
// text on the given background.
func bestForegroundIsWhite(channels [3]prop.Prop) bool {
	lum := luminanceOfProps(channels)
	againstWhite := contrastOfLuminances(1, lum)
	againstBlack := contrastOfLuminances(lum, 0)
	return againstWhite > againstBlack
}
