package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/jmylchreest/pigment/pkg/hcv"
)

// parseColour turns a command-line colour argument into an HCV. Accepted
// forms are #rrggbb (or rrggbb), an SVG 1.1 colour name, and three
// comma-separated float channels in [0, 1].
func parseColour(arg string) (hcv.HCV, error) {
	s := strings.TrimSpace(arg)

	if strings.Contains(s, ",") {
		return parseFloatTriple(s)
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 && isHex(hex) {
		return parseHex(hex)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return hcv.FromRGB(hcv.RGB[uint8]{R: c.R, G: c.G, B: c.B}), nil
	}

	return hcv.HCV{}, fmt.Errorf("unrecognised colour %q (want #rrggbb, an SVG colour name, or r,g,b floats)", arg)
}

func parseHex(hex string) (hcv.HCV, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return hcv.HCV{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	rgb := hcv.RGB[uint8]{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
	return hcv.FromRGB(rgb), nil
}

func parseFloatTriple(s string) (hcv.HCV, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return hcv.HCV{}, fmt.Errorf("want three comma-separated channels, got %d", len(parts))
	}
	var channels [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return hcv.HCV{}, fmt.Errorf("invalid channel %q: %w", part, err)
		}
		if f < 0 || f > 1 {
			return hcv.HCV{}, fmt.Errorf("channel %v out of range [0, 1]", f)
		}
		channels[i] = f
	}
	return hcv.FromRGB(hcv.FromFloats[float64](channels)), nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
