package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pigment/pkg/hcv"
	"github.com/jmylchreest/pigment/pkg/prop"
)

var (
	adjustChroma  float64
	adjustClamped bool
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust <colour>",
	Short: "Adjust a colour's chroma",
	Long: `Raise or lower a colour's chroma by a fraction of the full range.

Lowering the chroma to zero turns the colour grey; raising a grey's chroma
brings its hue back. With --clamped the increase stops where the colour's
lightness runs out of room; without it the lightness shifts to make room.

Examples:
  pigment adjust '#996633' --chroma 0.2
  pigment adjust '#996633' --chroma -0.2
  pigment adjust '#996633' --chroma 0.5 --clamped`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().Float64VarP(&adjustChroma, "chroma", "c", 0, "chroma delta in -1..1")
	adjustCmd.Flags().BoolVar(&adjustClamped, "clamped", false, "keep the lightness fixed, bounding the increase")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	c, err := parseColour(args[0])
	if err != nil {
		return err
	}
	if adjustChroma < -1 || adjustChroma > 1 {
		return fmt.Errorf("chroma delta %v out of range [-1, 1]", adjustChroma)
	}

	logger := newLogger(cmd.ErrOrStderr())
	m := hcv.NewManipulatorBuilder().
		WithColour(c).
		WithClamped(adjustClamped).
		Build()

	var changed bool
	if adjustChroma >= 0 {
		changed = m.IncrChroma(prop.FromFloat(adjustChroma))
	} else {
		changed = m.DecrChroma(prop.FromFloat(-adjustChroma))
	}
	if !changed {
		logger.Debug("adjustment was a no-op", "delta", adjustChroma)
	}

	result := m.Colour()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", swatch(out, result), hcv.ToRGB[uint8](result).Hex())
	return nil
}
