package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/pigment/pkg/hcv"
)

// policyValue is a pflag.Value for selecting the rotation policy by name.
type policyValue hcv.RotationPolicy

var _ pflag.Value = (*policyValue)(nil)

func (p *policyValue) String() string {
	return hcv.RotationPolicy(*p).String()
}

func (p *policyValue) Set(s string) error {
	switch s {
	case "chroma":
		*p = policyValue(hcv.FavourChroma)
	case "value":
		*p = policyValue(hcv.FavourValue)
	default:
		return fmt.Errorf("unknown policy %q (want chroma or value)", s)
	}
	return nil
}

func (p *policyValue) Type() string { return "policy" }

var rotateFavour policyValue

// rotateCmd represents the rotate command
var rotateCmd = &cobra.Command{
	Use:   "rotate <colour> <degrees>",
	Short: "Rotate a colour's hue",
	Long: `Rotate a colour's hue by the given number of degrees, positive or negative.

When the destination hue cannot carry both the colour's chroma and its
lightness, --favour decides which one survives: "chroma" (default) keeps the
chroma and shifts the lightness, "value" keeps the lightness and reduces the
chroma.

Examples:
  pigment rotate '#ff0000' 60
  pigment rotate tomato -- -30
  pigment rotate '#ff0000' 60 --favour value`,
	Args: cobra.ExactArgs(2),
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().Var(&rotateFavour, "favour", "attribute to preserve on conflict (chroma, value)")
}

func runRotate(cmd *cobra.Command, args []string) error {
	c, err := parseColour(args[0])
	if err != nil {
		return err
	}
	degrees, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid angle %q: %w", args[1], err)
	}

	logger := newLogger(cmd.ErrOrStderr())
	m := hcv.NewManipulatorBuilder().
		WithColour(c).
		WithPolicy(hcv.RotationPolicy(rotateFavour)).
		Build()

	if !m.Rotate(degrees) {
		logger.Debug("rotation was a no-op", "degrees", degrees)
	}

	result := m.Colour()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", swatch(out, result), hcv.ToRGB[uint8](result).Hex())
	return nil
}
