package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pigment/pkg/hcv"
)

// mixCmd represents the mix command
var mixCmd = &cobra.Command{
	Use:   "mix <colour[:parts]>...",
	Short: "Mix colours by weighted parts",
	Long: `Mix two or more colours as measured parts of paint and print the result.

Each argument is a colour with an optional whole number of parts after a
colon; the default is one part. The result is the exact weighted mean of the
channels.

Examples:
  pigment mix '#ff0000' '#0000ff'
  pigment mix red:2 yellow:1
  pigment mix '#336699:3' white`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMix,
}

func runMix(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	var mixer hcv.Mixer
	for _, arg := range args {
		spec := arg
		parts := uint64(1)
		if i := strings.LastIndex(arg, ":"); i >= 0 {
			n, err := strconv.ParseUint(arg[i+1:], 10, 64)
			if err != nil || n == 0 {
				return fmt.Errorf("invalid parts in %q: want a positive whole number", arg)
			}
			spec, parts = arg[:i], n
		}

		c, err := parseColour(spec)
		if err != nil {
			return err
		}
		logger.Debug("adding to mix", "colour", c.String(), "parts", parts)
		mixer.Add(c, parts)
	}

	result, ok := mixer.Mixture()
	if !ok {
		return fmt.Errorf("nothing to mix")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s  (%d parts)\n", swatch(out, result), hcv.ToRGB[uint8](result).Hex(), mixer.Parts())
	return nil
}
