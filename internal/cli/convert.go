package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pigment/pkg/hcv"
)

var convertTo string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour to another channel representation",
	Long: `Convert a colour's channels to the requested numeric representation.

Representations:
  u8, u16, u32, u64  - unsigned fixed-width channels
  f32, f64           - floating point channels in 0..1

Conversion is exact for every fixed-width representation: converting back
always reproduces the original channels.

Examples:
  pigment convert '#ff8000' --to u16
  pigment convert gold --to f64`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "u8", "target representation (u8, u16, u32, u64, f32, f64)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := parseColour(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch convertTo {
	case "u8":
		rgb := hcv.ToRGB[uint8](c)
		fmt.Fprintf(out, "%d %d %d\n", rgb.R, rgb.G, rgb.B)
	case "u16":
		rgb := hcv.ToRGB[uint16](c)
		fmt.Fprintf(out, "%d %d %d\n", rgb.R, rgb.G, rgb.B)
	case "u32":
		rgb := hcv.ToRGB[uint32](c)
		fmt.Fprintf(out, "%d %d %d\n", rgb.R, rgb.G, rgb.B)
	case "u64":
		rgb := hcv.ToRGB[uint64](c)
		fmt.Fprintf(out, "%d %d %d\n", rgb.R, rgb.G, rgb.B)
	case "f32":
		rgb := hcv.ToRGB[float32](c)
		fmt.Fprintf(out, "%v %v %v\n", rgb.R, rgb.G, rgb.B)
	case "f64":
		rgb := hcv.ToRGB[float64](c)
		fmt.Fprintf(out, "%v %v %v\n", rgb.R, rgb.G, rgb.B)
	default:
		return fmt.Errorf("unknown representation %q (want u8, u16, u32, u64, f32 or f64)", convertTo)
	}
	return nil
}
