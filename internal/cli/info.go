package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pigment/pkg/hcv"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <colour>",
	Short: "Show the attributes of a colour",
	Long: `Show a colour's hue, chroma, value and derived attributes.

Examples:
  pigment info '#ff8000'
  pigment info rebeccapurple
  pigment info 0.6,0.4,0.2`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	c, err := parseColour(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())
	logger.Debug("parsed colour", "input", args[0], "colour", c.String())

	rgb := hcv.ToRGB[uint8](c)
	fmt.Fprintf(out, "%s %s\n\n", swatch(out, c), rgb.Hex())

	table := NewTable([]string{"Attribute", "Value"})
	if angle, ok := c.Angle(); ok {
		hue, _ := c.Hue()
		table.AddRow([]string{"Hue", fmt.Sprintf("%.2f° (%s sector)", angle, hue.Sector())})
	} else {
		table.AddRow([]string{"Hue", "none (grey)"})
	}
	table.AddRow([]string{"Chroma", c.Chroma().String()})
	table.AddRow([]string{"Value", c.Value().String()})
	table.AddRow([]string{"Greyness", c.Greyness().String()})
	table.AddRow([]string{"Sum", c.Sum().String()})
	table.AddRow([]string{"Warmth", c.Warmth().String()})
	table.AddRow([]string{"Foreground", hcv.ToRGB[uint8](c.BestForeground()).Hex()})
	fmt.Fprint(out, table.Render())

	return nil
}
