package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pigment/internal/palette"
	"github.com/jmylchreest/pigment/pkg/hcv"
)

// newPaletteCmd builds the palette command tree. The file flag is shared by
// every subcommand; a .xz suffix stores the palette compressed.
func newPaletteCmd() *cobra.Command {
	var file string

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "Manage a named colour palette file",
		Long: `Store, list and remove named colours in a palette file.

The palette is JSON; a file ending in .xz is compressed transparently.
Colours are stored exactly, so a saved colour always loads back bit for bit.

Examples:
  pigment palette set accent '#ff8000' --file theme.json
  pigment palette show --file theme.json
  pigment palette rm accent --file theme.json.xz`,
	}
	paletteCmd.PersistentFlags().StringVarP(&file, "file", "f", "palette.json", "palette file path")

	setCmd := &cobra.Command{
		Use:   "set <name> <colour>",
		Short: "Add or replace a named colour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColour(args[1])
			if err != nil {
				return err
			}

			p, err := loadOrNew(file)
			if err != nil {
				return err
			}
			p.Set(args[0], c)
			if err := p.Save(file); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s = %s\n", swatch(out, c), args[0], hcv.ToRGB[uint8](c).Hex())
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "List the palette's colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Load(file)
			if err != nil {
				return err
			}
			p.Sort()

			out := cmd.OutOrStdout()
			table := NewTable([]string{"Name", "Hex", "Chroma", "Value"})
			for _, e := range p.Entries() {
				table.AddRow([]string{
					e.Name,
					hcv.ToRGB[uint8](e.Colour).Hex(),
					e.Colour.Chroma().String(),
					e.Colour.Value().String(),
				})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a named colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Load(file)
			if err != nil {
				return err
			}
			if !p.Remove(args[0]) {
				return fmt.Errorf("no colour named %q in %s", args[0], file)
			}
			return p.Save(file)
		},
	}

	paletteCmd.AddCommand(setCmd)
	paletteCmd.AddCommand(showCmd)
	paletteCmd.AddCommand(rmCmd)
	return paletteCmd
}

// loadOrNew loads the palette at path, treating a missing file as empty.
func loadOrNew(path string) (*palette.Palette, error) {
	p, err := palette.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return palette.New(), nil
		}
		return nil, err
	}
	return p, nil
}
