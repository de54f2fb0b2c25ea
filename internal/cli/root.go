// Package cli provides the command-line interface for Pigment.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/pigment/internal/version"
)

var (
	// Global flags
	flagVerbose  bool
	flagNoColour bool
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pigment",
		Short: "An exact colour arithmetic toolbox",
		Long: `Pigment inspects, converts and manipulates colours using exact fixed-point
arithmetic: converting a colour between its representations and back always
reproduces the original bit for bit.

Colours are written as #rrggbb hex codes, SVG 1.1 colour names, or
comma-separated float channels (r,g,b in 0..1).`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColour, "no-colour", false, "disable ANSI colour output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(newPaletteCmd())

	return rootCmd
}

// newLogger returns a debug logger when verbose output is requested and a
// silent one otherwise.
func newLogger(w io.Writer) hclog.Logger {
	if flagVerbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "pigment",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pigment",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
