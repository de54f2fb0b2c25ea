package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/pigment/pkg/hcv"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// colourEnabled reports whether ANSI colour output should be used on w: the
// user has not disabled it and w is a terminal.
func colourEnabled(w io.Writer) bool {
	if flagNoColour {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// swatch returns a solid truecolour block for the colour, or its hex code
// when colour output is off.
func swatch(w io.Writer, c hcv.HCV) string {
	rgb := hcv.ToRGB[uint8](c)
	if !colourEnabled(w) {
		return rgb.Hex()
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", swatchWidth) + ansiReset
}

// swatchWithText returns a truecolour block with overlaid text, the text
// colour picked for contrast against the background.
func swatchWithText(w io.Writer, c hcv.HCV, text string) string {
	rgb := hcv.ToRGB[uint8](c)
	if !colourEnabled(w) {
		return fmt.Sprintf("%s %s", rgb.Hex(), text)
	}

	fg := hcv.ToRGB[uint8](c.BestForeground())
	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	display := text
	if len(text) > swatchWidth {
		display = text[:swatchWidth]
	} else if len(text) < swatchWidth {
		pad := (swatchWidth - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", swatchWidth-len(text)-pad)
	}

	return bgSeq + fgSeq + display + ansiReset
}
