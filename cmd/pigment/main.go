// Pigment - an exact colour arithmetic toolbox
//
// Pigment inspects, converts and manipulates colours using fixed-point
// arithmetic that round-trips every representation exactly.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/pigment/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
