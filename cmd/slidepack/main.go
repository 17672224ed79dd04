// seehuhn.de/go/slides - a library for writing presentation files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Slidepack builds presentation files from YAML deck descriptions.
//
// Usage:
//
//	slidepack build deck.yaml [-o out.pptx] [--format pptx|odp]
//	slidepack formats
//
// Settings are read from ~/.config/slidepack/config.toml, or from the
// file given with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "slidepack:", err)
		os.Exit(1)
	}
}
