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

// Package slides provides the core of a library for writing presentation
// packages, such as PowerPoint (.pptx) and OpenDocument (.odp) files.
//
// A presentation is built in memory using the types from the
// [seehuhn.de/go/slides/document] and [seehuhn.de/go/slides/shape] packages.
// The [seehuhn.de/go/slides/export] package then serializes the
// presentation into a zip container, using one of the registered formats:
//
//	reg := export.NewRegistry(pptx.New(), odp.New())
//	w := export.NewWriter(reg, nil)
//	err := w.WriteFile(doc, "out.pptx", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// This package contains the pieces shared by all of these:
//
//   - [Digest] and [Hasher] compute content fingerprints for style objects
//     and shapes.  Objects with the same observable content have the same
//     digest.
//   - [Table] assigns ordinal indices to deduplicated resources during one
//     write operation.
//   - [EMU], [Point] and [Extent] describe geometry.
//   - The error types returned by the writers.
package slides
