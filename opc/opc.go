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

// Package opc implements the bookkeeping shared by zip based document
// packages: relationship tables, content type tables, and the assembly of
// rendered parts into a zip container.
//
// The relationship and content type tables follow the Open Packaging
// Conventions (ECMA-376, Part 2).  [Assemble] is also used for
// OpenDocument packages.
package opc

import (
	"path"
	"strings"
)

// PartInfo describes one part of a package.
type PartInfo struct {
	// Path is the name of the part inside the zip container, without a
	// leading slash.
	Path string

	// ContentType is the media type of the part.
	ContentType string

	// Stored parts are written without compression.
	Stored bool
}

// Ext returns the file name extension of a part path, without the dot and
// in lower case.
func Ext(p string) string {
	ext := path.Ext(p)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// RelsPath returns the path of the relationship part for the part at p.
// For the package itself, p is the empty string.
func RelsPath(p string) string {
	dir, file := path.Split(p)
	return dir + "_rels/" + file + ".rels"
}

// RelativeTarget returns the path of target, relative to the directory
// containing source.  Both arguments are part paths.
func RelativeTarget(source, target string) string {
	dir := path.Dir(source)
	if dir == "." {
		return target
	}
	src := strings.Split(dir, "/")
	dst := strings.Split(target, "/")
	i := 0
	for i < len(src) && i < len(dst)-1 && src[i] == dst[i] {
		i++
	}
	var parts []string
	for range src[i:] {
		parts = append(parts, "..")
	}
	parts = append(parts, dst[i:]...)
	return strings.Join(parts, "/")
}
