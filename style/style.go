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

// Package style implements the value objects used to style shapes and text:
// colors, fonts, fills, borders, paragraph settings, shadows and hyperlinks.
//
// All types in this package are plain values.  A style is attached to a
// shape by copying it in, so changing a style value after it has been set
// has no effect on the shape.  Every type has a Digest method, which
// fingerprints the observable content of the value; styles with equal
// digests are written only once to the output file.
package style

import (
	"seehuhn.de/go/slides"
)

// Object is a style value which can be attached to a shape.
// The set of implementations is closed; all of them live in this package.
type Object interface {
	slides.Hashable
	isStyle()
}

// Role describes how a style object is used by a shape.
type Role string

// These are the roles used by the shapes in this library.
const (
	RoleFill      Role = "fill"
	RoleBorder    Role = "border"
	RoleShadow    Role = "shadow"
	RoleLink      Role = "hyperlink"
	RoleFont      Role = "font"
	RoleParagraph Role = "paragraph"
	RoleGraphic   Role = "graphic"
	RoleCell      Role = "cell"
)

// Ref is a style object together with its role.
type Ref struct {
	Role  Role
	Value Object
}

// Magic numbers for the digests of the different style types.
const (
	magicColor     uint32 = 0x5c01_0001
	magicFont      uint32 = 0x5c01_0002
	magicFill      uint32 = 0x5c01_0003
	magicBorder    uint32 = 0x5c01_0004
	magicBorders   uint32 = 0x5c01_0005
	magicAlignment uint32 = 0x5c01_0006
	magicBullet    uint32 = 0x5c01_0007
	magicParagraph uint32 = 0x5c01_0008
	magicShadow    uint32 = 0x5c01_0009
	magicHyperlink uint32 = 0x5c01_000a
	magicGraphic   uint32 = 0x5c01_000b
	magicCell      uint32 = 0x5c01_000c
)
