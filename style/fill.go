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

package style

import (
	"seehuhn.de/go/slides"
)

// FillKind selects how an area is filled.
type FillKind uint8

// These are the supported fill kinds.
const (
	FillNone FillKind = iota
	FillSolid
	FillLinear // linear gradient from Start to End
	FillPath   // radial gradient, Start in the center
)

func (k FillKind) String() string {
	switch k {
	case FillNone:
		return "none"
	case FillSolid:
		return "solid"
	case FillLinear:
		return "linear"
	case FillPath:
		return "path"
	default:
		return "unknown"
	}
}

// Fill describes how the interior of a shape is painted.
//
// The zero value is "no fill".
type Fill struct {
	Kind  FillKind
	Start Color
	End   Color

	// Angle is the direction of a linear gradient, in degrees clockwise
	// from the positive x-axis.
	Angle float64
}

// Solid returns a solid fill with the given color.
func Solid(c Color) Fill {
	return Fill{Kind: FillSolid, Start: c}
}

// LinearGradient returns a linear gradient fill.
func LinearGradient(start, end Color, angle float64) Fill {
	return Fill{Kind: FillLinear, Start: start, End: end, Angle: angle}
}

// RadialGradient returns a gradient fill which changes from start in the
// center of the shape to end at the edges.
func RadialGradient(start, end Color) Fill {
	return Fill{Kind: FillPath, Start: start, End: end}
}

// IsNone reports whether the fill paints nothing.
func (f Fill) IsNone() bool {
	return f.Kind == FillNone
}

// IsGradient reports whether f is one of the gradient fills.
func (f Fill) IsGradient() bool {
	return f.Kind == FillLinear || f.Kind == FillPath
}

// Digest implements the [slides.Hashable] interface.
//
// Fields which are not used by the fill kind do not contribute to the
// digest.
func (f Fill) Digest() slides.Digest {
	h := slides.NewHasher(magicFill)
	h.Uint(uint64(f.Kind))
	switch f.Kind {
	case FillSolid:
		h.Child(f.Start)
	case FillLinear:
		h.Child(f.Start)
		h.Child(f.End)
		h.Float(f.Angle)
	case FillPath:
		h.Child(f.Start)
		h.Child(f.End)
	}
	return h.Sum()
}

func (f Fill) isStyle() {}
