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

package shape

import (
	"seehuhn.de/go/slides"
)

// Bounds is the axis-aligned bounding box of a collection of shapes.
//
// The zero value represents the bounding box of no shapes at all; in
// this case Offset and Extent are both zero.
type Bounds struct {
	Offset slides.Point
	Extent slides.Extent

	nonEmpty bool
}

// IsEmpty reports whether the bounding box encloses no shapes.
func (b Bounds) IsEmpty() bool {
	return !b.nonEmpty
}

// Max returns the bottom right corner of the box.
func (b Bounds) Max() slides.Point {
	return slides.Point{X: b.Offset.X + b.Extent.CX, Y: b.Offset.Y + b.Extent.CY}
}

// Translate returns the box moved by p.
func (b Bounds) Translate(p slides.Point) Bounds {
	if b.nonEmpty {
		b.Offset = b.Offset.Add(p)
	}
	return b
}

// extend enlarges b to include the box with the given corner and size.
func (b *Bounds) extend(off slides.Point, ext slides.Extent) {
	if !b.nonEmpty {
		b.Offset = off
		b.Extent = ext
		b.nonEmpty = true
		return
	}
	lo := b.Offset
	hi := b.Max()
	lo.X = min(lo.X, off.X)
	lo.Y = min(lo.Y, off.Y)
	hi.X = max(hi.X, off.X+ext.CX)
	hi.Y = max(hi.Y, off.Y+ext.CY)
	b.Offset = lo
	b.Extent = slides.Extent{CX: hi.X - lo.X, CY: hi.Y - lo.Y}
}

// Container is implemented by everything which holds shapes: slides,
// layouts, masters, notes and groups.
type Container interface {
	ShapeTree() *Tree
}

// CalculateOffsets returns the top left corner of the bounding box of all
// leaf shapes in c, in slide coordinates.  Members of nested groups are
// included.  If c holds no leaf shapes, the zero point is returned.
func CalculateOffsets(c Container) slides.Point {
	return c.ShapeTree().Bounds().Offset
}

// CalculateExtents returns the size of the bounding box of all leaf
// shapes in c.  If c holds no leaf shapes, the zero extent is returned.
func CalculateExtents(c Container) slides.Extent {
	return c.ShapeTree().Bounds().Extent
}

// Bounds returns the bounding box of all leaf shapes in the tree, in
// slide coordinates.
//
// The result is cached.  The cache is cleared whenever a shape in the
// tree, or in any nested group, is added, removed, moved or resized.
func (t *Tree) Bounds() Bounds {
	return t.localBounds().Translate(t.AbsoluteOrigin())
}

// localBounds returns the bounding box of the tree, relative to the
// origin of the tree.  Since the box is stored relative to the origin,
// moving an enclosing group does not invalidate the cache.
func (t *Tree) localBounds() Bounds {
	if !t.localValid {
		t.local = aggregate(t.shapes)
		t.localValid = true
		t.aggregations++
	}
	return t.local
}

// aggregate computes the bounding box of the given shapes.  Groups
// contribute the boxes of their members; empty groups are ignored.
func aggregate(shapes []Shape) Bounds {
	var b Bounds
	for _, s := range shapes {
		if g, ok := s.(*Group); ok {
			inner := g.Tree.localBounds()
			if inner.IsEmpty() {
				continue
			}
			inner = inner.Translate(g.origin)
			b.extend(inner.Offset, inner.Extent)
			continue
		}
		b.extend(s.Offset(), s.Extent())
	}
	return b
}
