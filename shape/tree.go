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
	"slices"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/media"
)

// Tree is an ordered collection of shapes.  The order of the shapes is
// the drawing order: later shapes are drawn on top of earlier ones.
//
// The zero value is an empty tree, ready to use.  A Tree must not be
// copied after shapes have been added.
type Tree struct {
	shapes []Shape

	// group is the group which owns the tree, or nil for top-level trees.
	group *Group

	local       Bounds
	localValid  bool
	aggregations int // number of cache misses, for testing
}

// Shapes returns the shapes in the tree, in drawing order.
// The returned slice is a copy; the shapes themselves are shared.
func (t *Tree) Shapes() []Shape {
	return slices.Clone(t.shapes)
}

// Len returns the number of shapes in the tree.
func (t *Tree) Len() int {
	return len(t.shapes)
}

// At returns the i-th shape in drawing order.
func (t *Tree) At(i int) Shape {
	return t.shapes[i]
}

// IndexOf returns the position of s in the tree, or -1 if s is not a
// member of the tree.
func (t *Tree) IndexOf(s Shape) int {
	return slices.Index(t.shapes, s)
}

// Add appends s to the tree, so that it is drawn on top of all other
// shapes.  Add panics if s already belongs to a tree.
func (t *Tree) Add(s Shape) {
	t.Insert(len(t.shapes), s)
}

// Insert inserts s at position i in the drawing order.
// Insert panics if s already belongs to a tree, or if adding s would make
// a group a member of itself.
func (t *Tree) Insert(i int, s Shape) {
	b := s.Common()
	if b.parent != nil {
		panic("shape: " + Label(s) + " already belongs to a tree")
	}
	if g, ok := s.(*Group); ok {
		for anc := t.group; anc != nil; {
			if anc == g {
				panic("shape: group cannot contain itself")
			}
			if anc.parent == nil {
				break
			}
			anc = anc.parent.group
		}
	}
	t.shapes = slices.Insert(t.shapes, i, s)
	b.parent = t
	t.geometryChanged()
}

// Remove detaches s from the tree.  The return value indicates whether s
// was a member of the tree.
func (t *Tree) Remove(s Shape) bool {
	i := t.IndexOf(s)
	if i < 0 {
		return false
	}
	t.shapes = slices.Delete(t.shapes, i, i+1)
	s.Common().parent = nil
	t.geometryChanged()
	return true
}

// Move changes the position of a shape in the drawing order.
func (t *Tree) Move(from, to int) {
	if from == to {
		return
	}
	s := t.shapes[from]
	t.shapes = slices.Delete(t.shapes, from, from+1)
	t.shapes = slices.Insert(t.shapes, to, s)
	t.contentChanged()
}

// Clear removes all shapes from the tree.
func (t *Tree) Clear() {
	if len(t.shapes) == 0 {
		return
	}
	for _, s := range t.shapes {
		s.Common().parent = nil
	}
	t.shapes = nil
	t.geometryChanged()
}

// AbsoluteOrigin returns the position on the slide of the point which
// shapes in this tree see as (0, 0).  This is the sum of the origins of
// all enclosing groups.
func (t *Tree) AbsoluteOrigin() slides.Point {
	var p slides.Point
	for g := t.group; g != nil; {
		p = p.Add(g.origin)
		if g.parent == nil {
			break
		}
		g = g.parent.group
	}
	return p
}

// ShapeTree returns t.  This is used to implement the [Container]
// interface.
func (t *Tree) ShapeTree() *Tree {
	return t
}

// CopyTo appends deep copies of all shapes in t to dst.
func (t *Tree) CopyTo(dst *Tree) {
	for _, s := range t.shapes {
		dst.Add(s.Clone())
	}
}

// Digest implements the [slides.Hashable] interface.
// Two trees have the same digest if they hold equal shapes in the same
// order.
func (t *Tree) Digest() slides.Digest {
	h := slides.NewHasher(magicTree)
	t.writeShapes(h)
	return h.Sum()
}

func (t *Tree) writeShapes(h *slides.Hasher) {
	h.Uint(uint64(len(t.shapes)))
	for _, s := range t.shapes {
		h.Child(s)
	}
}

// contentChanged is called when a member of the tree changed in a way
// which does not affect the geometry.
func (t *Tree) contentChanged() {
	if t.group != nil {
		t.group.touch()
	}
}

// geometryChanged is called when a shape was added, removed, moved or
// resized.
func (t *Tree) geometryChanged() {
	t.localValid = false
	if t.group != nil {
		t.group.moved()
	}
}

// CreateRichText adds a new, empty text box to the tree.
func (t *Tree) CreateRichText() *RichText {
	s := NewRichText()
	t.Add(s)
	return s
}

// CreateLine adds a new straight line from p to q to the tree.
func (t *Tree) CreateLine(p, q slides.Point) *Line {
	s := NewLine(p, q)
	t.Add(s)
	return s
}

// CreateTable adds a new table with the given number of rows and
// columns to the tree.
func (t *Tree) CreateTable(rows, cols int) *Table {
	s := NewTable(rows, cols)
	t.Add(s)
	return s
}

// CreateChart adds a new chart of the given type to the tree.
func (t *Tree) CreateChart(typ ChartType) *Chart {
	s := NewChart(typ)
	t.Add(s)
	return s
}

// CreateDrawing adds a new picture to the tree.
func (t *Tree) CreateDrawing(src media.Source) *Drawing {
	s := NewDrawing(src)
	t.Add(s)
	return s
}

// CreateGroup adds a new, empty group to the tree.
func (t *Tree) CreateGroup() *Group {
	s := NewGroup()
	t.Add(s)
	return s
}
