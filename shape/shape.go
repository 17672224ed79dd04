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

// Package shape implements the shapes which make up the content of slides.
//
// The set of shape types is closed: [RichText], [Line], [Table], [Chart],
// [Drawing] and [Group].  All of them implement the [Shape] interface, and
// all of them embed [Base], which holds the name, placement and styling
// shared by every shape.
//
// Shapes are owned by exactly one [Tree].  Slides, layouts, masters, notes
// and groups all hold their shapes in a Tree.  A shape is added to a tree
// using [Tree.Add] or one of the Create methods, and must be removed from
// its tree before it can be added to another one.
//
// All changes to a shape go through its methods.  This allows shapes to
// cache their digest, and trees to cache the bounding box of their shapes;
// the caches are invalidated whenever a shape changes.
package shape

import (
	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/style"
)

// Shape is one of the shape types in this package.
type Shape interface {
	slides.Hashable

	// Common returns the data shared by all shape types.
	Common() *Base

	// Offset returns the position of the top left corner, in the
	// coordinates of the enclosing tree.
	Offset() slides.Point

	// Extent returns the size of the shape.
	Extent() slides.Extent

	// SetOffset moves the shape.
	SetOffset(slides.Point)

	// SetExtent resizes the shape.
	SetExtent(slides.Extent)

	// Clone returns a deep copy of the shape.  The copy is not attached
	// to any tree.
	Clone() Shape

	// StyleObjects lists the style values used by the shape, in a fixed
	// order.  Members of groups are not included.
	StyleObjects() []style.Ref

	isShape()
}

// Base holds the data shared by all shape types.
type Base struct {
	name        string
	description string

	offset   slides.Point
	extent   slides.Extent
	rotation float64
	flipH    bool
	flipV    bool

	fill   style.Fill
	border style.Border
	shadow *style.Shadow
	link   *style.Hyperlink

	parent *Tree
	cache  slides.DigestCache
}

// Common returns b.  This is used to implement the [Shape] interface.
func (b *Base) Common() *Base {
	return b
}

// Parent returns the tree which holds the shape, or nil if the shape is
// detached.
func (b *Base) Parent() *Tree {
	return b.parent
}

// Name returns the name of the shape.
func (b *Base) Name() string {
	return b.name
}

// SetName changes the name of the shape.
func (b *Base) SetName(name string) {
	b.name = name
	b.touch()
}

// Description returns the alternative text of the shape.
func (b *Base) Description() string {
	return b.description
}

// SetDescription sets the alternative text of the shape.
func (b *Base) SetDescription(desc string) {
	b.description = desc
	b.touch()
}

// Offset returns the position of the shape, relative to the origin of
// the enclosing tree.
func (b *Base) Offset() slides.Point {
	return b.offset
}

// SetOffset moves the shape.
func (b *Base) SetOffset(p slides.Point) {
	if p == b.offset {
		return
	}
	b.offset = p
	b.moved()
}

// Extent returns the size of the shape.
func (b *Base) Extent() slides.Extent {
	return b.extent
}

// SetExtent resizes the shape.
func (b *Base) SetExtent(e slides.Extent) {
	if e == b.extent {
		return
	}
	b.extent = e
	b.moved()
}

// Rotation returns the clockwise rotation in degrees.
func (b *Base) Rotation() float64 {
	return b.rotation
}

// SetRotation sets the clockwise rotation in degrees.
// The rotation does not change the bounding box of the shape.
func (b *Base) SetRotation(deg float64) {
	b.rotation = deg
	b.touch()
}

// Flip returns whether the shape is mirrored horizontally and vertically.
func (b *Base) Flip() (horizontal, vertical bool) {
	return b.flipH, b.flipV
}

// SetFlip mirrors the shape.
func (b *Base) SetFlip(horizontal, vertical bool) {
	b.flipH = horizontal
	b.flipV = vertical
	b.touch()
}

// Fill returns the fill of the shape.
func (b *Base) Fill() style.Fill {
	return b.fill
}

// SetFill changes the fill of the shape.
func (b *Base) SetFill(f style.Fill) {
	b.fill = f
	b.touch()
}

// Border returns the outline of the shape.
func (b *Base) Border() style.Border {
	return b.border
}

// SetBorder changes the outline of the shape.
func (b *Base) SetBorder(border style.Border) {
	b.border = border
	b.touch()
}

// Shadow returns a copy of the shadow, or nil if the shape has no shadow.
func (b *Base) Shadow() *style.Shadow {
	if b.shadow == nil {
		return nil
	}
	s := *b.shadow
	return &s
}

// SetShadow sets the shadow.  Use nil to remove the shadow.
// The value is copied.
func (b *Base) SetShadow(s *style.Shadow) {
	if s == nil {
		b.shadow = nil
	} else {
		c := *s
		b.shadow = &c
	}
	b.touch()
}

// Link returns a copy of the hyperlink of the shape, or nil.
func (b *Base) Link() *style.Hyperlink {
	if b.link == nil {
		return nil
	}
	l := *b.link
	return &l
}

// SetLink sets the hyperlink which is followed when the shape is clicked.
// Use nil to remove the link.  The value is copied.
func (b *Base) SetLink(l *style.Hyperlink) {
	if l == nil {
		b.link = nil
	} else {
		c := *l
		b.link = &c
	}
	b.touch()
}

// Graphic returns the combined fill, border and shadow of the shape.
func (b *Base) Graphic() style.Graphic {
	return style.Graphic{Fill: b.fill, Border: b.border, Shadow: b.Shadow()}
}

// touch must be called after every change to the content of a shape.
func (b *Base) touch() {
	b.cache.Invalidate()
	if b.parent != nil {
		b.parent.contentChanged()
	}
}

// moved must be called after every change to the position or size of a
// shape.
func (b *Base) moved() {
	b.cache.Invalidate()
	if b.parent != nil {
		b.parent.geometryChanged()
	}
}

// writeDigest writes the fields common to all shapes, except for the
// geometry, to h.
func (b *Base) writeDigest(h *slides.Hasher) {
	h.String(b.name)
	h.String(b.description)
	h.Float(b.rotation)
	h.Bool(b.flipH)
	h.Bool(b.flipV)
	h.Child(b.fill)
	h.Child(b.border)
	h.Child(b.shadow)
	h.Child(b.link)
}

func writeFrame(h *slides.Hasher, p slides.Point, e slides.Extent) {
	h.Int(int64(p.X))
	h.Int(int64(p.Y))
	h.Int(int64(e.CX))
	h.Int(int64(e.CY))
}

// styleRefs returns the style objects of the base, in the order fill,
// border, shadow, hyperlink, graphic.
func (b *Base) styleRefs() []style.Ref {
	refs := []style.Ref{
		{Role: style.RoleFill, Value: b.fill},
		{Role: style.RoleBorder, Value: b.border},
	}
	if b.shadow != nil {
		refs = append(refs, style.Ref{Role: style.RoleShadow, Value: *b.shadow})
	}
	if b.link != nil {
		refs = append(refs, style.Ref{Role: style.RoleLink, Value: *b.link})
	}
	refs = append(refs, style.Ref{Role: style.RoleGraphic, Value: b.Graphic()})
	return refs
}

// cloneBase returns a copy of b which is not attached to any tree.
func (b *Base) cloneBase() Base {
	c := Base{
		name:        b.name,
		description: b.description,
		offset:      b.offset,
		extent:      b.extent,
		rotation:    b.rotation,
		flipH:       b.flipH,
		flipV:       b.flipV,
		fill:        b.fill,
		border:      b.border,
		shadow:      b.Shadow(),
		link:        b.Link(),
	}
	return c
}

// Kind returns a short, lower-case name for the type of s.
func Kind(s Shape) string {
	switch s.(type) {
	case *RichText:
		return "text"
	case *Line:
		return "line"
	case *Table:
		return "table"
	case *Chart:
		return "chart"
	case *Drawing:
		return "drawing"
	case *Group:
		return "group"
	default:
		return "shape"
	}
}

// Label returns a description of s for use in messages.
func Label(s Shape) string {
	name := s.Common().Name()
	if name == "" {
		return Kind(s)
	}
	return Kind(s) + " " + `"` + name + `"`
}

// Absolute returns the position of s on the slide.
func Absolute(s Shape) slides.Point {
	p := s.Offset()
	if parent := s.Common().parent; parent != nil {
		p = p.Add(parent.AbsoluteOrigin())
	}
	return p
}

// Walk calls fn for every shape in shapes, in depth-first order.
// The members of a group are visited directly after the group.
// If fn returns an error, the walk stops and the error is returned.
func Walk(shapes []Shape, fn func(s Shape, depth int) error) error {
	return walk(shapes, 0, fn)
}

func walk(shapes []Shape, depth int, fn func(Shape, int) error) error {
	for _, s := range shapes {
		if err := fn(s, depth); err != nil {
			return err
		}
		if g, ok := s.(*Group); ok {
			if err := walk(g.shapes, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Magic numbers for the shape digests.
const (
	magicRichText uint32 = 0x5a0e_0001
	magicLine     uint32 = 0x5a0e_0002
	magicTable    uint32 = 0x5a0e_0003
	magicChart    uint32 = 0x5a0e_0004
	magicDrawing  uint32 = 0x5a0e_0005
	magicGroup    uint32 = 0x5a0e_0006
	magicTree     uint32 = 0x5a0e_0007
)
