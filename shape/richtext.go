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
	"strings"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/style"
)

// Geometry is the outline of a text box.
type Geometry uint8

// These are the supported outlines.
const (
	GeometryRect Geometry = iota
	GeometryRoundRect
	GeometryEllipse
)

// Anchor is the vertical alignment of text inside its box.
type Anchor uint8

// These are the supported vertical alignments.
const (
	AnchorTop Anchor = iota
	AnchorMiddle
	AnchorBottom
)

// AutoFit describes how text which does not fit its box is handled.
type AutoFit uint8

// These are the supported fit modes.
const (
	AutoFitNone   AutoFit = iota
	AutoFitShape          // grow the box
	AutoFitNormal         // shrink the text
)

// Insets are the distances between the edges of a text box and the text.
type Insets struct {
	Left, Top, Right, Bottom slides.EMU
}

// DefaultInsets are the insets of a new text box.
var DefaultInsets = Insets{Left: 91440, Top: 45720, Right: 91440, Bottom: 45720}

// RichText is a box containing formatted text.
type RichText struct {
	Base

	geometry Geometry
	anchor   Anchor
	insets   Insets
	noWrap   bool
	autoFit  AutoFit
	columns  int

	paragraphs []Paragraph
}

var _ Shape = (*RichText)(nil)

// NewRichText returns a new, empty text box.
func NewRichText() *RichText {
	return &RichText{insets: DefaultInsets}
}

// Geometry returns the outline of the box.
func (t *RichText) Geometry() Geometry {
	return t.geometry
}

// SetGeometry changes the outline of the box.
func (t *RichText) SetGeometry(g Geometry) {
	t.geometry = g
	t.touch()
}

// Anchor returns the vertical alignment of the text.
func (t *RichText) Anchor() Anchor {
	return t.anchor
}

// SetAnchor changes the vertical alignment of the text.
func (t *RichText) SetAnchor(a Anchor) {
	t.anchor = a
	t.touch()
}

// Insets returns the inner margins of the box.
func (t *RichText) Insets() Insets {
	return t.insets
}

// SetInsets changes the inner margins of the box.
func (t *RichText) SetInsets(in Insets) {
	t.insets = in
	t.touch()
}

// Wrap reports whether lines are wrapped at the edge of the box.
func (t *RichText) Wrap() bool {
	return !t.noWrap
}

// SetWrap turns line wrapping on or off.
func (t *RichText) SetWrap(wrap bool) {
	t.noWrap = !wrap
	t.touch()
}

// AutoFit returns the fit mode of the box.
func (t *RichText) AutoFit() AutoFit {
	return t.autoFit
}

// SetAutoFit changes the fit mode of the box.
func (t *RichText) SetAutoFit(a AutoFit) {
	t.autoFit = a
	t.touch()
}

// Columns returns the number of text columns.
func (t *RichText) Columns() int {
	return max(t.columns, 1)
}

// SetColumns changes the number of text columns.
func (t *RichText) SetColumns(n int) {
	t.columns = n
	t.touch()
}

// Paragraphs returns a copy of the text.
func (t *RichText) Paragraphs() []Paragraph {
	return cloneParagraphs(t.paragraphs)
}

// SetParagraphs replaces the text.  The paragraphs are copied.
func (t *RichText) SetParagraphs(pp []Paragraph) {
	t.paragraphs = cloneParagraphs(pp)
	t.touch()
}

// AddParagraph appends a paragraph to the text.
func (t *RichText) AddParagraph(p Paragraph) {
	t.paragraphs = append(t.paragraphs, p.Clone())
	t.touch()
}

// AddText appends a paragraph consisting of the given text, in one font.
func (t *RichText) AddText(text string, font style.Font) {
	t.AddParagraph(TextParagraph(text, font))
}

// Text returns the plain text, with paragraphs separated by newlines.
func (t *RichText) Text() string {
	lines := make([]string, len(t.paragraphs))
	for i, p := range t.paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// Digest implements the [slides.Hashable] interface.
func (t *RichText) Digest() slides.Digest {
	return t.cache.Get(func() slides.Digest {
		h := slides.NewHasher(magicRichText)
		t.writeDigest(h)
		writeFrame(h, t.offset, t.extent)
		h.Uint(uint64(t.geometry))
		h.Uint(uint64(t.anchor))
		h.Int(int64(t.insets.Left))
		h.Int(int64(t.insets.Top))
		h.Int(int64(t.insets.Right))
		h.Int(int64(t.insets.Bottom))
		h.Bool(t.noWrap)
		h.Uint(uint64(t.autoFit))
		h.Int(int64(t.Columns()))
		writeParagraphs(h, t.paragraphs)
		return h.Sum()
	})
}

// Clone implements the [Shape] interface.
func (t *RichText) Clone() Shape {
	return &RichText{
		Base:       t.cloneBase(),
		geometry:   t.geometry,
		anchor:     t.anchor,
		insets:     t.insets,
		noWrap:     t.noWrap,
		autoFit:    t.autoFit,
		columns:    t.columns,
		paragraphs: cloneParagraphs(t.paragraphs),
	}
}

// StyleObjects implements the [Shape] interface.
func (t *RichText) StyleObjects() []style.Ref {
	return append(t.styleRefs(), paragraphRefs(t.paragraphs)...)
}

func (t *RichText) isShape() {}
