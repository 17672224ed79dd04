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

// HAlign is the horizontal alignment of a paragraph.
type HAlign uint8

// These are the supported horizontal alignments.
const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Alignment describes the horizontal placement of paragraph text.
type Alignment struct {
	Horizontal HAlign
	MarginLeft slides.EMU
	Indent     slides.EMU // first line, relative to MarginLeft
	RTL        bool
}

// Digest implements the [slides.Hashable] interface.
func (a Alignment) Digest() slides.Digest {
	h := slides.NewHasher(magicAlignment)
	h.Uint(uint64(a.Horizontal))
	h.Int(int64(a.MarginLeft))
	h.Int(int64(a.Indent))
	h.Bool(a.RTL)
	return h.Sum()
}

func (a Alignment) isStyle() {}

// BulletKind selects the kind of bullet in front of a paragraph.
type BulletKind uint8

// These are the supported bullet kinds.
const (
	BulletNone BulletKind = iota
	BulletChar
	BulletNumber
)

// Bullet describes the list marker of a paragraph.
type Bullet struct {
	Kind BulletKind

	// Char is the bullet character, for BulletChar.
	Char string

	// Font is the name of the font for the bullet character.
	// If this is empty, the font of the first run is used.
	Font string

	// Color is the color of the bullet.  If this is nil, the text color
	// is used.
	Color *Color

	// StartAt is the first number, for BulletNumber.
	StartAt int
}

// Digest implements the [slides.Hashable] interface.
func (b Bullet) Digest() slides.Digest {
	h := slides.NewHasher(magicBullet)
	h.Uint(uint64(b.Kind))
	switch b.Kind {
	case BulletChar:
		h.String(b.Char)
		h.String(b.Font)
		h.Child(b.Color)
	case BulletNumber:
		h.Int(int64(b.StartAt))
		h.String(b.Font)
		h.Child(b.Color)
	}
	return h.Sum()
}

func (b Bullet) isStyle() {}

// Paragraph holds the settings which apply to a whole paragraph.
type Paragraph struct {
	Alignment Alignment
	Bullet    Bullet
	Level     int

	// LineSpacing is the line distance in percent of the single line
	// distance.  Zero means the default of 100%.
	LineSpacing float64

	// SpaceBefore and SpaceAfter are in points.
	SpaceBefore float64
	SpaceAfter  float64
}

// Digest implements the [slides.Hashable] interface.
func (p Paragraph) Digest() slides.Digest {
	h := slides.NewHasher(magicParagraph)
	h.Child(p.Alignment)
	h.Child(p.Bullet)
	h.Int(int64(p.Level))
	lineSpacing := p.LineSpacing
	if lineSpacing == 100 {
		lineSpacing = 0
	}
	h.Float(lineSpacing)
	h.Float(p.SpaceBefore)
	h.Float(p.SpaceAfter)
	return h.Sum()
}

func (p Paragraph) isStyle() {}

// Clone returns a copy of p which shares no memory with p.
func (p Paragraph) Clone() Paragraph {
	if p.Bullet.Color != nil {
		c := *p.Bullet.Color
		p.Bullet.Color = &c
	}
	return p
}
