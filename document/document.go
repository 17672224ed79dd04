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

// Package document implements the object graph of a presentation.
//
// A [Presentation] owns an ordered list of [SlideMaster] objects and an
// ordered list of [Slide] objects.  Every master owns its [SlideLayout]s,
// and every slide refers to one layout and optionally owns a [Note].
// Masters, layouts, slides and notes hold their shapes in a [shape.Tree].
//
// Objects are created using the Create methods of their owner:
//
//	doc := document.New()
//	slide := doc.CreateSlide()
//	title := slide.CreateRichText()
//	title.AddText("Hello", style.DefaultFont)
package document

import (
	"slices"

	"golang.org/x/text/language"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/media"
)

// Presentation is the root of the document graph.
type Presentation struct {
	Properties Properties
	Size       SlideSize

	// Language is the default language of the text.
	Language language.Tag

	masters []*SlideMaster
	slides  []*Slide
	fonts   []media.Source
}

// New returns a new presentation without slides.  The presentation has
// one master called "Office Theme", with the layouts "Title Slide" and
// "Blank".
func New() *Presentation {
	p := &Presentation{
		Size:     Widescreen,
		Language: language.AmericanEnglish,
	}
	m := p.CreateMaster("Office Theme")
	m.CreateLayout("Title Slide")
	m.CreateLayout("Blank")
	return p
}

// Masters returns the slide masters of the presentation.
func (p *Presentation) Masters() []*SlideMaster {
	return slices.Clone(p.masters)
}

// CreateMaster adds a new slide master without layouts.
func (p *Presentation) CreateMaster(name string) *SlideMaster {
	m := &SlideMaster{name: name, pres: p}
	p.masters = append(p.masters, m)
	return m
}

// FindLayout returns the first layout with the given name, or nil if no
// such layout exists.
func (p *Presentation) FindLayout(name string) *SlideLayout {
	for _, m := range p.masters {
		if l := m.Layout(name); l != nil {
			return l
		}
	}
	return nil
}

// defaultLayout returns the layout used by [Presentation.CreateSlide].
func (p *Presentation) defaultLayout() *SlideLayout {
	for _, m := range p.masters {
		if len(m.layouts) > 0 {
			return m.layouts[0]
		}
	}
	m := p.CreateMaster("Office Theme")
	return m.CreateLayout("Blank")
}

// Slides returns the slides of the presentation, in order.
func (p *Presentation) Slides() []*Slide {
	return slices.Clone(p.slides)
}

// NumSlides returns the number of slides.
func (p *Presentation) NumSlides() int {
	return len(p.slides)
}

// Slide returns the i-th slide.
func (p *Presentation) Slide(i int) *Slide {
	return p.slides[i]
}

// CreateSlide appends a new, empty slide which uses the first layout of
// the first master.
func (p *Presentation) CreateSlide() *Slide {
	return p.CreateSlideWithLayout(p.defaultLayout())
}

// CreateSlideWithLayout appends a new, empty slide using the given layout.
// The layout must belong to p.
func (p *Presentation) CreateSlideWithLayout(l *SlideLayout) *Slide {
	if l == nil || l.master == nil || l.master.pres != p {
		panic("document: layout does not belong to this presentation")
	}
	s := &Slide{layout: l, pres: p}
	p.slides = append(p.slides, s)
	return s
}

// RemoveSlide removes s from the presentation.  The return value
// indicates whether s was part of the presentation.
func (p *Presentation) RemoveSlide(s *Slide) bool {
	i := slices.Index(p.slides, s)
	if i < 0 {
		return false
	}
	p.slides = slices.Delete(p.slides, i, i+1)
	s.pres = nil
	return true
}

// MoveSlide moves the slide at position from to position to.
func (p *Presentation) MoveSlide(from, to int) {
	s := p.slides[from]
	p.slides = slices.Delete(p.slides, from, from+1)
	p.slides = slices.Insert(p.slides, to, s)
}

// CloneSlide appends a deep copy of s to the presentation.  The copy
// uses the same layout as s.
func (p *Presentation) CloneSlide(s *Slide) *Slide {
	c := p.CreateSlideWithLayout(s.layout)
	c.name = s.name
	c.background = s.background
	c.hidden = s.hidden
	s.Tree.CopyTo(&c.Tree)
	if s.note != nil {
		n := c.CreateNote()
		s.note.Tree.CopyTo(&n.Tree)
	}
	return c
}

// EmbedFont adds a font file which is embedded into the output, for
// formats which support this.  Adding the same source twice has no effect.
func (p *Presentation) EmbedFont(src media.Source) {
	d := src.Digest()
	for _, f := range p.fonts {
		if f.Digest() == d {
			return
		}
	}
	p.fonts = append(p.fonts, src.Clone())
}

// Fonts returns the font files to embed.
func (p *Presentation) Fonts() []media.Source {
	return slices.Clone(p.fonts)
}

// layoutIndex returns the master and layout index of l.
func (p *Presentation) layoutIndex(l *SlideLayout) (int, int) {
	for i, m := range p.masters {
		if j := slices.Index(m.layouts, l); j >= 0 {
			return i, j
		}
	}
	return -1, -1
}

// Digest implements the [slides.Hashable] interface.
//
// The digest covers the whole document graph.  It is not cached.
func (p *Presentation) Digest() slides.Digest {
	h := slides.NewHasher(magicPresentation)
	h.Child(&p.Properties)
	h.String(p.Size.Name)
	h.Int(int64(p.Size.Width))
	h.Int(int64(p.Size.Height))
	h.String(p.Language.String())
	h.Uint(uint64(len(p.masters)))
	for _, m := range p.masters {
		h.Child(m)
	}
	h.Uint(uint64(len(p.slides)))
	for _, s := range p.slides {
		h.Child(s)
	}
	h.Uint(uint64(len(p.fonts)))
	for _, f := range p.fonts {
		h.Child(f)
	}
	return h.Sum()
}

// Magic numbers for the digests in this package.
const (
	magicPresentation uint32 = 0xd0c5_0001
	magicProperties   uint32 = 0xd0c5_0002
	magicMaster       uint32 = 0xd0c5_0003
	magicLayout       uint32 = 0xd0c5_0004
	magicSlide        uint32 = 0xd0c5_0005
	magicNote         uint32 = 0xd0c5_0006
)
