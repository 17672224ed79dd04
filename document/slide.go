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

package document

import (
	"slices"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// Slide is one page of a presentation.
//
// Slides must be created using [Presentation.CreateSlide] and must not be
// copied.
type Slide struct {
	shape.Tree

	name       string
	layout     *SlideLayout
	background style.Fill
	hidden     bool
	note       *Note
	pres       *Presentation
}

// Name returns the name of the slide.
func (s *Slide) Name() string {
	return s.name
}

// SetName changes the name of the slide.
func (s *Slide) SetName(name string) {
	s.name = name
}

// Layout returns the layout used by the slide.
func (s *Slide) Layout() *SlideLayout {
	return s.layout
}

// SetLayout changes the layout of the slide.  The layout must belong to
// the same presentation as the slide.
func (s *Slide) SetLayout(l *SlideLayout) {
	if l == nil || l.master == nil || l.master.pres != s.pres {
		panic("document: layout does not belong to this presentation")
	}
	s.layout = l
}

// Background returns the background fill of the slide.  If no fill is
// set, the background of the layout is used.
func (s *Slide) Background() style.Fill {
	return s.background
}

// SetBackground sets the background fill of the slide.
func (s *Slide) SetBackground(f style.Fill) {
	s.background = f
}

// EffectiveBackground returns the background which is shown, taking into
// account the layout and master.
func (s *Slide) EffectiveBackground() style.Fill {
	if !s.background.IsNone() {
		return s.background
	}
	if s.layout == nil {
		return style.Fill{}
	}
	if !s.layout.background.IsNone() {
		return s.layout.background
	}
	return s.layout.master.background
}

// Hidden reports whether the slide is skipped in slide shows.
func (s *Slide) Hidden() bool {
	return s.hidden
}

// SetHidden sets whether the slide is skipped in slide shows.
func (s *Slide) SetHidden(hidden bool) {
	s.hidden = hidden
}

// Note returns the speaker notes of the slide, or nil.
func (s *Slide) Note() *Note {
	return s.note
}

// CreateNote returns the speaker notes of the slide, creating an empty
// note if needed.
func (s *Slide) CreateNote() *Note {
	if s.note == nil {
		s.note = &Note{slide: s}
	}
	return s.note
}

// RemoveNote deletes the speaker notes.
func (s *Slide) RemoveNote() {
	if s.note != nil {
		s.note.slide = nil
		s.note = nil
	}
}

// Index returns the position of the slide in the presentation, or -1 if
// the slide has been removed.
func (s *Slide) Index() int {
	if s.pres == nil {
		return -1
	}
	return slices.Index(s.pres.slides, s)
}

// Digest implements the [slides.Hashable] interface.
func (s *Slide) Digest() slides.Digest {
	h := slides.NewHasher(magicSlide)
	h.String(s.name)
	i, j := -1, -1
	if s.pres != nil {
		i, j = s.pres.layoutIndex(s.layout)
	}
	h.Int(int64(i))
	h.Int(int64(j))
	h.Child(s.background)
	h.Bool(s.hidden)
	h.Child(&s.Tree)
	h.Child(s.note)
	return h.Sum()
}

// Note holds the speaker notes of a slide.
type Note struct {
	shape.Tree

	slide *Slide
}

// Slide returns the slide the note belongs to.
func (n *Note) Slide() *Slide {
	return n.slide
}

// Digest implements the [slides.Hashable] interface.
func (n *Note) Digest() slides.Digest {
	h := slides.NewHasher(magicNote)
	h.Child(&n.Tree)
	return h.Sum()
}
