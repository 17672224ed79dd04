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

// SlideMaster defines the common look of a set of layouts.
// Shapes on the master are shown on every slide which uses one of its
// layouts.
type SlideMaster struct {
	shape.Tree

	name       string
	background style.Fill
	layouts    []*SlideLayout
	pres       *Presentation
}

// Name returns the name of the master.
func (m *SlideMaster) Name() string {
	return m.name
}

// SetName changes the name of the master.
func (m *SlideMaster) SetName(name string) {
	m.name = name
}

// Background returns the background fill of the master.
func (m *SlideMaster) Background() style.Fill {
	return m.background
}

// SetBackground sets the background fill of the master.
func (m *SlideMaster) SetBackground(f style.Fill) {
	m.background = f
}

// Presentation returns the presentation which owns the master.
func (m *SlideMaster) Presentation() *Presentation {
	return m.pres
}

// Layouts returns the layouts of the master.
func (m *SlideMaster) Layouts() []*SlideLayout {
	return slices.Clone(m.layouts)
}

// Layout returns the layout with the given name, or nil.
func (m *SlideMaster) Layout(name string) *SlideLayout {
	for _, l := range m.layouts {
		if l.name == name {
			return l
		}
	}
	return nil
}

// CreateLayout adds a new layout to the master.
func (m *SlideMaster) CreateLayout(name string) *SlideLayout {
	l := &SlideLayout{name: name, master: m}
	m.layouts = append(m.layouts, l)
	return l
}

// Digest implements the [slides.Hashable] interface.
func (m *SlideMaster) Digest() slides.Digest {
	h := slides.NewHasher(magicMaster)
	h.String(m.name)
	h.Child(m.background)
	h.Child(&m.Tree)
	h.Uint(uint64(len(m.layouts)))
	for _, l := range m.layouts {
		h.Child(l)
	}
	return h.Sum()
}

// SlideLayout is a template for slides.
type SlideLayout struct {
	shape.Tree

	name       string
	background style.Fill
	master     *SlideMaster
}

// Name returns the name of the layout.
func (l *SlideLayout) Name() string {
	return l.name
}

// SetName changes the name of the layout.
func (l *SlideLayout) SetName(name string) {
	l.name = name
}

// Background returns the background fill of the layout.  If no fill is
// set, the background of the master is used.
func (l *SlideLayout) Background() style.Fill {
	return l.background
}

// SetBackground sets the background fill of the layout.
func (l *SlideLayout) SetBackground(f style.Fill) {
	l.background = f
}

// Master returns the master of the layout.
func (l *SlideLayout) Master() *SlideMaster {
	return l.master
}

// Digest implements the [slides.Hashable] interface.
func (l *SlideLayout) Digest() slides.Digest {
	h := slides.NewHasher(magicLayout)
	h.String(l.name)
	h.Child(l.background)
	h.Child(&l.Tree)
	return h.Sum()
}
