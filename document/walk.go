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
	"seehuhn.de/go/slides/shape"
)

// Visitor holds the callbacks used by [Presentation.Walk].
// Nil callbacks are skipped.
type Visitor struct {
	Master func(*SlideMaster) error
	Layout func(*SlideLayout) error
	Slide  func(*Slide) error
	Note   func(*Note) error

	// Shape is called for every shape, including the members of groups.
	// Owner is the master, layout, slide or note which holds the shape,
	// and depth is the number of enclosing groups.
	Shape func(owner shape.Container, s shape.Shape, depth int) error
}

// Walk visits the document graph in depth-first order: every master
// followed by its layouts, then every slide followed by its note.  The
// shapes of each node are visited directly after the node.
//
// If a callback returns an error, the walk stops and the error is
// returned.
func (p *Presentation) Walk(v *Visitor) error {
	for _, m := range p.masters {
		if err := visit(v.Master, m, v); err != nil {
			return err
		}
		for _, l := range m.layouts {
			if err := visit(v.Layout, l, v); err != nil {
				return err
			}
		}
	}
	for _, s := range p.slides {
		if err := visit(v.Slide, s, v); err != nil {
			return err
		}
		if s.note != nil {
			if err := visit(v.Note, s.note, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func visit[T shape.Container](fn func(T) error, node T, v *Visitor) error {
	if fn != nil {
		if err := fn(node); err != nil {
			return err
		}
	}
	if v.Shape == nil {
		return nil
	}
	return shape.Walk(node.ShapeTree().Shapes(), func(s shape.Shape, depth int) error {
		return v.Shape(node, s, depth)
	})
}
