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

package export

import (
	"fmt"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// collect walks the document graph and fills the resource tables.
// The first error stops the walk.
func collect(job *Job) error {
	res := job.Res
	err := job.Doc.Walk(&document.Visitor{
		Master: func(m *document.SlideMaster) error {
			internBackground(res, m.Background())
			return nil
		},
		Layout: func(l *document.SlideLayout) error {
			internBackground(res, l.Background())
			return nil
		},
		Slide: func(s *document.Slide) error {
			internBackground(res, s.Background())
			return nil
		},
		Shape: func(owner shape.Container, s shape.Shape, depth int) error {
			for _, ref := range s.StyleObjects() {
				res.Intern(ref)
			}
			if d, ok := s.(*shape.Drawing); ok {
				return collectMedia(job, d)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	for _, src := range job.Doc.Fonts() {
		font, err := media.LoadFont(src)
		if err != nil {
			return fmt.Errorf("embedded font %s: %w", src, err)
		}
		res.EmbeddedFonts.Intern(font)
	}
	return nil
}

func internBackground(res *Resources, f style.Fill) {
	if !f.IsNone() {
		res.Backgrounds.Intern(f)
		res.Fills.Intern(f)
	}
}

// collectMedia loads the image of a drawing and checks its type.  Each
// source is only loaded once per export.
func collectMedia(job *Job, d *shape.Drawing) error {
	res := job.Res
	src := d.Source()
	if _, seen := res.bySource[src.Digest()]; seen {
		return nil
	}

	blob, err := src.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", shape.Label(d), err)
	}
	if !job.Format.MediaPolicy().Allows(blob.MIME) {
		return &slides.UnauthorizedResourceTypeError{
			Format: job.Format.Name(),
			MIME:   blob.MIME,
			Source: src.String(),
		}
	}
	res.addBlob(src, blob)
	return nil
}
