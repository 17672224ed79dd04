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
	"io"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/opc"
)

// PartInfo describes one part of a package.
type PartInfo = opc.PartInfo

// PartWriter renders one part of a package.
//
// Render must not change the document or the resource tables, and must
// produce the same output every time it is called for the same job.
type PartWriter interface {
	Info() PartInfo
	Render(w io.Writer, job *Job) error
}

// NewPart returns a PartWriter which calls render.
func NewPart(info PartInfo, render func(w io.Writer, job *Job) error) PartWriter {
	return &funcPart{info: info, render: render}
}

type funcPart struct {
	info   PartInfo
	render func(io.Writer, *Job) error
}

func (p *funcPart) Info() PartInfo {
	return p.info
}

func (p *funcPart) Render(w io.Writer, job *Job) error {
	return p.render(w, job)
}

// Job holds the state of one export.
type Job struct {
	Doc     *document.Presentation
	Format  Format
	Res     *Resources
	Options *Options
	Log     *logrus.Entry

	// Digest is the digest of the document at the start of the export.
	Digest slides.Digest
}

// Unsupported returns the error reported when a part writer cannot express
// a feature.  Label identifies the shape, or is empty.
func (job *Job) Unsupported(label, feature string) error {
	return &slides.UnsupportedFeatureError{
		Format:  job.Format.Name(),
		Shape:   label,
		Feature: feature,
	}
}
