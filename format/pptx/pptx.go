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

// Package pptx writes presentations as PresentationML packages
// (ECMA-376), the format used by PowerPoint.
//
// Use [New] to obtain the format and register it with an
// [export.Registry].  Embedded font files are not supported.
package pptx

import (
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/media"
)

// Format implements [export.Format] for PresentationML.
type Format struct{}

var _ export.Format = (*Format)(nil)

// New returns the PresentationML format.
func New() *Format {
	return &Format{}
}

// Name implements the [export.Format] interface.
func (*Format) Name() string {
	return "pptx"
}

// Extension implements the [export.Format] interface.
func (*Format) Extension() string {
	return ".pptx"
}

var policy = media.Policy{media.PNG, media.JPEG, media.GIF, media.BMP, media.TIFF, media.SVG}

// MediaPolicy implements the [export.Format] interface.
func (*Format) MediaPolicy() media.Policy {
	return policy
}

// Plan implements the [export.Format] interface.
func (f *Format) Plan(job *export.Job) (export.Plan, error) {
	if job.Res.EmbeddedFonts.Len() > 0 {
		return nil, job.Unsupported("", "embedded fonts")
	}
	return newPlan(job)
}

// XML namespaces.
const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsC = "http://schemas.openxmlformats.org/drawingml/2006/chart"

	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
	uriChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

// Relationship types.
const (
	relBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"

	relOfficeDocument = relBase + "officeDocument"
	relExtended       = relBase + "extended-properties"
	relCore           = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relSlide          = relBase + "slide"
	relSlideLayout    = relBase + "slideLayout"
	relSlideMaster    = relBase + "slideMaster"
	relNotesSlide     = relBase + "notesSlide"
	relNotesMaster    = relBase + "notesMaster"
	relTheme          = relBase + "theme"
	relImage          = relBase + "image"
	relHyperlink      = relBase + "hyperlink"
	relChart          = relBase + "chart"
	relPresProps      = relBase + "presProps"
	relViewProps      = relBase + "viewProps"
	relTableStyles    = relBase + "tableStyles"
)

// Content types.
const (
	ctBase = "application/vnd.openxmlformats-officedocument.presentationml."

	ctPresentation = ctBase + "presentation.main+xml"
	ctSlide        = ctBase + "slide+xml"
	ctSlideLayout  = ctBase + "slideLayout+xml"
	ctSlideMaster  = ctBase + "slideMaster+xml"
	ctNotesSlide   = ctBase + "notesSlide+xml"
	ctNotesMaster  = ctBase + "notesMaster+xml"
	ctPresProps    = ctBase + "presProps+xml"
	ctViewProps    = ctBase + "viewProps+xml"
	ctTableStyles  = ctBase + "tableStyles+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctChart        = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	ctCore         = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtended     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML          = "application/xml"
)
