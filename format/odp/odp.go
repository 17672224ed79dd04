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

// Package odp writes presentations as OpenDocument presentation packages,
// the format used by LibreOffice Impress.
//
// Slide layouts have no direct counterpart in OpenDocument: every layout
// is written as a master page, which carries the shapes of the slide
// master followed by the shapes of the layout.  Charts are not supported.
package odp

import (
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/media"
)

// MIMEType is the media type of OpenDocument presentations.  It is stored
// in the "mimetype" part at the start of the package.
const MIMEType = "application/vnd.oasis.opendocument.presentation"

// Format implements [export.Format] for OpenDocument presentations.
type Format struct{}

var _ export.Format = (*Format)(nil)

// New returns the OpenDocument presentation format.
func New() *Format {
	return &Format{}
}

// Name implements the [export.Format] interface.
func (*Format) Name() string {
	return "odp"
}

// Extension implements the [export.Format] interface.
func (*Format) Extension() string {
	return ".odp"
}

var policy = media.Policy{media.PNG, media.JPEG, media.GIF, media.BMP, media.SVG}

// MediaPolicy implements the [export.Format] interface.
func (*Format) MediaPolicy() media.Policy {
	return policy
}

// Plan implements the [export.Format] interface.
func (f *Format) Plan(job *export.Job) (export.Plan, error) {
	return newPlan(job)
}

const odfVersion = "1.3"

// XML namespaces.
const (
	nsOffice       = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsStyle        = "urn:oasis:names:tc:opendocument:xmlns:style:1.0"
	nsText         = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsTable        = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsDraw         = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
	nsFO           = "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
	nsXLink        = "http://www.w3.org/1999/xlink"
	nsDC           = "http://purl.org/dc/elements/1.1/"
	nsMeta         = "urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
	nsPresentation = "urn:oasis:names:tc:opendocument:xmlns:presentation:1.0"
	nsSVG          = "urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
	nsManifest     = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
)

// Part paths.
const (
	mimetypePath = "mimetype"
	contentPath  = "content.xml"
	stylesPath   = "styles.xml"
	metaPath     = "meta.xml"
	manifestPath = "META-INF/manifest.xml"
	picturesDir  = "Pictures/"
	fontsDir     = "Fonts/"
)

const ctXML = "text/xml"
