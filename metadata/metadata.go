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

// Package metadata builds XMP packets describing a presentation.
package metadata

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/slides/document"
)

// PartName is the path of the XMP part inside a package.
const PartName = "metadata.xmp"

// ContentType is the media type of the XMP part.
const ContentType = "application/rdf+xml"

// Slides is the XMP namespace for presentation specific properties.
type Slides struct {
	_        xmp.Namespace `xmp:"http://ns.seehuhn.de/slides/1.0/"`
	_        xmp.Prefix    `xmp:"slides"`
	Keywords xmp.Text
	Category xmp.Text
	Company  xmp.Text
	Producer xmp.AgentName
}

// Producer is recorded as the producing application.
const Producer = "seehuhn.de/go/slides"

// DublinCore returns the Dublin Core properties of the presentation.
func DublinCore(p *document.Properties) *xmp.DublinCore {
	dc := &xmp.DublinCore{}
	if p.Title != "" {
		dc.Title.Set(language.Und, p.Title)
	}
	if p.Creator != "" {
		dc.Creator.Append(xmp.NewProperName(p.Creator))
	}
	if p.Description != "" {
		dc.Description.Set(language.Und, p.Description)
	}
	return dc
}

// NewPacket returns the XMP packet for a presentation.
func NewPacket(doc *document.Presentation) (*xmp.Packet, error) {
	p := &doc.Properties

	basic := &xmp.Basic{}
	if !p.Created.IsZero() {
		basic.CreateDate = xmp.NewDate(p.Created)
	}
	if !p.Modified.IsZero() {
		basic.ModifyDate = xmp.NewDate(p.Modified)
	}

	info := &Slides{
		Producer: xmp.NewAgentName(Producer),
	}
	if len(p.Keywords) > 0 {
		info.Keywords = xmp.NewText(strings.Join(p.Keywords, ", "))
	}
	if p.Category != "" {
		info.Category = xmp.NewText(p.Category)
	}
	if p.Company != "" {
		info.Company = xmp.NewText(p.Company)
	}

	packet := xmp.NewPacket()
	err := packet.Set(DublinCore(p), basic, info)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// Write writes the XMP packet for a presentation to w.
func Write(w io.Writer, doc *document.Presentation) error {
	packet, err := NewPacket(doc)
	if err != nil {
		return err
	}
	return packet.Write(w, &xmp.PacketOptions{Pretty: true})
}
