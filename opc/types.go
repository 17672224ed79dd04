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

package opc

import (
	"encoding/xml"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// ContentTypes maps part paths to media types, using defaults by file
// name extension and overrides for individual parts.
type ContentTypes struct {
	defaults  map[string]string
	overrides map[string]string
}

// NewContentTypes returns an empty content type table.
func NewContentTypes() *ContentTypes {
	return &ContentTypes{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
}

// AddDefault sets the media type for all parts with the given extension.
func (c *ContentTypes) AddDefault(ext, contentType string) {
	c.defaults[strings.ToLower(ext)] = contentType
}

// AddOverride sets the media type of a single part.
func (c *ContentTypes) AddOverride(partPath, contentType string) {
	c.overrides[partPath] = contentType
}

// Add registers the media type of a part.  If there is a default for the
// extension of the part with the same type, nothing is recorded.
// Otherwise an override is added.
func (c *ContentTypes) Add(info PartInfo) {
	if c.defaults[Ext(info.Path)] == info.ContentType {
		return
	}
	c.AddOverride(info.Path, info.ContentType)
}

// Resolve returns the media type of the part at the given path.
func (c *ContentTypes) Resolve(partPath string) (string, bool) {
	if ct, ok := c.overrides[partPath]; ok {
		return ct, true
	}
	ct, ok := c.defaults[Ext(partPath)]
	return ct, ok
}

// Overrides returns the paths which have an override, in sorted order.
func (c *ContentTypes) Overrides() []string {
	keys := maps.Keys(c.overrides)
	slices.Sort(keys)
	return keys
}

type typesXML struct {
	XMLName   xml.Name      `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []defaultXML  `xml:"Default"`
	Overrides []overrideXML `xml:"Override"`
}

type defaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// WriteXML writes the "[Content_Types].xml" part.
// Entries are sorted, so that the output does not depend on the order in
// which types were registered.
func (c *ContentTypes) WriteXML(w io.Writer) error {
	var doc typesXML
	exts := maps.Keys(c.defaults)
	slices.Sort(exts)
	for _, ext := range exts {
		doc.Defaults = append(doc.Defaults, defaultXML{Extension: ext, ContentType: c.defaults[ext]})
	}
	for _, p := range c.Overrides() {
		doc.Overrides = append(doc.Overrides, overrideXML{PartName: "/" + p, ContentType: c.overrides[p]})
	}
	return writeXML(w, doc)
}
