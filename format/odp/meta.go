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

package odp

import (
	"io"
	"strconv"
	"time"

	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
)

// Generator is written into the document metadata.
const Generator = "seehuhn.de/go/slides"

func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func (p *plan) writeMeta(w io.Writer, job *export.Job) error {
	props := &job.Doc.Properties
	x := xmlw.New(w, true)
	x.Start("office:document-meta",
		xmlw.A("xmlns:office", nsOffice),
		xmlw.A("xmlns:meta", nsMeta),
		xmlw.A("xmlns:dc", nsDC),
		xmlw.A("office:version", odfVersion))
	x.Start("office:meta")
	x.Elem("meta:generator", Generator)
	opt := func(name, value string) {
		if value != "" {
			x.Elem(name, value)
		}
	}
	opt("dc:title", props.Title)
	opt("dc:description", props.Description)
	opt("dc:subject", props.Subject)
	for _, kw := range props.Keywords {
		x.Elem("meta:keyword", kw)
	}
	opt("meta:initial-creator", props.Creator)
	if props.LastModifiedBy != "" {
		x.Elem("dc:creator", props.LastModifiedBy)
	} else {
		opt("dc:creator", props.Creator)
	}
	if !props.Created.IsZero() {
		x.Elem("meta:creation-date", isoDate(props.Created))
	}
	if !props.Modified.IsZero() {
		x.Elem("dc:date", isoDate(props.Modified))
	}
	if props.Revision > 0 {
		x.Elem("meta:editing-cycles", strconv.Itoa(props.Revision))
	}
	if lang := job.Doc.Language; !lang.IsRoot() {
		x.Elem("dc:language", lang.String())
	}
	userDefined := func(name, value string) {
		if value != "" {
			x.Elem("meta:user-defined", value, xmlw.A("meta:name", name))
		}
	}
	userDefined("Category", props.Category)
	userDefined("Company", props.Company)
	x.Empty("meta:document-statistic", xmlw.A("meta:page-count", len(p.slides)))
	x.End()
	x.End()
	return x.Close()
}
