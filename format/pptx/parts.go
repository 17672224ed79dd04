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

package pptx

import (
	"io"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// Producer is written into the application properties.
const Producer = "seehuhn.de/go/slides"

// The size of the notes pages.
const notesWidth, notesHeight = 6858000, 9144000

func pmlRoot(x *xmlw.Writer, name string, attrs ...xmlw.Attr) {
	ns := []xmlw.Attr{
		xmlw.A("xmlns:a", nsA),
		xmlw.A("xmlns:r", nsR),
		xmlw.A("xmlns:p", nsP),
	}
	x.Start(name, append(ns, attrs...)...)
}

func (p *plan) writePresentation(w io.Writer, _ *export.Job) error {
	doc := p.job.Doc
	pres := p.rels.For(presPath)
	x := xmlw.New(w, true)
	pmlRoot(x, "p:presentation", xmlw.A("saveSubsetFonts", 1))

	x.Start("p:sldMasterIdLst")
	for _, mp := range p.masters {
		x.Empty("p:sldMasterId",
			xmlw.A("id", int64(mp.id)),
			xmlw.A("r:id", pres.ID(relSlideMaster, mp.path, false)))
	}
	x.End()
	if p.notesMaster != "" {
		x.Start("p:notesMasterIdLst")
		x.Empty("p:notesMasterId", xmlw.A("r:id", pres.ID(relNotesMaster, p.notesMaster, false)))
		x.End()
	}
	if len(p.slides) > 0 {
		x.Start("p:sldIdLst")
		for i, sp := range p.slides {
			x.Empty("p:sldId",
				xmlw.A("id", firstSlideID+i),
				xmlw.A("r:id", pres.ID(relSlide, sp.path, false)))
		}
		x.End()
	}

	size := []xmlw.Attr{
		xmlw.A("cx", int64(doc.Size.Width)),
		xmlw.A("cy", int64(doc.Size.Height)),
	}
	if sizeTypes[doc.Size.Name] {
		size = append(size, xmlw.A("type", doc.Size.Name))
	}
	x.Empty("p:sldSz", size...)
	x.Empty("p:notesSz", xmlw.A("cx", notesWidth), xmlw.A("cy", notesHeight))
	x.End()
	return x.Close()
}

// sizeTypes lists the names of the preset slide sizes which are valid
// values for the type attribute of p:sldSz.
var sizeTypes = map[string]bool{
	document.Screen4x3.Name:   true,
	document.Screen16x9.Name:  true,
	document.Screen16x10.Name: true,
	document.A4.Name:          true,
	document.Letter.Name:      true,
}

func w3cdtf(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func (p *plan) writeCore(w io.Writer, _ *export.Job) error {
	props := &p.job.Doc.Properties
	x := xmlw.New(w, true)
	x.Start("cp:coreProperties",
		xmlw.A("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"),
		xmlw.A("xmlns:dc", "http://purl.org/dc/elements/1.1/"),
		xmlw.A("xmlns:dcterms", "http://purl.org/dc/terms/"),
		xmlw.A("xmlns:dcmitype", "http://purl.org/dc/dcmitype/"),
		xmlw.A("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"))
	opt := func(name, value string) {
		if value != "" {
			x.Elem(name, value)
		}
	}
	opt("dc:title", props.Title)
	opt("dc:subject", props.Subject)
	opt("dc:creator", props.Creator)
	opt("cp:keywords", strings.Join(props.Keywords, ", "))
	opt("dc:description", props.Description)
	opt("cp:lastModifiedBy", props.LastModifiedBy)
	if props.Revision > 0 {
		x.Elem("cp:revision", strconv.Itoa(props.Revision))
	}
	if !props.Created.IsZero() {
		x.Elem("dcterms:created", w3cdtf(props.Created), xmlw.A("xsi:type", "dcterms:W3CDTF"))
	}
	if !props.Modified.IsZero() {
		x.Elem("dcterms:modified", w3cdtf(props.Modified), xmlw.A("xsi:type", "dcterms:W3CDTF"))
	}
	opt("cp:category", props.Category)
	x.End()
	return x.Close()
}

func (p *plan) writeApp(w io.Writer, _ *export.Job) error {
	doc := p.job.Doc
	notes, hidden := 0, 0
	for _, s := range doc.Slides() {
		if s.Note() != nil {
			notes++
		}
		if s.Hidden() {
			hidden++
		}
	}

	x := xmlw.New(w, true)
	x.Start("Properties",
		xmlw.A("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"),
		xmlw.A("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"))
	x.Elem("Application", Producer)
	x.Elem("Slides", strconv.Itoa(doc.NumSlides()))
	x.Elem("Notes", strconv.Itoa(notes))
	x.Elem("HiddenSlides", strconv.Itoa(hidden))
	if doc.Properties.Company != "" {
		x.Elem("Company", doc.Properties.Company)
	}
	x.End()
	return x.Close()
}

func writePresProps(w io.Writer, _ *export.Job) error {
	x := xmlw.New(w, true)
	pmlRoot(x, "p:presentationPr")
	x.End()
	return x.Close()
}

func writeViewProps(w io.Writer, _ *export.Job) error {
	x := xmlw.New(w, true)
	pmlRoot(x, "p:viewPr")
	x.Empty("p:gridSpacing", xmlw.A("cx", 76200), xmlw.A("cy", 76200))
	x.End()
	return x.Close()
}

// The id of the "Medium Style 2 - Accent 1" table style.
const defaultTableStyle = "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"

func writeTableStyles(w io.Writer, _ *export.Job) error {
	x := xmlw.New(w, true)
	x.Empty("a:tblStyleLst", xmlw.A("xmlns:a", nsA), xmlw.A("def", defaultTableStyle))
	return x.Close()
}

// masterColorMap maps the theme colors to the color roles used on slides.
var masterColorMap = []xmlw.Attr{
	xmlw.A("bg1", "lt1"),
	xmlw.A("tx1", "dk1"),
	xmlw.A("bg2", "lt2"),
	xmlw.A("tx2", "dk2"),
	xmlw.A("accent1", "accent1"),
	xmlw.A("accent2", "accent2"),
	xmlw.A("accent3", "accent3"),
	xmlw.A("accent4", "accent4"),
	xmlw.A("accent5", "accent5"),
	xmlw.A("accent6", "accent6"),
	xmlw.A("hlink", "hlink"),
	xmlw.A("folHlink", "folHlink"),
}

func (p *plan) masterWriter(mp *masterPart) func(io.Writer, *export.Job) error {
	return func(w io.Writer, _ *export.Job) error {
		x := xmlw.New(w, true)
		d := p.newDML(x, mp.path)
		pmlRoot(x, "p:sldMaster")
		if err := d.commonSlideData(mp.m.Name(), mp.m.Background(), &mp.m.Tree); err != nil {
			return err
		}
		x.Empty("p:clrMap", masterColorMap...)
		x.Start("p:sldLayoutIdLst")
		rels := p.rels.For(mp.path)
		for _, lp := range mp.layouts {
			x.Empty("p:sldLayoutId",
				xmlw.A("id", int64(lp.id)),
				xmlw.A("r:id", rels.ID(relSlideLayout, lp.path, false)))
		}
		x.End()
		x.End()
		return x.Close()
	}
}

func (p *plan) layoutWriter(lp *layoutPart) func(io.Writer, *export.Job) error {
	return func(w io.Writer, _ *export.Job) error {
		x := xmlw.New(w, true)
		d := p.newDML(x, lp.path)
		pmlRoot(x, "p:sldLayout", xmlw.A("preserve", 1))
		if err := d.commonSlideData(lp.l.Name(), lp.l.Background(), &lp.l.Tree); err != nil {
			return err
		}
		masterMapping(x)
		x.End()
		return x.Close()
	}
}

func masterMapping(x *xmlw.Writer) {
	x.Start("p:clrMapOvr")
	x.Empty("a:masterClrMapping")
	x.End()
}

func (p *plan) slideWriter(sp *slidePart) func(io.Writer, *export.Job) error {
	return func(w io.Writer, _ *export.Job) error {
		s := sp.s
		x := xmlw.New(w, true)
		d := p.newDML(x, sp.path)
		if s.Hidden() {
			pmlRoot(x, "p:sld", xmlw.A("show", 0))
		} else {
			pmlRoot(x, "p:sld")
		}
		if err := d.commonSlideData(s.Name(), s.Background(), &s.Tree); err != nil {
			return err
		}
		masterMapping(x)
		x.End()
		return x.Close()
	}
}

func (p *plan) writeNotesMaster(w io.Writer, _ *export.Job) error {
	x := xmlw.New(w, true)
	d := p.newDML(x, p.notesMaster)
	pmlRoot(x, "p:notesMaster")
	if err := d.commonSlideData("", style.Fill{}, &shape.Tree{}); err != nil {
		return err
	}
	x.Empty("p:clrMap", masterColorMap...)
	x.End()
	return x.Close()
}

func (p *plan) notesWriter(sp *slidePart) func(io.Writer, *export.Job) error {
	return func(w io.Writer, _ *export.Job) error {
		x := xmlw.New(w, true)
		d := p.newDML(x, sp.notes)
		pmlRoot(x, "p:notes")
		if err := d.commonSlideData("", style.Fill{}, &sp.s.Note().Tree); err != nil {
			return err
		}
		masterMapping(x)
		x.End()
		return x.Close()
	}
}
