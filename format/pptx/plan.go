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
	"fmt"
	"io"

	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/opc"
	"seehuhn.de/go/slides/shape"
)

const (
	presPath        = "ppt/presentation.xml"
	corePath        = "docProps/core.xml"
	appPath         = "docProps/app.xml"
	presPropsPath   = "ppt/presProps.xml"
	viewPropsPath   = "ppt/viewProps.xml"
	tableStylesPath = "ppt/tableStyles.xml"
	typesPath       = "[Content_Types].xml"
)

// Ids of masters and layouts must not be smaller than this value.
const firstMasterID = 2147483648

// Slide ids start here.
const firstSlideID = 256

type masterPart struct {
	m       *document.SlideMaster
	path    string
	theme   string
	id      uint32
	layouts []*layoutPart
}

type layoutPart struct {
	l    *document.SlideLayout
	path string
	id   uint32
}

type slidePart struct {
	s     *document.Slide
	path  string
	notes string
}

type chartPart struct {
	c    *shape.Chart
	path string
}

// plan holds the part paths of one export.
type plan struct {
	job  *export.Job
	rels *opc.Relationships

	masters     []*masterPart
	layouts     map[*document.SlideLayout]*layoutPart
	slides      []*slidePart
	notesMaster string
	notesTheme  string
	charts      []*chartPart
	chartPath   map[*shape.Chart]string
}

func newPlan(job *export.Job) (*plan, error) {
	doc := job.Doc
	if len(doc.Masters()) == 0 {
		return nil, job.Unsupported("", "presentation without slide master")
	}

	p := &plan{
		job:       job,
		rels:      job.Res.Rels,
		layouts:   make(map[*document.SlideLayout]*layoutPart),
		chartPath: make(map[*shape.Chart]string),
	}

	pkg := p.rels.For("")
	pkg.Add(relOfficeDocument, presPath, false)
	pkg.Add(relCore, corePath, false)
	pkg.Add(relExtended, appPath, false)

	pres := p.rels.For(presPath)
	id := uint32(firstMasterID)
	numLayouts := 0
	for i, m := range doc.Masters() {
		mp := &masterPart{
			m:     m,
			path:  fmt.Sprintf("ppt/slideMasters/slideMaster%d.xml", i+1),
			theme: fmt.Sprintf("ppt/theme/theme%d.xml", i+1),
			id:    id,
		}
		id++
		pres.Add(relSlideMaster, mp.path, false)
		mr := p.rels.For(mp.path)
		for _, l := range m.Layouts() {
			numLayouts++
			lp := &layoutPart{
				l:    l,
				path: fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", numLayouts),
				id:   id,
			}
			id++
			mr.Add(relSlideLayout, lp.path, false)
			p.rels.For(lp.path).Add(relSlideMaster, mp.path, false)
			mp.layouts = append(mp.layouts, lp)
			p.layouts[l] = lp
		}
		mr.Add(relTheme, mp.theme, false)
		p.masters = append(p.masters, mp)
	}

	numNotes := 0
	for i, s := range doc.Slides() {
		sp := &slidePart{
			s:    s,
			path: fmt.Sprintf("ppt/slides/slide%d.xml", i+1),
		}
		if s.Note() != nil {
			numNotes++
			sp.notes = fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", numNotes)
		}
		p.slides = append(p.slides, sp)
	}
	if numNotes > 0 {
		p.notesMaster = "ppt/notesMasters/notesMaster1.xml"
		p.notesTheme = fmt.Sprintf("ppt/theme/theme%d.xml", len(p.masters)+1)
		pres.Add(relNotesMaster, p.notesMaster, false)
		p.rels.For(p.notesMaster).Add(relTheme, p.notesTheme, false)
	}

	for _, sp := range p.slides {
		pres.Add(relSlide, sp.path, false)
		lp, ok := p.layouts[sp.s.Layout()]
		if !ok {
			return nil, fmt.Errorf("slide %d: layout %q not found", sp.s.Index()+1, sp.s.Layout().Name())
		}
		sr := p.rels.For(sp.path)
		sr.Add(relSlideLayout, lp.path, false)
		if sp.notes != "" {
			sr.Add(relNotesSlide, sp.notes, false)
			nr := p.rels.For(sp.notes)
			nr.Add(relNotesMaster, p.notesMaster, false)
			nr.Add(relSlide, sp.path, false)
		}
	}
	pres.Add(relPresProps, presPropsPath, false)
	pres.Add(relViewProps, viewPropsPath, false)
	pres.Add(relTheme, p.masters[0].theme, false)
	pres.Add(relTableStyles, tableStylesPath, false)

	for _, mp := range p.masters {
		p.addShapeRels(mp.path, mp.m)
		for _, lp := range mp.layouts {
			p.addShapeRels(lp.path, lp.l)
		}
	}
	for _, sp := range p.slides {
		p.addShapeRels(sp.path, sp.s)
		if sp.notes != "" {
			p.addShapeRels(sp.notes, sp.s.Note())
		}
	}

	return p, nil
}

// addShapeRels registers the relationships needed by the shapes in c.
func (p *plan) addShapeRels(part string, c shape.Container) {
	rt := p.rels.For(part)
	shape.Walk(c.ShapeTree().Shapes(), func(s shape.Shape, _ int) error {
		if l := s.Common().Link(); l != nil && l.URL != "" {
			rt.Add(relHyperlink, l.URL, true)
		}
		switch s := s.(type) {
		case *shape.RichText:
			addRunLinks(rt, s.Paragraphs())
		case *shape.Table:
			covered := s.Covered()
			for r := range s.NumRows() {
				for c := range s.NumColumns() {
					if !covered[r][c] {
						addRunLinks(rt, s.Cell(r, c).Paragraphs)
					}
				}
			}
		case *shape.Drawing:
			b := p.job.Res.Blob(s.Source())
			rt.Add(relImage, mediaPath(b), false)
		case *shape.Chart:
			path, ok := p.chartPath[s]
			if !ok {
				path = fmt.Sprintf("ppt/charts/chart%d.xml", len(p.charts)+1)
				p.chartPath[s] = path
				p.charts = append(p.charts, &chartPart{c: s, path: path})
			}
			rt.Add(relChart, path, false)
		}
		return nil
	})
}

func addRunLinks(rt *opc.RelTable, pp []shape.Paragraph) {
	for _, para := range pp {
		for _, run := range para.Runs {
			if run.Link != nil && run.Link.URL != "" {
				rt.Add(relHyperlink, run.Link.URL, true)
			}
		}
	}
}

func mediaPath(b *media.Blob) string {
	return "ppt/media/" + b.Name()
}

// Parts implements the [export.Plan] interface.
func (p *plan) Parts() []export.PartWriter {
	var parts []export.PartWriter
	add := func(path, contentType string, render func(io.Writer, *export.Job) error) {
		info := export.PartInfo{Path: path, ContentType: contentType}
		parts = append(parts, export.NewPart(info, render))
		if p.rels.Has(path) {
			parts = append(parts, p.relsPart(path))
		}
	}

	parts = append(parts, p.relsPart(""))
	add(corePath, ctCore, p.writeCore)
	add(appPath, ctExtended, p.writeApp)
	add(presPath, ctPresentation, p.writePresentation)
	add(presPropsPath, ctPresProps, writePresProps)
	add(viewPropsPath, ctViewProps, writeViewProps)
	add(tableStylesPath, ctTableStyles, writeTableStyles)
	for _, mp := range p.masters {
		add(mp.theme, ctTheme, themeWriter(mp.m.Name()))
		add(mp.path, ctSlideMaster, p.masterWriter(mp))
		for _, lp := range mp.layouts {
			add(lp.path, ctSlideLayout, p.layoutWriter(lp))
		}
	}
	if p.notesMaster != "" {
		add(p.notesTheme, ctTheme, themeWriter("Notes Theme"))
		add(p.notesMaster, ctNotesMaster, p.writeNotesMaster)
	}
	for _, sp := range p.slides {
		add(sp.path, ctSlide, p.slideWriter(sp))
		if sp.notes != "" {
			add(sp.notes, ctNotesSlide, p.notesWriter(sp))
		}
	}
	for _, cp := range p.charts {
		add(cp.path, ctChart, p.chartWriter(cp))
	}
	for _, b := range p.job.Res.Media.All() {
		info := export.PartInfo{
			Path:        mediaPath(b),
			ContentType: b.MIME,
			Stored:      compressed(b.MIME),
		}
		parts = append(parts, export.NewPart(info, func(w io.Writer, _ *export.Job) error {
			_, err := w.Write(b.Data)
			return err
		}))
	}
	return parts
}

func (p *plan) relsPart(source string) export.PartWriter {
	info := export.PartInfo{Path: opc.RelsPath(source), ContentType: ctRels}
	return export.NewPart(info, func(w io.Writer, _ *export.Job) error {
		return p.rels.For(source).WriteXML(w)
	})
}

// compressed reports whether data of the given type gains nothing from
// deflate compression.
func compressed(mimeType string) bool {
	switch mimeType {
	case media.PNG, media.JPEG, media.GIF:
		return true
	}
	return false
}

// Manifest implements the [export.Plan] interface.
// The content types part lists a default for every media file extension
// and an override for every other part.
func (p *plan) Manifest(written []export.PartInfo) export.PartWriter {
	info := export.PartInfo{Path: typesPath, ContentType: ctXML}
	return export.NewPart(info, func(w io.Writer, _ *export.Job) error {
		ct := opc.NewContentTypes()
		ct.AddDefault("rels", ctRels)
		ct.AddDefault("xml", ctXML)
		for _, pi := range written {
			if _, ok := ct.Resolve(pi.Path); !ok && opc.Ext(pi.Path) != "" {
				ct.AddDefault(opc.Ext(pi.Path), pi.ContentType)
			}
			ct.Add(pi)
		}
		return ct.WriteXML(w)
	})
}
