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
	"fmt"
	"io"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// frameStyle is the automatic graphic style of a shape.  Text boxes carry
// their text frame settings in the same style.
type frameStyle struct {
	graphic style.Graphic

	text    bool
	anchor  shape.Anchor
	insets  shape.Insets
	wrap    bool
	autoFit shape.AutoFit
	columns int
}

func frameStyleOf(s shape.Shape) frameStyle {
	fs := frameStyle{graphic: s.Common().Graphic()}
	if t, ok := s.(*shape.RichText); ok {
		fs.text = true
		fs.anchor = t.Anchor()
		fs.insets = t.Insets()
		fs.wrap = t.Wrap()
		fs.autoFit = t.AutoFit()
		fs.columns = t.Columns()
	}
	return fs
}

func (fs frameStyle) Digest() slides.Digest {
	h := slides.NewHasher(magicFrame)
	h.Child(fs.graphic)
	h.Bool(fs.text)
	if fs.text {
		h.Uint(uint64(fs.anchor))
		h.Int(int64(fs.insets.Left))
		h.Int(int64(fs.insets.Top))
		h.Int(int64(fs.insets.Right))
		h.Int(int64(fs.insets.Bottom))
		h.Bool(fs.wrap)
		h.Uint(uint64(fs.autoFit))
		h.Int(int64(fs.columns))
	}
	return h.Sum()
}

type cellStyle struct {
	style  style.Cell
	anchor shape.Anchor
}

func (cs cellStyle) Digest() slides.Digest {
	h := slides.NewHasher(magicCell)
	h.Child(cs.style)
	h.Uint(uint64(cs.anchor))
	return h.Sum()
}

type columnStyle slides.EMU

func (c columnStyle) Digest() slides.Digest {
	h := slides.NewHasher(magicColumn)
	h.Int(int64(c))
	return h.Sum()
}

type rowStyle slides.EMU

func (r rowStyle) Digest() slides.Digest {
	h := slides.NewHasher(magicRow)
	h.Int(int64(r))
	return h.Sum()
}

// pageStyle is the automatic drawing-page style of a slide.
type pageStyle struct {
	fill   style.Fill
	hidden bool
}

func (ps pageStyle) Digest() slides.Digest {
	h := slides.NewHasher(magicPage)
	h.Child(ps.fill)
	h.Bool(ps.hidden)
	return h.Sum()
}

func (ps pageStyle) isDefault() bool {
	return ps.fill.IsNone() && !ps.hidden
}

const (
	magicFrame  uint32 = 0x0d9f_0001
	magicCell   uint32 = 0x0d9f_0002
	magicColumn uint32 = 0x0d9f_0003
	magicRow    uint32 = 0x0d9f_0004
	magicPage   uint32 = 0x0d9f_0005
)

// masterPage is written for every slide layout.
type masterPage struct {
	name   string
	master *document.SlideMaster
	layout *document.SlideLayout
}

func (mp *masterPage) displayName() string {
	return mp.master.Name() + " - " + mp.layout.Name()
}

func (mp *masterPage) background() style.Fill {
	if bg := mp.layout.Background(); !bg.IsNone() {
		return bg
	}
	return mp.master.Background()
}

type page struct {
	s    *document.Slide
	name string
}

// plan holds the automatic styles and page names of one export.
type plan struct {
	job *export.Job

	frames  *slides.Table[frameStyle]
	cells   *slides.Table[cellStyle]
	columns *slides.Table[columnStyle]
	rows    *slides.Table[rowStyle]
	pages   *slides.Table[pageStyle]

	masterPages []*masterPage
	masterOf    map[*document.SlideLayout]*masterPage
	slides      []*page
}

func newPlan(job *export.Job) (*plan, error) {
	doc := job.Doc
	p := &plan{
		job:      job,
		frames:   slides.NewTable[frameStyle](),
		cells:    slides.NewTable[cellStyle](),
		columns:  slides.NewTable[columnStyle](),
		rows:     slides.NewTable[rowStyle](),
		pages:    slides.NewTable[pageStyle](),
		masterOf: make(map[*document.SlideLayout]*masterPage),
	}

	for _, m := range doc.Masters() {
		for _, l := range m.Layouts() {
			mp := &masterPage{
				name:   fmt.Sprintf("M%d", len(p.masterPages)),
				master: m,
				layout: l,
			}
			p.masterPages = append(p.masterPages, mp)
			p.masterOf[l] = mp
		}
	}
	if len(p.masterPages) == 0 {
		return nil, job.Unsupported("", "presentation without slide layout")
	}

	used := make(map[string]bool)
	for i, s := range doc.Slides() {
		if _, ok := p.masterOf[s.Layout()]; !ok {
			return nil, fmt.Errorf("slide %d: layout %q not found", i+1, s.Layout().Name())
		}
		name := s.Name()
		for n := i + 1; name == "" || used[name]; n++ {
			name = fmt.Sprintf("page%d", n)
		}
		used[name] = true
		p.slides = append(p.slides, &page{s: s, name: name})

		if ps := slidePageStyle(s); !ps.isDefault() {
			p.pages.Intern(ps)
		}
	}

	err := doc.Walk(&document.Visitor{
		Shape: func(_ shape.Container, s shape.Shape, _ int) error {
			return p.addShape(s)
		},
	})
	if err != nil {
		return nil, err
	}

	p.frames.Freeze()
	p.cells.Freeze()
	p.columns.Freeze()
	p.rows.Freeze()
	p.pages.Freeze()
	return p, nil
}

func slidePageStyle(s *document.Slide) pageStyle {
	return pageStyle{fill: s.Background(), hidden: s.Hidden()}
}

func (p *plan) addShape(s shape.Shape) error {
	switch s := s.(type) {
	case *shape.Chart:
		return p.job.Unsupported(shape.Label(s), "charts")
	case *shape.Group:
		// groups have no style of their own
	case *shape.Table:
		p.frames.Intern(frameStyleOf(s))
		for _, w := range s.ColumnWidths() {
			p.columns.Intern(columnStyle(w))
		}
		for _, h := range s.RowHeights() {
			p.rows.Intern(rowStyle(h))
		}
		covered := s.Covered()
		for r := range s.NumRows() {
			for c := range s.NumColumns() {
				if !covered[r][c] {
					cell := s.Cell(r, c)
					p.cells.Intern(cellStyle{style: cell.Style, anchor: cell.Anchor})
				}
			}
		}
	default:
		p.frames.Intern(frameStyleOf(s))
	}
	return nil
}

func picturePath(b *media.Blob) string {
	return picturesDir + b.Name()
}

func fontPath(f *media.FontFile) string {
	return fontsDir + f.Blob.Name()
}

// Parts implements the [export.Plan] interface.
func (p *plan) Parts() []export.PartWriter {
	parts := []export.PartWriter{
		export.NewPart(export.PartInfo{Path: mimetypePath, ContentType: MIMEType, Stored: true},
			func(w io.Writer, _ *export.Job) error {
				_, err := io.WriteString(w, MIMEType)
				return err
			}),
		export.NewPart(export.PartInfo{Path: contentPath, ContentType: ctXML}, p.writeContent),
		export.NewPart(export.PartInfo{Path: stylesPath, ContentType: ctXML}, p.writeStyles),
		export.NewPart(export.PartInfo{Path: metaPath, ContentType: ctXML}, p.writeMeta),
	}
	for _, b := range p.job.Res.Media.All() {
		info := export.PartInfo{
			Path:        picturePath(b),
			ContentType: b.MIME,
			Stored:      b.MIME == media.PNG || b.MIME == media.JPEG || b.MIME == media.GIF,
		}
		parts = append(parts, blobPart(info, b))
	}
	for _, f := range p.job.Res.EmbeddedFonts.All() {
		info := export.PartInfo{Path: fontPath(f), ContentType: f.Blob.MIME}
		parts = append(parts, blobPart(info, f.Blob))
	}
	return parts
}

func blobPart(info export.PartInfo, b *media.Blob) export.PartWriter {
	return export.NewPart(info, func(w io.Writer, _ *export.Job) error {
		_, err := w.Write(b.Data)
		return err
	})
}

// Manifest implements the [export.Plan] interface.  The manifest lists
// every part except the mimetype part and the manifest itself.
func (p *plan) Manifest(written []export.PartInfo) export.PartWriter {
	info := export.PartInfo{Path: manifestPath, ContentType: ctXML}
	return export.NewPart(info, func(w io.Writer, _ *export.Job) error {
		x := xmlw.New(w, true)
		x.Start("manifest:manifest",
			xmlw.A("xmlns:manifest", nsManifest),
			xmlw.A("manifest:version", odfVersion))
		x.Empty("manifest:file-entry",
			xmlw.A("manifest:full-path", "/"),
			xmlw.A("manifest:version", odfVersion),
			xmlw.A("manifest:media-type", MIMEType))
		for _, pi := range written {
			if pi.Path == mimetypePath || pi.Path == manifestPath {
				continue
			}
			x.Empty("manifest:file-entry",
				xmlw.A("manifest:full-path", pi.Path),
				xmlw.A("manifest:media-type", pi.ContentType))
		}
		x.End()
		return x.Close()
	})
}
