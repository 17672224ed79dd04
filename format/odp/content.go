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
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

func (p *plan) writeContent(w io.Writer, job *export.Job) error {
	x := xmlw.New(w, true)
	odfRoot(x, "office:document-content")

	x.Start("office:automatic-styles")
	p.automaticStyles(x)
	for i, ps := range p.pages.All() {
		p.drawingPageStyle(x, pageName(i), ps)
	}
	x.End()

	x.Start("office:body")
	x.Start("office:presentation")
	d := &drawWriter{Writer: x, plan: p}
	for _, pg := range p.slides {
		s := pg.s
		attrs := []xmlw.Attr{xmlw.A("draw:name", pg.name)}
		if ps := slidePageStyle(s); !ps.isDefault() {
			attrs = append(attrs, xmlw.A("draw:style-name", pageName(p.pages.Index(ps))))
		}
		attrs = append(attrs, xmlw.A("draw:master-page-name", p.masterOf[s.Layout()].name))
		x.Start("draw:page", attrs...)
		if err := d.shapes(s.Shapes()); err != nil {
			return err
		}
		if note := s.Note(); note != nil {
			x.Start("presentation:notes")
			if err := d.shapes(note.Shapes()); err != nil {
				return err
			}
			x.End()
		}
		x.End()
	}
	x.End()
	x.End()

	x.End()
	return x.Close()
}

// drawWriter writes shapes as OpenDocument drawing elements.
type drawWriter struct {
	*xmlw.Writer
	plan *plan
}

func (d *drawWriter) shapes(list []shape.Shape) error {
	for _, s := range list {
		if err := d.shape(s); err != nil {
			return err
		}
	}
	return nil
}

func (d *drawWriter) shape(s shape.Shape) error {
	if link := s.Common().Link(); link != nil && link.URL != "" {
		d.Start("draw:a", linkAttrs(link)...)
		defer d.End()
	}

	switch s := s.(type) {
	case *shape.RichText:
		d.customShape(s)
	case *shape.Line:
		d.line(s)
	case *shape.Table:
		d.table(s)
	case *shape.Drawing:
		d.image(s)
	case *shape.Group:
		d.Start("draw:g", nameAttrs(s)...)
		d.description(s)
		if err := d.shapes(s.Shapes()); err != nil {
			return err
		}
		d.End()
	case *shape.Chart:
		return d.plan.job.Unsupported(shape.Label(s), "charts")
	default:
		return d.plan.job.Unsupported(shape.Label(s), fmt.Sprintf("shape type %T", s))
	}
	return nil
}

func linkAttrs(l *style.Hyperlink) []xmlw.Attr {
	attrs := []xmlw.Attr{
		xmlw.A("xlink:type", "simple"),
		xmlw.A("xlink:href", l.URL),
	}
	if l.Tooltip != "" {
		attrs = append(attrs, xmlw.A("office:title", l.Tooltip))
	}
	return attrs
}

func nameAttrs(s shape.Shape) []xmlw.Attr {
	if name := s.Common().Name(); name != "" {
		return []xmlw.Attr{xmlw.A("draw:name", name)}
	}
	return nil
}

func (d *drawWriter) description(s shape.Shape) {
	if desc := s.Common().Description(); desc != "" {
		d.Elem("svg:desc", desc)
	}
}

// frameAttrs returns the style, name and position of a shape.
func (d *drawWriter) frameAttrs(s shape.Shape) []xmlw.Attr {
	idx := d.plan.frames.Index(frameStyleOf(s))
	attrs := []xmlw.Attr{xmlw.A("draw:style-name", frameName(idx))}
	attrs = append(attrs, nameAttrs(s)...)
	return append(attrs, geometryAttrs(s)...)
}

// geometryAttrs gives the size and position of s.  Rotated shapes are
// positioned with a transformation which rotates around the center of
// the shape.
func geometryAttrs(s shape.Shape) []xmlw.Attr {
	off := shape.Absolute(s)
	ext := s.Extent()
	attrs := []xmlw.Attr{
		xmlw.A("svg:width", ext.CX.CMString()),
		xmlw.A("svg:height", ext.CY.CMString()),
	}
	rot := s.Common().Rotation()
	if rot == 0 {
		return append(attrs,
			xmlw.A("svg:x", off.X.CMString()),
			xmlw.A("svg:y", off.Y.CMString()))
	}

	phi := -rot * math.Pi / 180
	w2, h2 := float64(ext.CX)/2, float64(ext.CY)/2
	cx, cy := float64(off.X)+w2, float64(off.Y)+h2
	tx := cx - (w2*math.Cos(phi) + h2*math.Sin(phi))
	ty := cy - (-w2*math.Sin(phi) + h2*math.Cos(phi))
	transform := fmt.Sprintf("rotate (%s) translate (%s %s)",
		strconv.FormatFloat(phi, 'f', 9, 64),
		slides.EMU(math.Round(tx)).CMString(),
		slides.EMU(math.Round(ty)).CMString())
	return append(attrs, xmlw.A("draw:transform", transform))
}

var geometryTypes = map[shape.Geometry]string{
	shape.GeometryRect:      "rectangle",
	shape.GeometryRoundRect: "round-rectangle",
	shape.GeometryEllipse:   "ellipse",
}

func (d *drawWriter) customShape(t *shape.RichText) {
	d.Start("draw:custom-shape", d.frameAttrs(t)...)
	d.description(t)
	d.paragraphs(t.Paragraphs())
	kind, ok := geometryTypes[t.Geometry()]
	if !ok {
		kind = "rectangle"
	}
	attrs := []xmlw.Attr{
		xmlw.A("svg:viewBox", "0 0 21600 21600"),
		xmlw.A("draw:type", kind),
	}
	flipH, flipV := t.Flip()
	if flipH {
		attrs = append(attrs, xmlw.A("draw:mirror-horizontal", true))
	}
	if flipV {
		attrs = append(attrs, xmlw.A("draw:mirror-vertical", true))
	}
	d.Empty("draw:enhanced-geometry", attrs...)
	d.End()
}

func (d *drawWriter) line(l *shape.Line) {
	p, q := l.Endpoints()
	abs := shape.Absolute(l)
	off := l.Offset()
	dx, dy := abs.X-off.X, abs.Y-off.Y

	attrs := []xmlw.Attr{xmlw.A("draw:style-name", frameName(d.plan.frames.Index(frameStyleOf(l))))}
	attrs = append(attrs, nameAttrs(l)...)
	attrs = append(attrs,
		xmlw.A("svg:x1", (p.X+dx).CMString()),
		xmlw.A("svg:y1", (p.Y+dy).CMString()),
		xmlw.A("svg:x2", (q.X+dx).CMString()),
		xmlw.A("svg:y2", (q.Y+dy).CMString()))
	d.Start("draw:line", attrs...)
	d.description(l)
	d.End()
}

func (d *drawWriter) image(pic *shape.Drawing) {
	blob := d.plan.job.Res.Blob(pic.Source())
	d.Start("draw:frame", d.frameAttrs(pic)...)
	d.Empty("draw:image",
		xmlw.A("xlink:href", picturePath(blob)),
		xmlw.A("xlink:type", "simple"),
		xmlw.A("xlink:show", "embed"),
		xmlw.A("xlink:actuate", "onLoad"),
		xmlw.A("draw:mime-type", blob.MIME))
	d.description(pic)
	d.End()
}

func (d *drawWriter) table(t *shape.Table) {
	p := d.plan
	d.Start("draw:frame", d.frameAttrs(t)...)

	var attrs []xmlw.Attr
	if t.HeaderRow() {
		attrs = append(attrs, xmlw.A("table:use-first-row-styles", true))
	}
	if t.BandRows() {
		attrs = append(attrs, xmlw.A("table:use-banding-rows-styles", true))
	}
	d.Start("table:table", attrs...)
	for _, w := range t.ColumnWidths() {
		d.Empty("table:table-column", xmlw.A("table:style-name", columnName(p.columns.Index(columnStyle(w)))))
	}
	covered := t.Covered()
	for r, h := range t.RowHeights() {
		d.Start("table:table-row", xmlw.A("table:style-name", rowName(p.rows.Index(rowStyle(h)))))
		for c := range t.NumColumns() {
			if covered[r][c] {
				d.Empty("table:covered-table-cell")
				continue
			}
			cell := t.Cell(r, c)
			idx := p.cells.Index(cellStyle{style: cell.Style, anchor: cell.Anchor})
			attrs := []xmlw.Attr{xmlw.A("table:style-name", cellName(idx))}
			rows, cols := t.Span(r, c)
			if cols > 1 {
				attrs = append(attrs, xmlw.A("table:number-columns-spanned", cols))
			}
			if rows > 1 {
				attrs = append(attrs, xmlw.A("table:number-rows-spanned", rows))
			}
			attrs = append(attrs, xmlw.A("office:value-type", "string"))
			d.Start("table:table-cell", attrs...)
			d.paragraphs(cell.Paragraphs)
			d.End()
		}
		d.End()
	}
	d.End()

	d.description(t)
	d.End()
}

// paragraphs writes text paragraphs.  Paragraphs with bullets are
// wrapped in single-item lists; consecutive items with the same list
// style continue the numbering.
func (d *drawWriter) paragraphs(pp []shape.Paragraph) {
	res := d.plan.job.Res
	prevList := -1
	for _, para := range pp {
		idx := res.Paragraphs.Index(para.Style)
		if para.Style.Bullet.Kind == style.BulletNone {
			d.paragraph(para, idx)
			prevList = -1
			continue
		}
		attrs := []xmlw.Attr{xmlw.A("text:style-name", listName(idx))}
		if idx == prevList {
			attrs = append(attrs, xmlw.A("text:continue-numbering", true))
		}
		d.Start("text:list", attrs...)
		d.Start("text:list-item")
		d.paragraph(para, idx)
		d.End()
		d.End()
		prevList = idx
	}
}

func (d *drawWriter) paragraph(para shape.Paragraph, idx int) {
	res := d.plan.job.Res
	d.Start("text:p", xmlw.A("text:style-name", paraName(idx)))
	for _, run := range para.Runs {
		if run.Break {
			d.Empty("text:line-break")
			continue
		}
		link := run.Link != nil && run.Link.URL != ""
		if link {
			d.Start("text:a", linkAttrs(run.Link)...)
		}
		d.Start("text:span", xmlw.A("text:style-name", textName(res.Fonts.Index(run.Font))))
		d.text(run.Text)
		d.End()
		if link {
			d.End()
		}
	}
	d.End()
}

// text writes character data.  Consecutive spaces, tabs and newlines
// are written as elements, since white space in character data is
// collapsed by OpenDocument readers.
func (d *drawWriter) text(s string) {
	var buf strings.Builder
	spaces := 0
	flush := func() {
		if buf.Len() > 0 {
			d.Text(buf.String())
			buf.Reset()
		}
		if spaces == 1 {
			d.Empty("text:s")
		} else if spaces > 1 {
			d.Empty("text:s", xmlw.A("text:c", spaces))
		}
		spaces = 0
	}
	prevSpace := false
	for _, r := range s {
		switch r {
		case ' ':
			if prevSpace {
				if buf.Len() > 0 {
					d.Text(buf.String())
					buf.Reset()
				}
				spaces++
			} else {
				buf.WriteRune(r)
			}
			prevSpace = true
			continue
		case '\t':
			flush()
			d.Empty("text:tab")
		case '\n':
			flush()
			d.Empty("text:line-break")
		default:
			if spaces > 0 {
				flush()
			}
			buf.WriteRune(r)
		}
		prevSpace = false
	}
	flush()
}
