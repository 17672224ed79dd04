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

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// commonSlideData writes the p:cSld element of a slide-like part.
func (d *dml) commonSlideData(name string, bg style.Fill, tree *shape.Tree) error {
	if name != "" {
		d.Start("p:cSld", xmlw.A("name", name))
	} else {
		d.Start("p:cSld")
	}
	if !bg.IsNone() {
		d.Start("p:bg")
		d.Start("p:bgPr")
		d.fill(bg, true)
		d.Empty("a:effectLst")
		d.End()
		d.End()
	}
	d.Start("p:spTree")
	d.Start("p:nvGrpSpPr")
	d.Empty("p:cNvPr", xmlw.A("id", 1), xmlw.A("name", ""))
	d.Empty("p:cNvGrpSpPr")
	d.Empty("p:nvPr")
	d.End()
	d.Start("p:grpSpPr")
	d.Start("a:xfrm")
	d.point("a:off", slides.Point{})
	d.extent("a:ext", slides.Extent{})
	d.point("a:chOff", slides.Point{})
	d.extent("a:chExt", slides.Extent{})
	d.End()
	d.End()
	if err := d.shapes(tree.Shapes()); err != nil {
		return err
	}
	d.End()
	d.End()
	return nil
}

func (d *dml) shapes(list []shape.Shape) error {
	for _, s := range list {
		var err error
		switch s := s.(type) {
		case *shape.RichText:
			d.richText(s)
		case *shape.Line:
			d.connector(s)
		case *shape.Table:
			d.table(s)
		case *shape.Chart:
			d.chartFrame(s)
		case *shape.Drawing:
			d.picture(s)
		case *shape.Group:
			err = d.group(s)
		default:
			err = d.job.Unsupported(shape.Label(s), fmt.Sprintf("shape type %T", s))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// nonVisual writes the p:cNvPr element shared by all shapes.
func (d *dml) nonVisual(s shape.Shape) {
	b := s.Common()
	id := d.shapeID()
	name := b.Name()
	if name == "" {
		name = fmt.Sprintf("%s %d", shape.Kind(s), id-1)
	}
	attrs := []xmlw.Attr{xmlw.A("id", id), xmlw.A("name", name)}
	if desc := b.Description(); desc != "" {
		attrs = append(attrs, xmlw.A("descr", desc))
	}
	link := b.Link()
	if link == nil || link.URL == "" {
		d.Empty("p:cNvPr", attrs...)
		return
	}
	d.Start("p:cNvPr", attrs...)
	d.hyperlink(link)
	d.End()
}

// shapeProperties writes p:spPr for a leaf shape.
func (d *dml) shapeProperties(s shape.Shape, geom string) {
	b := s.Common()
	d.Start("p:spPr")
	d.xfrm("a:xfrm", s, false)
	d.Start("a:prstGeom", xmlw.A("prst", geom))
	d.Empty("a:avLst")
	d.End()
	d.fill(b.Fill(), true)
	d.line("a:ln", b.Border())
	d.shadow(b.Shadow())
	d.End()
}

var geometryNames = map[shape.Geometry]string{
	shape.GeometryRect:      "rect",
	shape.GeometryRoundRect: "roundRect",
	shape.GeometryEllipse:   "ellipse",
}

var anchorNames = [...]string{
	shape.AnchorTop:    "t",
	shape.AnchorMiddle: "ctr",
	shape.AnchorBottom: "b",
}

func (d *dml) richText(t *shape.RichText) {
	d.Start("p:sp")
	d.Start("p:nvSpPr")
	d.nonVisual(t)
	d.Empty("p:cNvSpPr", xmlw.A("txBox", 1))
	d.Empty("p:nvPr")
	d.End()

	geom, ok := geometryNames[t.Geometry()]
	if !ok {
		geom = "rect"
	}
	d.shapeProperties(t, geom)

	d.Start("p:txBody")
	in := t.Insets()
	wrap := "square"
	if !t.Wrap() {
		wrap = "none"
	}
	attrs := []xmlw.Attr{
		xmlw.A("wrap", wrap),
		xmlw.A("lIns", int64(in.Left)),
		xmlw.A("tIns", int64(in.Top)),
		xmlw.A("rIns", int64(in.Right)),
		xmlw.A("bIns", int64(in.Bottom)),
	}
	if n := t.Columns(); n > 1 {
		attrs = append(attrs, xmlw.A("numCol", n))
	}
	attrs = append(attrs, xmlw.A("anchor", anchorName(t.Anchor())), xmlw.A("rtlCol", 0))
	d.Start("a:bodyPr", attrs...)
	switch t.AutoFit() {
	case shape.AutoFitShape:
		d.Empty("a:spAutoFit")
	case shape.AutoFitNormal:
		d.Empty("a:normAutofit")
	default:
		d.Empty("a:noAutofit")
	}
	d.End()
	d.Empty("a:lstStyle")
	d.paragraphs(t.Paragraphs())
	d.End()

	d.End()
}

func anchorName(a shape.Anchor) string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "t"
}

func (d *dml) connector(l *shape.Line) {
	d.Start("p:cxnSp")
	d.Start("p:nvCxnSpPr")
	d.nonVisual(l)
	d.Empty("p:cNvCxnSpPr")
	d.Empty("p:nvPr")
	d.End()
	d.shapeProperties(l, "line")
	d.End()
}

func (d *dml) picture(p *shape.Drawing) {
	blob := d.job.Res.Blob(p.Source())
	rID := d.rels.ID(relImage, mediaPath(blob), false)

	d.Start("p:pic")
	d.Start("p:nvPicPr")
	d.nonVisual(p)
	d.Start("p:cNvPicPr")
	d.Empty("a:picLocks", xmlw.A("noChangeAspect", 1))
	d.End()
	d.Empty("p:nvPr")
	d.End()

	d.Start("p:blipFill")
	d.Empty("a:blip", xmlw.A("r:embed", rID))
	d.Start("a:stretch")
	d.Empty("a:fillRect")
	d.End()
	d.End()

	d.shapeProperties(p, "rect")
	d.End()
}

func (d *dml) group(g *shape.Group) error {
	d.Start("p:grpSp")
	d.Start("p:nvGrpSpPr")
	d.nonVisual(g)
	d.Empty("p:cNvGrpSpPr")
	d.Empty("p:nvPr")
	d.End()

	d.Start("p:grpSpPr")
	d.xfrm("a:xfrm", g, true)
	d.fill(g.Fill(), false)
	d.shadow(g.Shadow())
	d.End()

	if err := d.shapes(g.Shapes()); err != nil {
		return err
	}
	d.End()
	return nil
}

// graphicFrame starts a p:graphicFrame and its a:graphicData element.
// The caller writes the content and closes three elements.
func (d *dml) graphicFrame(s shape.Shape, uri string) {
	d.Start("p:graphicFrame")
	d.Start("p:nvGraphicFramePr")
	d.nonVisual(s)
	d.Start("p:cNvGraphicFramePr")
	d.Empty("a:graphicFrameLocks", xmlw.A("noGrp", 1))
	d.End()
	d.Empty("p:nvPr")
	d.End()
	d.xfrm("p:xfrm", s, false)
	d.Start("a:graphic")
	d.Start("a:graphicData", xmlw.A("uri", uri))
}

func (d *dml) chartFrame(c *shape.Chart) {
	d.graphicFrame(c, uriChart)
	rID := d.rels.ID(relChart, d.plan.chartPath[c], false)
	d.Empty("c:chart", xmlw.A("xmlns:c", nsC), xmlw.A("xmlns:r", nsR), xmlw.A("r:id", rID))
	d.End()
	d.End()
	d.End()
}

// merge flags for table cells
const (
	hMerge = 1 << iota
	vMerge
)

func (d *dml) table(t *shape.Table) {
	rows, cols := t.NumRows(), t.NumColumns()
	merged := make([][]int, rows)
	for r := range merged {
		merged[r] = make([]int, cols)
	}
	covered := t.Covered()
	for r := range rows {
		for c := range cols {
			if covered[r][c] {
				continue
			}
			nr, nc := t.Span(r, c)
			for i := r; i < r+nr; i++ {
				for j := c; j < c+nc; j++ {
					if j > c {
						merged[i][j] |= hMerge
					}
					if i > r {
						merged[i][j] |= vMerge
					}
				}
			}
		}
	}

	d.graphicFrame(t, uriTable)
	d.Start("a:tbl")
	var attrs []xmlw.Attr
	if t.HeaderRow() {
		attrs = append(attrs, xmlw.A("firstRow", 1))
	}
	if t.BandRows() {
		attrs = append(attrs, xmlw.A("bandRow", 1))
	}
	d.Empty("a:tblPr", attrs...)
	d.Start("a:tblGrid")
	for _, w := range t.ColumnWidths() {
		d.Empty("a:gridCol", xmlw.A("w", int64(w)))
	}
	d.End()

	heights := t.RowHeights()
	for r := range rows {
		d.Start("a:tr", xmlw.A("h", int64(heights[r])))
		for c := range cols {
			cell := t.Cell(r, c)
			var attrs []xmlw.Attr
			if !covered[r][c] {
				nr, nc := t.Span(r, c)
				if nc > 1 {
					attrs = append(attrs, xmlw.A("gridSpan", nc))
				}
				if nr > 1 {
					attrs = append(attrs, xmlw.A("rowSpan", nr))
				}
			}
			if merged[r][c]&hMerge != 0 {
				attrs = append(attrs, xmlw.A("hMerge", 1))
			}
			if merged[r][c]&vMerge != 0 {
				attrs = append(attrs, xmlw.A("vMerge", 1))
			}
			d.Start("a:tc", attrs...)
			d.Start("a:txBody")
			d.Empty("a:bodyPr")
			d.Empty("a:lstStyle")
			if covered[r][c] {
				d.paragraphs(nil)
			} else {
				d.paragraphs(cell.Paragraphs)
			}
			d.End()
			d.tableCellProperties(cell)
			d.End()
		}
		d.End()
	}
	d.End()

	d.End()
	d.End()
	d.End()
}

func (d *dml) tableCellProperties(cell shape.Cell) {
	d.Start("a:tcPr", xmlw.A("anchor", anchorName(cell.Anchor)))
	b := cell.Style.Borders
	d.line("a:lnL", b.Left)
	d.line("a:lnR", b.Right)
	d.line("a:lnT", b.Top)
	d.line("a:lnB", b.Bottom)
	d.fill(cell.Style.Fill, false)
	d.End()
}
