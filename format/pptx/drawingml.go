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
	"math"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/opc"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// dml writes DrawingML markup for one part.
type dml struct {
	*xmlw.Writer
	job  *export.Job
	plan *plan
	rels *opc.RelTable

	// lang is the language of runs which do not specify their own.
	lang string

	// nextID is the next free shape id in the part.
	nextID int
}

func (p *plan) newDML(x *xmlw.Writer, part string) *dml {
	lang := "en-US"
	if tag := p.job.Doc.Language; !tag.IsRoot() {
		lang = tag.String()
	}
	return &dml{
		Writer: x,
		job:    p.job,
		plan:   p,
		rels:   p.rels.For(part),
		lang:   lang,
		nextID: 2,
	}
}

func (d *dml) shapeID() int {
	id := d.nextID
	d.nextID++
	return id
}

// angle converts degrees to the 1/60000 degree units of DrawingML.
func angle(deg float64) int64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return int64(math.Round(deg * 60000))
}

// percent converts a fraction to the 1/1000 percent units of DrawingML.
func percent(x float64) int64 {
	return int64(math.Round(x * 100000))
}

func (d *dml) color(c style.Color) {
	if c.IsOpaque() {
		d.Empty("a:srgbClr", xmlw.A("val", c.Hex()))
		return
	}
	d.Start("a:srgbClr", xmlw.A("val", c.Hex()))
	d.Empty("a:alpha", xmlw.A("val", percent(c.Alpha())))
	d.End()
}

func (d *dml) solidFill(c style.Color) {
	d.Start("a:solidFill")
	d.color(c)
	d.End()
}

// fill writes a fill element.  If none is false, an empty fill is
// omitted instead of being written as a:noFill.
func (d *dml) fill(f style.Fill, none bool) {
	switch f.Kind {
	case style.FillNone:
		if none {
			d.Empty("a:noFill")
		}
	case style.FillSolid:
		d.solidFill(f.Start)
	case style.FillLinear, style.FillPath:
		d.Start("a:gradFill", xmlw.A("rotWithShape", 1))
		d.Start("a:gsLst")
		d.Start("a:gs", xmlw.A("pos", 0))
		d.color(f.Start)
		d.End()
		d.Start("a:gs", xmlw.A("pos", 100000))
		d.color(f.End)
		d.End()
		d.End()
		if f.Kind == style.FillLinear {
			d.Empty("a:lin", xmlw.A("ang", angle(f.Angle)), xmlw.A("scaled", 0))
		} else {
			d.Start("a:path", xmlw.A("path", "circle"))
			d.Empty("a:fillToRect",
				xmlw.A("l", 50000), xmlw.A("t", 50000), xmlw.A("r", 50000), xmlw.A("b", 50000))
			d.End()
		}
		d.End()
	}
}

var dashNames = map[style.Dash]string{
	style.DashDot:      "sysDot",
	style.DashDash:     "dash",
	style.DashLongDash: "lgDash",
	style.DashDashDot:  "dashDot",
}

// line writes an outline.  Tag is "a:ln" for shapes, or one of the cell
// border tags.
func (d *dml) line(tag string, b style.Border) {
	if b.IsNone() {
		d.Start(tag)
		d.Empty("a:noFill")
		d.End()
		return
	}
	d.Start(tag, xmlw.A("w", int64(slides.Points(b.Width))))
	d.solidFill(b.Color)
	if name, ok := dashNames[b.Dash]; ok {
		d.Empty("a:prstDash", xmlw.A("val", name))
	}
	d.End()
}

func (d *dml) shadow(s *style.Shadow) {
	if s == nil {
		return
	}
	d.Start("a:effectLst")
	d.Start("a:outerShdw",
		xmlw.A("blurRad", int64(slides.Points(s.Blur))),
		xmlw.A("dist", int64(slides.Points(s.Distance))),
		xmlw.A("dir", angle(s.Direction)),
		xmlw.A("algn", "tl"),
		xmlw.A("rotWithShape", 0))
	d.color(s.Color)
	d.End()
	d.End()
}

// xfrm writes the position of a shape.  Positions are always absolute on
// the slide.
func (d *dml) xfrm(tag string, s shape.Shape, child bool) {
	b := s.Common()
	var attrs []xmlw.Attr
	if rot := b.Rotation(); rot != 0 {
		attrs = append(attrs, xmlw.A("rot", angle(rot)))
	}
	flipH, flipV := b.Flip()
	if flipH {
		attrs = append(attrs, xmlw.A("flipH", 1))
	}
	if flipV {
		attrs = append(attrs, xmlw.A("flipV", 1))
	}
	off := shape.Absolute(s)
	ext := s.Extent()
	d.Start(tag, attrs...)
	d.point("a:off", off)
	d.extent("a:ext", ext)
	if child {
		d.point("a:chOff", off)
		d.extent("a:chExt", ext)
	}
	d.End()
}

func (d *dml) point(tag string, p slides.Point) {
	d.Empty(tag, xmlw.A("x", int64(p.X)), xmlw.A("y", int64(p.Y)))
}

func (d *dml) extent(tag string, e slides.Extent) {
	d.Empty(tag, xmlw.A("cx", int64(e.CX)), xmlw.A("cy", int64(e.CY)))
}

// hyperlink writes a hlinkClick element for l.
func (d *dml) hyperlink(l *style.Hyperlink) {
	if l == nil || l.URL == "" {
		return
	}
	attrs := []xmlw.Attr{xmlw.A("r:id", d.rels.ID(relHyperlink, l.URL, true))}
	if l.Tooltip != "" {
		attrs = append(attrs, xmlw.A("tooltip", l.Tooltip))
	}
	d.Empty("a:hlinkClick", attrs...)
}

// paragraphs writes the paragraphs of a text body.  A body without
// paragraphs gets one empty paragraph.
func (d *dml) paragraphs(pp []shape.Paragraph) {
	if len(pp) == 0 {
		d.Start("a:p")
		d.Empty("a:endParaRPr", xmlw.A("lang", d.lang), xmlw.A("dirty", 0))
		d.End()
		return
	}
	for _, para := range pp {
		d.Start("a:p")
		d.paragraphProperties(para.Style)
		for _, run := range para.Runs {
			if run.Break {
				d.Start("a:br")
				d.runProperties("a:rPr", run)
				d.End()
				continue
			}
			d.Start("a:r")
			d.runProperties("a:rPr", run)
			d.Elem("a:t", run.Text)
			d.End()
		}
		d.End()
	}
}

var alignNames = [...]string{
	style.AlignLeft:    "l",
	style.AlignCenter:  "ctr",
	style.AlignRight:   "r",
	style.AlignJustify: "just",
}

func (d *dml) paragraphProperties(ps style.Paragraph) {
	var attrs []xmlw.Attr
	a := ps.Alignment
	if a.MarginLeft != 0 {
		attrs = append(attrs, xmlw.A("marL", int64(a.MarginLeft)))
	}
	if ps.Level > 0 {
		attrs = append(attrs, xmlw.A("lvl", min(ps.Level, 8)))
	}
	if a.Indent != 0 {
		attrs = append(attrs, xmlw.A("indent", int64(a.Indent)))
	}
	if int(a.Horizontal) < len(alignNames) {
		attrs = append(attrs, xmlw.A("algn", alignNames[a.Horizontal]))
	}
	if a.RTL {
		attrs = append(attrs, xmlw.A("rtl", 1))
	}
	d.Start("a:pPr", attrs...)
	if ps.LineSpacing > 0 && ps.LineSpacing != 100 {
		d.Start("a:lnSpc")
		d.Empty("a:spcPct", xmlw.A("val", int64(math.Round(ps.LineSpacing*1000))))
		d.End()
	}
	if ps.SpaceBefore > 0 {
		d.Start("a:spcBef")
		d.Empty("a:spcPts", xmlw.A("val", int64(math.Round(ps.SpaceBefore*100))))
		d.End()
	}
	if ps.SpaceAfter > 0 {
		d.Start("a:spcAft")
		d.Empty("a:spcPts", xmlw.A("val", int64(math.Round(ps.SpaceAfter*100))))
		d.End()
	}
	b := ps.Bullet
	if b.Kind != style.BulletNone && b.Color != nil {
		d.Start("a:buClr")
		d.color(*b.Color)
		d.End()
	}
	if b.Kind != style.BulletNone && b.Font != "" {
		d.Empty("a:buFont", xmlw.A("typeface", b.Font))
	}
	switch b.Kind {
	case style.BulletNone:
		d.Empty("a:buNone")
	case style.BulletChar:
		char := b.Char
		if char == "" {
			char = "•"
		}
		d.Empty("a:buChar", xmlw.A("char", char))
	case style.BulletNumber:
		attrs := []xmlw.Attr{xmlw.A("type", "arabicPeriod")}
		if b.StartAt > 1 {
			attrs = append(attrs, xmlw.A("startAt", b.StartAt))
		}
		d.Empty("a:buAutoNum", attrs...)
	}
	d.End()
}

var underlineNames = [...]string{
	style.UnderlineNone:   "none",
	style.UnderlineSingle: "sng",
	style.UnderlineDouble: "dbl",
}

func (d *dml) runProperties(tag string, run shape.Run) {
	f := run.Font
	lang := d.lang
	if !run.Lang.IsRoot() {
		lang = run.Lang.String()
	}
	attrs := []xmlw.Attr{
		xmlw.A("lang", lang),
		xmlw.A("sz", int64(math.Round(f.Size*100))),
	}
	if f.Bold {
		attrs = append(attrs, xmlw.A("b", 1))
	}
	if f.Italic {
		attrs = append(attrs, xmlw.A("i", 1))
	}
	if f.Underline != style.UnderlineNone && int(f.Underline) < len(underlineNames) {
		attrs = append(attrs, xmlw.A("u", underlineNames[f.Underline]))
	}
	if f.Strike {
		attrs = append(attrs, xmlw.A("strike", "sngStrike"))
	}
	if f.CharSpacing != 0 {
		attrs = append(attrs, xmlw.A("spc", int64(math.Round(f.CharSpacing*100))))
	}
	if f.Baseline != 0 {
		attrs = append(attrs, xmlw.A("baseline", int64(f.Baseline)*1000))
	}
	attrs = append(attrs, xmlw.A("dirty", 0))

	d.Start(tag, attrs...)
	d.solidFill(f.Color)
	if f.Name != "" {
		d.Empty("a:latin", xmlw.A("typeface", f.Name))
		d.Empty("a:cs", xmlw.A("typeface", f.Name))
	}
	if !run.Break {
		d.hyperlink(run.Link)
	}
	d.End()
}
