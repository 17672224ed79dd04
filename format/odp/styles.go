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

	"golang.org/x/text/language"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

func color(c style.Color) string {
	return "#" + strings.ToLower(c.Hex())
}

func pct(x float64) string {
	return strconv.FormatFloat(math.Round(x*100), 'f', -1, 64) + "%"
}

func pt(x float64) string {
	return xmlw.FormatFloat(x) + "pt"
}

// ptLength converts a length in points to a length attribute.
func ptLength(x float64) string {
	return slides.Points(x).CMString()
}

// odfAngle converts a gradient direction, measured in degrees clockwise
// from the positive x-axis, to tenths of degrees counter-clockwise from
// the top-to-bottom direction.
func odfAngle(deg float64) int {
	a := math.Mod(90-deg, 360)
	if a < 0 {
		a += 360
	}
	return int(math.Round(a * 10))
}

func gradientName(i int) string { return fmt.Sprintf("Gradient%d", i) }
func dashName(i int) string     { return fmt.Sprintf("Dash%d", i) }
func textName(i int) string     { return fmt.Sprintf("T%d", i) }
func paraName(i int) string     { return fmt.Sprintf("P%d", i) }
func listName(i int) string     { return fmt.Sprintf("L%d", i) }
func frameName(i int) string    { return fmt.Sprintf("gr%d", i) }
func cellName(i int) string     { return fmt.Sprintf("ce%d", i) }
func columnName(i int) string   { return fmt.Sprintf("co%d", i) }
func rowName(i int) string      { return fmt.Sprintf("ro%d", i) }
func pageName(i int) string     { return fmt.Sprintf("dp%d", i) }
func masterBgName(i int) string { return fmt.Sprintf("Mdp%d", i) }

const pageLayoutName = "PM0"

func (p *plan) fillAttrs(f style.Fill) []xmlw.Attr {
	switch f.Kind {
	case style.FillSolid:
		attrs := []xmlw.Attr{
			xmlw.A("draw:fill", "solid"),
			xmlw.A("draw:fill-color", color(f.Start)),
		}
		if !f.Start.IsOpaque() {
			attrs = append(attrs, xmlw.A("draw:opacity", pct(f.Start.Alpha())))
		}
		return attrs
	case style.FillLinear, style.FillPath:
		return []xmlw.Attr{
			xmlw.A("draw:fill", "gradient"),
			xmlw.A("draw:fill-gradient-name", gradientName(p.job.Res.Fills.Index(f))),
		}
	default:
		return []xmlw.Attr{xmlw.A("draw:fill", "none")}
	}
}

func (p *plan) strokeAttrs(b style.Border) []xmlw.Attr {
	if b.IsNone() {
		return []xmlw.Attr{xmlw.A("draw:stroke", "none")}
	}
	var attrs []xmlw.Attr
	if b.Dash == style.DashSolid {
		attrs = append(attrs, xmlw.A("draw:stroke", "solid"))
	} else {
		attrs = append(attrs,
			xmlw.A("draw:stroke", "dash"),
			xmlw.A("draw:stroke-dash", dashName(p.job.Res.Borders.Index(b))))
	}
	attrs = append(attrs,
		xmlw.A("svg:stroke-width", ptLength(b.Width)),
		xmlw.A("svg:stroke-color", color(b.Color)))
	if !b.Color.IsOpaque() {
		attrs = append(attrs, xmlw.A("svg:stroke-opacity", pct(b.Color.Alpha())))
	}
	return attrs
}

func shadowAttrs(s *style.Shadow) []xmlw.Attr {
	if s == nil {
		return nil
	}
	rad := s.Direction * math.Pi / 180
	dx := s.Distance * math.Cos(rad)
	dy := s.Distance * math.Sin(rad)
	return []xmlw.Attr{
		xmlw.A("draw:shadow", "visible"),
		xmlw.A("draw:shadow-offset-x", ptLength(dx)),
		xmlw.A("draw:shadow-offset-y", ptLength(dy)),
		xmlw.A("draw:shadow-color", color(s.Color)),
		xmlw.A("draw:shadow-opacity", pct(s.Color.Alpha())),
	}
}

// borderValue formats a table cell border for the fo:border properties.
func borderValue(b style.Border) string {
	if b.IsNone() {
		return "none"
	}
	kind := "solid"
	switch b.Dash {
	case style.DashDot:
		kind = "dotted"
	case style.DashDash, style.DashLongDash, style.DashDashDot:
		kind = "dashed"
	}
	return ptLength(b.Width) + " " + kind + " " + color(b.Color)
}

var verticalAlign = [...]string{
	shape.AnchorTop:    "top",
	shape.AnchorMiddle: "middle",
	shape.AnchorBottom: "bottom",
}

func anchorValue(a shape.Anchor) string {
	if int(a) < len(verticalAlign) {
		return verticalAlign[a]
	}
	return "top"
}

// fontFaces writes the font face declarations.  Every font name used in
// the document gets one declaration; embedded font files are attached to
// the declaration of their family.
func (p *plan) fontFaces(x *xmlw.Writer) {
	res := p.job.Res
	var names []string
	files := make(map[string][]string)
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, f := range res.Fonts.All() {
		add(f.Name)
	}
	for _, f := range res.EmbeddedFonts.All() {
		add(f.Family)
		files[f.Family] = append(files[f.Family], fontPath(f))
	}

	x.Start("office:font-face-decls")
	for _, name := range names {
		family := name
		if strings.ContainsAny(name, " ,") {
			family = "'" + name + "'"
		}
		attrs := []xmlw.Attr{xmlw.A("style:name", name), xmlw.A("svg:font-family", family)}
		if len(files[name]) == 0 {
			x.Empty("style:font-face", attrs...)
			continue
		}
		x.Start("style:font-face", attrs...)
		x.Start("svg:font-face-src")
		for _, path := range files[name] {
			x.Start("svg:font-face-uri", xmlw.A("xlink:href", path), xmlw.A("xlink:type", "simple"))
			format := "truetype"
			if strings.HasSuffix(path, ".otf") {
				format = "opentype"
			}
			x.Empty("svg:font-face-format", xmlw.A("svg:string", format))
			x.End()
		}
		x.End()
		x.End()
	}
	x.End()
}

// commonStyles writes the office:styles element: the default style,
// gradients, stroke dashes and one text style per font.
func (p *plan) commonStyles(x *xmlw.Writer) {
	res := p.job.Res
	x.Start("office:styles")

	x.Start("style:default-style", xmlw.A("style:family", "graphic"))
	lang := p.job.Doc.Language
	base, _ := lang.Base()
	textAttrs := []xmlw.Attr{
		xmlw.A("style:font-name", style.DefaultFont.Name),
		xmlw.A("fo:font-size", pt(style.DefaultFont.Size)),
	}
	if !lang.IsRoot() {
		textAttrs = append(textAttrs, xmlw.A("fo:language", base.String()))
		if region, conf := lang.Region(); conf == language.Exact {
			textAttrs = append(textAttrs, xmlw.A("fo:country", region.String()))
		}
	}
	x.Empty("style:text-properties", textAttrs...)
	x.End()

	for i, f := range res.Fills.All() {
		if !f.IsGradient() {
			continue
		}
		kind := "linear"
		if f.Kind == style.FillPath {
			kind = "radial"
		}
		attrs := []xmlw.Attr{
			xmlw.A("draw:name", gradientName(i)),
			xmlw.A("draw:style", kind),
		}
		if kind == "radial" {
			attrs = append(attrs, xmlw.A("draw:cx", "50%"), xmlw.A("draw:cy", "50%"))
		}
		attrs = append(attrs,
			xmlw.A("draw:start-color", color(f.Start)),
			xmlw.A("draw:end-color", color(f.End)),
			xmlw.A("draw:start-intensity", "100%"),
			xmlw.A("draw:end-intensity", "100%"))
		if kind == "linear" {
			attrs = append(attrs, xmlw.A("draw:angle", odfAngle(f.Angle)))
		}
		attrs = append(attrs, xmlw.A("draw:border", "0%"))
		x.Empty("draw:gradient", attrs...)
	}

	for i, b := range res.Borders.All() {
		if b.IsNone() || b.Dash == style.DashSolid {
			continue
		}
		x.Empty("draw:stroke-dash", dashAttrs(dashName(i), b.Dash)...)
	}

	for i, f := range res.Fonts.All() {
		x.Start("style:style", xmlw.A("style:name", textName(i)), xmlw.A("style:family", "text"))
		x.Empty("style:text-properties", textProperties(f)...)
		x.End()
	}

	x.End()
}

// dashAttrs describes a dash pattern relative to the line width.
func dashAttrs(name string, d style.Dash) []xmlw.Attr {
	attrs := []xmlw.Attr{xmlw.A("draw:name", name), xmlw.A("draw:style", "rect")}
	switch d {
	case style.DashDot:
		attrs = append(attrs, xmlw.A("draw:dots1", 1), xmlw.A("draw:dots1-length", "100%"))
	case style.DashDash:
		attrs = append(attrs, xmlw.A("draw:dots1", 1), xmlw.A("draw:dots1-length", "300%"))
	case style.DashLongDash:
		attrs = append(attrs, xmlw.A("draw:dots1", 1), xmlw.A("draw:dots1-length", "800%"))
	case style.DashDashDot:
		attrs = append(attrs,
			xmlw.A("draw:dots1", 1), xmlw.A("draw:dots1-length", "400%"),
			xmlw.A("draw:dots2", 1), xmlw.A("draw:dots2-length", "100%"))
	}
	return append(attrs, xmlw.A("draw:distance", "300%"))
}

func textProperties(f style.Font) []xmlw.Attr {
	attrs := []xmlw.Attr{xmlw.A("fo:color", color(f.Color))}
	if f.Name != "" {
		attrs = append(attrs, xmlw.A("style:font-name", f.Name))
	}
	attrs = append(attrs, xmlw.A("fo:font-size", pt(f.Size)))
	if f.Bold {
		attrs = append(attrs, xmlw.A("fo:font-weight", "bold"))
	}
	if f.Italic {
		attrs = append(attrs, xmlw.A("fo:font-style", "italic"))
	}
	switch f.Underline {
	case style.UnderlineSingle:
		attrs = append(attrs,
			xmlw.A("style:text-underline-style", "solid"),
			xmlw.A("style:text-underline-width", "auto"),
			xmlw.A("style:text-underline-color", "font-color"))
	case style.UnderlineDouble:
		attrs = append(attrs,
			xmlw.A("style:text-underline-style", "solid"),
			xmlw.A("style:text-underline-type", "double"),
			xmlw.A("style:text-underline-width", "auto"),
			xmlw.A("style:text-underline-color", "font-color"))
	}
	if f.Strike {
		attrs = append(attrs, xmlw.A("style:text-line-through-style", "solid"))
	}
	if f.Baseline != 0 {
		attrs = append(attrs, xmlw.A("style:text-position", strconv.Itoa(f.Baseline)+"% 58%"))
	}
	if f.CharSpacing != 0 {
		attrs = append(attrs, xmlw.A("fo:letter-spacing", ptLength(f.CharSpacing)))
	}
	return attrs
}

var textAlign = [...]string{
	style.AlignLeft:    "start",
	style.AlignCenter:  "center",
	style.AlignRight:   "end",
	style.AlignJustify: "justify",
}

// automaticStyles writes the automatic styles used by shapes.  Both
// content.xml and styles.xml need them, since automatic styles are only
// visible inside the part which declares them.
func (p *plan) automaticStyles(x *xmlw.Writer) {
	res := p.job.Res

	for i, fs := range p.frames.All() {
		x.Start("style:style", xmlw.A("style:name", frameName(i)), xmlw.A("style:family", "graphic"))
		p.frameProperties(x, fs)
		x.End()
	}

	for i, ps := range res.Paragraphs.All() {
		x.Start("style:style", xmlw.A("style:name", paraName(i)), xmlw.A("style:family", "paragraph"))
		a := ps.Alignment
		var attrs []xmlw.Attr
		if int(a.Horizontal) < len(textAlign) {
			attrs = append(attrs, xmlw.A("fo:text-align", textAlign[a.Horizontal]))
		}
		margin := a.MarginLeft + slides.EMU(ps.Level)*slides.EMUPerInch/2
		if margin != 0 {
			attrs = append(attrs, xmlw.A("fo:margin-left", margin.CMString()))
		}
		if a.Indent != 0 {
			attrs = append(attrs, xmlw.A("fo:text-indent", a.Indent.CMString()))
		}
		if ps.SpaceBefore > 0 {
			attrs = append(attrs, xmlw.A("fo:margin-top", ptLength(ps.SpaceBefore)))
		}
		if ps.SpaceAfter > 0 {
			attrs = append(attrs, xmlw.A("fo:margin-bottom", ptLength(ps.SpaceAfter)))
		}
		if ps.LineSpacing > 0 && ps.LineSpacing != 100 {
			attrs = append(attrs, xmlw.A("fo:line-height", xmlw.FormatFloat(ps.LineSpacing)+"%"))
		}
		if a.RTL {
			attrs = append(attrs, xmlw.A("style:writing-mode", "rl-tb"))
		}
		x.Empty("style:paragraph-properties", attrs...)
		x.End()
	}

	for i, ps := range res.Paragraphs.All() {
		if ps.Bullet.Kind != style.BulletNone {
			listStyle(x, listName(i), ps.Bullet)
		}
	}

	for i, cs := range p.cells.All() {
		x.Start("style:style", xmlw.A("style:name", cellName(i)), xmlw.A("style:family", "table-cell"))
		attrs := p.fillAttrs(cs.style.Fill)
		attrs = append(attrs, xmlw.A("draw:textarea-vertical-align", anchorValue(cs.anchor)))
		x.Empty("style:graphic-properties", attrs...)
		b := cs.style.Borders
		x.Empty("style:paragraph-properties",
			xmlw.A("fo:border-left", borderValue(b.Left)),
			xmlw.A("fo:border-right", borderValue(b.Right)),
			xmlw.A("fo:border-top", borderValue(b.Top)),
			xmlw.A("fo:border-bottom", borderValue(b.Bottom)))
		x.End()
	}

	for i, w := range p.columns.All() {
		x.Start("style:style", xmlw.A("style:name", columnName(i)), xmlw.A("style:family", "table-column"))
		x.Empty("style:table-column-properties", xmlw.A("style:column-width", slides.EMU(w).CMString()))
		x.End()
	}
	for i, h := range p.rows.All() {
		x.Start("style:style", xmlw.A("style:name", rowName(i)), xmlw.A("style:family", "table-row"))
		x.Empty("style:table-row-properties", xmlw.A("style:min-row-height", slides.EMU(h).CMString()))
		x.End()
	}
}

func (p *plan) frameProperties(x *xmlw.Writer, fs frameStyle) {
	g := fs.graphic
	attrs := p.fillAttrs(g.Fill)
	attrs = append(attrs, p.strokeAttrs(g.Border)...)
	attrs = append(attrs, shadowAttrs(g.Shadow)...)
	if !fs.text {
		x.Empty("style:graphic-properties", attrs...)
		return
	}

	in := fs.insets
	attrs = append(attrs,
		xmlw.A("draw:textarea-vertical-align", anchorValue(fs.anchor)),
		xmlw.A("fo:padding-top", in.Top.CMString()),
		xmlw.A("fo:padding-bottom", in.Bottom.CMString()),
		xmlw.A("fo:padding-left", in.Left.CMString()),
		xmlw.A("fo:padding-right", in.Right.CMString()),
		xmlw.A("draw:auto-grow-height", fs.autoFit == shape.AutoFitShape))
	if !fs.wrap {
		attrs = append(attrs, xmlw.A("fo:wrap-option", "no-wrap"))
	}
	if fs.autoFit == shape.AutoFitNormal {
		attrs = append(attrs, xmlw.A("style:shrink-to-fit", true))
	}
	if fs.columns < 2 {
		x.Empty("style:graphic-properties", attrs...)
		return
	}
	x.Start("style:graphic-properties", attrs...)
	x.Empty("style:columns", xmlw.A("fo:column-count", fs.columns), xmlw.A("fo:column-gap", "0cm"))
	x.End()
}

func listStyle(x *xmlw.Writer, name string, b style.Bullet) {
	x.Start("text:list-style", xmlw.A("style:name", name))
	if b.Kind == style.BulletNumber {
		start := max(b.StartAt, 1)
		x.Start("text:list-level-style-number",
			xmlw.A("text:level", 1),
			xmlw.A("style:num-suffix", "."),
			xmlw.A("style:num-format", "1"),
			xmlw.A("text:start-value", start))
	} else {
		char := b.Char
		if char == "" {
			char = "•"
		}
		x.Start("text:list-level-style-bullet",
			xmlw.A("text:level", 1),
			xmlw.A("text:bullet-char", char))
	}
	x.Empty("style:list-level-properties", xmlw.A("text:min-label-width", "0.6cm"))
	var attrs []xmlw.Attr
	if b.Font != "" {
		attrs = append(attrs, xmlw.A("fo:font-family", b.Font))
	}
	if b.Color != nil {
		attrs = append(attrs, xmlw.A("fo:color", color(*b.Color)))
	}
	if len(attrs) > 0 {
		x.Empty("style:text-properties", attrs...)
	}
	x.End()
	x.End()
}

func (p *plan) drawingPageStyle(x *xmlw.Writer, name string, ps pageStyle) {
	x.Start("style:style", xmlw.A("style:name", name), xmlw.A("style:family", "drawing-page"))
	var attrs []xmlw.Attr
	if !ps.fill.IsNone() {
		attrs = append(attrs, p.fillAttrs(ps.fill)...)
		attrs = append(attrs, xmlw.A("draw:background-size", "full"))
	}
	if ps.hidden {
		attrs = append(attrs, xmlw.A("presentation:visibility", "hidden"))
	}
	x.Empty("style:drawing-page-properties", attrs...)
	x.End()
}

// odfRoot starts the root element of content.xml or styles.xml.
func odfRoot(x *xmlw.Writer, name string) {
	x.Start(name,
		xmlw.A("xmlns:office", nsOffice),
		xmlw.A("xmlns:style", nsStyle),
		xmlw.A("xmlns:text", nsText),
		xmlw.A("xmlns:table", nsTable),
		xmlw.A("xmlns:draw", nsDraw),
		xmlw.A("xmlns:fo", nsFO),
		xmlw.A("xmlns:xlink", nsXLink),
		xmlw.A("xmlns:dc", nsDC),
		xmlw.A("xmlns:meta", nsMeta),
		xmlw.A("xmlns:presentation", nsPresentation),
		xmlw.A("xmlns:svg", nsSVG),
		xmlw.A("office:version", odfVersion))
}

func (p *plan) writeStyles(w io.Writer, job *export.Job) error {
	doc := job.Doc
	x := xmlw.New(w, true)
	odfRoot(x, "office:document-styles")
	p.fontFaces(x)
	p.commonStyles(x)

	x.Start("office:automatic-styles")
	orientation := "portrait"
	if doc.Size.Landscape() {
		orientation = "landscape"
	}
	x.Start("style:page-layout", xmlw.A("style:name", pageLayoutName))
	x.Empty("style:page-layout-properties",
		xmlw.A("fo:margin-top", "0cm"),
		xmlw.A("fo:margin-bottom", "0cm"),
		xmlw.A("fo:margin-left", "0cm"),
		xmlw.A("fo:margin-right", "0cm"),
		xmlw.A("fo:page-width", doc.Size.Width.CMString()),
		xmlw.A("fo:page-height", doc.Size.Height.CMString()),
		xmlw.A("style:print-orientation", orientation))
	x.End()
	for i, mp := range p.masterPages {
		if bg := mp.background(); !bg.IsNone() {
			p.drawingPageStyle(x, masterBgName(i), pageStyle{fill: bg})
		}
	}
	p.automaticStyles(x)
	x.End()

	x.Start("office:master-styles")
	d := &drawWriter{Writer: x, plan: p}
	for i, mp := range p.masterPages {
		attrs := []xmlw.Attr{
			xmlw.A("style:name", mp.name),
			xmlw.A("style:display-name", mp.displayName()),
			xmlw.A("style:page-layout-name", pageLayoutName),
		}
		if !mp.background().IsNone() {
			attrs = append(attrs, xmlw.A("draw:style-name", masterBgName(i)))
		}
		x.Start("style:master-page", attrs...)
		if err := d.shapes(mp.master.Shapes()); err != nil {
			return err
		}
		if err := d.shapes(mp.layout.Shapes()); err != nil {
			return err
		}
		x.End()
	}
	x.End()

	x.End()
	return x.Close()
}
