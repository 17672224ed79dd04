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

package deckfile

import (
	"fmt"

	"golang.org/x/text/language"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// Position and size of the text box on notes pages.
var (
	notesOffset = slides.Point{X: 685800, Y: 4400550}
	notesExtent = slides.Extent{CX: 5486400, CY: 4114800}
)

var (
	geometryNames = map[string]shape.Geometry{
		"rect":      shape.GeometryRect,
		"roundRect": shape.GeometryRoundRect,
		"ellipse":   shape.GeometryEllipse,
	}
	anchorNames = map[string]shape.Anchor{
		"top":    shape.AnchorTop,
		"middle": shape.AnchorMiddle,
		"bottom": shape.AnchorBottom,
	}
	autoFitNames = map[string]shape.AutoFit{
		"none":   shape.AutoFitNone,
		"shape":  shape.AutoFitShape,
		"shrink": shape.AutoFitNormal,
	}
	alignNames = map[string]style.HAlign{
		"left":    style.AlignLeft,
		"center":  style.AlignCenter,
		"right":   style.AlignRight,
		"justify": style.AlignJustify,
	}
)

// Build creates the presentation described by the deck.  Text which does
// not specify a font uses font, as modified by the font setting of the
// deck.
func (d *Deck) Build(font style.Font) (*document.Presentation, error) {
	doc := document.New()
	doc.Properties = document.Properties{
		Title:       d.Title,
		Subject:     d.Subject,
		Creator:     d.Author,
		Description: d.Description,
		Keywords:    d.Keywords,
		Category:    d.Category,
		Company:     d.Company,
	}

	switch {
	case d.Width > 0 && d.Height > 0:
		doc.Size = document.CustomSize(d.Width.EMU(), d.Height.EMU())
	case d.Size != "":
		size, ok := document.LookupSize(d.Size)
		if !ok {
			return nil, &slides.InvalidParameterError{
				Param:  "size",
				Reason: fmt.Sprintf("unknown slide size %q", d.Size),
			}
		}
		doc.Size = size
	}

	if d.Language != "" {
		tag, err := language.Parse(d.Language)
		if err != nil {
			return nil, &slides.InvalidParameterError{Param: "language", Reason: err.Error()}
		}
		doc.Language = tag
	}

	for _, name := range d.Fonts {
		doc.EmbedFont(media.File(d.resolve(name)))
	}

	b := &builder{deck: d, font: d.Font.Apply(font)}

	master := doc.Masters()[0]
	if d.Background != nil {
		master.SetBackground(style.Fill(*d.Background))
	}
	if err := b.shapes(master.ShapeTree(), d.Master); err != nil {
		return nil, fmt.Errorf("master: %w", err)
	}

	for _, spec := range d.Layouts {
		layout := master.Layout(spec.Name)
		if layout == nil {
			layout = master.CreateLayout(spec.Name)
		}
		if spec.Background != nil {
			layout.SetBackground(style.Fill(*spec.Background))
		}
		if err := b.shapes(layout.ShapeTree(), spec.Shapes); err != nil {
			return nil, fmt.Errorf("layout %q: %w", spec.Name, err)
		}
	}

	for i, spec := range d.Slides {
		var slide *document.Slide
		if spec.Layout == "" {
			slide = doc.CreateSlide()
		} else {
			layout := doc.FindLayout(spec.Layout)
			if layout == nil {
				return nil, fmt.Errorf("slide %d: unknown layout %q", i+1, spec.Layout)
			}
			slide = doc.CreateSlideWithLayout(layout)
		}
		slide.SetName(spec.Name)
		slide.SetHidden(spec.Hidden)
		if spec.Background != nil {
			slide.SetBackground(style.Fill(*spec.Background))
		}
		if err := b.shapes(slide.ShapeTree(), spec.Shapes); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		if spec.Notes != "" {
			box := slide.CreateNote().CreateRichText()
			box.SetName("Notes")
			box.SetOffset(notesOffset)
			box.SetExtent(notesExtent)
			box.SetParagraphs(Markdown(spec.Notes, b.font))
		}
	}

	return doc, nil
}

type builder struct {
	deck *Deck
	font style.Font
}

func (b *builder) shapes(tree *shape.Tree, specs []Shape) error {
	for i := range specs {
		if err := b.shape(tree, &specs[i]); err != nil {
			label := specs[i].Name
			if label == "" {
				label = fmt.Sprint(i + 1)
			}
			return fmt.Errorf("shape %s: %w", label, err)
		}
	}
	return nil
}

func (b *builder) shape(tree *shape.Tree, spec *Shape) error {
	switch kind := spec.Kind(); kind {
	case "text":
		return b.text(tree, spec)
	case "line":
		return b.line(tree, spec)
	case "table":
		return b.table(tree, spec)
	case "chart":
		return b.chart(tree, spec)
	case "image":
		pic := tree.CreateDrawing(media.File(b.deck.resolve(spec.Src)))
		b.common(pic, spec)
		return nil
	case "group":
		return b.group(tree, spec)
	default:
		return fmt.Errorf("unknown shape type %q", kind)
	}
}

// common applies the settings shared by all shape kinds.
func (b *builder) common(s shape.Shape, spec *Shape) {
	base := s.Common()
	base.SetName(spec.Name)
	base.SetDescription(spec.Description)
	if _, isGroup := s.(*shape.Group); !isGroup {
		base.SetOffset(slides.Point{X: spec.X.EMU(), Y: spec.Y.EMU()})
		base.SetExtent(slides.Extent{CX: spec.Width.EMU(), CY: spec.Height.EMU()})
	}
	base.SetRotation(spec.Rotation)
	base.SetFlip(spec.FlipH, spec.FlipV)
	if spec.Fill != nil {
		base.SetFill(style.Fill(*spec.Fill))
	}
	if spec.Border != nil {
		base.SetBorder(style.Border(*spec.Border))
	}
	if spec.Shadow {
		base.SetShadow(&style.DefaultShadow)
	}
	if spec.Link != "" {
		base.SetLink(&style.Hyperlink{URL: spec.Link, Tooltip: spec.Tooltip})
	}
}

func (b *builder) text(tree *shape.Tree, spec *Shape) error {
	box := tree.CreateRichText()
	b.common(box, spec)

	if spec.Geometry != "" {
		g, ok := geometryNames[spec.Geometry]
		if !ok {
			return fmt.Errorf("unknown geometry %q", spec.Geometry)
		}
		box.SetGeometry(g)
	}
	if spec.Anchor != "" {
		a, ok := anchorNames[spec.Anchor]
		if !ok {
			return fmt.Errorf("unknown anchor %q", spec.Anchor)
		}
		box.SetAnchor(a)
	}
	if spec.AutoFit != "" {
		a, ok := autoFitNames[spec.AutoFit]
		if !ok {
			return fmt.Errorf("unknown autofit mode %q", spec.AutoFit)
		}
		box.SetAutoFit(a)
	}
	if spec.Columns > 1 {
		box.SetColumns(spec.Columns)
	}

	paras := Markdown(spec.Text, spec.Font.Apply(b.font))
	if spec.Align != "" {
		align, ok := alignNames[spec.Align]
		if !ok {
			return fmt.Errorf("unknown alignment %q", spec.Align)
		}
		for i := range paras {
			paras[i].Style.Alignment.Horizontal = align
		}
	}
	box.SetParagraphs(paras)
	return nil
}

func point(coords []Length) (slides.Point, error) {
	if len(coords) != 2 {
		return slides.Point{}, fmt.Errorf("expected two coordinates, got %d", len(coords))
	}
	return slides.Point{X: coords[0].EMU(), Y: coords[1].EMU()}, nil
}

func (b *builder) line(tree *shape.Tree, spec *Shape) error {
	p, err := point(spec.From)
	if err != nil {
		return err
	}
	q, err := point(spec.To)
	if err != nil {
		return err
	}
	l := tree.CreateLine(p, q)
	l.SetName(spec.Name)
	l.SetDescription(spec.Description)
	if spec.Border != nil {
		l.SetBorder(style.Border(*spec.Border))
	}
	if spec.Shadow {
		l.SetShadow(&style.DefaultShadow)
	}
	return nil
}

func (b *builder) table(tree *shape.Tree, spec *Shape) error {
	cols := len(spec.ColumnWidths)
	for _, row := range spec.Rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return fmt.Errorf("table without columns")
	}

	tbl := tree.CreateTable(len(spec.Rows), cols)
	b.common(tbl, spec)
	for i, w := range spec.ColumnWidths {
		tbl.SetColumnWidth(i, w.EMU())
	}
	tbl.SetHeaderRow(spec.Header)
	tbl.SetBandRows(spec.Banded)

	var cellStyle style.Cell
	if spec.Border != nil {
		cellStyle.Borders = style.AllBorders(style.Border(*spec.Border))
	}
	font := spec.Font.Apply(b.font)
	for r, row := range spec.Rows {
		cellFont := font
		if r == 0 && spec.Header {
			cellFont.Bold = true
		}
		for c := range cols {
			var src string
			if c < len(row) {
				src = row[c]
			}
			tbl.SetCell(r, c, shape.Cell{
				Paragraphs: Markdown(src, cellFont),
				Style:      cellStyle,
			})
		}
	}

	for _, m := range spec.Merge {
		if m.Row < 0 || m.Col < 0 || m.Rows < 1 || m.Cols < 1 ||
			m.Row+m.Rows > len(spec.Rows) || m.Col+m.Cols > cols {
			return fmt.Errorf("invalid merge %+v", m)
		}
		tbl.Merge(m.Row, m.Col, m.Rows, m.Cols)
	}
	return nil
}

func (b *builder) chart(tree *shape.Tree, spec *Shape) error {
	typ, ok := shape.ParseChartType(spec.Chart)
	if !ok {
		return fmt.Errorf("unknown chart type %q", spec.Chart)
	}
	ch := tree.CreateChart(typ)
	b.common(ch, spec)
	ch.SetTitle(spec.Title)
	ch.SetCategories(spec.Categories...)
	for _, s := range spec.Series {
		series := shape.Series{Name: s.Name, Values: s.Values, XValues: s.XValues}
		if s.Color != nil {
			series.Fill = style.Solid(style.Color(*s.Color))
		}
		ch.AddSeries(series)
	}
	ch.SetLegend(spec.Legend)
	return nil
}

func (b *builder) group(tree *shape.Tree, spec *Shape) error {
	g := tree.CreateGroup()
	b.common(g, spec)
	if err := b.shapes(g.ShapeTree(), spec.Shapes); err != nil {
		return err
	}
	if spec.X != 0 || spec.Y != 0 {
		g.SetOffset(slides.Point{X: spec.X.EMU(), Y: spec.Y.EMU()})
	}
	return nil
}
