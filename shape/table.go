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

package shape

import (
	"fmt"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/style"
)

// Cell is one cell of a table.
type Cell struct {
	Paragraphs []Paragraph
	Style      style.Cell
	Anchor     Anchor

	// ColSpan and RowSpan give the number of grid columns and rows
	// covered by the cell.  Values less than 2 mean no merging.
	// The cells covered by a merged cell are not drawn.
	ColSpan int
	RowSpan int
}

func (c Cell) clone() Cell {
	c.Paragraphs = cloneParagraphs(c.Paragraphs)
	return c
}

// Text returns the plain text of the cell.
func (c Cell) Text() string {
	s := ""
	for i, p := range c.Paragraphs {
		if i > 0 {
			s += "\n"
		}
		s += p.Text()
	}
	return s
}

// Row is a row of table cells.
type Row struct {
	// Height is the minimum height of the row.  If this is zero, the
	// height of the table is shared between all rows without explicit
	// height.
	Height slides.EMU

	Cells []Cell
}

// Table is a grid of cells.
type Table struct {
	Base

	widths []slides.EMU
	rows   []Row

	headerRow bool
	bandRows  bool
}

var _ Shape = (*Table)(nil)

// NewTable returns a table with the given number of rows and columns.
// All cells are empty and all columns have the same width.
func NewTable(rows, cols int) *Table {
	if rows < 0 || cols < 1 {
		panic(fmt.Sprintf("shape: invalid table size %dx%d", rows, cols))
	}
	t := &Table{widths: make([]slides.EMU, cols)}
	for range rows {
		t.rows = append(t.rows, Row{Cells: make([]Cell, cols)})
	}
	return t
}

// NumColumns returns the number of grid columns.
func (t *Table) NumColumns() int {
	return len(t.widths)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// SetColumnWidth sets the width of column i.  A width of zero means that
// the column shares the remaining width of the table with the other
// columns of width zero.
func (t *Table) SetColumnWidth(i int, w slides.EMU) {
	t.widths[i] = w
	t.touch()
}

// ColumnWidths returns the widths of all columns.
func (t *Table) ColumnWidths() []slides.EMU {
	return distribute(t.widths, t.extent.CX)
}

// RowHeights returns the heights of all rows.
func (t *Table) RowHeights() []slides.EMU {
	h := make([]slides.EMU, len(t.rows))
	for i, r := range t.rows {
		h[i] = r.Height
	}
	return distribute(h, t.extent.CY)
}

// distribute replaces zero entries in sizes with equal shares of whatever
// remains of total.
func distribute(sizes []slides.EMU, total slides.EMU) []slides.EMU {
	res := make([]slides.EMU, len(sizes))
	copy(res, sizes)
	var fixed slides.EMU
	var open int
	for _, s := range sizes {
		if s > 0 {
			fixed += s
		} else {
			open++
		}
	}
	if open == 0 {
		return res
	}
	share := max(total-fixed, 0) / slides.EMU(open)
	for i, s := range res {
		if s <= 0 {
			res[i] = share
		}
	}
	return res
}

// AddRow appends an empty row and returns its index.
func (t *Table) AddRow(height slides.EMU) int {
	t.rows = append(t.rows, Row{Height: height, Cells: make([]Cell, len(t.widths))})
	t.touch()
	return len(t.rows) - 1
}

// RemoveRow deletes row i.
func (t *Table) RemoveRow(i int) {
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	t.touch()
}

// SetRowHeight sets the minimum height of row i.
func (t *Table) SetRowHeight(i int, h slides.EMU) {
	t.rows[i].Height = h
	t.touch()
}

// Cell returns a copy of the cell in row r and column c.
func (t *Table) Cell(r, c int) Cell {
	return t.rows[r].Cells[c].clone()
}

// SetCell replaces the cell in row r and column c.
func (t *Table) SetCell(r, c int, cell Cell) {
	t.rows[r].Cells[c] = cell.clone()
	t.touch()
}

// SetText replaces the text of a cell, keeping the cell style.
func (t *Table) SetText(r, c int, text string, font style.Font) {
	t.rows[r].Cells[c].Paragraphs = []Paragraph{TextParagraph(text, font)}
	t.touch()
}

// SetCellStyle changes the fill and borders of a cell.
func (t *Table) SetCellStyle(r, c int, s style.Cell) {
	t.rows[r].Cells[c].Style = s
	t.touch()
}

// Merge merges the rectangle of cells with top left corner (r, c) and the
// given size into one cell.
func (t *Table) Merge(r, c, rows, cols int) {
	cell := &t.rows[r].Cells[c]
	cell.RowSpan = rows
	cell.ColSpan = cols
	t.touch()
}

// HeaderRow reports whether the first row is formatted as a header.
func (t *Table) HeaderRow() bool {
	return t.headerRow
}

// SetHeaderRow sets whether the first row is formatted as a header.
func (t *Table) SetHeaderRow(on bool) {
	t.headerRow = on
	t.touch()
}

// BandRows reports whether alternate rows are shaded.
func (t *Table) BandRows() bool {
	return t.bandRows
}

// SetBandRows sets whether alternate rows are shaded.
func (t *Table) SetBandRows(on bool) {
	t.bandRows = on
	t.touch()
}

// Span returns the number of rows and columns covered by the cell at
// (r, c), clipped to the table.
func (t *Table) Span(r, c int) (rows, cols int) {
	cell := t.rows[r].Cells[c]
	rows = min(max(cell.RowSpan, 1), len(t.rows)-r)
	cols = min(max(cell.ColSpan, 1), len(t.widths)-c)
	return rows, cols
}

// Covered returns a grid which marks all cells hidden by a merged cell.
func (t *Table) Covered() [][]bool {
	grid := make([][]bool, len(t.rows))
	for r := range grid {
		grid[r] = make([]bool, len(t.widths))
	}
	for r := range t.rows {
		for c := range t.widths {
			if grid[r][c] {
				continue
			}
			rows, cols := t.Span(r, c)
			for i := r; i < r+rows; i++ {
				for j := c; j < c+cols; j++ {
					if i != r || j != c {
						grid[i][j] = true
					}
				}
			}
		}
	}
	return grid
}

// Digest implements the [slides.Hashable] interface.
func (t *Table) Digest() slides.Digest {
	return t.cache.Get(func() slides.Digest {
		h := slides.NewHasher(magicTable)
		t.writeDigest(h)
		writeFrame(h, t.offset, t.extent)
		h.Bool(t.headerRow)
		h.Bool(t.bandRows)
		h.Uint(uint64(len(t.widths)))
		for _, w := range t.widths {
			h.Int(int64(w))
		}
		h.Uint(uint64(len(t.rows)))
		for _, row := range t.rows {
			h.Int(int64(row.Height))
			for _, c := range row.Cells {
				h.Child(c.Style)
				h.Uint(uint64(c.Anchor))
				h.Int(int64(c.ColSpan))
				h.Int(int64(c.RowSpan))
				writeParagraphs(h, c.Paragraphs)
			}
		}
		return h.Sum()
	})
}

// Clone implements the [Shape] interface.
func (t *Table) Clone() Shape {
	c := &Table{
		Base:      t.cloneBase(),
		widths:    append([]slides.EMU(nil), t.widths...),
		rows:      make([]Row, len(t.rows)),
		headerRow: t.headerRow,
		bandRows:  t.bandRows,
	}
	for i, row := range t.rows {
		cells := make([]Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.clone()
		}
		c.rows[i] = Row{Height: row.Height, Cells: cells}
	}
	return c
}

// StyleObjects implements the [Shape] interface.  Cells hidden by merged
// cells are skipped.
func (t *Table) StyleObjects() []style.Ref {
	refs := t.styleRefs()
	covered := t.Covered()
	for r, row := range t.rows {
		for c, cell := range row.Cells {
			if covered[r][c] {
				continue
			}
			refs = append(refs, style.Ref{Role: style.RoleCell, Value: cell.Style})
			refs = append(refs, paragraphRefs(cell.Paragraphs)...)
		}
	}
	return refs
}

func (t *Table) isShape() {}
