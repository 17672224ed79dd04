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

package export

import (
	"fmt"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/opc"
	"seehuhn.de/go/slides/style"
)

// Resources holds the deduplicated resources of one export.
//
// The tables are filled during the collect phase and frozen before the
// first part is rendered.  Indices are only meaningful within one export.
type Resources struct {
	Fonts       *slides.Table[style.Font]
	Fills       *slides.Table[style.Fill]
	Borders     *slides.Table[style.Border]
	Shadows     *slides.Table[style.Shadow]
	Links       *slides.Table[style.Hyperlink]
	Paragraphs  *slides.Table[style.Paragraph]
	Graphics    *slides.Table[style.Graphic]
	Cells       *slides.Table[style.Cell]
	Backgrounds *slides.Table[style.Fill]

	// Media holds the embedded images, deduplicated by the digest of
	// their content.
	Media *slides.Table[*media.Blob]

	// EmbeddedFonts holds the font files to embed.
	EmbeddedFonts *slides.Table[*media.FontFile]

	// Rels holds the relationships of all parts, for formats which use
	// them.
	Rels *opc.Relationships

	// bySource maps the digest of a media source to the blob in the
	// Media table.
	bySource map[slides.Digest]*media.Blob
}

// NewResources returns an empty set of resource tables.
func NewResources() *Resources {
	return &Resources{
		Fonts:         slides.NewTable[style.Font](),
		Fills:         slides.NewTable[style.Fill](),
		Borders:       slides.NewTable[style.Border](),
		Shadows:       slides.NewTable[style.Shadow](),
		Links:         slides.NewTable[style.Hyperlink](),
		Paragraphs:    slides.NewTable[style.Paragraph](),
		Graphics:      slides.NewTable[style.Graphic](),
		Cells:         slides.NewTable[style.Cell](),
		Backgrounds:   slides.NewTable[style.Fill](),
		Media:         slides.NewTable[*media.Blob](),
		EmbeddedFonts: slides.NewTable[*media.FontFile](),
		Rels:          opc.NewRelationships(),
		bySource:      make(map[slides.Digest]*media.Blob),
	}
}

// Intern enters a style object into the table for its role, and returns
// the index.  Composite cell styles also enter their fill and borders.
func (r *Resources) Intern(ref style.Ref) int {
	switch v := ref.Value.(type) {
	case style.Font:
		return r.Fonts.Intern(v)
	case style.Fill:
		return r.Fills.Intern(v)
	case style.Border:
		return r.Borders.Intern(v)
	case style.Shadow:
		return r.Shadows.Intern(v)
	case style.Hyperlink:
		return r.Links.Intern(v)
	case style.Paragraph:
		return r.Paragraphs.Intern(v)
	case style.Graphic:
		return r.Graphics.Intern(v)
	case style.Cell:
		r.Fills.Intern(v.Fill)
		for _, b := range []style.Border{v.Borders.Left, v.Borders.Right, v.Borders.Top, v.Borders.Bottom} {
			r.Borders.Intern(b)
		}
		return r.Cells.Intern(v)
	default:
		panic(fmt.Sprintf("export: no table for %s object %T", ref.Role, ref.Value))
	}
}

// addBlob records the blob loaded from src.  If a blob with the same
// content is already known, that blob is used instead.
func (r *Resources) addBlob(src media.Source, b *media.Blob) *media.Blob {
	idx := r.Media.Intern(b)
	canonical := r.Media.At(idx)
	r.bySource[src.Digest()] = canonical
	return canonical
}

// Blob returns the media blob for a source.  Blob panics if the source
// was not seen in the collect phase.
func (r *Resources) Blob(src media.Source) *media.Blob {
	b, ok := r.bySource[src.Digest()]
	if !ok {
		panic("export: media " + src.String() + " was not collected")
	}
	return b
}

// Freeze prevents all further changes to the tables.
func (r *Resources) Freeze() {
	r.Fonts.Freeze()
	r.Fills.Freeze()
	r.Borders.Freeze()
	r.Shadows.Freeze()
	r.Links.Freeze()
	r.Paragraphs.Freeze()
	r.Graphics.Freeze()
	r.Cells.Freeze()
	r.Backgrounds.Freeze()
	r.Media.Freeze()
	r.EmbeddedFonts.Freeze()
	r.Rels.Freeze()
}
