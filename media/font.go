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

package media

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/slides"
)

// FontFile is a loaded TrueType or OpenType font file.
type FontFile struct {
	Blob   *Blob
	Family string
	Bold   bool
	Italic bool
}

// LoadFont reads a font file and extracts the family name and style.
func LoadFont(src Source) (*FontFile, error) {
	b, err := src.Load()
	if err != nil {
		return nil, err
	}

	info, err := sfnt.Read(bytes.NewReader(b.Data))
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", src, err)
	}
	if info.FamilyName == "" {
		return nil, fmt.Errorf("font %s: missing family name", src)
	}

	if bytes.HasPrefix(b.Data, []byte("OTTO")) {
		b.MIME, b.Ext = OTF, "otf"
	} else {
		b.MIME, b.Ext = TTF, "ttf"
	}

	f := &FontFile{
		Blob:   b,
		Family: info.FamilyName,
		Bold:   info.IsBold,
		Italic: info.IsItalic,
	}
	return f, nil
}

// Digest returns the digest of the font data.
// This implements the [slides.Hashable] interface.
func (f *FontFile) Digest() slides.Digest {
	return f.Blob.Sum
}
