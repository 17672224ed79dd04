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

package document

import (
	"time"

	"seehuhn.de/go/slides"
)

// Properties holds the document information of a presentation.
type Properties struct {
	Title          string
	Subject        string
	Creator        string
	LastModifiedBy string
	Description    string
	Keywords       []string
	Category       string
	Company        string

	// Created and Modified are stored in UTC.  Zero values are omitted
	// from the output.
	Created  time.Time
	Modified time.Time

	Revision int
}

// Digest implements the [slides.Hashable] interface.
func (p *Properties) Digest() slides.Digest {
	h := slides.NewHasher(magicProperties)
	h.String(p.Title)
	h.String(p.Subject)
	h.String(p.Creator)
	h.String(p.LastModifiedBy)
	h.String(p.Description)
	h.Uint(uint64(len(p.Keywords)))
	for _, k := range p.Keywords {
		h.String(k)
	}
	h.String(p.Category)
	h.String(p.Company)
	writeTime(h, p.Created)
	writeTime(h, p.Modified)
	h.Int(int64(p.Revision))
	return h.Sum()
}

func writeTime(h *slides.Hasher, t time.Time) {
	if t.IsZero() {
		h.Bool(false)
		return
	}
	h.Bool(true)
	h.Int(t.UTC().Unix())
}
