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
	"strings"

	"golang.org/x/text/language"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/style"
)

// Run is a piece of text with uniform formatting.
type Run struct {
	Text string
	Font style.Font

	// Link, if non-nil, turns the run into a hyperlink.
	Link *style.Hyperlink

	// Lang is the language of the text.  The zero value means that the
	// language is not specified.
	Lang language.Tag

	// Break marks a line break inside the paragraph.  For breaks, only
	// the font is used and Text is ignored.
	Break bool
}

// Paragraph is a sequence of runs, together with paragraph formatting.
type Paragraph struct {
	Style style.Paragraph
	Runs  []Run
}

// TextParagraph returns a paragraph consisting of a single run.
// Newline characters in text are turned into line breaks.
func TextParagraph(text string, font style.Font) Paragraph {
	var p Paragraph
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			p.Runs = append(p.Runs, Run{Font: font, Break: true})
		}
		if line != "" {
			p.Runs = append(p.Runs, Run{Text: line, Font: font})
		}
	}
	return p
}

// Text returns the plain text of the paragraph.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		if r.Break {
			b.WriteByte('\n')
		} else {
			b.WriteString(r.Text)
		}
	}
	return b.String()
}

// Clone returns a deep copy of p.
func (p Paragraph) Clone() Paragraph {
	c := Paragraph{Style: p.Style.Clone()}
	if p.Runs != nil {
		c.Runs = make([]Run, len(p.Runs))
		for i, r := range p.Runs {
			if r.Link != nil {
				l := *r.Link
				r.Link = &l
			}
			c.Runs[i] = r
		}
	}
	return c
}

func cloneParagraphs(pp []Paragraph) []Paragraph {
	if pp == nil {
		return nil
	}
	res := make([]Paragraph, len(pp))
	for i, p := range pp {
		res[i] = p.Clone()
	}
	return res
}

func writeParagraphs(h *slides.Hasher, pp []Paragraph) {
	h.Uint(uint64(len(pp)))
	for _, p := range pp {
		h.Child(p.Style)
		h.Uint(uint64(len(p.Runs)))
		for _, r := range p.Runs {
			h.Bool(r.Break)
			if !r.Break {
				h.String(r.Text)
			}
			h.Child(r.Font)
			h.Child(r.Link)
			h.String(langString(r.Lang))
		}
	}
}

// paragraphRefs lists the paragraph styles, fonts and hyperlinks used in pp.
func paragraphRefs(pp []Paragraph) []style.Ref {
	var refs []style.Ref
	for _, p := range pp {
		refs = append(refs, style.Ref{Role: style.RoleParagraph, Value: p.Style})
		for _, r := range p.Runs {
			refs = append(refs, style.Ref{Role: style.RoleFont, Value: r.Font})
			if r.Link != nil {
				refs = append(refs, style.Ref{Role: style.RoleLink, Value: *r.Link})
			}
		}
	}
	return refs
}

func langString(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	return tag.String()
}
