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
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// MonospaceFont is used for code spans and code blocks.
const MonospaceFont = "Courier New"

// headingScale gives the font size of headings relative to body text.
var headingScale = []float64{1, 1.6, 1.35, 1.15}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// Markdown converts Markdown text into paragraphs.  Emphasis, strong
// emphasis, strikethrough, code and links become run formatting,
// headings become larger bold paragraphs and list items become bulleted
// or numbered paragraphs.  Other constructs are reduced to their text.
func Markdown(src string, font style.Font) []shape.Paragraph {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))
	c := &mdConverter{src: source}
	c.blocks(doc, font, style.Paragraph{})
	return c.out
}

type mdConverter struct {
	src []byte
	out []shape.Paragraph
}

func (c *mdConverter) blocks(parent ast.Node, font style.Font, ps style.Paragraph) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		c.block(n, font, ps)
		// only the first block of a list item carries the bullet
		ps.Bullet = style.Bullet{}
	}
}

func (c *mdConverter) block(n ast.Node, font style.Font, ps style.Paragraph) {
	switch n := n.(type) {
	case *ast.Heading:
		level := min(n.Level, len(headingScale)-1)
		font.Size *= headingScale[level]
		font.Bold = true
		ps.SpaceAfter = 6
		c.paragraph(n, font, ps)
	case *ast.Paragraph, *ast.TextBlock:
		c.paragraph(n, font, ps)
	case *ast.List:
		bullet := style.Bullet{Kind: style.BulletChar, Char: "•"}
		if n.IsOrdered() {
			bullet = style.Bullet{Kind: style.BulletNumber, StartAt: n.Start}
		}
		item := ps
		if ps.Bullet.Kind != style.BulletNone || parentIsItem(n) {
			item.Level++
		}
		for li := n.FirstChild(); li != nil; li = li.NextSibling() {
			item.Bullet = bullet
			c.blocks(li, font, item)
		}
	case *ast.Blockquote:
		font.Italic = true
		ps.Level++
		c.blocks(n, font, ps)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		font.Name = MonospaceFont
		lines := n.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			line := strings.TrimRight(string(seg.Value(c.src)), "\r\n")
			p := shape.Paragraph{Style: ps}
			if line != "" {
				p.Runs = []shape.Run{{Text: line, Font: font}}
			}
			c.out = append(c.out, p)
			ps.Bullet = style.Bullet{}
		}
	case *ast.ThematicBreak, *ast.HTMLBlock:
		// not representable
	default:
		c.blocks(n, font, ps)
	}
}

func parentIsItem(n ast.Node) bool {
	_, ok := n.Parent().(*ast.ListItem)
	return ok
}

func (c *mdConverter) paragraph(n ast.Node, font style.Font, ps style.Paragraph) {
	p := &shape.Paragraph{Style: ps}
	c.inlines(n, font, nil, p)
	c.out = append(c.out, *p)
}

func (c *mdConverter) inlines(parent ast.Node, font style.Font, link *style.Hyperlink, p *shape.Paragraph) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			addRun(p, string(n.Segment.Value(c.src)), font, link)
			if n.HardLineBreak() {
				p.Runs = append(p.Runs, shape.Run{Font: font, Break: true})
			} else if n.SoftLineBreak() {
				addRun(p, " ", font, link)
			}
		case *ast.String:
			addRun(p, string(n.Value), font, link)
		case *ast.Emphasis:
			f := font
			if n.Level >= 2 {
				f.Bold = true
			} else {
				f.Italic = true
			}
			c.inlines(n, f, link, p)
		case *east.Strikethrough:
			f := font
			f.Strike = true
			c.inlines(n, f, link, p)
		case *ast.CodeSpan:
			f := font
			f.Name = MonospaceFont
			c.inlines(n, f, link, p)
		case *ast.Link:
			l := &style.Hyperlink{URL: string(n.Destination), Tooltip: string(n.Title)}
			c.inlines(n, font, l, p)
		case *ast.AutoLink:
			l := &style.Hyperlink{URL: string(n.URL(c.src))}
			addRun(p, string(n.Label(c.src)), font, l)
		case *ast.RawHTML:
			// dropped
		default:
			c.inlines(n, font, link, p)
		}
	}
}

// addRun appends text to p, extending the last run if it has the same
// formatting.
func addRun(p *shape.Paragraph, s string, font style.Font, link *style.Hyperlink) {
	if s == "" {
		return
	}
	if k := len(p.Runs); k > 0 {
		last := &p.Runs[k-1]
		if !last.Break && last.Font == font && sameLink(last.Link, link) {
			last.Text += s
			return
		}
	}
	p.Runs = append(p.Runs, shape.Run{Text: s, Font: font, Link: link})
}

func sameLink(a, b *style.Hyperlink) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
