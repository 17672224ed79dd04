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

package style

import (
	"testing"

	"seehuhn.de/go/slides"
)

func TestFontDigest(t *testing.T) {
	a := Font{Name: "Calibri", Size: 18}
	b := Font{Name: "Calibri", Size: 18}
	if a.Digest() != b.Digest() {
		t.Error("equal fonts have different digests")
	}

	changes := []func(f *Font){
		func(f *Font) { f.Name = "Arial" },
		func(f *Font) { f.Size = 20 },
		func(f *Font) { f.Bold = true },
		func(f *Font) { f.Italic = true },
		func(f *Font) { f.Underline = UnderlineSingle },
		func(f *Font) { f.Strike = true },
		func(f *Font) { f.Color = RGB(255, 0, 0) },
		func(f *Font) { f.Baseline = 30 },
		func(f *Font) { f.CharSpacing = 1 },
	}
	seen := map[slides.Digest]int{a.Digest(): -1}
	for i, change := range changes {
		f := a
		change(&f)
		d := f.Digest()
		if j, dup := seen[d]; dup {
			t.Errorf("change %d gives the same digest as %d", i, j)
		}
		seen[d] = i
	}
}

func TestFillDigestIgnoresUnusedFields(t *testing.T) {
	a := Solid(RGB(1, 2, 3))
	b := a
	b.End = RGB(9, 9, 9)
	b.Angle = 45
	if a.Digest() != b.Digest() {
		t.Error("unused gradient fields change the digest of a solid fill")
	}

	var none Fill
	other := Fill{Start: RGB(1, 1, 1)}
	if none.Digest() != other.Digest() {
		t.Error("color of an empty fill changes the digest")
	}

	g1 := LinearGradient(White, Black, 90)
	g2 := LinearGradient(White, Black, 0)
	if g1.Digest() == g2.Digest() {
		t.Error("gradient angle is ignored")
	}
}

func TestBorderNone(t *testing.T) {
	a := Border{}
	b := Border{Color: RGB(255, 0, 0), Dash: DashDot}
	if a.Digest() != b.Digest() {
		t.Error("invisible borders differ")
	}
	if Line(1, Black).Digest() == a.Digest() {
		t.Error("visible border hashes like an invisible one")
	}
}

func TestCompositeDigest(t *testing.T) {
	shadow := DefaultShadow
	g1 := Graphic{Fill: Solid(White), Border: Line(1, Black)}
	g2 := Graphic{Fill: Solid(White), Border: Line(1, Black), Shadow: &shadow}
	if g1.Digest() == g2.Digest() {
		t.Error("shadow is ignored")
	}

	shadowCopy := DefaultShadow
	g3 := Graphic{Fill: Solid(White), Border: Line(1, Black), Shadow: &shadowCopy}
	if g2.Digest() != g3.Digest() {
		t.Error("graphics with equal shadows at different addresses differ")
	}
}

func TestParagraphDigest(t *testing.T) {
	red := RGB(255, 0, 0)
	red2 := RGB(255, 0, 0)
	a := Paragraph{Bullet: Bullet{Kind: BulletChar, Char: "•", Color: &red}}
	b := Paragraph{Bullet: Bullet{Kind: BulletChar, Char: "•", Color: &red2}}
	if a.Digest() != b.Digest() {
		t.Error("equal paragraphs differ")
	}

	c := Paragraph{Bullet: Bullet{Kind: BulletChar, Char: "•"}}
	if a.Digest() == c.Digest() {
		t.Error("bullet color is ignored")
	}

	d := Paragraph{LineSpacing: 100}
	e := Paragraph{}
	if d.Digest() != e.Digest() {
		t.Error("explicit 100% line spacing differs from the default")
	}
}

func TestParagraphClone(t *testing.T) {
	red := RGB(255, 0, 0)
	a := Paragraph{Bullet: Bullet{Kind: BulletChar, Char: "-", Color: &red}}
	b := a.Clone()
	b.Bullet.Color.G = 255
	if a.Bullet.Color.G != 0 {
		t.Error("Clone shares the bullet color")
	}
}

func TestParseHex(t *testing.T) {
	testCases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"FF0000", RGB(255, 0, 0), true},
		{"#00ff00", RGB(0, 255, 0), true},
		{"800000FF", Color{A: 0x80, B: 0xFF}, true},
		{"F00", Color{}, false},
		{"GG0000", Color{}, false},
	}
	for _, tc := range testCases {
		got, err := ParseHex(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseHex(%q): unexpected error status %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if s := RGB(1, 171, 255).Hex(); s != "01ABFF" {
		t.Errorf("Hex() = %q", s)
	}
}
