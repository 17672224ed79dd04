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
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/style"
)

func TestAddTwicePanics(t *testing.T) {
	var a, b Tree
	s := a.CreateRichText()

	defer func() {
		if recover() == nil {
			t.Error("adding an attached shape did not panic")
		}
	}()
	b.Add(s)
}

func TestGroupCycle(t *testing.T) {
	outer := NewGroup()
	inner := outer.CreateGroup()
	outer.Tree.Remove(inner)
	inner.Add(NewRichText())

	// detached: re-adding is fine
	outer.Add(inner)

	defer func() {
		if recover() == nil {
			t.Error("adding a group to its own member did not panic")
		}
	}()
	outer.Common().parent = nil
	inner.Add(outer)
}

func TestRemoveDetaches(t *testing.T) {
	var a, b Tree
	s := a.CreateRichText()
	if !a.Remove(s) {
		t.Fatal("Remove returned false")
	}
	if a.Remove(s) {
		t.Error("second Remove returned true")
	}
	if s.Parent() != nil {
		t.Error("removed shape still has a parent")
	}
	b.Add(s)
	if s.Parent() != &b {
		t.Error("wrong parent")
	}
}

func TestDigestChanges(t *testing.T) {
	font := style.DefaultFont
	s := NewRichText()
	s.AddText("hello", font)
	d0 := s.Digest()

	s.SetName("title")
	d1 := s.Digest()
	if d1 == d0 {
		t.Error("name change did not change the digest")
	}

	s.SetOffset(slides.Point{X: 1})
	if s.Digest() == d1 {
		t.Error("move did not change the digest")
	}

	c := s.Clone()
	if c.Digest() != s.Digest() {
		t.Error("clone has a different digest")
	}
}

func TestGroupDigestFollowsMembers(t *testing.T) {
	g := NewGroup()
	s := g.CreateRichText()
	d0 := g.Digest()

	s.SetFill(style.Solid(style.RGB(255, 0, 0)))
	d1 := g.Digest()
	if d1 == d0 {
		t.Error("changing a member did not change the group digest")
	}

	s.SetOffset(slides.Point{X: 10, Y: 10})
	if g.Digest() == d1 {
		t.Error("moving a member did not change the group digest")
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := NewGroup()
	txt := g.CreateRichText()
	txt.AddText("a", style.DefaultFont)
	link := &style.Hyperlink{URL: "https://example.com/"}
	txt.SetLink(link)
	link.URL = "https://changed.example.com/"

	c := g.Clone().(*Group)
	if c.Parent() != nil {
		t.Error("clone is attached")
	}
	if c.Len() != 1 {
		t.Fatalf("clone has %d members", c.Len())
	}
	ct := c.At(0).(*RichText)
	if ct == txt {
		t.Fatal("member was not cloned")
	}
	if ct.Parent() != &c.Tree {
		t.Error("cloned member has wrong parent")
	}
	if got := ct.Link().URL; got != "https://example.com/" {
		t.Errorf("link %q", got)
	}

	ct.AddText("b", style.DefaultFont)
	if txt.Text() != "a" {
		t.Errorf("original text changed to %q", txt.Text())
	}
	if c.Digest() == g.Digest() {
		t.Error("digest did not diverge")
	}
}

func TestStyleObjects(t *testing.T) {
	bold := style.DefaultFont
	bold.Bold = true
	s := NewRichText()
	s.AddParagraph(Paragraph{
		Runs: []Run{
			{Text: "a", Font: style.DefaultFont, Lang: language.English},
			{Text: "b", Font: bold, Link: &style.Hyperlink{URL: "https://x.example/"}},
		},
	})

	var roles []style.Role
	for _, ref := range s.StyleObjects() {
		roles = append(roles, ref.Role)
	}
	want := []style.Role{
		style.RoleFill, style.RoleBorder, style.RoleGraphic,
		style.RoleParagraph, style.RoleFont, style.RoleFont, style.RoleLink,
	}
	if d := cmp.Diff(want, roles); d != "" {
		t.Errorf("roles (-want +got):\n%s", d)
	}
}

func TestTextParagraph(t *testing.T) {
	p := TextParagraph("one\ntwo", style.DefaultFont)
	if len(p.Runs) != 3 || !p.Runs[1].Break {
		t.Fatalf("unexpected runs %+v", p.Runs)
	}
	if p.Text() != "one\ntwo" {
		t.Errorf("text %q", p.Text())
	}
}

func TestLineEndpoints(t *testing.T) {
	type testCase struct {
		p, q slides.Point
	}
	testCases := []testCase{
		{slides.Point{X: 0, Y: 0}, slides.Point{X: 10, Y: 20}},
		{slides.Point{X: 10, Y: 0}, slides.Point{X: 0, Y: 20}},
		{slides.Point{X: 0, Y: 20}, slides.Point{X: 10, Y: 0}},
		{slides.Point{X: 10, Y: 20}, slides.Point{X: 0, Y: 0}},
	}
	for _, tc := range testCases {
		l := NewLine(tc.p, tc.q)
		if e := l.Extent(); e != (slides.Extent{CX: 10, CY: 20}) {
			t.Errorf("%v-%v: extent %v", tc.p, tc.q, e)
		}
		p, q := l.Endpoints()
		if p != tc.p || q != tc.q {
			t.Errorf("endpoints %v-%v, want %v-%v", p, q, tc.p, tc.q)
		}
	}
}

func TestTableSpans(t *testing.T) {
	tab := NewTable(3, 3)
	tab.Merge(0, 0, 2, 2)
	tab.Merge(2, 2, 5, 5) // clipped

	want := [][]bool{
		{false, true, false},
		{true, true, false},
		{false, false, false},
	}
	if d := cmp.Diff(want, tab.Covered()); d != "" {
		t.Errorf("covered (-want +got):\n%s", d)
	}
	if r, c := tab.Span(2, 2); r != 1 || c != 1 {
		t.Errorf("span %d×%d", r, c)
	}

	n := 0
	for _, ref := range tab.StyleObjects() {
		if ref.Role == style.RoleCell {
			n++
		}
	}
	if n != 6 {
		t.Errorf("%d cell styles, want 6", n)
	}
}

func TestTableSizes(t *testing.T) {
	tab := NewTable(2, 3)
	tab.SetExtent(slides.Extent{CX: 300, CY: 100})
	tab.SetColumnWidth(0, 100)
	if d := cmp.Diff([]slides.EMU{100, 100, 100}, tab.ColumnWidths()); d != "" {
		t.Errorf("widths (-want +got):\n%s", d)
	}
	tab.SetRowHeight(1, 70)
	if d := cmp.Diff([]slides.EMU{30, 70}, tab.RowHeights()); d != "" {
		t.Errorf("heights (-want +got):\n%s", d)
	}
}

func TestWalk(t *testing.T) {
	var tree Tree
	tree.CreateRichText()
	g := tree.CreateGroup()
	g.CreateDrawing(media.Memory([]byte("<svg/>"), media.SVG))
	inner := g.CreateGroup()
	inner.CreateChart(ChartPie)
	tree.CreateLine(slides.Point{}, slides.Point{X: 1, Y: 1})

	var got []string
	Walk(tree.Shapes(), func(s Shape, depth int) error {
		got = append(got, Kind(s)+string(rune('0'+depth)))
		return nil
	})
	want := []string{"text0", "group0", "drawing1", "group1", "chart2", "line0"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("walk order (-want +got):\n%s", d)
	}
}

func TestChartTypeNames(t *testing.T) {
	for typ := ChartBar; typ <= ChartRadar; typ++ {
		got, ok := ParseChartType(typ.String())
		if !ok || got != typ {
			t.Errorf("%s: got %v, %t", typ, got, ok)
		}
	}
	if _, ok := ParseChartType("sunburst"); ok {
		t.Error("unknown chart type accepted")
	}
}
