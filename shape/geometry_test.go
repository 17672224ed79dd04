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

	"seehuhn.de/go/slides"
)

func box(t *Tree, x, y, cx, cy slides.EMU) *RichText {
	s := t.CreateRichText()
	s.SetOffset(slides.Point{X: x, Y: y})
	s.SetExtent(slides.Extent{CX: cx, CY: cy})
	return s
}

func TestAggregateTwoBoxes(t *testing.T) {
	g := NewGroup()
	box(&g.Tree, 0, 0, 10, 10)
	box(&g.Tree, 20, 5, 10, 10)

	if d := cmp.Diff(slides.Point{}, CalculateOffsets(g)); d != "" {
		t.Errorf("offset (-want +got):\n%s", d)
	}
	if d := cmp.Diff(slides.Extent{CX: 30, CY: 15}, CalculateExtents(g)); d != "" {
		t.Errorf("extent (-want +got):\n%s", d)
	}
	if d := cmp.Diff(slides.Extent{CX: 30, CY: 15}, g.Extent()); d != "" {
		t.Errorf("group extent (-want +got):\n%s", d)
	}
}

func TestAggregateEmpty(t *testing.T) {
	g := NewGroup()
	if p := CalculateOffsets(g); p != (slides.Point{}) {
		t.Errorf("offset of empty group: %v", p)
	}
	if e := CalculateExtents(g); e != (slides.Extent{}) {
		t.Errorf("extent of empty group: %v", e)
	}
	if !g.Bounds().IsEmpty() {
		t.Error("bounds of empty group not empty")
	}

	// empty nested groups don't contribute
	var tree Tree
	tree.CreateGroup()
	box(&tree, 5, 5, 1, 1)
	want := slides.Extent{CX: 1, CY: 1}
	if e := CalculateExtents(&tree); e != want {
		t.Errorf("extent %v != %v", e, want)
	}
}

func TestNestedGroups(t *testing.T) {
	var slide Tree
	outer := slide.CreateGroup()
	outer.SetOrigin(slides.Point{X: 100, Y: 100})
	box(&outer.Tree, 0, 0, 10, 10)
	inner := outer.CreateGroup()
	inner.SetOrigin(slides.Point{X: 50, Y: 0})
	leaf := box(&inner.Tree, 5, 5, 10, 20)

	if p := Absolute(leaf); p != (slides.Point{X: 155, Y: 105}) {
		t.Errorf("absolute position %v", p)
	}
	if p := inner.Offset(); p != (slides.Point{X: 55, Y: 5}) {
		t.Errorf("inner offset %v", p)
	}

	b := slide.Bounds()
	want := Bounds{
		Offset:   slides.Point{X: 100, Y: 100},
		Extent:   slides.Extent{CX: 65, CY: 25},
		nonEmpty: true,
	}
	if d := cmp.Diff(want, b, cmp.AllowUnexported(Bounds{})); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}
	if p := inner.Bounds().Offset; p != (slides.Point{X: 155, Y: 105}) {
		t.Errorf("inner bounds offset %v", p)
	}
}

func TestGeometryCache(t *testing.T) {
	var slide Tree
	g := slide.CreateGroup()
	a := box(&g.Tree, 0, 0, 10, 10)
	box(&g.Tree, 20, 5, 10, 10)

	slide.Bounds()
	n := slide.aggregations
	m := g.Tree.aggregations
	slide.Bounds()
	CalculateExtents(g)
	if slide.aggregations != n || g.Tree.aggregations != m {
		t.Fatal("cached bounds were recomputed")
	}

	// moving a member must invalidate the group and the enclosing tree
	a.SetOffset(slides.Point{X: -10, Y: 0})
	got := slide.Bounds()
	if got.Offset != (slides.Point{X: -10, Y: 0}) || got.Extent != (slides.Extent{CX: 40, CY: 15}) {
		t.Errorf("stale bounds after move: %+v", got)
	}

	// resize
	a.SetExtent(slides.Extent{CX: 10, CY: 100})
	if e := slide.Bounds().Extent; e != (slides.Extent{CX: 40, CY: 100}) {
		t.Errorf("stale extent after resize: %v", e)
	}

	// removal
	g.Remove(a)
	if e := slide.Bounds().Extent; e != (slides.Extent{CX: 10, CY: 10}) {
		t.Errorf("stale extent after remove: %v", e)
	}

	// addition
	box(&g.Tree, 0, 0, 1, 1)
	if p := slide.Bounds().Offset; p != (slides.Point{}) {
		t.Errorf("stale offset after add: %v", p)
	}

	// moving the group origin
	g.SetOrigin(slides.Point{X: 7, Y: 7})
	if p := slide.Bounds().Offset; p != (slides.Point{X: 7, Y: 7}) {
		t.Errorf("stale offset after origin change: %v", p)
	}

	// the cached value always matches a fresh computation
	fresh := aggregate(slide.shapes)
	if d := cmp.Diff(fresh, slide.localBounds(), cmp.AllowUnexported(Bounds{})); d != "" {
		t.Errorf("cache mismatch (-fresh +cached):\n%s", d)
	}
}

func TestGroupSetOffset(t *testing.T) {
	var slide Tree
	g := slide.CreateGroup()
	a := box(&g.Tree, 10, 10, 10, 10)
	box(&g.Tree, 30, 10, 10, 10)

	g.SetOffset(slides.Point{X: 100, Y: 200})
	if p := g.Offset(); p != (slides.Point{X: 100, Y: 200}) {
		t.Errorf("group offset %v", p)
	}
	if p := Absolute(a); p != (slides.Point{X: 100, Y: 200}) {
		t.Errorf("member position %v", p)
	}
	if p := a.Offset(); p != (slides.Point{X: 10, Y: 10}) {
		t.Errorf("local member offset changed: %v", p)
	}
}

func TestGroupSetExtent(t *testing.T) {
	g := NewGroup()
	a := box(&g.Tree, 10, 10, 10, 10)
	b := box(&g.Tree, 30, 20, 10, 10)

	g.SetExtent(slides.Extent{CX: 60, CY: 40})
	if e := g.Extent(); e != (slides.Extent{CX: 60, CY: 40}) {
		t.Errorf("group extent %v", e)
	}
	if p := g.Offset(); p != (slides.Point{X: 10, Y: 10}) {
		t.Errorf("group offset moved to %v", p)
	}
	if e := a.Extent(); e != (slides.Extent{CX: 20, CY: 20}) {
		t.Errorf("member extent %v", e)
	}
	if p := b.Offset(); p != (slides.Point{X: 50, Y: 30}) {
		t.Errorf("member offset %v", p)
	}
}
