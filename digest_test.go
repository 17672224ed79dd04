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

package slides

import (
	"testing"
)

type testItem struct {
	Name  string
	Size  float64
	Child *testItem
}

func (it *testItem) Digest() Digest {
	h := NewHasher(0x1e57_0001)
	h.String(it.Name)
	h.Float(it.Size)
	h.Child(it.Child)
	return h.Sum()
}

func TestDigestStable(t *testing.T) {
	a := &testItem{Name: "Calibri", Size: 18, Child: &testItem{Name: "x"}}
	b := &testItem{Name: "Calibri", Size: 18, Child: &testItem{Name: "x"}}
	if a.Digest() != b.Digest() {
		t.Error("equal objects have different digests")
	}

	c := &testItem{Name: "Calibri", Size: 18, Child: &testItem{Name: "y"}}
	if a.Digest() == c.Digest() {
		t.Error("different children give equal digests")
	}
}

func TestDigestFraming(t *testing.T) {
	// Without length prefixes these two would hash the same input.
	a := &testItem{Name: "ab"}
	b := &testItem{Name: "a"}
	h1 := NewHasher(1)
	h1.String("ab")
	h1.String("c")
	h2 := NewHasher(1)
	h2.String("a")
	h2.String("bc")
	if h1.Sum() == h2.Sum() {
		t.Error("string framing is ambiguous")
	}
	if a.Digest() == b.Digest() {
		t.Error("different names give equal digests")
	}
}

func TestDigestAbsentChild(t *testing.T) {
	var nilChild *testItem
	withNil := &testItem{Name: "a", Child: nilChild}
	withoutChild := &testItem{Name: "a"}
	if withNil.Digest() != withoutChild.Digest() {
		t.Error("typed nil and untyped absence differ")
	}

	withEmpty := &testItem{Name: "a", Child: &testItem{}}
	if withNil.Digest() == withEmpty.Digest() {
		t.Error("absent child hashes like an empty child")
	}
}

func TestDigestMagic(t *testing.T) {
	h1 := NewHasher(1)
	h1.Int(7)
	h2 := NewHasher(2)
	h2.Int(7)
	if h1.Sum() == h2.Sum() {
		t.Error("magic number is ignored")
	}
}

func TestDigestNegativeZero(t *testing.T) {
	h1 := NewHasher(1)
	h1.Float(0)
	negZero := -1.0
	negZero *= 0
	h2 := NewHasher(1)
	h2.Float(negZero)
	if h1.Sum() != h2.Sum() {
		t.Error("negative zero changes the digest")
	}
}

func TestDigestCache(t *testing.T) {
	var c DigestCache
	calls := 0
	compute := func() Digest {
		calls++
		return SumBytes([]byte{byte(calls)})
	}

	d1 := c.Get(compute)
	d2 := c.Get(compute)
	if calls != 1 || d1 != d2 {
		t.Errorf("cache recomputed: calls=%d", calls)
	}

	c.Invalidate()
	if c.Valid() {
		t.Error("cache still valid after Invalidate")
	}
	d3 := c.Get(compute)
	if calls != 2 || d3 == d1 {
		t.Errorf("cache not recomputed after Invalidate: calls=%d", calls)
	}
}
