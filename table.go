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
	"fmt"
	"iter"
)

// Table assigns ordinal indices to deduplicated resources.
//
// Resources are identified by their digest: the first time a digest is seen,
// the resource gets the next free index, starting at 0.  Later resources with
// the same digest get the existing index.
//
// Indices are only meaningful within one write operation.  A new Table must
// be used (or [Table.Reset] must be called) for every write, and indices must
// never be stored outside of the write operation which produced them.
//
// Once all resources have been collected, the table is frozen using
// [Table.Freeze].  Writers then use [Table.Index] and [Table.At] to look up
// resources; discovering a new resource at that stage is a programming error.
type Table[T Hashable] struct {
	index  map[Digest]int
	items  []T
	frozen bool
}

// NewTable allocates a new, empty table.
func NewTable[T Hashable]() *Table[T] {
	return &Table[T]{
		index: make(map[Digest]int),
	}
}

// Intern returns the index of v, allocating a new index if no resource with
// the same digest has been seen before.
//
// Intern panics if the table is frozen.
func (t *Table[T]) Intern(v T) int {
	d := v.Digest()
	if idx, ok := t.index[d]; ok {
		return idx
	}
	if t.frozen {
		panic(fmt.Sprintf("slides: new resource %s interned into frozen table", d))
	}
	idx := len(t.items)
	t.index[d] = idx
	t.items = append(t.items, v)
	return idx
}

// Lookup returns the index of the resource with the same digest as v.
// The second return value is false if no such resource is in the table.
func (t *Table[T]) Lookup(v T) (int, bool) {
	idx, ok := t.index[v.Digest()]
	return idx, ok
}

// LookupDigest returns the index of the resource with digest d.
func (t *Table[T]) LookupDigest(d Digest) (int, bool) {
	idx, ok := t.index[d]
	return idx, ok
}

// Index returns the index of v.
//
// Index panics if v was not interned before.  Writers use this method to
// refer to resources, since every resource must have been collected
// before writing starts.
func (t *Table[T]) Index(v T) int {
	d := v.Digest()
	idx, ok := t.index[d]
	if !ok {
		panic(fmt.Sprintf("slides: resource %s was not collected", d))
	}
	return idx
}

// Len returns the number of distinct resources in the table.
func (t *Table[T]) Len() int {
	return len(t.items)
}

// At returns the resource with index i.
// At panics if i is out of range.
func (t *Table[T]) At(i int) T {
	if i < 0 || i >= len(t.items) {
		panic(fmt.Sprintf("slides: table index %d out of range [0, %d)", i, len(t.items)))
	}
	return t.items[i]
}

// All iterates over the resources in index order.
func (t *Table[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Freeze prevents the allocation of new indices.
func (t *Table[T]) Freeze() {
	t.frozen = true
}

// Frozen reports whether the table has been frozen.
func (t *Table[T]) Frozen() bool {
	return t.frozen
}

// Reset removes all entries and unfreezes the table.
func (t *Table[T]) Reset() {
	clear(t.index)
	t.items = t.items[:0]
	t.frozen = false
}
