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

	"github.com/google/go-cmp/cmp"
)

func TestTableIntern(t *testing.T) {
	tab := NewTable[*testItem]()

	calibri := &testItem{Name: "Calibri", Size: 18}
	arial := &testItem{Name: "Arial", Size: 12}

	idx := []int{
		tab.Intern(calibri),
		tab.Intern(&testItem{Name: "Calibri", Size: 18}),
		tab.Intern(arial),
		tab.Intern(calibri),
	}
	if diff := cmp.Diff([]int{0, 0, 1, 0}, idx); diff != "" {
		t.Errorf("wrong indices (-want +got):\n%s", diff)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
	if tab.At(1) != arial {
		t.Error("At(1) returned wrong item")
	}

	// the first occurrence is kept
	if tab.At(0) != calibri {
		t.Error("At(0) is not the first occurrence")
	}

	var names []string
	for i, v := range tab.All() {
		if tab.Index(v) != i {
			t.Errorf("Index(%q) = %d, want %d", v.Name, tab.Index(v), i)
		}
		names = append(names, v.Name)
	}
	if diff := cmp.Diff([]string{"Calibri", "Arial"}, names); diff != "" {
		t.Errorf("wrong iteration order (-want +got):\n%s", diff)
	}
}

func TestTableFrozen(t *testing.T) {
	tab := NewTable[*testItem]()
	tab.Intern(&testItem{Name: "a"})
	tab.Freeze()

	// known resources can still be looked up
	if idx := tab.Intern(&testItem{Name: "a"}); idx != 0 {
		t.Errorf("Intern on frozen table returned %d", idx)
	}
	if _, ok := tab.Lookup(&testItem{Name: "b"}); ok {
		t.Error("Lookup found unknown item")
	}

	defer func() {
		if recover() == nil {
			t.Error("interning a new item into a frozen table did not panic")
		}
	}()
	tab.Intern(&testItem{Name: "b"})
}

func TestTableAtOutOfRange(t *testing.T) {
	tab := NewTable[*testItem]()
	tab.Intern(&testItem{Name: "a"})

	defer func() {
		if recover() == nil {
			t.Error("At(1) did not panic")
		}
	}()
	tab.At(1)
}

func TestTableReset(t *testing.T) {
	tab := NewTable[*testItem]()
	tab.Intern(&testItem{Name: "a"})
	tab.Intern(&testItem{Name: "b"})
	tab.Freeze()
	tab.Reset()

	if tab.Len() != 0 || tab.Frozen() {
		t.Fatal("Reset did not clear the table")
	}
	// indices start again from zero in the next pass
	if idx := tab.Intern(&testItem{Name: "b"}); idx != 0 {
		t.Errorf("first index after Reset is %d", idx)
	}
}
