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

package metadata

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/slides/document"
)

func TestRoundTrip(t *testing.T) {
	doc := document.New()
	doc.Properties.Title = "Quarterly Report"
	doc.Properties.Creator = "Test Author"
	doc.Properties.Description = "Numbers."
	doc.Properties.Keywords = []string{"sales", "q3"}

	buf := &bytes.Buffer{}
	err := Write(buf, doc)
	if err != nil {
		t.Fatalf("failed to write packet: %v", err)
	}

	packet, err := xmp.Read(buf)
	if err != nil {
		t.Fatalf("failed to read packet: %v", err)
	}

	var got xmp.DublinCore
	packet.Get(&got)
	want := DublinCore(&doc.Properties)
	if diff := cmp.Diff(&got, want); diff != "" {
		t.Errorf("round trip failed (-got +want):\n%s", diff)
	}
}

func TestDeterministic(t *testing.T) {
	doc := document.New()
	doc.Properties.Title = "x"
	var out [2]bytes.Buffer
	for i := range out {
		if err := Write(&out[i], doc); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(out[0].Bytes(), out[1].Bytes()) {
		t.Error("packet differs between runs")
	}
}
