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

package opc

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"
)

// Relationship is one entry of a relationship part.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

type relKey struct {
	typ, target string
	external    bool
}

// RelTable holds the relationships of one source part.
// Relationship ids are allocated as "rId1", "rId2", ... in the order in
// which the relationships are added.
type RelTable struct {
	source string
	rels   []Relationship
	byKey  map[relKey]string
	frozen *bool
}

// Source returns the path of the part which owns the relationships.
func (t *RelTable) Source() string {
	return t.source
}

// Add registers a relationship and returns its id.  If the same
// relationship has been added before, the existing id is returned.
// For internal relationships, target is the part path of the target;
// it is converted to a relative reference when the table is written.
//
// Add panics if new relationships are added after the table was frozen.
func (t *RelTable) Add(typ, target string, external bool) string {
	key := relKey{typ, target, external}
	if id, ok := t.byKey[key]; ok {
		return id
	}
	if *t.frozen {
		panic("opc: relationship " + target + " added to frozen table " + t.source)
	}
	id := "rId" + strconv.Itoa(len(t.rels)+1)
	t.rels = append(t.rels, Relationship{ID: id, Type: typ, Target: target, External: external})
	t.byKey[key] = id
	return id
}

// Lookup returns the id of an internal relationship.
func (t *RelTable) Lookup(typ, target string) (string, bool) {
	id, ok := t.byKey[relKey{typ, target, false}]
	return id, ok
}

// ID returns the id of a relationship.  ID panics if the relationship
// has not been added.
func (t *RelTable) ID(typ, target string, external bool) string {
	id, ok := t.byKey[relKey{typ, target, external}]
	if !ok {
		panic(fmt.Sprintf("opc: no relationship %s -> %s in %s", typ, target, t.source))
	}
	return id
}

// Len returns the number of relationships.
func (t *RelTable) Len() int {
	return len(t.rels)
}

// All returns the relationships in the order they were added.
func (t *RelTable) All() []Relationship {
	return slices.Clone(t.rels)
}

type relsXML struct {
	XMLName xml.Name `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Rels    []relXML `xml:"Relationship"`
}

type relXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// WriteXML writes the relationship part.
func (t *RelTable) WriteXML(w io.Writer) error {
	doc := relsXML{Rels: make([]relXML, len(t.rels))}
	for i, r := range t.rels {
		x := relXML{ID: r.ID, Type: r.Type, Target: r.Target}
		if r.External {
			x.TargetMode = "External"
		} else {
			x.Target = RelativeTarget(t.source, r.Target)
		}
		doc.Rels[i] = x
	}
	return writeXML(w, doc)
}

// Relationships holds the relationship tables of all parts in a package.
type Relationships struct {
	tables map[string]*RelTable
	frozen bool
}

// NewRelationships returns an empty set of relationship tables.
func NewRelationships() *Relationships {
	return &Relationships{tables: make(map[string]*RelTable)}
}

// For returns the relationship table of the given source part, creating
// an empty table if needed.  The package relationships use the empty
// string as the source.
func (r *Relationships) For(source string) *RelTable {
	t, ok := r.tables[source]
	if !ok {
		if r.frozen {
			panic("opc: relationship table for " + source + " created after freeze")
		}
		t = &RelTable{
			source: source,
			byKey:  make(map[relKey]string),
			frozen: &r.frozen,
		}
		r.tables[source] = t
	}
	return t
}

// Has reports whether the source part has any relationships.
func (r *Relationships) Has(source string) bool {
	t, ok := r.tables[source]
	return ok && len(t.rels) > 0
}

// Sources returns the paths of all parts which have relationships, in
// sorted order.
func (r *Relationships) Sources() []string {
	keys := maps.Keys(r.tables)
	slices.Sort(keys)
	var res []string
	for _, src := range keys {
		if len(r.tables[src].rels) > 0 {
			res = append(res, src)
		}
	}
	return res
}

// Freeze prevents further relationships from being added.
func (r *Relationships) Freeze() {
	r.frozen = true
}

func writeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
