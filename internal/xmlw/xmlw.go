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

// Package xmlw writes XML documents element by element.
//
// The output only depends on the sequence of calls: attributes are
// written in the order given, numbers are formatted without exponents,
// and elements without content are written as empty-element tags.
package xmlw

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Header is the XML declaration used for all parts.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Attr is an XML attribute.
type Attr struct {
	Name  string
	Value string
}

// A returns an attribute.  Integer and floating point values are formatted
// in decimal notation, booleans as "true" or "false".
func A(name string, value any) Attr {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = FormatFloat(v)
	case bool:
		s = strconv.FormatBool(v)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return Attr{Name: name, Value: s}
}

// FormatFloat formats x in decimal notation, with as few digits as
// needed.
func FormatFloat(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Writer writes an XML document.
//
// Errors are sticky: after the first write error, all further calls are
// ignored, and the error is returned by [Writer.Close].
type Writer struct {
	w       *bufio.Writer
	err     error
	stack   []string
	pending bool
}

// New returns a Writer which writes to w.  If header is true, the XML
// declaration is written first.
func New(w io.Writer, header bool) *Writer {
	x := &Writer{w: bufio.NewWriter(w)}
	if header {
		x.raw(Header)
	}
	return x
}

func (x *Writer) raw(s string) {
	if x.err != nil {
		return
	}
	_, x.err = x.w.WriteString(s)
}

func (x *Writer) escape(s string) {
	if x.err != nil {
		return
	}
	x.err = xml.EscapeText(x.w, []byte(s))
}

func (x *Writer) closePending() {
	if x.pending {
		x.raw(">")
		x.pending = false
	}
}

// Start opens a new element.
func (x *Writer) Start(name string, attrs ...Attr) {
	x.closePending()
	x.raw("<" + name)
	for _, a := range attrs {
		x.raw(" " + a.Name + `="`)
		x.escape(a.Value)
		x.raw(`"`)
	}
	x.stack = append(x.stack, name)
	x.pending = true
}

// End closes the innermost open element.
func (x *Writer) End() {
	if len(x.stack) == 0 {
		if x.err == nil {
			x.err = errUnbalanced
		}
		return
	}
	name := x.stack[len(x.stack)-1]
	x.stack = x.stack[:len(x.stack)-1]
	if x.pending {
		x.raw("/>")
		x.pending = false
		return
	}
	x.raw("</" + name + ">")
}

// Empty writes an element without content.
func (x *Writer) Empty(name string, attrs ...Attr) {
	x.Start(name, attrs...)
	x.End()
}

// Text writes character data.
func (x *Writer) Text(s string) {
	if s == "" {
		return
	}
	x.closePending()
	x.escape(s)
}

// Elem writes an element which contains only character data.
func (x *Writer) Elem(name, text string, attrs ...Attr) {
	x.Start(name, attrs...)
	x.Text(text)
	x.End()
}

// Close checks that all elements have been closed and flushes the output.
func (x *Writer) Close() error {
	if x.err == nil && len(x.stack) > 0 {
		x.err = fmt.Errorf("xmlw: element <%s> not closed", x.stack[len(x.stack)-1])
	}
	if x.err == nil {
		x.err = x.w.Flush()
	}
	return x.err
}

var errUnbalanced = errors.New("xmlw: End without Start")
