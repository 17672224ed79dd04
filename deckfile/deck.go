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

// Package deckfile reads presentations from YAML deck descriptions.
//
// A deck file lists the slides of a presentation together with their
// shapes.  Text is written in Markdown:
//
//	title: Quarterly Review
//	author: A. Person
//	size: "16:9"
//	slides:
//	  - layout: Title Slide
//	    shapes:
//	      - text: "# Quarterly Review\nThird quarter, *preliminary*"
//	        x: 2cm
//	        y: 2cm
//	        width: 20cm
//	        height: 5cm
//	    notes: Start with the summary.
//
// The kind of a shape is given by its "type" key, or is inferred from the
// keys present: "src" for images, "rows" for tables, "chart" for charts,
// "from" for lines, "shapes" for groups, and text otherwise.
package deckfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Deck is the contents of a deck file.
type Deck struct {
	Title       string   `yaml:"title"`
	Subject     string   `yaml:"subject"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Category    string   `yaml:"category"`
	Company     string   `yaml:"company"`

	// Size is the name of a predefined slide size.  Alternatively, Width
	// and Height give a custom size.
	Size   string `yaml:"size"`
	Width  Length `yaml:"width"`
	Height Length `yaml:"height"`

	Language string `yaml:"language"`

	// Font is the font for text which does not give one.
	Font *Font `yaml:"font"`

	// Fonts lists font files to embed.
	Fonts []string `yaml:"fonts"`

	// Background is the background of the slide master.
	Background *Fill `yaml:"background"`

	// Master lists shapes shown on every slide.
	Master []Shape `yaml:"master"`

	Layouts []Layout `yaml:"layouts"`
	Slides  []Slide  `yaml:"slides"`

	// dir is the directory relative file names are resolved against.
	dir string
}

// Layout adds shapes to a slide layout.  If no layout of the given name
// exists, a new one is created.
type Layout struct {
	Name       string  `yaml:"name"`
	Background *Fill   `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
}

// Slide describes one slide.
type Slide struct {
	Name       string  `yaml:"name"`
	Layout     string  `yaml:"layout"`
	Background *Fill   `yaml:"background"`
	Hidden     bool    `yaml:"hidden"`
	Notes      string  `yaml:"notes"`
	Shapes     []Shape `yaml:"shapes"`
}

// Shape describes one shape.  Only the fields for the kind of the shape
// are used.
type Shape struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	X        Length  `yaml:"x"`
	Y        Length  `yaml:"y"`
	Width    Length  `yaml:"width"`
	Height   Length  `yaml:"height"`
	Rotation float64 `yaml:"rotation"`
	FlipH    bool    `yaml:"flip_h"`
	FlipV    bool    `yaml:"flip_v"`

	Fill    *Fill   `yaml:"fill"`
	Border  *Border `yaml:"border"`
	Shadow  bool    `yaml:"shadow"`
	Link    string  `yaml:"link"`
	Tooltip string  `yaml:"tooltip"`

	// text
	Text     string `yaml:"text"`
	Font     *Font  `yaml:"font"`
	Align    string `yaml:"align"`
	Geometry string `yaml:"geometry"`
	Anchor   string `yaml:"anchor"`
	AutoFit  string `yaml:"autofit"`
	Columns  int    `yaml:"columns"`

	// line
	From []Length `yaml:"from"`
	To   []Length `yaml:"to"`

	// table
	Rows         [][]string `yaml:"rows"`
	ColumnWidths []Length   `yaml:"column_widths"`
	Header       bool       `yaml:"header"`
	Banded       bool       `yaml:"banded"`
	Merge        []Merge    `yaml:"merge"`

	// chart
	Chart      string   `yaml:"chart"`
	Title      string   `yaml:"title"`
	Categories []string `yaml:"categories"`
	Series     []Series `yaml:"series"`
	Legend     bool     `yaml:"legend"`

	// image
	Src string `yaml:"src"`

	// group
	Shapes []Shape `yaml:"shapes"`
}

// Merge joins a rectangle of table cells.
type Merge struct {
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Series is a data series of a chart.
type Series struct {
	Name    string    `yaml:"name"`
	Values  []float64 `yaml:"values"`
	XValues []float64 `yaml:"x"`
	Color   *Color    `yaml:"color"`
}

// Kind returns the kind of the shape.
func (s *Shape) Kind() string {
	switch {
	case s.Type != "":
		return s.Type
	case s.Src != "":
		return "image"
	case s.Rows != nil:
		return "table"
	case s.Chart != "":
		return "chart"
	case s.From != nil:
		return "line"
	case s.Shapes != nil:
		return "group"
	default:
		return "text"
	}
}

// Parse reads a deck description.  Relative file names in the deck are
// resolved against the current directory.
func Parse(r io.Reader) (*Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	deck := &Deck{}
	if err := dec.Decode(deck); err != nil {
		if err == io.EOF {
			return deck, nil
		}
		return nil, fmt.Errorf("deckfile: %w", err)
	}
	return deck, nil
}

// Load reads the deck file at path.  Relative file names in the deck are
// resolved against the directory of the deck file.
func Load(path string) (*Deck, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	deck, err := Parse(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	deck.dir = filepath.Dir(path)
	return deck, nil
}

func (d *Deck) resolve(name string) string {
	if filepath.IsAbs(name) || d.dir == "" {
		return name
	}
	return filepath.Join(d.dir, name)
}
