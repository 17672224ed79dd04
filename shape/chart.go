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
	"slices"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/style"
)

// ChartType selects the kind of chart.
type ChartType uint8

// These are the supported chart types.
const (
	ChartBar ChartType = iota // horizontal bars
	ChartColumn
	ChartLine
	ChartArea
	ChartPie
	ChartDoughnut
	ChartScatter
	ChartRadar
)

func (t ChartType) String() string {
	switch t {
	case ChartBar:
		return "bar"
	case ChartColumn:
		return "column"
	case ChartLine:
		return "line"
	case ChartArea:
		return "area"
	case ChartPie:
		return "pie"
	case ChartDoughnut:
		return "doughnut"
	case ChartScatter:
		return "scatter"
	case ChartRadar:
		return "radar"
	default:
		return "unknown"
	}
}

// ParseChartType converts the name of a chart type, as returned by
// [ChartType.String], back into a ChartType.
func ParseChartType(name string) (ChartType, bool) {
	for t := ChartBar; t <= ChartRadar; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Series is one data series of a chart.
type Series struct {
	Name   string
	Values []float64

	// XValues are the x-coordinates for scatter charts.  If this is nil,
	// the points are numbered 1, 2, ...
	XValues []float64

	Fill style.Fill
}

func (s Series) clone() Series {
	s.Values = slices.Clone(s.Values)
	s.XValues = slices.Clone(s.XValues)
	return s
}

// Chart is a diagram showing one or more data series.
type Chart struct {
	Base

	typ        ChartType
	title      string
	categories []string
	series     []Series
	legend     bool
}

var _ Shape = (*Chart)(nil)

// NewChart returns an empty chart of the given type.
func NewChart(typ ChartType) *Chart {
	return &Chart{typ: typ, legend: true}
}

// Type returns the kind of chart.
func (c *Chart) Type() ChartType {
	return c.typ
}

// SetType changes the kind of chart.
func (c *Chart) SetType(typ ChartType) {
	c.typ = typ
	c.touch()
}

// Title returns the title of the chart.
func (c *Chart) Title() string {
	return c.title
}

// SetTitle changes the title of the chart.
func (c *Chart) SetTitle(title string) {
	c.title = title
	c.touch()
}

// Categories returns the category labels.
func (c *Chart) Categories() []string {
	return slices.Clone(c.categories)
}

// SetCategories sets the category labels.
func (c *Chart) SetCategories(labels ...string) {
	c.categories = slices.Clone(labels)
	c.touch()
}

// Series returns a copy of the data series.
func (c *Chart) Series() []Series {
	res := make([]Series, len(c.series))
	for i, s := range c.series {
		res[i] = s.clone()
	}
	return res
}

// AddSeries appends a data series and returns its index.
func (c *Chart) AddSeries(s Series) int {
	c.series = append(c.series, s.clone())
	c.touch()
	return len(c.series) - 1
}

// Legend reports whether the chart shows a legend.
func (c *Chart) Legend() bool {
	return c.legend
}

// SetLegend turns the legend on or off.
func (c *Chart) SetLegend(on bool) {
	c.legend = on
	c.touch()
}

// Digest implements the [slides.Hashable] interface.
func (c *Chart) Digest() slides.Digest {
	return c.cache.Get(func() slides.Digest {
		h := slides.NewHasher(magicChart)
		c.writeDigest(h)
		writeFrame(h, c.offset, c.extent)
		h.Uint(uint64(c.typ))
		h.String(c.title)
		h.Bool(c.legend)
		h.Uint(uint64(len(c.categories)))
		for _, cat := range c.categories {
			h.String(cat)
		}
		h.Uint(uint64(len(c.series)))
		for _, s := range c.series {
			h.String(s.Name)
			h.Uint(uint64(len(s.Values)))
			for _, v := range s.Values {
				h.Float(v)
			}
			h.Bool(s.XValues != nil)
			h.Uint(uint64(len(s.XValues)))
			for _, v := range s.XValues {
				h.Float(v)
			}
			h.Child(s.Fill)
		}
		return h.Sum()
	})
}

// Clone implements the [Shape] interface.
func (c *Chart) Clone() Shape {
	return &Chart{
		Base:       c.cloneBase(),
		typ:        c.typ,
		title:      c.title,
		categories: slices.Clone(c.categories),
		series:     c.Series(),
		legend:     c.legend,
	}
}

// StyleObjects implements the [Shape] interface.
func (c *Chart) StyleObjects() []style.Ref {
	refs := c.styleRefs()
	for _, s := range c.series {
		refs = append(refs, style.Ref{Role: style.RoleFill, Value: s.Fill})
	}
	return refs
}

func (c *Chart) isShape() {}
