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

package pptx

import (
	"io"
	"strconv"

	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/shape"
)

// Axis ids used in every chart part.
const (
	catAxisID = 111111111
	valAxisID = 222222222
)

func (p *plan) chartWriter(cp *chartPart) func(io.Writer, *export.Job) error {
	return func(w io.Writer, job *export.Job) error {
		c := cp.c
		x := xmlw.New(w, true)
		d := &dml{Writer: x, job: job, plan: p}

		x.Start("c:chartSpace",
			xmlw.A("xmlns:c", nsC),
			xmlw.A("xmlns:a", nsA),
			xmlw.A("xmlns:r", nsR))
		x.Empty("c:roundedCorners", xmlw.A("val", 0))
		x.Start("c:chart")
		if title := c.Title(); title != "" {
			x.Start("c:title")
			x.Start("c:tx")
			x.Start("c:rich")
			x.Empty("a:bodyPr")
			x.Start("a:p")
			x.Start("a:r")
			x.Elem("a:t", title)
			x.End()
			x.End()
			x.End()
			x.End()
			x.Empty("c:overlay", xmlw.A("val", 0))
			x.End()
			x.Empty("c:autoTitleDeleted", xmlw.A("val", 0))
		} else {
			x.Empty("c:autoTitleDeleted", xmlw.A("val", 1))
		}

		x.Start("c:plotArea")
		x.Empty("c:layout")
		d.plot(c)
		switch c.Type() {
		case shape.ChartPie, shape.ChartDoughnut:
			// no axes
		case shape.ChartScatter:
			valueAxis(x, catAxisID, valAxisID, "b")
			valueAxis(x, valAxisID, catAxisID, "l")
		default:
			pos := "b"
			if c.Type() == shape.ChartBar {
				pos = "l"
			}
			categoryAxis(x, pos)
			valueAxis(x, valAxisID, catAxisID, otherSide(pos))
		}
		x.End()

		if c.Legend() {
			x.Start("c:legend")
			x.Empty("c:legendPos", xmlw.A("val", "r"))
			x.Empty("c:overlay", xmlw.A("val", 0))
			x.End()
		}
		x.Empty("c:plotVisOnly", xmlw.A("val", 1))
		x.End()
		x.End()
		return x.Close()
	}
}

func otherSide(pos string) string {
	if pos == "b" {
		return "l"
	}
	return "b"
}

func (d *dml) plot(c *shape.Chart) {
	val := func(tag string, v any) {
		d.Empty(tag, xmlw.A("val", v))
	}
	axes := func() {
		val("c:axId", catAxisID)
		val("c:axId", valAxisID)
	}

	switch c.Type() {
	case shape.ChartBar, shape.ChartColumn:
		d.Start("c:barChart")
		if c.Type() == shape.ChartBar {
			val("c:barDir", "bar")
		} else {
			val("c:barDir", "col")
		}
		val("c:grouping", "clustered")
		val("c:varyColors", 0)
		d.series(c)
		val("c:gapWidth", 150)
		axes()
	case shape.ChartLine:
		d.Start("c:lineChart")
		val("c:grouping", "standard")
		val("c:varyColors", 0)
		d.series(c)
		val("c:marker", 1)
		axes()
	case shape.ChartArea:
		d.Start("c:areaChart")
		val("c:grouping", "standard")
		val("c:varyColors", 0)
		d.series(c)
		axes()
	case shape.ChartPie:
		d.Start("c:pieChart")
		val("c:varyColors", 1)
		d.series(c)
		val("c:firstSliceAng", 0)
	case shape.ChartDoughnut:
		d.Start("c:doughnutChart")
		val("c:varyColors", 1)
		d.series(c)
		val("c:firstSliceAng", 0)
		val("c:holeSize", 50)
	case shape.ChartScatter:
		d.Start("c:scatterChart")
		val("c:scatterStyle", "lineMarker")
		val("c:varyColors", 0)
		d.series(c)
		axes()
	case shape.ChartRadar:
		d.Start("c:radarChart")
		val("c:radarStyle", "marker")
		val("c:varyColors", 0)
		d.series(c)
		axes()
	}
	d.End()
}

func (d *dml) series(c *shape.Chart) {
	scatter := c.Type() == shape.ChartScatter
	for i, s := range c.Series() {
		d.Start("c:ser")
		d.Empty("c:idx", xmlw.A("val", i))
		d.Empty("c:order", xmlw.A("val", i))
		if s.Name != "" {
			d.Start("c:tx")
			d.Elem("c:v", s.Name)
			d.End()
		}
		if !s.Fill.IsNone() {
			d.Start("c:spPr")
			d.fill(s.Fill, false)
			d.End()
		}
		if scatter {
			xs := s.XValues
			if xs == nil {
				xs = make([]float64, len(s.Values))
				for j := range xs {
					xs[j] = float64(j + 1)
				}
			}
			d.Start("c:xVal")
			d.numbers(xs)
			d.End()
			d.Start("c:yVal")
			d.numbers(s.Values)
			d.End()
		} else {
			if cat := c.Categories(); len(cat) > 0 {
				d.Start("c:cat")
				d.Start("c:strLit")
				d.Empty("c:ptCount", xmlw.A("val", len(cat)))
				for j, label := range cat {
					d.Start("c:pt", xmlw.A("idx", j))
					d.Elem("c:v", label)
					d.End()
				}
				d.End()
				d.End()
			}
			d.Start("c:val")
			d.numbers(s.Values)
			d.End()
		}
		d.End()
	}
}

func (d *dml) numbers(values []float64) {
	d.Start("c:numLit")
	d.Empty("c:ptCount", xmlw.A("val", len(values)))
	for j, v := range values {
		d.Start("c:pt", xmlw.A("idx", j))
		d.Elem("c:v", strconv.FormatFloat(v, 'g', -1, 64))
		d.End()
	}
	d.End()
}

func categoryAxis(x *xmlw.Writer, pos string) {
	x.Start("c:catAx")
	x.Empty("c:axId", xmlw.A("val", catAxisID))
	x.Start("c:scaling")
	x.Empty("c:orientation", xmlw.A("val", "minMax"))
	x.End()
	x.Empty("c:delete", xmlw.A("val", 0))
	x.Empty("c:axPos", xmlw.A("val", pos))
	x.Empty("c:tickLblPos", xmlw.A("val", "nextTo"))
	x.Empty("c:crossAx", xmlw.A("val", valAxisID))
	x.Empty("c:crosses", xmlw.A("val", "autoZero"))
	x.Empty("c:auto", xmlw.A("val", 1))
	x.Empty("c:lblAlgn", xmlw.A("val", "ctr"))
	x.Empty("c:lblOffset", xmlw.A("val", 100))
	x.End()
}

func valueAxis(x *xmlw.Writer, id, cross int, pos string) {
	x.Start("c:valAx")
	x.Empty("c:axId", xmlw.A("val", id))
	x.Start("c:scaling")
	x.Empty("c:orientation", xmlw.A("val", "minMax"))
	x.End()
	x.Empty("c:delete", xmlw.A("val", 0))
	x.Empty("c:axPos", xmlw.A("val", pos))
	if pos == "l" {
		x.Empty("c:majorGridlines")
	}
	x.Empty("c:tickLblPos", xmlw.A("val", "nextTo"))
	x.Empty("c:crossAx", xmlw.A("val", cross))
	x.Empty("c:crosses", xmlw.A("val", "autoZero"))
	x.Empty("c:crossBetween", xmlw.A("val", "between"))
	x.End()
}
