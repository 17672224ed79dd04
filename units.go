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
	"math"
	"strconv"
)

// EMU is a length in English Metric Units.
// There are 914400 EMU per inch and 12700 EMU per PostScript point.
type EMU int64

// Conversion factors.
const (
	EMUPerInch  EMU = 914400
	EMUPerPoint EMU = 12700
	EMUPerCM    EMU = 360000
	EMUPerMM    EMU = 36000
	EMUPerPixel EMU = 9525 // at 96 dpi
)

// Points converts a length in PostScript points to EMU.
func Points(pt float64) EMU {
	return EMU(math.Round(pt * float64(EMUPerPoint)))
}

// Inches converts a length in inches to EMU.
func Inches(in float64) EMU {
	return EMU(math.Round(in * float64(EMUPerInch)))
}

// Centimeters converts a length in centimeters to EMU.
func Centimeters(cm float64) EMU {
	return EMU(math.Round(cm * float64(EMUPerCM)))
}

// Pixels converts a length in pixels (at 96 dpi) to EMU.
func Pixels(px int) EMU {
	return EMU(px) * EMUPerPixel
}

// Points returns the length in PostScript points.
func (e EMU) Points() float64 {
	return float64(e) / float64(EMUPerPoint)
}

// CM returns the length in centimeters.
func (e EMU) CM() float64 {
	return float64(e) / float64(EMUPerCM)
}

// CMString formats the length for use in OpenDocument attributes,
// for example "2.54cm".
func (e EMU) CMString() string {
	return strconv.FormatFloat(math.Round(e.CM()*1000)/1000, 'f', -1, 64) + "cm"
}

// Point is a position on a slide, measured from the top left corner.
type Point struct {
	X, Y EMU
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Extent is the size of a shape.
type Extent struct {
	CX, CY EMU
}
