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

	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/style"
)

type themeColor struct {
	name string
	sys  string // system color, if not empty
	rgb  string
}

var themeColors = []themeColor{
	{name: "dk1", sys: "windowText", rgb: "000000"},
	{name: "lt1", sys: "window", rgb: "FFFFFF"},
	{name: "dk2", rgb: "0E2841"},
	{name: "lt2", rgb: "E8E8E8"},
	{name: "accent1", rgb: "156082"},
	{name: "accent2", rgb: "E97132"},
	{name: "accent3", rgb: "196B24"},
	{name: "accent4", rgb: "0F9ED5"},
	{name: "accent5", rgb: "A02B93"},
	{name: "accent6", rgb: "4EA72E"},
	{name: "hlink", rgb: "467886"},
	{name: "folHlink", rgb: "96607D"},
}

// themeFont returns the font used for the theme's font scheme: the first
// font used in the document, or the default font.
func themeFont(job *export.Job) string {
	for _, f := range job.Res.Fonts.All() {
		if f.Name != "" {
			return f.Name
		}
	}
	return style.DefaultFont.Name
}

func themeWriter(name string) func(io.Writer, *export.Job) error {
	return func(w io.Writer, job *export.Job) error {
		x := xmlw.New(w, true)
		x.Start("a:theme", xmlw.A("xmlns:a", nsA), xmlw.A("name", name))
		x.Start("a:themeElements")

		x.Start("a:clrScheme", xmlw.A("name", name))
		for _, c := range themeColors {
			x.Start("a:" + c.name)
			if c.sys != "" {
				x.Empty("a:sysClr", xmlw.A("val", c.sys), xmlw.A("lastClr", c.rgb))
			} else {
				x.Empty("a:srgbClr", xmlw.A("val", c.rgb))
			}
			x.End()
		}
		x.End()

		font := themeFont(job)
		x.Start("a:fontScheme", xmlw.A("name", name))
		for _, tag := range []string{"a:majorFont", "a:minorFont"} {
			x.Start(tag)
			x.Empty("a:latin", xmlw.A("typeface", font))
			x.Empty("a:ea", xmlw.A("typeface", ""))
			x.Empty("a:cs", xmlw.A("typeface", ""))
			x.End()
		}
		x.End()

		x.Start("a:fmtScheme", xmlw.A("name", name))
		x.Start("a:fillStyleLst")
		for range 3 {
			phClr(x, "a:solidFill")
		}
		x.End()
		x.Start("a:lnStyleLst")
		for _, width := range []int{6350, 12700, 19050} {
			x.Start("a:ln", xmlw.A("w", width))
			phClr(x, "a:solidFill")
			x.End()
		}
		x.End()
		x.Start("a:effectStyleLst")
		for range 3 {
			x.Start("a:effectStyle")
			x.Empty("a:effectLst")
			x.End()
		}
		x.End()
		x.Start("a:bgFillStyleLst")
		for range 3 {
			phClr(x, "a:solidFill")
		}
		x.End()
		x.End()

		x.End()
		x.End()
		return x.Close()
	}
}

// phClr writes a fill which uses the placeholder color.
func phClr(x *xmlw.Writer, tag string) {
	x.Start(tag)
	x.Empty("a:schemeClr", xmlw.A("val", "phClr"))
	x.End()
}
