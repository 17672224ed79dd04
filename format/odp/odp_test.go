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

package odp

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zip"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/internal/xmlw"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

func pngData(t *testing.T) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := png.Encode(buf, image.NewGray(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func export1(t *testing.T, doc *document.Presentation) ([]byte, error) {
	t.Helper()
	w := export.NewWriter(export.NewRegistry(New()), nil)
	buf := &bytes.Buffer{}
	err := w.Write(doc, "odp", buf)
	return buf.Bytes(), err
}

func mustExport(t *testing.T, doc *document.Presentation) []byte {
	t.Helper()
	data, err := export1(t, doc)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

type entry struct {
	name   string
	body   string
	stored bool
}

func readEntries(t *testing.T, data []byte) []entry {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	var res []entry
	for _, f := range r.File {
		fd, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(fd)
		fd.Close()
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, entry{name: f.Name, body: string(body), stored: f.Method == zip.Store})
	}
	return res
}

func bodies(entries []entry) map[string]string {
	m := make(map[string]string)
	for _, e := range entries {
		m[e.name] = e.body
	}
	return m
}

// TestTextStyleShared checks that three text boxes using the same font
// share a single text style.
func TestTextStyleShared(t *testing.T) {
	doc := document.New()
	slide := doc.CreateSlide()
	calibri := style.Font{Name: "Calibri", Size: 18, Color: style.Black}
	for i := range 3 {
		box := slide.CreateRichText()
		box.SetOffset(slides.Point{X: slides.EMU(i) * 1000000, Y: 0})
		box.SetExtent(slides.Extent{CX: 900000, CY: 400000})
		box.AddText("hello", calibri)
	}

	files := bodies(readEntries(t, mustExport(t, doc)))
	styles := files[stylesPath]
	content := files[contentPath]

	if n := strings.Count(styles, `style:name="T0"`); n != 1 {
		t.Errorf("styles.xml defines T0 %d times", n)
	}
	if strings.Contains(styles, `style:name="T1"`) {
		t.Error("styles.xml defines more than one text style")
	}
	if n := strings.Count(content, `text:style-name="T0"`); n != 3 {
		t.Errorf("content.xml references T0 %d times, want 3", n)
	}
	if n := strings.Count(content, `style:name="gr0"`); n != 1 {
		t.Errorf("content.xml defines gr0 %d times", n)
	}
	if !strings.Contains(styles, `<style:font-face style:name="Calibri" svg:font-family="Calibri"/>`) {
		t.Error("missing font face declaration")
	}
}

func TestPackageStructure(t *testing.T) {
	doc := document.New()
	doc.Properties.Title = "Test"
	slide := doc.CreateSlide()
	img := pngData(t)
	a := slide.CreateDrawing(media.Memory(img, ""))
	a.SetExtent(slides.Extent{CX: 100000, CY: 100000})
	g := slide.CreateGroup()
	b := g.CreateDrawing(media.Memory(img, media.PNG))
	b.SetExtent(slides.Extent{CX: 100000, CY: 100000})
	slide.CreateNote().CreateRichText().AddText("note", style.DefaultFont)

	data := mustExport(t, doc)
	if string(data[30:38]) != mimetypePath || string(data[38:38+len(MIMEType)]) != MIMEType {
		t.Error("mimetype is not the first, uncompressed entry")
	}

	entries := readEntries(t, data)
	if entries[0].name != mimetypePath || !entries[0].stored {
		t.Errorf("first entry: %+v", entries[0].name)
	}
	if last := entries[len(entries)-1].name; last != manifestPath {
		t.Errorf("last entry is %s", last)
	}

	var pictures []string
	for _, e := range entries {
		if strings.HasPrefix(e.name, picturesDir) {
			pictures = append(pictures, e.name)
		}
	}
	if len(pictures) != 1 {
		t.Fatalf("pictures: %v", pictures)
	}
	files := bodies(entries)
	if n := strings.Count(files[contentPath], `xlink:href="`+pictures[0]+`"`); n != 2 {
		t.Errorf("picture referenced %d times, want 2", n)
	}
	if !strings.Contains(files[contentPath], "<presentation:notes>") {
		t.Error("notes missing")
	}
	if !strings.Contains(files[metaPath], "<dc:title>Test</dc:title>") {
		t.Error("title missing")
	}
}

type manifestXML struct {
	Entries []struct {
		Path      string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"file-entry"`
}

func TestManifestComplete(t *testing.T) {
	doc := document.New()
	slide := doc.CreateSlide()
	slide.CreateDrawing(media.Memory(pngData(t), ""))

	entries := readEntries(t, mustExport(t, doc))
	var m manifestXML
	err := xml.Unmarshal([]byte(bodies(entries)[manifestPath]), &m)
	if err != nil {
		t.Fatal(err)
	}

	var listed []string
	for _, e := range m.Entries {
		listed = append(listed, e.Path)
	}
	var want []string
	want = append(want, "/")
	for _, e := range entries {
		if e.name != mimetypePath && e.name != manifestPath {
			want = append(want, e.name)
		}
	}
	if d := cmp.Diff(want, listed); d != "" {
		t.Errorf("manifest entries (-want +got):\n%s", d)
	}
	if m.Entries[0].MediaType != MIMEType {
		t.Errorf("root media type %q", m.Entries[0].MediaType)
	}
}

func TestWellFormed(t *testing.T) {
	doc := document.New()
	doc.Masters()[0].SetBackground(style.LinearGradient(style.White, style.RGB(0, 0, 80), 90))
	slide := doc.CreateSlide()
	slide.SetHidden(true)
	slide.SetBackground(style.Solid(style.RGB(10, 20, 30)))
	box := slide.CreateRichText()
	box.SetGeometry(shape.GeometryEllipse)
	box.SetBorder(style.Border{Width: 2, Color: style.Black, Dash: style.DashDash})
	box.SetShadow(&style.DefaultShadow)
	box.SetLink(&style.Hyperlink{URL: "https://example.com/?a=1&b=2"})
	box.AddParagraph(shape.Paragraph{
		Style: style.Paragraph{Bullet: style.Bullet{Kind: style.BulletNumber}},
		Runs:  []shape.Run{{Text: "one  two\tthree", Font: style.DefaultFont}},
	})
	tbl := slide.CreateTable(2, 2)
	tbl.SetText(0, 0, "a", style.DefaultFont)
	tbl.Merge(0, 0, 2, 1)
	slide.CreateLine(slides.Point{X: 0, Y: 0}, slides.Point{X: 100, Y: 100})

	files := bodies(readEntries(t, mustExport(t, doc)))
	for name, body := range files {
		if !strings.HasSuffix(name, ".xml") {
			continue
		}
		dec := xml.NewDecoder(strings.NewReader(body))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			} else if err != nil {
				t.Errorf("%s: %v", name, err)
				break
			}
		}
	}

	content := files[contentPath]
	for _, want := range []string{
		`presentation:visibility="hidden"`,
		`draw:stroke-dash="Dash`,
		`<table:covered-table-cell/>`,
		`table:number-rows-spanned="2"`,
		`<draw:a xlink:type="simple" xlink:href="https://example.com/?a=1&amp;b=2">`,
		`one <text:s/>two<text:tab/>three`,
		`draw:type="ellipse"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("content.xml does not contain %s", want)
		}
	}
	styles := files[stylesPath]
	if !strings.Contains(styles, `draw:style="linear"`) || !strings.Contains(styles, `draw:name="Dash`) {
		t.Error("gradient or dash definition missing from styles.xml")
	}
}

func TestChartUnsupported(t *testing.T) {
	doc := document.New()
	c := doc.CreateSlide().CreateChart(shape.ChartPie)
	c.SetName("sales")

	_, err := export1(t, doc)
	if !errors.Is(err, &slides.UnsupportedFeatureError{}) {
		t.Fatalf("got %v, want UnsupportedFeatureError", err)
	}
	if !strings.Contains(err.Error(), `chart "sales"`) {
		t.Errorf("error does not name the shape: %v", err)
	}
}

func TestEmbeddedFontFace(t *testing.T) {
	data := []byte("not really a font")
	job := &export.Job{
		Doc:    document.New(),
		Format: New(),
		Res:    export.NewResources(),
	}
	blob := &media.Blob{Sum: slides.SumBytes(data), Data: data, MIME: media.TTF, Ext: "ttf"}
	font := &media.FontFile{Blob: blob, Family: "Test Sans"}
	job.Res.EmbeddedFonts.Intern(font)

	p, err := newPlan(job)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := p.writeStyles(buf, job); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<style:font-face style:name="Test Sans" svg:font-family="&#39;Test Sans&#39;">`,
		`xlink:href="Fonts/` + blob.Name() + `"`,
		`<svg:font-face-format svg:string="truetype"/>`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("styles.xml does not contain %s", want)
		}
	}

	var names []string
	for _, pw := range p.Parts() {
		names = append(names, pw.Info().Path)
	}
	if names[len(names)-1] != "Fonts/"+blob.Name() {
		t.Errorf("font part missing: %v", names)
	}
}

func TestText(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"plain", "plain"},
		{"a  b", "a <text:s/>b"},
		{"x    y", `x <text:s text:c="3"/>y`},
		{"tab\there", "tab<text:tab/>here"},
		{"one\ntwo", "one<text:line-break/>two"},
		{"a < b", "a &lt; b"},
	}
	for _, tc := range testCases {
		buf := &bytes.Buffer{}
		d := &drawWriter{Writer: xmlw.New(buf, false)}
		d.Start("t")
		d.text(tc.in)
		d.End()
		if err := d.Close(); err != nil {
			t.Fatal(err)
		}
		want := "<t>" + tc.out + "</t>"
		if buf.String() != want {
			t.Errorf("%q: got %s, want %s", tc.in, buf.String(), want)
		}
	}
}

func TestRotation(t *testing.T) {
	box := shape.NewRichText()
	box.SetExtent(slides.Extent{CX: 720000, CY: 360000})
	box.SetRotation(90)

	var transform string
	for _, a := range geometryAttrs(box) {
		if a.Name == "draw:transform" {
			transform = a.Value
		}
	}
	want := "rotate (-1.570796327) translate (1.5cm -0.5cm)"
	if transform != want {
		t.Errorf("got %q, want %q", transform, want)
	}
}

func TestGradientAngle(t *testing.T) {
	testCases := []struct {
		in  float64
		out int
	}{
		{0, 900},
		{90, 0},
		{180, 2700},
		{270, 1800},
		{45, 450},
	}
	for _, tc := range testCases {
		if got := odfAngle(tc.in); got != tc.out {
			t.Errorf("odfAngle(%g) = %d, want %d", tc.in, got, tc.out)
		}
	}
}
