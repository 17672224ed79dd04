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

package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/shape"
	"seehuhn.de/go/slides/style"
)

// listFormat is a minimal format.  It writes one part listing the
// resource indices used by every shape, and a manifest naming all parts.
type listFormat struct {
	last      *Job
	frozen    bool
	failLabel string
}

func (f *listFormat) Name() string              { return "list" }
func (f *listFormat) Extension() string         { return ".list" }
func (f *listFormat) MediaPolicy() media.Policy { return media.Policy{media.PNG} }

func (f *listFormat) Plan(job *Job) (Plan, error) {
	f.last = job
	return &listPlan{f: f}, nil
}

type listPlan struct {
	f *listFormat
}

func (p *listPlan) Parts() []PartWriter {
	return []PartWriter{
		NewPart(PartInfo{Path: "mimetype", ContentType: "text/plain", Stored: true},
			func(w io.Writer, job *Job) error {
				_, err := io.WriteString(w, "application/x-list")
				return err
			}),
		NewPart(PartInfo{Path: "content.txt", ContentType: "text/plain"}, p.renderContent),
		NewPart(PartInfo{Path: "styles.txt", ContentType: "text/plain"}, p.renderStyles),
	}
}

func (p *listPlan) renderContent(w io.Writer, job *Job) error {
	p.f.frozen = job.Res.Fonts.Frozen() && job.Res.Media.Frozen()
	for i, s := range job.Doc.Slides() {
		err := shape.Walk(s.Shapes(), func(sh shape.Shape, depth int) error {
			if p.f.failLabel != "" && sh.Common().Name() == p.f.failLabel {
				return job.Unsupported(shape.Label(sh), "test feature")
			}
			fmt.Fprintf(w, "slide %d %s fill=%d", i, shape.Kind(sh), job.Res.Fills.Index(sh.Common().Fill()))
			if d, ok := sh.(*shape.Drawing); ok {
				fmt.Fprintf(w, " media=%s", job.Res.Blob(d.Source()).Name())
			}
			fmt.Fprintln(w)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *listPlan) renderStyles(w io.Writer, job *Job) error {
	for i, f := range job.Res.Fills.All() {
		fmt.Fprintf(w, "fill %d %s\n", i, f.Kind)
	}
	return nil
}

func (p *listPlan) Manifest(written []PartInfo) PartWriter {
	return NewPart(PartInfo{Path: "manifest.txt", ContentType: "text/plain"},
		func(w io.Writer, job *Job) error {
			for _, info := range written {
				fmt.Fprintln(w, info.Path)
			}
			return nil
		})
}

func pngData(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := png.Encode(buf, image.NewGray(image.Rect(0, 0, w, h)))
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	files := make(map[string]string)
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
		files[f.Name] = string(body)
	}
	return files
}

func TestFillDedup(t *testing.T) {
	doc := document.New()
	slide := doc.CreateSlide()
	red := style.Solid(style.RGB(255, 0, 0))
	for i := range 4 {
		s := slide.CreateRichText()
		s.SetOffset(slides.Point{X: slides.EMU(i) * 1000})
		s.SetFill(style.Solid(style.RGB(255, 0, 0))) // separate, equal values
	}

	f := &listFormat{}
	w := NewWriter(NewRegistry(f), nil)
	buf := &bytes.Buffer{}
	if err := w.Write(doc, "list", buf); err != nil {
		t.Fatal(err)
	}

	if n := f.last.Res.Fills.Len(); n != 1 {
		t.Errorf("%d fills, want 1", n)
	}
	if got := f.last.Res.Fills.At(0); got != red {
		t.Errorf("wrong fill %v", got)
	}
	files := readZip(t, buf.Bytes())
	if n := strings.Count(files["styles.txt"], "fill "); n != 1 {
		t.Errorf("%d fill definitions", n)
	}
	if n := strings.Count(files["content.txt"], "fill=0"); n != 4 {
		t.Errorf("%d references to fill 0", n)
	}
	if !f.frozen {
		t.Error("tables not frozen during render")
	}
}

func TestManifestLast(t *testing.T) {
	doc := document.New()
	doc.CreateSlide().CreateRichText()

	buf := &bytes.Buffer{}
	w := NewWriter(NewRegistry(&listFormat{}), &Options{EmbedXMP: true})
	if err := w.Write(doc, "list", buf); err != nil {
		t.Fatal(err)
	}
	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	want := []string{"mimetype", "content.txt", "styles.txt", "metadata.xmp", "manifest.txt"}
	if d := cmp.Diff(want, names); d != "" {
		t.Errorf("entries (-want +got):\n%s", d)
	}

	files := readZip(t, buf.Bytes())
	listed := strings.Fields(files["manifest.txt"])
	if d := cmp.Diff(want[:len(want)-1], listed); d != "" {
		t.Errorf("manifest (-want +got):\n%s", d)
	}
}

func TestMediaDedup(t *testing.T) {
	dir := t.TempDir()
	data := pngData(t, 2, 3)
	path := filepath.Join(dir, "a.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	doc := document.New()
	slide := doc.CreateSlide()
	slide.CreateDrawing(media.File(path))
	slide.CreateDrawing(media.File(path))
	slide.CreateDrawing(media.Memory(data, ""))

	f := &listFormat{}
	buf := &bytes.Buffer{}
	if err := NewWriter(NewRegistry(f), nil).Write(doc, "list", buf); err != nil {
		t.Fatal(err)
	}
	if n := f.last.Res.Media.Len(); n != 1 {
		t.Fatalf("%d media entries", n)
	}
	blob := f.last.Res.Media.At(0)
	if blob.Width != 2 || blob.Height != 3 {
		t.Errorf("size %dx%d", blob.Width, blob.Height)
	}
	content := readZip(t, buf.Bytes())["content.txt"]
	if n := strings.Count(content, "media="+blob.Name()); n != 3 {
		t.Errorf("%d references to %s", n, blob.Name())
	}
}

func TestDeterministic(t *testing.T) {
	doc := document.New()
	s := doc.CreateSlide()
	s.CreateRichText().SetFill(style.Solid(style.White))
	s.CreateGroup().CreateLine(slides.Point{}, slides.Point{X: 5, Y: 5})

	w := NewWriter(NewRegistry(&listFormat{}), nil)
	var out [2]bytes.Buffer
	for i := range out {
		if err := w.Write(doc, "list", &out[i]); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(out[0].Bytes(), out[1].Bytes()) {
		t.Error("repeated export gave different output")
	}
}

func TestRenderIdempotent(t *testing.T) {
	doc := document.New()
	doc.CreateSlide().CreateRichText()

	f := &listFormat{}
	if err := NewWriter(NewRegistry(f), nil).Write(doc, "list", io.Discard); err != nil {
		t.Fatal(err)
	}
	plan, _ := f.Plan(f.last)
	for _, pw := range plan.Parts() {
		var a, b bytes.Buffer
		if err := pw.Render(&a, f.last); err != nil {
			t.Fatal(err)
		}
		if err := pw.Render(&b, f.last); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.Bytes(), b.Bytes()) {
			t.Errorf("%s: output differs", pw.Info().Path)
		}
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	doc := document.New()
	doc.CreateSlide()
	w := NewWriter(NewRegistry(&listFormat{}), nil)

	err := w.Write(doc, "docx", io.Discard)
	if !errors.Is(err, &slides.InvalidParameterError{}) {
		t.Errorf("unknown format: %v", err)
	}
	err = w.WriteFile(doc, "", "")
	if !errors.Is(err, &slides.InvalidParameterError{}) {
		t.Errorf("empty path: %v", err)
	}
	err = w.WriteFile(doc, filepath.Join(dir, "out.unknown"), "")
	if !errors.Is(err, &slides.InvalidParameterError{}) {
		t.Errorf("unknown extension: %v", err)
	}
	err = w.WriteFile(doc, filepath.Join(dir, "missing", "out.list"), "")
	if !errors.Is(err, &slides.DirectoryNotFoundError{}) {
		t.Errorf("missing directory: %v", err)
	}

	ws := NewWriter(NewRegistry(&listFormat{}), &Options{ScratchDir: filepath.Join(dir, "nope")})
	err = ws.Write(doc, "list", io.Discard)
	if !errors.Is(err, &slides.DirectoryNotFoundError{}) {
		t.Errorf("missing scratch directory: %v", err)
	}
}

func TestUnauthorizedMedia(t *testing.T) {
	doc := document.New()
	doc.CreateSlide().CreateDrawing(media.Memory([]byte("<svg xmlns='http://www.w3.org/2000/svg'/>"), ""))

	err := NewWriter(NewRegistry(&listFormat{}), nil).Write(doc, "list", io.Discard)
	var ue *slides.UnauthorizedResourceTypeError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnauthorizedResourceTypeError, got %v", err)
	}
	if ue.MIME != media.SVG || ue.Format != "list" {
		t.Errorf("unexpected error fields %+v", ue)
	}
}

func TestMissingMedia(t *testing.T) {
	doc := document.New()
	doc.CreateSlide().CreateDrawing(media.File(filepath.Join(t.TempDir(), "gone.png")))

	err := NewWriter(NewRegistry(&listFormat{}), nil).Write(doc, "list", io.Discard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestUnsupportedLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.list")
	doc := document.New()
	s := doc.CreateSlide()
	s.CreateRichText()
	s.CreateRichText().SetName("bad")

	f := &listFormat{failLabel: "bad"}
	err := NewWriter(NewRegistry(f), nil).WriteFile(doc, path, "")
	if !slides.IsUnsupported(err) {
		t.Fatalf("expected UnsupportedFeatureError, got %v", err)
	}
	var ue *slides.UnsupportedFeatureError
	errors.As(err, &ue)
	if ue.Shape != `text "bad"` {
		t.Errorf("shape %q", ue.Shape)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("%d files left behind", len(entries))
	}
}

func TestWriteFileAndSpill(t *testing.T) {
	dir := t.TempDir()
	scratch := t.TempDir()
	doc := document.New()
	s := doc.CreateSlide()
	for range 20 {
		s.CreateRichText()
	}

	w := NewWriter(NewRegistry(&listFormat{}), &Options{ScratchDir: scratch, SpillThreshold: 16})
	path := filepath.Join(dir, "deck.list")
	if err := w.WriteFile(doc, path, ""); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	files := readZip(t, data)
	if n := strings.Count(files["content.txt"], "slide 0 text"); n != 20 {
		t.Errorf("%d shapes in content", n)
	}
	entries, _ := os.ReadDir(scratch)
	if len(entries) != 0 {
		t.Errorf("%d scratch files left behind", len(entries))
	}
}

func TestLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	doc := document.New()
	doc.CreateSlide()
	w := NewWriter(NewRegistry(&listFormat{}), &Options{Logger: logger})
	if err := w.Write(doc, "list", io.Discard); err != nil {
		t.Fatal(err)
	}

	var phases []string
	for _, e := range hook.AllEntries() {
		phases = append(phases, e.Data["phase"].(string))
		if e.Data["format"] != "list" {
			t.Errorf("entry without format: %v", e.Data)
		}
	}
	if d := cmp.Diff([]string{"collect", "render", "assemble"}, phases); d != "" {
		t.Errorf("phases (-want +got):\n%s", d)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(&listFormat{})
	if _, ok := reg.ForPath("/tmp/a.LIST"); !ok {
		t.Error("extension lookup is case sensitive")
	}
	if _, ok := reg.ForPath("noext"); ok {
		t.Error("file without extension matched")
	}
	if d := cmp.Diff([]string{"list"}, reg.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	reg.Register(&listFormat{})
}

// namedFormat is a listFormat under a different name.
type namedFormat struct {
	listFormat
	name string
}

func (f *namedFormat) Name() string { return f.name }

func TestRegistryMixedCase(t *testing.T) {
	reg := NewRegistry(&namedFormat{name: "List"})
	for _, name := range []string{"list", "List", "LIST"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("format %q not found", name)
		}
	}
	if d := cmp.Diff([]string{"list"}, reg.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
	defer func() {
		if recover() == nil {
			t.Error("registration differing only in case did not panic")
		}
	}()
	reg.Register(&namedFormat{name: "LIST"})
}
