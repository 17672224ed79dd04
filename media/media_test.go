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

package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
)

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	data := makePNG(t, 3, 2)
	info, ok := Sniff(data)
	if !ok {
		t.Fatal("PNG not recognised")
	}
	want := Info{MIME: PNG, Ext: "png", Width: 3, Height: 2}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("wrong info (-want +got):\n%s", diff)
	}

	svg := []byte(`<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"/>`)
	info, ok = Sniff(svg)
	if !ok || info.MIME != SVG {
		t.Errorf("SVG not recognised: %v", info)
	}

	if _, ok := Sniff([]byte("plain text")); ok {
		t.Error("text recognised as image")
	}
}

func TestLoadFileAndMemory(t *testing.T) {
	data := makePNG(t, 4, 4)
	path := filepath.Join(t.TempDir(), "a.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fromFile, err := File(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	fromMemory, err := Memory(data, "").Load()
	if err != nil {
		t.Fatal(err)
	}

	if fromFile.Digest() != fromMemory.Digest() {
		t.Error("same data from file and memory has different digests")
	}
	if fromFile.Name() != fromFile.Sum.String()+".png" {
		t.Errorf("unexpected name %q", fromFile.Name())
	}

	// the source identity differs, the content identity does not
	if File(path).Digest() == Memory(data, "").Digest() {
		t.Error("file and memory sources have the same identity")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.png")).Load()
	if !os.IsNotExist(err) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoadDeclaredMIME(t *testing.T) {
	b, err := Memory([]byte("not really an image"), "image/x-custom").Load()
	if err != nil {
		t.Fatal(err)
	}
	if b.MIME != "image/x-custom" || b.Ext != "" {
		t.Errorf("got MIME %q, ext %q", b.MIME, b.Ext)
	}
	if b.Name() != b.Sum.String()+".bin" {
		t.Errorf("unexpected name %q", b.Name())
	}
}

func TestPolicy(t *testing.T) {
	p := Policy{PNG, JPEG}
	if !p.Allows(PNG) || p.Allows(SVG) || p.Allows("") {
		t.Error("wrong policy decisions")
	}
}

func TestLoadFont(t *testing.T) {
	f, err := LoadFont(Memory(goregular.TTF, ""))
	if err != nil {
		t.Fatal(err)
	}
	if f.Family != "Go" {
		t.Errorf("family = %q, want %q", f.Family, "Go")
	}
	if f.Blob.MIME != TTF || f.Blob.Ext != "ttf" {
		t.Errorf("got MIME %q, ext %q", f.Blob.MIME, f.Blob.Ext)
	}
	if f.Bold || f.Italic {
		t.Error("regular font reported as bold or italic")
	}

	_, err = LoadFont(Memory(makePNG(t, 1, 1), ""))
	if err == nil {
		t.Error("PNG accepted as font")
	}
}
