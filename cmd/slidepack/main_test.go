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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

func TestOutputName(t *testing.T) {
	testCases := []struct {
		title, deck, ext string
		out              string
	}{
		{"Quarterly Review 2024", "talk.yaml", ".pptx", "quarterly-review-2024.pptx"},
		{"Über Größe", "x.yaml", ".odp", "uber-grosse.odp"},
		{"", "dir/talk.yaml", ".odp", "talk.odp"},
	}
	for _, tc := range testCases {
		got := outputName(tc.title, tc.deck, tc.ext)
		if got != tc.out {
			t.Errorf("%q: got %q, want %q", tc.title, got, tc.out)
		}
	}
}

func setupFiles(t *testing.T) (dir, deck, cfg string) {
	t.Helper()
	dir = t.TempDir()
	deck = filepath.Join(dir, "deck.yaml")
	body := "title: Demo\nslides:\n  - shapes:\n      - text: \"*hi*\"\n        width: 5cm\n        height: 2cm\n"
	if err := os.WriteFile(deck, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg = filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfg, []byte("format = \"odp\"\nlog_level = \"error\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, deck, cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	dir, deck, cfg := setupFiles(t)
	out := filepath.Join(dir, "demo.pptx")

	if _, err := run(t, "build", deck, "-o", out, "--config", cfg); err != nil {
		t.Fatal(err)
	}
	r, err := zip.OpenReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if r.File[0].Name != "_rels/.rels" {
		t.Errorf("not a pptx package, first entry %s", r.File[0].Name)
	}
}

func TestBuildStdout(t *testing.T) {
	_, deck, cfg := setupFiles(t)

	out, err := run(t, "build", deck, "-o", "-", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte(out)
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if r.File[0].Name != "mimetype" {
		t.Errorf("not an odp package, first entry %s", r.File[0].Name)
	}
}

func TestBuildErrors(t *testing.T) {
	dir, deck, cfg := setupFiles(t)

	testCases := [][]string{
		{"build", filepath.Join(dir, "missing.yaml"), "--config", cfg},
		{"build", deck, "-o", filepath.Join(dir, "no", "such", "dir.pptx"), "--config", cfg},
		{"build", deck, "-o", "-", "--format", "docx", "--config", cfg},
		{"build", deck, "--config", cfg, "--log-level", "chatty"},
		{"build", "--config", cfg},
	}
	for _, args := range testCases {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: no error", args)
		}
	}
}

func TestFormats(t *testing.T) {
	_, _, cfg := setupFiles(t)
	out, err := run(t, "formats", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := "odp    .odp\npptx   .pptx\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
