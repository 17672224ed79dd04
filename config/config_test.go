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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/export"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
format = "odp"
log_level = "debug"
embed_xmp = true
compression_level = 9
modified = 2024-03-01T12:00:00Z

[text]
font = "Liberation Sans"
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Format = "odp"
	want.LogLevel = "debug"
	want.EmbedXMP = true
	want.CompressionLevel = 9
	want.Modified = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	want.Text.Font = "Liberation Sans"
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("level %v", cfg.Level())
	}
}

func TestLoadFromErrors(t *testing.T) {
	testCases := []string{
		`format = `,
		`colour = "red"`,
		"[text]\nfamily = \"x\"",
	}
	for _, body := range testCases {
		_, err := LoadFrom(writeConfig(t, body))
		if err == nil {
			t.Errorf("%q: no error", body)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		change func(*Config)
		param  string
	}{
		{func(c *Config) {}, ""},
		{func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{func(c *Config) { c.CompressionLevel = 10 }, "compression_level"},
		{func(c *Config) { c.CompressionLevel = -3 }, "compression_level"},
		{func(c *Config) { c.SpillThreshold = -1 }, "spill_threshold"},
		{func(c *Config) { c.Text.Size = -2 }, "text.size"},
	}
	for i, tc := range testCases {
		cfg := Default()
		tc.change(cfg)
		err := cfg.Validate()
		if tc.param == "" {
			if err != nil {
				t.Errorf("%d: unexpected error %v", i, err)
			}
			continue
		}
		var invalid *slides.InvalidParameterError
		if !errors.As(err, &invalid) || invalid.Param != tc.param {
			t.Errorf("%d: got %v, want error for %s", i, err, tc.param)
		}
	}
}

func TestValidateScratchDir(t *testing.T) {
	cfg := Default()
	cfg.ScratchDir = filepath.Join(t.TempDir(), "missing")
	err := cfg.Validate()
	if !errors.Is(err, &slides.DirectoryNotFoundError{}) {
		t.Errorf("got %v, want DirectoryNotFoundError", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.ScratchDir = "/tmp"
	cfg.CompressionLevel = 1
	cfg.EmbedXMP = true

	log := logrus.New()
	got := cfg.Options(log)
	want := &export.Options{
		Logger:           log,
		ScratchDir:       "/tmp",
		SpillThreshold:   8 << 20,
		CompressionLevel: 1,
		EmbedXMP:         true,
	}
	if d := cmp.Diff(want, got, cmp.Comparer(func(a, b *logrus.Logger) bool { return a == b })); d != "" {
		t.Errorf("options mismatch (-want +got):\n%s", d)
	}
}
