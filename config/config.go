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

// Package config reads the configuration file of the slidepack tool.
//
// The configuration is a TOML file, by default
// ~/.config/slidepack/config.toml:
//
//	format = "odp"
//	log_level = "info"
//	embed_xmp = true
//	compression_level = 9
//
//	[text]
//	font = "Liberation Sans"
//	size = 20
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/export"
)

// Config is the contents of a configuration file.
type Config struct {
	// Format is the output format used when neither the command line nor
	// the output file name selects one.
	Format string `toml:"format"`

	// LogLevel is one of the logrus level names.
	LogLevel string `toml:"log_level"`

	ScratchDir       string    `toml:"scratch_dir"`
	SpillThreshold   int64     `toml:"spill_threshold"`
	CompressionLevel int       `toml:"compression_level"`
	EmbedXMP         bool      `toml:"embed_xmp"`
	Modified         time.Time `toml:"modified"`

	Text TextConfig `toml:"text"`
}

// TextConfig holds the font used for deck text which does not specify
// one.
type TextConfig struct {
	Font string  `toml:"font"`
	Size float64 `toml:"size"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Format:         "pptx",
		LogLevel:       "warning",
		SpillThreshold: 8 << 20,
		Text: TextConfig{
			Font: "Calibri",
			Size: 18,
		},
	}
}

// Load reads the configuration from the default location.
// If the file does not exist, the default configuration is returned.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path.  Settings missing from the
// file keep their default values.  Unknown keys are an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// DefaultPath returns the location of the configuration file.
// ~/.config/slidepack/config.toml is used if it exists, otherwise the
// file in the user configuration directory of the operating system.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "slidepack", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "slidepack", "config.toml")
	}
	return "config.toml"
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &slides.InvalidParameterError{Param: "log_level", Reason: err.Error()}
	}
	if c.CompressionLevel < flate.HuffmanOnly || c.CompressionLevel > flate.BestCompression {
		return &slides.InvalidParameterError{
			Param:  "compression_level",
			Reason: fmt.Sprintf("%d is outside the range %d to %d", c.CompressionLevel, flate.HuffmanOnly, flate.BestCompression),
		}
	}
	if c.SpillThreshold < 0 {
		return &slides.InvalidParameterError{Param: "spill_threshold", Reason: "must not be negative"}
	}
	if c.ScratchDir != "" {
		fi, err := os.Stat(c.ScratchDir)
		if err != nil || !fi.IsDir() {
			return &slides.DirectoryNotFoundError{Path: c.ScratchDir}
		}
	}
	if c.Text.Size < 0 {
		return &slides.InvalidParameterError{Param: "text.size", Reason: "must not be negative"}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// Options returns the export options described by the configuration.
func (c *Config) Options(log *logrus.Logger) *export.Options {
	return &export.Options{
		Logger:           log,
		ScratchDir:       c.ScratchDir,
		SpillThreshold:   c.SpillThreshold,
		CompressionLevel: c.CompressionLevel,
		EmbedXMP:         c.EmbedXMP,
		Modified:         c.Modified,
	}
}
