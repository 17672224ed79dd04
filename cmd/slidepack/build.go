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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/deckfile"
	"seehuhn.de/go/slides/export"
	"seehuhn.de/go/slides/style"
)

var errTerminal = errors.New("refusing to write a binary package to a terminal")

func (a *app) buildCmd() *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "build deck.yaml",
		Short: "Build a presentation file from a deck description",
		Long: `Build reads a YAML deck description and writes a presentation file.

If no output file is given, the name is derived from the deck title and
the file is written to the current directory.  Use "-o -" to write to
standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(cmd.OutOrStdout(), args[0], output, format)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format")
	return cmd
}

func (a *app) build(stdout io.Writer, deckPath, output, format string) error {
	deck, err := deckfile.Load(deckPath)
	if err != nil {
		return err
	}

	font := style.DefaultFont
	if a.cfg.Text.Font != "" {
		font.Name = a.cfg.Text.Font
	}
	if a.cfg.Text.Size > 0 {
		font.Size = a.cfg.Text.Size
	}
	doc, err := deck.Build(font)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Truncate(time.Second)
	doc.Properties.Created = now
	doc.Properties.Modified = now

	reg := registry()
	if format == "" && (output == "" || output == "-") {
		format = a.cfg.Format
	}
	if output == "" {
		f, ok := reg.Lookup(format)
		if !ok {
			return &slides.InvalidParameterError{Param: "format", Reason: "unknown format " + format}
		}
		output = outputName(deck.Title, deckPath, f.Extension())
	}

	w := export.NewWriter(reg, a.cfg.Options(a.log))
	log := a.log.WithFields(logrus.Fields{"deck": deckPath, "output": output})
	if output == "-" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errTerminal
		}
		err = w.Write(doc, format, stdout)
	} else {
		err = w.WriteFile(doc, output, format)
	}
	if err != nil {
		return err
	}
	log.WithField("slides", doc.NumSlides()).Info("presentation written")
	return nil
}

// outputName returns the default output file name for a deck.  The name
// is the slug of the deck title, or the base name of the deck file if
// the title is empty.
func outputName(title, deckPath, ext string) string {
	base := slug.Make(title)
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))
	}
	return base + ext
}
