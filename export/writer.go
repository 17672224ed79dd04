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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/document"
	"seehuhn.de/go/slides/internal/atomicfile"
	"seehuhn.de/go/slides/internal/spill"
	"seehuhn.de/go/slides/metadata"
	"seehuhn.de/go/slides/opc"
)

// Writer exports presentations.  A Writer can be used for several
// exports, also concurrently, since every export uses its own resource
// tables.
type Writer struct {
	reg *Registry
	opt *Options
	log *logrus.Logger
}

// NewWriter returns a Writer which uses the formats in reg.
// If opt is nil, default options are used.
func NewWriter(reg *Registry, opt *Options) *Writer {
	if opt == nil {
		opt = defaultOptions
	}
	log := opt.Logger
	if log == nil {
		log = discardLogger()
	}
	return &Writer{reg: reg, opt: opt, log: log}
}

// Write exports doc in the named format to out.
//
// If an error occurs, out may have received an incomplete package.  Use
// [Writer.WriteFile] to avoid this.
func (w *Writer) Write(doc *document.Presentation, format string, out io.Writer) error {
	f, ok := w.reg.Lookup(format)
	if !ok {
		return &slides.InvalidParameterError{
			Param:  "format",
			Reason: fmt.Sprintf("unknown format %q", format),
		}
	}
	return w.write(doc, f, out)
}

// WriteFile exports doc to the file at path.  If format is empty, the
// format is chosen by the file name extension.
//
// The package is first written to a temporary file in the same
// directory, which is renamed once the export has succeeded.  On failure,
// no file is left behind and an existing file at path is not changed.
func (w *Writer) WriteFile(doc *document.Presentation, path, format string) error {
	if path == "" {
		return &slides.InvalidParameterError{Param: "path", Reason: "empty file name"}
	}

	var f Format
	var ok bool
	if format == "" {
		f, ok = w.reg.ForPath(path)
		if !ok {
			return &slides.InvalidParameterError{
				Param:  "format",
				Reason: "cannot determine format of " + path,
			}
		}
	} else {
		f, ok = w.reg.Lookup(format)
		if !ok {
			return &slides.InvalidParameterError{
				Param:  "format",
				Reason: fmt.Sprintf("unknown format %q", format),
			}
		}
	}

	if err := checkDir(filepath.Dir(path)); err != nil {
		return err
	}

	out, err := atomicfile.Create(path)
	if err != nil {
		return &slides.PackageAssemblyError{Err: err}
	}
	defer out.Abort()

	err = w.write(doc, f, out)
	if err != nil {
		return err
	}
	err = out.Commit()
	if err != nil {
		return &slides.PackageAssemblyError{Err: err}
	}
	return nil
}

func checkDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return &slides.DirectoryNotFoundError{Path: dir}
	}
	return nil
}

func (w *Writer) write(doc *document.Presentation, f Format, out io.Writer) error {
	if w.opt.ScratchDir != "" {
		if err := checkDir(w.opt.ScratchDir); err != nil {
			return err
		}
	}

	job := &Job{
		Doc:     doc,
		Format:  f,
		Res:     NewResources(),
		Options: w.opt,
		Digest:  doc.Digest(),
	}
	job.Log = w.log.WithFields(logrus.Fields{
		"format":   f.Name(),
		"document": job.Digest.String()[:12],
	})

	// phase 1: collect
	err := collect(job)
	if err != nil {
		return err
	}
	res := job.Res
	job.Log.WithFields(logrus.Fields{
		"phase":      "collect",
		"fonts":      res.Fonts.Len(),
		"fills":      res.Fills.Len(),
		"paragraphs": res.Paragraphs.Len(),
		"graphics":   res.Graphics.Len(),
		"media":      res.Media.Len(),
	}).Debug("resources collected")

	plan, err := f.Plan(job)
	if err != nil {
		return err
	}
	res.Freeze()

	// phase 2: render
	parts := plan.Parts()
	if w.opt.EmbedXMP {
		parts = append(parts, NewPart(
			PartInfo{Path: metadata.PartName, ContentType: metadata.ContentType},
			func(dst io.Writer, job *Job) error {
				return metadata.Write(dst, job.Doc)
			}))
	}

	var buffers []*spill.Buffer
	defer func() {
		for _, b := range buffers {
			b.Close()
		}
	}()
	render := func(pw PartWriter) (opc.Entry, error) {
		info := pw.Info()
		buf := spill.New(w.opt.ScratchDir, w.opt.SpillThreshold)
		buffers = append(buffers, buf)
		err := pw.Render(buf, job)
		if err != nil {
			return opc.Entry{}, fmt.Errorf("%s: %w", info.Path, err)
		}
		return opc.Entry{PartInfo: info, Body: buf}, nil
	}

	entries := make([]opc.Entry, 0, len(parts)+1)
	written := make([]PartInfo, 0, len(parts))
	for _, pw := range parts {
		e, err := render(pw)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		written = append(written, e.PartInfo)
	}
	e, err := render(plan.Manifest(written))
	if err != nil {
		return err
	}
	entries = append(entries, e)

	var total int64
	for _, b := range buffers {
		total += b.Len()
	}
	job.Log.WithFields(logrus.Fields{
		"phase": "render",
		"parts": len(entries),
		"bytes": total,
	}).Debug("parts rendered")

	// phase 3: assemble
	err = opc.Assemble(out, entries, &opc.AssembleOptions{
		Level:    w.opt.CompressionLevel,
		Modified: w.opt.Modified,
	})
	if err != nil {
		return err
	}
	job.Log.WithField("phase", "assemble").Debug("package written")
	return nil
}
