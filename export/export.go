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

// Package export writes presentations to zip based package formats.
//
// A [Writer] runs one export in three phases:
//
//  1. Collect walks the document graph once.  All style objects are
//     entered into the pass-scoped [Resources] tables, and all media files
//     are loaded, checked against the media policy of the format, and
//     deduplicated by content.
//  2. Render asks the format for its part writers, freezes all tables, and
//     renders every part into a buffer.  The manifest part is rendered
//     last, from the list of all other parts.
//  3. Assemble copies the rendered parts into a zip container.
//
// The indices stored in the resource tables are only valid during one
// export.  Formats must not keep them beyond the call to [Writer.Write].
//
// Formats are looked up in a [Registry], which is created by the caller:
//
//	reg := export.NewRegistry(pptx.New(), odp.New())
//	w := export.NewWriter(reg, nil)
//	err := w.WriteFile(doc, "talk.pptx", "")
package export

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/slides/media"
)

// Format is a package format, for example PresentationML or OpenDocument.
//
// Implementations must be safe for concurrent use; all per-export state
// belongs in the [Plan].
type Format interface {
	// Name is the short name of the format, for example "pptx".
	Name() string

	// Extension is the file name extension, including the dot.
	Extension() string

	// MediaPolicy lists the media types which may be embedded.
	MediaPolicy() media.Policy

	// Plan allocates part paths and relationship ids for the export.
	// This is the last step which may add entries to the resource and
	// relationship tables.
	Plan(job *Job) (Plan, error)
}

// Plan is the list of parts written by one export.
type Plan interface {
	// Parts returns the part writers in the order in which the parts are
	// placed into the container.  The manifest is not included.
	Parts() []PartWriter

	// Manifest returns the writer for the part which lists all other
	// parts.  The argument describes every part placed into the container
	// before the manifest.
	Manifest(written []PartInfo) PartWriter
}

// Options control an export.
type Options struct {
	// Logger receives debug messages for each phase.  If this is nil,
	// nothing is logged.
	Logger *logrus.Logger

	// ScratchDir is the directory for rendered parts which exceed
	// SpillThreshold.  The empty string selects the default directory
	// for temporary files.
	ScratchDir string

	// SpillThreshold is the size above which a rendered part is moved
	// from memory to a file in ScratchDir.  If this is zero, all parts
	// are kept in memory.
	SpillThreshold int64

	// CompressionLevel is the deflate level for compressed parts.
	// The zero value selects the default level.
	CompressionLevel int

	// EmbedXMP adds an XMP metadata part to the package.
	EmbedXMP bool

	// Modified is the time stamp recorded for all zip entries.
	// The zero value stands for 1980-01-01, so that repeated exports
	// produce identical files.
	Modified time.Time
}

var defaultOptions = &Options{}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Registry maps format names to formats.
type Registry struct {
	formats map[string]Format
}

// NewRegistry returns a registry containing the given formats.
func NewRegistry(formats ...Format) *Registry {
	r := &Registry{formats: make(map[string]Format)}
	for _, f := range formats {
		r.Register(f)
	}
	return r
}

// Register adds a format to the registry.  Format names are not case
// sensitive.
// Register panics if a format with the same name is already registered.
func (r *Registry) Register(f Format) {
	name := strings.ToLower(f.Name())
	if _, dup := r.formats[name]; dup {
		panic("export: format " + name + " registered twice")
	}
	r.formats[name] = f
}

// Lookup returns the format with the given name.
func (r *Registry) Lookup(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// ForPath returns the format matching the extension of a file name.
func (r *Registry) ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, name := range r.Names() {
		if f := r.formats[name]; f.Extension() == ext {
			return f, true
		}
	}
	return nil, false
}

// Names returns the names of all registered formats, in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.formats)
	slices.Sort(names)
	return names
}
