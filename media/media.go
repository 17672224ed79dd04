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

// Package media handles the images and font files embedded in a
// presentation.
//
// A [Source] names the media, either as a file on disk or as data in
// memory.  During a write operation the source is loaded into a [Blob],
// which carries the data together with its content digest, MIME type and
// file name extension.  Identical data referenced from several shapes is
// embedded only once, under a file name derived from the digest.
package media

import (
	"fmt"
	"os"
	"slices"

	"seehuhn.de/go/slides"
)

// Source identifies an image or font file.
// Exactly one of Path and Data is set.
type Source struct {
	Path string
	Data []byte

	// MIME is the media type of in-memory data.  It is used if the type
	// cannot be determined from the data itself.
	MIME string
}

// File returns a source which reads the named file.
func File(path string) Source {
	return Source{Path: path}
}

// Memory returns a source for data held in memory.
func Memory(data []byte, mimeType string) Source {
	return Source{Data: data, MIME: mimeType}
}

// IsFile reports whether the data is read from a file.
func (s Source) IsFile() bool {
	return s.Path != ""
}

// String returns a description of the source for use in error messages.
func (s Source) String() string {
	if s.IsFile() {
		return s.Path
	}
	return fmt.Sprintf("memory (%d bytes)", len(s.Data))
}

// Digest identifies the source, not the loaded data.  For files this
// depends on the path, for in-memory data on the data.  This implements the
// [slides.Hashable] interface.
func (s Source) Digest() slides.Digest {
	h := slides.NewHasher(0x3ed1_0001)
	h.Bool(s.IsFile())
	if s.IsFile() {
		h.String(s.Path)
	} else {
		h.Bytes(s.Data)
		h.String(s.MIME)
	}
	return h.Sum()
}

// Clone returns a copy of s which does not share the data slice.
func (s Source) Clone() Source {
	s.Data = slices.Clone(s.Data)
	return s
}

// Load reads and identifies the media data.
func (s Source) Load() (*Blob, error) {
	data := s.Data
	if s.IsFile() {
		var err error
		data, err = os.ReadFile(s.Path)
		if err != nil {
			return nil, err
		}
	} else if len(data) == 0 {
		return nil, fmt.Errorf("media: empty in-memory source")
	}

	b := &Blob{
		Sum:    slides.SumBytes(data),
		Data:   data,
		Origin: s.String(),
	}
	info, ok := Sniff(data)
	if !ok && s.MIME != "" {
		info = infoForMIME(s.MIME)
	}
	b.MIME = info.MIME
	b.Ext = info.Ext
	b.Width = info.Width
	b.Height = info.Height
	return b, nil
}

// Blob is loaded media data.
type Blob struct {
	Sum  slides.Digest
	Data []byte

	// MIME is the media type, or the empty string if the type could not
	// be determined.
	MIME string

	// Ext is the file name extension, without the leading dot.
	Ext string

	// Width and Height are the image size in pixels, or zero if unknown.
	Width, Height int

	// Origin describes where the data came from.
	Origin string
}

// Digest returns the digest of the data.
// This implements the [slides.Hashable] interface.
func (b *Blob) Digest() slides.Digest {
	return b.Sum
}

// Name returns the file name used inside the package, derived from the
// content digest.
func (b *Blob) Name() string {
	ext := b.Ext
	if ext == "" {
		ext = "bin"
	}
	return b.Sum.String() + "." + ext
}

// Policy is the set of MIME types which a format can embed.
type Policy []string

// Allows reports whether media of the given type can be embedded.
func (p Policy) Allows(mimeType string) bool {
	return mimeType != "" && slices.Contains(p, mimeType)
}
