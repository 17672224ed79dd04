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

package opc

import (
	"bytes"
	"errors"
	"hash/crc32"
	"io"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"seehuhn.de/go/slides"
)

// Entry is a rendered part, ready to be placed into a zip container.
type Entry struct {
	PartInfo

	// Body writes the content of the part.
	Body io.WriterTo
}

// AssembleOptions control the zip container written by [Assemble].
type AssembleOptions struct {
	// Level is the deflate compression level, from flate.HuffmanOnly to
	// flate.BestCompression.  The zero value selects
	// flate.DefaultCompression.
	Level int

	// Modified is the modification time recorded for all entries.
	// The zero value stands for 1980-01-01 00:00:00.
	Modified time.Time
}

// Assemble writes a zip container holding the given parts, in the given
// order.
//
// Assemble only copies data.  Errors are reported as
// [slides.PackageAssemblyError].
func Assemble(w io.Writer, entries []Entry, opt *AssembleOptions) error {
	if opt == nil {
		opt = &AssembleOptions{}
	}
	level := opt.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	date, tm := msDosTime(opt.Modified)

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Path] {
			return &slides.PackageAssemblyError{Path: e.Path, Err: errDuplicate}
		}
		seen[e.Path] = true

		var err error
		if e.Stored {
			err = writeStored(zw, e, date, tm)
		} else {
			err = writeDeflated(zw, e, date, tm)
		}
		if err != nil {
			return &slides.PackageAssemblyError{Path: e.Path, Err: err}
		}
	}

	err := zw.Close()
	if err != nil {
		return &slides.PackageAssemblyError{Err: err}
	}
	return nil
}

func writeDeflated(zw *zip.Writer, e Entry, date, tm uint16) error {
	fh := &zip.FileHeader{
		Name:         e.Path,
		Method:       zip.Deflate,
		ModifiedDate: date,
		ModifiedTime: tm,
	}
	fw, err := zw.CreateHeader(fh)
	if err != nil {
		return err
	}
	_, err = e.Body.WriteTo(fw)
	return err
}

// SizedBody is an entry body which knows its length and can be written
// any number of times.  Stored entries with such a body are streamed
// twice, once for the checksum and once for the data, instead of being
// copied into memory.
type SizedBody interface {
	io.WriterTo
	Len() int64
}

// writeStored writes an uncompressed entry.  The checksum and size are
// computed in advance, so that the local file header is complete and no
// data descriptor follows the data.
func writeStored(zw *zip.Writer, e Entry, date, tm uint16) error {
	body, ok := e.Body.(SizedBody)
	if !ok {
		buf := &bytes.Buffer{}
		if _, err := e.Body.WriteTo(buf); err != nil {
			return err
		}
		body = bytesBody(buf.Bytes())
	}

	crc := crc32.NewIEEE()
	n, err := body.WriteTo(crc)
	if err != nil {
		return err
	}
	if n != body.Len() {
		return errShortBody
	}

	fh := &zip.FileHeader{
		Name:               e.Path,
		Method:             zip.Store,
		ModifiedDate:       date,
		ModifiedTime:       tm,
		CRC32:              crc.Sum32(),
		CompressedSize64:   uint64(n),
		UncompressedSize64: uint64(n),
	}
	fw, err := zw.CreateRaw(fh)
	if err != nil {
		return err
	}
	m, err := body.WriteTo(fw)
	if err == nil && m != n {
		err = errShortBody
	}
	return err
}

type bytesBody []byte

func (b bytesBody) Len() int64 { return int64(len(b)) }

func (b bytesBody) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b)
	return int64(n), err
}

// msDosTime converts t to the date and time fields of a zip header.
// No extended timestamp field is written, which keeps the local header of
// the first entry at a fixed size.
func msDosTime(t time.Time) (date, tm uint16) {
	if t.Year() < 1980 {
		t = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	date = uint16(t.Day() + int(t.Month())<<5 + (t.Year()-1980)<<9)
	tm = uint16(t.Second()/2 + t.Minute()<<5 + t.Hour()<<11)
	return date, tm
}

var (
	errDuplicate = errors.New("duplicate part name")
	errShortBody = errors.New("part length changed while writing")
)
