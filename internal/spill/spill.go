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

// Package spill implements a buffer which keeps its data in memory up to
// a size limit, and moves it to a temporary file beyond that.
package spill

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// Buffer collects data written to it.
//
// This type implements the [io.Writer] and [io.WriterTo] interfaces.
// Unlike for [bytes.Buffer], WriteTo does not consume the data and can
// be called repeatedly.
type Buffer struct {
	// Data are the buffer contents, while the buffer is held in memory.
	Data []byte

	dir       string
	threshold int64

	file *os.File
	size int64
}

// New creates a new Buffer.  Once more than threshold bytes have been
// written, the data is moved to a temporary file in dir.  If threshold is
// zero or negative, the data is always kept in memory.  If dir is empty,
// the default directory for temporary files is used.
func New(dir string, threshold int64) *Buffer {
	return &Buffer{dir: dir, threshold: threshold}
}

// Write appends data to the buffer.
// This implements the [io.Writer] interface.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.file == nil && b.threshold > 0 && b.size+int64(len(p)) > b.threshold {
		if err := b.spill(); err != nil {
			return 0, err
		}
	}

	if b.file != nil {
		n, err := b.file.Write(p)
		b.size += int64(n)
		return n, err
	}
	b.Data = append(b.Data, p...)
	b.size += int64(len(p))
	return len(p), nil
}

func (b *Buffer) spill() error {
	fd, err := os.CreateTemp(b.dir, "part-*.tmp")
	if err != nil {
		return err
	}
	if _, err := fd.Write(b.Data); err != nil {
		fd.Close()
		os.Remove(fd.Name())
		return err
	}
	b.file = fd
	b.Data = nil
	return nil
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int64 {
	return b.size
}

// Spilled reports whether the data has been moved to a temporary file.
func (b *Buffer) Spilled() bool {
	return b.file != nil
}

// WriteTo copies the complete buffer contents to w.
// This implements the [io.WriterTo] interface.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.file == nil {
		n, err := w.Write(b.Data)
		return int64(n), err
	}
	if _, err := b.file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := io.Copy(w, io.LimitReader(b.file, b.size))
	if err == nil && n < b.size {
		err = errShortFile
	}
	if _, seekErr := b.file.Seek(0, io.SeekEnd); err == nil {
		err = seekErr
	}
	return n, err
}

// Bytes returns the buffer contents.  For spilled buffers, the data is
// read back from the temporary file.
func (b *Buffer) Bytes() ([]byte, error) {
	if b.file == nil {
		return b.Data, nil
	}
	buf := &bytes.Buffer{}
	buf.Grow(int(b.size))
	_, err := b.WriteTo(buf)
	return buf.Bytes(), err
}

// Close releases the temporary file, if any.  The buffer must not be used
// after Close.
func (b *Buffer) Close() error {
	b.Data = nil
	if b.file == nil {
		return nil
	}
	name := b.file.Name()
	err := b.file.Close()
	b.file = nil
	if rmErr := os.Remove(name); err == nil {
		err = rmErr
	}
	return err
}

var errShortFile = errors.New("spill file truncated")
