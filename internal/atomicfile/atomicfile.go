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

// Package atomicfile writes files via a temporary file which is renamed
// into place once all data has been written.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is an output file which only appears under its final name after
// [File.Commit] succeeds.
type File struct {
	*os.File

	path string
	done bool
}

// Create opens a temporary file in the directory of path.
func Create(path string) (*File, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	return &File{File: tmp, path: path}, nil
}

// Commit flushes the data to disk and renames the temporary file to the
// final name.  If Commit fails, the temporary file is removed.
func (f *File) Commit() error {
	if f.done {
		return os.ErrClosed
	}
	f.done = true

	tmpPath := f.File.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if st, err := os.Stat(f.path); err == nil {
		_ = f.File.Chmod(st.Mode())
	} else {
		_ = f.File.Chmod(0o644)
	}

	if err := f.File.Sync(); err != nil {
		_ = f.File.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.File.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// An existing file at f.path is replaced by the rename, or left
	// alone if the rename fails.
	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return nil
}

// Abort closes and removes the temporary file.  Calling Abort after
// Commit has no effect, so Abort can be deferred.
func (f *File) Abort() {
	if f.done {
		return
	}
	f.done = true
	_ = f.File.Close()
	_ = os.Remove(f.File.Name())
}
