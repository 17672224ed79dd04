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

package slides

import (
	"fmt"
)

// InvalidParameterError indicates that a caller-supplied value was not
// usable, for example an empty output path.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (err *InvalidParameterError) Error() string {
	return "invalid " + err.Param + ": " + err.Reason
}

// Is reports whether target is an *InvalidParameterError.
func (err *InvalidParameterError) Is(target error) bool {
	_, ok := target.(*InvalidParameterError)
	return ok
}

// DirectoryNotFoundError indicates that the output directory or the scratch
// directory does not exist.
type DirectoryNotFoundError struct {
	Path string
}

func (err *DirectoryNotFoundError) Error() string {
	return "directory not found: " + err.Path
}

// Is reports whether target is a *DirectoryNotFoundError.
func (err *DirectoryNotFoundError) Is(target error) bool {
	_, ok := target.(*DirectoryNotFoundError)
	return ok
}

// UnauthorizedResourceTypeError indicates that a media file has a MIME type
// which cannot be embedded in the target format.
type UnauthorizedResourceTypeError struct {
	Format string
	MIME   string
	Source string
}

func (err *UnauthorizedResourceTypeError) Error() string {
	mime := err.MIME
	if mime == "" {
		mime = "unknown type"
	}
	return fmt.Sprintf("%s: media type %s not allowed (%s)", err.Format, mime, err.Source)
}

// Is reports whether target is an *UnauthorizedResourceTypeError.
func (err *UnauthorizedResourceTypeError) Is(target error) bool {
	_, ok := target.(*UnauthorizedResourceTypeError)
	return ok
}

// UnsupportedFeatureError indicates that the document contains a construct
// which the target format writer cannot express.  Shape identifies the
// offending shape, or is empty if the feature is not tied to a shape.
type UnsupportedFeatureError struct {
	Format  string
	Shape   string
	Feature string
}

func (err *UnsupportedFeatureError) Error() string {
	msg := err.Format + ": " + err.Feature + " not supported"
	if err.Shape != "" {
		msg += " (shape " + err.Shape + ")"
	}
	return msg
}

// Is reports whether target is an *UnsupportedFeatureError.
func (err *UnsupportedFeatureError) Is(target error) bool {
	_, ok := target.(*UnsupportedFeatureError)
	return ok
}

// IsUnsupported returns true if err is, or wraps, an UnsupportedFeatureError.
func IsUnsupported(err error) bool {
	for err != nil {
		if _, ok := err.(*UnsupportedFeatureError); ok {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// PackageAssemblyError indicates an I/O failure while writing the zip
// container.  Path is the part being written, if known.
type PackageAssemblyError struct {
	Path string
	Err  error
}

func (err *PackageAssemblyError) Error() string {
	msg := "cannot assemble package"
	if err.Path != "" {
		msg += " (" + err.Path + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *PackageAssemblyError) Unwrap() error {
	return err.Err
}

// Is reports whether target is a *PackageAssemblyError.
func (err *PackageAssemblyError) Is(target error) bool {
	_, ok := target.(*PackageAssemblyError)
	return ok
}
