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

package media

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Common MIME types.
const (
	PNG  = "image/png"
	JPEG = "image/jpeg"
	GIF  = "image/gif"
	BMP  = "image/bmp"
	TIFF = "image/tiff"
	WebP = "image/webp"
	SVG  = "image/svg+xml"
	TTF  = "font/ttf"
	OTF  = "font/otf"
)

// Info describes the type of media data.
type Info struct {
	MIME          string
	Ext           string
	Width, Height int
}

var formatInfo = map[string]Info{
	"png":  {MIME: PNG, Ext: "png"},
	"jpeg": {MIME: JPEG, Ext: "jpeg"},
	"gif":  {MIME: GIF, Ext: "gif"},
	"bmp":  {MIME: BMP, Ext: "bmp"},
	"tiff": {MIME: TIFF, Ext: "tiff"},
	"webp": {MIME: WebP, Ext: "webp"},
}

// Sniff determines the type of image data from its content.
// For raster images, the size in pixels is also returned.
func Sniff(data []byte) (Info, bool) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		info, ok := formatInfo[format]
		if ok {
			info.Width = cfg.Width
			info.Height = cfg.Height
			return info, true
		}
	}
	if isSVG(data) {
		return Info{MIME: SVG, Ext: "svg"}, true
	}
	return Info{}, false
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	head = bytes.TrimSpace(head)
	if !bytes.HasPrefix(head, []byte("<")) {
		return false
	}
	return bytes.Contains(head, []byte("<svg"))
}

func infoForMIME(mimeType string) Info {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	for _, info := range formatInfo {
		if info.MIME == mimeType {
			return info
		}
	}
	switch mimeType {
	case SVG:
		return Info{MIME: SVG, Ext: "svg"}
	case TTF:
		return Info{MIME: TTF, Ext: "ttf"}
	case OTF:
		return Info{MIME: OTF, Ext: "otf"}
	}
	return Info{MIME: mimeType}
}
