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

package style

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/slides"
)

// Color is an sRGB color with an alpha channel.
type Color struct {
	A, R, G, B uint8
}

// Frequently used colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// ParseHex parses a color in the form "RRGGBB" or "AARRGGBB".
// A leading "#" is ignored.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, errInvalidColor
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(b) == 3 {
		return RGB(b[0], b[1], b[2]), nil
	}
	return Color{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
}

var errInvalidColor = errors.New("color must have the form RRGGBB or AARRGGBB")

// Hex returns the color without alpha channel as "RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// IsOpaque reports whether the color has full alpha.
func (c Color) IsOpaque() bool {
	return c.A == 255
}

// Alpha returns the opacity in the range 0 to 1.
func (c Color) Alpha() float64 {
	return float64(c.A) / 255
}

// Digest implements the [slides.Hashable] interface.
func (c Color) Digest() slides.Digest {
	h := slides.NewHasher(magicColor)
	h.Uint(uint64(c.A))
	h.Uint(uint64(c.R))
	h.Uint(uint64(c.G))
	h.Uint(uint64(c.B))
	return h.Sum()
}

func (c Color) isStyle() {}
