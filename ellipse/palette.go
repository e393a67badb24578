// seehuhn.de/go/ellipses - practice sheets for drawing ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package ellipse

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette is the color cycle used for the labels "C0", "C1", ...
// Labels beyond the end of the palette wrap around.
var Palette = [...]color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff}, // blue
	{0xff, 0x7f, 0x0e, 0xff}, // orange
	{0x2c, 0xa0, 0x2c, 0xff}, // green
	{0xd6, 0x27, 0x28, 0xff}, // red
	{0x94, 0x67, 0xbd, 0xff}, // purple
	{0x8c, 0x56, 0x4b, 0xff}, // brown
	{0xe3, 0x77, 0xc2, 0xff}, // pink
	{0x7f, 0x7f, 0x7f, 0xff}, // gray
	{0xbc, 0xbd, 0x22, 0xff}, // olive
	{0x17, 0xbe, 0xcf, 0xff}, // cyan
}

// Label returns the palette label of the i-th ellipse in a batch.
func Label(i int) string {
	return "C" + strconv.Itoa(i)
}

// ParseColor resolves a color label.  Two forms are accepted: a palette
// label "C<n>" with a non-negative decimal index, and an explicit "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	switch {
	case strings.HasPrefix(s, "C"):
		idx, err := strconv.Atoi(s[1:])
		if err != nil || idx < 0 || s[1:] != strconv.Itoa(idx) {
			return color.RGBA{}, fmt.Errorf("invalid palette label %q", s)
		}
		return Palette[idx%len(Palette)], nil

	case strings.HasPrefix(s, "#") && len(s) == 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}
