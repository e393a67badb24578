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

package raster

import (
	"seehuhn.de/go/geom/vec"
)

// StrokeLine renders the straight segment from a to b with butt caps.
// The width is given in user space units.  Zero-length segments produce
// no output, matching the PDF behaviour for butt caps.
func (r *Rasterizer) StrokeLine(a, b vec.Vec2, width float64, emit EmitFunc) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold || width <= 0 {
		return
	}

	// unit normal, 90° counter-clockwise from the tangent
	n := vec.Vec2{X: -d.Y / l, Y: d.X / l}.Mul(width / 2)

	r.outline.Cmds = r.outline.Cmds[:0]
	r.outline.Coords = r.outline.Coords[:0]
	r.outline.MoveTo(a.Add(n)).
		LineTo(b.Add(n)).
		LineTo(b.Sub(n)).
		LineTo(a.Sub(n)).
		Close()
	r.FillNonZero(&r.outline, emit)
}
