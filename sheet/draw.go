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

package sheet

import (
	"image/color"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/ellipses/ellipse"
)

// surface is a page being drawn.  All coordinates are canvas coordinates;
// the surface applies the page layout.
type surface interface {
	// fill paints the interior of p with the given color and opacity,
	// using the nonzero winding rule.
	fill(p *path.Data, c color.RGBA, alpha float64)

	// line strokes the segment with butt caps.  The width is in points.
	line(s ellipse.Segment, width float64, c color.RGBA, alpha float64)
}

// drawPage draws the ellipses onto a surface.  The definitions must have
// been validated.  Each ellipse is drawn completely, fill before axes,
// before the next one starts.
func drawPage(s surface, defs []ellipse.Def, mode Mode) {
	for _, d := range defs {
		col, err := ellipse.ParseColor(d.Color)
		if err != nil {
			continue
		}

		if mode&DrawFill != 0 {
			s.fill(d.Outline(), col, fillAlpha)
		}
		if mode&DrawAxes != 0 {
			for _, seg := range d.Axes() {
				s.line(seg, axisWidth, col, axisAlpha)
			}
		}
	}
}
