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

// Package testcases contains fixed sets of ellipses used as test fixtures
// and for generating reference sheets.
package testcases

import (
	"seehuhn.de/go/ellipses/ellipse"
)

// TestCase defines a single practice sheet.
type TestCase struct {
	Name     string        // lowercase a-z, 0-9 and _ only
	Width    float64       // canvas width
	Height   float64       // canvas height
	Ellipses []ellipse.Def // the ellipses, in drawing order
}

// a4 is the default canvas, A4 landscape in millimetres.
const (
	a4Width  = ellipse.DefaultWidth
	a4Height = ellipse.DefaultHeight
)

// def is a helper to create an ellipse definition with palette color i.
func def(i int, x, y, w, h, angle float64) ellipse.Def {
	return ellipse.Def{
		Center: [2]float64{x, y},
		Major:  w,
		Minor:  h,
		Angle:  angle,
		Color:  ellipse.Label(i),
	}
}
