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

package testcases

import (
	"seehuhn.de/go/ellipses/ellipse"
)

var overlapCases = []TestCase{
	// translucent fills must accumulate where shapes overlap
	{
		Name:   "crossed",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 148, 105, 150, 50, 0),
			def(1, 148, 105, 150, 50, 90),
		},
	},
	{
		Name:   "concentric",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 148, 105, 150, 120, 0),
			def(1, 148, 105, 110, 80, 0),
			def(2, 148, 105, 70, 40, 0),
			def(3, 148, 105, 30, 12, 0),
		},
	},
	{
		Name:     "stacked",
		Width:    a4Width,
		Height:   a4Height,
		Ellipses: stacked(10),
	},
}

// stacked returns n identical ellipses, rotated in steps.
func stacked(n int) []ellipse.Def {
	defs := make([]ellipse.Def, n)
	for i := range defs {
		defs[i] = def(i, 148, 105, 140, 56, float64(i)*180/float64(n))
	}
	return defs
}
