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

var paletteCases = []TestCase{
	// a grid of 20 ellipses, so that labels C10 to C19 wrap around
	{
		Name:     "wrap",
		Width:    a4Width,
		Height:   a4Height,
		Ellipses: grid(5, 4),
	},
	{
		Name:   "explicit_colors",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			{Center: [2]float64{80, 105}, Major: 120, Minor: 60, Angle: 20, Color: "#000000"},
			{Center: [2]float64{217, 105}, Major: 120, Minor: 60, Angle: 160, Color: "#ff00ff"},
		},
	},
}

// grid places cols x rows ellipses in a regular pattern.
func grid(cols, rows int) []ellipse.Def {
	dx := a4Width / float64(cols)
	dy := a4Height / float64(rows)
	var defs []ellipse.Def
	for r := range rows {
		for c := range cols {
			i := len(defs)
			x := (float64(c) + 0.5) * dx
			y := (float64(r) + 0.5) * dy
			defs = append(defs, def(i, x, y, 0.9*dx, 0.4*dx, float64(i)*9))
		}
	}
	return defs
}
