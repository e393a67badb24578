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

import "seehuhn.de/go/ellipses/ellipse"

var basicCases = []TestCase{
	{
		Name:   "empty",
		Width:  a4Width,
		Height: a4Height,
	},
	{
		Name:     "single",
		Width:    a4Width,
		Height:   a4Height,
		Ellipses: []ellipse.Def{def(0, 148, 105, 120, 60, 0)},
	},
	{
		Name:     "single_vertical",
		Width:    a4Width,
		Height:   a4Height,
		Ellipses: []ellipse.Def{def(0, 148, 105, 150, 40, 90)},
	},
	{
		Name:   "rotated",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 60, 60, 80, 30, 0),
			def(1, 150, 60, 80, 30, 30),
			def(2, 240, 60, 80, 30, 60),
			def(3, 60, 150, 80, 30, 90),
			def(4, 150, 150, 80, 30, 120),
			def(5, 240, 150, 80, 30, 150),
		},
	},
	{
		Name:   "thin",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 148, 60, 140, 28, 10),
			def(1, 148, 150, 140, 112, 170),
		},
	},
	{
		Name:     "small_canvas",
		Width:    100,
		Height:   100,
		Ellipses: []ellipse.Def{def(0, 50, 50, 10, 5, 0)},
	},
}
