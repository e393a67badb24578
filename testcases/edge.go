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

var edgeCases = []TestCase{
	// bounding boxes touch the canvas edges
	{
		Name:   "touching",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 50, 105, 100, 40, 0),
			def(1, 247, 105, 100, 40, 0),
			def(2, 148, 25, 100, 50, 0),
			def(3, 148, 185, 100, 50, 0),
		},
	},
	{
		Name:   "full_height",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 148.5, 105, 210, 100, 90),
		},
	},

	// hand-written lists need not stay inside the canvas; the renderer
	// clips them
	{
		Name:   "clipped",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 0, 0, 100, 60, 45),
			def(1, 297, 0, 100, 60, 135),
			def(2, 0, 210, 100, 60, 135),
			def(3, 297, 210, 100, 60, 45),
		},
	},
	{
		Name:   "tiny",
		Width:  a4Width,
		Height: a4Height,
		Ellipses: []ellipse.Def{
			def(0, 100, 100, 0.5, 0.2, 0),
			def(1, 200, 100, 0.02, 0.01, 33),
		},
	},
}
