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
	"io"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/ellipses/ellipse"
)

var generatedCases = []TestCase{
	generated("seed_1", 1, 12),
	generated("seed_2", 2, 12),
	generated("max_count", 3, 20),
}

// generated returns a sheet produced by the random generator with a
// fixed seed and default parameters.
func generated(name string, seed uint64, n int) TestCase {
	p := ellipse.DefaultParams()
	p.Count = n
	defs, err := ellipse.NewGenerator(seed, log.New(io.Discard)).Generate(p)
	if err != nil {
		panic(err)
	}
	return TestCase{
		Name:     name,
		Width:    p.Width,
		Height:   p.Height,
		Ellipses: defs,
	}
}
