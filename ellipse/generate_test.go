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
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/ellipses/errors"
)

// eps absorbs floating point noise in bounding box comparisons.
const eps = 1e-9

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestGenerateCountAndLabels(t *testing.T) {
	g := NewGenerator(1, quietLogger())
	p := DefaultParams()
	p.Count = 5

	defs, err := g.Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 5 {
		t.Fatalf("got %d ellipses, want 5", len(defs))
	}
	var labels []string
	for _, d := range defs {
		labels = append(labels, d.Color)
	}
	want := []string{"C0", "C1", "C2", "C3", "C4"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

func TestGenerateInvariants(t *testing.T) {
	for seed := range uint64(200) {
		g := NewGenerator(seed, quietLogger())
		p := DefaultParams()
		p.Count = 20
		defs, err := g.Generate(p)
		if err != nil {
			t.Fatal(err)
		}

		for i, d := range defs {
			if d.Major < p.MinMajor || d.Major > p.MaxMajor {
				t.Errorf("seed %d, ellipse %d: major axis %g outside [%g, %g]",
					seed, i, d.Major, p.MinMajor, p.MaxMajor)
			}
			// rounding to two decimals may move the ratio by at most 0.005/w
			tol := 0.005 + eps
			if d.Minor < minAxisRatio*d.Major-tol || d.Minor > maxAxisRatio*d.Major+tol {
				t.Errorf("seed %d, ellipse %d: minor axis %g not in [0.2, 0.8] * %g",
					seed, i, d.Minor, d.Major)
			}
			if d.Angle < 0 || d.Angle > p.MaxAngle {
				t.Errorf("seed %d, ellipse %d: angle %g outside [0, %g]", seed, i, d.Angle, p.MaxAngle)
			}

			box := d.BoundingBox()
			if box.LLx < -eps || box.LLy < -eps || box.URx > p.Width+eps || box.URy > p.Height+eps {
				t.Errorf("seed %d, ellipse %d: bounding box %v leaves the canvas", seed, i, box)
			}
			if err := d.Validate(); err != nil {
				t.Errorf("seed %d, ellipse %d: %v", seed, i, err)
			}
		}
	}
}

func TestGenerateMargin(t *testing.T) {
	p := DefaultParams()
	p.Margin = 0.2
	p.MaxMajor = 100
	availX := (1 - p.Margin) * p.Width
	availY := (1 - p.Margin) * p.Height

	for seed := range uint64(50) {
		defs, err := NewGenerator(seed, quietLogger()).Generate(p)
		if err != nil {
			t.Fatal(err)
		}
		for i, d := range defs {
			box := d.BoundingBox()
			if box.LLx < -eps || box.LLy < -eps || box.URx > availX+eps || box.URy > availY+eps {
				t.Errorf("seed %d, ellipse %d: bounding box %v leaves the placement area", seed, i, box)
			}
		}
	}
}

func TestGenerateSingleFixedSize(t *testing.T) {
	for seed := range uint64(20) {
		g := NewGenerator(seed, quietLogger())
		defs, err := g.Generate(Params{
			Count:    1,
			Width:    100,
			Height:   100,
			MinMajor: 10,
			MaxMajor: 10,
			MaxAngle: 0,
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(defs) != 1 {
			t.Fatalf("got %d ellipses, want 1", len(defs))
		}
		d := defs[0]
		if d.Major != 10 || d.Angle != 0 {
			t.Errorf("got w=%g a=%g, want w=10 a=0", d.Major, d.Angle)
		}
		if d.Minor < 2 || d.Minor > 8 {
			t.Errorf("minor axis %g outside [2, 8]", d.Minor)
		}
		x, y := d.Center[0], d.Center[1]
		if x-5 < 0 || x+5 > 100 || y-d.Minor/2 < -eps || y+d.Minor/2 > 100+eps {
			t.Errorf("ellipse at (%g, %g) with h=%g does not fit", x, y, d.Minor)
		}
		if x != math.Round(x) {
			t.Errorf("center x %g is not an integer", x)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams()
	a, err := NewGenerator(42, quietLogger()).Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(42, quietLogger()).Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed, different ellipses (-a +b):\n%s", diff)
	}

	c, err := NewGenerator(43, quietLogger()).Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(a, c) {
		t.Error("different seeds produced identical ellipses")
	}
}

// fixedSource returns the same value on every call.
type fixedSource float64

func (s fixedSource) Float64() float64 { return float64(s) }

func TestGenerateFixedSource(t *testing.T) {
	defs, err := Generate(fixedSource(0.5), 1, 297, 210, 50, 150, 180)
	if err != nil {
		t.Fatal(err)
	}
	d := defs[0]
	if d.Major != 100 || d.Angle != 90 || d.Minor != 50 {
		t.Errorf("got w=%g h=%g a=%g, want w=100 h=50 a=90", d.Major, d.Minor, d.Angle)
	}
	// the midpoint of the sampling range is the canvas center
	if d.Center != [2]float64{149, 105} && d.Center != [2]float64{148, 105} {
		t.Errorf("center %v, want the middle of the canvas", d.Center)
	}
}

func TestGenerateLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewGenerator(7, log.New(buf))
	p := DefaultParams()
	p.Count = 3
	if _, err := g.Generate(p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "generated ellipses") || !strings.Contains(out, "count=3") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
	}{
		{"zero count", func(p *Params) { p.Count = 0 }},
		{"negative count", func(p *Params) { p.Count = -3 }},
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"negative height", func(p *Params) { p.Height = -1 }},
		{"infinite width", func(p *Params) { p.Width = math.Inf(1) }},
		{"NaN axis", func(p *Params) { p.MinMajor = math.NaN() }},
		{"reversed axis range", func(p *Params) { p.MinMajor, p.MaxMajor = 100, 50 }},
		{"negative angle", func(p *Params) { p.MaxAngle = -1 }},
		{"margin one", func(p *Params) { p.Margin = 1 }},
		{"axis larger than canvas", func(p *Params) { p.MaxMajor = 211 }},
		{"axis larger than margin area", func(p *Params) { p.Margin = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidParameter) {
				t.Errorf("Validate() = %v, want INVALID_PARAMETER", err)
			}
			defs, err := NewGenerator(1, quietLogger()).Generate(p)
			if defs != nil || !errors.Is(err, errors.ErrCodeInvalidParameter) {
				t.Errorf("Generate() = %v, %v", defs, err)
			}
		})
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default parameters rejected: %v", err)
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		u, avail, extent float64
		want             float64
	}{
		{0, 100, 10, 5},
		{0.999999, 100, 10, 95},
		{0.5, 100, 10, 50},
		{0, 100, 10.6, 6},      // round(5.3) = 5 would leave the canvas
		{0.999999, 100, 10.6, 94},
		{0.3, 10.5, 10.2, 5.25}, // no integer position fits
		{0.7, 100, 100, 50},
	}
	for _, tt := range tests {
		got := place(tt.u, tt.avail, tt.extent)
		if got != tt.want {
			t.Errorf("place(%g, %g, %g) = %g, want %g", tt.u, tt.avail, tt.extent, got, tt.want)
		}
		if got-tt.extent/2 < -eps || got+tt.extent/2 > tt.avail+eps {
			t.Errorf("place(%g, %g, %g) = %g leaves [0, %g]", tt.u, tt.avail, tt.extent, got, tt.avail)
		}
	}
}
