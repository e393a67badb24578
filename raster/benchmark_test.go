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
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ellipses/ellipse"
)

// sheet returns a reproducible set of ellipses on the default canvas.
func sheet(tb testing.TB) []ellipse.Def {
	tb.Helper()
	defs, err := ellipse.NewGenerator(1, log.New(io.Discard)).Generate(ellipse.DefaultParams())
	if err != nil {
		tb.Fatal(err)
	}
	return defs
}

// addToVector replays a path on a vector.Rasterizer, applying a scale.
func addToVector(r *vector.Rasterizer, p *path.Data, scale float64) {
	pt := func(i int) (float32, float32) {
		return float32(p.Coords[i].X * scale), float32(p.Coords[i].Y * scale)
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(pt(k))
			k++
		case path.CmdLineTo:
			r.LineTo(pt(k))
			k++
		case path.CmdQuadTo:
			x1, y1 := pt(k)
			x2, y2 := pt(k + 1)
			r.QuadTo(x1, y1, x2, y2)
			k += 2
		case path.CmdCubeTo:
			x1, y1 := pt(k)
			x2, y2 := pt(k + 1)
			x3, y3 := pt(k + 2)
			r.CubeTo(x1, y1, x2, y2, x3, y3)
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// polygon replaces every cubic segment of p by n straight lines.
func polygon(p *path.Data, n int) *path.Data {
	res := &path.Data{}
	var current vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			res.MoveTo(current)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			res.LineTo(current)
			k++
		case path.CmdCubeTo:
			p0, p1, p2, p3 := current, p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				s := 1 - t
				res.LineTo(p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t)))
			}
			current = p3
			k += 3
		case path.CmdClose:
			res.Close()
		}
	}
	return res
}

// TestAgainstVector compares the coverage of a single ellipse with the
// output of golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const w, h = 120, 90
	d := ellipse.Def{Center: [2]float64{60, 45}, Major: 100, Minor: 42, Angle: 21, Color: "C0"}
	outline := d.Outline()

	ours := newGrid(w, h)
	r := NewRasterizer(rect.Rect{URx: w, URy: h})
	r.Flatness = 0.01
	r.FillNonZero(outline, ours.emit)

	// x/image/vector flattens curves coarsely, so it gets a polygon
	ref := image.NewAlpha(image.Rect(0, 0, w, h))
	v := vector.NewRasterizer(w, h)
	addToVector(v, polygon(outline, 64), 1)
	v.Draw(ref, ref.Bounds(), image.Opaque, image.Point{})

	maxDiff := 0.0
	for y := range h {
		for x := range w {
			want := float64(ref.Pix[y*ref.Stride+x]) / 255
			diff := math.Abs(float64(ours.at(x, y)) - want)
			maxDiff = max(maxDiff, diff)
		}
	}
	if maxDiff > 0.05 {
		t.Errorf("maximal coverage difference %.3f", maxDiff)
	}
}

// BenchmarkSheet renders all ellipses of a sheet at increasing resolution.
func BenchmarkSheet(b *testing.B) {
	defs := sheet(b)
	outlines := make([]*path.Data, len(defs))
	for i, d := range defs {
		outlines[i] = d.Outline()
	}

	for _, scale := range []float64{1, 3, 10} {
		w := int(math.Ceil(ellipse.DefaultWidth * scale))
		h := int(math.Ceil(ellipse.DefaultHeight * scale))
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			clip := rect.Rect{URx: float64(w), URy: float64(h)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, w, h))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.CTM = matrix.Matrix{scale, 0, 0, scale, 0, 0}
				for _, p := range outlines {
					r.FillNonZero(p, func(y, xMin int, coverage []float32) {
						row := dst.Pix[y*dst.Stride+xMin:]
						for i, c := range coverage {
							row[i] = uint8(c * 255)
						}
					})
				}
			}
		})
	}
}

// BenchmarkVectorSheet renders the same sheet using x/image/vector.
func BenchmarkVectorSheet(b *testing.B) {
	defs := sheet(b)
	outlines := make([]*path.Data, len(defs))
	for i, d := range defs {
		outlines[i] = d.Outline()
	}

	for _, scale := range []float64{1, 3, 10} {
		w := int(math.Ceil(ellipse.DefaultWidth * scale))
		h := int(math.Ceil(ellipse.DefaultHeight * scale))
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			v := vector.NewRasterizer(w, h)
			dst := image.NewAlpha(image.Rect(0, 0, w, h))

			b.ReportAllocs()
			for b.Loop() {
				for _, p := range outlines {
					v.Reset(w, h)
					addToVector(v, p, scale)
					v.DrawOp = draw.Src
					v.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
				}
			}
		})
	}
}
