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

// Package ellipse defines the ellipses used on practice sheets, their wire
// format, and a generator which places random ellipses on a canvas.
//
// Coordinates are canvas units with the origin in the lower left corner and
// the y axis pointing up.  Angles are in degrees, measured from the positive
// x axis to the major axis.
package ellipse

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Def describes one ellipse on a practice sheet.
//
// The JSON field names are shared with existing clients and must not change.
type Def struct {
	Center [2]float64 `json:"cntr"` // center (x, y)
	Major  float64    `json:"w"`    // length of the major axis
	Minor  float64    `json:"h"`    // length of the minor axis
	Angle  float64    `json:"a"`    // rotation of the major axis, in degrees
	Color  string     `json:"clr"`  // palette label, see [ParseColor]
}

// Segment is a straight line segment.
type Segment struct {
	A, B vec.Vec2
}

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498307936 // 4/3 * (√2 - 1)

// C returns the center of the ellipse as a vector.
func (d Def) C() vec.Vec2 {
	return vec.Vec2{X: d.Center[0], Y: d.Center[1]}
}

// directions returns unit vectors along the major and the minor axis.
func (d Def) directions() (u, v vec.Vec2) {
	sin, cos := math.Sincos(d.Angle * math.Pi / 180)
	u = vec.Vec2{X: cos, Y: sin}
	v = vec.Vec2{X: -sin, Y: cos}
	return u, v
}

// halfExtent returns half the width and half the height of the axis-aligned
// bounding box of the rotated ellipse.
func (d Def) halfExtent() (hx, hy float64) {
	a := d.Major / 2
	b := d.Minor / 2
	sin, cos := math.Sincos(d.Angle * math.Pi / 180)
	hx = math.Hypot(a*cos, b*sin)
	hy = math.Hypot(a*sin, b*cos)
	return hx, hy
}

// BoundingBox returns the axis-aligned bounding box of the rotated ellipse.
func (d Def) BoundingBox() rect.Rect {
	hx, hy := d.halfExtent()
	return rect.Rect{
		LLx: d.Center[0] - hx,
		LLy: d.Center[1] - hy,
		URx: d.Center[0] + hx,
		URy: d.Center[1] + hy,
	}
}

// Outline returns the boundary of the ellipse as a closed path made of four
// cubic Bézier arcs.
func (d Def) Outline() *path.Data {
	c := d.C()
	u, v := d.directions()
	a := d.Major / 2
	b := d.Minor / 2

	// pt maps local ellipse coordinates to canvas coordinates
	pt := func(x, y float64) vec.Vec2 {
		return c.Add(u.Mul(x)).Add(v.Mul(y))
	}

	ka := kappa * a
	kb := kappa * b
	return (&path.Data{}).
		MoveTo(pt(a, 0)).
		CubeTo(pt(a, kb), pt(ka, b), pt(0, b)).
		CubeTo(pt(-ka, b), pt(-a, kb), pt(-a, 0)).
		CubeTo(pt(-a, -kb), pt(-ka, -b), pt(0, -b)).
		CubeTo(pt(ka, -b), pt(a, -kb), pt(a, 0)).
		Close()
}

// Axes returns the major and the minor axis of the ellipse, each running
// through the center from one side of the ellipse to the other.
func (d Def) Axes() [2]Segment {
	c := d.C()
	u, v := d.directions()
	du := u.Mul(d.Major / 2)
	dv := v.Mul(d.Minor / 2)
	return [2]Segment{
		{A: c.Sub(du), B: c.Add(du)},
		{A: c.Sub(dv), B: c.Add(dv)},
	}
}
