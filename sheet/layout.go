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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/errors"
)

// Page geometry.  The page is a landscape A4 sheet (11.7in x 8.3in)
// scaled by 0.75.  PageWidth and PageHeight are in PDF points.
const (
	pageWidthInch  = 0.75 * 11.7
	pageHeightInch = 0.75 * 8.3

	PageWidth  = pageWidthInch * 72
	PageHeight = pageHeightInch * 72

	// pageMargin is the fraction of the page width and height left empty
	// on each side of the canvas.
	pageMargin = 0.04
)

// Stroke parameters of the axis lines and fill parameters of the ellipses.
const (
	fillAlpha = 0.1
	axisAlpha = 0.8
	axisWidth = 0.75 // in points
)

// Canvas is the drawing area, in the units of the ellipse definitions.
type Canvas struct {
	Width, Height float64
}

// DefaultCanvas is the A4 landscape canvas, measured in millimetres.
var DefaultCanvas = Canvas{Width: ellipse.DefaultWidth, Height: ellipse.DefaultHeight}

// Validate checks that both dimensions are finite and positive.
func (c Canvas) Validate() error {
	ok := func(x float64) bool {
		return x > 0 && !math.IsInf(x, 0)
	}
	if !ok(c.Width) || !ok(c.Height) {
		return errors.New(errors.ErrCodeInvalidParameter,
			"canvas size must be positive, got %gx%g", c.Width, c.Height)
	}
	return nil
}

// Mode selects which parts of the ellipses are drawn.
type Mode uint8

const (
	// DrawFill draws the translucent ellipse shapes.
	DrawFill Mode = 1 << iota

	// DrawAxes draws the major and minor axis of each ellipse.
	DrawAxes
)

// The three page variants of a practice document.
const (
	Full         = DrawFill | DrawAxes
	AxesOnly     = DrawAxes
	EllipsesOnly = DrawFill
)

func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case AxesOnly:
		return "axes only"
	case EllipsesOnly:
		return "ellipses only"
	case 0:
		return "blank"
	default:
		return "invalid"
	}
}

// ModeFromFlags converts the two exclusion flags to a Mode.  Setting both
// flags gives a blank page.
func ModeFromFlags(axesOnly, ellipsesOnly bool) Mode {
	m := Full
	if axesOnly {
		m &^= DrawFill
	}
	if ellipsesOnly {
		m &^= DrawAxes
	}
	return m
}

// PageMode returns the drawing mode of the given page of a practice
// document.  Page 2 shows the axes, page 3 the ellipses.  All other page
// numbers show the full sheet.
func PageMode(page int) Mode {
	switch page {
	case 2:
		return AxesOnly
	case 3:
		return EllipsesOnly
	default:
		return Full
	}
}

// layout places the canvas on the page.  The canvas is scaled uniformly
// and centred in the area inside the page margins.
type layout struct {
	canvas Canvas
	scale  float64 // points per canvas unit
	ox, oy float64 // page position of the canvas origin, y pointing up
}

func newLayout(c Canvas) layout {
	innerW := (1 - 2*pageMargin) * PageWidth
	innerH := (1 - 2*pageMargin) * PageHeight
	s := min(innerW/c.Width, innerH/c.Height)
	return layout{
		canvas: c,
		scale:  s,
		ox:     (PageWidth - s*c.Width) / 2,
		oy:     (PageHeight - s*c.Height) / 2,
	}
}

// pageMatrix maps canvas coordinates to PDF page coordinates.
func (l layout) pageMatrix() matrix.Matrix {
	return matrix.Matrix{l.scale, 0, 0, l.scale, l.ox, l.oy}
}

// pixelMatrix maps canvas coordinates to image pixels at the given
// resolution.  Pixel rows count downwards from the top of the page.
func (l layout) pixelMatrix(dpi float64) matrix.Matrix {
	k := dpi / 72
	return matrix.Matrix{
		k * l.scale, 0,
		0, -k * l.scale,
		k * l.ox, dpi*pageHeightInch - k*l.oy,
	}
}

// pixelSize returns the image size at the given resolution.  The size is
// computed from the page size in inches, so that half pixels round up.
func pixelSize(dpi float64) (int, int) {
	return int(math.Round(dpi * pageWidthInch)), int(math.Round(dpi * pageHeightInch))
}

// pixelClip returns the canvas area in image pixels, rounded outwards to
// whole pixels and limited to the image.
func (l layout) pixelClip(dpi float64) rect.Rect {
	m := l.pixelMatrix(dpi)
	w, h := pixelSize(dpi)
	x0 := m[4]
	x1 := m[0]*l.canvas.Width + m[4]
	y0 := m[3]*l.canvas.Height + m[5]
	y1 := m[5]
	return rect.Rect{
		LLx: max(math.Floor(x0), 0),
		LLy: max(math.Floor(y0), 0),
		URx: min(math.Ceil(x1), float64(w)),
		URy: min(math.Ceil(y1), float64(h)),
	}
}
