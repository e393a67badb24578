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
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/raster"
)

// imageSurface draws a page into an RGBA image.  Shapes are rasterised
// into a coverage mask, which is then composited onto the page.
type imageSurface struct {
	img   *image.RGBA
	mask  *image.Alpha
	r     *raster.Rasterizer
	scale float64 // points per canvas unit

	dirty image.Rectangle // part of mask written since the last composite
}

// newImageSurface returns a white page at the given resolution.  The
// rasterizer is reconfigured for the page.
func newImageSurface(l layout, dpi float64, r *raster.Rasterizer) *imageSurface {
	w, h := pixelSize(dpi)
	bounds := image.Rect(0, 0, w, h)

	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.White, image.Point{}, draw.Src)

	r.Reset(l.pixelClip(dpi))
	r.CTM = l.pixelMatrix(dpi)

	return &imageSurface{
		img:   img,
		mask:  image.NewAlpha(bounds),
		r:     r,
		scale: l.scale,
	}
}

func (s *imageSurface) fill(p *path.Data, c color.RGBA, alpha float64) {
	s.r.FillNonZero(p, s.emit)
	s.composite(c, alpha)
}

func (s *imageSurface) line(seg ellipse.Segment, width float64, c color.RGBA, alpha float64) {
	s.r.StrokeLine(seg.A, seg.B, width/s.scale, s.emit)
	s.composite(c, alpha)
}

// emit stores one row of coverage in the mask.
func (s *imageSurface) emit(y, xMin int, coverage []float32) {
	row := s.mask.Pix[y*s.mask.Stride+xMin:]
	for i, c := range coverage {
		row[i] = uint8(math.Round(float64(c) * 255))
	}
	s.dirty = s.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// composite paints the color through the mask and clears the mask.
func (s *imageSurface) composite(c color.RGBA, alpha float64) {
	if s.dirty.Empty() {
		return
	}
	src := image.NewUniform(color.NRGBA{
		R: c.R,
		G: c.G,
		B: c.B,
		A: uint8(math.Round(alpha * float64(c.A))),
	})
	draw.DrawMask(s.img, s.dirty, src, image.Point{}, s.mask, s.dirty.Min, draw.Over)

	for y := s.dirty.Min.Y; y < s.dirty.Max.Y; y++ {
		row := s.mask.Pix[y*s.mask.Stride:]
		clear(row[s.dirty.Min.X:s.dirty.Max.X])
	}
	s.dirty = image.Rectangle{}
}
