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

// Package sheet renders lists of ellipses as practice sheets.
//
// A sheet shows every ellipse as a translucent shape in its own color,
// together with its major and minor axis.  Previews are single PNG pages;
// documents are three page PDF files with the full sheet, the axes on
// their own, and the shapes on their own.
package sheet

import (
	"bytes"
	"image/png"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/errors"
	"seehuhn.de/go/ellipses/raster"
)

// DefaultDPI is the resolution of preview images.
const DefaultDPI = 100

// documentModes lists the pages of a practice document, in order.
var documentModes = []Mode{Full, AxesOnly, EllipsesOnly}

// Renderer draws practice sheets.  A Renderer is safe for concurrent use.
type Renderer struct {
	// DPI is the resolution of preview images.
	DPI float64

	// Logger receives one debug entry per rendered sheet.
	// If nil, the default logger is used.
	Logger *log.Logger

	pool sync.Pool
}

// NewRenderer returns a renderer for previews at the given resolution.
func NewRenderer(dpi float64, logger *log.Logger) *Renderer {
	return &Renderer{DPI: dpi, Logger: logger}
}

var defaultRenderer = NewRenderer(DefaultDPI, nil)

// RenderPreview draws one PNG page with the default renderer.  If axesOnly
// is set, the ellipse shapes are omitted; if ellipsesOnly is set, the axes
// are omitted.
func RenderPreview(defs []ellipse.Def, width, height float64, axesOnly, ellipsesOnly bool) ([]byte, error) {
	return defaultRenderer.Preview(defs, Canvas{width, height}, ModeFromFlags(axesOnly, ellipsesOnly))
}

// RenderDocument draws the three page PDF document with the default renderer.
func RenderDocument(defs []ellipse.Def, width, height float64) ([]byte, error) {
	return defaultRenderer.Document(defs, Canvas{width, height})
}

// Preview draws the ellipses onto a single page and returns it as a PNG
// image.  On error, nil is returned.
func (r *Renderer) Preview(defs []ellipse.Def, canvas Canvas, mode Mode) ([]byte, error) {
	if err := r.check(defs, canvas); err != nil {
		return nil, err
	}
	if mode&^Full != 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "invalid drawing mode %d", mode)
	}
	dpi := r.dpi()

	rast := r.getRasterizer()
	defer r.pool.Put(rast)

	s := newImageSurface(newLayout(canvas), dpi, rast)
	drawPage(s, defs, mode)

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, s.img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncoding, err, "cannot encode preview image")
	}

	r.logger().Debug("rendered preview",
		"ellipses", len(defs), "mode", mode.String(), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Document draws the ellipses onto three PDF pages: the full sheet, the
// axes only, and the ellipses only.  On error, nil is returned.
func (r *Renderer) Document(defs []ellipse.Def, canvas Canvas) ([]byte, error) {
	if err := r.check(defs, canvas); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err := writeDocument(buf, newLayout(canvas), defs, documentModes...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncoding, err, "cannot write PDF document")
	}

	r.logger().Debug("rendered document",
		"ellipses", len(defs), "pages", len(documentModes), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// check validates the canvas and all ellipse definitions.
func (r *Renderer) check(defs []ellipse.Def, canvas Canvas) error {
	if err := canvas.Validate(); err != nil {
		return err
	}
	for i, d := range defs {
		if err := d.Validate(); err != nil {
			return errors.New(errors.ErrCodeMalformedInput, "ellipse %d: %s", i, errors.UserMessage(err))
		}
	}
	return nil
}

func (r *Renderer) dpi() float64 {
	if r.DPI > 0 && !math.IsInf(r.DPI, 0) {
		return r.DPI
	}
	return DefaultDPI
}

func (r *Renderer) getRasterizer() *raster.Rasterizer {
	if rast, ok := r.pool.Get().(*raster.Rasterizer); ok {
		return rast
	}
	return raster.NewRasterizer(rect.Rect{})
}

func (r *Renderer) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
