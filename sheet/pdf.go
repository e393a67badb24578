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
	"image/color"
	"io"
	"time"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"seehuhn.de/go/ellipses/ellipse"
)

// Document metadata.  This is the same for every generated file.
var (
	docTitle    = "Master drawing your ellipses"
	docAuthor   = "Grzegorz Sabak"
	docSubject  = "Template for practising ellipse drawing"
	docKeywords = "ellipses, drawing, practice, sketching"
	docCreated  = time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
)

// pdfPaper is the media box of every page.
var pdfPaper = &pdf.Rectangle{URx: PageWidth, URy: PageHeight}

// writeDocument writes one PDF page per mode to w.
func writeDocument(w io.Writer, l layout, defs []ellipse.Def, modes ...Mode) error {
	doc, err := document.WriteMultiPage(w, pdfPaper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	doc.Out.GetMeta().Info = &pdf.Info{
		Title:        pdf.TextString(docTitle),
		Author:       pdf.TextString(docAuthor),
		Subject:      pdf.TextString(docSubject),
		Keywords:     pdf.TextString(docKeywords),
		Creator:      "seehuhn.de/go/ellipses",
		CreationDate: pdf.Date(docCreated),
	}

	for _, mode := range modes {
		page := doc.AddPage()
		drawPage(newPDFSurface(page, l), defs, mode)
		page.PopGraphicsState()
		if err := page.Close(); err != nil {
			return err
		}
	}

	return doc.Close()
}

// pdfSurface draws into the content stream of a PDF page.
type pdfSurface struct {
	page  *document.Page
	scale float64

	// current opacities and line width, negative if not yet set
	fillAlpha, strokeAlpha float64
	width                  float64
}

// newPDFSurface paints the page white, installs the canvas transformation
// and clips to the canvas.  The caller must pop the graphics state once
// drawing is complete.
func newPDFSurface(page *document.Page, l layout) *pdfSurface {
	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, PageWidth, PageHeight)
	page.Fill()

	page.PushGraphicsState()
	page.Transform(l.pageMatrix())
	page.Rectangle(0, 0, l.canvas.Width, l.canvas.Height)
	page.ClipNonZero()
	page.EndPath()

	return &pdfSurface{
		page:        page,
		scale:       l.scale,
		fillAlpha:   -1,
		strokeAlpha: -1,
		width:       -1,
	}
}

// setAlphaFill sets the opacity for fill operations, if needed.
func (s *pdfSurface) setAlphaFill(alpha float64) {
	if alpha != s.fillAlpha {
		s.setAlpha(alpha, s.strokeAlpha)
	}
}

// setAlphaStroke sets the opacity for stroke operations, if needed.
func (s *pdfSurface) setAlphaStroke(alpha float64) {
	if alpha != s.strokeAlpha {
		s.setAlpha(s.fillAlpha, alpha)
	}
}

func (s *pdfSurface) setAlpha(fill, stroke float64) {
	if fill < 0 {
		fill = 1
	}
	if stroke < 0 {
		stroke = 1
	}
	s.page.SetExtGState(&extgstate.ExtGState{
		Set:         graphics.StateFillAlpha | graphics.StateStrokeAlpha,
		FillAlpha:   fill,
		StrokeAlpha: stroke,
		SingleUse:   true,
	})
	s.fillAlpha, s.strokeAlpha = fill, stroke
}

// fill draws p, which may only contain line and cubic segments.
func (s *pdfSurface) fill(p *path.Data, c color.RGBA, alpha float64) {
	s.setAlphaFill(alpha)
	s.page.SetFillColor(deviceRGB(c))
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			s.page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			s.page.LineTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdCubeTo:
			p1, p2, p3 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			s.page.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
			k += 3
		case path.CmdClose:
			s.page.ClosePath()
		}
	}
	s.page.Fill()
}

func (s *pdfSurface) line(seg ellipse.Segment, width float64, c color.RGBA, alpha float64) {
	s.setAlphaStroke(alpha)
	if w := width / s.scale; w != s.width {
		s.page.SetLineWidth(w)
		s.width = w
	}
	s.page.SetStrokeColor(deviceRGB(c))
	s.page.MoveTo(seg.A.X, seg.A.Y)
	s.page.LineTo(seg.B.X, seg.B.Y)
	s.page.Stroke()
}

func deviceRGB(c color.RGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
