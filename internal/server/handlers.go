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

package server

import (
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/errors"
	"seehuhn.de/go/ellipses/sheet"
)

func (s *Server) handleIndex(c *gin.Context) {
	g := s.cfg.Generator
	data, err := s.generate(g.DefaultCount)
	if err != nil {
		s.fail(c, err)
		return
	}

	counts := make([]int, 0, g.MaxCount-g.MinCount+1)
	for n := g.MinCount; n <= g.MaxCount; n++ {
		counts = append(counts, n)
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Ellipses":     string(data),
		"Counts":       counts,
		"DefaultCount": g.DefaultCount,
	})
}

// handleEllipses returns a fresh list of n random ellipses.
func (s *Server) handleEllipses(c *gin.Context) {
	g := s.cfg.Generator
	arg := c.Query("n")
	n, err := strconv.Atoi(arg)
	if err != nil || n < g.MinCount || n > g.MaxCount {
		s.fail(c, errors.New(errors.ErrCodeInvalidParameter,
			"incorrect number of ellipses requested: [%s], should be between %d and %d",
			arg, g.MinCount, g.MaxCount))
		return
	}

	data, err := s.generate(n)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (s *Server) handlePreview(c *gin.Context) {
	defs, err := ellipse.DecodeList([]byte(c.Query("json")))
	if err != nil {
		s.fail(c, err)
		return
	}

	data, err := s.renderer.Preview(defs, s.cfg.SheetCanvas(), pageMode(c.Query("page")))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="preview.png"`)
	c.Data(http.StatusOK, "image/png", data)
}

func (s *Server) handleDocument(c *gin.Context) {
	defs, err := ellipse.DecodeList([]byte(c.Query("json")))
	if err != nil {
		s.fail(c, err)
		return
	}

	data, err := s.renderer.Document(defs, s.cfg.SheetCanvas())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="better_ellipses.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// generate returns n random ellipses in wire format.
func (s *Server) generate(n int) ([]byte, error) {
	defs, err := s.newGenerator().Generate(s.cfg.Params(n))
	if err != nil {
		return nil, err
	}
	return ellipse.EncodeList(defs)
}

// pageMode maps the page query parameter to the drawing mode of the
// preview.  Unknown or missing page numbers show the full sheet.
func pageMode(page string) sheet.Mode {
	n, err := strconv.Atoi(page)
	if err != nil {
		return sheet.Full
	}
	return sheet.PageMode(n)
}

// fail writes the JSON error response for err.  Server side failures are
// reported to Sentry.
func (s *Server) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	requestID := c.GetString(requestIDKey)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", requestID, "err", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error":      errors.UserMessage(err),
		"code":       errors.GetCode(err),
		"request_id": requestID,
	})
}
