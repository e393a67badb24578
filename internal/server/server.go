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

// Package server implements the HTTP service which hands out random
// ellipses and renders them as previews and PDF documents.
package server

import (
	"context"
	"embed"
	stderrors "errors"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/internal/config"
	"seehuhn.de/go/ellipses/sheet"
)

//go:embed web/templates/*.html web/static/*
var webFS embed.FS

const shutdownTimeout = 10 * time.Second

// Server is the ellipses web service.
type Server struct {
	cfg      *config.Config
	logger   *log.Logger
	renderer *sheet.Renderer
	engine   *gin.Engine

	// newGenerator returns the generator for one request.
	newGenerator func() *ellipse.Generator
}

// New sets up the routes of the service.
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		renderer: sheet.NewRenderer(cfg.Render.DPI, logger),
		newGenerator: func() *ellipse.Generator {
			return ellipse.NewRandomGenerator(logger)
		},
	}
	if err := s.setupRouter(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupRouter() error {
	tmpl, err := template.ParseFS(webFS, "web/templates/*.html")
	if err != nil {
		return err
	}
	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(SentryMiddleware())
	r.Use(RecoverWithSentry(s.logger))
	r.Use(RequestTracking(s.logger))

	r.GET("/", s.handleIndex)
	r.GET("/ellipses/", s.handleEllipses)
	r.GET("/preview/", s.handlePreview)
	r.GET("/getpdf/", s.handleDocument)
	r.GET("/health", s.handleHealth)
	r.StaticFS("/static", http.FS(static))

	s.engine = r
	return nil
}

// Handler returns the HTTP handler of the service.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP requests on the configured address until ctx is
// cancelled.  Open connections are given a short time to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.cfg.Addr, "environment", s.cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exited")
	return nil
}
