// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the generation, citation, and export stages over
// HTTP. Handlers are stateless; each request is independent and the echo
// framework handles requests in parallel.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/moodi112/oman-wiki-engine/internal/events"
	"github.com/moodi112/oman-wiki-engine/internal/export"
	"github.com/moodi112/oman-wiki-engine/internal/generate"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// Server wires the pipeline stages to HTTP routes.
type Server struct {
	gen       *generate.Generator
	catalog   *events.Store
	exportCfg types.ExportConfig

	// newRenderer builds the PDF renderer per request so a binary
	// installed after startup is picked up. Tests substitute a fake.
	newRenderer func() (export.Renderer, error)

	logger *log.Logger
}

// New constructs a Server over an already-configured generator and event
// catalog. The catalog may be nil; the events route then returns 503.
func New(gen *generate.Generator, catalog *events.Store, exportCfg types.ExportConfig) *Server {
	bin := exportCfg.RendererBin
	return &Server{
		gen:       gen,
		catalog:   catalog,
		exportCfg: exportCfg,
		newRenderer: func() (export.Renderer, error) {
			return export.NewPDFRenderer(bin)
		},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "oman-wiki",
		}),
	}
}

// build assembles the echo instance with middleware and routes.
func (s *Server) build() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	s.registerRoutes(e)
	return e
}

// Start runs the HTTP server on the given port and shuts down gracefully
// on SIGINT/SIGTERM or when ctx is cancelled.
func (s *Server) Start(ctx context.Context, port int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := s.build()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf(":%d", port))
	}()

	s.logger.Info("listening", "port", port, "model", s.gen.Model())

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// httpStatus maps the error taxonomy to HTTP status codes.
func httpStatus(err error) int {
	switch {
	case types.IsInvalidArgument(err):
		return http.StatusBadRequest
	case types.IsUpstreamError(err):
		return http.StatusBadGateway
	case types.IsExportUnavailable(err):
		return http.StatusServiceUnavailable
	case types.IsConfigError(err):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// errorResponse is the uniform failure body.
type errorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

func fail(c echo.Context, err error) error {
	return c.JSON(httpStatus(err), errorResponse{Success: false, Detail: err.Error()})
}
