// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "oman-wiki-engine",
		})
	})

	// Generation routes
	e.POST("/generate/article", s.generateArticle)
	e.POST("/generate/summary", s.generateSummary)
	e.POST("/generate/infobox", s.generateInfobox)
	e.POST("/generate/full", s.generateFull)
	e.POST("/batch/generate", s.batchGenerate)

	// Citation and export routes
	e.POST("/citations", s.extractCitations)
	e.POST("/export", s.exportArticle)

	// Catalog routes
	e.GET("/languages", s.getLanguages)
	e.GET("/events", s.getEvents)
}
