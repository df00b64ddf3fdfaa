// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

func (s *Server) getLanguages(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"supported_languages": {string(types.LangEnglish), string(types.LangArabic)},
	})
}

func (s *Server) getEvents(c echo.Context) error {
	if s.catalog == nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{
			Success: false, Detail: "event catalog not configured",
		})
	}

	events, err := s.catalog.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"count":  len(events),
		"events": events,
	})
}
