// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/moodi112/oman-wiki-engine/internal/cite"
	"github.com/moodi112/oman-wiki-engine/internal/export"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// exportBody is the request body for POST /export.
type exportBody struct {
	Article string `json:"article" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Format  string `json:"format,omitempty"`
	Style   string `json:"style,omitempty"`
	Infobox string `json:"infobox,omitempty"`
	Summary string `json:"summary,omitempty"`
}

type exportResponse struct {
	Success bool   `json:"success"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

func (s *Server) exportArticle(c echo.Context) error {
	body := new(exportBody)
	if err := c.Bind(body); err != nil {
		return fail(c, &types.InvalidArgumentError{Field: "body", Value: "unparseable"})
	}
	if err := c.Validate(body); err != nil {
		return fail(c, &types.InvalidArgumentError{Field: "article/title", Value: ""})
	}

	formatStr := body.Format
	if formatStr == "" {
		formatStr = string(types.FormatHTML)
	}
	format, err := types.ParseExportFormat(formatStr)
	if err != nil {
		return fail(c, err)
	}

	theme := types.Theme(body.Style)
	if body.Style == "" {
		theme = types.ThemeWikipedia
	}

	switch format {
	case types.FormatMarkdown:
		content := export.ComposeMarkdown(body.Article, body.Title, body.Infobox, body.Summary)
		return c.JSON(http.StatusOK, exportResponse{Success: true, Format: string(format), Content: content})

	case types.FormatHTML:
		content, err := export.ToHTML(body.Article, body.Title, theme, body.Infobox, body.Summary)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, exportResponse{Success: true, Format: string(format), Content: content})

	case types.FormatPDF:
		renderer, err := s.newRenderer()
		if err != nil {
			return fail(c, err)
		}

		id, err := gonanoid.New()
		if err != nil {
			return fail(c, err)
		}
		pdfPath := filepath.Join(os.TempDir(), "oman-wiki-"+id+".pdf")
		defer os.Remove(pdfPath)

		if err := export.ToPDF(renderer, body.Article, body.Title, pdfPath, theme, body.Infobox, body.Summary); err != nil {
			return fail(c, err)
		}
		return c.Attachment(pdfPath, body.Title+".pdf")
	}

	return fail(c, &types.InvalidArgumentError{Field: "format", Value: formatStr})
}

// citationsBody is the request body for POST /citations.
type citationsBody struct {
	Article string `json:"article" validate:"required"`
}

type citationsResponse struct {
	Success   bool             `json:"success"`
	Count     int              `json:"count"`
	Citations []types.Citation `json:"citations"`
}

func (s *Server) extractCitations(c echo.Context) error {
	body := new(citationsBody)
	if err := c.Bind(body); err != nil {
		return fail(c, &types.InvalidArgumentError{Field: "body", Value: "unparseable"})
	}
	if err := c.Validate(body); err != nil {
		return fail(c, &types.InvalidArgumentError{Field: "article", Value: ""})
	}

	annotated := cite.AnnotateAll(cite.Extract(body.Article))
	return c.JSON(http.StatusOK, citationsResponse{
		Success:   true,
		Count:     len(annotated),
		Citations: annotated,
	})
}
