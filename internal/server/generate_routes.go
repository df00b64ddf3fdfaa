// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodi112/oman-wiki-engine/internal/generate"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// generateBody is the request body shared by the generation routes.
type generateBody struct {
	EventName string `json:"event_name" validate:"required"`
	Context   string `json:"context,omitempty"`
	Style     string `json:"style,omitempty"`
	Language  string `json:"language,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
}

// toRequest validates the enum fields and builds the typed request.
func (b *generateBody) toRequest() (types.GenerationRequest, error) {
	req := types.GenerationRequest{
		EventName: b.EventName,
		Context:   b.Context,
		Style:     types.StyleFormal,
		Language:  types.LangEnglish,
		MaxLength: b.MaxLength,
	}
	if b.Style != "" {
		style, err := types.ParseStyle(b.Style)
		if err != nil {
			return req, err
		}
		req.Style = style
	}
	if b.Language != "" {
		lang, err := types.ParseLanguage(b.Language)
		if err != nil {
			return req, err
		}
		req.Language = lang
	}
	return req, nil
}

// bindGenerateBody binds and validates the request body.
func bindGenerateBody(c echo.Context) (*generateBody, error) {
	body := new(generateBody)
	if err := c.Bind(body); err != nil {
		return nil, &types.InvalidArgumentError{Field: "body", Value: "unparseable"}
	}
	if err := c.Validate(body); err != nil {
		return nil, &types.InvalidArgumentError{Field: "event_name", Value: ""}
	}
	return body, nil
}

type generateResponse struct {
	Success   bool   `json:"success"`
	EventName string `json:"event_name"`
	Article   string `json:"article,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Infobox   string `json:"infobox,omitempty"`
	Language  string `json:"language"`
	Model     string `json:"model,omitempty"`
}

func (s *Server) generateArticle(c echo.Context) error {
	body, err := bindGenerateBody(c)
	if err != nil {
		return fail(c, err)
	}
	req, err := body.toRequest()
	if err != nil {
		return fail(c, err)
	}

	content, err := s.gen.Article(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, generateResponse{
		Success:   true,
		EventName: content.EventName,
		Article:   content.Text,
		Language:  string(content.Language),
		Model:     content.Model,
	})
}

func (s *Server) generateSummary(c echo.Context) error {
	body, err := bindGenerateBody(c)
	if err != nil {
		return fail(c, err)
	}
	req, err := body.toRequest()
	if err != nil {
		return fail(c, err)
	}

	content, err := s.gen.Summary(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, generateResponse{
		Success:   true,
		EventName: content.EventName,
		Summary:   content.Text,
		Language:  string(content.Language),
		Model:     content.Model,
	})
}

func (s *Server) generateInfobox(c echo.Context) error {
	body, err := bindGenerateBody(c)
	if err != nil {
		return fail(c, err)
	}
	req, err := body.toRequest()
	if err != nil {
		return fail(c, err)
	}

	content, err := s.gen.Infobox(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, generateResponse{
		Success:   true,
		EventName: content.EventName,
		Infobox:   content.Text,
		Language:  string(content.Language),
		Model:     content.Model,
	})
}

func (s *Server) generateFull(c echo.Context) error {
	body, err := bindGenerateBody(c)
	if err != nil {
		return fail(c, err)
	}
	req, err := body.toRequest()
	if err != nil {
		return fail(c, err)
	}

	full, err := s.gen.Full(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, generateResponse{
		Success:   true,
		EventName: body.EventName,
		Article:   full.Article.Text,
		Summary:   full.Summary.Text,
		Infobox:   full.Infobox.Text,
		Language:  string(full.Article.Language),
		Model:     full.Article.Model,
	})
}

// batchBody is the request body for batch generation.
type batchBody struct {
	EventNames []string `json:"event_names" validate:"required,min=1"`
	OutputType string   `json:"output_type,omitempty"`
	Language   string   `json:"language,omitempty"`
	Style      string   `json:"style,omitempty"`
	Context    string   `json:"context,omitempty"`
}

type batchResponse struct {
	Success    bool                  `json:"success"`
	OutputType string                `json:"output_type"`
	Language   string                `json:"language"`
	Count      int                   `json:"count"`
	Results    []generate.BatchItem  `json:"results"`
	Summary    generate.BatchSummary `json:"summary"`
}

func (s *Server) batchGenerate(c echo.Context) error {
	body := new(batchBody)
	if err := c.Bind(body); err != nil {
		return fail(c, &types.InvalidArgumentError{Field: "body", Value: "unparseable"})
	}
	if err := c.Validate(body); err != nil {
		return fail(c, &types.InvalidArgumentError{Field: "event_names", Value: ""})
	}

	bf := generate.BatchFile{
		Events:     body.EventNames,
		OutputType: body.OutputType,
		Language:   body.Language,
		Style:      body.Style,
		Context:    body.Context,
	}
	base, kind, err := bf.ToRequest()
	if err != nil {
		return fail(c, err)
	}

	items, summary := s.gen.Batch(c.Request().Context(), body.EventNames, kind, base, io.Discard)

	return c.JSON(http.StatusOK, batchResponse{
		Success:    !summary.HasFailures(),
		OutputType: string(kind),
		Language:   string(base.Language),
		Count:      summary.Total(),
		Results:    items,
		Summary:    summary,
	})
}
