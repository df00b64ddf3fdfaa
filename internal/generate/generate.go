// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate wraps the upstream model API behind a small façade that
// produces Wikipedia-style articles, summaries, infoboxes, and image
// prompts for Oman events.
package generate

import (
	"context"
	"strings"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// Backend abstracts the upstream model API so tests can supply a fake.
type Backend interface {
	// Complete sends one prompt to the model and returns the raw text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest is a single upstream chat completion call.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Generator is the generation façade. It owns prompt construction and
// retry policy; the Backend owns the wire call.
type Generator struct {
	backend Backend
	model   string
	retries int
}

// New constructs a Generator backed by the upstream OpenAI API. It fails
// with ConfigError when no API key is configured, before any call is made.
func New(cfg types.AIConfig) (*Generator, error) {
	backend, err := newOpenAIBackend(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(cfg, backend), nil
}

// NewWithBackend constructs a Generator over an explicit backend. Used by
// tests and by callers that supply their own transport.
func NewWithBackend(cfg types.AIConfig, backend Backend) *Generator {
	model := cfg.Model
	if model == "" {
		model = types.DefaultModel
	}
	return &Generator{
		backend: backend,
		model:   model,
		retries: cfg.MaxRetries,
	}
}

// Model returns the upstream model identifier in use.
func (g *Generator) Model() string { return g.model }

// Generate produces content of the given kind for the request. The model's
// returned text is passed through verbatim.
func (g *Generator) Generate(ctx context.Context, kind types.ContentKind, req types.GenerationRequest) (types.GeneratedContent, error) {
	if req.Language == "" {
		req.Language = types.LangEnglish
	}
	if req.Style == "" {
		req.Style = types.StyleFormal
	}
	if _, err := types.ParseLanguage(string(req.Language)); err != nil {
		return types.GeneratedContent{}, err
	}
	if _, err := types.ParseStyle(string(req.Style)); err != nil {
		return types.GeneratedContent{}, err
	}

	completion, err := buildCompletion(kind, req)
	if err != nil {
		return types.GeneratedContent{}, err
	}

	text, err := g.complete(ctx, completion)
	if err != nil {
		return types.GeneratedContent{}, err
	}

	return types.GeneratedContent{
		Kind:      kind,
		EventName: req.EventName,
		Text:      strings.TrimSpace(text),
		Language:  req.Language,
		Model:     g.model,
	}, nil
}

// Article generates a full Wikipedia-style article.
func (g *Generator) Article(ctx context.Context, req types.GenerationRequest) (types.GeneratedContent, error) {
	return g.Generate(ctx, types.KindArticle, req)
}

// Summary generates a short summary, capped at req.MaxLength words
// (default 200).
func (g *Generator) Summary(ctx context.Context, req types.GenerationRequest) (types.GeneratedContent, error) {
	return g.Generate(ctx, types.KindSummary, req)
}

// Infobox generates a text-based Wikipedia-style infobox.
func (g *Generator) Infobox(ctx context.Context, req types.GenerationRequest) (types.GeneratedContent, error) {
	return g.Generate(ctx, types.KindInfobox, req)
}

// ImagePrompt generates a text-to-image prompt describing the event.
func (g *Generator) ImagePrompt(ctx context.Context, req types.GenerationRequest) (types.GeneratedContent, error) {
	return g.Generate(ctx, types.KindImagePrompt, req)
}

// FullContent is the complete package: article plus summary and infobox.
type FullContent struct {
	Article types.GeneratedContent `json:"article" yaml:"article"`
	Summary types.GeneratedContent `json:"summary" yaml:"summary"`
	Infobox types.GeneratedContent `json:"infobox" yaml:"infobox"`
}

// Full generates the complete package for one event: infobox, summary,
// and article, sequentially. The first failure aborts the package.
func (g *Generator) Full(ctx context.Context, req types.GenerationRequest) (FullContent, error) {
	var full FullContent
	var err error

	if full.Infobox, err = g.Infobox(ctx, req); err != nil {
		return FullContent{}, err
	}
	if full.Summary, err = g.Summary(ctx, req); err != nil {
		return FullContent{}, err
	}
	if full.Article, err = g.Article(ctx, req); err != nil {
		return FullContent{}, err
	}
	return full, nil
}
