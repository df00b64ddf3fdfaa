// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the oman-wiki-engine
// pipeline: generation requests and results, citations, export formats,
// and per-stage configuration.
package types

import "fmt"

// Style selects the writing register for generated articles.
type Style string

const (
	StyleFormal   Style = "formal"
	StyleCasual   Style = "casual"
	StyleDetailed Style = "detailed"
)

// Language selects the output language for generated content.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// ContentKind identifies what kind of content a generation call produces.
type ContentKind string

const (
	KindArticle     ContentKind = "article"
	KindSummary     ContentKind = "summary"
	KindInfobox     ContentKind = "infobox"
	KindImagePrompt ContentKind = "image_prompt"
)

// ParseStyle validates a style string and returns the typed value.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleFormal, StyleCasual, StyleDetailed:
		return Style(s), nil
	}
	return "", &InvalidArgumentError{Field: "style", Value: s,
		Allowed: []string{string(StyleFormal), string(StyleCasual), string(StyleDetailed)}}
}

// ParseLanguage validates a language code and returns the typed value.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangEnglish, LangArabic:
		return Language(s), nil
	}
	return "", &InvalidArgumentError{Field: "language", Value: s,
		Allowed: []string{string(LangEnglish), string(LangArabic)}}
}

// ParseContentKind validates an output type string and returns the typed value.
func ParseContentKind(s string) (ContentKind, error) {
	switch ContentKind(s) {
	case KindArticle, KindSummary, KindInfobox, KindImagePrompt:
		return ContentKind(s), nil
	}
	return "", &InvalidArgumentError{Field: "output_type", Value: s,
		Allowed: []string{string(KindArticle), string(KindSummary), string(KindInfobox), string(KindImagePrompt)}}
}

// GenerationRequest carries the parameters for a single generation call.
// Constructed per call and not mutated afterwards.
type GenerationRequest struct {
	// EventName is the Oman event the content is about (e.g. "Muscat Festival").
	EventName string `json:"event_name" yaml:"event_name"`

	// Context is optional additional detail to ground the generation.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Style is the writing register (formal, casual, detailed).
	Style Style `json:"style" yaml:"style"`

	// Language is the output language (en, ar).
	Language Language `json:"language" yaml:"language"`

	// MaxLength caps summary length in words. Zero means the default (200).
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty"`
}

// GeneratedContent is the result of a generation call. The text is returned
// verbatim from the upstream model; ownership passes to the caller.
type GeneratedContent struct {
	Kind      ContentKind `json:"kind" yaml:"kind"`
	EventName string      `json:"event_name" yaml:"event_name"`
	Text      string      `json:"text" yaml:"text"`
	Language  Language    `json:"language" yaml:"language"`

	// Model is the upstream model identifier that produced the text.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
}

// Citation is a single reference line extracted from a generated article's
// references section, annotated with the three validity heuristics.
type Citation struct {
	// RawText is the citation line exactly as it appeared in the source.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// HasYear reports whether a contiguous 4-digit numeral is present.
	HasYear bool `json:"has_year" yaml:"has_year"`

	// WellPunctuated reports whether the line ends with terminal punctuation.
	WellPunctuated bool `json:"well_punctuated" yaml:"well_punctuated"`

	// LengthOK reports whether the line meets the minimum length threshold.
	LengthOK bool `json:"length_ok" yaml:"length_ok"`
}

// Valid reports whether all three heuristics pass. It is derived from the
// heuristic fields alone; there is no hidden state.
func (c Citation) Valid() bool {
	return c.HasYear && c.WellPunctuated && c.LengthOK
}

// ExportFormat identifies an export output format.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatHTML     ExportFormat = "html"
	FormatPDF      ExportFormat = "pdf"
)

// ParseExportFormat validates a format string and returns the typed value.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatMarkdown, FormatHTML, FormatPDF:
		return ExportFormat(s), nil
	}
	return "", &InvalidArgumentError{Field: "format", Value: s,
		Allowed: []string{string(FormatMarkdown), string(FormatHTML), string(FormatPDF)}}
}

// Theme selects the CSS theme for HTML (and PDF) export.
type Theme string

const (
	ThemeWikipedia Theme = "wikipedia"
	ThemeModern    Theme = "modern"
	ThemeMinimal   Theme = "minimal"
)

// ParseTheme validates a theme string and returns the typed value.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeWikipedia, ThemeModern, ThemeMinimal:
		return Theme(s), nil
	}
	return "", &InvalidArgumentError{Field: "theme", Value: s,
		Allowed: []string{string(ThemeWikipedia), string(ThemeModern), string(ThemeMinimal)}}
}

// ExportArtifact is the result of exporting generated content. Payload holds
// the rendered bytes; for PDF exports written to disk Path is set instead.
type ExportArtifact struct {
	Format  ExportFormat `json:"format" yaml:"format"`
	Theme   Theme        `json:"theme,omitempty" yaml:"theme,omitempty"`
	Payload []byte       `json:"payload,omitempty" yaml:"-"`
	Path    string       `json:"path,omitempty" yaml:"path,omitempty"`
}

// Event is a catalog entry for a known Oman event.
type Event struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Summary  string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Details  string `json:"details,omitempty" yaml:"details,omitempty"`
}

func (e Event) String() string {
	if e.Location == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Location)
}
