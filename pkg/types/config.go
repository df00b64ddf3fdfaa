// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds settings for stages that call the upstream model API.
type AIConfig struct {
	// Model is the upstream model identifier (e.g. "gpt-4").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the upstream API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the upstream API endpoint. Empty means the
	// provider default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxRetries is the number of extra attempts after a retryable
	// upstream failure. Zero means a single attempt, no retry.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Timeout bounds each upstream request (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultModel is used when neither config nor environment names one.
const DefaultModel = "gpt-4"

// DefaultTimeout bounds upstream requests when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// Theme selects the HTML/PDF CSS theme: wikipedia, modern, or minimal.
	Theme Theme `json:"theme" yaml:"theme"`

	// OutputDir is the directory for exported artifacts (default "output/exports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// RendererBin is the HTML-to-PDF binary to invoke (default "wkhtmltopdf").
	RendererBin string `json:"renderer_bin,omitempty" yaml:"renderer_bin,omitempty"`
}

// EventsConfig holds settings for the event catalog.
type EventsConfig struct {
	// DBPath is the SQLite database file (default "data/events.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Port is the HTTP listen port (default 8000).
	Port int `json:"port" yaml:"port"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	AI     AIConfig     `json:"ai" yaml:"ai"`
	Export ExportConfig `json:"export" yaml:"export"`
	Events EventsConfig `json:"events" yaml:"events"`
	Server ServerConfig `json:"server" yaml:"server"`
}
