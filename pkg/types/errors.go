// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError indicates missing or invalid configuration, most commonly an
// absent API credential. It is fatal and never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// UpstreamKind classifies why an upstream model call failed.
type UpstreamKind string

const (
	UpstreamNetwork   UpstreamKind = "network"
	UpstreamAuth      UpstreamKind = "auth"
	UpstreamRateLimit UpstreamKind = "rate_limit"
	UpstreamTimeout   UpstreamKind = "timeout"
	UpstreamMalformed UpstreamKind = "malformed_response"
)

// UpstreamError indicates that a call to the upstream model API failed.
// The triggering cause is preserved for errors.Is/As inspection.
type UpstreamError struct {
	Kind  UpstreamKind
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("upstream model call failed (%s)", e.Kind)
	}
	return fmt.Sprintf("upstream model call failed (%s): %v", e.Kind, e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// Retryable reports whether the failure is transient. Only rate-limit and
// network failures qualify; auth and malformed-response failures do not.
func (e *UpstreamError) Retryable() bool {
	return e.Kind == UpstreamRateLimit || e.Kind == UpstreamNetwork
}

// InvalidArgumentError indicates an unsupported enum value passed by the
// caller. It is rejected before any upstream call is made.
type InvalidArgumentError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: must be one of %s",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// ExportUnavailableError indicates the PDF rendering dependency is missing
// or failed. Other export formats remain usable.
type ExportUnavailableError struct {
	Renderer string
	Cause    error
}

func (e *ExportUnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("pdf export unavailable: %s not found", e.Renderer)
	}
	return fmt.Sprintf("pdf export unavailable: %s: %v", e.Renderer, e.Cause)
}

func (e *ExportUnavailableError) Unwrap() error { return e.Cause }

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsUpstreamError reports whether err is (or wraps) an UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}

// IsExportUnavailable reports whether err is (or wraps) an ExportUnavailableError.
func IsExportUnavailable(err error) bool {
	var eu *ExportUnavailableError
	return errors.As(err, &eu)
}
