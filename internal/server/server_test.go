// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodi112/oman-wiki-engine/internal/events"
	"github.com/moodi112/oman-wiki-engine/internal/export"
	"github.com/moodi112/oman-wiki-engine/internal/generate"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// stubBackend returns canned text, or a canned error for event names listed
// in failOn.
type stubBackend struct {
	text   string
	failOn map[string]error
}

func (b *stubBackend) Complete(_ context.Context, req generate.CompletionRequest) (string, error) {
	for name, err := range b.failOn {
		if strings.Contains(req.Prompt, "'"+name+"'") {
			return "", err
		}
	}
	return b.text, nil
}

func newTestServer(t *testing.T, backend generate.Backend) *Server {
	t.Helper()
	gen := generate.NewWithBackend(types.AIConfig{Model: "gpt-4"}, backend)
	catalog, err := events.Open(t.TempDir() + "/events.db")
	require.NoError(t, err)
	t.Cleanup(func() { catalog.Close() })
	return New(gen, catalog, types.ExportConfig{Theme: types.ThemeWikipedia})
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echoContentType, echoJSONMime)
	}
	rec := httptest.NewRecorder()
	s.build().ServeHTTP(rec, req)
	return rec
}

const (
	echoContentType = "Content-Type"
	echoJSONMime    = "application/json"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t, &stubBackend{text: "ok"})
	rec := doJSON(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestGenerateArticle(t *testing.T) {
	s := newTestServer(t, &stubBackend{text: "Generated article text."})
	rec := doJSON(t, s, http.MethodPost, "/generate/article",
		`{"event_name": "Muscat Festival", "style": "formal", "language": "en"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Muscat Festival", resp["event_name"])
	assert.Equal(t, "Generated article text.", resp["article"])
	assert.Equal(t, "en", resp["language"])
}

func TestGenerateArticleMissingEventName(t *testing.T) {
	s := newTestServer(t, &stubBackend{text: "x"})
	rec := doJSON(t, s, http.MethodPost, "/generate/article", `{"style": "formal"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateArticleInvalidLanguage(t *testing.T) {
	s := newTestServer(t, &stubBackend{text: "x"})
	rec := doJSON(t, s, http.MethodPost, "/generate/article",
		`{"event_name": "Muscat Festival", "language": "fr"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid language")
}

func TestGenerateArticleUpstreamFailure(t *testing.T) {
	backend := &stubBackend{failOn: map[string]error{
		"Muscat Festival": &types.UpstreamError{Kind: types.UpstreamRateLimit, Cause: errors.New("429")},
	}}
	s := newTestServer(t, backend)
	rec := doJSON(t, s, http.MethodPost, "/generate/article", `{"event_name": "Muscat Festival"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGenerateFull(t *testing.T) {
	s := newTestServer(t, &stubBackend{text: "content"})
	rec := doJSON(t, s, http.MethodPost, "/generate/full", `{"event_name": "Renaissance Day"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "content", resp["article"])
	assert.Equal(t, "content", resp["summary"])
	assert.Equal(t, "content", resp["infobox"])
}

func TestBatchGeneratePartialFailure(t *testing.T) {
	backend := &stubBackend{
		text: "content",
		failOn: map[string]error{
			"B": &types.UpstreamError{Kind: types.UpstreamNetwork, Cause: errors.New("reset")},
		},
	}
	s := newTestServer(t, backend)
	rec := doJSON(t, s, http.MethodPost, "/batch/generate",
		`{"event_names": ["A", "B"], "output_type": "article", "language": "en"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Count   int                  `json:"count"`
		Results []generate.BatchItem `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "A", resp.Results[0].EventName)
	assert.False(t, resp.Results[0].Failed())
	assert.True(t, resp.Results[1].Failed())
}

func TestExportMarkdown(t *testing.T) {
	s := newTestServer(t, &stubBackend{})
	rec := doJSON(t, s, http.MethodPost, "/export",
		`{"article": "## History\n\nBody.", "title": "Muscat Festival", "format": "markdown"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp exportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Content, "# Muscat Festival")
}

func TestExportHTMLUnknownStyle(t *testing.T) {
	s := newTestServer(t, &stubBackend{})
	rec := doJSON(t, s, http.MethodPost, "/export",
		`{"article": "Body.", "title": "T", "format": "html", "style": "neon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid theme")
}

func TestExportUnknownFormat(t *testing.T) {
	s := newTestServer(t, &stubBackend{})
	rec := doJSON(t, s, http.MethodPost, "/export",
		`{"article": "Body.", "title": "T", "format": "docx"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportPDFRendererMissing(t *testing.T) {
	s := newTestServer(t, &stubBackend{})
	s.newRenderer = func() (export.Renderer, error) {
		return nil, &types.ExportUnavailableError{Renderer: "wkhtmltopdf"}
	}
	rec := doJSON(t, s, http.MethodPost, "/export",
		`{"article": "Body.", "title": "T", "format": "pdf"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// Markdown export for the same input still succeeds.
	rec = doJSON(t, s, http.MethodPost, "/export",
		`{"article": "Body.", "title": "T", "format": "markdown"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCitationsRoute(t *testing.T) {
	s := newTestServer(t, &stubBackend{})
	article := "Body.\n\n## References\nAl-Farsi, M. The Muscat Festival. Muscat Press, 2020.\nShort note.\n"
	body, err := json.Marshal(map[string]string{"article": article})
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodPost, "/citations", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp citationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.True(t, resp.Citations[0].Valid())
	assert.False(t, resp.Citations[1].Valid())
}

func TestGetLanguages(t *testing.T) {
	s := newTestServer(t, &stubBackend{})
	rec := doJSON(t, s, http.MethodGet, "/languages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"en"`)
	assert.Contains(t, rec.Body.String(), `"ar"`)
}

func TestGetEvents(t *testing.T) {
	s := newTestServer(t, &stubBackend{})
	rec := doJSON(t, s, http.MethodGet, "/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Muscat Festival")
}
