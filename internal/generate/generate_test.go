// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodi112/oman-wiki-engine/internal/cite"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// fakeBackend implements Backend for testing. Responses are returned in
// order; an entry with err set fails that call.
type fakeBackend struct {
	responses []fakeResponse
	calls     []CompletionRequest
}

type fakeResponse struct {
	text string
	err  error
}

func (f *fakeBackend) Complete(_ context.Context, req CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if len(f.responses) == 0 {
		return "stub response", nil
	}
	r := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	if r.err != nil {
		return "", r.err
	}
	return r.text, nil
}

func newTestGenerator(backend Backend) *Generator {
	return NewWithBackend(types.AIConfig{Model: "gpt-4"}, backend)
}

func TestNewWithoutAPIKey(t *testing.T) {
	_, err := New(types.AIConfig{})
	require.Error(t, err)
	assert.True(t, types.IsConfigError(err))
}

func TestGenerateArticle(t *testing.T) {
	backend := &fakeBackend{responses: []fakeResponse{{text: "  Article body.  "}}}
	g := newTestGenerator(backend)

	got, err := g.Article(context.Background(), types.GenerationRequest{
		EventName: "Muscat Festival",
		Context:   "Annual event",
		Style:     types.StyleFormal,
		Language:  types.LangEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, types.KindArticle, got.Kind)
	assert.Equal(t, "Muscat Festival", got.EventName)
	assert.Equal(t, "Article body.", got.Text)
	assert.Equal(t, types.LangEnglish, got.Language)
	assert.Equal(t, "gpt-4", got.Model)

	require.Len(t, backend.calls, 1)
	call := backend.calls[0]
	assert.Contains(t, call.Prompt, "Muscat Festival")
	assert.Contains(t, call.Prompt, "Additional context: Annual event")
	assert.Contains(t, call.Prompt, "References section")
	assert.Contains(t, call.System, "Wikipedia article writer")
	assert.InDelta(t, 0.7, call.Temperature, 0.001)
}

func TestGenerateDefaults(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGenerator(backend)

	got, err := g.Summary(context.Background(), types.GenerationRequest{EventName: "National Day of Oman"})
	require.NoError(t, err)

	assert.Equal(t, types.LangEnglish, got.Language)
	assert.Contains(t, backend.calls[0].Prompt, "max 200 words")
}

func TestGenerateSummaryMaxLength(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGenerator(backend)

	_, err := g.Summary(context.Background(), types.GenerationRequest{
		EventName: "Khareef Season",
		MaxLength: 150,
	})
	require.NoError(t, err)
	assert.Contains(t, backend.calls[0].Prompt, "max 150 words")
}

func TestGenerateArabic(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGenerator(backend)

	_, err := g.Infobox(context.Background(), types.GenerationRequest{
		EventName: "Renaissance Day",
		Language:  types.LangArabic,
	})
	require.NoError(t, err)
	assert.Contains(t, backend.calls[0].Prompt, "Modern Standard Arabic")
}

func TestGenerateInvalidEnums(t *testing.T) {
	g := newTestGenerator(&fakeBackend{})

	_, err := g.Article(context.Background(), types.GenerationRequest{
		EventName: "Muscat Festival",
		Language:  types.Language("fr"),
	})
	require.Error(t, err)
	assert.True(t, types.IsInvalidArgument(err))

	_, err = g.Article(context.Background(), types.GenerationRequest{
		EventName: "Muscat Festival",
		Style:     types.Style("poetic"),
	})
	require.Error(t, err)
	assert.True(t, types.IsInvalidArgument(err))
}

func TestGenerateUpstreamFailure(t *testing.T) {
	backend := &fakeBackend{responses: []fakeResponse{
		{err: &types.UpstreamError{Kind: types.UpstreamAuth, Cause: errors.New("401")}},
	}}
	g := newTestGenerator(backend)

	_, err := g.Article(context.Background(), types.GenerationRequest{EventName: "Muscat Festival"})
	require.Error(t, err)
	assert.True(t, types.IsUpstreamError(err))
	assert.Len(t, backend.calls, 1) // auth failures are not retried
}

func TestGenerateRetriesRateLimit(t *testing.T) {
	orig := RetryBaseDelay
	RetryBaseDelay = 0
	defer func() { RetryBaseDelay = orig }()

	backend := &fakeBackend{responses: []fakeResponse{
		{err: &types.UpstreamError{Kind: types.UpstreamRateLimit, Cause: errors.New("429")}},
		{err: &types.UpstreamError{Kind: types.UpstreamRateLimit, Cause: errors.New("429")}},
		{text: "recovered"},
	}}
	g := NewWithBackend(types.AIConfig{Model: "gpt-4", MaxRetries: 3}, backend)

	got, err := g.Article(context.Background(), types.GenerationRequest{EventName: "Muscat Festival"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", got.Text)
	assert.Len(t, backend.calls, 3)
}

func TestGenerateNoRetryByDefault(t *testing.T) {
	backend := &fakeBackend{responses: []fakeResponse{
		{err: &types.UpstreamError{Kind: types.UpstreamRateLimit, Cause: errors.New("429")}},
		{text: "should not be reached"},
	}}
	g := newTestGenerator(backend) // MaxRetries zero

	_, err := g.Article(context.Background(), types.GenerationRequest{EventName: "Muscat Festival"})
	require.Error(t, err)
	assert.Len(t, backend.calls, 1)
}

func TestFull(t *testing.T) {
	backend := &fakeBackend{responses: []fakeResponse{
		{text: "infobox text"},
		{text: "summary text"},
		{text: "article text"},
	}}
	g := newTestGenerator(backend)

	full, err := g.Full(context.Background(), types.GenerationRequest{EventName: "Muscat Festival"})
	require.NoError(t, err)
	assert.Equal(t, "infobox text", full.Infobox.Text)
	assert.Equal(t, "summary text", full.Summary.Text)
	assert.Equal(t, "article text", full.Article.Text)
}

func TestBatchSkipAndRecord(t *testing.T) {
	// "B" fails; "A" and "C" succeed and are kept, order preserved.
	backend := &fakeBackend{responses: []fakeResponse{
		{text: "content for A"},
		{err: &types.UpstreamError{Kind: types.UpstreamNetwork, Cause: errors.New("connection reset")}},
		{text: "content for C"},
	}}
	g := newTestGenerator(backend)

	var log bytes.Buffer
	items, summary := g.Batch(context.Background(), []string{"A", "B", "C"}, types.KindArticle, types.GenerationRequest{}, &log)

	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].EventName)
	assert.False(t, items[0].Failed())
	assert.Equal(t, "content for A", items[0].Content.Text)

	assert.Equal(t, "B", items[1].EventName)
	assert.True(t, items[1].Failed())
	assert.Contains(t, items[1].Err, "upstream model call failed")

	assert.Equal(t, "C", items[2].EventName)
	assert.False(t, items[2].Failed())

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, summary.HasFailures())
	assert.Contains(t, log.String(), "failed:    B")
	assert.Contains(t, log.String(), "Batch summary: 2 generated, 1 failed (total: 3)")
}

func TestEndToEndCitationScenario(t *testing.T) {
	article := strings.Join([]string{
		"# Muscat Festival",
		"",
		"The Muscat Festival is an annual cultural event.",
		"",
		"## References",
		"Al-Farsi, M. The Muscat Festival and Omani Heritage. Muscat Press, 2020.",
		"Jones, B. An undated note about the festival somewhere.",
	}, "\n")

	backend := &fakeBackend{responses: []fakeResponse{{text: article}}}
	g := newTestGenerator(backend)

	got, err := g.Article(context.Background(), types.GenerationRequest{
		EventName: "Muscat Festival",
		Language:  types.LangEnglish,
		Style:     types.StyleFormal,
	})
	require.NoError(t, err)
	assert.Equal(t, article, got.Text)

	citations := cite.Extract(got.Text)
	require.Len(t, citations, 2)
	assert.Equal(t, "Al-Farsi, M. The Muscat Festival and Omani Heritage. Muscat Press, 2020.", citations[0])

	validity := cite.Validate(citations)
	assert.True(t, validity[citations[0]])
	assert.False(t, validity[citations[1]]) // no year
}
