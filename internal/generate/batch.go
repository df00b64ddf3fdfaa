// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// BatchItem is the outcome of one event in a batch run. Exactly one of
// Content and Err is meaningful.
type BatchItem struct {
	EventName string                 `json:"event_name" yaml:"event_name"`
	Content   types.GeneratedContent `json:"content,omitempty" yaml:"content,omitempty"`
	Err       string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether this item's generation failed.
func (i BatchItem) Failed() bool { return i.Err != "" }

// BatchSummary holds counts from a batch generation run.
type BatchSummary struct {
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`
}

// Total returns the number of events processed.
func (s BatchSummary) Total() int { return s.Succeeded + s.Failed }

// HasFailures reports whether any event failed.
func (s BatchSummary) HasFailures() bool { return s.Failed > 0 }

// Batch generates content of one kind for each event name independently.
// Policy is skip-and-record: a failure on one event is recorded in its
// BatchItem and the run continues; earlier successes are kept. Results
// preserve input order. Per-event progress is written to w.
func (g *Generator) Batch(ctx context.Context, names []string, kind types.ContentKind, base types.GenerationRequest, w io.Writer) ([]BatchItem, BatchSummary) {
	items := make([]BatchItem, 0, len(names))
	var summary BatchSummary

	for _, name := range names {
		req := base
		req.EventName = name

		content, err := g.Generate(ctx, kind, req)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
			items = append(items, BatchItem{EventName: name, Err: err.Error()})
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "generated: %s\n", name)
		items = append(items, BatchItem{EventName: name, Content: content})
		summary.Succeeded++
	}

	fmt.Fprintf(w, "\nBatch summary: %d generated, %d failed (total: %d)\n",
		summary.Succeeded, summary.Failed, summary.Total())
	return items, summary
}
