// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// retryable upstream failures. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// complete calls the backend, retrying retryable upstream failures with
// exponential backoff: 2s, 4s, 8s, ... With retries configured to zero the
// call is made exactly once. Auth, config, and malformed-response failures
// are never retried. If the context is cancelled during a backoff wait the
// function returns ctx.Err().
func (g *Generator) complete(ctx context.Context, req CompletionRequest) (string, error) {
	for attempt := 0; ; attempt++ {
		text, err := g.backend.Complete(ctx, req)
		if err == nil {
			return text, nil
		}

		var ue *types.UpstreamError
		if !errors.As(err, &ue) || !ue.Retryable() || attempt >= g.retries {
			return "", err
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}
}
