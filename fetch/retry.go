// Package fetch composes the individual fetch strategies into the layered
// retrieval pipeline: retrying plain HTTP, escalating to the browser on
// suspected blocking, and falling back to the lenient fetch so a logical
// fetch never comes back empty-handed. It also runs multi-page batches.
package fetch

import (
	"context"
	"time"

	"github.com/seihin/faqgen"
)

// DefaultRetryDelays returns the linear backoff between HTTP attempts:
// 2s after the first failure, 4s after the second (attempt * 2s).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts a strategy up to len(delays)+1 times, sleeping
// delays[i] after failed attempt i+1. Only network-class errors retry; a
// Blocked outcome returns immediately so the caller can escalate instead of
// hammering the same strategy.
func FetchWithRetry(ctx context.Context, s faqgen.Strategy, url string, delays []time.Duration) (*faqgen.FetchOutcome, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		outcome, err := s.Fetch(ctx, url)
		if err == nil {
			return outcome, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
