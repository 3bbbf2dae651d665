package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/seihin/faqgen"
)

// Fetcher is the consumer-side contract of the orchestrator.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error)
}

// Ensure Orchestrator implements Fetcher at compile time.
var _ Fetcher = (*Orchestrator)(nil)

// Orchestrator walks an ordered strategy list until one produces a clean
// result. Each strategy runs at most once per logical fetch; only the
// first-line HTTP strategy gets retries, and only for network-class errors.
// When everything is blocked it still returns the most complete body
// obtained — let the extractor decide whether content is usable.
type Orchestrator struct {
	strategies []faqgen.Strategy
	delays     []time.Duration
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRetryDelays sets the backoff delays for the HTTP strategy.
// Defaults to DefaultRetryDelays(). Useful for testing without waiting.
func WithRetryDelays(delays []time.Duration) Option {
	return func(o *Orchestrator) {
		o.delays = delays
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// NewOrchestrator creates an Orchestrator over the given strategies in
// escalation order (HTTP, browser, lenient).
func NewOrchestrator(strategies []faqgen.Strategy, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		strategies: strategies,
		delays:     DefaultRetryDelays(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Fetch performs one logical fetch. It returns an error only when every
// strategy has been exhausted without obtaining any body at all; a blocked
// body is still returned (with Blocked set) rather than nothing.
func (o *Orchestrator) Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
	attempted := make(map[faqgen.StrategyName]bool, len(o.strategies))

	var best *faqgen.FetchOutcome
	var lastErr error

	for _, s := range o.strategies {
		if attempted[s.Name()] {
			continue
		}
		attempted[s.Name()] = true

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var outcome *faqgen.FetchOutcome
		var err error
		if s.Name() == faqgen.StrategyHTTP {
			outcome, err = FetchWithRetry(ctx, s, url, o.delays)
		} else {
			outcome, err = s.Fetch(ctx, url)
		}

		if err != nil {
			o.logger.Warn("fetch strategy failed",
				"strategy", string(s.Name()),
				"url", url,
				"err", err,
			)
			lastErr = err
			continue
		}

		if outcome.Blocked {
			o.logger.Info("fetch strategy blocked, escalating",
				"strategy", string(s.Name()),
				"url", url,
				"bytes", len(outcome.HTML),
			)
			if best == nil || len(outcome.HTML) > len(best.HTML) {
				best = outcome
			}
			continue
		}

		return outcome, nil
	}

	if best != nil && best.HTML != "" {
		return best, nil
	}

	detail := "no response"
	if lastErr != nil {
		detail = faqgen.ErrorMessage(lastErr)
	}
	return nil, faqgen.Errorf(faqgen.EEXHAUSTED, "all fetch strategies exhausted for %s: %s", url, detail)
}

// Close releases every strategy's resources.
func (o *Orchestrator) Close() error {
	var errs []error
	for _, s := range o.strategies {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
