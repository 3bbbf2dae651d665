// Package slog provides logging decorators for fetch strategies.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/seihin/faqgen"
)

// Ensure LoggingStrategy implements faqgen.Strategy.
var _ faqgen.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a fetch strategy with per-attempt logging.
type LoggingStrategy struct {
	next   faqgen.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next faqgen.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() faqgen.StrategyName {
	return s.next.Name()
}

// Fetch delegates to the wrapped strategy and logs the attempt with its
// outcome: bytes and blocked flag on success, the error otherwise.
func (s *LoggingStrategy) Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
	begin := time.Now()
	outcome, err := s.next.Fetch(ctx, url)
	duration := time.Since(begin)

	if err != nil {
		s.logger.Error("fetch",
			slog.String("strategy", string(s.next.Name())),
			slog.String("url", url),
			slog.Duration("duration", duration),
			slog.Any("err", err))
		return nil, err
	}

	s.logger.Info("fetch",
		slog.String("strategy", string(s.next.Name())),
		slog.String("url", url),
		slog.Int("bytes", len(outcome.HTML)),
		slog.Bool("blocked", outcome.Blocked),
		slog.Duration("duration", duration))
	return outcome, nil
}

// Close delegates to the wrapped strategy.
func (s *LoggingStrategy) Close() error {
	return s.next.Close()
}
