package mock

import (
	"context"

	"github.com/seihin/faqgen"
)

var _ faqgen.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of faqgen.Strategy.
type Strategy struct {
	NameFn  func() faqgen.StrategyName
	FetchFn func(ctx context.Context, url string) (*faqgen.FetchOutcome, error)
	CloseFn func() error
}

func (s *Strategy) Name() faqgen.StrategyName {
	return s.NameFn()
}

func (s *Strategy) Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
	return s.FetchFn(ctx, url)
}

func (s *Strategy) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
