package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/seihin/faqgen"
)

// Ensure LenientStrategy implements faqgen.Strategy at compile time.
var _ faqgen.Strategy = (*LenientStrategy)(nil)

// LenientStrategy is the last-resort fetch: it accepts any status code and
// returns whatever body exists. The philosophy is "never return nothing;
// let the extractor decide if content is usable", so even a total failure
// yields a placeholder document describing it.
type LenientStrategy struct {
	client *http.Client
}

// NewLenientStrategy creates the last-resort strategy.
func NewLenientStrategy(opts ...Option) *LenientStrategy {
	s := &Strategy{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return &LenientStrategy{client: &http.Client{Timeout: s.timeout}}
}

// Name identifies the strategy.
func (s *LenientStrategy) Name() faqgen.StrategyName {
	return faqgen.StrategyLenient
}

// Fetch never fails: any body is returned as-is, and an empty body or a
// transport error is replaced by a synthetic placeholder.
func (s *LenientStrategy) Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
	outcome := &faqgen.FetchOutcome{Strategy: faqgen.StrategyLenient}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome.HTML = placeholderHTML(url, err.Error())
		return outcome, nil
	}
	setBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		outcome.HTML = placeholderHTML(url, err.Error())
		return outcome, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		outcome.HTML = placeholderHTML(url, fmt.Sprintf("HTTP %d with empty body", resp.StatusCode))
		return outcome, nil
	}

	outcome.HTML = string(body)
	outcome.Blocked = faqgen.LooksBlocked(outcome.HTML, resp.StatusCode)
	return outcome, nil
}

// Close releases resources. No-op for plain HTTP.
func (s *LenientStrategy) Close() error {
	return nil
}

// placeholderHTML is the synthetic document returned when no body at all
// could be obtained.
func placeholderHTML(url, detail string) string {
	return fmt.Sprintf(
		"<html><head><title>fetch failed</title></head><body><p>Could not retrieve %s</p><p>%s</p></body></html>",
		url, detail,
	)
}
