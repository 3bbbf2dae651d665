// Package http provides the HTTP-based fetch strategies: the first-line
// browser-headed GET and the lenient last-resort GET. Neither executes
// JavaScript; pages that gate content behind script execution escalate to
// the rod strategy.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/seihin/faqgen"
)

// DefaultTimeout bounds a single HTTP fetch.
const DefaultTimeout = 30 * time.Second

// Ensure Strategy implements faqgen.Strategy at compile time.
var _ faqgen.Strategy = (*Strategy)(nil)

// Strategy issues a single GET with browser-like headers and classifies the
// result as success, blocked, or network failure.
type Strategy struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Strategy.
type Option func(*Strategy)

// WithTimeout sets the request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Strategy) {
		s.timeout = d
	}
}

// NewStrategy creates the first-line HTTP fetch strategy.
func NewStrategy(opts ...Option) *Strategy {
	s := &Strategy{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	s.client = &http.Client{Timeout: s.timeout}
	return s
}

// Name identifies the strategy.
func (s *Strategy) Name() faqgen.StrategyName {
	return faqgen.StrategyHTTP
}

// Fetch retrieves the page. Network-level failures and 5xx responses return
// EUNAVAILABLE so the orchestrator retries; any 4xx, or a 200 whose body
// trips the block heuristics, comes back as a Blocked outcome so the
// orchestrator escalates instead.
func (s *Strategy) Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, faqgen.Errorf(faqgen.EINVALID, "invalid URL %q: %v", url, err)
	}
	setBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "no response from %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "reading body from %s: %v", url, err)
	}

	if resp.StatusCode >= 500 {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "HTTP %d from %s", resp.StatusCode, url)
	}

	outcome := &faqgen.FetchOutcome{
		HTML:     string(body),
		Strategy: faqgen.StrategyHTTP,
	}
	if resp.StatusCode != http.StatusOK || faqgen.LooksBlocked(outcome.HTML, resp.StatusCode) {
		outcome.Blocked = true
	}
	return outcome, nil
}

// Close releases resources. No-op for plain HTTP.
func (s *Strategy) Close() error {
	return nil
}

// setBrowserHeaders makes the request indistinguishable from a Japanese
// desktop Chrome as far as headers go.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
}
