package fetch

import (
	"context"
	"time"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/bloom"
	"golang.org/x/time/rate"
)

// Batch defaults.
const (
	// DefaultPageDelay is the politeness delay between pages. Batches are
	// strictly sequential with this spacing to avoid hammering target
	// sites; preserve it when tuning.
	DefaultPageDelay = time.Second

	// DefaultMaxPages caps how many pages a single batch visits.
	DefaultMaxPages = 10
)

// PageContent is one successfully processed page of a batch.
type PageContent struct {
	URL        string
	Outcome    *faqgen.FetchOutcome
	Extraction *faqgen.ExtractionResult
}

// BatchProgress reports per-URL progress during a batch run.
type BatchProgress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// BatchProgressFunc is called once per processed URL.
type BatchProgressFunc func(BatchProgress)

// Batch crawls a capped set of same-host pages sequentially: the base URL
// first, then sitemap-discovered pages. One URL failing (even with every
// strategy exhausted) does not abort the rest of the batch.
type Batch struct {
	Sitemaps  faqgen.SitemapService
	Fetcher   Fetcher
	Extractor faqgen.Extractor
	MaxPages  int
	PageDelay time.Duration
}

// Run processes up to MaxPages URLs and returns the pages that yielded
// content. The returned error is non-nil only for context cancellation or
// an invalid base URL; per-URL failures surface through progress callbacks.
func (b *Batch) Run(ctx context.Context, baseURL string, progress BatchProgressFunc) ([]*PageContent, error) {
	maxPages := b.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	delay := b.PageDelay
	if delay <= 0 {
		delay = DefaultPageDelay
	}

	urls := []string{baseURL}
	if b.Sitemaps != nil {
		discovered, err := b.Sitemaps.DiscoverURLs(ctx, baseURL)
		if err != nil {
			return nil, err
		}
		urls = append(urls, discovered...)
	}

	seen := bloom.NewSeenFilter(uint(len(urls))+1, 0.01)
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	var pages []*PageContent
	completed := 0
	for _, url := range urls {
		if completed >= maxPages {
			break
		}
		if seen.Seen(url) {
			continue
		}
		seen.Remember(url)
		completed++

		if err := limiter.Wait(ctx); err != nil {
			return pages, err
		}

		content, err := b.processURL(ctx, url)
		if err == nil {
			pages = append(pages, content)
		}
		if progress != nil {
			progress(BatchProgress{
				URL:       url,
				Completed: completed,
				Total:     min(len(urls), maxPages),
				Err:       err,
			})
		}
	}

	return pages, nil
}

func (b *Batch) processURL(ctx context.Context, url string) (*PageContent, error) {
	outcome, err := b.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	extraction, err := b.Extractor.Extract(outcome.HTML)
	if err != nil {
		return nil, err
	}

	return &PageContent{URL: url, Outcome: outcome, Extraction: extraction}, nil
}
