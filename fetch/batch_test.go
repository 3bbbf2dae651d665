package fetch_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/fetch"
	"github.com/seihin/faqgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context, url string) (*faqgen.FetchOutcome, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
	return f(ctx, url)
}

func passthroughExtractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html string) (*faqgen.ExtractionResult, error) {
			return &faqgen.ExtractionResult{Text: html, Method: faqgen.MethodDOMHarvest}, nil
		},
	}
}

func staticSitemap(urls ...string) *mock.SitemapService {
	return &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
			return urls, nil
		},
	}
}

func TestBatch_Run(t *testing.T) {
	t.Parallel()

	t.Run("visits the base url before discovered pages, in order", func(t *testing.T) {
		t.Parallel()

		var visited []string
		b := &fetch.Batch{
			Sitemaps: staticSitemap("https://shop.example/items/1", "https://shop.example/items/2"),
			Fetcher: fetcherFunc(func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				visited = append(visited, url)
				return &faqgen.FetchOutcome{HTML: "<html>" + url + "</html>", Strategy: faqgen.StrategyHTTP}, nil
			}),
			Extractor: passthroughExtractor(),
			PageDelay: time.Nanosecond,
		}

		pages, err := b.Run(context.Background(), "https://shop.example/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://shop.example/",
			"https://shop.example/items/1",
			"https://shop.example/items/2",
		}, visited)
		require.Len(t, pages, 3)
		assert.Equal(t, "https://shop.example/", pages[0].URL)
	})

	t.Run("skips urls already seen", func(t *testing.T) {
		t.Parallel()

		calls := 0
		b := &fetch.Batch{
			Sitemaps: staticSitemap("https://shop.example/", "https://shop.example/items/1", "https://shop.example/items/1"),
			Fetcher: fetcherFunc(func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				calls++
				return &faqgen.FetchOutcome{HTML: "<html>x</html>", Strategy: faqgen.StrategyHTTP}, nil
			}),
			Extractor: passthroughExtractor(),
			PageDelay: time.Nanosecond,
		}

		pages, err := b.Run(context.Background(), "https://shop.example/", nil)

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, pages, 2)
	})

	t.Run("stops at the page cap", func(t *testing.T) {
		t.Parallel()

		discovered := make([]string, 20)
		for i := range discovered {
			discovered[i] = fmt.Sprintf("https://shop.example/items/%d", i)
		}

		calls := 0
		b := &fetch.Batch{
			Sitemaps: staticSitemap(discovered...),
			Fetcher: fetcherFunc(func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				calls++
				return &faqgen.FetchOutcome{HTML: "<html>x</html>", Strategy: faqgen.StrategyHTTP}, nil
			}),
			Extractor: passthroughExtractor(),
			MaxPages:  5,
			PageDelay: time.Nanosecond,
		}

		pages, err := b.Run(context.Background(), "https://shop.example/", nil)

		require.NoError(t, err)
		assert.Equal(t, 5, calls)
		assert.Len(t, pages, 5)
	})

	t.Run("one failing url does not abort the batch", func(t *testing.T) {
		t.Parallel()

		var failed []string
		b := &fetch.Batch{
			Sitemaps: staticSitemap("https://shop.example/items/down", "https://shop.example/items/up"),
			Fetcher: fetcherFunc(func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				if url == "https://shop.example/items/down" {
					return nil, faqgen.Errorf(faqgen.EEXHAUSTED, "No fetch strategy produced content.")
				}
				return &faqgen.FetchOutcome{HTML: "<html>x</html>", Strategy: faqgen.StrategyHTTP}, nil
			}),
			Extractor: passthroughExtractor(),
			PageDelay: time.Nanosecond,
		}

		pages, err := b.Run(context.Background(), "https://shop.example/", func(p fetch.BatchProgress) {
			if p.Err != nil {
				failed = append(failed, p.URL)
			}
		})

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		assert.Equal(t, []string{"https://shop.example/items/down"}, failed)
	})

	t.Run("context cancellation returns the pages collected so far", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		b := &fetch.Batch{
			Sitemaps: staticSitemap("https://shop.example/items/1", "https://shop.example/items/2"),
			Fetcher: fetcherFunc(func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				calls++
				if calls == 2 {
					cancel()
				}
				return &faqgen.FetchOutcome{HTML: "<html>x</html>", Strategy: faqgen.StrategyHTTP}, nil
			}),
			Extractor: passthroughExtractor(),
			PageDelay: time.Nanosecond,
		}

		pages, err := b.Run(ctx, "https://shop.example/", nil)

		require.Error(t, err)
		assert.Len(t, pages, 2)
	})

	t.Run("works without a sitemap service", func(t *testing.T) {
		t.Parallel()

		b := &fetch.Batch{
			Fetcher: fetcherFunc(func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				return &faqgen.FetchOutcome{HTML: "<html>x</html>", Strategy: faqgen.StrategyHTTP}, nil
			}),
			Extractor: passthroughExtractor(),
			PageDelay: time.Nanosecond,
		}

		pages, err := b.Run(context.Background(), "https://shop.example/", nil)

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://shop.example/", pages[0].URL)
	})
}
