package faqgen

import "context"

// SitemapService discovers page URLs for a site, used by the batch crawl to
// expand a storefront URL into candidate product pages.
type SitemapService interface {
	// DiscoverURLs returns same-host URLs found via the site's sitemaps.
	// Returns an empty slice (not nil) when no sitemap exists.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
