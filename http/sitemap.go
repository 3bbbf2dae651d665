package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/seihin/faqgen"
)

// Ensure SitemapService implements faqgen.SitemapService at compile time.
var _ faqgen.SitemapService = (*SitemapService)(nil)

// maxSitemapDepth bounds sitemap-index recursion.
const maxSitemapDepth = 2

// SitemapService discovers URLs from a site's sitemaps via robots.txt, with
// /sitemap.xml as the conventional fallback.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a SitemapService. If client is nil,
// http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all same-host URLs listed in the site's sitemaps.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, faqgen.Errorf(faqgen.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	sitemaps := s.sitemapsFromRobots(ctx, base)
	if len(sitemaps) == 0 {
		sitemaps = []string{base.Scheme + "://" + base.Host + "/sitemap.xml"}
	}

	urls := []string{}
	seen := make(map[string]bool)
	for _, sm := range sitemaps {
		s.collect(ctx, sm, base, seen, &urls, 0)
	}
	return urls, nil
}

// sitemapsFromRobots reads robots.txt Sitemap: lines. Any failure just means
// falling back to the conventional location.
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, base *url.URL) []string {
	robotsURL := base.Scheme + "://" + base.Host + "/robots.txt"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var sitemaps []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(strings.ToLower(line), "sitemap:"); ok {
			// Preserve the original casing of the URL portion.
			sm := strings.TrimSpace(line[len(line)-len(rest):])
			if sm != "" {
				sitemaps = append(sitemaps, sm)
			}
		}
	}
	return sitemaps
}

// collect parses one sitemap document, recursing into sitemap indexes.
func (s *SitemapService) collect(ctx context.Context, sitemapURL string, base *url.URL, seen map[string]bool, urls *[]string, depth int) {
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return
	}
	seen[sitemapURL] = true

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return
	}
	root := doc.Root()
	if root == nil {
		return
	}

	switch root.Tag {
	case "sitemapindex":
		for _, sm := range root.SelectElements("sitemap") {
			if loc := sm.SelectElement("loc"); loc != nil {
				s.collect(ctx, strings.TrimSpace(loc.Text()), base, seen, urls, depth+1)
			}
		}
	case "urlset":
		for _, u := range root.SelectElements("url") {
			loc := u.SelectElement("loc")
			if loc == nil {
				continue
			}
			raw := strings.TrimSpace(loc.Text())
			parsed, err := url.Parse(raw)
			if err != nil || parsed.Host != base.Host {
				continue
			}
			if !seen[raw] {
				seen[raw] = true
				*urls = append(*urls, raw)
			}
		}
	}
}
