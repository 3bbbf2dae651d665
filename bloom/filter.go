// Package bloom provides probabilistic seen-URL tracking for batch crawls.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenFilter tracks which URLs a batch has already visited. False positives
// (skipping a never-visited URL) are possible and acceptable; false
// negatives are not.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Remember marks a URL as visited.
func (s *SeenFilter) Remember(url string) {
	s.f.AddString(url)
}

// Seen reports whether the URL might have been visited already.
func (s *SeenFilter) Seen(url string) bool {
	return s.f.TestString(url)
}
