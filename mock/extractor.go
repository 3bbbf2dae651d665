package mock

import "github.com/seihin/faqgen"

var _ faqgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of faqgen.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*faqgen.ExtractionResult, error)
}

func (e *Extractor) Extract(html string) (*faqgen.ExtractionResult, error) {
	return e.ExtractFn(html)
}
