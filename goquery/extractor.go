// Package goquery implements product content extraction over parsed HTML.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/seihin/faqgen"
)

var _ faqgen.Extractor = (*Extractor)(nil)

// Extractor distills noisy product-page HTML into a short product-only text
// block. Extract never fails: malformed input degrades to best-effort text.
type Extractor struct {
	fallback faqgen.Extractor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback sets a secondary extractor consulted when the DOM harvest
// comes up short.
func WithFallback(fallback faqgen.Extractor) Option {
	return func(e *Extractor) {
		e.fallback = fallback
	}
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the cascading pipeline: structured-data pass, noise removal,
// container selection, priority harvest, normalization, sentence-level phrase
// filtering, truncation. A structured Product record that clears the
// usefulness threshold is authoritative and skips DOM harvesting entirely.
func (e *Extractor) Extract(html string) (*faqgen.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Unparseable input still yields a result, just an empty one.
		return &faqgen.ExtractionResult{Method: faqgen.MethodDOMHarvest, LowContent: true}, nil
	}

	structured := extractStructured(doc)
	if utf8.RuneCountInString(structured) > faqgen.MinUsefulChars {
		return &faqgen.ExtractionResult{
			Text:   truncate(structured, faqgen.MaxExtractChars),
			Method: faqgen.MethodStructuredData,
		}, nil
	}

	removeNoise(doc)

	container := selectContainer(doc)
	sections := harvest(container)

	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		parts = append(parts, section.Text)
	}
	text := normalizeSpace(strings.Join(parts, " "))
	if len(sections) == 0 {
		// No tier matched anything, which happens on plain text and on pages
		// with no recognizable markup. The container's own text is the
		// best-effort answer.
		text = normalizeSpace(container.Text())
	}
	text = filterSentences(text)
	text = truncate(text, faqgen.MaxExtractChars)

	// A structured record below the usefulness threshold still beats a DOM
	// harvest that produced even less.
	if structured != "" && len(structured) > len(text) {
		return &faqgen.ExtractionResult{
			Text:       structured,
			Method:     faqgen.MethodStructuredData,
			LowContent: utf8.RuneCountInString(structured) < faqgen.MinUsefulChars,
		}, nil
	}

	result := &faqgen.ExtractionResult{
		Text:          text,
		Method:        faqgen.MethodDOMHarvest,
		SectionCounts: sectionCounts(sections),
		LowContent:    utf8.RuneCountInString(text) < faqgen.MinUsefulChars,
	}

	if result.LowContent && e.fallback != nil {
		if alt, err := e.fallback.Extract(html); err == nil && len(alt.Text) > len(result.Text) {
			alt.Text = truncate(filterSentences(alt.Text), faqgen.MaxExtractChars)
			alt.LowContent = utf8.RuneCountInString(alt.Text) < faqgen.MinUsefulChars
			return alt, nil
		}
	}

	return result, nil
}

// sentenceTerminators end a fragment for the sentence-level phrase filter.
var sentenceTerminators = map[rune]bool{
	'。': true, '．': true, '！': true, '？': true,
	'.': true, '!': true, '?': true, '\n': true,
}

// filterSentences splits text on sentence terminators and newlines, drops
// fragments carrying store-mechanics phrases, and rejoins the rest. This is
// the last line of defense against noise embedded mid-description.
func filterSentences(text string) string {
	var b strings.Builder
	var fragment strings.Builder

	flush := func() {
		f := fragment.String()
		fragment.Reset()
		if strings.TrimSpace(f) == "" {
			return
		}
		if containsSentencePhrase(f) {
			return
		}
		b.WriteString(f)
	}

	for _, r := range text {
		fragment.WriteRune(r)
		if sentenceTerminators[r] {
			flush()
		}
	}
	flush()

	return strings.TrimSpace(b.String())
}

// truncate cuts text to at most max runes without splitting a character.
func truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max])
}
