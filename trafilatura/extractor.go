// Package trafilatura implements the fallback extraction path: boilerplate
// removal via go-trafilatura followed by Markdown conversion of the surviving
// content. It is consulted when the selector-based harvest yields too little.
package trafilatura

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/markusmobius/go-trafilatura"
	"github.com/seihin/faqgen"
	"golang.org/x/net/html"
)

var _ faqgen.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main content block out of a
// product page.
type Extractor struct {
	converter faqgen.Converter
}

// NewExtractor creates an Extractor. The converter renders the extracted
// content node to Markdown-flavored plain text.
func NewExtractor(converter faqgen.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Extract runs trafilatura content extraction and converts the result to
// text. It never fails on malformed input; errors are reported only for
// empty input and converter breakage.
func (e *Extractor) Extract(rawHTML string) (*faqgen.ExtractionResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, faqgen.Errorf(faqgen.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Trafilatura gives up on pages it considers content-free. That is a
		// low-content result, not a failure.
		return &faqgen.ExtractionResult{Method: faqgen.MethodDOMHarvest, LowContent: true}, nil
	}

	var text string
	if result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		text, err = e.converter.Convert(contentHTML)
		if err != nil {
			return nil, err
		}
	}

	text = strings.TrimSpace(text)
	return &faqgen.ExtractionResult{
		Text:       text,
		Method:     faqgen.MethodDOMHarvest,
		LowContent: utf8.RuneCountInString(text) < faqgen.MinUsefulChars,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
