package mock

import "github.com/seihin/faqgen"

var _ faqgen.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of faqgen.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) faqgen.Language
}

func (d *LanguageDetector) Detect(text string) faqgen.Language {
	return d.DetectFn(text)
}
