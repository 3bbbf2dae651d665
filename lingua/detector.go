// Package lingua implements language detection over extracted product text.
package lingua

import (
	"github.com/pemistahl/lingua-go"
	"github.com/seihin/faqgen"
)

// Ensure Detector implements faqgen.LanguageDetector at compile time.
var _ faqgen.LanguageDetector = (*Detector)(nil)

// Detector guesses the output language from extracted text. Only the three
// supported output languages participate in detection; restricting the
// candidate set keeps short mixed-script product copy from drifting to an
// unsupported language.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Japanese, lingua.English, lingua.Chinese).
			Build(),
	}
}

// Detect returns the detected language, defaulting to Japanese when the text
// is too short or ambiguous to classify.
func (d *Detector) Detect(text string) faqgen.Language {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return faqgen.LanguageJapanese
	}
	switch lang {
	case lingua.English:
		return faqgen.LanguageEnglish
	case lingua.Chinese:
		return faqgen.LanguageChinese
	default:
		return faqgen.LanguageJapanese
	}
}
