package faqgen

import (
	"context"
	"time"
)

// Language is the output language for generated Q&A pairs.
type Language string

// Supported output languages.
const (
	LanguageJapanese Language = "ja"
	LanguageEnglish  Language = "en"
	LanguageChinese  Language = "zh"
)

// QAType classifies how an answer relates to the source text.
type QAType string

// Q&A types. Collected answers derive only from the extracted source text;
// suggested answers may draw on general category knowledge; mixed requests
// ask the model to label each pair itself.
const (
	QACollected QAType = "collected"
	QASuggested QAType = "suggested"
	QAMixed     QAType = "mixed"
)

// SourceType records what kind of input produced an item.
type SourceType string

// Source types.
const (
	SourceText  SourceType = "text"
	SourceImage SourceType = "image"
	SourceVideo SourceType = "video"
	SourcePDF   SourceType = "pdf"
)

// GenerationRequest describes one generation call.
// TargetCount is a request, not a guarantee: the engine never pads beyond
// what the model actually produced.
type GenerationRequest struct {
	Content     string
	TargetCount int
	Language    Language
	Type        QAType
	OCR         bool // OCR input is noisy; prompts switch to a lenient mode
	SourceURL   string
}

// Validate returns an error if the request contains invalid fields.
func (r *GenerationRequest) Validate() error {
	if r.Content == "" {
		return Errorf(EINVALID, "generation content required")
	}
	if r.TargetCount <= 0 {
		return Errorf(EINVALID, "target count must be positive")
	}
	switch r.Type {
	case QACollected, QASuggested, QAMixed:
	default:
		return Errorf(EINVALID, "unknown qa type %q", r.Type)
	}
	return nil
}

// QACandidate is a parsed question/answer pair. Transient: candidates exist
// between response parsing and item assembly. Type is populated only in
// mixed mode.
type QACandidate struct {
	Question string
	Answer   string
	Type     QAType
}

// QAItem is a finished Q&A entry as stored in a session.
type QAItem struct {
	ID                string     `json:"id"`
	Question          string     `json:"question"`
	Answer            string     `json:"answer"`
	Source            QAType     `json:"source"`
	SourceType        SourceType `json:"sourceType"`
	SourceURL         string     `json:"sourceUrl,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	NeedsVideo        bool       `json:"needsVideo"`
	VideoReason       string     `json:"videoReason,omitempty"`
	VideoExamples     []string   `json:"videoExamples,omitempty"`
	ComplianceWarning bool       `json:"complianceWarning,omitempty"`
}

// Validate returns an error if the item contains invalid fields.
func (i *QAItem) Validate() error {
	if i.Question == "" {
		return Errorf(EINVALID, "item question required")
	}
	if i.Answer == "" {
		return Errorf(EINVALID, "item answer required")
	}
	return nil
}

// Generator produces Q&A candidates from extracted product text.
type Generator interface {
	// Generate drives the model and post-processes its output. Returns at
	// most req.TargetCount candidates. Zero parsed pairs after the single
	// supplement pass is a hard failure, never an empty success.
	Generate(ctx context.Context, req GenerationRequest) ([]QACandidate, error)
}

// ChatRequest is a single chat-completion call to the model service.
type ChatRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int32
	Timeout     time.Duration
}

// ChatCompleter submits a chat-style prompt with a token budget and
// temperature and returns free text, subject to a per-call timeout.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// LanguageDetector guesses the language of a text block. Used to default
// GenerationRequest.Language when the caller leaves it empty.
type LanguageDetector interface {
	Detect(text string) Language
}
