// Package generate implements the Q&A generation engine: prompt assembly,
// model calls, response parsing, deduplication, supplementation and item
// annotation.
package generate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/seihin/faqgen"
)

// Engine tunables.
const (
	// DefaultModelTimeout bounds the main generation call.
	DefaultModelTimeout = 120 * time.Second

	// adviceTimeout bounds the secondary video-advice call.
	adviceTimeout = 60 * time.Second

	// adviceMaxTokens is the output budget of the advice call: one reason
	// line and two example lines.
	adviceMaxTokens = 300

	// supplementThreshold is the fraction of the target below which the
	// engine issues its single supplemental request.
	supplementThreshold = 0.7

	generationTemperature = 0.7
	adviceTemperature     = 0.4
)

// Ensure Engine implements faqgen.Generator at compile time.
var _ faqgen.Generator = (*Engine)(nil)

// Engine drives a chat-completion model to produce Q&A candidates and
// annotates them into finished items.
type Engine struct {
	model    faqgen.ChatCompleter
	detector faqgen.LanguageDetector
	logger   *slog.Logger
	timeout  time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLanguageDetector sets a detector used to default the request language
// from the content when the caller leaves it empty.
func WithLanguageDetector(d faqgen.LanguageDetector) Option {
	return func(e *Engine) {
		e.detector = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithModelTimeout overrides the per-call model timeout.
func WithModelTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		e.timeout = timeout
	}
}

// NewEngine creates an Engine backed by the given model.
func NewEngine(model faqgen.ChatCompleter, opts ...Option) *Engine {
	e := &Engine{
		model:   model,
		logger:  slog.Default(),
		timeout: DefaultModelTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate produces at most req.TargetCount deduplicated Q&A candidates.
// If the first call yields fewer than 70% of the target, one supplemental
// call asks for the difference with the existing questions as a negative
// constraint; there is no further recursion. Zero usable pairs after both
// calls is a hard failure.
func (e *Engine) Generate(ctx context.Context, req faqgen.GenerationRequest) ([]faqgen.QACandidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Language = e.resolveLanguage(req)

	system, prompt := buildPrompt(req)
	text, err := e.model.Complete(ctx, faqgen.ChatRequest{
		Model:       generationModel,
		System:      system,
		Prompt:      prompt,
		Temperature: generationTemperature,
		MaxTokens:   maxTokensFor(req.TargetCount),
		Timeout:     e.timeout,
	})
	if err != nil {
		return nil, err
	}

	candidates := faqgen.Dedupe(faqgen.ParseCandidates(text))

	if float64(len(candidates)) < supplementThreshold*float64(req.TargetCount) {
		additional := req.TargetCount - len(candidates)
		e.logger.Info("supplementing under-generation",
			slog.Int("have", len(candidates)),
			slog.Int("target", req.TargetCount),
			slog.Int("requesting", additional))

		system, prompt := buildSupplementPrompt(req, candidates, additional)
		text, err := e.model.Complete(ctx, faqgen.ChatRequest{
			Model:       generationModel,
			System:      system,
			Prompt:      prompt,
			Temperature: generationTemperature,
			MaxTokens:   maxTokensFor(additional),
			Timeout:     e.timeout,
		})
		if err != nil {
			// A failed supplement is tolerable if the first call produced
			// anything at all.
			if len(candidates) == 0 {
				return nil, err
			}
			e.logger.Warn("supplemental call failed", slog.Any("error", err))
		} else {
			candidates = faqgen.Dedupe(append(candidates, faqgen.ParseCandidates(text)...))
		}
	}

	if len(candidates) == 0 {
		return nil, faqgen.Errorf(faqgen.EINTERNAL, "The model produced no usable Q&A pairs.")
	}

	if len(candidates) > req.TargetCount {
		candidates = candidates[:req.TargetCount]
	}

	return resolveTypes(candidates, req.Type), nil
}

// Annotate turns candidates into finished items: identifiers, timestamps,
// the video-recommendation heuristic with its advice call, and the
// compliance flag. Advice-call failures degrade to canned advice.
func (e *Engine) Annotate(ctx context.Context, req faqgen.GenerationRequest, candidates []faqgen.QACandidate) []faqgen.QAItem {
	lang := e.resolveLanguage(req)

	sourceType := faqgen.SourceText
	if req.OCR {
		sourceType = faqgen.SourceImage
	}

	items := make([]faqgen.QAItem, 0, len(candidates))
	for _, c := range candidates {
		item := faqgen.QAItem{
			ID:                uuid.New().String(),
			Question:          c.Question,
			Answer:            c.Answer,
			Source:            c.Type,
			SourceType:        sourceType,
			SourceURL:         req.SourceURL,
			CreatedAt:         time.Now().UTC(),
			ComplianceWarning: faqgen.HasComplianceRisk(c.Question + " " + c.Answer),
		}

		if faqgen.NeedsVideo(c.Question, c.Answer) {
			item.NeedsVideo = true
			advice := e.videoAdvice(ctx, c, lang)
			item.VideoReason = advice.Reason
			item.VideoExamples = advice.Examples
		}

		items = append(items, item)
	}
	return items
}

// videoAdvice asks the advice model for a reason and examples, falling back
// to canned advice on any failure.
func (e *Engine) videoAdvice(ctx context.Context, c faqgen.QACandidate, lang faqgen.Language) faqgen.VideoAdvice {
	text, err := e.model.Complete(ctx, faqgen.ChatRequest{
		Model:       adviceModel,
		Prompt:      buildAdvicePrompt(c.Question, c.Answer, lang),
		Temperature: adviceTemperature,
		MaxTokens:   adviceMaxTokens,
		Timeout:     adviceTimeout,
	})
	if err != nil {
		e.logger.Warn("video advice call failed, using canned advice", slog.Any("error", err))
		return faqgen.DefaultVideoAdvice(lang)
	}
	return faqgen.ParseVideoAdvice(text, lang)
}

// resolveLanguage defaults the language from the detector, or to Japanese.
func (e *Engine) resolveLanguage(req faqgen.GenerationRequest) faqgen.Language {
	if req.Language != "" {
		return req.Language
	}
	if e.detector != nil {
		if lang := e.detector.Detect(req.Content); lang != "" {
			return lang
		}
	}
	return faqgen.LanguageJapanese
}

// resolveTypes applies the type-resolution rule: mixed mode defaults untyped
// items to collected; single-type modes force-label every item.
func resolveTypes(candidates []faqgen.QACandidate, mode faqgen.QAType) []faqgen.QACandidate {
	for i := range candidates {
		if mode == faqgen.QAMixed {
			if candidates[i].Type == "" {
				candidates[i].Type = faqgen.QACollected
			}
		} else {
			candidates[i].Type = mode
		}
	}
	return candidates
}
