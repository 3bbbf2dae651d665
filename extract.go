package faqgen

// ExtractionMethod identifies which pipeline path produced the text.
type ExtractionMethod string

// Extraction methods.
const (
	// MethodStructuredData means a machine-readable product record was found
	// and used verbatim; DOM harvesting was skipped entirely.
	MethodStructuredData ExtractionMethod = "structured_data"

	// MethodDOMHarvest means the text was collected from prioritized DOM
	// sections after noise removal.
	MethodDOMHarvest ExtractionMethod = "dom_harvest"
)

// Extraction bounds.
const (
	// MaxExtractChars caps extracted text. Product copy front-loads in page
	// order; tail content is disproportionately footer noise.
	MaxExtractChars = 3500

	// MinUsefulChars is the length below which extracted text is considered
	// too thin to generate from. Also the acceptance threshold for the
	// structured-data pass and for main-container candidates.
	MinUsefulChars = 100
)

// Section priority tiers for the DOM harvest.
const (
	PriorityTitle       = 1 // headings and title-like elements
	PriorityDescription = 2 // description, spec and feature blocks
	PriorityPrice       = 3 // price and purchase blocks
	PriorityGeneric     = 4 // generic paragraphs, divs, sections
)

// PrioritySection is a text fragment collected during the DOM harvest.
// Ephemeral: sections exist only while extraction runs, sorted ascending by
// priority and concatenated.
type PrioritySection struct {
	Text     string
	Priority int
}

// ExtractionResult holds the product-only text distilled from a page.
type ExtractionResult struct {
	// Text is bounded by MaxExtractChars and free of denylisted
	// inventory/account phrases.
	Text string

	// Method records which pipeline path produced Text.
	Method ExtractionMethod

	// SectionCounts maps priority tier to the number of sections harvested.
	// Empty for the structured-data path.
	SectionCounts map[int]int

	// LowContent warns (non-fatally) that Text is shorter than MinUsefulChars.
	LowContent bool
}

// Extractor converts noisy HTML into a short product-only text block.
// Extract is a pure function of its input: it never suspends and never fails,
// returning best-effort text even for malformed input.
type Extractor interface {
	Extract(html string) (*ExtractionResult, error)
}

// Converter converts HTML to Markdown. Used by the fallback extraction path.
type Converter interface {
	Convert(html string) (string, error)
}
