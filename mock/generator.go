package mock

import (
	"context"

	"github.com/seihin/faqgen"
)

var _ faqgen.Generator = (*Generator)(nil)

// Generator is a mock implementation of faqgen.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req faqgen.GenerationRequest) ([]faqgen.QACandidate, error)
}

func (g *Generator) Generate(ctx context.Context, req faqgen.GenerationRequest) ([]faqgen.QACandidate, error) {
	return g.GenerateFn(ctx, req)
}
