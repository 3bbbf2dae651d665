package mock

import (
	"context"

	"github.com/seihin/faqgen"
)

var _ faqgen.ChatCompleter = (*ChatCompleter)(nil)

// ChatCompleter is a mock implementation of faqgen.ChatCompleter.
type ChatCompleter struct {
	CompleteFn func(ctx context.Context, req faqgen.ChatRequest) (string, error)

	// Requests records every request received, in order.
	Requests []faqgen.ChatRequest
}

func (c *ChatCompleter) Complete(ctx context.Context, req faqgen.ChatRequest) (string, error) {
	c.Requests = append(c.Requests, req)
	return c.CompleteFn(ctx, req)
}
