// Package gemini implements the chat-completion capability using Google
// Gemini.
package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/seihin/faqgen"
	"google.golang.org/genai"
)

// Ensure Client implements faqgen.ChatCompleter at compile time.
var _ faqgen.ChatCompleter = (*Client)(nil)

// Client implements faqgen.ChatCompleter over the Gemini API.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Client.
func NewClient(client *genai.Client) *Client {
	return &Client{client: client}
}

// Complete submits a single chat-style request and returns the model's free
// text. Service failures are classified into quota, rate-limit and timeout
// categories so callers can present a specific message.
func (c *Client) Complete(ctx context.Context, req faqgen.ChatRequest) (string, error) {
	if req.Model == "" {
		return "", faqgen.Errorf(faqgen.EINVALID, "model required")
	}
	if req.Prompt == "" {
		return "", faqgen.Errorf(faqgen.EINVALID, "prompt required")
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = req.MaxTokens
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, req.Model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		config,
	)
	if err != nil {
		return "", classifyError(err)
	}
	if result == nil {
		return "", faqgen.Errorf(faqgen.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// classifyError maps a Gemini call failure to a typed category. The API does
// not expose stable error codes for these conditions, so message substrings
// are the contract.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return faqgen.Errorf(faqgen.ETIMEOUT, "Model call timed out.")
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"):
		return faqgen.Errorf(faqgen.EQUOTA, "Model quota exceeded.")
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "resource_exhausted"), strings.Contains(msg, "429"):
		return faqgen.Errorf(faqgen.ERATELIMIT, "Model rate limit reached.")
	case strings.Contains(msg, "deadline"), strings.Contains(msg, "timeout"):
		return faqgen.Errorf(faqgen.ETIMEOUT, "Model call timed out.")
	}
	return err
}
