package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/seihin/faqgen"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	html, sourceURL, err := c.loadHTML(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqgen.ErrorMessage(err))
		return err
	}

	extraction, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqgen.ErrorMessage(err))
		return err
	}
	if extraction.LowContent {
		fmt.Fprintf(deps.Stderr, "warning: extracted only %d characters of product text; results may be thin\n", len(extraction.Text))
	}

	req := faqgen.GenerationRequest{
		Content:     extraction.Text,
		TargetCount: c.Count,
		Language:    faqgen.Language(c.Lang),
		Type:        faqgen.QAType(c.Type),
		OCR:         c.OCR,
		SourceURL:   sourceURL,
	}

	candidates, err := deps.Engine.Generate(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqgen.ErrorMessage(err))
		fmt.Fprintf(deps.Stderr, "diagnostics: html=%d bytes, extracted=%d chars, method=%s\n",
			len(html), len(extraction.Text), extraction.Method)
		return err
	}

	items := deps.Engine.Annotate(deps.Ctx, req, candidates)

	sessionID := uuid.New().String()
	stored := make([]*faqgen.QAItem, len(items))
	for i := range items {
		stored[i] = &items[i]
	}
	if err := deps.Sessions.CreateItems(deps.Ctx, sessionID, stored); err != nil {
		return err
	}

	return writeItems(deps, stored, c.Markdown)
}

// loadHTML returns the page HTML either from the file flag or by fetching.
func (c *GenerateCmd) loadHTML(deps *Dependencies) (html, sourceURL string, err error) {
	if c.HTMLFile != "" {
		data, err := os.ReadFile(c.HTMLFile)
		if err != nil {
			return "", "", faqgen.Errorf(faqgen.EINVALID, "reading %s: %v", c.HTMLFile, err)
		}
		return string(data), "", nil
	}

	if c.URL == "" {
		return "", "", faqgen.Errorf(faqgen.EINVALID, "a URL argument or --html-file is required")
	}

	outcome, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return "", "", err
	}
	if outcome.Blocked {
		fmt.Fprintf(deps.Stderr, "warning: every strategy was blocked; proceeding with the best body received (%s)\n", outcome.Strategy)
	}
	return outcome.HTML, c.URL, nil
}

// writeItems renders items as markdown or JSON to stdout.
func writeItems(deps *Dependencies, items []*faqgen.QAItem, markdown bool) error {
	if markdown {
		fmt.Fprintln(deps.Stdout, faqgen.FormatItems(items))
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
