package main

import (
	"fmt"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/fetch"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	batch := &fetch.Batch{
		Sitemaps:  deps.Sitemaps,
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		MaxPages:  c.MaxPages,
	}

	pages, err := batch.Run(deps.Ctx, c.URL, func(p fetch.BatchProgress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", p.Completed, p.Total, p.URL, faqgen.ErrorMessage(p.Err))
			return
		}
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.URL)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqgen.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 {
		return faqgen.Errorf(faqgen.ENOTFOUND, "no pages yielded content under %s", c.URL)
	}

	for i, page := range pages {
		if page.Extraction.LowContent {
			fmt.Fprintf(deps.Stderr, "skipping %s: not enough product text\n", page.URL)
			continue
		}

		req := faqgen.GenerationRequest{
			Content:     page.Extraction.Text,
			TargetCount: c.Count,
			Language:    faqgen.Language(c.Lang),
			Type:        faqgen.QAType(c.Type),
			SourceURL:   page.URL,
		}

		candidates, err := deps.Engine.Generate(deps.Ctx, req)
		if err != nil {
			// One page failing to generate should not abort the rest,
			// matching the batch fetch policy.
			fmt.Fprintf(deps.Stderr, "skipping %s: %s\n", page.URL, faqgen.ErrorMessage(err))
			continue
		}

		items := deps.Engine.Annotate(deps.Ctx, req, candidates)
		stored := make([]*faqgen.QAItem, len(items))
		for j := range items {
			stored[j] = &items[j]
		}

		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "# %s\n\n", page.URL)
		fmt.Fprintln(deps.Stdout, faqgen.FormatItems(stored))
	}

	return nil
}
