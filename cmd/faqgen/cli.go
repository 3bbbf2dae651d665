package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/fetch"
	"github.com/seihin/faqgen/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   fetch.Fetcher
	Extractor faqgen.Extractor
	Engine    *generate.Engine
	Sessions  faqgen.SessionStore
	Sitemaps  faqgen.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate FAQ items for one product page"`
	Crawl    CrawlCmd    `cmd:"" help:"Generate FAQ items for every product page discovered under a URL"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL      string `arg:"" optional:"" help:"Product page URL"`
	HTMLFile string `name:"html-file" help:"Read HTML from a file instead of fetching"`
	Count    int    `short:"c" default:"10" help:"Number of Q&A pairs to generate"`
	Lang     string `short:"l" help:"Output language (ja, en, zh); detected from content when omitted"`
	Type     string `short:"t" default:"mixed" enum:"collected,suggested,mixed" help:"Answer sourcing mode"`
	OCR      bool   `help:"Treat input as noisy OCR text"`
	Markdown bool   `short:"m" help:"Output a markdown FAQ instead of JSON"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string `arg:"" help:"Base URL of the product site"`
	MaxPages int    `name:"max-pages" default:"10" help:"Page cap for the crawl"`
	Count    int    `short:"c" default:"5" help:"Number of Q&A pairs per page"`
	Lang     string `short:"l" help:"Output language (ja, en, zh); detected from content when omitted"`
	Type     string `short:"t" default:"mixed" enum:"collected,suggested,mixed" help:"Answer sourcing mode"`
}
