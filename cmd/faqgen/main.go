package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/fetch"
	"github.com/seihin/faqgen/gemini"
	"github.com/seihin/faqgen/generate"
	"github.com/seihin/faqgen/goquery"
	"github.com/seihin/faqgen/htmltomarkdown"
	faqhttp "github.com/seihin/faqgen/http"
	"github.com/seihin/faqgen/inmem"
	"github.com/seihin/faqgen/lingua"
	"github.com/seihin/faqgen/rod"
	faqslog "github.com/seihin/faqgen/slog"
	"github.com/seihin/faqgen/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Orchestrator owns the fetch strategies, including the browser process
	// when one was launched.
	Orchestrator *fetch.Orchestrator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Orchestrator != nil {
		return m.Orchestrator.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("faqgen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'faqgen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	deps.Engine = generate.NewEngine(gemini.NewClient(client),
		generate.WithLanguageDetector(lingua.NewDetector()),
		generate.WithLogger(logger))
	deps.Extractor = goquery.NewExtractor(
		goquery.WithFallback(trafilatura.NewExtractor(htmltomarkdown.NewConverter())))
	deps.Sessions = inmem.NewSessionStore()
	deps.Sitemaps = faqhttp.NewSitemapService(nil)

	// Fetching is only needed for URL-sourced commands. The browser strategy
	// is optional: without Chrome, the HTTP and lenient strategies still run.
	if needsFetch(cli, cmd) {
		strategies := []faqgen.Strategy{
			faqslog.NewLoggingStrategy(faqhttp.NewStrategy(), logger),
		}
		if manager, err := rod.NewBrowserManager(); err != nil {
			fmt.Fprintln(stderr, "Hint: Install Chrome or Chromium to enable the browser fallback")
			logger.Warn("browser unavailable, continuing without it", slog.Any("error", err))
		} else {
			strategies = append(strategies, faqslog.NewLoggingStrategy(rod.NewStrategy(manager), logger))
		}
		strategies = append(strategies, faqslog.NewLoggingStrategy(faqhttp.NewLenientStrategy(), logger))

		m.Orchestrator = fetch.NewOrchestrator(strategies, fetch.WithLogger(logger))
		deps.Fetcher = m.Orchestrator
	}

	return kongCtx.Run(deps)
}

// needsFetch reports whether the command will fetch URLs.
func needsFetch(cli *CLI, cmd string) bool {
	if cmd == "crawl" {
		return true
	}
	return cmd == "generate" && cli.Generate.HTMLFile == ""
}
