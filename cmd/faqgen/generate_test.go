package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/generate"
	"github.com/seihin/faqgen/inmem"
	"github.com/seihin/faqgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context, url string) (*faqgen.FetchOutcome, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
	return f(ctx, url)
}

func testDeps(t *testing.T, model *mock.ChatCompleter) (*Dependencies, *bytes.Buffer) {
	t.Helper()

	var stdout bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: io.Discard,
		Logger: logger,
		Fetcher: fetcherFunc(func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
			return &faqgen.FetchOutcome{HTML: "<html>product page</html>", Strategy: faqgen.StrategyHTTP}, nil
		}),
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*faqgen.ExtractionResult, error) {
				return &faqgen.ExtractionResult{
					Text:   "軽量で通気性に優れたアウトドア用キャップ。撥水加工、アジャスター付き。",
					Method: faqgen.MethodDOMHarvest,
				}, nil
			},
		},
		Engine:   generate.NewEngine(model, generate.WithLogger(logger)),
		Sessions: inmem.NewSessionStore(),
	}, &stdout
}

func TestGenerateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes generated items as json", func(t *testing.T) {
		t.Parallel()

		model := &mock.ChatCompleter{
			CompleteFn: func(ctx context.Context, req faqgen.ChatRequest) (string, error) {
				return "Q1: 素材は何ですか？\nA1: ポリエステル100%です。\n" +
					"Q2: 重さはどれくらいですか？\nA2: 約60gです。", nil
			},
		}
		deps, stdout := testDeps(t, model)

		cmd := &GenerateCmd{URL: "https://shop.example/items/cap-a", Count: 2, Type: "collected", Lang: "ja"}
		require.NoError(t, cmd.Run(deps))

		var items []faqgen.QAItem
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "素材は何ですか？", items[0].Question)
		assert.Equal(t, faqgen.QACollected, items[0].Source)
		assert.Equal(t, "https://shop.example/items/cap-a", items[0].SourceURL)
	})

	t.Run("markdown flag renders a faq document", func(t *testing.T) {
		t.Parallel()

		model := &mock.ChatCompleter{
			CompleteFn: func(ctx context.Context, req faqgen.ChatRequest) (string, error) {
				return "Q1: 素材は何ですか？\nA1: ポリエステル100%です。", nil
			},
		}
		deps, stdout := testDeps(t, model)

		cmd := &GenerateCmd{URL: "https://shop.example/items/cap-a", Count: 1, Type: "collected", Lang: "ja", Markdown: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "## Q1. 素材は何ですか？")
	})

	t.Run("requires a url or html file", func(t *testing.T) {
		t.Parallel()

		model := &mock.ChatCompleter{
			CompleteFn: func(ctx context.Context, req faqgen.ChatRequest) (string, error) {
				return "", nil
			},
		}
		deps, _ := testDeps(t, model)

		cmd := &GenerateCmd{Count: 1, Type: "collected"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, faqgen.EINVALID, faqgen.ErrorCode(err))
	})

	t.Run("generation failure propagates", func(t *testing.T) {
		t.Parallel()

		model := &mock.ChatCompleter{
			CompleteFn: func(ctx context.Context, req faqgen.ChatRequest) (string, error) {
				return "", faqgen.Errorf(faqgen.EQUOTA, "Model quota exceeded.")
			},
		}
		deps, _ := testDeps(t, model)

		cmd := &GenerateCmd{URL: "https://shop.example/items/cap-a", Count: 2, Type: "collected", Lang: "ja"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, faqgen.EQUOTA, faqgen.ErrorCode(err))
	})
}
