package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/mock"
	faqslog "github.com/seihin/faqgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStrategy_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Strategy{
			NameFn: func() faqgen.StrategyName { return faqgen.StrategyHTTP },
			FetchFn: func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				return &faqgen.FetchOutcome{HTML: "<html>content</html>", Strategy: faqgen.StrategyHTTP}, nil
			},
		}

		strategy := faqslog.NewLoggingStrategy(inner, logger)
		outcome, err := strategy.Fetch(context.Background(), "https://shop.example/items/cap-a")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", outcome.HTML)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "strategy=http")
		assert.Contains(t, output, "url=https://shop.example/items/cap-a")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "blocked=false")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Strategy{
			NameFn: func() faqgen.StrategyName { return faqgen.StrategyBrowser },
			FetchFn: func(ctx context.Context, url string) (*faqgen.FetchOutcome, error) {
				return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "browser crashed")
			},
		}

		strategy := faqslog.NewLoggingStrategy(inner, logger)
		_, err := strategy.Fetch(context.Background(), "https://shop.example/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "strategy=browser")
		assert.Contains(t, output, "browser crashed")
	})

	t.Run("delegates close to the inner strategy", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closed := false
		inner := &mock.Strategy{
			NameFn:  func() faqgen.StrategyName { return faqgen.StrategyHTTP },
			CloseFn: func() error { closed = true; return nil },
		}

		strategy := faqslog.NewLoggingStrategy(inner, logger)
		require.NoError(t, strategy.Close())
		assert.True(t, closed)
	})
}
