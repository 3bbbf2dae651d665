package htmltomarkdown_test

import (
	"testing"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements faqgen.Converter at compile time.
var _ faqgen.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>軽量で通気性に優れたキャップです。</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "軽量で通気性に優れたキャップです。")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>商品説明</h1><h2>素材</h2>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# 商品説明")
		assert.Contains(t, md, "## 素材")
	})

	t.Run("converts spec tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>素材</th><th>重量</th></tr><tr><td>ポリエステル</td><td>60g</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "素材")
		assert.Contains(t, md, "ポリエステル")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>撥水加工</li><li>サイズ調整可能</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- 撥水加工")
		assert.Contains(t, md, "- サイズ調整可能")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, faqgen.EINVALID, faqgen.ErrorCode(err))
	})
}
