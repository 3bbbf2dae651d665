package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/seihin/faqgen"
	"github.com/seihin/faqgen/htmltomarkdown"
	"github.com/seihin/faqgen/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements faqgen.Extractor at compile time.
var _ faqgen.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and drops navigation", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>撥水アウトドアキャップ | Seihin Outdoor</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">ホーム</a></li>
<li><a href="/category/caps">帽子一覧</a></li>
</ul>
</nav>
<article>
<h1>撥水アウトドアキャップ</h1>
<p>軽量で通気性に優れたアウトドア用キャップです。後頭部のアジャスターでサイズ調整ができ、撥水加工を施した生地を使用しているため小雨でも快適に着用できます。</p>
<p>素材はポリエステル100%で、重量は約60gです。</p>
</article>
<footer>Copyright 2026 Seihin Outdoor</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor(htmltomarkdown.NewConverter())
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, faqgen.MethodDOMHarvest, result.Method)
		assert.Contains(t, result.Text, "軽量で通気性に優れた")
		assert.Contains(t, result.Text, "ポリエステル100%")
		assert.NotContains(t, result.Text, "main-nav")
		assert.NotContains(t, result.Text, "Copyright 2026")
	})

	t.Run("renders markdown headings", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Product</title></head>
<body>
<article>
<h1>Waterproof Cap</h1>
<p>A lightweight, breathable outdoor cap with an adjustable strap and water-repellent fabric suitable for light rain.</p>
<h2>Materials</h2>
<p>100% polyester shell, weighs about 60 grams, machine washable on a gentle cycle.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor(htmltomarkdown.NewConverter())
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Waterproof Cap")
		assert.Contains(t, result.Text, "Materials")
		assert.Contains(t, result.Text, "100% polyester")
	})

	t.Run("flags thin pages as low content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>短い説明。</p></body></html>`

		ext := trafilatura.NewExtractor(htmltomarkdown.NewConverter())
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.True(t, result.LowContent)
	})

	t.Run("long content is not flagged", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><h1>Cap</h1><p>` +
			strings.Repeat("This cap is lightweight, breathable and water repellent. ", 10) +
			`</p></article></body></html>`

		ext := trafilatura.NewExtractor(htmltomarkdown.NewConverter())
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.False(t, result.LowContent)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor(htmltomarkdown.NewConverter())
		_, err := ext.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, faqgen.EINVALID, faqgen.ErrorCode(err))
	})
}
