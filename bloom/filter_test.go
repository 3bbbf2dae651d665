package bloom_test

import (
	"testing"

	"github.com/seihin/faqgen/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenFilter(t *testing.T) {
	t.Parallel()

	f := bloom.NewSeenFilter(100, 0.01)

	assert.False(t, f.Seen("https://shop.example/items/cap-a"))

	f.Remember("https://shop.example/items/cap-a")

	assert.True(t, f.Seen("https://shop.example/items/cap-a"))
	assert.False(t, f.Seen("https://shop.example/items/cap-b"))
}
