package faqgen_test

import (
	"testing"

	"github.com/seihin/faqgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	t.Parallel()

	t.Run("numbered pairs", func(t *testing.T) {
		t.Parallel()

		text := "Q1: What material is the cap made of?\nA1: Cotton twill.\nQ2: Is it washable?\nA2: Yes, hand wash only."

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 2)
		assert.Equal(t, "What material is the cap made of?", got[0].Question)
		assert.Equal(t, "Cotton twill.", got[0].Answer)
		assert.Equal(t, "Is it washable?", got[1].Question)
		assert.Equal(t, "Yes, hand wash only.", got[1].Answer)
	})

	t.Run("full-width labels and colons", func(t *testing.T) {
		t.Parallel()

		text := "Ｑ１：素材は何ですか\nＡ１：綿100%です"

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 1)
		assert.Equal(t, "素材は何ですか", got[0].Question)
		assert.Equal(t, "綿100%です", got[0].Answer)
	})

	t.Run("wrapped answer lines are continuations", func(t *testing.T) {
		t.Parallel()

		text := "Q: How big is it?\nA: The cap measures 58cm around\nand fits most adults."

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 1)
		assert.Equal(t, "The cap measures 58cm around and fits most adults.", got[0].Answer)
	})

	t.Run("type lines attach to the current pair", func(t *testing.T) {
		t.Parallel()

		text := "Q1: Is it waterproof?\nA1: No, it is not.\nType1: suggested\nQ2: What color is it?\nA2: Navy blue.\nType2: collected"

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 2)
		assert.Equal(t, faqgen.QASuggested, got[0].Type)
		assert.Equal(t, faqgen.QACollected, got[1].Type)
	})

	t.Run("unrecognized type label maps to empty", func(t *testing.T) {
		t.Parallel()

		text := "Q: A?\nA: B.\nType: whatever"

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 1)
		assert.Empty(t, got[0].Type)
	})

	t.Run("question without answer is dropped", func(t *testing.T) {
		t.Parallel()

		text := "Q1: Orphan question?\nQ2: Real question?\nA2: Real answer."

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 1)
		assert.Equal(t, "Real question?", got[0].Question)
	})

	t.Run("preamble before the first question is ignored", func(t *testing.T) {
		t.Parallel()

		text := "Here are the pairs you asked for:\n\nQ1: One?\nA1: Yes."

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 1)
	})

	t.Run("final in-progress pair is flushed", func(t *testing.T) {
		t.Parallel()

		text := "Q1: Last?\nA1: Flushed at end of input"

		got := faqgen.ParseCandidates(text)

		require.Len(t, got, 1)
		assert.Equal(t, "Flushed at end of input", got[0].Answer)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, faqgen.ParseCandidates(""))
	})
}
