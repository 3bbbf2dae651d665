package faqgen

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// nearDupPrefixRunes is how many leading characters of a lower-cased
// question participate in near-duplicate comparison.
const nearDupPrefixRunes = 50

// Dedupe removes duplicate candidates, first-seen wins. A candidate is a
// duplicate when its lower-cased trimmed question or answer matches exactly,
// or when the first 50 characters of its lower-cased question match an
// earlier candidate (catches near-identical rephrasings).
func Dedupe(in []QACandidate) []QACandidate {
	seenQ := make(map[uint64]struct{}, len(in))
	seenA := make(map[uint64]struct{}, len(in))
	seenPrefix := make(map[uint64]struct{}, len(in))

	out := make([]QACandidate, 0, len(in))
	for _, c := range in {
		q := strings.ToLower(strings.TrimSpace(c.Question))
		a := strings.ToLower(strings.TrimSpace(c.Answer))
		if q == "" || a == "" {
			continue
		}

		qKey := xxhash.Sum64String(q)
		aKey := xxhash.Sum64String(a)
		pKey := xxhash.Sum64String(runePrefix(q, nearDupPrefixRunes))

		if _, dup := seenQ[qKey]; dup {
			continue
		}
		if _, dup := seenA[aKey]; dup {
			continue
		}
		if _, dup := seenPrefix[pKey]; dup {
			continue
		}

		seenQ[qKey] = struct{}{}
		seenA[aKey] = struct{}{}
		seenPrefix[pKey] = struct{}{}
		out = append(out, c)
	}
	return out
}

// runePrefix returns the first n runes of s. Rune-based so Japanese and
// Chinese questions compare by character, not byte.
func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
