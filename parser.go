package faqgen

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// parseState tracks which field of the current pair is open.
type parseState int

const (
	awaitingQuestion parseState = iota
	inQuestion
	inAnswer
	inType
)

// Label patterns tolerate numbering ("Q3:"), case drift, and full-width
// letters and colons, because the model output is not schema-constrained.
var (
	questionRe = regexp.MustCompile(`^(?i)[QＱ]\s*[0-9０-９]*\s*[:：.．]\s*(.*)$`)
	answerRe   = regexp.MustCompile(`^(?i)[AＡ]\s*[0-9０-９]*\s*[:：.．]\s*(.*)$`)
	typeRe     = regexp.MustCompile(`^(?i)Type\s*[0-9０-９]*\s*[:：]\s*(.*)$`)
)

// ParseCandidates runs a line-oriented state machine over model output and
// returns the complete question/answer pairs it contains. A question line
// flushes the previous complete pair; unlabeled non-empty lines continue
// whichever field is currently open, so wrapped lines do not lose pairs.
// The final in-progress pair is flushed at end of input.
func ParseCandidates(text string) []QACandidate {
	var (
		out      []QACandidate
		state    = awaitingQuestion
		question string
		answer   string
		qaType   QAType
	)

	flush := func() {
		q := strings.TrimSpace(question)
		a := strings.TrimSpace(answer)
		if q != "" && a != "" {
			out = append(out, QACandidate{Question: q, Answer: a, Type: qaType})
		}
		question, answer, qaType = "", "", ""
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := questionRe.FindStringSubmatch(line); m != nil {
			flush()
			question = m[1]
			state = inQuestion
			continue
		}
		if m := answerRe.FindStringSubmatch(line); m != nil && state != awaitingQuestion {
			answer = m[1]
			state = inAnswer
			continue
		}
		if m := typeRe.FindStringSubmatch(line); m != nil && state != awaitingQuestion {
			qaType = normalizeType(m[1])
			state = inType
			continue
		}

		// Continuation of the open field.
		switch state {
		case inQuestion:
			question = joinContinuation(question, line)
		case inAnswer:
			answer = joinContinuation(answer, line)
		}
	}
	flush()

	return out
}

// joinContinuation appends a wrapped line to an open field. CJK text joins
// without a separator; Latin text keeps a single space.
func joinContinuation(field, line string) string {
	if field == "" {
		return line
	}
	last, _ := utf8.DecodeLastRuneInString(field)
	if last < 0x80 {
		return field + " " + line
	}
	return field + line
}

// normalizeType maps a free-text type label to a QAType. Unrecognized labels
// map to the empty type so the engine can apply its mode default.
func normalizeType(label string) QAType {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(l, "suggest"), strings.Contains(l, "提案"), strings.Contains(l, "推測"), strings.Contains(l, "建议"):
		return QASuggested
	case strings.Contains(l, "collect"), strings.Contains(l, "収集"), strings.Contains(l, "收集"):
		return QACollected
	}
	return ""
}
