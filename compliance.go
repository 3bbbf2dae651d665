package faqgen

import "strings"

// prohibitedExpressions are advertising claims that trip advertising-law
// review. Matching one only sets an advisory flag; it never blocks output.
var prohibitedExpressions = []string{
	"完治", "絶対に治る", "必ず痩せ", "副作用が一切ない", "世界一",
	"永久に", "誰でも必ず", "100%効果", "医薬品と同等",
	"no.1", "number one", "guaranteed to cure", "miracle",
}

// HasComplianceRisk reports whether text contains a prohibited advertising
// expression. Plain substring scan, case-insensitive.
func HasComplianceRisk(text string) bool {
	t := strings.ToLower(text)
	for _, expr := range prohibitedExpressions {
		if strings.Contains(t, expr) {
			return true
		}
	}
	return false
}
