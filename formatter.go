package faqgen

import (
	"fmt"
	"strings"
)

// FormatItems renders items as a markdown FAQ document.
// Items are numbered in order; video recommendations and compliance warnings
// appear as blockquotes under the answer.
func FormatItems(items []*QAItem) string {
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for i, item := range items {
		var sb strings.Builder
		fmt.Fprintf(&sb, "## Q%d. %s\n\n%s\n", i+1, item.Question, item.Answer)
		if item.NeedsVideo {
			fmt.Fprintf(&sb, "\n> Video: %s\n", item.VideoReason)
			for _, ex := range item.VideoExamples {
				fmt.Fprintf(&sb, "> - %s\n", ex)
			}
		}
		if item.ComplianceWarning {
			sb.WriteString("\n> Warning: contains an expression that may require legal review.\n")
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n")
}
