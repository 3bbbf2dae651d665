package faqgen

import (
	"regexp"
	"strings"
)

// videoKeywords mark topics that are easier to show than to tell: assembly
// and installation procedures, texture, fit, motion, appearance, unboxing.
// Matched case-insensitively against question+answer.
var videoKeywords = []string{
	// Japanese
	"組み立て", "組立", "取り付け", "取付", "使い方", "手順", "装着",
	"開封", "質感", "手触り", "サイズ感", "着心地", "動き", "見た目",
	// English
	"assemble", "assembly", "install", "how to", "set up", "setup",
	"unboxing", "texture", "fit", "motion", "movement", "appearance",
	// Chinese
	"组装", "安装", "使用方法", "开箱", "质感", "尺寸感", "外观",
}

// NeedsVideo reports whether a Q&A pair covers a topic that benefits from a
// video demonstration.
func NeedsVideo(question, answer string) bool {
	text := strings.ToLower(question + " " + answer)
	for _, kw := range videoKeywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// VideoAdvice is a one-sentence reason a video would help, plus up to two
// concrete content suggestions.
type VideoAdvice struct {
	Reason   string
	Examples []string
}

// maxVideoExamples caps the number of suggestions kept from advice output.
const maxVideoExamples = 2

var (
	adviceReasonRe  = regexp.MustCompile(`^(?i)(?:理由|Reason|原因)\s*[:：]\s*(.+)$`)
	adviceExampleRe = regexp.MustCompile(`^(?i)(?:例|Example|示例)\s*[0-9０-９]*\s*[:：]\s*(.+)$`)
)

// ParseVideoAdvice extracts labeled reason/example lines from advice-model
// output. Fields the model omitted fall back to the canned advice for the
// language, so callers never see an empty reason.
func ParseVideoAdvice(text string, lang Language) VideoAdvice {
	advice := VideoAdvice{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := adviceReasonRe.FindStringSubmatch(line); m != nil && advice.Reason == "" {
			advice.Reason = strings.TrimSpace(m[1])
			continue
		}
		if m := adviceExampleRe.FindStringSubmatch(line); m != nil && len(advice.Examples) < maxVideoExamples {
			advice.Examples = append(advice.Examples, strings.TrimSpace(m[1]))
		}
	}

	fallback := DefaultVideoAdvice(lang)
	if advice.Reason == "" {
		advice.Reason = fallback.Reason
	}
	if len(advice.Examples) == 0 {
		advice.Examples = fallback.Examples
	}
	return advice
}

// DefaultVideoAdvice returns canned advice for when the secondary model call
// fails or returns nothing usable.
func DefaultVideoAdvice(lang Language) VideoAdvice {
	switch lang {
	case LanguageEnglish:
		return VideoAdvice{
			Reason:   "This topic is easier to understand when demonstrated visually.",
			Examples: []string{"A short clip showing the product in use", "A close-up of the relevant detail"},
		}
	case LanguageChinese:
		return VideoAdvice{
			Reason:   "该内容通过视频演示更容易理解。",
			Examples: []string{"展示产品实际使用的短视频", "相关细节的特写镜头"},
		}
	default:
		return VideoAdvice{
			Reason:   "実際の様子を映像で見せたほうが伝わりやすい内容です。",
			Examples: []string{"商品を実際に使用している様子の動画", "該当部分のアップ映像"},
		}
	}
}
