package generate

import (
	"fmt"
	"strings"

	"github.com/seihin/faqgen"
)

// Model selection. The advice model is smaller and cheaper because its output
// is two short labeled lines, not a full Q&A set.
const (
	generationModel = "gemini-2.5-flash"
	adviceModel     = "gemini-2.5-flash-lite"
)

// maxTokensFor sizes the output budget to the requested pair count. Each pair
// costs roughly 120 tokens; the base covers preamble and formatting drift.
func maxTokensFor(count int) int32 {
	tokens := int32(count)*120 + 1500
	if tokens > 8192 {
		tokens = 8192
	}
	return tokens
}

// promptTemplate holds the per-language building blocks of a generation
// prompt.
type promptTemplate struct {
	system       string
	task         string // fmt: target count
	strictRule   string
	lenientRule  string
	scopeRule    string
	format       string
	typeFormat   string // appended in mixed mode
	recheck      string
	supplement   string // fmt: additional count
	existingHead string
}

var promptTemplates = map[faqgen.Language]promptTemplate{
	faqgen.LanguageJapanese: {
		system:       "あなたはECサイトの商品FAQを作成する専門家です。",
		task:         "以下の商品情報をもとに、購入検討者が実際に知りたい質問と回答のペアを%d組作成してください。",
		strictRule:   "回答は与えられた商品情報に書かれている内容のみから作成してください。推測で情報を補わないでください。",
		lenientRule:  "商品情報はOCRで読み取ったテキストのため、誤字や欠落があります。文脈から妥当に補完して構いません。",
		scopeRule:    "質問と回答は商品そのものの物理的・機能的な特徴に限定してください。在庫、購入方法、送料、配送、会員登録、レビューなどサイトの仕組みに関する話題は絶対に含めないでください。",
		format:       "出力形式:\nQ1: 質問文\nA1: 回答文\nQ2: 質問文\nA2: 回答文\n(以下同様)",
		typeFormat:   "各ペアの後に Type1: 収集 または Type1: 提案 の形式で、回答が商品情報から収集したものか、一般知識からの提案かを記載してください。",
		recheck:      "出力前に全ペアを見直し、在庫・購入・送料・配送・会員・レビューに触れるペアがあれば削除してください。",
		supplement:   "既出の質問と重複しない新しい質問と回答のペアを%d組、追加で作成してください。",
		existingHead: "既出の質問:",
	},
	faqgen.LanguageEnglish: {
		system:       "You are an expert at writing product FAQs for e-commerce sites.",
		task:         "Based on the product information below, write %d question and answer pairs that prospective buyers would actually ask.",
		strictRule:   "Answers must derive only from the given product information. Do not fill gaps with guesses.",
		lenientRule:  "The product information was read by OCR and contains typos and gaps. Reasonable completion from context is fine.",
		scopeRule:    "Questions and answers must be limited to the physical and functional attributes of the product itself. Never mention stock, purchasing, shipping, delivery, accounts, or reviews.",
		format:       "Output format:\nQ1: question\nA1: answer\nQ2: question\nA2: answer\n(and so on)",
		typeFormat:   "After each pair, add Type1: collected or Type1: suggested depending on whether the answer was collected from the product information or suggested from general knowledge.",
		recheck:      "Before finishing, re-check every pair and delete any that touches stock, purchasing, shipping, delivery, accounts or reviews.",
		supplement:   "Write %d additional question and answer pairs that do not duplicate the questions already produced.",
		existingHead: "Questions already produced:",
	},
	faqgen.LanguageChinese: {
		system:       "你是电商网站商品FAQ的撰写专家。",
		task:         "请根据以下商品信息，撰写%d组潜在买家真正想问的问题和回答。",
		strictRule:   "回答只能来自给定的商品信息，不要凭猜测补充内容。",
		lenientRule:  "商品信息由OCR识别，可能有错字和缺失，可以根据上下文合理补全。",
		scopeRule:    "问题和回答仅限于商品本身的物理和功能特征。绝对不要提及库存、购买方式、运费、配送、会员注册或评价等网站机制。",
		format:       "输出格式:\nQ1: 问题\nA1: 回答\nQ2: 问题\nA2: 回答\n(以此类推)",
		typeFormat:   "每组之后请以 Type1: 收集 或 Type1: 建议 的格式注明回答是来自商品信息还是一般知识。",
		recheck:      "输出前请检查所有问答，删除涉及库存、购买、运费、配送、会员或评价的内容。",
		supplement:   "请再撰写%d组与已有问题不重复的新问答。",
		existingHead: "已有的问题:",
	},
}

// templateFor returns the template for a language, defaulting to Japanese.
func templateFor(lang faqgen.Language) promptTemplate {
	if tpl, ok := promptTemplates[lang]; ok {
		return tpl
	}
	return promptTemplates[faqgen.LanguageJapanese]
}

// buildPrompt assembles the generation prompt for a request.
func buildPrompt(req faqgen.GenerationRequest) (system, prompt string) {
	tpl := templateFor(req.Language)

	var b strings.Builder
	fmt.Fprintf(&b, tpl.task, req.TargetCount)
	b.WriteString("\n\n")
	if req.OCR {
		b.WriteString(tpl.lenientRule)
	} else {
		b.WriteString(tpl.strictRule)
	}
	b.WriteString("\n")
	b.WriteString(tpl.scopeRule)
	b.WriteString("\n\n")
	b.WriteString(tpl.format)
	if req.Type == faqgen.QAMixed {
		b.WriteString("\n")
		b.WriteString(tpl.typeFormat)
	}
	b.WriteString("\n\n")
	b.WriteString(tpl.recheck)
	b.WriteString("\n\n")
	b.WriteString(req.Content)

	return tpl.system, b.String()
}

// buildSupplementPrompt assembles the single follow-up prompt issued on
// under-generation. Existing questions are embedded as a negative constraint.
func buildSupplementPrompt(req faqgen.GenerationRequest, existing []faqgen.QACandidate, additional int) (system, prompt string) {
	tpl := templateFor(req.Language)

	var b strings.Builder
	fmt.Fprintf(&b, tpl.supplement, additional)
	b.WriteString("\n")
	if req.OCR {
		b.WriteString(tpl.lenientRule)
	} else {
		b.WriteString(tpl.strictRule)
	}
	b.WriteString("\n")
	b.WriteString(tpl.scopeRule)
	b.WriteString("\n\n")
	b.WriteString(tpl.existingHead)
	b.WriteString("\n")
	for _, c := range existing {
		b.WriteString("- ")
		b.WriteString(c.Question)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tpl.format)
	if req.Type == faqgen.QAMixed {
		b.WriteString("\n")
		b.WriteString(tpl.typeFormat)
	}
	b.WriteString("\n\n")
	b.WriteString(req.Content)

	return tpl.system, b.String()
}

// buildAdvicePrompt assembles the secondary prompt asking why a video would
// help for one Q&A pair, with labeled output lines the advice parser expects.
func buildAdvicePrompt(question, answer string, lang faqgen.Language) string {
	switch lang {
	case faqgen.LanguageEnglish:
		return fmt.Sprintf("For the product Q&A below, explain in one sentence why a video would help, and suggest up to two concrete video contents.\n\nOutput format:\nReason: ...\nExample1: ...\nExample2: ...\n\nQ: %s\nA: %s", question, answer)
	case faqgen.LanguageChinese:
		return fmt.Sprintf("针对以下商品问答，请用一句话说明视频为何有帮助，并提出最多两个具体的视频内容建议。\n\n输出格式:\n原因: ...\n示例1: ...\n示例2: ...\n\nQ: %s\nA: %s", question, answer)
	default:
		return fmt.Sprintf("以下の商品Q&Aについて、動画があると伝わりやすい理由を一文で説明し、具体的な動画内容の案を最大2つ提案してください。\n\n出力形式:\n理由: ...\n例1: ...\n例2: ...\n\nQ: %s\nA: %s", question, answer)
	}
}
