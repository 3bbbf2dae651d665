package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseCategories are class/id fragments that mark elements as site chrome
// rather than product content. Each category may carry allow fragments:
// an element matching a noise fragment survives if its class/id also matches
// an allow fragment, so "product-nav" style containers are kept.
var noiseCategories = []struct {
	fragments []string
	allow     []string
}{
	{fragments: []string{"nav", "menu", "breadcrumb"}, allow: []string{"product", "item", "goods"}},
	{fragments: []string{"sidebar", "side-bar", "aside"}, allow: []string{"product"}},
	{fragments: []string{"banner", "advert", "promo", "campaign"}, allow: nil},
	{fragments: []string{"social", "share", "sns"}, allow: nil},
	{fragments: []string{"review", "rating", "kuchikomi"}, allow: nil},
	{fragments: []string{"policy", "legal", "terms", "privacy"}, allow: nil},
	{fragments: []string{"help", "contact", "inquiry", "support"}, allow: nil},
	{fragments: []string{"account", "login", "mypage", "member"}, allow: nil},
	{fragments: []string{"checkout", "payment", "order-flow"}, allow: []string{"product"}},
	{fragments: []string{"recommend", "ranking", "recently-viewed"}, allow: nil},
}

// noisePhrases mark elements whose visible text is about store mechanics
// rather than the product itself. Text content is the strongest signal: it
// removes a store-stock widget no matter how generic its markup is. The same
// list guards the generic harvest tier.
var noisePhrases = []string{
	"在庫を確認",
	"店舗在庫",
	"在庫あり",
	"在庫なし",
	"再入荷",
	"ログイン",
	"会員登録",
	"マイページ",
	"ポイント還元",
	"ポイントが貯まる",
	"カートに入れる",
	"お気に入りに追加",
	"レビューを書く",
	"check store stock",
	"in stock",
	"out of stock",
	"sign in",
	"log in",
	"add to cart",
	"add to wishlist",
	"write a review",
}

// sentencePhrases extends noisePhrases for the final sentence-level pass.
// Shipping, FAQ and points copy routinely survives the structural passes
// inside otherwise-legitimate description blocks.
var sentencePhrases = append([]string{
	"送料",
	"配送について",
	"お届けについて",
	"よくある質問",
	"返品・交換",
	"ギフトラッピング",
	"ポイント",
	"クーポン",
	"メルマガ",
	"shipping fee",
	"free shipping",
	"delivery time",
	"return policy",
	"faq",
	"newsletter",
	"coupon",
}, noisePhrases...)

// maxNoiseWidgetChars bounds the text-content removal pass to widget-sized
// elements.
const maxNoiseWidgetChars = 200

// removeNoise strips site chrome from the document in four ordered passes:
// non-content nodes, structural chrome, class/id noise categories, forms,
// and finally any element whose visible text carries a store-mechanics
// phrase. The passes overlap on purpose; each catches noise the others miss.
func removeNoise(doc *goquery.Document) {
	doc.Find("script, style, noscript, meta, link, iframe, svg").Remove()
	doc.Find("nav, header, footer").Remove()

	for _, category := range noiseCategories {
		for _, fragment := range category.fragments {
			selector := `[class*="` + fragment + `"], [id*="` + fragment + `"]`
			doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
				if matchesAllow(sel, category.allow) {
					return
				}
				sel.Remove()
			})
		}
	}

	// Forms are chrome unless they configure the product itself.
	doc.Find("form, input, select, button, textarea").Each(func(_ int, sel *goquery.Selection) {
		if matchesAllow(sel, []string{"product", "cart", "size", "color"}) {
			return
		}
		sel.Remove()
	})

	// The length bound keeps this pass from swallowing page-level containers
	// that merely enclose a noisy widget somewhere deep inside.
	doc.Find("div, section, aside, ul, table").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 0 && len(text) <= maxNoiseWidgetChars && containsNoisePhrase(text) {
			sel.Remove()
		}
	})
}

// matchesAllow reports whether the element's class or id contains any of the
// allow fragments.
func matchesAllow(sel *goquery.Selection, allow []string) bool {
	if len(allow) == 0 {
		return false
	}
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	attrs := strings.ToLower(class + " " + id)
	for _, fragment := range allow {
		if strings.Contains(attrs, fragment) {
			return true
		}
	}
	return false
}

func containsNoisePhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range noisePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func containsSentencePhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range sentencePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
