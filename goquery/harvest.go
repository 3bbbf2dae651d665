package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seihin/faqgen"
)

// containerSelectors is probed in order from most to least specific. The
// first candidate with enough text wins; the document body is the fallback.
var containerSelectors = []string{
	".product-detail",
	".product-details",
	".product-main",
	".item-detail",
	"#product-detail",
	"#item-detail",
	"[itemtype*='Product']",
	".product",
	".item",
	".goods",
	"main",
	"article",
}

// harvestTier defines one priority tier of the DOM harvest: where to look and
// how long a fragment must be to count as signal rather than noise at that
// tier.
type harvestTier struct {
	priority    int
	selector    string
	minChars    int
	maxChars    int
	phraseGuard bool // generic tier only
}

var harvestTiers = []harvestTier{
	{
		priority: faqgen.PriorityTitle,
		selector: "h1, h2, h3, .product-name, .product-title, .item-name, [itemprop='name']",
		minChars: 5,
		maxChars: 500,
	},
	{
		priority: faqgen.PriorityDescription,
		selector: ".description, .product-description, .item-description, .spec, .product-spec, .feature, .detail-text, [itemprop='description']",
		minChars: 50,
		maxChars: 0,
	},
	{
		priority: faqgen.PriorityPrice,
		selector: ".price, .product-price, .item-price, [itemprop='price'], [itemprop='offers']",
		minChars: 10,
		maxChars: 300,
	},
	{
		priority:    faqgen.PriorityGeneric,
		selector:    "p, div, section",
		minChars:    30,
		maxChars:    1000,
		phraseGuard: true,
	},
}

// selectContainer returns the most specific container with a useful amount of
// text, or the whole document when nothing qualifies.
func selectContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range containerSelectors {
		candidate := doc.Find(selector).First()
		if candidate.Length() == 0 {
			continue
		}
		if len(strings.TrimSpace(candidate.Text())) > faqgen.MinUsefulChars {
			return candidate
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// harvest collects text fragments from the container in four priority tiers
// and returns them sorted ascending by tier. A generic-tier fragment that is
// contained in (or contains) an already-collected fragment is skipped, as are
// generic fragments carrying store-mechanics phrases.
func harvest(container *goquery.Selection) []faqgen.PrioritySection {
	var sections []faqgen.PrioritySection

	for _, tier := range harvestTiers {
		container.Find(tier.selector).Each(func(_ int, sel *goquery.Selection) {
			text := normalizeSpace(sel.Text())
			if len(text) < tier.minChars {
				return
			}
			if tier.maxChars > 0 && len(text) > tier.maxChars {
				return
			}
			if tier.phraseGuard && containsNoisePhrase(text) {
				return
			}
			if overlapsExisting(sections, text) {
				return
			}
			sections = append(sections, faqgen.PrioritySection{Text: text, Priority: tier.priority})
		})
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Priority < sections[j].Priority
	})
	return sections
}

// overlapsExisting reports whether text duplicates an already-collected
// section in either direction. The generic tier walks nested divs, so a
// parent's text routinely contains a child's.
func overlapsExisting(sections []faqgen.PrioritySection, text string) bool {
	for _, section := range sections {
		if strings.Contains(section.Text, text) || strings.Contains(text, section.Text) {
			return true
		}
	}
	return false
}

func sectionCounts(sections []faqgen.PrioritySection) map[int]int {
	counts := make(map[int]int)
	for _, section := range sections {
		counts[section.Priority]++
	}
	return counts
}

// normalizeSpace collapses all runs of whitespace, including newlines, to a
// single space.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
