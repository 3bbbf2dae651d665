package goquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// productRecord mirrors the subset of a schema.org Product block the pipeline
// trusts. Availability and stock fields are deliberately absent: carrying them
// forward leads straight to inventory questions downstream.
type productRecord struct {
	Name        string
	Description string
	Category    string
	Brand       string
	Price       string
	Size        string
	Color       string
	SKU         string
}

// extractStructured scans every ld+json block in the document and returns a
// fixed-field text rendering of the first recognized Product record, or ""
// when no usable record exists. Malformed JSON blocks are skipped silently.
func extractStructured(doc *goquery.Document) string {
	var record *productRecord
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var raw any
		if err := json.Unmarshal([]byte(sel.Text()), &raw); err != nil {
			return true
		}
		if r := findProduct(raw); r != nil {
			record = r
			return false
		}
		return true
	})
	if record == nil {
		return ""
	}
	return record.render()
}

// findProduct walks a decoded ld+json value looking for a Product node. Blocks
// in the wild wrap products in arrays and @graph containers, so both are
// traversed.
func findProduct(raw any) *productRecord {
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			if r := findProduct(item); r != nil {
				return r
			}
		}
	case map[string]any:
		if isProductType(v["@type"]) {
			return newProductRecord(v)
		}
		if graph, ok := v["@graph"]; ok {
			return findProduct(graph)
		}
	}
	return nil
}

func isProductType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Product"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Product" {
				return true
			}
		}
	}
	return false
}

func newProductRecord(node map[string]any) *productRecord {
	return &productRecord{
		Name:        stringField(node["name"]),
		Description: stringField(node["description"]),
		Category:    stringField(node["category"]),
		Brand:       nameOrString(node["brand"]),
		Price:       offerPrice(node["offers"]),
		Size:        stringField(node["size"]),
		Color:       stringField(node["color"]),
		SKU:         stringField(node["sku"]),
	}
}

func stringField(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// nameOrString handles fields that appear either as a plain string or as a
// nested entity with a name, like brand.
func nameOrString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		return stringField(t["name"])
	}
	return ""
}

// offerPrice digs the price out of an offers value, which may be a single
// Offer, a list of Offers, or an AggregateOffer with lowPrice.
func offerPrice(v any) string {
	switch t := v.(type) {
	case map[string]any:
		if p := priceField(t["price"]); p != "" {
			return p
		}
		return priceField(t["lowPrice"])
	case []any:
		for _, item := range t {
			if p := offerPrice(item); p != "" {
				return p
			}
		}
	}
	return ""
}

func priceField(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	}
	return ""
}

// render produces the fixed-field text record. Field labels are Japanese
// because the primary audience of the generated FAQ is Japanese shoppers;
// the model is instructed per-language downstream, so the labels only need
// to be consistent, not localized.
func (r *productRecord) render() string {
	var b strings.Builder
	write := func(label, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
	}

	write("商品名", r.Name)
	write("説明", r.Description)
	write("カテゴリ", r.Category)
	write("ブランド", r.Brand)
	if r.Price != "" {
		write("価格", r.Price+"円")
	}
	write("サイズ", r.Size)
	write("色", r.Color)
	write("SKU", r.SKU)
	return b.String()
}
