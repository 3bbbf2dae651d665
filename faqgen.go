// Package faqgen turns retail product pages into curated question/answer
// pairs. It fetches HTML from sites that resist automated access using a
// layered strategy chain, distills the page down to product-only text, and
// drives a language model to produce a fixed number of Q&A pairs in a target
// language.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, gemini/).
package faqgen
