package faqgen

import (
	"context"
	"strings"
)

// StrategyName identifies a fetch strategy.
type StrategyName string

// Fetch strategies in escalation order.
const (
	StrategyHTTP    StrategyName = "http"
	StrategyBrowser StrategyName = "browser"
	StrategyLenient StrategyName = "lenient"
)

// FetchOutcome is the result of a single logical fetch.
type FetchOutcome struct {
	// HTML is the page body. Never empty on a nil-error return; the lenient
	// strategy substitutes a placeholder document when nothing else exists.
	HTML string

	// Strategy is the strategy that produced HTML.
	Strategy StrategyName

	// Blocked signals that HTML is likely a denial page even though the
	// strategy succeeded in the HTTP sense.
	Blocked bool
}

// Strategy retrieves HTML from a URL in one particular way.
// Implementations classify block pages themselves: a received-but-denied
// response is a nil-error outcome with Blocked set, so the orchestrator
// escalates instead of retrying. Errors are reserved for network-class
// failures where no usable response exists.
type Strategy interface {
	// Name identifies the strategy for bookkeeping and logging.
	Name() StrategyName

	// Fetch retrieves the page. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchOutcome, error)

	// Close releases any resources held by the strategy (browser processes).
	// Must be called when the Strategy is no longer needed.
	Close() error
}

// MinPlausibleBodyBytes is the body size below which a response carrying a
// block marker is treated as a denial page regardless of its status code.
const MinPlausibleBodyBytes = 1000

// blockMarkers are substrings that bot-defense denial pages tend to carry.
var blockMarkers = []string{"403 Forbidden", "Access Denied", "Forbidden"}

// LooksBlocked reports whether a response body is likely a block page.
// A marker alone is not enough: it must coincide with an explicit 403 status
// or an implausibly small body. A legitimately rendered page whose own copy
// mentions "403 Forbidden" can still trip this; that is a known limitation
// of substring-based detection, accepted rather than tuned around.
func LooksBlocked(body string, statusCode int) bool {
	marked := false
	for _, m := range blockMarkers {
		if strings.Contains(body, m) {
			marked = true
			break
		}
	}
	if !marked {
		return false
	}
	return statusCode == 403 || len(body) < MinPlausibleBodyBytes
}

// BlockedTitle reports whether a rendered page title indicates denial.
// Used by the browser strategy, which sees the post-JavaScript title.
func BlockedTitle(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "403") || strings.Contains(t, "forbidden")
}
