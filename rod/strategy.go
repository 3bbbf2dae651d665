package rod

import (
	"context"
	"math/rand/v2"
	"net/url"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/seihin/faqgen"
)

// Navigation timeouts. The target page gets a long leash because bot-gated
// sites can stall rendering for a while before releasing content.
const (
	DefaultNavTimeout    = 90 * time.Second
	DefaultWarmupTimeout = 30 * time.Second
)

// Warm-up pause range, mimicking cookie/session bootstrapping on the top page.
const (
	warmupSleepMin = 3 * time.Second
	warmupSleepMax = 5 * time.Second
)

// desktopUserAgents is the pool a fresh browsing context draws from.
var desktopUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36",
}

// stealthJS runs before any page script and removes the obvious automation
// fingerprints: the webdriver flag, the missing chrome runtime object, and
// the permissions query quirk headless Chrome exhibits.
const stealthJS = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
window.chrome = window.chrome || { runtime: {} };
const origQuery = window.navigator.permissions.query.bind(window.navigator.permissions);
window.navigator.permissions.query = (params) =>
  params.name === 'notifications'
    ? Promise.resolve({ state: Notification.permission })
    : origQuery(params);
Object.defineProperty(navigator, 'languages', { get: () => ['ja-JP', 'ja', 'en-US'] });
`

// Ensure Strategy implements faqgen.Strategy at compile time.
var _ faqgen.Strategy = (*Strategy)(nil)

// Strategy fetches rendered HTML through a disguised headless Chrome,
// walking a top page first and performing scripted scroll/mouse activity on
// the target before capturing content.
type Strategy struct {
	manager       *BrowserManager
	steps         []Step
	navTimeout    time.Duration
	warmupTimeout time.Duration
}

// StrategyOption configures a Strategy.
type StrategyOption func(*Strategy)

// WithChoreography replaces the default emulation sequence.
func WithChoreography(steps []Step) StrategyOption {
	return func(s *Strategy) {
		s.steps = steps
	}
}

// WithNavTimeout sets the target-page navigation timeout.
func WithNavTimeout(d time.Duration) StrategyOption {
	return func(s *Strategy) {
		s.navTimeout = d
	}
}

// NewStrategy creates the browser fetch strategy on top of a BrowserManager.
func NewStrategy(manager *BrowserManager, opts ...StrategyOption) *Strategy {
	s := &Strategy{
		manager:       manager,
		steps:         DefaultChoreography(),
		navTimeout:    DefaultNavTimeout,
		warmupTimeout: DefaultWarmupTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy.
func (s *Strategy) Name() faqgen.StrategyName {
	return faqgen.StrategyBrowser
}

// Fetch renders the page in an isolated incognito context. The page is
// closed on every exit path, including mid-sequence errors.
func (s *Strategy) Fetch(ctx context.Context, target string) (*faqgen.FetchOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	incognito, err := s.manager.Browser().Incognito()
	if err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "creating browsing context: %v", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "creating page: %v", err)
	}
	defer page.Close()
	defer s.manager.PageDone()

	page = page.Context(ctx)

	if err := s.disguise(page, target); err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "preparing page: %v", err)
	}

	// Top-page warm-up is best effort; many sites 404 their root for bots
	// and the target navigation can still succeed.
	s.warmUp(ctx, page, target)

	nav := page.Timeout(s.navTimeout)
	waitIdle := nav.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := nav.Navigate(target); err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "browser navigation to %s: %v", target, err)
	}
	waitIdle()

	if err := RunChoreography(ctx, &pageDriver{page: page}, s.steps); err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "emulation sequence: %v", err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, faqgen.Errorf(faqgen.EUNAVAILABLE, "capturing rendered HTML: %v", err)
	}

	outcome := &faqgen.FetchOutcome{HTML: html, Strategy: faqgen.StrategyBrowser}

	title := ""
	if info, err := page.Info(); err == nil && info != nil {
		title = info.Title
	}
	if faqgen.BlockedTitle(title) || faqgen.LooksBlocked(html, 200) {
		outcome.Blocked = true
	}
	return outcome, nil
}

// Close releases the underlying browser.
func (s *Strategy) Close() error {
	return s.manager.Close()
}

// disguise applies the anti-fingerprinting setup: randomized desktop UA,
// JP locale and timezone, desktop viewport, referer pointing at the site's
// top page, and the stealth script injected before any page script runs.
func (s *Strategy) disguise(page *rod.Page, target string) error {
	ua := desktopUserAgents[rand.IntN(len(desktopUserAgents))]

	if err := (proto.NetworkSetUserAgentOverride{
		UserAgent:      ua,
		AcceptLanguage: "ja-JP,ja;q=0.9,en-US;q=0.8",
		Platform:       "Win32",
	}).Call(page); err != nil {
		return err
	}
	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
		Mobile:            false,
	}).Call(page); err != nil {
		return err
	}
	if err := (proto.EmulationSetTimezoneOverride{
		TimezoneID: "Asia/Tokyo",
	}).Call(page); err != nil {
		return err
	}
	if _, err := page.SetExtraHeaders([]string{"Referer", topPageURL(target)}); err != nil {
		return err
	}
	if _, err := page.EvalOnNewDocument(stealthJS); err != nil {
		return err
	}
	return nil
}

// warmUp visits the site's top page and idles like a landing visitor so the
// origin hands out session cookies before the product page is requested.
// Failures are tolerated.
func (s *Strategy) warmUp(ctx context.Context, page *rod.Page, target string) {
	top := topPageURL(target)
	if top == "" {
		return
	}

	warm := page.Timeout(s.warmupTimeout)
	waitIdle := warm.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := warm.Navigate(top); err != nil {
		return
	}
	waitIdle()

	_ = sleepRange(ctx, warmupSleepMin, warmupSleepMax)
}

// topPageURL derives the plausible same-site top page for a target URL.
func topPageURL(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/"
}

// pageDriver adapts a rod page to the choreography Driver.
type pageDriver struct {
	page *rod.Page
}

func (d *pageDriver) ScrollTo(depth float64) error {
	_, err := d.page.Eval(`(d) => window.scrollTo({ top: document.body.scrollHeight * d, behavior: "smooth" })`, depth)
	return err
}

func (d *pageDriver) ScrollTop() error {
	_, err := d.page.Eval(`() => window.scrollTo({ top: 0, behavior: "smooth" })`)
	return err
}

func (d *pageDriver) MouseMove(x, y float64) error {
	return d.page.Mouse.MoveTo(proto.Point{X: x, Y: y})
}
