package device

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classifier maps a request snapshot to a device using ordered heuristics.
// It holds only read-only data and is safe for concurrent use.
type Classifier struct {
	factory Factory

	normalKeywords []string
	tabletKeywords []string
	mobilePrefixes []string
	mobileKeywords []string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithFactory overrides the factory built from the config codes.
func WithFactory(f Factory) Option {
	return func(c *Classifier) {
		if f != nil {
			c.factory = f
		}
	}
}

// NewClassifier merges the built-in tables with the configured extras once.
// It fails only when the configured subdomain codes are invalid.
func NewClassifier(cfg Config, opts ...Option) (*Classifier, error) {
	c := &Classifier{
		normalKeywords: merge(nil, cfg.NormalKeywords),
		tabletKeywords: merge(knownTabletKeywords, cfg.TabletKeywords),
		mobilePrefixes: merge(knownMobilePrefixes, cfg.MobilePrefixes),
		mobileKeywords: merge(knownMobileKeywords, cfg.MobileKeywords),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.factory == nil {
		f, err := NewFactory(codeOrDefault(cfg.MobileCode, DefaultMobileCode), codeOrDefault(cfg.TabletCode, DefaultTabletCode))
		if err != nil {
			return nil, err
		}
		c.factory = f
	}
	return c, nil
}

// Classify is a one-shot helper for callers without a long-lived Classifier.
// Invalid codes in cfg fall back to the default labels, so it never fails.
func Classify(s Snapshot, cfg Config) Device {
	c, err := NewClassifier(cfg)
	if err != nil {
		c, _ = NewClassifier(cfg, WithFactory(DefaultFactory))
	}
	return c.Classify(s)
}

// Classify returns the device category for s. The first matching rule wins:
//
//  1. agent contains a configured normal keyword → normal
//  2. agent contains a tablet keyword and not "mobile", or contains "ipad" → tablet
//  3. x-wap-profile header (with an agent present) or Profile header → mobile
//  4. agent starts with a known vendor prefix → mobile
//  5. an Accept value equals "wap" → mobile
//  6. agent contains a mobile keyword → mobile
//  7. any header value contains "OperaMini" → mobile
//
// Anything else is normal. Missing data only disables the rules that need it.
func (c *Classifier) Classify(s Snapshot) Device {
	raw, hasAgent := s.UserAgent()
	agent := ""
	if hasAgent {
		// Caser keeps state, so one per call.
		agent = cases.Lower(language.Und).String(raw)
	}

	if hasAgent && containsAny(agent, c.normalKeywords) {
		return c.factory.Normal()
	}

	if hasAgent && c.isTablet(agent) {
		return c.factory.Tablet()
	}

	// x-wap-profile only counts alongside an agent; Profile counts on its own.
	if (hasAgent && s.HasHeader(HeaderWapProfile)) || s.HasHeader(HeaderProfile) {
		return c.factory.Mobile()
	}

	if hasAgent && len(agent) >= minPrefixLength && hasAnyPrefix(agent, c.mobilePrefixes) {
		return c.factory.Mobile()
	}

	for _, accept := range s.HeaderValues(HeaderAccept) {
		if strings.EqualFold(accept, acceptWap) {
			return c.factory.Mobile()
		}
	}

	if hasAgent && containsAny(agent, c.mobileKeywords) {
		return c.factory.Mobile()
	}

	if s.anyHeaderValueContains(operaMiniMarker) {
		return c.factory.Mobile()
	}

	return c.factory.Normal()
}

// isTablet treats "ipad" as a tablet even when the agent also says "mobile".
func (c *Classifier) isTablet(agent string) bool {
	if strings.Contains(agent, ipadMarker) {
		return true
	}
	if strings.Contains(agent, mobileMarker) {
		return false
	}
	return containsAny(agent, c.tabletKeywords)
}

// Factory returns the factory the classifier builds devices with.
func (c *Classifier) Factory() Factory { return c.factory }

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func codeOrDefault(code, def string) string {
	if strings.TrimSpace(code) == "" {
		return def
	}
	return code
}
