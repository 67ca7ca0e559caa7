// Package device classifies an HTTP request as coming from a normal (desktop-like),
// mobile or tablet client.
//
// Classification looks only at request metadata: the User-Agent, the legacy UAProf
// headers (x-wap-profile, Profile), the Accept header and, as a last resort, every
// header value. It is not a user-agent parser: no browser, OS or version is
// extracted. Use pkg/preference to layer an explicit user choice on top of it.
//
// # Rules
//
// Classifier.Classify evaluates the rules below in order and returns on the first
// match. Order matters: earlier, more specific rules pre-empt the broad keyword scan.
//
//  1. Normal keyword override (configured only).
//  2. Tablet keywords ("ipad", "playbook", "hp-tablet", "kindle" plus extras) unless the
//     agent also says "mobile". "ipad" always wins.
//  3. UAProf headers.
//  4. Four-character vendor prefixes ("doco", "noki", "sie-", ...).
//  5. Accept: wap.
//  6. Mobile keywords ("blackberry", "opera mini", "phone", ...).
//  7. "OperaMini" in any header value.
//
// Agent matching is case-insensitive; the agent is lower-cased with
// golang.org/x/text/cases before any rule runs.
//
// # Usage
//
//	cfg := device.DefaultConfig()
//	if err := config.Load(&cfg); err != nil { ... }
//
//	classifier, err := device.NewClassifier(cfg)
//	if err != nil { ... }
//
//	d := classifier.Classify(device.NewSnapshot(r))
//	if d.IsMobile() {
//	    // render the compact layout
//	}
//
// # Configuration
//
// Config is bound from environment variables (DEVICE_NORMAL_KEYWORDS,
// DEVICE_MOBILE_KEYWORDS, DEVICE_MOBILE_PREFIXES, DEVICE_TABLET_KEYWORDS,
// DEVICE_MOBILE_CODE, DEVICE_TABLET_CODE). Long keyword lists can be kept in a YAML
// file and merged with LoadKeywordsFile.
//
// # Concurrency
//
// A Classifier is immutable after NewClassifier returns and may be shared by all
// request goroutines. Snapshots are request-scoped values.
package device
