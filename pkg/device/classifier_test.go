package device_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

const (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	safariMacUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
	iphoneUA        = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	ipadUA          = "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	kindleUA        = "Mozilla/5.0 (Linux; U; en-US) AppleWebKit/528.5+ (KHTML, like Gecko, Safari/528.5+) Version/4.0 Kindle/3.0 (screen 600x800; rotate)"
)

func snapshot(headers map[string][]string) device.Snapshot {
	r := httptest.NewRequest("GET", "https://example.com/", nil)
	for name, values := range headers {
		for _, v := range values {
			r.Header.Add(name, v)
		}
	}
	return device.NewSnapshot(r)
}

func ua(agent string) map[string][]string {
	return map[string][]string{"User-Agent": {agent}}
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier, err := device.NewClassifier(device.Config{
		NormalKeywords: []string{"Kiosk-Desktop"},
		TabletKeywords: []string{"sm-x"},
		MobilePrefixes: []string{"acme"},
		MobileKeywords: []string{"featurebrowser"},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		headers  map[string][]string
		expected device.Type
	}{
		{name: "no headers at all", headers: nil, expected: device.TypeNormal},
		{name: "plain accept only", headers: map[string][]string{"Accept": {"text/html"}}, expected: device.TypeNormal},
		{name: "desktop chrome", headers: ua(chromeDesktopUA), expected: device.TypeNormal},
		{name: "desktop safari", headers: ua(safariMacUA), expected: device.TypeNormal},
		{name: "iphone", headers: ua(iphoneUA), expected: device.TypeMobile},
		{name: "ipad with mobile token", headers: ua(ipadUA), expected: device.TypeTablet},
		{name: "kindle", headers: ua(kindleUA), expected: device.TypeTablet},
		{name: "kindle with mobile token", headers: ua("Kindle Mobile Safari"), expected: device.TypeMobile},
		{name: "playbook", headers: ua("Mozilla/5.0 (PlayBook; U; RIM Tablet OS 2.1.0)"), expected: device.TypeTablet},
		{name: "configured tablet keyword", headers: ua("Mozilla/5.0 (Linux; Android 13; SM-X700) Safari/537.36"), expected: device.TypeTablet},
		{name: "blackberry keyword", headers: ua("BlackBerry9000"), expected: device.TypeMobile},
		{name: "docomo prefix", headers: ua("DoCoMo/2.0"), expected: device.TypeMobile},
		{name: "nokia prefix", headers: ua("Nokia6230/2.0"), expected: device.TypeMobile},
		{name: "configured prefix", headers: ua("ACMEx/1.0"), expected: device.TypeMobile},
		{name: "configured mobile keyword", headers: ua("Something FeatureBrowser/2"), expected: device.TypeMobile},
		{name: "nintendo ds", headers: ua("Mozilla/4.0 (compatible; MSIE 6.0; Nintendo DS) Opera 8.50"), expected: device.TypeMobile},
		{name: "nintendo dsi", headers: ua("Opera/9.50 (Nintendo DSi; Opera/507; U; en-US)"), expected: device.TypeMobile},
		{name: "short agent skips prefix rule", headers: ua("doc"), expected: device.TypeNormal},
		{name: "profile header without agent", headers: map[string][]string{"Profile": {"MIDP-1.0"}}, expected: device.TypeMobile},
		{name: "profile header with desktop agent", headers: map[string][]string{"User-Agent": {chromeDesktopUA}, "Profile": {"x"}}, expected: device.TypeMobile},
		{name: "wap profile with agent", headers: map[string][]string{"User-Agent": {chromeDesktopUA}, "X-Wap-Profile": {"http://example.com/uaprof.xml"}}, expected: device.TypeMobile},
		{name: "wap profile with empty agent", headers: map[string][]string{"User-Agent": {""}, "X-Wap-Profile": {"x"}}, expected: device.TypeMobile},
		{name: "wap profile without agent", headers: map[string][]string{"X-Wap-Profile": {"http://example.com/uaprof.xml"}}, expected: device.TypeNormal},
		{name: "accept wap", headers: map[string][]string{"User-Agent": {chromeDesktopUA}, "Accept": {"WAP"}}, expected: device.TypeMobile},
		{name: "accept wap without agent", headers: map[string][]string{"Accept": {"text/html", "wap"}}, expected: device.TypeMobile},
		{name: "accept list containing wap", headers: map[string][]string{"Accept": {"text/html, wap"}}, expected: device.TypeNormal},
		{name: "normal keyword beats mobile keyword", headers: ua("Kiosk-Desktop iPhone Mobile"), expected: device.TypeNormal},
		{name: "normal keyword beats ipad", headers: ua("iPad kiosk-desktop"), expected: device.TypeNormal},
		{name: "normal keyword beats profile header", headers: map[string][]string{"User-Agent": {"kiosk-desktop"}, "Profile": {"x"}}, expected: device.TypeNormal},
		{name: "opera mini in any header", headers: map[string][]string{"X-Device-Stock-Ua": {"OperaMini/4.2"}}, expected: device.TypeMobile},
		{name: "opera mini marker is case sensitive", headers: map[string][]string{"X-Device-Stock-Ua": {"operamini/4.2"}}, expected: device.TypeNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := classifier.Classify(snapshot(tc.headers))
			assert.Equal(t, tc.expected, got.Type())
		})
	}
}

func TestClassifier_Codes(t *testing.T) {
	t.Parallel()

	classifier, err := device.NewClassifier(device.Config{MobileCode: "mobile", TabletCode: "tab"})
	require.NoError(t, err)

	assert.Equal(t, "mobile", classifier.Classify(snapshot(ua(iphoneUA))).Code())
	assert.Equal(t, "tab", classifier.Classify(snapshot(ua(ipadUA))).Code())
	assert.Equal(t, "", classifier.Classify(snapshot(ua(chromeDesktopUA))).Code())
}

func TestNewClassifier_InvalidCodes(t *testing.T) {
	t.Parallel()

	_, err := device.NewClassifier(device.Config{MobileCode: "m.x", TabletCode: "t"})
	require.ErrorIs(t, err, device.ErrInvalidCode)

	_, err = device.NewClassifier(device.Config{MobileCode: "m", TabletCode: "M"})
	require.ErrorIs(t, err, device.ErrInvalidCode)
}

func TestNewClassifier_EmptyCodesUseDefaults(t *testing.T) {
	t.Parallel()

	classifier, err := device.NewClassifier(device.Config{})
	require.NoError(t, err)
	assert.Equal(t, device.DefaultMobileCode, classifier.Classify(snapshot(ua(iphoneUA))).Code())
}

func TestClassify_Helper(t *testing.T) {
	t.Parallel()

	assert.True(t, device.Classify(snapshot(ua(iphoneUA)), device.DefaultConfig()).IsMobile())

	// Invalid codes degrade to defaults instead of failing.
	d := device.Classify(snapshot(ua(ipadUA)), device.Config{MobileCode: "a/b"})
	assert.True(t, d.IsTablet())
	assert.Equal(t, device.DefaultTabletCode, d.Code())
}

func TestClassifier_CaseInsensitiveAgent(t *testing.T) {
	t.Parallel()

	classifier, err := device.NewClassifier(device.Config{NormalKeywords: []string{"kiosk"}})
	require.NoError(t, err)

	fragments := []string{"ipad", "kindle", "mobile", "blackberry", "opera mini", "doco", "noki", "kiosk", "windows", "mozilla"}

	rapid.Check(t, func(t *rapid.T) {
		head := rapid.SampledFrom(fragments).Draw(t, "head")
		tail := rapid.StringMatching(`[a-z0-9 ;/()._-]{0,32}`).Draw(t, "tail")
		agent := head + tail
		flips := rapid.SliceOfN(rapid.Bool(), len(agent), len(agent)).Draw(t, "flips")

		var mixed strings.Builder
		for i, r := range agent {
			if flips[i] {
				mixed.WriteString(strings.ToUpper(string(r)))
			} else {
				mixed.WriteRune(r)
			}
		}

		want := classifier.Classify(snapshot(ua(agent)))
		upper := classifier.Classify(snapshot(ua(strings.ToUpper(agent))))
		other := classifier.Classify(snapshot(ua(mixed.String())))

		if upper != want || other != want {
			t.Fatalf("agent %q: got %v, upper %v, mixed %q %v", agent, want, upper, mixed.String(), other)
		}
	})
}

func TestClassifier_NoAgentFallsBackToNormal(t *testing.T) {
	t.Parallel()

	classifier, err := device.NewClassifier(device.DefaultConfig())
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		accept := rapid.StringMatching(`[a-z/*,;=.0-9 ]{0,30}`).Filter(func(s string) bool {
			return !strings.EqualFold(s, "wap")
		}).Draw(t, "accept")

		got := classifier.Classify(snapshot(map[string][]string{"Accept": {accept}}))
		if !got.IsNormal() {
			t.Fatalf("accept %q classified as %v", accept, got)
		}
	})
}
