package device

import (
	"net/http"
	"strings"
)

// Snapshot is a read-only view of the parts of an HTTP request that device
// classification and preference switchers look at. It is request-scoped and
// must not be shared between requests.
type Snapshot struct {
	userAgent    string
	hasUserAgent bool
	header       http.Header
	cookies      []*http.Cookie
	displayURL   string
}

// NewSnapshot captures the request data needed for classification.
// A nil request yields an empty snapshot.
func NewSnapshot(r *http.Request) Snapshot {
	if r == nil {
		return Snapshot{header: http.Header{}}
	}

	s := Snapshot{
		header:     r.Header.Clone(),
		cookies:    r.Cookies(),
		displayURL: DisplayURL(r),
	}
	if s.header == nil {
		s.header = http.Header{}
	}
	if values := r.Header.Values(HeaderUserAgent); len(values) > 0 {
		s.userAgent = values[0]
		s.hasUserAgent = true
	}
	return s
}

// UserAgent returns the raw User-Agent value and whether the header was sent.
func (s Snapshot) UserAgent() (string, bool) { return s.userAgent, s.hasUserAgent }

// HasHeader reports whether the named header is present, even with an empty value.
func (s Snapshot) HasHeader(name string) bool {
	_, ok := s.header[http.CanonicalHeaderKey(name)]
	return ok
}

// HeaderValues returns all values of the named header.
func (s Snapshot) HeaderValues(name string) []string {
	return s.header.Values(name)
}

// anyHeaderValueContains reports whether any value of any header contains substr.
// The comparison is case-sensitive.
func (s Snapshot) anyHeaderValueContains(substr string) bool {
	for _, values := range s.header {
		for _, v := range values {
			if strings.Contains(v, substr) {
				return true
			}
		}
	}
	return false
}

// Cookie returns the named cookie if the request carried it.
func (s Snapshot) Cookie(name string) (*http.Cookie, bool) {
	for _, c := range s.cookies {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// DisplayURL returns scheme://host/path?query of the captured request.
func (s Snapshot) DisplayURL() string { return s.displayURL }

// DisplayURL renders the absolute URL the client used to reach the server.
// The scheme honours TLS and the X-Forwarded-Proto header set by proxies;
// header values other than http and https are ignored.
func DisplayURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get(HeaderForwardedProto); proto != "" {
		switch p := strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0])); p {
		case "http", "https":
			scheme = p
		}
	}

	host := r.Host
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	if r.URL != nil {
		b.WriteString(r.URL.EscapedPath())
		if r.URL.RawQuery != "" {
			b.WriteByte('?')
			b.WriteString(r.URL.RawQuery)
		}
	}
	return b.String()
}
