package preference

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// DataStar detection constants.
const (
	dataStarAcceptHeader = "text/event-stream"
	dataStarQueryParam   = "datastar"
	dataStarContentType  = "application/x-datastar"
)

// SubdomainRedirector moves clients between example.com, m.example.com and
// t.example.com while keeping the path and query.
//
// The canonical host is the request host with a leading device label removed,
// or the host set with WithBaseHost. DataStar requests get a server-sent
// redirect event instead of a Location header.
type SubdomainRedirector struct {
	codes    []string
	baseHost string
	status   int
	logger   *slog.Logger
}

// RedirectorOption configures a SubdomainRedirector.
type RedirectorOption func(*SubdomainRedirector)

// WithBaseHost fixes the canonical host, e.g. "example.com" or "www.example.com".
func WithBaseHost(host string) RedirectorOption {
	return func(r *SubdomainRedirector) { r.baseHost = strings.ToLower(strings.TrimSpace(host)) }
}

// WithStatusCode sets the redirect status. Only 3xx codes are accepted.
func WithStatusCode(code int) RedirectorOption {
	return func(r *SubdomainRedirector) {
		if code >= 300 && code < 400 {
			r.status = code
		}
	}
}

// WithRedirectLogger sets the logger. Nil is ignored.
func WithRedirectLogger(l *slog.Logger) RedirectorOption {
	return func(r *SubdomainRedirector) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewSubdomainRedirector uses the factory's codes as the known device labels.
func NewSubdomainRedirector(factory *device.CodeFactory, opts ...RedirectorOption) *SubdomainRedirector {
	r := &SubdomainRedirector{
		codes:  factory.Codes(),
		status: http.StatusFound,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (rd *SubdomainRedirector) RedirectToDevice(w http.ResponseWriter, r *http.Request, code string) error {
	target, err := rd.TargetURL(r, code)
	if err != nil {
		return err
	}
	return rd.redirect(w, r, target, code)
}

func (rd *SubdomainRedirector) RedirectToCanonical(w http.ResponseWriter, r *http.Request) error {
	return rd.RedirectToDevice(w, r, "")
}

// TargetURL returns the absolute URL of the current page on the host for code.
// An empty code targets the canonical host.
func (rd *SubdomainRedirector) TargetURL(r *http.Request, code string) (string, error) {
	u, err := rd.displayURL(r)
	if err != nil {
		return "", err
	}

	host := rd.canonicalHost(strings.ToLower(u.Hostname()))
	if code != "" {
		host = strings.ToLower(code) + "." + host
	}
	if port := u.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	}
	u.Host = host
	return u.String(), nil
}

// CanonicalHost returns the hostname, without port, of the site that carries
// no device label. Cookies scoped to it are shared with every device host.
func (rd *SubdomainRedirector) CanonicalHost(r *http.Request) (string, error) {
	u, err := rd.displayURL(r)
	if err != nil {
		return "", err
	}
	return rd.canonicalHost(strings.ToLower(u.Hostname())), nil
}

func (rd *SubdomainRedirector) displayURL(r *http.Request) (*url.URL, error) {
	u, err := url.Parse(device.DisplayURL(r))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	hostname := u.Hostname()
	if hostname == "" || net.ParseIP(hostname) != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHost, u.Host)
	}
	return u, nil
}

func (rd *SubdomainRedirector) canonicalHost(hostname string) string {
	if rd.baseHost != "" {
		return rd.baseHost
	}
	label, rest, ok := strings.Cut(hostname, ".")
	if !ok || !slices.Contains(rd.codes, label) {
		return hostname
	}
	// Keep "m.com" intact; only strip a label in front of a registrable name.
	if strings.Contains(rest, ".") || rest == "localhost" {
		return rest
	}
	return hostname
}

func (rd *SubdomainRedirector) redirect(w http.ResponseWriter, r *http.Request, target, code string) error {
	rd.logger.DebugContext(r.Context(), "redirecting to device host",
		logger.DeviceCode(code),
		slog.String("target", target),
	)
	if isDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(target)
	}
	http.Redirect(w, r, target, rd.status)
	return nil
}

// isDataStar reports whether the request came from a DataStar frontend,
// which cannot follow a plain HTTP redirect.
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAcceptHeader) {
		return true
	}
	if r.URL != nil && r.URL.Query().Has(dataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), dataStarContentType)
}
