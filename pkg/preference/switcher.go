package preference

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/cookie"
	"github.com/dmitrymomot/devicekit/pkg/device"
)

// Switcher detects, persists and clears an explicit device preference.
//
// LoadPreference must not have side effects. StoreDevice and ResetStore may
// write a redirect to w, in which case the caller must stop writing the response.
type Switcher interface {
	// Name identifies the switcher in logs and in WithPrimary.
	Name() string
	// Priority orders the chain: lower values are asked first.
	Priority() int
	LoadPreference(ctx context.Context, s device.Snapshot) (device.Device, bool, error)
	StoreDevice(w http.ResponseWriter, r *http.Request, d device.Device) error
	ResetStore(w http.ResponseWriter, r *http.Request) error
}

// Registration binds a switcher to its position in the chain.
type Registration struct {
	Priority int
	Switcher Switcher
}

// Register uses the switcher's own priority.
func Register(s Switcher) Registration {
	return Registration{Priority: s.Priority(), Switcher: s}
}

// Redirector sends the client to the host that serves a device.
type Redirector interface {
	// RedirectToDevice redirects to the host labelled with code.
	RedirectToDevice(w http.ResponseWriter, r *http.Request, code string) error
	// RedirectToCanonical redirects to the host without any device label.
	RedirectToCanonical(w http.ResponseWriter, r *http.Request) error
}

// redirectTo sends the client to d's host, or to the canonical host for
// devices without a code.
func redirectTo(rd Redirector, w http.ResponseWriter, r *http.Request, d device.Device) error {
	if d.Code() == "" {
		return rd.RedirectToCanonical(w, r)
	}
	return rd.RedirectToDevice(w, r, d.Code())
}

// canonicalHoster is implemented by redirectors that know the canonical host,
// such as SubdomainRedirector.
type canonicalHoster interface {
	CanonicalHost(r *http.Request) (string, error)
}

// cookieScope shares cookies between the canonical and device hosts, so that a
// choice made on one host can be cleared from another. It returns nothing when
// the manager has a fixed domain, the redirector does not know the canonical
// host, or the host cannot carry subdomains.
func cookieScope(m *cookie.Manager, rd Redirector, r *http.Request) []cookie.Option {
	if m.Domain() != "" {
		return nil
	}
	ch, ok := rd.(canonicalHoster)
	if !ok {
		return nil
	}
	host, err := ch.CanonicalHost(r)
	if err != nil {
		return nil
	}
	return []cookie.Option{cookie.WithDomain(host)}
}
