package preference

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/cookie"
	"github.com/dmitrymomot/devicekit/pkg/device"
)

const (
	// CookieSwitcherPriority puts the cookie ahead of the URL marker.
	CookieSwitcherPriority = 1

	DefaultCookieName = "device_preference"
)

// CookieSwitcher keeps the preference in a signed cookie holding the device
// type name. Unsigned or unknown values count as no preference.
type CookieSwitcher struct {
	cookies    *cookie.Manager
	factory    *device.CodeFactory
	name       string
	priority   int
	redirector Redirector
	opts       []cookie.Option
}

// CookieSwitcherOption configures a CookieSwitcher.
type CookieSwitcherOption func(*CookieSwitcher)

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) CookieSwitcherOption {
	return func(s *CookieSwitcher) {
		if name != "" {
			s.name = name
		}
	}
}

// WithCookiePriority overrides CookieSwitcherPriority.
func WithCookiePriority(priority int) CookieSwitcherOption {
	return func(s *CookieSwitcher) { s.priority = priority }
}

// WithCookieRedirector makes StoreDevice and ResetStore redirect to the
// matching host after updating the cookie.
func WithCookieRedirector(rd Redirector) CookieSwitcherOption {
	return func(s *CookieSwitcher) { s.redirector = rd }
}

// WithCookieOptions adds attributes to the preference cookie.
func WithCookieOptions(opts ...cookie.Option) CookieSwitcherOption {
	return func(s *CookieSwitcher) { s.opts = append(s.opts, opts...) }
}

func NewCookieSwitcher(cookies *cookie.Manager, factory *device.CodeFactory, opts ...CookieSwitcherOption) *CookieSwitcher {
	s := &CookieSwitcher{
		cookies:  cookies,
		factory:  factory,
		name:     DefaultCookieName,
		priority: CookieSwitcherPriority,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CookieSwitcher) Name() string  { return "cookie" }
func (s *CookieSwitcher) Priority() int { return s.priority }

func (s *CookieSwitcher) LoadPreference(_ context.Context, snap device.Snapshot) (device.Device, bool, error) {
	c, ok := snap.Cookie(s.name)
	if !ok {
		return device.Device{}, false, nil
	}
	value, err := s.cookies.Verify(c.Value)
	if err != nil {
		return device.Device{}, false, nil
	}
	t, err := device.ParseType(value)
	if err != nil {
		return device.Device{}, false, nil
	}
	return s.factory.ByType(t), true, nil
}

func (s *CookieSwitcher) StoreDevice(w http.ResponseWriter, r *http.Request, d device.Device) error {
	if err := s.cookies.SetSigned(w, s.name, d.Type().String(), s.cookieOptions(r)...); err != nil {
		return err
	}
	if s.redirector == nil {
		return nil
	}
	return redirectTo(s.redirector, w, r, d)
}

func (s *CookieSwitcher) ResetStore(w http.ResponseWriter, r *http.Request) error {
	s.cookies.Delete(w, s.name, s.cookieOptions(r)...)
	if s.redirector == nil {
		return nil
	}
	return s.redirector.RedirectToCanonical(w, r)
}

// cookieOptions puts the cookie on the canonical domain when a subdomain
// redirector is attached. Options from WithCookieOptions win.
func (s *CookieSwitcher) cookieOptions(r *http.Request) []cookie.Option {
	return append(cookieScope(s.cookies, s.redirector, r), s.opts...)
}
