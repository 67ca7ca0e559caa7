package preference

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devicekit/pkg/cookie"
	"github.com/dmitrymomot/devicekit/pkg/device"
)

const (
	// StoreSwitcherPriority places the server-side store after the URL marker.
	StoreSwitcherPriority = 3

	DefaultClientCookieName = "device_client"
	DefaultStoreTTL         = 365 * 24 * time.Hour
)

// StoreSwitcher keeps the preference in a Store keyed by a random client id
// that lives in a cookie. It suits deployments that need to inspect or expire
// preferences on the server.
type StoreSwitcher struct {
	store      Store
	cookies    *cookie.Manager
	factory    *device.CodeFactory
	cookieName string
	priority   int
	ttl        time.Duration
	redirector Redirector
}

// StoreSwitcherOption configures a StoreSwitcher.
type StoreSwitcherOption func(*StoreSwitcher)

func WithClientCookieName(name string) StoreSwitcherOption {
	return func(s *StoreSwitcher) {
		if name != "" {
			s.cookieName = name
		}
	}
}

func WithStorePriority(priority int) StoreSwitcherOption {
	return func(s *StoreSwitcher) { s.priority = priority }
}

// WithStoreTTL sets how long a saved preference lives. Zero keeps it forever.
func WithStoreTTL(ttl time.Duration) StoreSwitcherOption {
	return func(s *StoreSwitcher) {
		if ttl >= 0 {
			s.ttl = ttl
		}
	}
}

func WithStoreRedirector(rd Redirector) StoreSwitcherOption {
	return func(s *StoreSwitcher) { s.redirector = rd }
}

func NewStoreSwitcher(store Store, cookies *cookie.Manager, factory *device.CodeFactory, opts ...StoreSwitcherOption) *StoreSwitcher {
	s := &StoreSwitcher{
		store:      store,
		cookies:    cookies,
		factory:    factory,
		cookieName: DefaultClientCookieName,
		priority:   StoreSwitcherPriority,
		ttl:        DefaultStoreTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StoreSwitcher) Name() string  { return "store" }
func (s *StoreSwitcher) Priority() int { return s.priority }

// LoadPreference returns store errors unchanged. A missing or malformed client
// id, a missing entry or an unknown stored value are not errors.
func (s *StoreSwitcher) LoadPreference(ctx context.Context, snap device.Snapshot) (device.Device, bool, error) {
	c, ok := snap.Cookie(s.cookieName)
	if !ok {
		return device.Device{}, false, nil
	}
	id, ok := s.clientID(c.Value)
	if !ok {
		return device.Device{}, false, nil
	}

	value, found, err := s.store.Get(ctx, id)
	if err != nil || !found {
		return device.Device{}, false, err
	}
	t, err := device.ParseType(value)
	if err != nil {
		return device.Device{}, false, nil
	}
	return s.factory.ByType(t), true, nil
}

// StoreDevice issues a client id when the request has none.
func (s *StoreSwitcher) StoreDevice(w http.ResponseWriter, r *http.Request, d device.Device) error {
	id, ok := s.requestClientID(r)
	if !ok {
		id = uuid.NewString()
		if err := s.cookies.SetSigned(w, s.cookieName, id, cookieScope(s.cookies, s.redirector, r)...); err != nil {
			return err
		}
	}

	if err := s.store.Set(r.Context(), id, d.Type().String(), s.ttl); err != nil {
		return err
	}
	if s.redirector == nil {
		return nil
	}
	return redirectTo(s.redirector, w, r, d)
}

// ResetStore keeps the client id cookie so the visitor can switch again later.
func (s *StoreSwitcher) ResetStore(w http.ResponseWriter, r *http.Request) error {
	if id, ok := s.requestClientID(r); ok {
		if err := s.store.Delete(r.Context(), id); err != nil {
			return err
		}
	}
	if s.redirector == nil {
		return nil
	}
	return s.redirector.RedirectToCanonical(w, r)
}

func (s *StoreSwitcher) requestClientID(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.cookieName)
	if err != nil {
		return "", false
	}
	return s.clientID(c.Value)
}

func (s *StoreSwitcher) clientID(signed string) (string, bool) {
	value, err := s.cookies.Verify(signed)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
