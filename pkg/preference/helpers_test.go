package preference_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/cookie"
	"github.com/dmitrymomot/devicekit/pkg/device"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

var factory = device.DefaultFactory

// stubSwitcher answers with a fixed preference and records store calls.
type stubSwitcher struct {
	name     string
	priority int
	pref     *device.Device
	loadErr  error
	storeErr error

	mu      sync.Mutex
	stored  []device.Device
	resets  int
	queried int
}

func (s *stubSwitcher) Name() string  { return s.name }
func (s *stubSwitcher) Priority() int { return s.priority }

func (s *stubSwitcher) LoadPreference(context.Context, device.Snapshot) (device.Device, bool, error) {
	s.mu.Lock()
	s.queried++
	s.mu.Unlock()
	if s.loadErr != nil {
		return device.Device{}, false, s.loadErr
	}
	if s.pref == nil {
		return device.Device{}, false, nil
	}
	return *s.pref, true, nil
}

func (s *stubSwitcher) StoreDevice(_ http.ResponseWriter, _ *http.Request, d device.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored = append(s.stored, d)
	return s.storeErr
}

func (s *stubSwitcher) ResetStore(http.ResponseWriter, *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets++
	return s.storeErr
}

func ptr(d device.Device) *device.Device { return &d }

func cookieManager(t *testing.T) *cookie.Manager {
	t.Helper()
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	return m
}

// followCookies copies the cookies set on w into a new request for target.
func followCookies(w *httptest.ResponseRecorder, target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

// recordingRedirector captures redirect targets without writing a response.
type recordingRedirector struct {
	mu      sync.Mutex
	targets []string
	err     error
}

func (r *recordingRedirector) RedirectToDevice(_ http.ResponseWriter, _ *http.Request, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, code)
	return r.err
}

func (r *recordingRedirector) RedirectToCanonical(w http.ResponseWriter, req *http.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, "<canonical>")
	return r.err
}
