package preference_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/preference"
)

const iphoneAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"

func newClassifier(t *testing.T) *device.Classifier {
	t.Helper()
	c, err := device.NewClassifier(device.DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestAccessor(t *testing.T) {
	t.Parallel()

	c := newClassifier(t)
	repo := preference.NewRepository(preference.WithSwitchers(
		preference.NewURLSwitcher(factory, &recordingRedirector{}),
	))

	t.Run("detected and preferred differ", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "https://t.example.com/", nil)
		r.Header.Set("User-Agent", iphoneAgent)

		acc := preference.NewAccessor(c, repo, device.NewSnapshot(r))
		assert.Equal(t, factory.Mobile(), acc.Device())

		pref, found, err := acc.Preference(context.Background())
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, factory.Tablet(), pref)
		assert.Equal(t, "https://t.example.com/", acc.Snapshot().DisplayURL())
	})

	t.Run("no preference", func(t *testing.T) {
		t.Parallel()
		acc := preference.NewAccessor(c, repo, device.NewSnapshot(httptest.NewRequest(http.MethodGet, "https://example.com/", nil)))
		assert.Equal(t, factory.Normal(), acc.Device())

		_, found, err := acc.Preference(context.Background())
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	c := newClassifier(t)
	m := cookieManager(t)
	repo := preference.NewRepository(preference.WithSwitchers(
		preference.NewCookieSwitcher(m, factory),
		preference.NewURLSwitcher(factory, &recordingRedirector{}),
	))

	var (
		detected  device.Device
		preferred device.Device
		found     bool
	)
	h := preference.Middleware(c, repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc := preference.MustAccessorFromContext(r.Context())
		detected = acc.Device()
		var err error
		preferred, found, err = acc.Preference(r.Context())
		require.NoError(t, err)
	}))

	r := httptest.NewRequest(http.MethodGet, "https://m.example.com/", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	r.AddCookie(&http.Cookie{Name: preference.DefaultCookieName, Value: m.Sign("tablet")})
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, factory.Normal(), detected)
	assert.True(t, found)
	assert.Equal(t, factory.Tablet(), preferred, "cookie outranks the host marker")
}

func TestAccessorFromContext(t *testing.T) {
	t.Parallel()

	_, ok := preference.AccessorFromContext(context.Background())
	assert.False(t, ok)

	_, ok = preference.AccessorFromContext(preference.WithAccessor(context.Background(), nil))
	assert.False(t, ok)

	assert.PanicsWithValue(t, preference.ErrNoAccessor, func() {
		preference.MustAccessorFromContext(context.Background())
	})

	acc := preference.NewAccessor(newClassifier(t), preference.NewRepository(), device.Snapshot{})
	got, ok := preference.AccessorFromContext(preference.WithAccessor(context.Background(), acc))
	require.True(t, ok)
	assert.Same(t, acc, got)
	assert.Equal(t, factory.Normal(), got.Device())
}
