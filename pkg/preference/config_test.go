package preference_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/preference"
)

func TestConfig(t *testing.T) {
	t.Run("defaults match DefaultConfig", func(t *testing.T) {
		var cfg preference.Config
		require.NoError(t, env.Parse(&cfg))
		assert.Equal(t, preference.DefaultConfig(), cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("DEVICE_PREFERENCE_COOKIE", "pref")
		t.Setenv("DEVICE_PREFERENCE_PRIMARY", "store")
		t.Setenv("DEVICE_BASE_HOST", "example.com")
		t.Setenv("DEVICE_REDIRECT_STATUS", "303")
		t.Setenv("DEVICE_PREFERENCE_TTL", "720h")

		var cfg preference.Config
		require.NoError(t, env.Parse(&cfg))
		assert.Equal(t, "pref", cfg.CookieName)
		assert.Equal(t, "store", cfg.Primary)
		assert.Equal(t, "example.com", cfg.BaseHost)
		assert.Equal(t, http.StatusSeeOther, cfg.RedirectStatus)
		assert.Equal(t, 30*24*time.Hour, cfg.StoreTTL)
	})
}
