package preference

import (
	"net/http"
	"time"
)

// Config holds the env-bound settings of the switchers and the redirector.
type Config struct {
	CookieName       string        `env:"DEVICE_PREFERENCE_COOKIE" envDefault:"device_preference"`
	ClientCookieName string        `env:"DEVICE_CLIENT_COOKIE" envDefault:"device_client"`
	Primary          string        `env:"DEVICE_PREFERENCE_PRIMARY" envDefault:"cookie"`
	BaseHost         string        `env:"DEVICE_BASE_HOST" envDefault:""`
	RedirectStatus   int           `env:"DEVICE_REDIRECT_STATUS" envDefault:"302"`
	StoreTTL         time.Duration `env:"DEVICE_PREFERENCE_TTL" envDefault:"8760h"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		CookieName:       DefaultCookieName,
		ClientCookieName: DefaultClientCookieName,
		Primary:          "cookie",
		RedirectStatus:   http.StatusFound,
		StoreTTL:         DefaultStoreTTL,
	}
}
