package preference

import (
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// Middleware snapshots each request and stores an Accessor in its context.
func Middleware(classifier Classifier, loader Loader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acc := NewAccessor(classifier, loader, device.NewSnapshot(r))
			next.ServeHTTP(w, r.WithContext(WithAccessor(r.Context(), acc)))
		})
	}
}
