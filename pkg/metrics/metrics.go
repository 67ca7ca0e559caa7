package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// Preference change actions.
const (
	ActionSave  = "save"
	ActionReset = "reset"
)

const namespace = "devicekit"

// Metrics holds the collectors. The zero value is not usable; use New.
type Metrics struct {
	requests          *prometheus.CounterVec
	preferenceChanges *prometheus.CounterVec
}

// New registers the collectors on reg. It panics when they are already
// registered there, like promauto does.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests by detected and effective device type.",
		}, []string{"detected", "effective"}),
		preferenceChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preference_changes_total",
			Help:      "Preference saves and resets by switcher, device type and outcome.",
		}, []string{"action", "switcher", "type", "outcome"}), // outcome=success|failure
	}
}

// ObserveRequest counts a request. effective is the preference when the
// visitor has one and the detected device otherwise.
func (m *Metrics) ObserveRequest(detected, effective device.Device) {
	m.requests.WithLabelValues(detected.Type().String(), effective.Type().String()).Inc()
}

// ObservePreferenceChange counts a save or reset. Resets carry no device; pass
// the zero Device, which is reported as "normal".
func (m *Metrics) ObservePreferenceChange(action, switcher string, d device.Device, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.preferenceChanges.WithLabelValues(action, switcher, d.Type().String(), outcome).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
