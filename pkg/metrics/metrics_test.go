package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/metrics"
)

func TestObserveRequest(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	f := device.DefaultFactory

	m.ObserveRequest(f.Mobile(), f.Mobile())
	m.ObserveRequest(f.Mobile(), f.Normal())
	m.ObserveRequest(f.Mobile(), f.Normal())

	expected := `
# HELP devicekit_requests_total Requests by detected and effective device type.
# TYPE devicekit_requests_total counter
devicekit_requests_total{detected="mobile",effective="mobile"} 1
devicekit_requests_total{detected="mobile",effective="normal"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "devicekit_requests_total"))
}

func TestObservePreferenceChange(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	f := device.DefaultFactory

	m.ObservePreferenceChange(metrics.ActionSave, "cookie", f.Tablet(), nil)
	m.ObservePreferenceChange(metrics.ActionSave, "store", f.Mobile(), errors.New("down"))
	m.ObservePreferenceChange(metrics.ActionReset, "cookie", device.Device{}, nil)

	expected := `
# HELP devicekit_preference_changes_total Preference saves and resets by switcher, device type and outcome.
# TYPE devicekit_preference_changes_total counter
devicekit_preference_changes_total{action="reset",outcome="success",switcher="cookie",type="normal"} 1
devicekit_preference_changes_total{action="save",outcome="failure",switcher="store",type="mobile"} 1
devicekit_preference_changes_total{action="save",outcome="success",switcher="cookie",type="tablet"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "devicekit_preference_changes_total"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveRequest(device.DefaultFactory.Tablet(), device.DefaultFactory.Tablet())

	w := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `devicekit_requests_total{detected="tablet",effective="tablet"} 1`)
}
