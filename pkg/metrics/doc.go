// Package metrics exposes Prometheus counters for device detection and
// preference changes.
//
// Metrics are registered on the Registerer passed to New so that tests and
// embedding applications can use their own registry:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	r.Handle("/metrics", metrics.Handler(reg))
//
//	m.ObserveRequest(detected, effective)
//	m.ObservePreferenceChange(metrics.ActionSave, "cookie", d, err)
package metrics
