package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/metrics"
	"github.com/dmitrymomot/devicekit/pkg/preference"
)

type deviceView struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

type stateView struct {
	Device     deviceView  `json:"device"`
	Preference *deviceView `json:"preference"`
	Effective  deviceView  `json:"effective"`
}

func viewOf(d device.Device) deviceView {
	return deviceView{Type: d.Type().String(), Code: d.Code()}
}

// show reports the detected device, the stored preference and the one the
// site should render: the preference when set, the detected device otherwise.
func (a *app) show(w http.ResponseWriter, r *http.Request) {
	acc := preference.MustAccessorFromContext(r.Context())

	detected := acc.Device()
	pref, found, err := acc.Preference(r.Context())
	if err != nil {
		a.log.ErrorContext(r.Context(), "failed to load device preference", logger.Error(err))
		a.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "preference unavailable"})
		return
	}

	effective := detected
	view := stateView{Device: viewOf(detected)}
	if found {
		effective = pref
		pv := viewOf(pref)
		view.Preference = &pv
	}
	view.Effective = viewOf(effective)

	a.metrics.ObserveRequest(detected, effective)
	a.log.DebugContext(r.Context(), "device resolved", logger.Device(detected))
	a.writeJSON(w, r, http.StatusOK, view)
}

func (a *app) switchDevice(w http.ResponseWriter, r *http.Request) {
	d, err := a.factory.Parse(chi.URLParam(r, "code"))
	if err != nil {
		a.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	err = a.repo.SavePreference(ww, homeRequest(r), d)
	a.metrics.ObservePreferenceChange(metrics.ActionSave, a.repo.Primary().Name(), d, err)
	a.finish(ww, r, err)
}

func (a *app) reset(w http.ResponseWriter, r *http.Request) {
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	err := a.repo.ResetPreference(ww, homeRequest(r))
	a.metrics.ObservePreferenceChange(metrics.ActionReset, a.repo.Primary().Name(), device.Device{}, err)
	a.finish(ww, r, err)
}

// homeRequest points r at the site root so switchers that redirect land on
// the home page of the target host instead of the switch endpoint.
func homeRequest(r *http.Request) *http.Request {
	home := r.Clone(r.Context())
	home.URL.Path, home.URL.RawPath, home.URL.RawQuery = "/", "", ""
	return home
}

// finish sends the client home when the primary switcher did not redirect,
// e.g. on an IP host where subdomains cannot be used.
func (a *app) finish(w middleware.WrapResponseWriter, r *http.Request, err error) {
	if err != nil && !errors.Is(err, preference.ErrUnsupportedHost) {
		a.log.ErrorContext(r.Context(), "failed to update device preference", logger.Error(err))
		a.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "preference not saved"})
		return
	}
	if w.Status() == 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (a *app) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
