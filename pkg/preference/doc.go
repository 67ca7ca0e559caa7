// Package preference layers an explicit, user-chosen device on top of the
// classification done by pkg/device.
//
// A preference is detected, persisted and cleared by switchers. The Repository
// holds a fixed chain of switchers sorted by ascending priority and returns the
// first preference any of them reports. Built-in switchers:
//
//   - CookieSwitcher (priority 1): signed cookie with the device type.
//   - URLSwitcher (priority 2): the host itself, e.g. m.example.com.
//   - StoreSwitcher (priority 3): server-side Store (memory or Redis) keyed by a
//     client id cookie.
//
// Saving and resetting go through one primary switcher, chosen with WithPrimary
// or defaulting to the first switcher in the chain. Switchers may answer with a
// redirect to the device host through a Redirector; when SavePreference or
// ResetPreference returns, the handler must not write anything else unless it
// knows no redirect was issued.
//
// # Usage
//
//	factory := device.MustNewFactory(cfg.MobileCode, cfg.TabletCode)
//	redirector := preference.NewSubdomainRedirector(factory, preference.WithBaseHost("example.com"))
//
//	repo := preference.NewRepository(
//	    preference.WithSwitchers(
//	        preference.NewCookieSwitcher(cookies, factory, preference.WithCookieRedirector(redirector)),
//	        preference.NewURLSwitcher(factory, redirector),
//	    ),
//	)
//
//	r.Use(preference.Middleware(classifier, repo))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    acc := preference.MustAccessorFromContext(r.Context())
//	    d := acc.Device()
//	    if pref, ok, err := acc.Preference(r.Context()); err == nil && ok {
//	        d = pref
//	    }
//	    ...
//	}
//
// # Errors
//
// Switchers return errors of their stores and redirectors unchanged and the
// Repository passes them through untouched. Missing or malformed input, such as
// an absent cookie, is never an error: it is simply no preference.
package preference
