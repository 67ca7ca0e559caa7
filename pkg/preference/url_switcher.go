package preference

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// URLSwitcherPriority is the chain position of URLSwitcher. It leaves room for
// a stateful switcher, such as CookieSwitcher, to be asked first.
const URLSwitcherPriority = 2

// URLSwitcher reads the preference from the host the client is on: a
// "//m." or "//t." marker in the display URL selects the mobile or tablet
// site. Storing or clearing a preference moves the client to another host.
type URLSwitcher struct {
	factory    device.Factory
	redirector Redirector
	mobile     string
	tablet     string
}

// NewURLSwitcher uses the factory's mobile and tablet codes as subdomain labels.
func NewURLSwitcher(factory device.Factory, redirector Redirector) *URLSwitcher {
	return &URLSwitcher{
		factory:    factory,
		redirector: redirector,
		mobile:     "//" + factory.Mobile().Code() + ".",
		tablet:     "//" + factory.Tablet().Code() + ".",
	}
}

func (s *URLSwitcher) Name() string  { return "url" }
func (s *URLSwitcher) Priority() int { return URLSwitcherPriority }

// LoadPreference checks the mobile label before the tablet label.
func (s *URLSwitcher) LoadPreference(_ context.Context, snap device.Snapshot) (device.Device, bool, error) {
	url := snap.DisplayURL()
	if strings.Contains(url, s.mobile) {
		return s.factory.Mobile(), true, nil
	}
	if strings.Contains(url, s.tablet) {
		return s.factory.Tablet(), true, nil
	}
	return device.Device{}, false, nil
}

// StoreDevice redirects to the subdomain of d. Normal devices go to the
// canonical host.
func (s *URLSwitcher) StoreDevice(w http.ResponseWriter, r *http.Request, d device.Device) error {
	return redirectTo(s.redirector, w, r, d)
}

// ResetStore redirects to the canonical host.
func (s *URLSwitcher) ResetStore(w http.ResponseWriter, r *http.Request) error {
	return s.redirector.RedirectToCanonical(w, r)
}
