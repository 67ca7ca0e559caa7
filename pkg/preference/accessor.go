package preference

import (
	"context"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// Classifier is the part of device.Classifier the accessor needs.
type Classifier interface {
	Classify(s device.Snapshot) device.Device
}

// Loader is the part of Repository the accessor needs.
type Loader interface {
	LoadPreference(ctx context.Context, s device.Snapshot) (device.Device, bool, error)
}

// Accessor exposes, for one request, what the classifier detects and what the
// visitor asked for. It does not merge the two; a typical caller does:
//
//	d := acc.Device()
//	if pref, ok, err := acc.Preference(ctx); err == nil && ok {
//	    d = pref
//	}
type Accessor struct {
	classifier Classifier
	loader     Loader
	snapshot   device.Snapshot
}

// NewAccessor binds the collaborators to a request snapshot.
func NewAccessor(classifier Classifier, loader Loader, s device.Snapshot) *Accessor {
	return &Accessor{classifier: classifier, loader: loader, snapshot: s}
}

// Device classifies the request. It is recomputed on every call.
func (a *Accessor) Device() device.Device {
	return a.classifier.Classify(a.snapshot)
}

// Preference returns the stored preference, if any.
func (a *Accessor) Preference(ctx context.Context) (device.Device, bool, error) {
	return a.loader.LoadPreference(ctx, a.snapshot)
}

// Snapshot returns the request snapshot the accessor reads from.
func (a *Accessor) Snapshot() device.Snapshot {
	return a.snapshot
}
