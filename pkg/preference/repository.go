package preference

import (
	"cmp"
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// Repository coordinates a fixed chain of switchers.
//
// Loading asks switchers in ascending priority order and returns the first
// answer. Saving and resetting go to a single primary switcher: the one named
// with WithPrimary, otherwise the first switcher of the chain. The choice never
// depends on the request.
//
// A Repository is immutable after NewRepository and safe for concurrent use.
type Repository struct {
	chain   []Switcher
	primary Switcher
	logger  *slog.Logger
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*repositoryConfig)

type repositoryConfig struct {
	registrations []Registration
	primary       string
	logger        *slog.Logger
}

// WithSwitchers registers switchers at their own priority.
func WithSwitchers(switchers ...Switcher) RepositoryOption {
	return func(c *repositoryConfig) {
		for _, s := range switchers {
			if s != nil {
				c.registrations = append(c.registrations, Register(s))
			}
		}
	}
}

// WithRegistrations registers switchers at explicit priorities.
func WithRegistrations(regs ...Registration) RepositoryOption {
	return func(c *repositoryConfig) {
		for _, r := range regs {
			if r.Switcher != nil {
				c.registrations = append(c.registrations, r)
			}
		}
	}
}

// WithPrimary designates the switcher, by name, that persists and clears
// preferences. Unknown names fall back to the first switcher of the chain.
func WithPrimary(name string) RepositoryOption {
	return func(c *repositoryConfig) { c.primary = name }
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) RepositoryOption {
	return func(c *repositoryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewRepository sorts the registrations once. Equal priorities keep their
// registration order.
func NewRepository(opts ...RepositoryOption) *Repository {
	cfg := &repositoryConfig{logger: logger.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	regs := slices.Clone(cfg.registrations)
	slices.SortStableFunc(regs, func(a, b Registration) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	repo := &Repository{
		chain:  make([]Switcher, 0, len(regs)),
		logger: cfg.logger,
	}
	for _, r := range regs {
		repo.chain = append(repo.chain, r.Switcher)
	}

	if len(repo.chain) > 0 {
		repo.primary = repo.chain[0]
		for _, s := range repo.chain {
			if cfg.primary != "" && s.Name() == cfg.primary {
				repo.primary = s
				break
			}
		}
	}
	return repo
}

// Switchers returns the chain in the order it is queried.
func (r *Repository) Switchers() []Switcher {
	return slices.Clone(r.chain)
}

// Primary returns the switcher used by SavePreference and ResetPreference,
// or nil for an empty chain.
func (r *Repository) Primary() Switcher {
	return r.primary
}

// LoadPreference returns the first preference reported by the chain.
// found is false when no switcher has one. A switcher error stops the walk and
// is returned unchanged.
func (r *Repository) LoadPreference(ctx context.Context, s device.Snapshot) (device.Device, bool, error) {
	for _, sw := range r.chain {
		d, found, err := sw.LoadPreference(ctx, s)
		if err != nil {
			return device.Device{}, false, err
		}
		if found {
			r.logger.DebugContext(ctx, "device preference loaded",
				logger.Switcher(sw.Name()),
				logger.Preference(d),
			)
			return d, true, nil
		}
	}
	return device.Device{}, false, nil
}

// SavePreference persists d through the primary switcher. The switcher may
// have written a redirect to w when this returns. Without switchers it is a no-op.
func (r *Repository) SavePreference(w http.ResponseWriter, req *http.Request, d device.Device) error {
	if r.primary == nil {
		return nil
	}
	if err := r.primary.StoreDevice(w, req, d); err != nil {
		return err
	}
	r.logger.InfoContext(req.Context(), "device preference saved",
		logger.Switcher(r.primary.Name()),
		logger.Preference(d),
	)
	return nil
}

// ResetPreference clears the preference through the primary switcher.
// Like SavePreference it may redirect and is a no-op without switchers.
func (r *Repository) ResetPreference(w http.ResponseWriter, req *http.Request) error {
	if r.primary == nil {
		return nil
	}
	if err := r.primary.ResetStore(w, req); err != nil {
		return err
	}
	r.logger.InfoContext(req.Context(), "device preference reset",
		logger.Switcher(r.primary.Name()),
	)
	return nil
}
