package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/devicekit/pkg/cookie"
	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/httpserver"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/metrics"
	"github.com/dmitrymomot/devicekit/pkg/preference"
	"github.com/dmitrymomot/devicekit/pkg/redis"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"devicekit"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`
	// SwitchRateLimit caps /switch and /reset requests per client IP and minute.
	// Zero disables the limit.
	SwitchRateLimit int `env:"SWITCH_RATE_LIMIT" envDefault:"30"`

	HTTP       httpserver.Config
	Device     device.Config
	Preference preference.Config
	Cookie     cookie.Config
	Redis      redis.Config
}

// app holds everything the router needs.
type app struct {
	log        *slog.Logger
	factory    *device.CodeFactory
	classifier *device.Classifier
	repo       *preference.Repository
	metrics    *metrics.Metrics
	registry   *prometheus.Registry
	checks     map[string]httpserver.Check
	onShutdown []func(context.Context) error
	rateLimit  int
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(logger.FromContextValue("request_id", middleware.GetReqID)),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}

// newApp wires the classifier, the switcher chain and, when REDIS_URL is
// set, the redis-backed store switcher.
func newApp(ctx context.Context, cfg appConfig, log *slog.Logger) (*app, error) {
	if cfg.Device.KeywordsFile != "" {
		if err := device.LoadKeywordsFile(cfg.Device.KeywordsFile, &cfg.Device); err != nil {
			return nil, err
		}
	}

	factory, err := device.NewFactory(cfg.Device.MobileCode, cfg.Device.TabletCode)
	if err != nil {
		return nil, err
	}
	classifier, err := device.NewClassifier(cfg.Device, device.WithFactory(factory))
	if err != nil {
		return nil, err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return nil, fmt.Errorf("cookie manager: %w", err)
	}

	redirector := preference.NewSubdomainRedirector(factory,
		preference.WithBaseHost(cfg.Preference.BaseHost),
		preference.WithStatusCode(cfg.Preference.RedirectStatus),
		preference.WithRedirectLogger(log.With(logger.Component("redirector"))),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &app{
		log:        log,
		factory:    factory,
		classifier: classifier,
		metrics:    metrics.New(reg),
		registry:   reg,
		checks:     map[string]httpserver.Check{},
		rateLimit:  cfg.SwitchRateLimit,
	}

	switchers := []preference.Switcher{
		preference.NewCookieSwitcher(cookies, factory,
			preference.WithCookieName(cfg.Preference.CookieName),
			preference.WithCookieRedirector(redirector),
		),
		preference.NewURLSwitcher(factory, redirector),
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.checks["redis"] = redis.Healthcheck(client)
		a.onShutdown = append(a.onShutdown, func(context.Context) error { return client.Close() })

		switchers = append(switchers, preference.NewStoreSwitcher(
			redis.NewStorageFromConfig(client, cfg.Redis), cookies, factory,
			preference.WithClientCookieName(cfg.Preference.ClientCookieName),
			preference.WithStoreTTL(cfg.Preference.StoreTTL),
			preference.WithStoreRedirector(redirector),
		))
		log.InfoContext(ctx, "redis preference store enabled")
	}

	a.repo = preference.NewRepository(
		preference.WithSwitchers(switchers...),
		preference.WithPrimary(cfg.Preference.Primary),
		preference.WithLogger(log.With(logger.Component("preference"))),
	)
	return a, nil
}

func run(ctx context.Context, cfg appConfig) error {
	log := newLogger(cfg)
	logger.SetAsDefault(log)

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	opts := []httpserver.Option{httpserver.WithLogger(log)}
	for _, fn := range a.onShutdown {
		opts = append(opts, httpserver.WithOnShutdown(fn))
	}
	return httpserver.NewFromConfig(cfg.HTTP, opts...).Run(ctx, a.router())
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, a.checks))
	r.Handle("/metrics", metrics.Handler(a.registry))

	r.Group(func(r chi.Router) {
		r.Use(preference.Middleware(a.classifier, a.repo))
		r.Get("/", a.show)

		r.Group(func(r chi.Router) {
			if a.rateLimit > 0 {
				r.Use(httprate.LimitByIP(a.rateLimit, time.Minute))
			}
			r.Get("/switch/{code}", a.switchDevice)
			r.Get("/reset", a.reset)
		})
	})
	return r
}
