// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown, and provides a JSON health endpoint.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// drains requests within the shutdown timeout and runs the callbacks
// registered with WithOnShutdown:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithOnShutdown(func(context.Context) error { return client.Close() }),
//	)
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, map[string]httpserver.Check{
//		"redis": redis.Healthcheck(client),
//	}))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
