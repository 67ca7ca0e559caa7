// Package redis connects to Redis and exposes a small key/value Storage used to
// persist device preferences server side.
//
// The package wraps github.com/redis/go-redis/v9 and adds:
//
//   - Connect, which pings with retries within a time budget.
//   - Storage, a prefixed string key/value store with TTLs that satisfies
//     preference.Store.
//   - Healthcheck, a check for liveness/readiness endpoints.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	store := redis.NewStorageFromConfig(client, cfg)
//	switcher := preference.NewStoreSwitcher(store, cookies, factory)
//
// # Errors
//
// Connection failures are joined with sentinel errors (ErrRedisNotReady,
// ErrFailedToParseRedisConnString) so callers can use errors.Is. Storage returns
// go-redis errors unchanged; a missing key is not an error.
package redis
