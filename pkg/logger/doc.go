// Package logger builds *slog.Logger instances for devicekit services and
// defines the attribute helpers used across the module so that keys stay
// consistent: Device, Preference, Switcher, DeviceCode, RequestID, Error.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "devicekit"),
//	    logger.WithContextExtractors(
//	        logger.FromContextValue("request_id", requestid.FromContext),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "request classified", logger.Device(d))
//
// Library packages accept a *slog.Logger option and default to Nop.
package logger
