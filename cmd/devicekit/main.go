// Command devicekit is a small HTTP host that shows device detection and
// preference switching end to end.
//
//	GET /               detected device, stored preference and the effective one
//	GET /switch/{code}  save a preference (normal, mobile, tablet or a host code)
//	GET /reset          clear the preference
//	GET /healthz        liveness, or readiness when redis is configured
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/devicekit/pkg/config"
	"github.com/dmitrymomot/devicekit/pkg/logger"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	keywords := flag.String("keywords", "", "path to a YAML keywords file (overrides DEVICE_KEYWORDS_FILE)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}
	if *keywords != "" {
		cfg.Device.KeywordsFile = *keywords
	}

	if err := run(ctx, cfg); err != nil {
		slog.Error("devicekit stopped", logger.Error(err))
		os.Exit(1)
	}
}
