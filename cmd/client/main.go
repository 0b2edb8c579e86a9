package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-memo-keeper/internal/adapter"
	"github.com/MKhiriev/go-memo-keeper/internal/client"
	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("memo-client", cfg.LogLevel)
	log.Debug().
		Str("build_version", orNA(buildVersion)).
		Str("build_date", orNA(buildDate)).
		Str("build_commit", orNA(buildCommit)).
		Msg("client build info")

	captureAdapter, err := adapter.NewHTTPCaptureAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create capture adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(captureAdapter, os.Stdout, log).Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
