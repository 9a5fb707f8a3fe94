package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/mesto-api/internal/adapter"
	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("mesto-client")
	log.Logger = log.Output(os.Stderr)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := newCLI(serverAdapter, os.Stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err = cli.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, adapter.MessageFromError(err))
		stop()
		os.Exit(1)
	}
}
