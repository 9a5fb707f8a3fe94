package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/handler"
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/server"
	"github.com/MKhiriev/mesto-api/internal/service"
	"github.com/MKhiriev/mesto-api/internal/store"
	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/MKhiriev/mesto-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("mesto-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, utils.NewIDGenerator(), log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("error running server")
	}
}
