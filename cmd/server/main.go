package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/handler"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/server"
	"github.com/MKhiriev/go-vaultage/internal/service"
	"github.com/MKhiriev/go-vaultage/internal/store"
	"github.com/MKhiriev/go-vaultage/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("vaultage-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().Str("version", cfg.App.Version).Str("address", cfg.Server.HTTPAddress).
		Bool("demo", cfg.App.Demo).Bool("persistent", cfg.Storage.DSN != "").Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
