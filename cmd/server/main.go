package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/handler"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/internal/server"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/store"
	"github.com/MKhiriev/go-qr-studio/internal/workers"
	"github.com/MKhiriev/go-qr-studio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("qr-studio-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("qr-studio-server", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Bool("ledger", cfg.Storage.Ledger.DSN != "").Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	provider := adapter.NewStripeProvider(cfg.Payment, log)

	services, err := service.NewServices(storages, provider, render.NewRenderer(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
