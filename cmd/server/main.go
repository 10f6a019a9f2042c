package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/handler"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/server"
	"github.com/MKhiriev/go-exam-drafts/internal/service"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("Build:", buildInfo)

	log := logger.NewLogger("exam-drafts-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.App.HashKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
