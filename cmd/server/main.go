package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/handler"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/server"
	"github.com/MKhiriev/go-topologic/internal/service"
	"github.com/MKhiriev/go-topologic/internal/store"
	"github.com/MKhiriev/go-topologic/internal/workers"
	"github.com/MKhiriev/go-topologic/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("topologic-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	loaded, err := services.ModelConfigService.LoadAll(ctx)
	if err != nil {
		log.Err(err).Msg("error loading model configs")
	}
	log.Info().Strs("tables", loaded).Msg("model configs loaded")

	handlers, err := handler.NewHandlers(services, storages.ModelFileStorage, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	watcher := workers.NewConfigWatcher(
		cfg.Storage.Files.WebAppPath,
		services.ModelConfigService,
		cfg.Workers.WatchDebounce,
		nil,
		log.GetChildLogger(),
	)

	srv, err := server.NewServer(handlers, workers.NewWorkers(watcher), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
