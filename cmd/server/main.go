package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/handler"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/images"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/server"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("driver", cfg.Storage.Driver).Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	var imageStore images.Store
	if cfg.Storage.Images.Endpoint != "" {
		imageStore, err = images.NewMinIO(ctx, cfg.Storage.Images, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating image store")
		}
	}

	services, err := service.NewServices(storages, imageStore, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.Seed {
		if err = services.FiltersService.SeedDefaults(ctx); err != nil {
			log.Fatal().Err(err).Msg("error seeding default filters")
		}
		log.Info().Msg("default filters seeded")
	}

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

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
