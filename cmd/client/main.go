package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/adapter"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/client"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "build-info" {
		printBuildInfo()
		return
	}

	log := logger.NewConsoleLogger("recipes-client", os.Getenv("CLIENT_VERBOSE") != "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPRecipeAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create recipe api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, err)
			stop()
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
