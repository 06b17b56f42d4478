// Package handler assembles the transport handlers of the recipe server.
package handler

import (
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/handler/grpc"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/handler/http"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
)

// Handlers holds one handler per configured address. A nil field means the
// transport is disabled.
type Handlers struct {
	// HTTP serves the REST API, images and /metrics.
	HTTP *http.Handler
	// GRPC serves the health checking protocol.
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}
