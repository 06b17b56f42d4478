package http

import (
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	registry *prometheus.Registry
	metrics  *httpMetrics
	limiter  *clientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	h := &Handler{
		services: services,
		cfg:      cfg,
		registry: registry,
		metrics:  newHTTPMetrics(registry),
		logger:   logger,
	}
	if cfg.RateLimit > 0 {
		h.limiter = newClientLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	logger.Info().Msg("http handler created")
	return h
}
