package grpc

import (
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Handler is the root gRPC transport handler.
//
// The recipe API itself is served over HTTP; the gRPC side carries the
// standard health checking protocol so that orchestrators can probe the
// process without going through the public API.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health reports the serving status of the process.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. The health status starts as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return h
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// ServerOptions returns the interceptors every gRPC server built around h
// should use.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.unaryLogging),
		grpc.ChainStreamInterceptor(h.streamLogging),
	}
}

// Shutdown flips every service to NOT_SERVING so that watchers notice the
// process is going away before connections are closed.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
