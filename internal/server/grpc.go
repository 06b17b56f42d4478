package server

import (
	"net"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	myGRPC "github.com/Zeafen/Recipe-Sharing-sub002/internal/handler/grpc"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"

	"google.golang.org/grpc"
)

// grpcServer serves the standard health protocol. Load balancers see
// NOT_SERVING as soon as shutdown starts.
type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.listener = listener
	return nil
}

func (g *grpcServer) addr() net.Addr {
	if g.listener == nil {
		return nil
	}
	return g.listener.Addr()
}

func (g *grpcServer) serve() {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
	if g.listener != nil {
		_ = g.listener.Close()
	}
}
