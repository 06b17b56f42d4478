package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/handler"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
)

type server struct {
	transports []transport
	started    []transport

	logger *logger.Logger
}

// NewServer creates one transport per configured address that has a
// matching handler.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

// Shutdown stops started transports in reverse start order.
func (s *server) Shutdown() {
	for i := len(s.started) - 1; i >= 0; i-- {
		s.started[i].shutdown()
	}
	s.started = nil
}

// run starts every transport, waits until ctx is done and then shuts
// everything down.
func (s *server) run(ctx context.Context) error {
	if err := s.start(); err != nil {
		return err
	}

	<-ctx.Done()

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

// start binds every listener first and launches the transports only when all
// of them are bound.
func (s *server) start() error {
	if len(s.transports) == 0 {
		return errNoServersAreCreated
	}

	for i, t := range s.transports {
		if err := t.listen(); err != nil {
			s.started = s.transports[:i]
			s.Shutdown()
			return fmt.Errorf("%w: %s: %w", errListen, t.name(), err)
		}
		s.logger.Debug().Str("transport", t.name()).Str("address", t.addr().String()).Msg("listener bound")
	}

	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go t.serve()
	}
	s.started = append(s.started, s.transports...)

	return nil
}
