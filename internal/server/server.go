package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/handler"
	"github.com/MKhiriev/mesto-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives and all servers
// have stopped. It returns early with the error of the first server that
// fails to serve.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run starts every created server and shuts them all down once ctx is done
// or one of them stops with an error.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	var wg sync.WaitGroup
	// buffered for both servers so a late failure never blocks its goroutine
	errCh := make(chan error, 2)

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Go(func() {
			if err := s.httpServer.RunServer(); err != nil {
				errCh <- fmt.Errorf("HTTP server: %w", err)
			}
		})
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		wg.Go(func() {
			if err := s.gRPCServer.RunServer(); err != nil {
				errCh <- fmt.Errorf("gRPC server: %w", err)
			}
		})
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("server stopped unexpectedly, shutting down the rest")
	}

	s.Shutdown()
	wg.Wait()

	if runErr != nil {
		return runErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
