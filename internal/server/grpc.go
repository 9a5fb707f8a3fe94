package server

import (
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/mesto-api/internal/config"
	myGRPC "github.com/MKhiriev/mesto-api/internal/handler/grpc"
	"github.com/MKhiriev/mesto-api/internal/logger"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return err
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Msg("gRPC server Serve")
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
