package grpc

import (
	"context"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/service"
	"github.com/MKhiriev/mesto-api/internal/utils"
)

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. A Check reports SERVING
// only while the database answers pings, so orchestrators can probe the API
// without credentials.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	traceIDs *utils.UUIDGenerator

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h)
}

// Check answers a health probe. The empty service name and "mesto" both
// refer to the API as a whole.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", serviceName:
	default:
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVICE_UNKNOWN}, nil
	}

	if err := h.services.AppInfoService.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

const serviceName = "mesto"
