package http

import (
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/service"
	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/MKhiriev/mesto-api/internal/validators"
)

type Handler struct {
	services *service.Services

	// validator checks request bodies before they reach the services.
	validator validators.Validator

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewStructValidator(),
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
