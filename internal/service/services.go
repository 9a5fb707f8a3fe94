package service

import (
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CardService    CardService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger, NewUserValidationService()),
		CardService:    NewCardService(storages.CardRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
