package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
)

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("no database configured")
	}

	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ping").Msg("database is unreachable")
		return fmt.Errorf("database is unreachable: %w", err)
	}

	return nil
}
