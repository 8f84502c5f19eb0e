package service

import (
	"context"

	"github.com/MKhiriev/go-courses-api/internal/app"
	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService. An unset version is
// reported as "N/A".
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) Welcome(ctx context.Context) string {
	return app.MsgWelcome
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
