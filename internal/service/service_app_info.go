package service

import (
	"context"

	"github.com/MKhiriev/mcp-assistant/internal/config"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/models"
)

type appInfoService struct {
	app   config.ClientApp
	build models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(app config.ClientApp, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if app.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		app:    app,
		build:  build,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Name:    s.app.Name,
		Version: s.app.Version,
		Build:   s.build.BuildVersion(),
		Date:    s.build.BuildDate(),
		Commit:  s.build.BuildCommit(),
	}
}
