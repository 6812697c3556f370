package http

import (
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/provider"
	"github.com/MKhiriev/mcp-assistant/internal/service"
	"github.com/MKhiriev/mcp-assistant/internal/utils"
)

// traceIDGenerator is satisfied by [utils.TraceIDGenerator].
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.ClientServices
	appInfo  service.AppInfoService
	provider *provider.Provider

	traceIDs       traceIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the web handler. Requests under /events and /api run
// inside p's scope.
func NewHandler(services *service.ClientServices, appInfo service.AppInfoService, p *provider.Provider, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		appInfo:        appInfo,
		provider:       p,
		traceIDs:       utils.NewTraceIDGenerator(),
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
