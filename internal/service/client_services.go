package service

import (
	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
)

type ClientServices struct {
	StatusService  StatusService
	CatalogService CatalogService
	RefreshJob     RefreshJob
}

// NewClientServices wires the services around one connection handle. The
// status service starts listening immediately; call Close when the handle's
// scope ends.
func NewClientServices(handle adapter.Handle, log *logger.Logger) *ClientServices {
	statusSvc := NewStatusService(handle, log)
	catalogSvc := NewCatalogService(handle, statusSvc, log)

	return &ClientServices{
		StatusService:  statusSvc,
		CatalogService: catalogSvc,
		RefreshJob:     NewRefreshJob(catalogSvc, log),
	}
}

// Close stops the refresh job and detaches the status service.
func (s *ClientServices) Close() {
	s.RefreshJob.Stop()
	s.StatusService.Close()
}
