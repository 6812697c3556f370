package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	Title       string
	ServerURL   string
	Status      string
	StatusEvent string
	Tools       []models.ToolEntry
	Resources   []models.ResourceEntry
}

// index renders the page with the current status and the cached lists; the
// page then follows /events and refetches the lists on every connect.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	catalog := h.services.CatalogService.Catalog()

	page := indexPage{
		Title:       h.appInfo.GetAppInfo(r.Context()).Name,
		ServerURL:   h.services.CatalogService.ServerURL(),
		Status:      h.services.StatusService.Current().String(),
		StatusEvent: statusEventType,
		Tools:       catalog.Tools,
		Resources:   catalog.Resources,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering index page")
	}
}
