package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/mcp-assistant/internal/utils"
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/go-chi/chi/v5"
)

// catalog returns the cached catalog, fetching it when nothing is cached yet
// or when the request asks for ?refresh=true.
func (h *Handler) catalog(r *http.Request) (models.Catalog, error) {
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	catalog := h.services.CatalogService.Catalog()
	if !catalog.IsZero() && !refresh {
		return catalog, nil
	}
	return h.services.CatalogService.Refresh(r.Context())
}

func (h *Handler) listTools(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog(r)
	if err != nil {
		writeError(w, r, err, "error listing tools")
		return
	}

	writeJSON(w, r, models.NewListResponse(catalog.Tools, catalog.FetchedAt))
}

func (h *Handler) listResources(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog(r)
	if err != nil {
		writeError(w, r, err, "error listing resources")
		return
	}

	writeJSON(w, r, models.NewListResponse(catalog.Resources, catalog.FetchedAt))
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog(r)
	if err != nil {
		writeError(w, r, err, "error listing resource templates")
		return
	}

	writeJSON(w, r, models.NewListResponse(catalog.Templates, catalog.FetchedAt))
}

func (h *Handler) callTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req models.CallToolRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, ErrInvalidJSON, err.Error())
		return
	}

	result, err := h.services.CatalogService.CallTool(r.Context(), name, req.Arguments)
	if err != nil {
		writeError(w, r, err, "tool call failed")
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) readResource(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.CatalogService.ReadResource(r.Context(), r.URL.Query().Get("uri"))
	if err != nil {
		writeError(w, r, err, "resource read failed")
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) readTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.ReadTemplateRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, ErrInvalidJSON, err.Error())
		return
	}

	result, err := h.services.CatalogService.ReadTemplate(r.Context(), req.Template, req.Vars)
	if err != nil {
		writeError(w, r, err, "templated resource read failed")
		return
	}

	writeJSON(w, r, result)
}
