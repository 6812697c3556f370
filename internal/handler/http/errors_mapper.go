package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/provider"
	"github.com/MKhiriev/mcp-assistant/internal/service"
	"github.com/MKhiriev/mcp-assistant/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	adapter.ErrEmptyServerURL:    http.StatusInternalServerError,
	adapter.ErrNotConnected:      http.StatusServiceUnavailable,
	adapter.ErrAlreadyConnected:  http.StatusConflict,
	adapter.ErrConnectInProgress: http.StatusConflict,
	adapter.ErrEmptyToolName:     http.StatusBadRequest,
	adapter.ErrEmptyResourceURI:  http.StatusBadRequest,

	service.ErrEmptyTemplate:      http.StatusBadRequest,
	service.ErrInvalidTemplate:    http.StatusBadRequest,
	service.ErrMissingTemplateVar: http.StatusBadRequest,

	provider.ErrNoProvider: http.StatusInternalServerError,
	provider.ErrClosed:     http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var (
		connErr   *adapter.ConnectionError
		remoteErr *adapter.RemoteCallError
	)
	if errors.As(err, &connErr) || errors.As(err, &remoteErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. The message of
// upstream errors is passed through so the page can show "Error: <message>".
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	if _, wErr := utils.WriteJSONError(w, err, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
