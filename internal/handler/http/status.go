package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/provider"
	"github.com/MKhiriev/mcp-assistant/internal/utils"
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/tmaxmax/go-sse"
)

const statusEventType = "status"

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	handle, err := provider.FromContext(r.Context())
	if err != nil {
		writeError(w, r, err, "status requested outside of the provider scope")
		return
	}

	writeJSON(w, r, models.StatusResponse{
		Status:    h.services.StatusService.Current().String(),
		Connected: handle.IsConnected(),
		ServerURL: handle.ServerURL(),
	})
}

// events streams every status change to the page. The current status is
// sent first so a fresh page does not wait for the next transition.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := provider.FromContext(r.Context()); err != nil {
		writeError(w, r, err, "event stream requested outside of the provider scope")
		return
	}

	sess, err := sse.Upgrade(w, r)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", ErrStreamingUnsupported, err), "error upgrading to event stream")
		return
	}

	statusCh, unsubscribe := h.services.StatusService.Subscribe()
	defer unsubscribe()

	if err = h.sendStatus(sess, h.services.StatusService.Current()); err != nil {
		log.Debug().Err(err).Msg("event stream closed")
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case status, ok := <-statusCh:
			if !ok {
				return
			}
			if err = h.sendStatus(sess, status); err != nil {
				log.Debug().Err(err).Msg("event stream closed")
				return
			}
		}
	}
}

func (h *Handler) sendStatus(sess *sse.Session, status models.Status) error {
	data, err := json.Marshal(models.StatusResponse{
		Status:    status.String(),
		Connected: status.Kind == models.StatusConnected,
		ServerURL: h.services.CatalogService.ServerURL(),
	})
	if err != nil {
		return fmt.Errorf("error marshalling status: %w", err)
	}

	msg := &sse.Message{Type: sse.Type(statusEventType)}
	msg.AppendData(string(data))

	if err = sess.Send(msg); err != nil {
		return err
	}
	return sess.Flush()
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.services.CatalogService.ConnectAndFetch(r.Context())
	if err != nil {
		writeError(w, r, err, "connect failed")
		return
	}

	writeJSON(w, r, catalog)
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CatalogService.Disconnect(r.Context()); err != nil {
		writeError(w, r, err, "disconnect failed")
		return
	}

	writeJSON(w, r, models.StatusResponse{
		Status:    h.services.StatusService.Current().String(),
		Connected: h.services.CatalogService.IsConnected(),
		ServerURL: h.services.CatalogService.ServerURL(),
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	event, err := h.services.CatalogService.Ping(r.Context())
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("server ping failed")
		if _, wErr := utils.WriteJSON(w, models.HealthResponse{Reachable: false, Error: err.Error()}, http.StatusServiceUnavailable); wErr != nil {
			logger.FromRequest(r).Err(wErr).Msg("error writing response")
		}
		return
	}

	writeJSON(w, r, models.HealthResponse{Reachable: true, Event: event.Type, Data: event.Data})
}
