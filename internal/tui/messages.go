package tui

import "github.com/MKhiriev/mcp-assistant/models"

type connectDoneMsg struct {
	catalog models.Catalog
	err     error
}

type refreshDoneMsg struct {
	catalog models.Catalog
	err     error
}

type disconnectDoneMsg struct {
	err error
}

// statusMsg carries a status change pushed by the status service.
type statusMsg models.Status

type copiedMsg struct {
	text string
}

type copyFailedMsg struct {
	err error
}

type clearNoticeMsg struct{}
