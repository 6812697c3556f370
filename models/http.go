package models

import "time"

// CallToolRequest is the body of POST /api/tools/{name}/call.
type CallToolRequest struct {
	// Arguments are passed to the remote tool as is. The tool's input
	// schema is owned by the server and is not checked locally.
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ReadTemplateRequest identifies a templated resource: the URI template as
// listed by the server and the values of its variables.
type ReadTemplateRequest struct {
	Template string            `json:"template"`
	Vars     map[string]string `json:"vars"`
}

// StatusResponse is returned by GET /api/status and pushed on /events.
type StatusResponse struct {
	Status    string `json:"status"`
	Connected bool   `json:"connected"`
	ServerURL string `json:"server_url"`
}

// ListResponse wraps a list endpoint result with its size.
type ListResponse[T any] struct {
	Items     []T       `json:"items"`
	Count     int       `json:"count"`
	FetchedAt time.Time `json:"fetched_at,omitzero"`
}

// NewListResponse builds a [ListResponse] for items, never serialising a
// null list.
func NewListResponse[T any](items []T, fetchedAt time.Time) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items), FetchedAt: fetchedAt}
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Reachable bool   `json:"reachable"`
	Event     string `json:"event,omitempty"`
	Data      string `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Build   string `json:"build_version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}
