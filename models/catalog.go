// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// ToolEntry is the displayed form of a remote tool descriptor.
type ToolEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// String renders the entry the way both UIs list it: "name: description".
func (t ToolEntry) String() string {
	return fmt.Sprintf("%s: %s", t.Name, t.Description)
}

// ResourceEntry is the displayed form of a remote resource descriptor.
type ResourceEntry struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MIMEType string `json:"mime_type,omitempty"`
}

// String renders "name: uri".
func (r ResourceEntry) String() string {
	return fmt.Sprintf("%s: %s", r.Name, r.URI)
}

// TemplateEntry is the displayed form of a resource URI template.
type TemplateEntry struct {
	Name        string `json:"name"`
	URITemplate string `json:"uri_template"`
	Description string `json:"description,omitempty"`
}

// String renders "name: template".
func (t TemplateEntry) String() string {
	return fmt.Sprintf("%s: %s", t.Name, t.URITemplate)
}

// Catalog is one snapshot of what the server exposes.
type Catalog struct {
	Tools     []ToolEntry     `json:"tools"`
	Resources []ResourceEntry `json:"resources"`
	Templates []TemplateEntry `json:"templates,omitempty"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// IsZero reports whether the catalog was never fetched.
func (c Catalog) IsZero() bool {
	return c.FetchedAt.IsZero()
}
