// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/yosida95/uritemplate/v3"
)

type catalogService struct {
	handle adapter.Handle
	status StatusService
	logger *logger.Logger

	mu      sync.RWMutex
	catalog models.Catalog

	now func() time.Time
}

// NewCatalogService creates a CatalogService over handle. Failures of the
// Connect action are reported to status.
func NewCatalogService(handle adapter.Handle, status StatusService, log *logger.Logger) CatalogService {
	return &catalogService{
		handle: handle,
		status: status,
		logger: log,
		now:    time.Now,
	}
}

func (s *catalogService) ServerURL() string {
	return s.handle.ServerURL()
}

func (s *catalogService) IsConnected() bool {
	return s.handle.IsConnected()
}

// Connect implements CatalogService. A failed handshake reaches the status
// service as an error event. State errors (already connected, connect in
// progress) go to the caller only: the status keeps showing the transition
// that is actually running.
func (s *catalogService) Connect(ctx context.Context) error {
	err := s.handle.Connect(ctx)
	if err == nil {
		s.logger.Info().Str("server_url", s.handle.ServerURL()).Msg("connected to MCP server")
		return nil
	}

	var connErr *adapter.ConnectionError
	if errors.As(err, &connErr) {
		s.logger.Err(err).Str("server_url", s.handle.ServerURL()).Msg("connect failed")
	} else {
		s.logger.Warn().Err(err).Str("server_url", s.handle.ServerURL()).Msg("connect rejected")
	}
	return err
}

func (s *catalogService) ConnectAndFetch(ctx context.Context) (models.Catalog, error) {
	if !s.handle.IsConnected() {
		if err := s.Connect(ctx); err != nil {
			return models.Catalog{}, err
		}
	}

	catalog, err := s.Refresh(ctx)
	if err != nil {
		s.status.Fail(err)
		return models.Catalog{}, err
	}
	return catalog, nil
}

// Refresh implements CatalogService. Tools are listed before resources; the
// first failure aborts the fetch and keeps the previous catalog. Servers
// without resource templates are common, so a failing template listing is
// logged and leaves the template list empty.
func (s *catalogService) Refresh(ctx context.Context) (models.Catalog, error) {
	tools, err := s.handle.ListTools(ctx)
	if err != nil {
		s.logger.Err(err).Msg("list tools failed")
		return models.Catalog{}, err
	}

	resources, err := s.handle.ListResources(ctx)
	if err != nil {
		s.logger.Err(err).Msg("list resources failed")
		return models.Catalog{}, err
	}

	var templates []models.TemplateEntry
	tmplResult, err := s.handle.ListResourceTemplates(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("list resource templates failed")
	} else {
		templates = templateEntries(tmplResult)
	}

	catalog := models.Catalog{
		Tools:     toolEntries(tools),
		Resources: resourceEntries(resources),
		Templates: templates,
		FetchedAt: s.now(),
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.logger.Debug().
		Int("tools", len(catalog.Tools)).
		Int("resources", len(catalog.Resources)).
		Int("templates", len(catalog.Templates)).
		Msg("catalog fetched")

	return catalog, nil
}

func (s *catalogService) Catalog() models.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

func (s *catalogService) Disconnect(ctx context.Context) error {
	if err := s.handle.Disconnect(ctx); err != nil {
		s.logger.Err(err).Msg("disconnect failed")
		return err
	}

	s.mu.Lock()
	s.catalog = models.Catalog{}
	s.mu.Unlock()

	return nil
}

func (s *catalogService) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if args == nil {
		args = map[string]any{}
	}
	return s.handle.CallTool(ctx, name, args)
}

func (s *catalogService) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	return s.handle.ReadResource(ctx, uri)
}

func (s *catalogService) ExpandTemplate(template string, vars map[string]string) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", ErrEmptyTemplate
	}

	tmpl, err := uritemplate.New(template)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	values := uritemplate.Values{}
	for _, name := range tmpl.Varnames() {
		v, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingTemplateVar, name)
		}
		values.Set(name, uritemplate.String(v))
	}

	uri, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return uri, nil
}

func (s *catalogService) ReadTemplate(ctx context.Context, template string, vars map[string]string) (*mcp.ReadResourceResult, error) {
	uri, err := s.ExpandTemplate(template, vars)
	if err != nil {
		return nil, err
	}
	return s.handle.ReadResource(ctx, uri)
}

func (s *catalogService) Ping(ctx context.Context) (eventsource.Event, error) {
	return s.handle.Ping(ctx)
}

func toolEntries(res *mcp.ListToolsResult) []models.ToolEntry {
	if res == nil {
		return nil
	}
	entries := make([]models.ToolEntry, 0, len(res.Tools))
	for _, t := range res.Tools {
		if t == nil {
			continue
		}
		entries = append(entries, models.ToolEntry{Name: t.Name, Description: t.Description})
	}
	return entries
}

func resourceEntries(res *mcp.ListResourcesResult) []models.ResourceEntry {
	if res == nil {
		return nil
	}
	entries := make([]models.ResourceEntry, 0, len(res.Resources))
	for _, r := range res.Resources {
		if r == nil {
			continue
		}
		entries = append(entries, models.ResourceEntry{Name: r.Name, URI: r.URI, MIMEType: r.MIMEType})
	}
	return entries
}

func templateEntries(res *mcp.ListResourceTemplatesResult) []models.TemplateEntry {
	if res == nil {
		return nil
	}
	entries := make([]models.TemplateEntry, 0, len(res.ResourceTemplates))
	for _, t := range res.ResourceTemplates {
		if t == nil {
			continue
		}
		entries = append(entries, models.TemplateEntry{
			Name:        t.Name,
			URITemplate: t.URITemplate,
			Description: t.Description,
		})
	}
	return entries
}
