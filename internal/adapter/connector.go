// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/mcp-assistant/internal/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// sdkConnector connects through the official MCP SDK over the SSE transport.
// One *mcp.Client is shared by every session it opens.
type sdkConnector struct {
	client     *mcp.Client
	endpoint   string
	httpClient *http.Client
}

// NewSDKConnector returns a [Connector] that announces app as the client
// identity and reaches serverURL with httpClient.
func NewSDKConnector(app config.ClientApp, serverURL string, httpClient *http.Client) Connector {
	return &sdkConnector{
		client:     mcp.NewClient(&mcp.Implementation{Name: app.Name, Version: app.Version}, nil),
		endpoint:   serverURL,
		httpClient: httpClient,
	}
}

func (c *sdkConnector) Connect(ctx context.Context) (Session, error) {
	transport := &mcp.SSEClientTransport{
		Endpoint:   c.endpoint,
		HTTPClient: c.httpClient,
	}

	session, err := c.client.Connect(ctx, transport, nil)
	if err != nil {
		// a typed nil would make the returned interface non-nil
		return nil, err
	}
	return session, nil
}
