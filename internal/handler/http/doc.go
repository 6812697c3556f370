// Package http implements the web client of the MCP assistant.
//
// It serves the HTML page, a JSON API over the catalog and status services
// and an event stream that pushes connection status changes to the page.
// Request tracing, access logging and the provider scope of the connection
// handle are applied by middleware before requests reach the handlers.
package http
