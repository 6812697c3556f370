// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed with [chi.Mux.MethodNotAllowed] on the top
// router and answers 404 instead of chi's 405 when a known path is requested
// with a method it does not serve.
//
// The API lives in a sub-router mounted at /api. chi copies the handler into
// that sub-router, so POST /api/status and DELETE /api/tools end up here as
// well. The method is resolved against the whole routing tree with chi's own
// matcher, sub-routers and URL parameters included ({name} in
// /api/tools/{name}/call). A request whose method does resolve is handed
// back to the router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.RawPath
		if path == "" {
			path = r.URL.Path
		}

		if !router.Match(chi.NewRouteContext(), r.Method, path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
