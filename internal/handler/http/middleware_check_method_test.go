// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_WrongMethodOnRealRoutes(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		method string
		path   string
	}{
		// корневой роутер
		{http.MethodPost, "/"},
		{http.MethodDelete, "/events"},
		// под-роутер /api
		{http.MethodDelete, "/api/tools"},
		{http.MethodPut, "/api/tools"},
		{http.MethodGet, "/api/connect"},
		{http.MethodGet, "/api/disconnect"},
		{http.MethodPost, "/api/status"},
		{http.MethodPatch, "/api/resources"},
		{http.MethodPost, "/api/resources/read"},
		{http.MethodGet, "/api/resources/templates/read"},
		// маршрут с параметром
		{http.MethodGet, "/api/tools/echo/call"},
		{http.MethodDelete, "/api/tools/echo/call"},
		{http.MethodOptions, "/api/tools/echo/call"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestCheckHTTPMethod_RegisteredMethodsPassThrough(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/api/version"} {
		rec := env.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCheckHTTPMethod_UnknownPathStays404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/prompts", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckHTTPMethod_ForwardsResolvableMethod(t *testing.T) {
	env := newTestEnv(t)
	router := env.handler.Init()

	// вызов напрямую: метод зарегистрирован, запрос уходит в роутер
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"mcp-web"`)
}

func TestCheckHTTPMethod_MatchesParameterisedRoute(t *testing.T) {
	env := newTestEnv(t)
	router := env.handler.Init()

	req := httptest.NewRequest(http.MethodPut, "/api/tools/echo/call", nil)
	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
