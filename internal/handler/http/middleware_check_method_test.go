// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux so the check can be tested
// without services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/kinds", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/checkout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/api/checkout/{sessionID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET passes", method: http.MethodGet, path: "/api/kinds", wantStatus: http.StatusOK},
		{name: "registered POST passes", method: http.MethodPost, path: "/api/checkout", wantStatus: http.StatusCreated},
		{name: "parameterised GET passes", method: http.MethodGet, path: "/api/checkout/cs_1", wantStatus: http.StatusOK},
		{name: "wrong method on static route", method: http.MethodPut, path: "/api/kinds", wantStatus: http.StatusNotFound},
		{name: "wrong method on checkout", method: http.MethodGet, path: "/api/checkout", wantStatus: http.StatusNotFound},
		{name: "wrong method on parameterised route", method: http.MethodDelete, path: "/api/checkout/cs_1", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
