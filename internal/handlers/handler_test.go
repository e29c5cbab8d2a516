// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// The portal backend is faked with an httptest server; the page cache is
// pointed at a dead address so cache calls degrade to misses.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"souarte/internal/backend"
	"souarte/internal/cache"
	"souarte/internal/render"
)

// newTestRenderer parses the embedded templates in dev mode.
func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rn, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return rn
}

// newTestPageCache returns a page cache whose Valkey client points at a
// closed port: every Get is a miss and every Set a no-op.
func newTestPageCache() *cache.PageCache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	return cache.NewPageCache(client, time.Minute)
}

// newFakeBackend starts an httptest server for the given mux and returns
// a client pointed at it.
func newFakeBackend(t *testing.T, mux *http.ServeMux) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL)
}

// writeJSON encodes v onto a fake backend response.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// withRouteParam attaches a chi route parameter to the request, standing
// in for the router's URL matching.
func withRouteParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// testUser returns a stable portal account for fake backend responses.
func testUser(role backend.Role) backend.User {
	return backend.User{
		ID:        uuid.MustParse("6f1b24a0-88f1-4a49-9d15-6f3df1c5a111"),
		Name:      "Ana Souza",
		Email:     "ana@souarteemcuidados.com.br",
		Role:      role,
		Active:    true,
		CreatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}
