// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, the host
// rewrite rules and the portal middleware chains end to end.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"souarte/internal/backend"
	"souarte/internal/cache"
	"souarte/internal/handlers"
	"souarte/internal/middleware"
	"souarte/internal/render"
)

// newTestRouter wires a full router against a fake backend. The page
// cache points at a closed port, so public pages render fresh each time.
func newTestRouter(t *testing.T, mux *http.ServeMux, loginLimit int) http.Handler {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := backend.New(srv.URL)

	rn, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	valkey := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	pageCache := cache.NewPageCache(valkey, time.Minute)

	limiter := middleware.NewRateLimiter(loginLimit, time.Minute)
	t.Cleanup(limiter.Stop)

	return New(
		client,
		rn,
		handlers.NewPublic(rn, pageCache),
		handlers.NewAuth(client, rn),
		handlers.NewAdmin(client, rn),
		handlers.NewPortal(client, rn),
		limiter,
		false,
	)
}

func get(h http.Handler, host, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, http.NewServeMux(), 10)

	rec := get(h, "clinicasouluz.com.br", "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status string `json:"status"`
		Host   string `json:"host"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" || body.Host != "clinicasouluz.com.br" {
		t.Errorf("body = %+v", body)
	}
}

func TestRootRewritesPerHost(t *testing.T) {
	h := newTestRouter(t, http.NewServeMux(), 10)

	tests := []struct {
		host string
		want string
	}{
		{"souarteemcuidados.com.br", "Sou Arte em Cuidados"},
		{"www.clinicasouluz.com.br", "https://clinicasouluz.com.br/"},
		{"souluzassessoria.com.br", "https://souluzassessoria.com.br/"},
	}
	for _, tt := range tests {
		rec := get(h, tt.host, "/")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", tt.host, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("%s: root page does not carry %q", tt.host, tt.want)
		}
	}
}

func TestPortalBlockedOnSecondaryHosts(t *testing.T) {
	h := newTestRouter(t, http.NewServeMux(), 10)

	for _, path := range []string{"/portal-admin", "/portal-admin/login", "/portal-socio/cursos"} {
		rec := get(h, "clinicasouluz.com.br", path)
		if rec.Code != http.StatusTemporaryRedirect {
			t.Errorf("%s: status = %d, want 307", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("%s: Location = %q, want /", path, loc)
		}
	}
}

func TestStaticAssetsServed(t *testing.T) {
	h := newTestRouter(t, http.NewServeMux(), 10)

	rec := get(h, "souarteemcuidados.com.br", "/static/css/input.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestLoginPageSetsCSRFCookie(t *testing.T) {
	h := newTestRouter(t, http.NewServeMux(), 10)

	rec := get(h, "souarteemcuidados.com.br", "/portal-admin/login")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("CSRF cookie not set on login page")
	}
	if !strings.Contains(rec.Body.String(), token) {
		t.Error("login form does not embed the CSRF token")
	}
}

func TestPortalPostWithoutCSRFRejected(t *testing.T) {
	h := newTestRouter(t, http.NewServeMux(), 10)

	req := httptest.NewRequest(http.MethodPost, "/portal-admin/login", strings.NewReader("email=a%40b.c&password=x"))
	req.Host = "souarteemcuidados.com.br"
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})
	h := newTestRouter(t, mux, 10)

	rec := get(h, "souarteemcuidados.com.br", "/portal-admin/usuarios")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/portal-admin/login" {
		t.Errorf("Location = %q", loc)
	}
}

func TestGuardWrongRoleUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"6f1b24a0-88f1-4a49-9d15-6f3df1c5a111","name":"Ana Souza","email":"ana@souarteemcuidados.com.br","role":"socio","active":true}`))
	})
	h := newTestRouter(t, mux, 10)

	rec := get(h, "souarteemcuidados.com.br", "/portal-admin")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/portal-admin/login") {
		t.Error("unauthorized page should point at the portal login")
	}
}

func TestGuardAdmitsMatchingRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"6f1b24a0-88f1-4a49-9d15-6f3df1c5a111","name":"Ana Souza","email":"ana@souarteemcuidados.com.br","role":"admin","active":true}`))
	})
	mux.HandleFunc("GET /admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	h := newTestRouter(t, mux, 10)

	rec := get(h, "souarteemcuidados.com.br", "/portal-admin/usuarios")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Gestão de usuários") {
		t.Error("user management page missing")
	}
	if !strings.Contains(body, "Ana Souza") {
		t.Error("header should show the signed-in user")
	}
}

func TestLoginRateLimited(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Credenciais inválidas."}`))
	})
	h := newTestRouter(t, mux, 2)

	// Grab a CSRF cookie so the submissions reach the limiter's handler.
	seed := get(h, "souarteemcuidados.com.br", "/portal-socio/login")
	var csrf *http.Cookie
	for _, c := range seed.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			csrf = c
		}
	}
	if csrf == nil {
		t.Fatal("no CSRF cookie issued")
	}

	attempt := func() *httptest.ResponseRecorder {
		form := url.Values{
			"email":                  {"ana@souarteemcuidados.com.br"},
			"password":               {"errada"},
			middleware.CSRFFormField: {csrf.Value},
		}
		req := httptest.NewRequest(http.MethodPost, "/portal-socio/login", strings.NewReader(form.Encode()))
		req.Host = "souarteemcuidados.com.br"
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(csrf)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := attempt(); rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("attempt %d: status = %d, want 422", i+1, rec.Code)
		}
	}
	if rec := attempt(); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third attempt: status = %d, want 429", rec.Code)
	}
}

func TestRobotsPerHost(t *testing.T) {
	h := newTestRouter(t, http.NewServeMux(), 10)

	rec := get(h, "souluzassessoria.com.br", "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Disallow: /portal-admin") {
		t.Error("portal paths must be disallowed")
	}
	if !strings.Contains(body, "https://souluzassessoria.com.br/sitemap.xml") {
		t.Error("sitemap URL should match the requested host")
	}
}
