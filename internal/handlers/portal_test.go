// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"souarte/internal/backend"
)

func newPortalHandlers(t *testing.T, mux *http.ServeMux) *Portal {
	t.Helper()
	return NewPortal(newFakeBackend(t, mux), newTestRenderer(t))
}

// deadPortal points at a closed port: every backend call fails, which the
// member pages must absorb gracefully.
func deadPortal(t *testing.T) *Portal {
	t.Helper()
	return NewPortal(backend.New("http://127.0.0.1:1"), newTestRenderer(t))
}

func TestPortalHomeRendersAnnouncementsAndLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portal/announcements", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []backend.Announcement{testAnnouncement()})
	})
	mux.HandleFunc("GET /portal/links", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []backend.PortalLink{{
			ID:      uuid.New(),
			Slug:    "plantao",
			Title:   "Pega plantão",
			LinkURL: "https://plantao.souarteemcuidados.com.br/",
		}})
	})
	portal := newPortalHandlers(t, mux)

	rec := httptest.NewRecorder()
	portal.Home(rec, httptest.NewRequest(http.MethodGet, "/portal-socio", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Plantões de setembro") {
		t.Error("announcement missing from dashboard")
	}
	if !strings.Contains(body, "https://plantao.souarteemcuidados.com.br/") {
		t.Error("backend link record should override the fallback URL")
	}
	if strings.Contains(body, "https://pegaplantao.com.br/") {
		t.Error("fallback URL should be replaced by the backend record")
	}
	// Slugs absent from the backend keep their default copy.
	if !strings.Contains(body, "Orientações para antecipação de pagamentos e fluxos financeiros.") {
		t.Error("antecipacao fallback copy missing")
	}
}

func TestPortalHomeBackendDownUsesFallbacks(t *testing.T) {
	portal := deadPortal(t)

	rec := httptest.NewRecorder()
	portal.Home(rec, httptest.NewRequest(http.MethodGet, "/portal-socio", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Nenhum comunicado publicado no momento.") {
		t.Error("empty announcement state missing")
	}
	if !strings.Contains(body, "https://pegaplantao.com.br/") {
		t.Error("plantao fallback link missing")
	}
	if !strings.Contains(body, "Informações sobre credenciamento e cobertura do plano de saúde.") {
		t.Error("plano de saúde fallback copy missing")
	}
}

func TestPortalCourses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portal/courses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []backend.Course{{
			ID:        uuid.New(),
			Title:     "Atendimento pré-hospitalar",
			AccessURL: "https://cursos.souarteemcuidados.com.br/aph",
		}})
	})
	portal := newPortalHandlers(t, mux)

	rec := httptest.NewRecorder()
	portal.Courses(rec, httptest.NewRequest(http.MethodGet, "/portal-socio/cursos", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Atendimento pré-hospitalar") {
		t.Error("course missing from list")
	}
	if !strings.Contains(body, "https://cursos.souarteemcuidados.com.br/aph") {
		t.Error("course access link missing")
	}
}

func TestPortalCoursesEmptyState(t *testing.T) {
	portal := deadPortal(t)

	rec := httptest.NewRecorder()
	portal.Courses(rec, httptest.NewRequest(http.MethodGet, "/portal-socio/cursos", nil))

	if !strings.Contains(rec.Body.String(), "Nenhum curso disponível no momento.") {
		t.Error("empty course state missing")
	}
}

func TestPortalDiscountsListsPartners(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portal/partners", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []backend.Partner{{
			ID:      uuid.New(),
			Name:    "Drogaria Central",
			LinkURL: "https://drogariacentral.example",
		}})
	})
	portal := newPortalHandlers(t, mux)

	rec := httptest.NewRecorder()
	portal.Discounts(rec, httptest.NewRequest(http.MethodGet, "/portal-socio/descontos", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Drogaria Central") {
		t.Error("partner missing from discounts page")
	}
}

func TestPortalDiscountsComingSoonWhenEmpty(t *testing.T) {
	portal := deadPortal(t)

	rec := httptest.NewRecorder()
	portal.Discounts(rec, httptest.NewRequest(http.MethodGet, "/portal-socio/descontos", nil))

	if !strings.Contains(rec.Body.String(), "Em breve") {
		t.Error("coming-soon state missing")
	}
}

func TestAntecipacaoBackendRecordWins(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portal/links/antecipacao", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, backend.PortalLink{
			ID:          uuid.New(),
			Slug:        "antecipacao",
			Title:       "Antecipação",
			Description: "Prazo de repasse atualizado para 2 dias úteis.",
			LinkURL:     "https://financeiro.souarteemcuidados.com.br/",
		})
	})
	portal := newPortalHandlers(t, mux)

	rec := httptest.NewRecorder()
	portal.Antecipacao(rec, httptest.NewRequest(http.MethodGet, "/portal-socio/antecipacao", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Prazo de repasse atualizado para 2 dias úteis.") {
		t.Error("backend description should replace the default copy")
	}
	if !strings.Contains(body, "https://financeiro.souarteemcuidados.com.br/") {
		t.Error("backend link URL missing")
	}
	if !strings.Contains(body, "Acessar sistema") {
		t.Error("call-to-action label missing")
	}
}

func TestPlanoSaudeBackendDownKeepsDefaults(t *testing.T) {
	portal := deadPortal(t)

	rec := httptest.NewRecorder()
	portal.PlanoSaude(rec, httptest.NewRequest(http.MethodGet, "/portal-socio/plano-saude", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Credenciamento e cobertura") {
		t.Error("page heading missing")
	}
	if !strings.Contains(body, "https://wa.me/5569999220012") {
		t.Error("fallback link URL missing")
	}
	if !strings.Contains(body, "Portal de credenciamento") {
		t.Error("call-to-action label missing")
	}
}
