// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Public
// brand pages, the administrative portal and the member portal each get
// their own middleware stack.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"souarte/internal/backend"
	"souarte/internal/handlers"
	"souarte/internal/middleware"
	"souarte/internal/render"
	"souarte/internal/site"
	"souarte/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. loginLimiter throttles login submissions;
// its lifecycle belongs to the caller.
func New(
	client *backend.Client,
	rn *render.Renderer,
	public *handlers.Public,
	auth *handlers.Auth,
	admin *handlers.Admin,
	portal *handlers.Portal,
	loginLimiter *middleware.RateLimiter,
	secureCookies bool,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. HostRewrite runs
	// first so every later stage sees the rewritten path.
	r.Use(middleware.HostRewrite)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets. The embed FS already roots at static/.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Public brand pages.
	r.Get("/", public.Home)
	r.Get("/clinica-sou-luz", public.Clinica)
	r.Get("/sou-luz-assessoria", public.Assessoria)
	r.Post("/contato/servicos", public.ContactServices)
	r.Post("/contato/associados", public.ContactAssociates)
	r.Get("/robots.txt", public.Robots)
	r.Get("/sitemap.xml", public.Sitemap)

	unauthorized := unauthorizedHandler(rn)

	// Administrative portal.
	r.Route("/portal-admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))

		r.Get("/login", auth.AdminLoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.AdminLogin)
		r.Post("/sair", auth.AdminLogout)

		guard := middleware.NewGuard(client, backend.RoleAdmin, "/portal-admin/login", unauthorized("/portal-admin/login"))
		r.Group(func(r chi.Router) {
			r.Use(guard.Middleware)

			r.Get("/", admin.Dashboard)

			r.Route("/usuarios", func(r chi.Router) {
				r.Get("/", admin.Users)
				r.Post("/", admin.UserCreate)
				r.Get("/modelos/{kind}", admin.UserTemplateDownload)
				r.Post("/bulk-create", admin.UserBulkCreate)
				r.Post("/bulk-delete", admin.UserBulkDelete)
				r.Get("/{id}", admin.UserEdit)
				r.Post("/{id}", admin.UserUpdate)
				r.Post("/{id}/ativo", admin.UserToggleActive)
				r.Post("/{id}/senha", admin.UserPassword)
				r.Post("/{id}/excluir", admin.UserDelete)
			})

			r.Route("/comunicados", func(r chi.Router) {
				r.Get("/", admin.Announcements)
				r.Post("/", admin.AnnouncementCreate)
				r.Get("/{id}", admin.AnnouncementEdit)
				r.Post("/{id}", admin.AnnouncementUpdate)
				r.Post("/{id}/excluir", admin.AnnouncementDelete)
			})

			r.Route("/cursos", func(r chi.Router) {
				r.Get("/", admin.Courses)
				r.Post("/", admin.CourseCreate)
				r.Get("/{id}", admin.CourseEdit)
				r.Post("/{id}", admin.CourseUpdate)
				r.Post("/{id}/excluir", admin.CourseDelete)
			})

			r.Route("/beneficios", func(r chi.Router) {
				r.Get("/", admin.Partners)
				r.Post("/", admin.PartnerCreate)
				r.Get("/{id}", admin.PartnerEdit)
				r.Post("/{id}", admin.PartnerUpdate)
				r.Post("/{id}/excluir", admin.PartnerDelete)
			})
		})
	})

	// Member portal.
	r.Route("/portal-socio", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))

		r.Get("/login", auth.SocioLoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.SocioLogin)
		r.Post("/sair", auth.SocioLogout)

		guard := middleware.NewGuard(client, backend.RoleSocio, "/portal-socio/login", unauthorized("/portal-socio/login"))
		r.Group(func(r chi.Router) {
			r.Use(guard.Middleware)

			r.Get("/", portal.Home)
			r.Get("/cursos", portal.Courses)
			r.Get("/descontos", portal.Discounts)
			r.Get("/antecipacao", portal.Antecipacao)
			r.Get("/plano-saude", portal.PlanoSaude)
		})
	})

	return r
}

// unauthorizedHandler renders the access-denied page for a session whose
// role does not match the portal, pointing back at that portal's login.
func unauthorizedHandler(rn *render.Renderer) func(loginPath string) http.HandlerFunc {
	return func(loginPath string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			rn.Page(w, r, "unauthorized", &render.PageData{
				Data: map[string]any{"LoginPath": loginPath},
			})
		}
	}
}

// healthHandler reports liveness plus which host the balancer hit.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","host":"` + site.NormalizeHost(r.Host) + `"}`))
}
