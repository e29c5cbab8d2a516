// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"souarte/internal/backend"
	"souarte/internal/render"
)

const errWrongPortal = "Seu perfil não tem acesso a este portal."

// Auth handles login and logout for both portals. Sessions live on the
// backend; this layer relays credentials in and Set-Cookie headers out.
type Auth struct {
	client *backend.Client
	rn     *render.Renderer
}

// NewAuth creates a new Auth handler group.
func NewAuth(client *backend.Client, rn *render.Renderer) *Auth {
	return &Auth{client: client, rn: rn}
}

// AdminLoginPage renders the administrative portal login form.
func (a *Auth) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	a.loginPage(w, r, "admin_login", backend.RoleAdmin, "/portal-admin")
}

// SocioLoginPage renders the member portal login form.
func (a *Auth) SocioLoginPage(w http.ResponseWriter, r *http.Request) {
	a.loginPage(w, r, "socio_login", backend.RoleSocio, "/portal-socio")
}

// loginPage shows the login form, skipping straight to the portal when the
// browser already holds a session with the right role.
func (a *Auth) loginPage(w http.ResponseWriter, r *http.Request, tmpl string, role backend.Role, portalRoot string) {
	if user, err := a.client.Me(r.Context(), r); err == nil && user.Role == role {
		http.Redirect(w, r, portalRoot, http.StatusSeeOther)
		return
	}
	a.rn.Page(w, r, tmpl, &render.PageData{Data: map[string]any{}})
}

// AdminLogin processes an administrative portal login submission.
func (a *Auth) AdminLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, "admin_login", backend.RoleAdmin, "/portal-admin")
}

// SocioLogin processes a member portal login submission.
func (a *Auth) SocioLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, "socio_login", backend.RoleSocio, "/portal-socio")
}

// login authenticates against the backend. On success the backend's
// session cookies are relayed to the browser and the user lands on the
// portal root. Wrong-role logins never receive the session cookies.
func (a *Auth) login(w http.ResponseWriter, r *http.Request, tmpl string, role backend.Role, portalRoot string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")

	if email == "" || password == "" {
		a.loginError(w, r, tmpl, email, "Informe e-mail e senha.")
		return
	}

	user, cookies, err := a.client.Login(r.Context(), email, password)
	if err != nil {
		if apiErr, ok := err.(*backend.APIError); ok {
			a.loginError(w, r, tmpl, email, apiErr.Message)
			return
		}
		slog.Error("backend login failed", "error", err)
		a.loginError(w, r, tmpl, email, "Não foi possível entrar. Tente novamente.")
		return
	}

	if user.Role != role {
		a.loginError(w, r, tmpl, email, errWrongPortal)
		return
	}

	for _, c := range cookies {
		http.SetCookie(w, c)
	}
	http.Redirect(w, r, portalRoot, http.StatusSeeOther)
}

func (a *Auth) loginError(w http.ResponseWriter, r *http.Request, tmpl, email, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	a.rn.Page(w, r, tmpl, &render.PageData{
		Data: map[string]any{"Email": email, "Error": message},
	})
}

// AdminLogout ends an administrative portal session.
func (a *Auth) AdminLogout(w http.ResponseWriter, r *http.Request) {
	a.logout(w, r, "/portal-admin/login")
}

// SocioLogout ends a member portal session.
func (a *Auth) SocioLogout(w http.ResponseWriter, r *http.Request) {
	a.logout(w, r, "/portal-socio/login")
}

// logout is fire-and-forget: even when the backend call fails, the
// expired cookies it may have produced are relayed and the user returns
// to the login page.
func (a *Auth) logout(w http.ResponseWriter, r *http.Request, loginPath string) {
	cookies, err := a.client.Logout(r.Context(), r)
	if err != nil {
		slog.Warn("backend logout failed", "error", err)
	}
	for _, c := range cookies {
		http.SetCookie(w, c)
	}
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}
