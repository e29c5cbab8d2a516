// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"souarte/internal/backend"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// UserKey is the context key for the authenticated portal user.
	UserKey contextKey = "portal_user"
)

// Guard gates a portal subtree on a backend identity check. Each request
// calls the backend's who-am-I endpoint with the browser's forwarded
// cookie: an unauthenticated or failed check redirects to the portal's
// login page, a wrong-role identity renders the unauthorized page, and a
// matching identity is injected into the request context for handlers.
type Guard struct {
	client    *backend.Client
	role      backend.Role
	loginPath string

	// unauthorized renders the role-mismatch page. The identified user is
	// in the request context; no redirect is forced, the visitor can
	// navigate to the right login themselves.
	unauthorized http.HandlerFunc
}

// NewGuard creates a guard requiring the given role for a portal whose
// login page lives at loginPath.
func NewGuard(client *backend.Client, role backend.Role, loginPath string, unauthorized http.HandlerFunc) *Guard {
	return &Guard{
		client:       client,
		role:         role,
		loginPath:    loginPath,
		unauthorized: unauthorized,
	}
}

// Middleware enforces the guard on every request passing through it.
// Any identity-check failure — network error or non-2xx, most commonly an
// unauthenticated 401 — simply navigates to the login page; the error
// itself is never surfaced.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.client.Me(r.Context(), r)
		if err != nil {
			http.Redirect(w, r, g.loginPath, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, &user)
		r = r.WithContext(ctx)

		if user.Role != g.role {
			if g.unauthorized != nil {
				g.unauthorized(w, r)
				return
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CurrentUser extracts the authenticated portal user from the request
// context. Returns nil outside a guarded subtree.
func CurrentUser(ctx context.Context) *backend.User {
	user, _ := ctx.Value(UserKey).(*backend.User)
	return user
}
