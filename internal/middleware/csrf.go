package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

const (
	// csrfTokenLength is the byte length of CSRF tokens (32 bytes = 64 hex chars).
	csrfTokenLength = 32

	// CSRFCookieName is the cookie that holds the CSRF token.
	CSRFCookieName = "sa_csrf"

	// CSRFHeaderName is an alternative header carrying the CSRF token.
	CSRFHeaderName = "X-CSRF-Token"

	// CSRFFormField is the hidden form field name used by the portal forms.
	CSRFFormField = "csrf_token"

	// csrfTokenKey is the context key the current token is stored under.
	csrfTokenKey contextKey = "csrf_token"
)

// NewCSRF returns double-submit cookie CSRF protection middleware for the
// portal forms. It ensures a token cookie exists, exposes the token to
// templates through the request context, and validates that state-changing
// requests (POST, PUT, PATCH, DELETE) echo the same token in a header or
// form field. The token is independent of the backend session, so the
// middleware needs no server-side state. secure marks the cookie
// HTTPS-only for production deployments.
func NewCSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Ensure a CSRF token cookie exists.
			cookie, err := r.Cookie(CSRFCookieName)
			if err != nil || cookie.Value == "" {
				token, err := generateCSRFToken()
				if err != nil {
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false, // Templates may read it for fetch headers
					Secure:   secure,
					SameSite: http.SameSiteStrictMode,
				})
				cookie = &http.Cookie{Value: token}
			}

			// Make the token available to templates for hidden fields.
			ctx := context.WithValue(r.Context(), csrfTokenKey, cookie.Value)
			r = r.WithContext(ctx)

			// Safe methods don't need CSRF validation.
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// For state-changing methods, validate the token.
			// Check header first, then form field.
			submitted := r.Header.Get(CSRFHeaderName)
			if submitted == "" {
				submitted = r.FormValue(CSRFFormField)
			}

			if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(submitted)) != 1 {
				http.Error(w, "CSRF token mismatch", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CSRFTokenFromCtx extracts the current CSRF token from the request
// context. Used in templates to populate hidden form fields.
func CSRFTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(csrfTokenKey).(string)
	return token
}

// generateCSRFToken creates a cryptographically random token.
func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
