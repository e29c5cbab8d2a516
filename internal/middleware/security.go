// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds baseline security headers to every response, brand
// pages and portals alike. The portals hold member data, so neither
// surface may be framed by another origin or leak full referrers.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Never let the browser second-guess the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// No cross-origin framing of the portals.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// The legacy XSS filter does more harm than good.
		h.Set("X-XSS-Protection", "0")

		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// The sites use no device APIs and take no part in ad cohorts.
		h.Set("Permissions-Policy", "camera=(), geolocation=(), interest-cohort=(), microphone=()")

		next.ServeHTTP(w, r)
	})
}
