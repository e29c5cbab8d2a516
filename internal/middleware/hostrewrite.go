// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"

	"souarte/internal/site"
)

// portalPrefixes are the reserved portal path roots. Requests under them
// are only served on the primary brand's hostnames.
var portalPrefixes = []string{"/portal-admin", "/portal-socio"}

// HostRewrite is the edge routing middleware. It reads the Host header
// once per request and applies two rules before any page handler runs:
//
//  1. Portal protection: portal paths requested through a secondary brand
//     hostname are redirected to the site root, so the back-office is
//     never reachable on clinicasouluz.com.br or souluzassessoria.com.br.
//  2. Root rewrite: a root-path request whose hostname appears in the
//     host route table is internally rewritten to that brand's home path.
//     The rewrite is invisible to the client — no redirect is issued.
//
// All other paths pass through untouched.
func HostRewrite(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hostname := site.NormalizeHost(r.Host)

		if isPortalPath(r.URL.Path) && !site.IsPortalHost(hostname) {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}

		if r.URL.Path == "/" {
			if target, ok := site.HostRoutes[hostname]; ok {
				r.URL.Path = target
			}
		}

		next.ServeHTTP(w, r)
	})
}

// isPortalPath reports whether the path belongs to one of the portal
// subtrees. Matches the prefix itself and anything below it, but not
// lookalikes such as /portal-adminx.
func isPortalPath(path string) bool {
	for _, prefix := range portalPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
