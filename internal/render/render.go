// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public brand
// pages and the two portals. It supports full-page and HTMX partial
// rendering, automatically detecting the request type via the HX-Request
// header.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"souarte/internal/backend"
	"souarte/internal/markdown"
	"souarte/internal/middleware"
	"souarte/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active nav section (e.g., "usuarios", "cursos")
	Meta      *site.PageMeta // Head metadata for public pages (nil on portals)
	Brand     *site.Brand    // Brand rendering the page (public pages)
	User      *backend.User  // Authenticated user (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// portalTemplates lists templates rendered inside the portal layout
// (header, nav, logout) instead of the public marketing layout.
var portalTemplates = map[string]bool{
	"admin_dashboard":     true,
	"admin_users":         true,
	"admin_announcements": true,
	"admin_courses":       true,
	"admin_partners":      true,
	"socio_home":          true,
	"socio_courses":       true,
	"socio_discounts":     true,
	"socio_link":          true,
}

// standaloneTemplates lists templates that render as full HTML pages
// without either layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"admin_login":  true,
	"socio_login":  true,
	"unauthorized": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Public pages pair with base.html, portal pages with
// portal_base.html. When devMode is true, templates use CDN-hosted assets
// (TailwindCSS); when false, they reference the compiled local stylesheet.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// markdown converts Markdown body text to trusted HTML.
			// Bodies are authored by portal administrators only.
			"markdown": func(source string) template.HTML {
				out, err := markdown.ToHTML(source)
				if err != nil {
					return template.HTML(template.HTMLEscapeString(source))
				}
				return template.HTML(out)
			},
			// dateBR formats a timestamp the Brazilian way.
			"dateBR": func(t time.Time) string {
				return t.Format("02/01/2006")
			},
			// dateBRPtr formats an optional timestamp, with a fallback label
			// for announcements that never expire.
			"dateBRPtr": func(t *time.Time, fallback string) string {
				if t == nil {
					return fallback
				}
				return t.Format("02/01/2006")
			},
			// dateInput formats a timestamp for <input type="date"> values.
			"dateInput": func(t time.Time) string {
				return t.Format("2006-01-02")
			},
			"dateInputPtr": func(t *time.Time) string {
				if t == nil {
					return ""
				}
				return t.Format("2006-01-02")
			},
			// excerpt truncates long announcement bodies for the carousel.
			"excerpt": func(s string, max int) string {
				runes := []rune(s)
				if len(runes) <= max {
					return s
				}
				return string(runes[:max]) + "..."
			},
			// orDefault substitutes a fallback for empty strings.
			"orDefault": func(s, fallback string) string {
				if strings.TrimSpace(s) == "" {
					return fallback
				}
				return s
			},
			// activeClass highlights the current nav section.
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-[#1f6dd1] text-white"
				}
				return "text-[#1a2732] hover:bg-white/80"
			},
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".html") {
			continue
		}
		tmplName := strings.TrimSuffix(name, ".html")
		if tmplName == "base" || tmplName == "portal_base" {
			continue
		}

		var tmpl *template.Template
		var parseErr error

		switch {
		case standaloneTemplates[tmplName]:
			tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(
				templateFS, "templates/"+name,
			)
		case portalTemplates[tmplName]:
			tmpl, parseErr = template.New("portal_base.html").Funcs(r.funcMap).ParseFS(
				templateFS, "templates/portal_base.html", "templates/"+name,
			)
		default:
			tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
				templateFS, "templates/base.html", "templates/"+name,
			)
		}

		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full page or an HTMX partial, depending on the request
// headers. For HTMX requests, only the "content" block is sent. For full
// page loads, the entire layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	if data.CSRFToken == "" {
		data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	}

	// Inject the authenticated user from context (set by the access guard).
	if data.User == nil {
		data.User = middleware.CurrentUser(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		if err := tmpl.ExecuteTemplate(w, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	if err := rn.Render(w, name, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Render executes the full layout for name into w. Public handlers render
// into a buffer first so the complete page body can be stored in the page
// cache before it is written to the client.
func (rn *Renderer) Render(w io.Writer, name string, data *PageData) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	execName := "base.html"
	if portalTemplates[name] {
		execName = "portal_base.html"
	}
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	return tmpl.ExecuteTemplate(w, execName, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
