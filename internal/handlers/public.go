// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"souarte/internal/cache"
	"souarte/internal/render"
	"souarte/internal/site"
)

// Public groups handlers for the three brand sites. Rendered pages are
// stored in the Valkey page cache keyed by hostname and path, because the
// same path produces different canonical and social metadata per domain.
type Public struct {
	rn        *render.Renderer
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(rn *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{rn: rn, pageCache: pageCache}
}

// Home renders the primary Sou Arte em Cuidados page.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.serveBrandPage(w, r, "home", site.KeySouArte, map[string]any{
		"PracticeAreas":       practiceAreas,
		"Services":            souArteServices,
		"Segments":            souArteSegments,
		"Cities":              souArteCities,
		"AssociateHighlights": associateHighlights,
		"ServiceTypes":        serviceTypeOptions,
		"Professions":         professionOptions,
		"WorkAreas":           workAreaOptions,
		"Availabilities":      availabilityOptions,
	})
}

// Clinica renders the Clínica Sou Luz page.
func (p *Public) Clinica(w http.ResponseWriter, r *http.Request) {
	p.serveBrandPage(w, r, "clinica", site.KeyClinica, map[string]any{
		"WhatsApp":   clinicWhatsApp,
		"Services":   clinicServices,
		"CareModes":  clinicCareModes,
		"Highlights": clinicHighlights,
		"ABAPlans":   abaPlans,
		"ABACare":    abaCare,
	})
}

// Assessoria renders the Sou Luz Assessoria page.
func (p *Public) Assessoria(w http.ResponseWriter, r *http.Request) {
	siteURL := site.URL(site.NormalizeHost(r.Host))
	p.serveBrandPage(w, r, "assessoria", site.KeyAssessoria, map[string]any{
		"Services":       consultingServices,
		"Outcomes":       consultingOutcomes,
		"Steps":          consultingSteps,
		"StructuredData": consultingStructuredData(siteURL),
	})
}

// serveBrandPage renders a brand page, caching the complete response body.
// Cache keys are host-scoped: the canonical URL and Open Graph blocks vary
// per domain even when the template and content are identical.
func (p *Public) serveBrandPage(w http.ResponseWriter, r *http.Request, tmpl string, key site.Key, data map[string]any) {
	ctx := r.Context()
	host := site.NormalizeHost(r.Host)
	cacheKey := cache.PageKey(host, r.URL.Path)

	if cached, ok := p.pageCache.Get(ctx, cacheKey); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	brand := site.Get(key)
	meta := site.MetaForBrand(host, key, r.URL.Path)

	var buf bytes.Buffer
	err := p.rn.Render(&buf, tmpl, &render.PageData{
		Title: brand.Title,
		Meta:  meta,
		Brand: brand,
		Data:  data,
	})
	if err != nil {
		slog.Error("brand page render failed", "error", err, "template", tmpl, "host", host)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cacheKey, buf.Bytes())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// ContactServices handles the service request form. The submission is
// turned into a pre-filled WhatsApp conversation (or a mailto link when
// the visitor picked the e-mail button); nothing is persisted.
func (p *Public) ContactServices(w http.ResponseWriter, r *http.Request) {
	p.contactRedirect(w, r, site.FormServices)
}

// ContactAssociates handles the professional association form.
func (p *Public) ContactAssociates(w http.ResponseWriter, r *http.Request) {
	p.contactRedirect(w, r, site.FormAssociates)
}

func (p *Public) contactRedirect(w http.ResponseWriter, r *http.Request, form site.ContactForm) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	// Name and phone are the minimum for a conversation to make sense.
	if strings.TrimSpace(r.PostForm.Get("Nome")) == "" || strings.TrimSpace(r.PostForm.Get("Telefone")) == "" {
		http.Redirect(w, r, "/#contato", http.StatusSeeOther)
		return
	}

	message := site.BuildContactMessage(form, r.PostForm)
	target := site.WhatsAppURL(message)
	if r.PostForm.Get("canal") == "email" {
		subject, _, _ := strings.Cut(message, "\n")
		target = site.MailtoURL(subject, message)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Robots serves robots.txt. Portal routes are kept out of search indexes;
// the sitemap URL is built from the requesting domain so each brand
// advertises its own.
func (p *Public) Robots(w http.ResponseWriter, r *http.Request) {
	host := site.NormalizeHost(r.Host)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, `User-agent: *
Allow: /
Disallow: /portal-admin
Disallow: /portal-socio

Sitemap: %s/sitemap.xml
`, site.URL(host))
}

// Sitemap serves a minimal sitemap: each brand domain has a single
// indexable page, its home.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	host := site.NormalizeHost(r.Host)

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>%s/</loc>
    <changefreq>weekly</changefreq>
    <priority>1.0</priority>
  </url>
</urlset>
`, site.URL(host))
}

// consultingStructuredData builds the JSON-LD block for the consulting
// brand. Returned as template.JS so html/template leaves the script body
// alone.
func consultingStructuredData(siteURL string) template.JS {
	return template.JS(fmt.Sprintf(`{
  "@context": "https://schema.org",
  "@type": "ProfessionalService",
  "name": "Sou Luz Assessoria",
  "description": "Gestão, auditoria e consultoria em saúde para clínicas e empreendimentos.",
  "url": %q,
  "areaServed": "Brasil",
  "telephone": "+55 69 99922-0012"
}`, siteURL))
}
