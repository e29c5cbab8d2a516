// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"souarte/internal/backend"
	"souarte/internal/render"
)

// fallbackLinks keeps the member portal usable when the backend has no
// portal-link records (or the list call fails): each fixed resource card
// still renders with its default copy and destination.
var fallbackLinks = map[string]backend.PortalLink{
	"plantao": {
		Slug:        "plantao",
		Title:       "Pega plantão",
		Description: "Acesse rapidamente o sistema de plantão disponível para novos atendimentos.",
		Body:        "Clique no link para consultar as oportunidades e registrar seu interesse em novos plantões.",
		LinkURL:     "https://pegaplantao.com.br/",
	},
	"antecipacao": {
		Slug:        "antecipacao",
		Title:       "Antecipação",
		Description: "Orientações para antecipação de pagamentos e fluxos financeiros.",
		Body:        "Siga as instruções oficiais e valide seus dados antes de solicitar a antecipação.",
		LinkURL:     "https://souarte.tci-br.com/",
	},
	"plano-saude": {
		Slug:        "plano-saude",
		Title:       "Plano de saúde",
		Description: "Informações sobre credenciamento e cobertura do plano de saúde.",
		Body:        "Confira os requisitos e acesse o portal para solicitar credenciamento.",
		LinkURL:     "https://wa.me/5569999220012",
	},
}

// Portal groups the member portal handlers. Everything is read-only:
// members consume announcements, courses, partner discounts and the fixed
// resource links.
type Portal struct {
	client *backend.Client
	rn     *render.Renderer
}

// NewPortal creates a new Portal handler group.
func NewPortal(client *backend.Client, rn *render.Renderer) *Portal {
	return &Portal{client: client, rn: rn}
}

// Home renders the member dashboard: the announcement carousel plus the
// resource cards. Backend failures degrade to an empty carousel and the
// fallback links rather than an error page.
func (p *Portal) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	announcements, err := p.client.PortalAnnouncements(ctx, r)
	if err != nil {
		slog.Warn("portal announcements unavailable", "error", err)
		announcements = nil
	}

	links := make(map[string]backend.PortalLink, len(fallbackLinks))
	for slug, link := range fallbackLinks {
		links[slug] = link
	}
	if fetched, err := p.client.PortalLinks(ctx, r); err != nil {
		slog.Warn("portal links unavailable", "error", err)
	} else {
		for _, link := range fetched {
			links[link.Slug] = link
		}
	}

	p.rn.Page(w, r, "socio_home", socioPage("home", "Portal do Sócio", map[string]any{
		"Announcements": announcements,
		"Plantao":       links["plantao"],
		"Antecipacao":   links["antecipacao"],
		"PlanoSaude":    links["plano-saude"],
	}))
}

// Courses renders the member course list.
func (p *Portal) Courses(w http.ResponseWriter, r *http.Request) {
	courses, err := p.client.PortalCourses(r.Context(), r)
	if err != nil {
		slog.Warn("portal courses unavailable", "error", err)
		courses = nil
	}

	p.rn.Page(w, r, "socio_courses", socioPage("cursos", "Cursos e treinamentos", map[string]any{
		"Courses": courses,
	}))
}

// Discounts renders the partner benefits page. With no partners registered
// the page shows its "coming soon" state.
func (p *Portal) Discounts(w http.ResponseWriter, r *http.Request) {
	partners, err := p.client.PortalPartners(r.Context(), r)
	if err != nil {
		slog.Warn("portal partners unavailable", "error", err)
		partners = nil
	}

	p.rn.Page(w, r, "socio_discounts", socioPage("descontos", "Descontos e benefícios", map[string]any{
		"Partners": partners,
	}))
}

// Antecipacao renders the payment anticipation guidance page.
func (p *Portal) Antecipacao(w http.ResponseWriter, r *http.Request) {
	p.linkPage(w, r, "antecipacao", "Antecipação", "Orientações financeiras",
		"Confira o passo a passo para solicitar antecipação e mantenha seus dados atualizados.",
		"Em caso de dúvidas, entre em contato com o time administrativo para orientações detalhadas.",
		"Acessar sistema")
}

// PlanoSaude renders the health plan enrollment page.
func (p *Portal) PlanoSaude(w http.ResponseWriter, r *http.Request) {
	p.linkPage(w, r, "plano-saude", "Plano de saúde", "Credenciamento e cobertura",
		"Veja os requisitos de credenciamento e os canais oficiais do plano.",
		"Acesse o portal oficial para completar seu cadastro e acompanhar sua situação.",
		"Portal de credenciamento")
}

// linkPage renders one of the fixed portal-link detail pages. The backend
// record wins when present; the page's own copy covers the rest.
func (p *Portal) linkPage(w http.ResponseWriter, r *http.Request, slug, eyebrow, heading, description, body, linkLabel string) {
	link, err := p.client.PortalLinkBySlug(r.Context(), r, slug)
	if err != nil {
		slog.Warn("portal link unavailable", "error", err, "slug", slug)
		link = backend.PortalLink{}
	}

	if link.Description != "" {
		description = link.Description
	}
	if link.Body != "" {
		body = link.Body
	}
	if link.LinkURL == "" {
		link.LinkURL = fallbackLinks[slug].LinkURL
	}

	p.rn.Page(w, r, "socio_link", socioPage(slug, eyebrow+" — Portal do Sócio", map[string]any{
		"Eyebrow":     eyebrow,
		"Heading":     heading,
		"Description": description,
		"Body":        body,
		"LinkURL":     link.LinkURL,
		"LinkLabel":   linkLabel,
	}))
}
