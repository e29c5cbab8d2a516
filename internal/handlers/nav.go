// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "souarte/internal/render"

// NavLink is one entry in a portal's header navigation.
type NavLink struct {
	Label   string
	Href    string
	Section string
}

var adminNav = []NavLink{
	{Label: "Início", Href: "/portal-admin", Section: "dashboard"},
	{Label: "Usuários", Href: "/portal-admin/usuarios", Section: "usuarios"},
	{Label: "Comunicados", Href: "/portal-admin/comunicados", Section: "comunicados"},
	{Label: "Treinamentos", Href: "/portal-admin/cursos", Section: "cursos"},
	{Label: "Benefícios", Href: "/portal-admin/beneficios", Section: "beneficios"},
}

var socioNav = []NavLink{
	{Label: "Início", Href: "/portal-socio", Section: "home"},
	{Label: "Cursos", Href: "/portal-socio/cursos", Section: "cursos"},
	{Label: "Descontos", Href: "/portal-socio/descontos", Section: "descontos"},
}

// adminPage assembles the PageData shared by every administrative portal
// page: navigation, header title and the logout target, merged with the
// page's own data.
func adminPage(section, title string, extra map[string]any) *render.PageData {
	return portalPage("Portal Administrativo", "/portal-admin/sair", adminNav, section, title, extra)
}

// socioPage does the same for the member portal.
func socioPage(section, title string, extra map[string]any) *render.PageData {
	return portalPage("Portal do Sócio", "/portal-socio/sair", socioNav, section, title, extra)
}

func portalPage(portalTitle, logoutPath string, nav []NavLink, section, title string, extra map[string]any) *render.PageData {
	data := map[string]any{
		"PortalTitle": portalTitle,
		"LogoutPath":  logoutPath,
		"Nav":         nav,
	}
	for k, v := range extra {
		data[k] = v
	}
	return &render.PageData{
		Title:   title,
		Section: section,
		Data:    data,
	}
}
