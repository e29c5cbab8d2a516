// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"souarte/internal/backend"
)

// Validation limits for portal form fields. The backend enforces its own
// rules; these checks catch the obvious mistakes before a round-trip.
const (
	maxNameLen        = 200
	maxTitleLen       = 300
	maxBodyLen        = 50_000
	maxDescriptionLen = 2_000
	minPasswordLen    = 8
)

// validateUserForm checks the single-user create form and returns the
// first problem found, empty string when the input is acceptable.
func validateUserForm(in backend.UserCreate) string {
	if strings.TrimSpace(in.Name) == "" {
		return "Informe o nome completo."
	}
	if utf8.RuneCountInString(in.Name) > maxNameLen {
		return "Nome muito longo (máximo 200 caracteres)."
	}
	if msg := validateEmail(in.Email); msg != "" {
		return msg
	}
	if in.Role != backend.RoleAdmin && in.Role != backend.RoleSocio {
		return "Perfil inválido."
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return "A senha provisória precisa de pelo menos 8 caracteres."
	}
	return ""
}

// validateUserUpdate checks the edit form fields.
func validateUserUpdate(name, email string, role backend.Role) string {
	if strings.TrimSpace(name) == "" {
		return "Informe o nome completo."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Nome muito longo (máximo 200 caracteres)."
	}
	if msg := validateEmail(email); msg != "" {
		return msg
	}
	if role != backend.RoleAdmin && role != backend.RoleSocio {
		return "Perfil inválido."
	}
	return ""
}

// validateAnnouncement checks the announcement form.
func validateAnnouncement(in backend.AnnouncementInput) string {
	if strings.TrimSpace(in.Title) == "" {
		return "Informe o título do comunicado."
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		return "Título muito longo (máximo 300 caracteres)."
	}
	if strings.TrimSpace(in.Body) == "" {
		return "Informe o conteúdo do comunicado."
	}
	if utf8.RuneCountInString(in.Body) > maxBodyLen {
		return "Conteúdo muito longo (máximo 50.000 caracteres)."
	}
	if in.ExpiresAt == "" {
		return "Informe até quando o comunicado ficará visível."
	}
	if _, err := time.Parse("2006-01-02", in.ExpiresAt); err != nil {
		return "Data de expiração inválida."
	}
	return ""
}

// validateCourse checks the course form.
func validateCourse(in backend.CourseInput) string {
	if strings.TrimSpace(in.Title) == "" {
		return "Informe o título do curso."
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		return "Título muito longo (máximo 300 caracteres)."
	}
	if msg := validateURLField(in.AccessURL, "link de acesso", true); msg != "" {
		return msg
	}
	if in.ImageURL != nil {
		if msg := validateURLField(*in.ImageURL, "link da imagem", false); msg != "" {
			return msg
		}
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return "Descrição muito longa (máximo 2.000 caracteres)."
	}
	return ""
}

// validatePartner checks the benefits partner form.
func validatePartner(in backend.PartnerInput) string {
	if strings.TrimSpace(in.Name) == "" {
		return "Informe o nome da empresa parceira."
	}
	if utf8.RuneCountInString(in.Name) > maxNameLen {
		return "Nome muito longo (máximo 200 caracteres)."
	}
	if in.LinkURL != "" {
		if msg := validateURLField(in.LinkURL, "link do parceiro", false); msg != "" {
			return msg
		}
	}
	if in.LogoURL != nil {
		if msg := validateURLField(*in.LogoURL, "link do logo", false); msg != "" {
			return msg
		}
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return "Descrição muito longa (máximo 2.000 caracteres)."
	}
	return ""
}

func validateEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Informe o e-mail."
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "E-mail inválido."
	}
	return ""
}

// validateURLField accepts absolute http(s) URLs only.
func validateURLField(raw, label string, required bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return "Informe o " + label + "."
		}
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "O " + label + " precisa ser um endereço válido (http ou https)."
	}
	return ""
}
