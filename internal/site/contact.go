// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// contact.go builds the outbound WhatsApp and mailto links for the two
// contact forms on the primary brand site. Blank optional fields never
// produce a line in the message.
package site

import (
	"net/url"
	"strings"
)

const (
	// WhatsAppNumber is the business WhatsApp destination (E.164, no plus).
	WhatsAppNumber = "5569999220012"

	// ContactEmail receives the mailto variant of both forms.
	ContactEmail = "souarteemcuidados@gmail.com"
)

// ContactForm identifies which of the two forms a submission came from.
type ContactForm string

const (
	FormServices   ContactForm = "servicos"
	FormAssociates ContactForm = "associados"
)

// messageFields lists, in render order, the label and form field name for
// each line of a contact message.
type messageField struct {
	label string
	name  string
}

var servicesFields = []messageField{
	{"Nome", "Nome"},
	{"Empresa/Instituição", "Empresa ou Instituição"},
	{"E-mail", "Email"},
	{"Telefone", "Telefone"},
	{"Tipo de serviço", "Tipo de serviço"},
	{"Cidade/Estado", "Cidade"},
	{"Detalhes", "Mensagem"},
}

var associatesFields = []messageField{
	{"Nome", "Nome"},
	{"Profissão", "Profissão"},
	{"Registro profissional", "Registro profissional"},
	{"Telefone", "Telefone"},
	{"E-mail", "Email"},
	{"Cidade/Estado", "Cidade"},
	{"Área de atuação", "Área de atuação"},
	{"Disponibilidade", "Disponibilidade"},
	{"Experiência", "Mensagem"},
}

// BuildContactMessage renders the plain-text message for a form submission.
// The first line names the form; each populated field follows as
// "Label: value". Empty and whitespace-only values are skipped.
func BuildContactMessage(form ContactForm, values url.Values) string {
	var lines []string
	var fields []messageField

	if form == FormServices {
		lines = append(lines, "Solicitação de serviços - Sou Arte em Cuidados")
		fields = servicesFields
	} else {
		lines = append(lines, "Associação de profissionais - Sou Arte em Cuidados")
		fields = associatesFields
	}

	for _, f := range fields {
		v := strings.TrimSpace(values.Get(f.name))
		if v != "" {
			lines = append(lines, f.label+": "+v)
		}
	}

	return strings.Join(lines, "\n")
}

// WhatsAppURL returns the wa.me deep link carrying the given message.
// Spaces are percent-encoded (%20, not +) — wa.me shows literal plus
// signs otherwise.
func WhatsAppURL(message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + WhatsAppNumber + "?text=" + encoded
}

// MailtoURL returns a mailto link to the contact address with the given
// subject and the message as the body.
func MailtoURL(subject, message string) string {
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", message)
	return "mailto:" + ContactEmail + "?" + q.Encode()
}
