// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the brand sites and the
// two portals. Handlers are grouped by concern (public, auth, admin,
// portal) and receive their dependencies through the handler struct.
package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"souarte/internal/backend"
	"souarte/internal/render"
)

// bulkErrorDisplayLimit caps how many per-row failures a bulk upload
// summary lists; the remainder is reported as a count.
const bulkErrorDisplayLimit = 10

// Admin groups the administrative portal handlers. All data lives on the
// backend; handlers relay the session cookie, translate failures into
// form-level messages and follow POST-redirect-GET on success.
type Admin struct {
	client *backend.Client
	rn     *render.Renderer
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(client *backend.Client, rn *render.Renderer) *Admin {
	return &Admin{client: client, rn: rn}
}

// Dashboard renders the administrative portal landing page.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	a.rn.Page(w, r, "admin_dashboard", adminPage("dashboard", "Portal Administrativo", nil))
}

// --- Users ---

// Users renders the user management page.
func (a *Admin) Users(w http.ResponseWriter, r *http.Request) {
	a.renderUsers(w, r, nil, nil)
}

// UserEdit renders the user management page with the edit form open for
// the requested user.
func (a *Admin) UserEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	users, err := a.client.ListUsers(r.Context(), r)
	if err != nil {
		a.renderError(w, r, "admin_users", "usuarios", "Gestão de usuários", err, nil)
		return
	}

	var editing *backend.User
	for i := range users {
		if users[i].ID == id {
			editing = &users[i]
			break
		}
	}
	if editing == nil {
		http.NotFound(w, r)
		return
	}

	data := adminPage("usuarios", "Gestão de usuários", map[string]any{
		"Users":   users,
		"Editing": editing,
	})
	a.rn.Page(w, r, "admin_users", data)
}

// UserCreate creates a single user from the inline form.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := backend.UserCreate{
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Role:     parseRole(r.PostForm.Get("role")),
		Password: r.PostForm.Get("password"),
	}
	if msg := validateUserForm(in); msg != "" {
		a.renderUsers(w, r, nil, &render.Flash{Type: "error", Message: msg})
		return
	}

	if _, err := a.client.CreateUser(r.Context(), r, in); err != nil {
		a.renderUsers(w, r, nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/usuarios", http.StatusSeeOther)
}

// UserUpdate applies the edit form to an existing user.
func (a *Admin) UserUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostForm.Get("name"))
	email := strings.TrimSpace(r.PostForm.Get("email"))
	role := parseRole(r.PostForm.Get("role"))
	active := r.PostForm.Get("active") == "true"

	if msg := validateUserUpdate(name, email, role); msg != "" {
		a.renderUsers(w, r, nil, &render.Flash{Type: "error", Message: msg})
		return
	}

	in := backend.UserUpdate{
		Name:   &name,
		Email:  &email,
		Role:   &role,
		Active: &active,
	}
	if _, err := a.client.UpdateUser(r.Context(), r, id, in); err != nil {
		a.renderUsers(w, r, nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/usuarios", http.StatusSeeOther)
}

// UserToggleActive flips a user's active flag.
func (a *Admin) UserToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	active := r.PostForm.Get("active") == "true"
	if _, err := a.client.UpdateUser(r.Context(), r, id, backend.UserUpdate{Active: &active}); err != nil {
		a.renderUsers(w, r, nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/usuarios", http.StatusSeeOther)
}

// UserPassword assigns a user a fresh provisional password. The generated
// value is shown once, in the success message; it is never stored here.
func (a *Admin) UserPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	password, err := provisionalPassword()
	if err != nil {
		slog.Error("provisional password generation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user, err := a.client.UpdateUserPassword(r.Context(), r, id, password)
	if err != nil {
		a.renderUsers(w, r, nil, flashError(err))
		return
	}

	a.renderUsers(w, r, nil, &render.Flash{
		Type:    "success",
		Message: fmt.Sprintf("Nova senha provisória de %s: %s", user.Name, password),
	})
}

// UserDelete removes a user.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.client.DeleteUser(r.Context(), r, id); err != nil {
		a.renderUsers(w, r, nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/usuarios", http.StatusSeeOther)
}

// UserTemplateDownload proxies the bulk spreadsheet templates from the
// backend, keeping the download on the portal origin.
func (a *Admin) UserTemplateDownload(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	var filename string
	switch kind {
	case "create":
		filename = "modelo-usuarios-criacao.xlsx"
	case "delete":
		filename = "modelo-usuarios-exclusao.xlsx"
	default:
		http.NotFound(w, r)
		return
	}

	resp, err := a.client.DownloadUserTemplate(r.Context(), r, kind)
	if err != nil {
		slog.Error("template download failed", "error", err, "kind", kind)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	io.Copy(w, resp.Body)
}

// UserBulkCreate uploads a spreadsheet of users to create.
func (a *Admin) UserBulkCreate(w http.ResponseWriter, r *http.Request) {
	a.bulkUsers(w, r, "bulk-create")
}

// UserBulkDelete uploads a spreadsheet of users to delete.
func (a *Admin) UserBulkDelete(w http.ResponseWriter, r *http.Request) {
	a.bulkUsers(w, r, "bulk-delete")
}

func (a *Admin) bulkUsers(w http.ResponseWriter, r *http.Request, op string) {
	file, header, err := r.FormFile("file")
	if err != nil {
		a.renderUsers(w, r, nil, &render.Flash{Type: "error", Message: "Selecione um arquivo .xlsx para enviar."})
		return
	}
	defer file.Close()

	result, err := a.client.BulkUsers(r.Context(), r, op, header.Filename, file)
	if err != nil {
		a.renderUsers(w, r, nil, flashError(err))
		return
	}

	extra := map[string]any{}
	if len(result.Errors) > bulkErrorDisplayLimit {
		extra["BulkErrorsOmitted"] = len(result.Errors) - bulkErrorDisplayLimit
		result.Errors = result.Errors[:bulkErrorDisplayLimit]
	}
	extra["BulkResult"] = result
	a.renderUsers(w, r, extra, nil)
}

// renderUsers renders the user management page with the current user list,
// optional extra data and an optional flash.
func (a *Admin) renderUsers(w http.ResponseWriter, r *http.Request, extra map[string]any, flash *render.Flash) {
	users, err := a.client.ListUsers(r.Context(), r)
	if err != nil {
		a.renderError(w, r, "admin_users", "usuarios", "Gestão de usuários", err, nil)
		return
	}

	merged := map[string]any{"Users": users}
	for k, v := range extra {
		merged[k] = v
	}
	data := adminPage("usuarios", "Gestão de usuários", merged)
	if flash != nil {
		data.Flashes = append(data.Flashes, *flash)
	}
	a.rn.Page(w, r, "admin_users", data)
}

// --- Announcements ---

// Announcements renders the announcement management page.
func (a *Admin) Announcements(w http.ResponseWriter, r *http.Request) {
	a.renderAnnouncements(w, r, uuid.Nil, nil)
}

// AnnouncementEdit renders the page with the edit form pre-filled.
func (a *Admin) AnnouncementEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	a.renderAnnouncements(w, r, id, nil)
}

// AnnouncementCreate publishes a new announcement, dated today.
func (a *Admin) AnnouncementCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := backend.AnnouncementInput{
		Title:       strings.TrimSpace(r.PostForm.Get("title")),
		Body:        r.PostForm.Get("body"),
		PublishedAt: time.Now().Format("2006-01-02"),
		ExpiresAt:   strings.TrimSpace(r.PostForm.Get("expires_at")),
	}
	if msg := validateAnnouncement(in); msg != "" {
		a.renderAnnouncements(w, r, uuid.Nil, &render.Flash{Type: "error", Message: msg})
		return
	}
	if _, err := a.client.CreateAnnouncement(r.Context(), r, in); err != nil {
		a.renderAnnouncements(w, r, uuid.Nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/comunicados", http.StatusSeeOther)
}

// AnnouncementUpdate applies the edit form. The original publication date
// is preserved; only title, body and expiry can change.
func (a *Admin) AnnouncementUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	current, err := a.findAnnouncement(r, id)
	if err != nil {
		a.renderAnnouncements(w, r, uuid.Nil, flashError(err))
		return
	}
	if current == nil {
		http.NotFound(w, r)
		return
	}

	in := backend.AnnouncementInput{
		Title:       strings.TrimSpace(r.PostForm.Get("title")),
		Body:        r.PostForm.Get("body"),
		PublishedAt: current.PublishedAt.Format("2006-01-02"),
		ExpiresAt:   strings.TrimSpace(r.PostForm.Get("expires_at")),
	}
	if msg := validateAnnouncement(in); msg != "" {
		a.renderAnnouncements(w, r, id, &render.Flash{Type: "error", Message: msg})
		return
	}
	if _, err := a.client.UpdateAnnouncement(r.Context(), r, id, in); err != nil {
		a.renderAnnouncements(w, r, id, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/comunicados", http.StatusSeeOther)
}

// AnnouncementDelete removes an announcement.
func (a *Admin) AnnouncementDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.client.DeleteAnnouncement(r.Context(), r, id); err != nil {
		a.renderAnnouncements(w, r, uuid.Nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/comunicados", http.StatusSeeOther)
}

func (a *Admin) findAnnouncement(r *http.Request, id uuid.UUID) (*backend.Announcement, error) {
	items, err := a.client.ListAnnouncements(r.Context(), r)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (a *Admin) renderAnnouncements(w http.ResponseWriter, r *http.Request, editingID uuid.UUID, flash *render.Flash) {
	items, err := a.client.ListAnnouncements(r.Context(), r)
	if err != nil {
		a.renderError(w, r, "admin_announcements", "comunicados", "Gestão de comunicados", err, nil)
		return
	}

	merged := map[string]any{
		"Announcements": items,
		"Today":         time.Now().Format("2006-01-02"),
	}
	if editingID != uuid.Nil {
		for i := range items {
			if items[i].ID == editingID {
				merged["Editing"] = &items[i]
				break
			}
		}
		if _, ok := merged["Editing"]; !ok {
			http.NotFound(w, r)
			return
		}
	}

	data := adminPage("comunicados", "Gestão de comunicados", merged)
	if flash != nil {
		data.Flashes = append(data.Flashes, *flash)
	}
	a.rn.Page(w, r, "admin_announcements", data)
}

// --- Courses ---

// Courses renders the course management page.
func (a *Admin) Courses(w http.ResponseWriter, r *http.Request) {
	a.renderCourses(w, r, uuid.Nil, nil)
}

// CourseEdit renders the page with the edit form pre-filled.
func (a *Admin) CourseEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	a.renderCourses(w, r, id, nil)
}

// CourseCreate registers a new course.
func (a *Admin) CourseCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := courseInput(r)
	if msg := validateCourse(in); msg != "" {
		a.renderCourses(w, r, uuid.Nil, &render.Flash{Type: "error", Message: msg})
		return
	}
	if _, err := a.client.CreateCourse(r.Context(), r, in); err != nil {
		a.renderCourses(w, r, uuid.Nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/cursos", http.StatusSeeOther)
}

// CourseUpdate applies the edit form to an existing course.
func (a *Admin) CourseUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := courseInput(r)
	if msg := validateCourse(in); msg != "" {
		a.renderCourses(w, r, id, &render.Flash{Type: "error", Message: msg})
		return
	}
	if _, err := a.client.UpdateCourse(r.Context(), r, id, in); err != nil {
		a.renderCourses(w, r, id, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/cursos", http.StatusSeeOther)
}

// CourseDelete removes a course.
func (a *Admin) CourseDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.client.DeleteCourse(r.Context(), r, id); err != nil {
		a.renderCourses(w, r, uuid.Nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/cursos", http.StatusSeeOther)
}

func courseInput(r *http.Request) backend.CourseInput {
	return backend.CourseInput{
		Title:       strings.TrimSpace(r.PostForm.Get("title")),
		Description: r.PostForm.Get("description"),
		ImageURL:    optionalField(r.PostForm.Get("image_url")),
		AccessURL:   strings.TrimSpace(r.PostForm.Get("access_url")),
	}
}

func (a *Admin) renderCourses(w http.ResponseWriter, r *http.Request, editingID uuid.UUID, flash *render.Flash) {
	items, err := a.client.ListCourses(r.Context(), r)
	if err != nil {
		a.renderError(w, r, "admin_courses", "cursos", "Gestão de treinamentos", err, nil)
		return
	}

	merged := map[string]any{"Courses": items}
	if editingID != uuid.Nil {
		for i := range items {
			if items[i].ID == editingID {
				merged["Editing"] = &items[i]
				break
			}
		}
		if _, ok := merged["Editing"]; !ok {
			http.NotFound(w, r)
			return
		}
	}

	data := adminPage("cursos", "Gestão de treinamentos", merged)
	if flash != nil {
		data.Flashes = append(data.Flashes, *flash)
	}
	a.rn.Page(w, r, "admin_courses", data)
}

// --- Partners ---

// Partners renders the benefits partner management page.
func (a *Admin) Partners(w http.ResponseWriter, r *http.Request) {
	a.renderPartners(w, r, uuid.Nil, nil)
}

// PartnerEdit renders the page with the edit form pre-filled.
func (a *Admin) PartnerEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	a.renderPartners(w, r, id, nil)
}

// PartnerCreate registers a new benefits partner.
func (a *Admin) PartnerCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := partnerInput(r)
	if msg := validatePartner(in); msg != "" {
		a.renderPartners(w, r, uuid.Nil, &render.Flash{Type: "error", Message: msg})
		return
	}
	if _, err := a.client.CreatePartner(r.Context(), r, in); err != nil {
		a.renderPartners(w, r, uuid.Nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/beneficios", http.StatusSeeOther)
}

// PartnerUpdate applies the edit form to an existing partner.
func (a *Admin) PartnerUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := partnerInput(r)
	if msg := validatePartner(in); msg != "" {
		a.renderPartners(w, r, id, &render.Flash{Type: "error", Message: msg})
		return
	}
	if _, err := a.client.UpdatePartner(r.Context(), r, id, in); err != nil {
		a.renderPartners(w, r, id, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/beneficios", http.StatusSeeOther)
}

// PartnerDelete removes a partner.
func (a *Admin) PartnerDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.client.DeletePartner(r.Context(), r, id); err != nil {
		a.renderPartners(w, r, uuid.Nil, flashError(err))
		return
	}
	http.Redirect(w, r, "/portal-admin/beneficios", http.StatusSeeOther)
}

func partnerInput(r *http.Request) backend.PartnerInput {
	return backend.PartnerInput{
		Name:        strings.TrimSpace(r.PostForm.Get("name")),
		Description: r.PostForm.Get("description"),
		LinkURL:     strings.TrimSpace(r.PostForm.Get("link_url")),
		LogoURL:     optionalField(r.PostForm.Get("logo_url")),
	}
}

func (a *Admin) renderPartners(w http.ResponseWriter, r *http.Request, editingID uuid.UUID, flash *render.Flash) {
	items, err := a.client.ListPartners(r.Context(), r)
	if err != nil {
		a.renderError(w, r, "admin_partners", "beneficios", "Gestão de parceiros", err, nil)
		return
	}

	merged := map[string]any{"Partners": items}
	if editingID != uuid.Nil {
		for i := range items {
			if items[i].ID == editingID {
				merged["Editing"] = &items[i]
				break
			}
		}
		if _, ok := merged["Editing"]; !ok {
			http.NotFound(w, r)
			return
		}
	}

	data := adminPage("beneficios", "Gestão de parceiros", merged)
	if flash != nil {
		data.Flashes = append(data.Flashes, *flash)
	}
	a.rn.Page(w, r, "admin_partners", data)
}

// --- Shared helpers ---

// renderError renders a portal page with an error flash when even the
// page's list call failed. The page shows empty with the message on top.
func (a *Admin) renderError(w http.ResponseWriter, r *http.Request, tmpl, section, title string, err error, extra map[string]any) {
	slog.Error("backend request failed", "error", err, "template", tmpl)

	data := adminPage(section, title, extra)
	data.Flashes = append(data.Flashes, *flashError(err))
	a.rn.Page(w, r, tmpl, data)
}

// flashError turns a backend failure into a user-facing message. Backend
// API errors already carry translated text; anything else gets a generic
// line.
func flashError(err error) *render.Flash {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return &render.Flash{Type: "error", Message: apiErr.Message}
	}
	return &render.Flash{Type: "error", Message: "Não foi possível completar a operação. Tente novamente."}
}

// parseID extracts and validates the {id} route parameter. On failure it
// writes a 404 and reports false.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return uuid.Nil, false
	}
	return id, true
}

// parseRole converts the raw form value; validation rejects anything
// that is not a known role.
func parseRole(v string) backend.Role {
	return backend.Role(strings.TrimSpace(v))
}

// optionalField maps an empty form value to nil.
func optionalField(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// provisionalPassword generates a random password for admin-triggered
// resets. 9 random bytes encode to 12 URL-safe characters.
func provisionalPassword() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
