// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// resources.go wraps every backend endpoint in a typed call. The inbound
// *http.Request is threaded through so the browser's session cookie rides
// along on each request.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
)

// --- Auth ---

// Login establishes a backend session. The backend's Set-Cookie response
// headers are returned so the caller can relay them to the browser.
func (c *Client) Login(ctx context.Context, email, password string) (User, []*http.Cookie, error) {
	payload := map[string]string{"email": email, "password": password}

	resp, err := c.do(ctx, http.MethodPost, "/auth/login", WithJSON(payload))
	if err != nil {
		return User{}, nil, err
	}
	defer resp.Body.Close()

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, nil, fmt.Errorf("backend decode: %w", err)
	}
	return user, resp.Cookies(), nil
}

// Me returns the identity behind the forwarded session cookie. A non-2xx
// response (most commonly 401) surfaces as *APIError.
func (c *Client) Me(ctx context.Context, r *http.Request) (User, error) {
	return doJSON[User](ctx, c, http.MethodGet, "/auth/me", WithCookies(r))
}

// Logout clears the backend session. Any Set-Cookie headers are returned
// even on partial success; callers treat logout as fire-and-forget.
func (c *Client) Logout(ctx context.Context, r *http.Request) ([]*http.Cookie, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/logout", WithCookies(r))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.Cookies(), nil
}

// --- Admin: users ---

func (c *Client) ListUsers(ctx context.Context, r *http.Request) ([]User, error) {
	return doJSON[[]User](ctx, c, http.MethodGet, "/admin/users", WithCookies(r))
}

func (c *Client) CreateUser(ctx context.Context, r *http.Request, in UserCreate) (User, error) {
	return doJSON[User](ctx, c, http.MethodPost, "/admin/users", WithCookies(r), WithJSON(in))
}

func (c *Client) UpdateUser(ctx context.Context, r *http.Request, id uuid.UUID, in UserUpdate) (User, error) {
	return doJSON[User](ctx, c, http.MethodPatch, "/admin/users/"+id.String(), WithCookies(r), WithJSON(in))
}

func (c *Client) UpdateUserPassword(ctx context.Context, r *http.Request, id uuid.UUID, password string) (User, error) {
	payload := map[string]string{"password": password}
	return doJSON[User](ctx, c, http.MethodPatch, "/admin/users/"+id.String()+"/password", WithCookies(r), WithJSON(payload))
}

func (c *Client) DeleteUser(ctx context.Context, r *http.Request, id uuid.UUID) error {
	return c.doDiscard(ctx, http.MethodDelete, "/admin/users/"+id.String(), WithCookies(r))
}

// DownloadUserTemplate streams the binary spreadsheet template for bulk
// operations. kind is "create" or "delete". The caller must close the
// returned body after copying it to the browser.
func (c *Client) DownloadUserTemplate(ctx context.Context, r *http.Request, kind string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, "/admin/users/templates/"+kind, WithCookies(r))
}

// BulkUsers uploads a spreadsheet for batch creation or deletion.
// op is "bulk-create" or "bulk-delete". The file is forwarded untouched;
// all parsing and validation happens backend-side.
func (c *Client) BulkUsers(ctx context.Context, r *http.Request, op, filename string, file io.Reader) (BulkResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return BulkResult{}, fmt.Errorf("backend multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return BulkResult{}, fmt.Errorf("backend multipart copy: %w", err)
	}
	if err := mw.Close(); err != nil {
		return BulkResult{}, fmt.Errorf("backend multipart close: %w", err)
	}

	return doJSON[BulkResult](ctx, c, http.MethodPost, "/admin/users/"+op,
		WithCookies(r), WithMultipart(mw.FormDataContentType(), &buf))
}

// --- Admin: announcements ---

func (c *Client) ListAnnouncements(ctx context.Context, r *http.Request) ([]Announcement, error) {
	return doJSON[[]Announcement](ctx, c, http.MethodGet, "/admin/announcements", WithCookies(r))
}

func (c *Client) CreateAnnouncement(ctx context.Context, r *http.Request, in AnnouncementInput) (Announcement, error) {
	return doJSON[Announcement](ctx, c, http.MethodPost, "/admin/announcements", WithCookies(r), WithJSON(in))
}

func (c *Client) UpdateAnnouncement(ctx context.Context, r *http.Request, id uuid.UUID, in AnnouncementInput) (Announcement, error) {
	return doJSON[Announcement](ctx, c, http.MethodPut, "/admin/announcements/"+id.String(), WithCookies(r), WithJSON(in))
}

func (c *Client) DeleteAnnouncement(ctx context.Context, r *http.Request, id uuid.UUID) error {
	return c.doDiscard(ctx, http.MethodDelete, "/admin/announcements/"+id.String(), WithCookies(r))
}

// --- Admin: courses ---

func (c *Client) ListCourses(ctx context.Context, r *http.Request) ([]Course, error) {
	return doJSON[[]Course](ctx, c, http.MethodGet, "/admin/courses", WithCookies(r))
}

func (c *Client) CreateCourse(ctx context.Context, r *http.Request, in CourseInput) (Course, error) {
	return doJSON[Course](ctx, c, http.MethodPost, "/admin/courses", WithCookies(r), WithJSON(in))
}

func (c *Client) UpdateCourse(ctx context.Context, r *http.Request, id uuid.UUID, in CourseInput) (Course, error) {
	return doJSON[Course](ctx, c, http.MethodPut, "/admin/courses/"+id.String(), WithCookies(r), WithJSON(in))
}

func (c *Client) DeleteCourse(ctx context.Context, r *http.Request, id uuid.UUID) error {
	return c.doDiscard(ctx, http.MethodDelete, "/admin/courses/"+id.String(), WithCookies(r))
}

// --- Admin: partners ---

func (c *Client) ListPartners(ctx context.Context, r *http.Request) ([]Partner, error) {
	return doJSON[[]Partner](ctx, c, http.MethodGet, "/admin/partners", WithCookies(r))
}

func (c *Client) CreatePartner(ctx context.Context, r *http.Request, in PartnerInput) (Partner, error) {
	return doJSON[Partner](ctx, c, http.MethodPost, "/admin/partners", WithCookies(r), WithJSON(in))
}

func (c *Client) UpdatePartner(ctx context.Context, r *http.Request, id uuid.UUID, in PartnerInput) (Partner, error) {
	return doJSON[Partner](ctx, c, http.MethodPut, "/admin/partners/"+id.String(), WithCookies(r), WithJSON(in))
}

func (c *Client) DeletePartner(ctx context.Context, r *http.Request, id uuid.UUID) error {
	return c.doDiscard(ctx, http.MethodDelete, "/admin/partners/"+id.String(), WithCookies(r))
}

// --- Member portal (read-only) ---

func (c *Client) PortalAnnouncements(ctx context.Context, r *http.Request) ([]Announcement, error) {
	return doJSON[[]Announcement](ctx, c, http.MethodGet, "/portal/announcements", WithCookies(r))
}

func (c *Client) PortalCourses(ctx context.Context, r *http.Request) ([]Course, error) {
	return doJSON[[]Course](ctx, c, http.MethodGet, "/portal/courses", WithCookies(r))
}

func (c *Client) PortalPartners(ctx context.Context, r *http.Request) ([]Partner, error) {
	return doJSON[[]Partner](ctx, c, http.MethodGet, "/portal/partners", WithCookies(r))
}

func (c *Client) PortalLinks(ctx context.Context, r *http.Request) ([]PortalLink, error) {
	return doJSON[[]PortalLink](ctx, c, http.MethodGet, "/portal/links", WithCookies(r))
}

func (c *Client) PortalLinkBySlug(ctx context.Context, r *http.Request, slug string) (PortalLink, error) {
	return doJSON[PortalLink](ctx, c, http.MethodGet, "/portal/links/"+slug, WithCookies(r))
}
