// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// models.go defines the wire shapes exchanged with the portal backend.
// The backend owns persistence; these structs are transient copies decoded
// from its JSON responses or encoded into its request bodies.
package backend

import (
	"time"

	"github.com/google/uuid"
)

// Role is a portal user role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleSocio Role = "socio"
)

// User is a portal account as returned by the backend.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is the payload for creating a user. Password is the plaintext
// provisional password; hashing happens backend-side.
type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

// UserUpdate is a partial user update. Nil fields are omitted from the
// PATCH body and left unchanged by the backend.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *Role   `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// Announcement is a member-portal announcement.
type Announcement struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PublishedAt time.Time  `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	AuthorName  *string    `json:"author_name"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AnnouncementInput is the create/update payload. Dates travel as
// YYYY-MM-DD strings, matching the backend's date fields.
type AnnouncementInput struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
	ExpiresAt   string `json:"expires_at"`
}

// Course is a training course offered through the portal.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	AccessURL   string    `json:"access_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CourseInput is the create/update payload for a course.
type CourseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	AccessURL   string  `json:"access_url"`
}

// Partner is a benefits partner shown on the member discounts page.
type Partner struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LinkURL     string    `json:"link_url"`
	LogoURL     *string   `json:"logo_url"`
}

// PartnerInput is the create/update payload for a partner.
type PartnerInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	LinkURL     string  `json:"link_url"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// PortalLink is one of the fixed member-portal resource pages
// (plantao, antecipacao, plano-saude).
type PortalLink struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	LinkURL     string    `json:"link_url"`
}

// BulkError is a single per-row failure from a bulk user operation.
type BulkError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// BulkResult summarizes a bulk create or delete upload. Created is set for
// bulk-create responses, Deleted for bulk-delete.
type BulkResult struct {
	Processed int         `json:"processed"`
	Created   *int        `json:"created"`
	Deleted   *int        `json:"deleted"`
	Skipped   int         `json:"skipped"`
	Errors    []BulkError `json:"errors"`
}
