package dtos

import "github.com/whitecaroot/careers-builder/internal/models"

// Request payloads sent to the careers API. The API expects camelCase keys
// on requests and returns snake_case entity payloads (see internal/models).
// The stub backend binds the same types, so the gin validation tags double
// as the inbound contract there.

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	FullName    string `json:"fullName,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token   string         `json:"token"`
	User    models.User    `json:"user"`
	Company models.Company `json:"company"`
}

// MeResponse is the liveness payload of GET /api/auth/me.
type MeResponse struct {
	User models.User `json:"user"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateThemeRequest is a partial update; nil fields are left untouched by
// the server. The upload flow sends a single URL field at a time.
type UpdateThemeRequest struct {
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
	VideoURL       *string `json:"videoUrl,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	BannerURL      *string `json:"bannerUrl,omitempty"`
}

type CreateSectionRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content"`
	SectionType string `json:"sectionType,omitempty"`
	IsVisible   *bool  `json:"isVisible,omitempty"`
}

type UpdateSectionRequest struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	SectionType *string `json:"sectionType,omitempty"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
}

// ReorderRequest carries the full ordered list of section ids.
type ReorderRequest struct {
	SectionIDs []string `json:"sectionIds" binding:"required"`
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Workplace   string `json:"workplace,omitempty"`
	Location    string `json:"location,omitempty"`
	Department  string `json:"department,omitempty"`
	JobType     string `json:"jobType,omitempty"`
	Seniority   string `json:"seniority,omitempty"`
	Salary      string `json:"salary,omitempty"`
	IsPublished *bool  `json:"isPublished,omitempty"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Workplace   *string `json:"workplace,omitempty"`
	Location    *string `json:"location,omitempty"`
	Department  *string `json:"department,omitempty"`
	JobType     *string `json:"jobType,omitempty"`
	Seniority   *string `json:"seniority,omitempty"`
	Salary      *string `json:"salary,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

// PublishRequest carries the explicit target state, never a toggle
// instruction, so redundant delivery cannot flip the flag twice.
type PublishRequest struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}

// JobFilters are the public job-listing query parameters. Zero values are
// omitted from the query string.
type JobFilters struct {
	Search   string
	Location string
	JobType  string
	// Department is accepted by the API but not exposed by the public page.
	Department string
}

func (f JobFilters) IsZero() bool {
	return f.Search == "" && f.Location == "" && f.JobType == "" && f.Department == ""
}

// Response envelopes. Every entity endpoint wraps its payload in a keyed
// object rather than returning the bare entity.

type CompanyEnvelope struct {
	Company models.Company `json:"company"`
}

type ThemeEnvelope struct {
	Theme models.Theme `json:"theme"`
}

type SectionEnvelope struct {
	Section models.Section `json:"section"`
}

type SectionsEnvelope struct {
	Sections []models.Section `json:"sections"`
}

type JobEnvelope struct {
	Job models.Job `json:"job"`
}

type JobsEnvelope struct {
	Jobs []models.Job `json:"jobs"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
