package models

import "time"

// Fallback colors applied when a company has not picked a theme yet.
const (
	DefaultPrimaryColor   = "#4F46E5"
	DefaultSecondaryColor = "#10B981"
)

// User is the recruiter identity returned by the auth endpoints.
// The auth payload uses camelCase keys, unlike the entity payloads.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Company is the public company profile. The auth endpoints return a
// reduced form of it (id, name, slug) which unmarshals into the same type.
type Company struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	BannerURL      string `json:"banner_url,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	VideoURL       string `json:"video_url,omitempty"`
}

// EffectivePrimaryColor returns the configured primary color or the fallback.
func (c Company) EffectivePrimaryColor() string {
	if c.PrimaryColor != "" {
		return c.PrimaryColor
	}
	return DefaultPrimaryColor
}

// EffectiveSecondaryColor returns the configured secondary color or the fallback.
func (c Company) EffectiveSecondaryColor() string {
	if c.SecondaryColor != "" {
		return c.SecondaryColor
	}
	return DefaultSecondaryColor
}

// Theme is the appearance slice of a company, addressed separately by the
// theme endpoints.
type Theme struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	LogoURL        string `json:"logo_url"`
	BannerURL      string `json:"banner_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	VideoURL       string `json:"video_url"`
}

func (t Theme) EffectivePrimaryColor() string {
	if t.PrimaryColor != "" {
		return t.PrimaryColor
	}
	return DefaultPrimaryColor
}

func (t Theme) EffectiveSecondaryColor() string {
	if t.SecondaryColor != "" {
		return t.SecondaryColor
	}
	return DefaultSecondaryColor
}

// Section is an ordered, toggleable content block on a company's careers
// page. OrderIndex is a contiguous 0-based position unique per company.
type Section struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	SectionType string    `json:"section_type"`
	OrderIndex  int       `json:"order_index"`
	IsVisible   bool      `json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Job is a job listing. Slug is unique per company and addresses the
// public job-detail page.
type Job struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Workplace   string    `json:"workplace"`
	Location    string    `json:"location"`
	Department  string    `json:"department"`
	JobType     string    `json:"job_type"`
	Seniority   string    `json:"seniority"`
	Salary      string    `json:"salary"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CompanyName string    `json:"company_name,omitempty"`
}
