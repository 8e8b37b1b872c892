package stubapi

import (
	"time"

	"github.com/whitecaroot/careers-builder/internal/models"
)

// Storage records for the stub backend. Shapes mirror the wire entities in
// internal/models; the mapping methods below produce the snake_case
// payloads the contract returns.

type UserRecord struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FullName     string
	CompanyID    string `gorm:"index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u UserRecord) User() models.User {
	return models.User{ID: u.ID, Email: u.Email, FullName: u.FullName}
}

type CompanyRecord struct {
	ID             string `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Slug           string `gorm:"uniqueIndex;not null"`
	Description    string `gorm:"type:text"`
	LogoURL        string
	BannerURL      string
	PrimaryColor   string
	SecondaryColor string
	VideoURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c CompanyRecord) Company() models.Company {
	return models.Company{
		ID:             c.ID,
		Name:           c.Name,
		Slug:           c.Slug,
		Description:    c.Description,
		LogoURL:        c.LogoURL,
		BannerURL:      c.BannerURL,
		PrimaryColor:   c.PrimaryColor,
		SecondaryColor: c.SecondaryColor,
		VideoURL:       c.VideoURL,
	}
}

// Theme is the appearance projection of the company record; the theme
// endpoints address it as its own resource.
func (c CompanyRecord) Theme() models.Theme {
	return models.Theme{
		ID:             c.ID,
		CompanyID:      c.ID,
		LogoURL:        c.LogoURL,
		BannerURL:      c.BannerURL,
		PrimaryColor:   c.PrimaryColor,
		SecondaryColor: c.SecondaryColor,
		VideoURL:       c.VideoURL,
	}
}

type SectionRecord struct {
	ID          string `gorm:"primaryKey"`
	CompanyID   string `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Content     string `gorm:"type:text"`
	SectionType string `gorm:"default:'custom'"`
	OrderIndex  int    `gorm:"not null"`
	IsVisible   bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s SectionRecord) Section() models.Section {
	return models.Section{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Title:       s.Title,
		Content:     s.Content,
		SectionType: s.SectionType,
		OrderIndex:  s.OrderIndex,
		IsVisible:   s.IsVisible,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type JobRecord struct {
	ID          string `gorm:"primaryKey"`
	CompanyID   string `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Slug        string `gorm:"index;not null"`
	Description string `gorm:"type:text"`
	Workplace   string
	Location    string
	Department  string
	JobType     string
	Seniority   string
	Salary      string
	IsPublished bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (j JobRecord) Job(companyName string) models.Job {
	return models.Job{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		Title:       j.Title,
		Slug:        j.Slug,
		Description: j.Description,
		Workplace:   j.Workplace,
		Location:    j.Location,
		Department:  j.Department,
		JobType:     j.JobType,
		Seniority:   j.Seniority,
		Salary:      j.Salary,
		IsPublished: j.IsPublished,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
		CompanyName: companyName,
	}
}
