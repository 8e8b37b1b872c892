package services

import (
	"context"
	"io"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
)

// CompanyService maps the company profile, theme and upload endpoints.
type CompanyService struct {
	client *apiclient.Client
}

func NewCompanyService(client *apiclient.Client) *CompanyService {
	return &CompanyService{client: client}
}

func (s *CompanyService) GetCompany(ctx context.Context, slug string) (models.Company, error) {
	var resp dtos.CompanyEnvelope
	if err := s.client.Get(ctx, apiclient.Company(slug), &resp); err != nil {
		return models.Company{}, err
	}
	return resp.Company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, slug string, req dtos.UpdateCompanyRequest) (models.Company, error) {
	var resp dtos.CompanyEnvelope
	if err := s.client.Put(ctx, apiclient.Company(slug), req, &resp); err != nil {
		return models.Company{}, err
	}
	return resp.Company, nil
}

func (s *CompanyService) GetTheme(ctx context.Context, slug string) (models.Theme, error) {
	var resp dtos.ThemeEnvelope
	if err := s.client.Get(ctx, apiclient.CompanyTheme(slug), &resp); err != nil {
		return models.Theme{}, err
	}
	return resp.Theme, nil
}

func (s *CompanyService) UpdateTheme(ctx context.Context, slug string, req dtos.UpdateThemeRequest) (models.Theme, error) {
	var resp dtos.ThemeEnvelope
	if err := s.client.Put(ctx, apiclient.CompanyTheme(slug), req, &resp); err != nil {
		return models.Theme{}, err
	}
	return resp.Theme, nil
}

// UploadImage sends the image as multipart form data and returns the URL
// the server stored it under.
func (s *CompanyService) UploadImage(ctx context.Context, slug, filename string, file io.Reader) (string, error) {
	var resp dtos.UploadResponse
	if err := s.client.Upload(ctx, apiclient.CompanyUpload(slug), "image", filename, file, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
