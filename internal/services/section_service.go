package services

import (
	"context"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
)

// SectionService maps the content-section endpoints.
type SectionService struct {
	client *apiclient.Client
}

func NewSectionService(client *apiclient.Client) *SectionService {
	return &SectionService{client: client}
}

func (s *SectionService) List(ctx context.Context, slug string) ([]models.Section, error) {
	var resp dtos.SectionsEnvelope
	if err := s.client.Get(ctx, apiclient.Sections(slug), &resp); err != nil {
		return nil, err
	}
	return resp.Sections, nil
}

func (s *SectionService) Create(ctx context.Context, slug string, req dtos.CreateSectionRequest) (models.Section, error) {
	var resp dtos.SectionEnvelope
	if err := s.client.Post(ctx, apiclient.Sections(slug), req, &resp); err != nil {
		return models.Section{}, err
	}
	return resp.Section, nil
}

func (s *SectionService) Update(ctx context.Context, slug, id string, req dtos.UpdateSectionRequest) (models.Section, error) {
	var resp dtos.SectionEnvelope
	if err := s.client.Put(ctx, apiclient.Section(slug, id), req, &resp); err != nil {
		return models.Section{}, err
	}
	return resp.Section, nil
}

func (s *SectionService) Delete(ctx context.Context, slug, id string) error {
	return s.client.Delete(ctx, apiclient.Section(slug, id))
}

// Reorder persists a full ordering of the company's sections. The server
// reassigns contiguous order indexes from the given sequence.
func (s *SectionService) Reorder(ctx context.Context, slug string, sectionIDs []string) error {
	req := dtos.ReorderRequest{SectionIDs: sectionIDs}
	return s.client.Put(ctx, apiclient.SectionsReorder(slug), req, nil)
}
