package services

import (
	"context"
	"net/url"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
)

// JobService maps the job-listing endpoints, public and admin.
type JobService struct {
	client *apiclient.Client
}

func NewJobService(client *apiclient.Client) *JobService {
	return &JobService{client: client}
}

// List returns the public, published-only listing, optionally filtered.
func (s *JobService) List(ctx context.Context, slug string, filters dtos.JobFilters) ([]models.Job, error) {
	path := apiclient.Jobs(slug)
	if q := filterQuery(filters); q != "" {
		path += "?" + q
	}
	var resp dtos.JobsEnvelope
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

func filterQuery(f dtos.JobFilters) string {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Location != "" {
		params.Set("location", f.Location)
	}
	if f.JobType != "" {
		params.Set("jobType", f.JobType)
	}
	if f.Department != "" {
		params.Set("department", f.Department)
	}
	return params.Encode()
}

// Get fetches a single published job by its public slug.
func (s *JobService) Get(ctx context.Context, slug, jobSlug string) (models.Job, error) {
	var resp dtos.JobEnvelope
	if err := s.client.Get(ctx, apiclient.Job(slug, jobSlug), &resp); err != nil {
		return models.Job{}, err
	}
	return resp.Job, nil
}

// ListAdmin returns every job regardless of publish state.
func (s *JobService) ListAdmin(ctx context.Context, slug string) ([]models.Job, error) {
	var resp dtos.JobsEnvelope
	if err := s.client.Get(ctx, apiclient.JobsAdmin(slug), &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

func (s *JobService) Create(ctx context.Context, slug string, req dtos.CreateJobRequest) (models.Job, error) {
	var resp dtos.JobEnvelope
	if err := s.client.Post(ctx, apiclient.Jobs(slug), req, &resp); err != nil {
		return models.Job{}, err
	}
	return resp.Job, nil
}

func (s *JobService) Update(ctx context.Context, slug, id string, req dtos.UpdateJobRequest) (models.Job, error) {
	var resp dtos.JobEnvelope
	if err := s.client.Put(ctx, apiclient.JobByID(slug, id), req, &resp); err != nil {
		return models.Job{}, err
	}
	return resp.Job, nil
}

func (s *JobService) Delete(ctx context.Context, slug, id string) error {
	return s.client.Delete(ctx, apiclient.JobByID(slug, id))
}

// TogglePublish sends the target state explicitly rather than a flip
// instruction, so replays and races cannot invert intent.
func (s *JobService) TogglePublish(ctx context.Context, slug, id string, published bool) (models.Job, error) {
	req := dtos.PublishRequest{IsPublished: &published}
	var resp dtos.JobEnvelope
	if err := s.client.Patch(ctx, apiclient.JobPublish(slug, id), req, &resp); err != nil {
		return models.Job{}, err
	}
	return resp.Job, nil
}
