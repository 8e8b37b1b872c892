package publicpage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/services"
)

type pageFixture struct {
	company  models.Company
	sections []models.Section
	jobs     []models.Job

	mu           sync.Mutex
	lastJobQuery string
}

// jobQuery returns the query string of the most recent job fetch.
func (f *pageFixture) jobQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastJobQuery
}

func newAssembler(t *testing.T, fx *pageFixture, slug string) *Assembler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/companies/"+fx.company.Slug:
			json.NewEncoder(w).Encode(dtos.CompanyEnvelope{Company: fx.company})
		case r.URL.Path == "/api/companies/"+fx.company.Slug+"/sections":
			json.NewEncoder(w).Encode(dtos.SectionsEnvelope{Sections: fx.sections})
		case r.URL.Path == "/api/companies/"+fx.company.Slug+"/jobs":
			fx.mu.Lock()
			fx.lastJobQuery = r.URL.RawQuery
			fx.mu.Unlock()
			filtered := fx.jobs
			if loc := r.URL.Query().Get("location"); loc != "" {
				filtered = nil
				for _, j := range fx.jobs {
					if j.Location == loc {
						filtered = append(filtered, j)
					}
				}
			}
			json.NewEncoder(w).Encode(dtos.JobsEnvelope{Jobs: filtered})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Company not found"})
		}
	}))
	t.Cleanup(srv.Close)

	client := apiclient.New(srv.URL, 5*time.Second, nil)
	return NewAssembler(
		services.NewCompanyService(client),
		services.NewSectionService(client),
		services.NewJobService(client),
		slug,
		nil,
	)
}

func acmeFixture() *pageFixture {
	return &pageFixture{
		company: models.Company{ID: "c1", Name: "Acme", Slug: "acme", VideoURL: "https://www.youtube.com/watch?v=abc123"},
		sections: []models.Section{
			{ID: "s3", Title: "Benefits", OrderIndex: 2, IsVisible: true},
			{ID: "s1", Title: "About", OrderIndex: 0, IsVisible: true},
			{ID: "s2", Title: "Secret draft", OrderIndex: 1, IsVisible: false},
		},
		jobs: []models.Job{
			{ID: "j1", Title: "Backend Engineer", Location: "Berlin", JobType: "Full-time", IsPublished: true},
			{ID: "j2", Title: "Designer", Location: "Remote", JobType: "Full-time", IsPublished: true},
			{ID: "j3", Title: "Intern", Location: "Berlin", JobType: "Internship", IsPublished: true},
		},
	}
}

func TestLoadAssemblesPage(t *testing.T) {
	page := newAssembler(t, acmeFixture(), "acme")
	assert.False(t, page.Loaded())

	require.NoError(t, page.Load(context.Background()))
	assert.True(t, page.Loaded())
	assert.False(t, page.NotFound())

	company, ok := page.Company()
	require.True(t, ok)
	assert.Equal(t, "Acme", company.Name)

	// Hidden sections are dropped and the rest sorted by order index.
	sections := page.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "About", sections[0].Title)
	assert.Equal(t, "Benefits", sections[1].Title)

	assert.Len(t, page.Jobs(), 3)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", page.VideoEmbedURL())
}

func TestLoadMissingCompany(t *testing.T) {
	page := newAssembler(t, acmeFixture(), "ghost")

	// A missing company is a page state, not an error.
	require.NoError(t, page.Load(context.Background()))
	assert.True(t, page.NotFound())

	_, ok := page.Company()
	assert.False(t, ok)
	assert.Empty(t, page.Sections())
	assert.Empty(t, page.Jobs())
}

func TestFilterOptionsAreDistinct(t *testing.T) {
	page := newAssembler(t, acmeFixture(), "acme")
	require.NoError(t, page.Load(context.Background()))

	// Duplicates collapse, encounter order is kept.
	assert.Equal(t, []string{"Berlin", "Remote"}, page.Locations())
	assert.Equal(t, []string{"Full-time", "Internship"}, page.JobTypes())
}

func TestSetFiltersRefetchesJobs(t *testing.T) {
	fx := acmeFixture()
	page := newAssembler(t, fx, "acme")
	require.NoError(t, page.Load(context.Background()))
	require.Len(t, page.Jobs(), 3)

	require.NoError(t, page.SetFilters(context.Background(), dtos.JobFilters{Location: "Berlin"}))
	jobs := page.Jobs()
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, "Berlin", j.Location)
	}
	assert.Contains(t, fx.jobQuery(), "location=Berlin")

	// Sections and company are untouched by a job refetch.
	assert.Len(t, page.Sections(), 2)
}

func TestSeedFiltersAppliesToInitialLoad(t *testing.T) {
	fx := acmeFixture()
	page := newAssembler(t, fx, "acme")
	page.SeedFilters(dtos.JobFilters{Location: "Berlin"})

	require.NoError(t, page.Load(context.Background()))
	assert.Len(t, page.Jobs(), 2)
	assert.Contains(t, fx.jobQuery(), "location=Berlin")
	assert.Equal(t, dtos.JobFilters{Location: "Berlin"}, page.Filters())
}
