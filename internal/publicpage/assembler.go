// Package publicpage assembles the public careers view for one company:
// profile, visible sections in display order, and the filtered job list.
package publicpage

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/services"
)

// Assembler fetches and holds the public page state for a company slug.
// A missing company is a distinct NotFound state, never an error.
type Assembler struct {
	companies *services.CompanyService
	sections  *services.SectionService
	jobs      *services.JobService
	slug      string
	log       *logrus.Logger

	mu       sync.Mutex
	company  models.Company
	visible  []models.Section
	jobList  []models.Job
	filters  dtos.JobFilters
	loaded   bool
	notFound bool

	// jobGen coalesces rapid filter changes: every refetch takes the next
	// generation and only the latest one may apply its response.
	jobGen uint64
}

func NewAssembler(companies *services.CompanyService, sections *services.SectionService, jobs *services.JobService, slug string, log *logrus.Logger) *Assembler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Assembler{
		companies: companies,
		sections:  sections,
		jobs:      jobs,
		slug:      slug,
		log:       log,
	}
}

// Load fetches company, sections and jobs in parallel. Sections are
// reduced to visible ones sorted by order index. A 404 on the company
// marks the page NotFound and still returns nil.
func (a *Assembler) Load(ctx context.Context) error {
	var (
		company  models.Company
		sections []models.Section
		jobList  []models.Job
		missing  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := a.companies.GetCompany(gctx, a.slug)
		if apiclient.IsNotFound(err) {
			missing = true
			return nil
		}
		company = c
		return err
	})
	g.Go(func() error {
		s, err := a.sections.List(gctx, a.slug)
		if apiclient.IsNotFound(err) {
			return nil
		}
		sections = s
		return err
	})
	g.Go(func() error {
		j, err := a.jobs.List(gctx, a.slug, a.Filters())
		if apiclient.IsNotFound(err) {
			return nil
		}
		jobList = j
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.WithError(err).Warn("publicpage: load failed")
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loaded = true
	a.notFound = missing
	if missing {
		return nil
	}
	a.company = company
	a.visible = visibleSorted(sections)
	a.jobList = jobList
	return nil
}

func visibleSorted(sections []models.Section) []models.Section {
	out := make([]models.Section, 0, len(sections))
	for _, s := range sections {
		if s.IsVisible {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// SetFilters updates the job filters and refetches the listing. Rapid
// successive calls are coalesced: a response belonging to a superseded
// call is discarded, so the displayed list always matches the most recent
// filter state once the dust settles.
func (a *Assembler) SetFilters(ctx context.Context, filters dtos.JobFilters) error {
	a.mu.Lock()
	a.filters = filters
	a.jobGen++
	gen := a.jobGen
	a.mu.Unlock()

	jobList, err := a.jobs.List(ctx, a.slug, filters)
	if err != nil {
		a.log.WithError(err).Warn("publicpage: job filter fetch failed")
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.jobGen != gen {
		return nil // a newer filter change owns the list now
	}
	a.jobList = jobList
	return nil
}

// SeedFilters sets the filters without refetching, for callers that set
// them before the initial Load.
func (a *Assembler) SeedFilters(filters dtos.JobFilters) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filters = filters
}

func (a *Assembler) Filters() dtos.JobFilters {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filters
}

// Company returns the profile; ok is false while the page has not loaded
// or the company does not exist.
func (a *Assembler) Company() (models.Company, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.company, a.loaded && !a.notFound
}

// NotFound reports the loaded-but-missing state, distinct from not loaded.
func (a *Assembler) NotFound() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded && a.notFound
}

func (a *Assembler) Loaded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded
}

func (a *Assembler) Sections() []models.Section {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Section(nil), a.visible...)
}

func (a *Assembler) Jobs() []models.Job {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Job(nil), a.jobList...)
}

// Locations lists the distinct job locations in encounter order, feeding
// the location filter dropdown.
func (a *Assembler) Locations() []string {
	return a.distinct(func(j models.Job) string { return j.Location })
}

// JobTypes lists the distinct job types in encounter order.
func (a *Assembler) JobTypes() []string {
	return a.distinct(func(j models.Job) string { return j.JobType })
}

func (a *Assembler) distinct(field func(models.Job) string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, j := range a.jobList {
		v := field(j)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// VideoEmbedURL is the company's culture video in embeddable form.
func (a *Assembler) VideoEmbedURL() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return EmbedURL(a.company.VideoURL)
}
