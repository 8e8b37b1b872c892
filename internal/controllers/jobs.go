package controllers

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/services"
)

// JobForm is the edit buffer for one job. It mirrors the create payload
// with plain values so view code can bind to it directly.
type JobForm struct {
	Title       string
	Description string
	Workplace   string
	Location    string
	Department  string
	JobType     string
	Seniority   string
	Salary      string
	IsPublished bool
}

func (f JobForm) createRequest() dtos.CreateJobRequest {
	published := f.IsPublished
	return dtos.CreateJobRequest{
		Title:       f.Title,
		Description: f.Description,
		Workplace:   f.Workplace,
		Location:    f.Location,
		Department:  f.Department,
		JobType:     f.JobType,
		Seniority:   f.Seniority,
		Salary:      f.Salary,
		IsPublished: &published,
	}
}

func (f JobForm) updateRequest() dtos.UpdateJobRequest {
	published := f.IsPublished
	return dtos.UpdateJobRequest{
		Title:       &f.Title,
		Description: &f.Description,
		Workplace:   &f.Workplace,
		Location:    &f.Location,
		Department:  &f.Department,
		JobType:     &f.JobType,
		Seniority:   &f.Seniority,
		Salary:      &f.Salary,
		IsPublished: &published,
	}
}

// JobsController drives the manage-jobs view: the admin listing (all
// publish states), the modal form buffer, and the publish toggle.
type JobsController struct {
	mu   sync.Mutex
	jobs *services.JobService
	slug string
	log  *logrus.Logger

	list      []models.Job
	form      JobForm
	editingID string

	// gen discards completions that arrive after a Reset; pubSeq holds
	// the per-job publish issuance counter (the later issuance wins).
	gen    uint64
	pubSeq map[string]uint64
}

func NewJobsController(jobs *services.JobService, slug string, log *logrus.Logger) *JobsController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &JobsController{
		jobs:   jobs,
		slug:   slug,
		log:    log,
		pubSeq: make(map[string]uint64),
	}
}

// Load fetches the admin listing. A failure leaves the current list.
func (c *JobsController) Load(ctx context.Context) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	list, err := c.jobs.ListAdmin(ctx, c.slug)
	if err != nil {
		c.log.WithError(err).Warn("jobs: load failed")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return nil // view moved on, drop the stale result
	}
	c.list = list
	return nil
}

func (c *JobsController) Jobs() []models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Job(nil), c.list...)
}

// StartCreate resets the buffer for a new job.
func (c *JobsController) StartCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = JobForm{}
	c.editingID = ""
}

// StartEdit copies the listed job into the buffer. It reports false when
// the id is no longer listed.
func (c *JobsController) StartEdit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, j := range c.list {
		if j.ID == id {
			c.form = JobForm{
				Title:       j.Title,
				Description: j.Description,
				Workplace:   j.Workplace,
				Location:    j.Location,
				Department:  j.Department,
				JobType:     j.JobType,
				Seniority:   j.Seniority,
				Salary:      j.Salary,
				IsPublished: j.IsPublished,
			}
			c.editingID = id
			return true
		}
	}
	return false
}

func (c *JobsController) SetForm(f JobForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

func (c *JobsController) SetEditing(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = id
}

func (c *JobsController) Form() (JobForm, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form, c.editingID
}

// Save submits the buffer — update when an id is being edited, create
// otherwise — then refreshes the list from the server and closes the form.
// No optimistic insert: the list only changes once the server confirmed.
func (c *JobsController) Save(ctx context.Context) error {
	c.mu.Lock()
	form := c.form
	editingID := c.editingID
	c.mu.Unlock()

	var err error
	if editingID != "" {
		_, err = c.jobs.Update(ctx, c.slug, editingID, form.updateRequest())
	} else {
		_, err = c.jobs.Create(ctx, c.slug, form.createRequest())
	}
	if err != nil {
		c.log.WithError(err).Warn("jobs: save failed")
		return err
	}

	if err := c.Load(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.form = JobForm{}
	c.editingID = ""
	c.mu.Unlock()
	return nil
}

// Delete removes a job. It refuses to act until the destructive action has
// been confirmed.
func (c *JobsController) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := c.jobs.Delete(ctx, c.slug, id); err != nil {
		c.log.WithError(err).Warn("jobs: delete failed")
		return err
	}
	return c.Load(ctx)
}

// TogglePublish sends the explicit target state. Rapid repeated toggles on
// the same job are resolved issuance-order: each call takes the next
// sequence number, and only the call still holding the latest sequence
// refreshes the list, so an earlier completion can never overwrite a later
// call's intent.
func (c *JobsController) TogglePublish(ctx context.Context, id string, published bool) error {
	c.mu.Lock()
	c.pubSeq[id]++
	seq := c.pubSeq[id]
	c.mu.Unlock()

	_, err := c.jobs.TogglePublish(ctx, c.slug, id, published)

	c.mu.Lock()
	latest := c.pubSeq[id] == seq
	c.mu.Unlock()

	if err != nil {
		c.log.WithError(err).Warn("jobs: publish toggle failed")
		return err
	}
	if !latest {
		return nil
	}
	return c.Load(ctx)
}

// Reset abandons any in-flight completions, e.g. when the owning view
// unmounts or the identity changes.
func (c *JobsController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.list = nil
	c.form = JobForm{}
	c.editingID = ""
}
