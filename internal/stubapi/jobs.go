package stubapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
)

// handleListJobs is the public listing: published jobs only, filtered by
// the optional search / location / jobType / department parameters.
func (s *Server) handleListJobs(c *gin.Context) {
	company, ok := s.companyBySlug(c)
	if !ok {
		return
	}

	query := s.db.Where("company_id = ? AND is_published = ?", company.ID, true)
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}
	if jobType := c.Query("jobType"); jobType != "" {
		query = query.Where("job_type = ?", jobType)
	}
	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}

	var records []JobRecord
	if err := query.Order("created_at desc").Find(&records).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, dtos.JobsEnvelope{Jobs: toJobs(records, company.Name)})
}

func (s *Server) handleListJobsAdmin(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	var records []JobRecord
	if err := s.db.Where("company_id = ?", company.ID).Order("created_at desc").Find(&records).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, dtos.JobsEnvelope{Jobs: toJobs(records, company.Name)})
}

// handleGetJob resolves a public job by its slug; unpublished jobs are
// invisible here.
func (s *Server) handleGetJob(c *gin.Context) {
	company, ok := s.companyBySlug(c)
	if !ok {
		return
	}

	var record JobRecord
	err := s.db.Where("company_id = ? AND slug = ? AND is_published = ?", company.ID, c.Param("jobSlug"), true).First(&record).Error
	if err != nil {
		fail(c, http.StatusNotFound, "Job not found")
		return
	}
	c.JSON(http.StatusOK, dtos.JobEnvelope{Job: record.Job(company.Name)})
}

func (s *Server) handleCreateJob(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid job payload: "+err.Error())
		return
	}

	record := JobRecord{
		ID:        uuid.NewString(),
		CompanyID: company.ID,
		Title:     req.Title,
		Slug: uniqueSlug(slugify(req.Title), func(slug string) bool {
			var count int64
			s.db.Model(&JobRecord{}).Where("company_id = ? AND slug = ?", company.ID, slug).Count(&count)
			return count > 0
		}),
		Description: req.Description,
		Workplace:   req.Workplace,
		Location:    req.Location,
		Department:  req.Department,
		JobType:     req.JobType,
		Seniority:   req.Seniority,
		Salary:      req.Salary,
	}
	if req.IsPublished != nil {
		record.IsPublished = *req.IsPublished
	}
	if err := s.db.Create(&record).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, dtos.JobEnvelope{Job: record.Job(company.Name)})
}

// jobByID looks up an owned job by id. The mutating routes address jobs by
// id in the same path position the public route uses for slugs.
func (s *Server) jobByID(c *gin.Context, companyID string) (*JobRecord, bool) {
	var record JobRecord
	if err := s.db.Where("company_id = ? AND id = ?", companyID, c.Param("jobSlug")).First(&record).Error; err != nil {
		fail(c, http.StatusNotFound, "Job not found")
		return nil, false
	}
	return &record, true
}

func (s *Server) handleUpdateJob(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)
	record, ok := s.jobByID(c, company.ID)
	if !ok {
		return
	}

	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid job payload: "+err.Error())
		return
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Workplace != nil {
		record.Workplace = *req.Workplace
	}
	if req.Location != nil {
		record.Location = *req.Location
	}
	if req.Department != nil {
		record.Department = *req.Department
	}
	if req.JobType != nil {
		record.JobType = *req.JobType
	}
	if req.Seniority != nil {
		record.Seniority = *req.Seniority
	}
	if req.Salary != nil {
		record.Salary = *req.Salary
	}
	if req.IsPublished != nil {
		record.IsPublished = *req.IsPublished
	}
	if err := s.db.Save(record).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, dtos.JobEnvelope{Job: record.Job(company.Name)})
}

func (s *Server) handleDeleteJob(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	result := s.db.Where("company_id = ? AND id = ?", company.ID, c.Param("jobSlug")).Delete(&JobRecord{})
	if result.Error != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	if result.RowsAffected == 0 {
		fail(c, http.StatusNotFound, "Job not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleTogglePublish(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)
	record, ok := s.jobByID(c, company.ID)
	if !ok {
		return
	}

	var req dtos.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPublished == nil {
		fail(c, http.StatusBadRequest, "isPublished is required")
		return
	}
	record.IsPublished = *req.IsPublished
	if err := s.db.Save(record).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update publish state")
		return
	}
	c.JSON(http.StatusOK, dtos.JobEnvelope{Job: record.Job(company.Name)})
}

func toJobs(records []JobRecord, companyName string) []models.Job {
	jobs := make([]models.Job, len(records))
	for i, r := range records {
		jobs[i] = r.Job(companyName)
	}
	return jobs
}
