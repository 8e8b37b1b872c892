package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/services"
)

// fakeAPI is an in-memory careers API for the acme company, covering the
// section and job endpoints the controllers drive.
type fakeAPI struct {
	mu       sync.Mutex
	sections []models.Section
	jobs     []models.Job
	nextID   int

	// failNext makes the next matching request fail with a 500.
	failNext map[string]bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1, failNext: make(map[string]bool)}
}

func (f *fakeAPI) id(prefix string) string {
	id := fmt.Sprintf("%s%d", prefix, f.nextID)
	f.nextID++
	return id
}

// fail arms a one-shot failure for "METHOD /path".
func (f *fakeAPI) fail(route string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext[route] = true
}

func (f *fakeAPI) shouldFail(r *http.Request) bool {
	route := r.Method + " " + r.URL.Path
	if f.failNext[route] {
		delete(f.failNext, route)
		return true
	}
	return false
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.shouldFail(r) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Internal server error"})
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/companies/acme")
	switch {
	case path == "/sections" && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(dtos.SectionsEnvelope{Sections: f.sections})

	case path == "/sections" && r.Method == http.MethodPost:
		var req dtos.CreateSectionRequest
		json.NewDecoder(r.Body).Decode(&req)
		s := models.Section{
			ID:          f.id("s"),
			Title:       req.Title,
			Content:     req.Content,
			SectionType: req.SectionType,
			OrderIndex:  len(f.sections),
			IsVisible:   req.IsVisible == nil || *req.IsVisible,
		}
		f.sections = append(f.sections, s)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dtos.SectionEnvelope{Section: s})

	case path == "/sections/reorder" && r.Method == http.MethodPut:
		var req dtos.ReorderRequest
		json.NewDecoder(r.Body).Decode(&req)
		byID := make(map[string]models.Section, len(f.sections))
		for _, s := range f.sections {
			byID[s.ID] = s
		}
		reordered := make([]models.Section, 0, len(req.SectionIDs))
		for i, id := range req.SectionIDs {
			s, ok := byID[id]
			if !ok {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Unknown section id"})
				return
			}
			s.OrderIndex = i
			reordered = append(reordered, s)
		}
		f.sections = reordered
		w.WriteHeader(http.StatusNoContent)

	case strings.HasPrefix(path, "/sections/") && r.Method == http.MethodPut:
		id := strings.TrimPrefix(path, "/sections/")
		var req dtos.UpdateSectionRequest
		json.NewDecoder(r.Body).Decode(&req)
		for i := range f.sections {
			if f.sections[i].ID != id {
				continue
			}
			if req.Title != nil {
				f.sections[i].Title = *req.Title
			}
			if req.Content != nil {
				f.sections[i].Content = *req.Content
			}
			if req.SectionType != nil {
				f.sections[i].SectionType = *req.SectionType
			}
			if req.IsVisible != nil {
				f.sections[i].IsVisible = *req.IsVisible
			}
			json.NewEncoder(w).Encode(dtos.SectionEnvelope{Section: f.sections[i]})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Section not found"})

	case strings.HasPrefix(path, "/sections/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(path, "/sections/")
		for i := range f.sections {
			if f.sections[i].ID == id {
				f.sections = append(f.sections[:i], f.sections[i+1:]...)
				for j := range f.sections {
					f.sections[j].OrderIndex = j
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Section not found"})

	case path == "/jobs/all" && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(dtos.JobsEnvelope{Jobs: f.jobs})

	case path == "/jobs" && r.Method == http.MethodPost:
		var req dtos.CreateJobRequest
		json.NewDecoder(r.Body).Decode(&req)
		j := models.Job{
			ID:          f.id("j"),
			Title:       req.Title,
			Slug:        strings.ToLower(strings.ReplaceAll(req.Title, " ", "-")),
			Description: req.Description,
			Location:    req.Location,
			JobType:     req.JobType,
			IsPublished: req.IsPublished != nil && *req.IsPublished,
		}
		f.jobs = append(f.jobs, j)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dtos.JobEnvelope{Job: j})

	case strings.HasSuffix(path, "/publish") && r.Method == http.MethodPatch:
		id := strings.TrimSuffix(strings.TrimPrefix(path, "/jobs/"), "/publish")
		var req dtos.PublishRequest
		json.NewDecoder(r.Body).Decode(&req)
		for i := range f.jobs {
			if f.jobs[i].ID == id {
				f.jobs[i].IsPublished = *req.IsPublished
				json.NewEncoder(w).Encode(dtos.JobEnvelope{Job: f.jobs[i]})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Job not found"})

	case strings.HasPrefix(path, "/jobs/") && r.Method == http.MethodPut:
		id := strings.TrimPrefix(path, "/jobs/")
		var req dtos.UpdateJobRequest
		json.NewDecoder(r.Body).Decode(&req)
		for i := range f.jobs {
			if f.jobs[i].ID != id {
				continue
			}
			if req.Title != nil {
				f.jobs[i].Title = *req.Title
			}
			if req.Description != nil {
				f.jobs[i].Description = *req.Description
			}
			if req.Location != nil {
				f.jobs[i].Location = *req.Location
			}
			if req.IsPublished != nil {
				f.jobs[i].IsPublished = *req.IsPublished
			}
			json.NewEncoder(w).Encode(dtos.JobEnvelope{Job: f.jobs[i]})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Job not found"})

	case strings.HasPrefix(path, "/jobs/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(path, "/jobs/")
		for i := range f.jobs {
			if f.jobs[i].ID == id {
				f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Job not found"})

	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dtos.ErrorResponse{Error: "Not found"})
	}
}

func newTestServices(t *testing.T) (*fakeAPI, *services.SectionService, *services.JobService) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	client := apiclient.New(srv.URL, 5*time.Second, nil)
	return api, services.NewSectionService(client), services.NewJobService(client)
}
