package controllers

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

// TestTogglePublishLaterIssuanceWins pins the overlap policy: when a second
// toggle is issued while the first is still in flight, the second one's
// explicit state is final and the first completion must not refresh the
// listing on top of it.
func TestTogglePublishLaterIssuanceWins(t *testing.T) {
	var (
		mu        sync.Mutex
		published bool
	)
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	patches := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPatch:
			var req dtos.PublishRequest
			json.NewDecoder(r.Body).Decode(&req)

			mu.Lock()
			patches++
			first := patches == 1
			mu.Unlock()
			if first {
				close(firstArrived)
				<-releaseFirst // hold the first toggle in flight
			}

			mu.Lock()
			published = *req.IsPublished
			job := models.Job{ID: "j1", Title: "Role", IsPublished: published}
			mu.Unlock()
			json.NewEncoder(w).Encode(dtos.JobEnvelope{Job: job})

		default: // admin listing
			mu.Lock()
			job := models.Job{ID: "j1", Title: "Role", IsPublished: published}
			mu.Unlock()
			json.NewEncoder(w).Encode(dtos.JobsEnvelope{Jobs: []models.Job{job}})
		}
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, 5*time.Second, nil)
	ctrl := NewJobsController(services.NewJobService(client), "acme", nil)
	require.NoError(t, ctrl.Load(context.Background()))

	done := make(chan error, 1)
	go func() {
		done <- ctrl.TogglePublish(context.Background(), "j1", true)
	}()
	<-firstArrived

	// Second toggle issued while the first is in flight; it wins.
	require.NoError(t, ctrl.TogglePublish(context.Background(), "j1", false))
	require.False(t, ctrl.Jobs()[0].IsPublished)

	close(releaseFirst)
	require.NoError(t, <-done)

	// The first completion carried a stale issuance and must not have
	// refreshed the listing; note the server state it wrote last is
	// irrelevant to the display, which follows the later issuance.
	assert.False(t, ctrl.Jobs()[0].IsPublished, "later issuance owns the displayed state")
}
