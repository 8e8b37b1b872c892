package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	c.SetTokenSource(TokenSourceFunc(func() string { return "tok-123" }))

	require.NoError(t, c.Get(context.Background(), "/api/auth/me", nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	c.SetTokenSource(TokenSourceFunc(func() string { return "" }))

	require.NoError(t, c.Get(context.Background(), "/api/jobs", nil))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedFiresTeardown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid token"}`))
	})
	c.SetTokenSource(TokenSourceFunc(func() string { return "stale" }))

	torn := 0
	c.OnUnauthorized(func() { torn++ })

	err := c.Get(context.Background(), "/api/auth/me", nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 1, torn)
	assert.Equal(t, "Invalid token", Message(err, "fallback"))
}

func TestUnauthorizedWithoutTokenSkipsTeardown(t *testing.T) {
	// A failed anonymous request (wrong login credentials) must not tear
	// down a session, since there is none.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	})

	torn := 0
	c.OnUnauthorized(func() { torn++ })

	err := c.Post(context.Background(), "/api/auth/login", map[string]string{"email": "x"}, nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Zero(t, torn)
}

func TestNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Company not found"}`))
	})

	err := c.Get(context.Background(), "/api/companies/ghost", nil)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Company not found", apiErr.Message)
}

func TestMessageFallback(t *testing.T) {
	// A body with no usable error payload falls back to the caller's text.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	})

	err := c.Get(context.Background(), "/api/jobs", nil)
	require.Error(t, err)
	assert.Equal(t, "Something went wrong", Message(err, "Something went wrong"))

	// Transport errors have no server message either.
	assert.Equal(t, "fallback", Message(errors.New("dial tcp: refused"), "fallback"))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"job":{"id":"j1","title":"Engineer"}}`))
	})

	var out struct {
		Job struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"job"`
	}
	require.NoError(t, c.Post(context.Background(), "/api/companies/acme/jobs", map[string]string{"title": "Engineer"}, &out))
	assert.Equal(t, "j1", out.Job.ID)
	assert.Equal(t, "Engineer", out.Job.Title)
}
