package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/services"
)

func validSession() *Session {
	return &Session{
		Token:   "tok-1",
		User:    models.User{ID: "u1", Email: "a@b.co"},
		Company: models.Company{ID: "c1", Name: "Acme", Slug: "acme"},
	}
}

// newManager wires a manager against a fake auth API, mirroring the
// production hookup: the manager is both token source and 401 teardown.
func newManager(t *testing.T, store Store, handler http.HandlerFunc) *Manager {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := apiclient.New(srv.URL, 5*time.Second, nil)
	mgr := NewManager(store, services.NewAuthService(client), nil)
	client.SetTokenSource(apiclient.TokenSourceFunc(mgr.Token))
	client.OnUnauthorized(mgr.Invalidate)
	return mgr
}

func TestBootstrapWithoutStoredSession(t *testing.T) {
	mgr := newManager(t, NewMemoryStore(nil), func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a stored token")
	})

	assert.Equal(t, StateUnknown, mgr.State())
	mgr.Bootstrap(context.Background())
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Nil(t, mgr.Session())
}

func TestBootstrapVerifiesStoredSession(t *testing.T) {
	var gotAuth string
	store := NewMemoryStore(validSession())
	mgr := newManager(t, store, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"user":{"id":"u1","email":"a@b.co"}}`))
	})

	mgr.Bootstrap(context.Background())
	assert.Equal(t, StateAuthenticated, mgr.State())
	assert.Equal(t, "Bearer tok-1", gotAuth, "verification must use the stored token")

	ses := mgr.Session()
	require.NotNil(t, ses)
	assert.Equal(t, "acme", ses.Company.Slug)
}

func TestBootstrapInvalidatesRejectedToken(t *testing.T) {
	store := NewMemoryStore(validSession())
	mgr := newManager(t, store, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid token"}`))
	})

	mgr.Bootstrap(context.Background())
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Empty(t, mgr.Token())

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored, "rejected session must be cleared from the store")
}

func TestBootstrapDiscardsPartialSession(t *testing.T) {
	partial := &Session{Token: "tok-only"} // no user, no company
	store := NewMemoryStore(partial)
	mgr := newManager(t, store, func(w http.ResponseWriter, r *http.Request) {
		t.Error("a partial session must not be verified")
	})

	mgr.Bootstrap(context.Background())
	assert.Equal(t, StateAnonymous, mgr.State())
}

func TestBootstrapClearsStoreOnTransportError(t *testing.T) {
	store := NewMemoryStore(validSession())
	srv := httptest.NewServer(nil)
	srv.Close() // connection refused from here on

	client := apiclient.New(srv.URL, time.Second, nil)
	mgr := NewManager(store, services.NewAuthService(client), nil)
	client.SetTokenSource(apiclient.TokenSourceFunc(mgr.Token))

	mgr.Bootstrap(context.Background())
	assert.Equal(t, StateAnonymous, mgr.State(), "unverified session must not be trusted")
	assert.Empty(t, mgr.Token())

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored, "a session that failed verification must not survive in the store")
}

func TestLoginEstablishesSession(t *testing.T) {
	store := NewMemoryStore(nil)
	mgr := newManager(t, store, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-9","user":{"id":"u1"},"company":{"id":"c1","name":"Acme","slug":"acme"}}`))
	})

	require.NoError(t, mgr.Login(context.Background(), "a@b.co", "pw"))
	assert.Equal(t, StateAuthenticated, mgr.State())
	assert.Equal(t, "tok-9", mgr.Token())

	stored, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tok-9", stored.Token)
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	store := NewMemoryStore(nil)
	mgr := newManager(t, store, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	})
	mgr.Bootstrap(context.Background())
	require.Equal(t, StateAnonymous, mgr.State())

	err := mgr.Login(context.Background(), "a@b.co", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.Equal(t, StateAnonymous, mgr.State())
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := NewMemoryStore(validSession())
	mgr := newManager(t, store, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"u1"}}`))
	})
	mgr.Bootstrap(context.Background())
	require.Equal(t, StateAuthenticated, mgr.State())

	mgr.Logout()
	assert.Equal(t, StateAnonymous, mgr.State())
	mgr.Logout()
	mgr.Invalidate()
	assert.Equal(t, StateAnonymous, mgr.State())
}

func TestFileStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing file reads as no session")

	require.NoError(t, store.Save(validSession()))
	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-1", loaded.Token)
	assert.Equal(t, "acme", loaded.Company.Slug)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
	require.NoError(t, store.Clear(), "clearing twice is fine")
}
