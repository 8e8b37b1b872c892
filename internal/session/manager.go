package session

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/services"
)

// State is the auth lifecycle of the client.
type State int

const (
	// StateUnknown is the initial state, before Bootstrap has decided.
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Manager owns the session state machine: Unknown at construction, then
// Anonymous or Authenticated after Bootstrap, moved only by login,
// register, logout and the global 401 teardown. All transitions keep the
// persisted store and the in-memory state in step.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	auth    *services.AuthService
	state   State
	session *Session
	log     *logrus.Logger
}

func NewManager(store Store, auth *services.AuthService, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		store: store,
		auth:  auth,
		state: StateUnknown,
		log:   log,
	}
}

// Token implements the client's token source. It returns the persisted
// token even while verification is still pending, so the "who am I" call
// itself can be authenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.Token
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Session returns a copy of the current session, or nil when not
// authenticated.
func (m *Manager) Session() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated || m.session == nil {
		return nil
	}
	copied := *m.session
	return &copied
}

// Company returns the owning company of the current session.
func (m *Manager) Company() (models.Company, bool) {
	s := m.Session()
	if s == nil {
		return models.Company{}, false
	}
	return s.Company, true
}

// Bootstrap resolves Unknown. A persisted session is verified against the
// server before it is trusted; any verification failure, a rejected token
// and an unreachable server alike, invalidates it silently and lands on
// Anonymous with nothing left in the store.
func (m *Manager) Bootstrap(ctx context.Context) {
	stored, err := m.store.Load()
	if err != nil {
		m.log.WithError(err).Warn("session: load failed")
	}
	if !stored.Valid() {
		m.invalidate()
		return
	}

	// Stage the session so Token() serves the persisted token during the
	// verification call, but stay in Unknown until it is confirmed.
	m.mu.Lock()
	m.session = stored
	m.mu.Unlock()

	if _, err := m.auth.Me(ctx); err != nil {
		if !apiclient.IsUnauthorized(err) && !apiclient.IsNotFound(err) {
			m.log.WithError(err).Debug("session: verification failed")
		}
		m.invalidate()
		return
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.mu.Unlock()
}

// Login authenticates and, on success, atomically replaces the persisted
// and in-memory session. On failure the prior state is left untouched and
// the returned error carries a human-readable message.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.auth.Login(ctx, dtos.LoginRequest{Email: email, Password: password})
	if err != nil {
		return errors.New(apiclient.Message(err, "Login failed"))
	}
	m.establish(resp)
	return nil
}

// Register creates the account plus its company and signs in.
func (m *Manager) Register(ctx context.Context, email, password, companyName, fullName string) error {
	resp, err := m.auth.Register(ctx, dtos.RegisterRequest{
		Email:       email,
		Password:    password,
		CompanyName: companyName,
		FullName:    fullName,
	})
	if err != nil {
		return errors.New(apiclient.Message(err, "Registration failed"))
	}
	m.establish(resp)
	return nil
}

func (m *Manager) establish(resp *dtos.AuthResponse) {
	s := &Session{Token: resp.Token, User: resp.User, Company: resp.Company}
	if err := m.store.Save(s); err != nil {
		m.log.WithError(err).Warn("session: persist failed")
	}
	m.mu.Lock()
	m.session = s
	m.state = StateAuthenticated
	m.mu.Unlock()
}

// Logout clears the session synchronously. It never fails and performs no
// server round trip.
func (m *Manager) Logout() {
	m.invalidate()
}

// Invalidate is the global 401 teardown hook. Safe to call redundantly.
func (m *Manager) Invalidate() {
	m.invalidate()
}

func (m *Manager) invalidate() {
	if err := m.store.Clear(); err != nil {
		m.log.WithError(err).Warn("session: clear failed")
	}
	m.mu.Lock()
	m.session = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}
