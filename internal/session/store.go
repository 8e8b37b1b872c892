package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/whitecaroot/careers-builder/internal/models"
)

// Session is the authenticated identity held by the client for the
// duration of a login. It is persisted as a single unit: either all three
// fields are present or the session is treated as absent.
type Session struct {
	Token   string         `json:"token"`
	User    models.User    `json:"user"`
	Company models.Company `json:"company"`
}

// Valid reports whether the session is complete. A partially persisted
// session (token without identity, or the reverse) counts as absent.
func (s *Session) Valid() bool {
	if s == nil {
		return false
	}
	return s.Token != "" && s.User.ID != "" && s.Company.ID != "" && s.Company.Slug != ""
}

// Store persists the session between runs. Load returns (nil, nil) when
// nothing is stored.
type Store interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// FileStore keeps the session in a JSON file, the desktop analog of the
// browser's local storage.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt file is the same as no session.
		return nil, nil
	}
	return &s, nil
}

func (f *FileStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore is an in-process store used by tests and by the web gateway,
// which seeds it from the request cookie and writes the result back.
type MemoryStore struct {
	mu      sync.Mutex
	session *Session
}

func NewMemoryStore(seed *Session) *MemoryStore {
	return &MemoryStore{session: seed}
}

func (m *MemoryStore) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	copied := *m.session
	return &copied, nil
}

func (m *MemoryStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	m.session = &copied
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
