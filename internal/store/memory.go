// internal/store/memory.go
//
// In-memory board sessions for the HTTP API.
// Boards live only as long as the process; nothing is written to disk.
//
// Characteristics:
//   - Sessions are keyed by a random hex ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Get returns a deep copy; edits go through Update so they happen under the lock.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
)

var ErrNotFound = errors.New("store: board not found")

// Session is one board being edited, with its fixed word length.
type Session struct {
	ID     string       `json:"id"`
	Length int          `json:"length"`
	Board  puzzle.Board `json:"board"`
}

// Store defines the persistence interface for board sessions.
type Store interface {
	// Create starts a session with one blank row.
	Create(ctx context.Context, length int) (*Session, error)

	// Get returns a copy of the session.
	Get(ctx context.Context, id string) (*Session, error)

	// Update applies fn to the stored session under the write lock and
	// returns a copy of the result. If fn fails nothing is changed.
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)

	// Delete removes the session.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Create(ctx context.Context, length int) (*Session, error) {
	if err := puzzle.CheckLength(length); err != nil {
		return nil, err
	}
	s := &Session{ID: randomID(), Length: length}
	s.Board.AddRow(puzzle.NewRow(length))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s.clone(), nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.clone(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := s.clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	m.sessions[id] = work
	return work.clone(), nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (s *Session) clone() *Session {
	c := *s
	c.Board = s.Board.Clone()
	return &c
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
