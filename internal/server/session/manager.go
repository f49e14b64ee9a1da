// Package session tracks live games across HTTP requests.
package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/awaisrafeeq/chesstutor/internal/engine"
	"github.com/awaisrafeeq/chesstutor/internal/storage"
)

// ErrNotFound reports an unknown session id.
var ErrNotFound = errors.New("session not found")

// Session is one live game and its bookkeeping. The engine is not
// safe for concurrent use, so every engine call goes through a
// Manager method holding mu.
type Session struct {
	ID        string
	Engine    *engine.Engine
	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// Manager is the uuid-keyed session registry. With a store configured
// every mutation writes through to it and Restore brings saved
// sessions back after a restart; with a nil store the registry is
// memory only.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    *storage.Store
}

// NewManager creates an empty registry. store may be nil.
func NewManager(store *storage.Store) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// Create starts a new session, at the standard starting position when
// fen is empty.
func (m *Manager) Create(fen string) (*Session, error) {
	eng := engine.New()
	if fen != "" {
		var err error
		eng, err = engine.NewFromFEN(fen)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Engine:    eng,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.persist(s)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

// Get returns the live session for id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Delete removes the session from the registry and the store.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.sessions, id)
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.DeleteSession(id); err != nil {
			log.Printf("session %s: delete from store: %v", id, err)
		}
	}
	return nil
}

// Play applies one move to the session and persists the result.
// Illegal moves come back as the engine's ErrIllegalMove.
func (m *Manager) Play(id, notation string) (engine.MoveRecord, error) {
	s, err := m.Get(id)
	if err != nil {
		return engine.MoveRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.Engine.Play(notation)
	if err != nil {
		return engine.MoveRecord{}, err
	}
	s.UpdatedAt = time.Now()
	m.persist(s)
	return rec, nil
}

// Snapshot reports the session's current verdict set.
func (m *Manager) Snapshot(id string) (engine.Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return engine.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.Snapshot()
}

// Inspect reports on the piece on one square of the session's board.
func (m *Manager) Inspect(id, square string) (engine.SquareReport, error) {
	s, err := m.Get(id)
	if err != nil {
		return engine.SquareReport{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.InspectSquare(square)
}

// Restore loads every stored session into the registry and returns
// the number restored. Records that no longer parse are skipped with
// a log line so one bad row cannot hold the service down.
func (m *Manager) Restore() (int, error) {
	if m.store == nil {
		return 0, nil
	}
	records, err := m.store.ListSessions()
	if err != nil {
		return 0, err
	}

	restored := 0
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		eng, err := engine.Restore(rec.FEN, rec.History)
		if err != nil {
			log.Printf("session %s: skipping stored record: %v", rec.ID, err)
			continue
		}
		m.sessions[rec.ID] = &Session{
			ID:        rec.ID,
			Engine:    eng,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}
		restored++
	}
	return restored, nil
}

// persist writes the session through to the store. Persistence is
// best effort: the registry stays authoritative and failures are
// logged, not returned. Callers hold s.mu or own s exclusively.
func (m *Manager) persist(s *Session) {
	if m.store == nil {
		return
	}
	rec := storage.SessionRecord{
		ID:        s.ID,
		FEN:       s.Engine.FEN(),
		History:   s.Engine.History(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if err := m.store.PutSession(rec); err != nil {
		log.Printf("session %s: persist: %v", s.ID, err)
	}
}
