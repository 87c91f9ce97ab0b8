package journal

import (
	"sync"

	"github.com/contafacil-dev/contafacil/internal/model"
)

// Store is the append-only in-memory journal, one log per entity. It
// is an explicit handle passed into the components that need it, never
// ambient state; its lifetime is the process's. Entries are never
// updated or removed once appended — corrections are new entries.
type Store struct {
	mu     sync.Mutex
	logs   map[int]*entityLog
	nextID int
}

type entityLog struct {
	mu      sync.Mutex
	entries []model.Entry
}

// NewStore creates an empty journal store.
func NewStore() *Store {
	return &Store{logs: make(map[int]*entityLog)}
}

func (s *Store) log(entityID int) *entityLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.logs[entityID]
	if !ok {
		l = &entityLog{}
		s.logs[entityID] = l
	}
	return l
}

// Append adds an already-validated entry to an entity's log and
// returns the assigned sequence number (count of prior entries + 1).
// Appends for one entity are serialized by the log's mutex, so numbers
// form a contiguous run from 1; appends for different entities proceed
// independently.
func (s *Store) Append(entityID int, e model.Entry) int {
	l := s.log(entityID)

	s.mu.Lock()
	s.nextID++
	e.ID = s.nextID
	s.mu.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	e.EntityID = entityID
	e.Number = len(l.entries) + 1
	e.Lines = append([]model.Line(nil), e.Lines...)
	l.entries = append(l.entries, e)
	return e.Number
}

// Entries returns a snapshot of an entity's log ordered by sequence
// number ascending. The slice is a copy: a concurrent append is seen
// fully or not at all, never half-written.
func (s *Store) Entries(entityID int) []model.Entry {
	l := s.log(entityID)

	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns the number of entries in an entity's log.
func (s *Store) Count(entityID int) int {
	l := s.log(entityID)

	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
