package catalog

import (
	"sync"
	"time"

	"veyra-io/estates-web/models"
)

// Store keeps the latest successful catalog fetch. Loads take a ticket before
// issuing their request and commit with it afterwards; a commit whose ticket
// has been superseded is discarded, so a slow old fetch can never overwrite a
// newer result.
type Store struct {
	mu        sync.Mutex
	nextSeq   uint64
	committed uint64

	city       string
	properties []models.Property
	fetchedAt  time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Begin reserves a ticket for a load that is about to start.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	return s.nextSeq
}

// Commit publishes a successful fetch. It reports false when a load that
// began later has already committed, in which case the result is dropped.
func (s *Store) Commit(ticket uint64, city string, properties []models.Property) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket <= s.committed {
		return false
	}

	s.committed = ticket
	s.city = city
	s.properties = properties
	s.fetchedAt = time.Now()
	return true
}

// Snapshot returns the latest committed fetch. ok is false until the first
// successful load; failed loads never alter the snapshot.
func (s *Store) Snapshot() (city string, properties []models.Property, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committed == 0 {
		return "", nil, false
	}

	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return s.city, out, true
}
