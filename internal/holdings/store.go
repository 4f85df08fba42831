package holdings

import (
	"sync"

	"github.com/coinfolio-dev/coinfolio/internal/model"
)

// Store is the single canonical snapshot of current positions. It starts
// empty and is replaced wholesale by each successful import; there is no
// partial mutation. Reads always observe a fully committed snapshot.
type Store struct {
	mu       sync.RWMutex
	holdings []model.Holding
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current holdings.
func (s *Store) Snapshot() []model.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// Len returns the number of holdings in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.holdings)
}

// Commit replaces the snapshot. Entries with non-positive quantity are
// filtered out; nothing with quantity <= 0 is ever persisted.
func (s *Store) Commit(holdings []model.Holding) {
	next := dropNonPositive(holdings)
	s.mu.Lock()
	s.holdings = next
	s.mu.Unlock()
}

// Apply runs a read-merge-write cycle under the store's write lock, giving
// single-writer commits: fn receives the current snapshot and returns the
// next one. The committed result is returned as a copy.
func (s *Store) Apply(fn func(existing []model.Holding) []model.Holding) []model.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make([]model.Holding, len(s.holdings))
	copy(existing, s.holdings)

	s.holdings = dropNonPositive(fn(existing))

	out := make([]model.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}
