package memory

import (
	"context"
	"sync"

	"github.com/cadizz/booking/internal/ledger"
)

// Store keeps the occupancy map in process memory. Load and Save copy the map
// both ways so callers never share state with the store.
type Store struct {
	mu  sync.Mutex
	occ ledger.Occupancy
}

func New() *Store {
	return &Store{occ: make(ledger.Occupancy)}
}

func (s *Store) Load(_ context.Context) (ledger.Occupancy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.occ.Clone(), nil
}

func (s *Store) Save(_ context.Context, occ ledger.Occupancy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.occ = occ.Clone()

	return nil
}
