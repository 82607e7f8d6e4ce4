package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"tally/internal/receipt"
	"tally/pkg/platform/sentinel"
)

// InMemory keeps receipts in a map guarded by a RWMutex. It intentionally
// favors clarity over performance: inserts take the write lock, lookups the
// read lock, so a returned identifier is always visible to later Finds.
type InMemory struct {
	mu       sync.RWMutex
	receipts map[string]receipt.Receipt
}

func NewInMemory() *InMemory {
	return &InMemory{receipts: make(map[string]receipt.Receipt)}
}

func (s *InMemory) Insert(_ context.Context, rec receipt.Receipt) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Random UUID collisions are astronomically rare; regenerate under the
	// lock on the off chance one occurs.
	id := uuid.NewString()
	for {
		if _, exists := s.receipts[id]; !exists {
			break
		}
		id = uuid.NewString()
	}

	s.receipts[id] = rec
	return id, nil
}

func (s *InMemory) Find(_ context.Context, id string) (receipt.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.receipts[id]; ok {
		return rec, nil
	}
	return receipt.Receipt{}, sentinel.ErrNotFound
}
