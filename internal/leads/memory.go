package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Manny2706/servicehire/internal/model/lead"
)

// MemoryStore keeps captured leads in memory. Suitable for the CLI surface
// and tests; the API server uses the sqlite store.
type MemoryStore struct {
	mu    sync.RWMutex
	items []lead.Lead
}

// NewMemoryStore returns an empty in-memory sink.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record appends the lead, assigning an ID and capture time.
func (s *MemoryStore) Record(_ context.Context, l lead.Lead) error {
	l.ID = uuid.NewString()
	if l.CapturedAt.IsZero() {
		l.CapturedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.items = append(s.items, l)
	s.mu.Unlock()
	return nil
}

// List returns a copy of all captured leads.
func (s *MemoryStore) List(_ context.Context) ([]lead.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]lead.Lead, len(s.items))
	copy(copied, s.items)
	return copied, nil
}
