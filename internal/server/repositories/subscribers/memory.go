package subscribers

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/landing/internal/server/models"
)

// MemoryRepository keeps subscribers in a map keyed by email. Used when the
// server runs without a database DSN and by handler tests.
type MemoryRepository struct {
	mu   sync.Mutex
	rows map[string]models.Subscriber
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]models.Subscriber)}
}

func (r *MemoryRepository) Upsert(ctx context.Context, s *models.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.rows[s.Email]; ok {
		// identity and creation time survive a repeat signup
		s.ID = prev.ID
		s.CreatedAt = prev.CreatedAt
	} else {
		s.ID = int64(len(r.rows) + 1)
		s.CreatedAt = time.Now()
	}
	r.rows[s.Email] = *s
	return nil
}

// Get returns the stored row for an email, if any. Test helper.
func (r *MemoryRepository) Get(email string) (models.Subscriber, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[email]
	return row, ok
}

// Len reports the number of stored rows. Test helper.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
