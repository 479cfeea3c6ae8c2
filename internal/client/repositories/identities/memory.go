package identities

import (
	"context"
	"fmt"
	"sync"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/common"
)

// MemoryRepository keeps records in insertion order for the lifetime of the
// process. Lookups are linear scans.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryRepository(seed ...Record) *MemoryRepository {
	r := &MemoryRepository{}
	r.records = append(r.records, seed...)
	return r
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.Identity.Email == email {
			return rec, nil
		}
	}
	return Record{}, common.ErrorNotFound
}

func (r *MemoryRepository) FindByEmailAndRole(_ context.Context, email string, role models.Role) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.Identity.Email == email && rec.Identity.Role == role {
			return rec, nil
		}
	}
	return Record{}, common.ErrorNotFound
}

func (r *MemoryRepository) Add(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.Identity.Email == rec.Identity.Email {
			return fmt.Errorf("email %s: %w", rec.Identity.Email, common.ErrorAlreadyExists)
		}
	}
	r.records = append(r.records, rec)
	return nil
}

// Update replaces the stored identity with the same ID, keeping its
// credential.
func (r *MemoryRepository) Update(_ context.Context, id models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].Identity.ID == id.ID {
			r.records[i].Identity = id
			return nil
		}
	}
	return fmt.Errorf("identity %s: %w", id.ID, common.ErrorNotFound)
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Identity, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Identity
	}
	return out, nil
}
