package session

import (
	"sync"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo keeps the snapshot in process memory only. It backs the
// ephemeral session scope: the snapshot lives exactly as long as the
// process, matching session-scoped browser storage.
type InMemoryRepo struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{}
}

func (r *InMemoryRepo) Load() (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *r.snapshot
	return &copied, nil
}

func (r *InMemoryRepo) Save(snapshot *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *snapshot
	r.snapshot = &copied
	return nil
}

func (r *InMemoryRepo) Delete() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = nil
	return nil
}
