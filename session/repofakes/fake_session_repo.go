package fakesessionrepo

import (
	"errors"
	"sync"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
	"github.com/crimsonknight90/inventario-admin/session"
)

var _ session.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo is an in-memory session repo with failure injection for
// exercising the store's best-effort persistence paths.
type FakeSessionRepo struct {
	lock     sync.RWMutex
	snapshot *session.Snapshot

	FailLoad   bool
	FailSave   bool
	FailDelete bool

	SaveCalls   int
	DeleteCalls int
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{}
}

func (r *FakeSessionRepo) Load() (*session.Snapshot, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.FailLoad {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "injected load failure")
	}
	if r.snapshot == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *r.snapshot
	return &copied, nil
}

func (r *FakeSessionRepo) Save(snapshot *session.Snapshot) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.SaveCalls++
	if r.FailSave {
		return errors.New("injected save failure")
	}
	copied := *snapshot
	r.snapshot = &copied
	return nil
}

func (r *FakeSessionRepo) Delete() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.DeleteCalls++
	if r.FailDelete {
		return errors.New("injected delete failure")
	}
	r.snapshot = nil
	return nil
}

// Stored returns the currently held snapshot, nil when absent.
func (r *FakeSessionRepo) Stored() *session.Snapshot {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.snapshot
}

// Seed places a snapshot directly, bypassing failure injection.
func (r *FakeSessionRepo) Seed(snapshot *session.Snapshot) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.snapshot = snapshot
}
