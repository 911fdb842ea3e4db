package fakethemerepo

import (
	"errors"
	"sync"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
	"github.com/crimsonknight90/inventario-admin/theme"
)

var _ theme.Repo = (*FakeThemeRepo)(nil)

// FakeThemeRepo is an in-memory theme repo with failure injection.
type FakeThemeRepo struct {
	lock   sync.RWMutex
	stored *theme.Config

	FailLoad bool
	FailSave bool

	SaveCalls int
}

func NewFakeThemeRepo() *FakeThemeRepo {
	return &FakeThemeRepo{}
}

func (r *FakeThemeRepo) Load() (*theme.Config, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.FailLoad {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "injected load failure")
	}
	if r.stored == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *FakeThemeRepo) Save(cfg *theme.Config) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.SaveCalls++
	if r.FailSave {
		return errors.New("injected save failure")
	}
	copied := *cfg
	r.stored = &copied
	return nil
}

func (r *FakeThemeRepo) Delete() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.stored = nil
	return nil
}

// Stored returns the currently held record, nil when absent.
func (r *FakeThemeRepo) Stored() *theme.Config {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.stored
}

// Seed places a record directly, bypassing failure injection.
func (r *FakeThemeRepo) Seed(cfg *theme.Config) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.stored = cfg
}
