package theme

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
)

// Applier is the presentation-layer contract: it receives the full token
// set on every change. Implementations must set every variable
// unconditionally, even when unchanged.
type Applier interface {
	Apply(cfg Config)
}

// Store owns the current theme. Every change is re-applied to the
// presentation layer and written through to the repo; persistence failures
// are logged and swallowed so a broken storage area never blocks the UI.
type Store struct {
	repo    Repo
	applier Applier

	mu      sync.Mutex
	current Config
}

// NewStore initializes a theme store with its required dependencies.
func NewStore(repo Repo, applier Applier) (*Store, error) {
	if repo == nil {
		return nil, errors.New("[NewStore] repo is required")
	}
	if applier == nil {
		return nil, errors.New("[NewStore] applier is required")
	}
	return &Store{
		repo:    repo,
		applier: applier,
		current: Default(),
	}, nil
}

// Initialize loads the persisted theme, falling back wholesale to the
// compiled-in default on absence or any read/decode failure, and applies
// the result. Initialize never fails.
func (s *Store) Initialize() {
	cfg := Default()

	loaded, err := s.repo.Load()
	switch {
	case err == nil:
		cfg = *loaded
	case apperrors.Is(err, apperrors.ErrNotFound):
		// first run, defaults apply
	default:
		log.Warn().Err(err).Msg("falling back to default theme")
	}

	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()

	s.applier.Apply(cfg)
}

// SetTheme replaces the theme wholesale, re-applies it and persists it.
// Callers wanting a partial edit read-modify-write the full record.
func (s *Store) SetTheme(next Config) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	s.applier.Apply(next)

	if err := s.repo.Save(&next); err != nil {
		log.Warn().Err(err).Msg("theme not persisted")
	}
}

// ResetTheme restores the compiled-in default.
func (s *Store) ResetTheme() {
	s.SetTheme(Default())
}

// Current returns the active theme.
func (s *Store) Current() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
