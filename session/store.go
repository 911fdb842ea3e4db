package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/crimsonknight90/inventario-admin/auth"
	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
)

// Transport is the slice of the credential transport the store drives.
type Transport interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.Token, *auth.User, error)
	Logout(ctx context.Context, accessToken string) error
}

// Store is the session state container. Token and user are set and cleared
// together; observers never see one without the other. All mutation happens
// under the mutex, network I/O outside it, last writer wins.
type Store struct {
	transport Transport
	repo      Repo
	nowTime   func() time.Time // nowTime function (injectable for testing)

	mu       sync.Mutex
	state    State
	token    *auth.Token
	user     *auth.User
	loading  bool
	lastErr  string
	restored bool
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// NewStore initializes a session store with its required dependencies.
func NewStore(transport Transport, repo Repo, options ...StoreOption) (*Store, error) {
	if transport == nil {
		return nil, errors.New("[NewStore] transport is required")
	}
	if repo == nil {
		return nil, errors.New("[NewStore] repo is required")
	}

	store := &Store{
		transport: transport,
		repo:      repo,
		nowTime:   time.Now,
		state:     StateIdle,
	}
	for _, opt := range options {
		opt(store)
	}
	return store, nil
}

// Login drives Idle/Failed -> Authenticating -> Authenticated|Failed. On
// success the snapshot is persisted (best-effort); on failure the session
// fields stay cleared, the message is recorded, and the error is returned
// so the caller can present it.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.state = StateAuthenticating
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	token, user, err := s.transport.Login(ctx, auth.Credentials{Email: email, Password: password})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.state = StateFailed
		s.token = nil
		s.user = nil
		s.lastErr = err.Error()
		return err
	}

	s.state = StateAuthenticated
	s.token = token
	s.user = user

	snapshot := &Snapshot{Token: token, User: user, SavedAt: s.nowTime()}
	if saveErr := s.repo.Save(snapshot); saveErr != nil {
		log.Warn().Err(saveErr).Msg("session snapshot not persisted")
	}
	return nil
}

// Logout clears the session unconditionally. The server-side invalidation
// and the snapshot deletion are both best-effort: failures are logged and
// never block the local logout.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.loading = true
	s.mu.Unlock()

	if token != nil && token.AccessToken != "" {
		if err := s.transport.Logout(ctx, token.AccessToken); err != nil {
			log.Warn().Err(err).Msg("server-side logout failed")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(); err != nil {
		log.Warn().Err(err).Msg("session snapshot not deleted")
	}
	s.state = StateIdle
	s.token = nil
	s.user = nil
	s.loading = false
	s.lastErr = ""
	return nil
}

// RestoreFromStorage loads the persisted snapshot, once per store lifetime
// and only from Idle. An absent, unreadable or token-less snapshot leaves
// the store Idle silently (unreadable ones are removed). A valid snapshot
// transitions straight to Authenticated without contacting the server.
func (s *Store) RestoreFromStorage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored || s.state != StateIdle {
		return
	}
	s.restored = true

	snapshot, err := s.repo.Load()
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			log.Warn().Err(err).Msg("discarding unreadable session snapshot")
			s.deleteSnapshot()
		}
		return
	}
	if snapshot.Token == nil || snapshot.Token.AccessToken == "" {
		s.deleteSnapshot()
		return
	}

	s.state = StateAuthenticated
	s.token = snapshot.Token
	s.user = snapshot.User

	// Restored sessions are not re-validated against the server and no
	// expiry is enforced from saved_at. Log the claimed expiry so the gap
	// is at least visible.
	event := log.Warn().Time("saved_at", snapshot.SavedAt)
	if info, err := auth.IntrospectUnverified(snapshot.Token.AccessToken); err == nil && info.ExpiresAt != nil {
		event = event.Time("token_exp", *info.ExpiresAt)
	}
	event.Msg("session restored without server revalidation")
}

func (s *Store) deleteSnapshot() {
	if err := s.repo.Delete(); err != nil {
		log.Warn().Err(err).Msg("session snapshot not deleted")
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current token, nil when signed out.
func (s *Store) Token() *auth.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current user, nil when signed out.
func (s *Store) User() *auth.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// AccessToken returns the current bearer credential, empty when signed out.
// It satisfies the API client's token source.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return ""
	}
	return s.token.AccessToken
}

// Loading reports whether a login or logout is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message, empty when none.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError discards the last recorded error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}
