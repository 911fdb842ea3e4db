package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crimsonknight90/inventario-admin/auth"
	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
	"github.com/crimsonknight90/inventario-admin/session"
	fakesessionrepo "github.com/crimsonknight90/inventario-admin/session/repofakes"
)

const (
	testUserEmail    = "maria@example.com"
	testUserPassword = "password123"
)

// fakeTransport scripts the credential transport's outcomes.
type fakeTransport struct {
	token     *auth.Token
	user      *auth.User
	loginErr  error
	logoutErr error

	loginCalls  int
	logoutCalls int
	lastLogout  string
}

func (f *fakeTransport) Login(_ context.Context, _ auth.Credentials) (*auth.Token, *auth.User, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, nil, f.loginErr
	}
	return f.token, f.user, nil
}

func (f *fakeTransport) Logout(_ context.Context, accessToken string) error {
	f.logoutCalls++
	f.lastLogout = accessToken
	return f.logoutErr
}

type testFixture struct {
	transport *fakeTransport
	repo      *fakesessionrepo.FakeSessionRepo
	store     *session.Store
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	transport := &fakeTransport{
		token: &auth.Token{AccessToken: "tok-1", TokenType: "bearer", ExpiresIn: 3600},
		user:  &auth.User{ID: "user-1", Email: testUserEmail, Roles: []string{"admin"}},
	}
	repo := fakesessionrepo.NewFakeSessionRepo()
	store, err := session.NewStore(transport, repo,
		session.WithNowTime(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)

	return &testFixture{transport: transport, repo: repo, store: store}
}

func TestNewStoreRequiresDependencies(t *testing.T) {
	_, err := session.NewStore(nil, fakesessionrepo.NewFakeSessionRepo())
	require.Error(t, err)

	_, err = session.NewStore(&fakeTransport{}, nil)
	require.Error(t, err)
}

func TestLoginSuccess(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.store.Login(context.Background(), testUserEmail, testUserPassword))

	require.Equal(t, session.StateAuthenticated, f.store.State())
	require.NotNil(t, f.store.Token())
	require.NotNil(t, f.store.User())
	require.Equal(t, "tok-1", f.store.AccessToken())
	require.False(t, f.store.Loading())
	require.Empty(t, f.store.Err())

	stored := f.repo.Stored()
	require.NotNil(t, stored)
	require.Equal(t, "tok-1", stored.Token.AccessToken)
	require.Equal(t, testUserEmail, stored.User.Email)
	require.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), stored.SavedAt)
}

func TestLoginFailureLeavesNoPartialState(t *testing.T) {
	f := setupTestFixture(t)
	f.transport.loginErr = apperrors.Wrapf(apperrors.ErrUnauthorized, "Incorrect username or password")

	err := f.store.Login(context.Background(), testUserEmail, "wrong")
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))

	require.Equal(t, session.StateFailed, f.store.State())
	require.Nil(t, f.store.Token())
	require.Nil(t, f.store.User())
	require.Contains(t, f.store.Err(), "Incorrect username or password")
	require.Nil(t, f.repo.Stored())
}

func TestLoginSwallowsPersistenceFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.repo.FailSave = true

	require.NoError(t, f.store.Login(context.Background(), testUserEmail, testUserPassword))
	require.Equal(t, session.StateAuthenticated, f.store.State())
	require.NotNil(t, f.store.Token())
}

func TestLogoutClearsEverything(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.store.Login(context.Background(), testUserEmail, testUserPassword))

	require.NoError(t, f.store.Logout(context.Background()))

	require.Equal(t, session.StateIdle, f.store.State())
	require.Nil(t, f.store.Token())
	require.Nil(t, f.store.User())
	require.Empty(t, f.store.Err())
	require.Nil(t, f.repo.Stored())
	require.Equal(t, 1, f.transport.logoutCalls)
	require.Equal(t, "tok-1", f.transport.lastLogout)
}

func TestLogoutClearsDespiteServerFailure(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.store.Login(context.Background(), testUserEmail, testUserPassword))
	f.transport.logoutErr = errors.New("backend unreachable")
	f.repo.FailDelete = true

	require.NoError(t, f.store.Logout(context.Background()))

	require.Equal(t, session.StateIdle, f.store.State())
	require.Nil(t, f.store.Token())
	require.Nil(t, f.store.User())
}

func TestLogoutWhenSignedOutSkipsServerCall(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.store.Logout(context.Background()))
	require.Zero(t, f.transport.logoutCalls)
	require.Equal(t, session.StateIdle, f.store.State())
}

func TestRestoreFromStorage(t *testing.T) {
	t.Run("missing snapshot stays idle", func(t *testing.T) {
		f := setupTestFixture(t)
		f.store.RestoreFromStorage()
		require.Equal(t, session.StateIdle, f.store.State())
		require.Zero(t, f.transport.loginCalls)
	})

	t.Run("unreadable snapshot stays idle and is removed", func(t *testing.T) {
		f := setupTestFixture(t)
		f.repo.FailLoad = true
		f.store.RestoreFromStorage()
		require.Equal(t, session.StateIdle, f.store.State())
		require.Equal(t, 1, f.repo.DeleteCalls)
	})

	t.Run("token-less snapshot stays idle and is removed", func(t *testing.T) {
		f := setupTestFixture(t)
		f.repo.Seed(&session.Snapshot{User: &auth.User{Email: testUserEmail}})
		f.store.RestoreFromStorage()
		require.Equal(t, session.StateIdle, f.store.State())
		require.Equal(t, 1, f.repo.DeleteCalls)
	})

	t.Run("valid snapshot authenticates without network", func(t *testing.T) {
		f := setupTestFixture(t)
		f.repo.Seed(&session.Snapshot{
			Token:   &auth.Token{AccessToken: "tok-9", TokenType: "bearer"},
			User:    &auth.User{ID: "user-9", Email: testUserEmail, Roles: []string{"admin"}},
			SavedAt: time.Now(),
		})

		f.store.RestoreFromStorage()

		require.Equal(t, session.StateAuthenticated, f.store.State())
		require.Equal(t, "tok-9", f.store.AccessToken())
		require.Equal(t, "user-9", f.store.User().ID)
		require.Zero(t, f.transport.loginCalls)
	})

	t.Run("runs at most once", func(t *testing.T) {
		f := setupTestFixture(t)
		f.store.RestoreFromStorage()
		f.repo.Seed(&session.Snapshot{
			Token:   &auth.Token{AccessToken: "tok-late"},
			SavedAt: time.Now(),
		})
		f.store.RestoreFromStorage()
		require.Equal(t, session.StateIdle, f.store.State())
	})

	t.Run("no-op once authenticated", func(t *testing.T) {
		f := setupTestFixture(t)
		require.NoError(t, f.store.Login(context.Background(), testUserEmail, testUserPassword))
		f.store.RestoreFromStorage()
		require.Equal(t, session.StateAuthenticated, f.store.State())
		require.Equal(t, "tok-1", f.store.AccessToken())
	})
}

func TestRoundTripThroughFileRepo(t *testing.T) {
	dir := t.TempDir()
	transport := &fakeTransport{
		token: &auth.Token{AccessToken: "tok-rt", TokenType: "bearer", RefreshToken: "refresh-rt"},
		user:  &auth.User{ID: "user-rt", Email: testUserEmail, FullName: "María García", Roles: []string{"admin", "user"}},
	}

	first, err := session.NewStore(transport, session.NewFileRepo(dir))
	require.NoError(t, err)
	require.NoError(t, first.Login(context.Background(), testUserEmail, testUserPassword))

	second, err := session.NewStore(transport, session.NewFileRepo(dir))
	require.NoError(t, err)
	second.RestoreFromStorage()

	require.Equal(t, session.StateAuthenticated, second.State())
	require.Equal(t, first.Token(), second.Token())
	require.Equal(t, first.User(), second.User())
}

func TestClearError(t *testing.T) {
	f := setupTestFixture(t)
	f.transport.loginErr = apperrors.Wrapf(apperrors.ErrNetwork, "timeout")

	require.Error(t, f.store.Login(context.Background(), testUserEmail, testUserPassword))
	require.NotEmpty(t, f.store.Err())

	f.store.ClearError()
	require.Empty(t, f.store.Err())
}
