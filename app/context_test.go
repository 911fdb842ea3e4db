package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crimsonknight90/inventario-admin/app"
	"github.com/crimsonknight90/inventario-admin/auth"
	"github.com/crimsonknight90/inventario-admin/httpapi"
	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
	"github.com/crimsonknight90/inventario-admin/notify"
	"github.com/crimsonknight90/inventario-admin/session"
	fakesessionrepo "github.com/crimsonknight90/inventario-admin/session/repofakes"
	"github.com/crimsonknight90/inventario-admin/theme"
	fakethemerepo "github.com/crimsonknight90/inventario-admin/theme/repofakes"
)

func testApp(t *testing.T) *app.App {
	t.Helper()

	sessions, err := session.NewStore(auth.NewService("http://localhost:8000"), fakesessionrepo.NewFakeSessionRepo())
	require.NoError(t, err)

	themes, err := theme.NewStore(fakethemerepo.NewFakeThemeRepo(), noopApplier{})
	require.NoError(t, err)

	return &app.App{
		Sessions: sessions,
		Theme:    themes,
		Notifier: notify.NewNotifier(),
		API:      httpapi.NewClient("http://localhost:8000", sessions),
	}
}

type noopApplier struct{}

func (noopApplier) Apply(theme.Config) {}

func TestFromContext(t *testing.T) {
	application := testApp(t)
	ctx := app.WithApp(context.Background(), application)

	got, err := app.FromContext(ctx)
	require.NoError(t, err)
	require.Same(t, application, got)
}

func TestFromContextMissing(t *testing.T) {
	_, err := app.FromContext(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.ErrConfigMissing))
}

func TestValidate(t *testing.T) {
	application := testApp(t)
	require.NoError(t, application.Validate())

	application.Theme = nil
	err := application.Validate()
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.ErrConfigMissing))
	require.Contains(t, err.Error(), "theme store")
}
