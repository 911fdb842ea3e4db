package app

import (
	"context"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
)

type appContextKey string

const appKey appContextKey = "admin_app"

// WithApp attaches the capability container to the context.
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// FromContext retrieves the capability container. Absence returns
// internal/errors.ErrConfigMissing; consumers render that as an error
// banner instead of panicking.
func FromContext(ctx context.Context) (*App, error) {
	a, ok := ctx.Value(appKey).(*App)
	if !ok || a == nil {
		return nil, apperrors.Wrapf(apperrors.ErrConfigMissing, "capability container not provided")
	}
	return a, nil
}
