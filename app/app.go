// Package app is the capability container: the session store, theme store,
// notifier and API client constructed once at startup and handed to
// consumers through explicit passing or context provision.
package app

import (
	"github.com/crimsonknight90/inventario-admin/httpapi"
	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
	"github.com/crimsonknight90/inventario-admin/notify"
	"github.com/crimsonknight90/inventario-admin/session"
	"github.com/crimsonknight90/inventario-admin/theme"
)

// App holds the capabilities the rest of the front-end consumes. No global
// mutable state: construct at startup, pass down.
type App struct {
	Sessions *session.Store
	Theme    *theme.Store
	Notifier *notify.Notifier
	API      *httpapi.Client
}

// Validate reports the first missing required capability. A missing
// capability is a recoverable configuration error, surfaced to the user as
// a banner rather than a crash.
func (a *App) Validate() error {
	switch {
	case a.Sessions == nil:
		return apperrors.Wrapf(apperrors.ErrConfigMissing, "session store")
	case a.Theme == nil:
		return apperrors.Wrapf(apperrors.ErrConfigMissing, "theme store")
	case a.Notifier == nil:
		return apperrors.Wrapf(apperrors.ErrConfigMissing, "notifier")
	case a.API == nil:
		return apperrors.Wrapf(apperrors.ErrConfigMissing, "api client")
	}
	return nil
}
