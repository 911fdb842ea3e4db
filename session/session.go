// Package session owns the authentication session lifecycle: the state
// machine driven by login/logout, and persistence/restoration of the
// session snapshot.
package session

import (
	"time"

	"github.com/crimsonknight90/inventario-admin/auth"
)

// State identifies where the store is in the authentication lifecycle.
type State string

const (
	StateIdle           State = "idle"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateFailed         State = "failed"
)

// Snapshot is the persisted session record: written after every successful
// login, deleted on logout, read once at startup by restoration. SavedAt is
// recorded but no expiry is derived from it.
type Snapshot struct {
	Token   *auth.Token `json:"token"`
	User    *auth.User  `json:"user"`
	SavedAt time.Time   `json:"saved_at"`
}
