// Package guard decides whether the current session may enter a route.
// It is a pure decision layer; actual navigation belongs to the surface
// that consumes it.
package guard

import (
	"github.com/rs/zerolog/log"

	"github.com/crimsonknight90/inventario-admin/auth"
)

// LoginRoute is where denied navigations are redirected.
const LoginRoute = "/login"

// Session is the minimal view of the session store the guard needs.
type Session interface {
	Token() *auth.Token
	User() *auth.User
}

// Decision is the outcome of a guard check. When not allowed, RedirectTo
// names the login route and From preserves the originally requested
// location so a successful login can return the user there.
type Decision struct {
	Allowed    bool
	RedirectTo string
	From       string
}

// CanEnter allows navigation when a token is present and, if requiredRoles
// is non-empty, the user holds at least one of them. An empty requiredRoles
// performs no role check at all.
func CanEnter(sess Session, requiredRoles []string, from string) Decision {
	if sess == nil || sess.Token() == nil || sess.Token().AccessToken == "" {
		return redirectToLogin(from)
	}

	if len(requiredRoles) > 0 {
		user := sess.User()
		if !user.HasAnyRole(requiredRoles...) {
			log.Warn().
				Strs("required_roles", requiredRoles).
				Str("from", from).
				Msg("navigation denied: missing role")
			return redirectToLogin(from)
		}
	}

	return Decision{Allowed: true}
}

func redirectToLogin(from string) Decision {
	return Decision{RedirectTo: LoginRoute, From: from}
}
