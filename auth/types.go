package auth

// Token is the access credential issued by the authentication endpoint.
// Tokens are immutable once issued: login and refresh replace them
// wholesale, logout clears them.
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in,omitempty"` // seconds
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// User is the authenticated user's profile as returned by /auth/me.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name,omitempty"`
	Roles    []string `json:"roles"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(required ...string) bool {
	if u == nil {
		return false
	}
	for _, want := range required {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Credentials are the raw login inputs. The login endpoint expects the email
// in a form field named "username".
type Credentials struct {
	Email    string
	Password string
}
