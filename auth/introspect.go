package auth

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TokenInfo carries claims read from an access token without signature
// verification. It exists for observability only (logging, status display);
// authorisation decisions always go through the server.
type TokenInfo struct {
	Subject   string
	Email     string
	Roles     []string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// IntrospectUnverified parses the token's claims without verifying the
// signature. The client holds no signing keys; verification is the server's
// job.
func IntrospectUnverified(rawToken string) (*TokenInfo, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, errors.New("[IntrospectUnverified] empty token")
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("[IntrospectUnverified] error extracting claims")
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}
	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if role, ok := r.(string); ok {
				info.Roles = append(info.Roles, role)
			}
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		t := iat.Time
		info.IssuedAt = &t
	}
	return info, nil
}
