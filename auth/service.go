// Package auth implements the credential transport for the admin front-end:
// login, refresh, profile lookup and best-effort server-side logout against
// the authentication endpoints of the inventory backend.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
)

const defaultTimeout = 10 * time.Second

// Service talks to the remote authentication endpoints. It keeps no state
// between calls; construct one per base URL.
type Service struct {
	baseURL string
	http    *http.Client
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithHTTPClient replaces the underlying HTTP client (primarily for testing).
func WithHTTPClient(client *http.Client) ServiceOption {
	return func(s *Service) {
		s.http = client
	}
}

// WithTimeout sets the fixed per-call timeout. A timeout surfaces as a
// network failure to callers.
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		s.http.Timeout = timeout
	}
}

// NewService creates a credential transport for the given base URL.
func NewService(baseURL string, options ...ServiceOption) *Service {
	s := &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

func (tr tokenResponse) token() *Token {
	return &Token{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		ExpiresIn:    tr.ExpiresIn,
		RefreshToken: tr.RefreshToken,
		Scope:        tr.Scope,
	}
}

// Login submits the credentials form-urlencoded (field names "username" and
// "password", as the backend expects) and, on success, fetches the user
// profile with the freshly issued access credential. Token and user are
// returned together so the session store can commit them atomically.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Token, *User, error) {
	form := url.Values{}
	form.Set("username", creds.Email)
	form.Set("password", creds.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, apperrors.Wrapf(err, "[Login] building request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body tokenResponse
	if err := s.do(req, &body); err != nil {
		return nil, nil, err
	}
	token := body.token()

	user, err := s.Me(ctx, token.AccessToken)
	if err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

// Refresh exchanges a refresh credential for a wholesale new token. No
// fields are merged from the old token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, apperrors.Wrapf(err, "[Refresh] encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrapf(err, "[Refresh] building request")
	}
	req.Header.Set("Content-Type", "application/json")

	var body tokenResponse
	if err := s.do(req, &body); err != nil {
		return nil, err
	}
	return body.token(), nil
}

// Me fetches the profile for the given bearer credential.
func (s *Service) Me(ctx context.Context, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[Me] building request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var user User
	if err := s.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout asks the server to invalidate the credential. Callers treat the
// result as best-effort; local logout proceeds regardless.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/logout", nil)
	if err != nil {
		return apperrors.Wrapf(err, "[Logout] building request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return s.do(req, nil)
}

// do executes the request and maps the outcome onto the shared error
// taxonomy: 401/403 unauthorized, other 4xx validation, everything
// transport-shaped (including 5xx and timeouts) a network failure. The
// message prefers the server's "detail" field when present.
func (s *Service) do(req *http.Request, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := s.http.Do(req)
	if err != nil {
		log.Warn().Str("request_id", requestID).Str("path", req.URL.Path).Err(err).Msg("auth request failed")
		return apperrors.Wrapf(apperrors.ErrNetwork, "%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("request_id", requestID).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("auth request completed")

	if resp.StatusCode >= 400 {
		detail := errorDetail(resp)
		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return apperrors.Wrapf(apperrors.ErrUnauthorized, "%s", detail)
		case resp.StatusCode < 500:
			return apperrors.Wrapf(apperrors.ErrValidation, "%s", detail)
		default:
			return apperrors.Wrapf(apperrors.ErrNetwork, "%s", detail)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(apperrors.ErrNetwork, "decoding %s response", req.URL.Path)
	}
	return nil
}

// errorDetail extracts the backend's human-readable error detail. The
// backend reports errors as {"detail": "..."}; anything else falls back to
// the HTTP status text.
func errorDetail(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if json.Unmarshal(payload.Detail, &detail) == nil && detail != "" {
			return detail
		}
		// Validation errors arrive as structured detail; pass them through.
		return string(payload.Detail)
	}
	return http.StatusText(resp.StatusCode)
}
