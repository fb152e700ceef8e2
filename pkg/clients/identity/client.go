package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vighnaharta/engineers-backend/internal/config"
)

// Stable errors mapped from the identity provider's error codes. Handlers
// translate these into user-facing messages without leaking provider detail.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrTooManyAttempts = errors.New("too many failed attempts, try again later")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// Client exposes the identity provider operations gating the admin panel.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

// Session is the result of a successful email+password sign-in.
type Session struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	Email        string `json:"email"`
	LocalID      string `json:"localId"`
}

// APIClient is a resty-backed implementation of Client against the Firebase Auth REST API.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds an identity client using the provided configuration values.
func NewClient(cfg config.IdentityConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		apiKey:     cfg.APIKey,
	}
}

// apiError represents the identity provider's error payload.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges email and password for a session.
func (c *APIClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	session := new(Session)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(payload).
		SetResult(session).
		SetError(apiErr).
		Post("/v1/accounts:signInWithPassword")
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, mapProviderError(apiErr.Error.Message)
	}

	return session, nil
}

type lookupResponse struct {
	Users []struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	} `json:"users"`
}

// VerifyToken checks an ID token and returns the account email it belongs to.
func (c *APIClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	result := new(lookupResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(map[string]any{"idToken": idToken}).
		SetResult(result).
		SetError(apiErr).
		Post("/v1/accounts:lookup")
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest || len(result.Users) == 0 {
		return "", ErrInvalidToken
	}

	return result.Users[0].Email, nil
}

// mapProviderError translates provider error codes into stable errors.
// Codes sometimes arrive with a trailing explanation, e.g.
// "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account ...".
func mapProviderError(message string) error {
	code := message
	if idx := strings.IndexAny(message, " :"); idx >= 0 {
		code = message[:idx]
	}

	switch code {
	case "EMAIL_NOT_FOUND":
		return ErrUserNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return ErrWrongPassword
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return ErrInvalidEmail
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return ErrTooManyAttempts
	default:
		return fmt.Errorf("identity provider error: %s", message)
	}
}
