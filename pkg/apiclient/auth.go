package apiclient

import (
	"context"
	"net/http"

	"github.com/familydom/domkit/pkg/marketplace"
)

// TokenResponse is the server's answer to a successful login or
// registration: a fresh bearer credential plus the account it belongs to.
type TokenResponse struct {
	AccessToken string                  `json:"access_token"`
	TokenType   string                  `json:"token_type"`
	User        marketplace.UserProfile `json:"user"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the full registration payload.
type RegisterRequest struct {
	Email    string               `json:"email"`
	Password string               `json:"password"`
	FullName string               `json:"full_name"`
	Phone    string               `json:"phone"`
	UserType marketplace.UserType `json:"user_type"`
	City     string               `json:"city"`
	Address  string               `json:"address"`
}

// Login exchanges credentials for a bearer token. Does not touch the client's
// configured credential; session establishment is the caller's decision.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var token TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates an account and returns its first bearer token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	var token TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Health checks the API root endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.Do(ctx, http.MethodGet, "/", nil, nil)
}
