package api

import (
	"context"

	"github.com/kairenq/payment-transactions/internal/model"
)

// Credentials are the login request fields.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration are the account creation request fields.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the login/register envelope.
type AuthResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        model.User `json:"user"`
}

// Login exchanges credentials for a token and the user identity. The token is
// not persisted here; the session store decides whether to keep it.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and logs it in. Password policy violations come
// back as a *ValidationError with a password field entry.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/register", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the server that the token is being discarded. The call is
// best-effort; local logout proceeds even if it fails.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/auth/logout", nil, nil)
}

// CurrentUser resolves the identity behind the held token.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
