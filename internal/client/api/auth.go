package api

import (
	"context"
	"net/http"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// Me resolves the current identity from the session cookie or bearer token.
func (c *Client) Me(ctx context.Context) (*models.CurrentUser, error) {
	var user models.CurrentUser
	if err := c.do(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. The result may carry a session token and
// a one-time recovery key.
func (c *Client) Register(ctx context.Context, username, password string) (*models.RegisterResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result models.RegisterResult
	if err := c.do(ctx, http.MethodPost, "/register", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login authenticates with a password.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LoginWithRecoveryKey authenticates with the one-time recovery key variant.
func (c *Client) LoginWithRecoveryKey(ctx context.Context, username, recoveryKey string) (*models.LoginResult, error) {
	body := map[string]string{"username": username, "recovery_key": recoveryKey}
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

// SuggestUsername asks the backend for a random free username.
func (c *Client) SuggestUsername(ctx context.Context) (string, error) {
	var suggestion models.UsernameSuggestion
	if err := c.do(ctx, http.MethodGet, "/username/suggest", nil, &suggestion); err != nil {
		return "", err
	}
	return suggestion.Username, nil
}
