package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// Profile loads a profile page. An empty userID resolves to the caller's
// own profile.
func (c *Client) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	path := "/profile"
	if userID != "" {
		path += "?user_id=" + url.QueryEscape(userID)
	}
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches the caller's profile and returns the updated user
// record.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.ProfileUser, error) {
	var result struct {
		User models.ProfileUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/profile", update, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// DeactivateAccount disables the caller's account.
func (c *Client) DeactivateAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/account/deactivate", nil, nil)
}

// DeleteAccount permanently removes the caller's account.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/account", nil, nil)
}

// RotateRecoveryKey invalidates the old recovery key and returns the new
// one. The key exists only in this response.
func (c *Client) RotateRecoveryKey(ctx context.Context) (string, error) {
	var rotation models.RecoveryRotation
	if err := c.do(ctx, http.MethodPost, "/account/recovery/rotate", nil, &rotation); err != nil {
		return "", err
	}
	return rotation.RecoveryKey, nil
}
