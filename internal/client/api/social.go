package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// Search runs a combined user/post search. An empty query returns the
// backend's default result set.
func (c *Client) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	var result models.SearchResult
	if err := c.do(ctx, http.MethodGet, "/search?q="+url.QueryEscape(query), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Notifications loads the caller's notification list.
func (c *Client) Notifications(ctx context.Context) (*models.NotificationList, error) {
	var list models.NotificationList
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FollowData loads suggestions, following and followers in one call.
func (c *Client) FollowData(ctx context.Context) (*models.FollowData, error) {
	var data models.FollowData
	if err := c.do(ctx, http.MethodGet, "/follow", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Follow starts following a user.
func (c *Client) Follow(ctx context.Context, userID string) error {
	body := map[string]string{"user_id": userID}
	return c.do(ctx, http.MethodPost, "/follow", body, nil)
}

// Unfollow stops following a user.
func (c *Client) Unfollow(ctx context.Context, userID string) error {
	body := map[string]string{"user_id": userID}
	return c.do(ctx, http.MethodDelete, "/follow", body, nil)
}
