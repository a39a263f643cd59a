package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// AdminOverview loads the aggregate moderation stats.
func (c *Client) AdminOverview(ctx context.Context) (*models.AdminOverview, error) {
	var overview models.AdminOverview
	if err := c.do(ctx, http.MethodGet, "/admin/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// AdminUsers lists users for moderation, optionally filtered by a username
// query.
func (c *Client) AdminUsers(ctx context.Context, query string) (*models.AdminUserList, error) {
	params := url.Values{}
	params.Set("limit", "100")
	if query != "" {
		params.Set("q", query)
	}
	var list models.AdminUserList
	if err := c.do(ctx, http.MethodGet, "/admin/users?"+params.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AdminPosts lists posts for moderation, hidden ones included.
func (c *Client) AdminPosts(ctx context.Context, query string) (*models.AdminPostList, error) {
	params := url.Values{}
	params.Set("limit", "100")
	params.Set("include_hidden", "true")
	if query != "" {
		params.Set("q", query)
	}
	var list models.AdminPostList
	if err := c.do(ctx, http.MethodGet, "/admin/posts?"+params.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AdminReports lists the open report queue.
func (c *Client) AdminReports(ctx context.Context) (*models.AdminReportList, error) {
	var list models.AdminReportList
	if err := c.do(ctx, http.MethodGet, "/admin/reports?limit=100", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ModerateUser applies ban / shadow-ban toggles to a user.
func (c *Client) ModerateUser(ctx context.Context, moderation models.AdminModeration) error {
	return c.do(ctx, http.MethodPost, "/admin/user/moderation", moderation, nil)
}

// AdminDeleteUser removes a user and all related content.
func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	body := map[string]string{"user_id": userID}
	return c.do(ctx, http.MethodDelete, "/admin/user", body, nil)
}

// AdminHidePost toggles a post's hidden flag.
func (c *Client) AdminHidePost(ctx context.Context, postID string, hidden bool) error {
	body := map[string]any{"post_id": postID, "hidden": hidden}
	return c.do(ctx, http.MethodPost, "/admin/post/hide", body, nil)
}

// AdminDeletePost permanently removes a post.
func (c *Client) AdminDeletePost(ctx context.Context, postID string) error {
	body := map[string]string{"post_id": postID}
	return c.do(ctx, http.MethodPost, "/admin/post/delete", body, nil)
}
