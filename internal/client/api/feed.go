package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// Feed loads one page of the home feed. cursor resumes a previous page;
// followingOnly limits the feed to followed authors.
func (c *Client) Feed(ctx context.Context, cursor string, followingOnly bool) (*models.FeedPage, error) {
	params := url.Values{}
	if followingOnly {
		params.Set("following_only", "true")
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	path := "/feed"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page models.FeedPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Post fetches a single post, used for deep links.
func (c *Client) Post(ctx context.Context, postID string) (*models.FeedPost, error) {
	var result struct {
		Post models.FeedPost `json:"post"`
	}
	if err := c.do(ctx, http.MethodGet, "/post/"+url.PathEscape(postID), nil, &result); err != nil {
		return nil, err
	}
	return &result.Post, nil
}

// CreatePost publishes a new post and returns its id.
func (c *Client) CreatePost(ctx context.Context, draft models.PostDraft) (string, error) {
	var result struct {
		Post struct {
			ID string `json:"id"`
		} `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/post", draft, &result); err != nil {
		return "", err
	}
	return result.Post.ID, nil
}

// DeletePost removes one of the caller's own posts.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	body := map[string]string{"post_id": postID}
	return c.do(ctx, http.MethodDelete, "/post", body, nil)
}

// engagementResult is the authoritative snapshot every engagement mutation
// returns. The caller replaces the post's engagement with it wholesale.
type engagementResult struct {
	Engagement *models.Engagement `json:"engagement"`
}

// SetReaction records a reaction on a post. emoji is only sent for the emoji
// reaction kind.
func (c *Client) SetReaction(ctx context.Context, postID, reaction, emoji string) (*models.Engagement, error) {
	body := map[string]string{"reaction": reaction}
	if emoji != "" {
		body["emoji"] = emoji
	}
	var result engagementResult
	if err := c.do(ctx, http.MethodPost, "/post/"+url.PathEscape(postID)+"/reaction", body, &result); err != nil {
		return nil, err
	}
	return result.Engagement, nil
}

// RemoveReaction clears the caller's reaction on a post.
func (c *Client) RemoveReaction(ctx context.Context, postID string) (*models.Engagement, error) {
	var result engagementResult
	if err := c.do(ctx, http.MethodDelete, "/post/"+url.PathEscape(postID)+"/reaction", nil, &result); err != nil {
		return nil, err
	}
	return result.Engagement, nil
}

// SavePost bookmarks a post for the caller.
func (c *Client) SavePost(ctx context.Context, postID string) (*models.Engagement, error) {
	var result engagementResult
	if err := c.do(ctx, http.MethodPost, "/post/"+url.PathEscape(postID)+"/save", nil, &result); err != nil {
		return nil, err
	}
	return result.Engagement, nil
}

// UnsavePost removes a bookmark.
func (c *Client) UnsavePost(ctx context.Context, postID string) (*models.Engagement, error) {
	var result engagementResult
	if err := c.do(ctx, http.MethodDelete, "/post/"+url.PathEscape(postID)+"/save", nil, &result); err != nil {
		return nil, err
	}
	return result.Engagement, nil
}

// Comments loads one page of a post's comments.
func (c *Client) Comments(ctx context.Context, postID, cursor string) (*models.CommentsPage, error) {
	path := "/post/" + url.PathEscape(postID) + "/comments"
	if cursor != "" {
		path += "?cursor=" + url.QueryEscape(cursor)
	}
	var page models.CommentsPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AddComment posts a comment and returns the refreshed engagement snapshot
// so the comment counter stays server-authoritative.
func (c *Client) AddComment(ctx context.Context, postID, content string) (*models.Engagement, error) {
	body := map[string]string{"content": content}
	var result engagementResult
	if err := c.do(ctx, http.MethodPost, "/post/"+url.PathEscape(postID)+"/comments", body, &result); err != nil {
		return nil, err
	}
	return result.Engagement, nil
}

// Report flags a piece of content for moderation.
func (c *Client) Report(ctx context.Context, contentType, contentID string) error {
	body := map[string]string{"content_type": contentType, "content_id": contentID}
	return c.do(ctx, http.MethodPost, "/report", body, nil)
}
