package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// Advice loads one page of the advice board in the given mode.
func (c *Client) Advice(ctx context.Context, mode, cursor string) (*models.AdvicePage, error) {
	params := url.Values{}
	params.Set("mode", mode)
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	var page models.AdvicePage
	if err := c.do(ctx, http.MethodGet, "/advice?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AskAdvice posts an anonymous advice request.
func (c *Client) AskAdvice(ctx context.Context, content string) (*models.AdvicePost, error) {
	body := map[string]string{"content": content}
	var result struct {
		Advice models.AdvicePost `json:"advice"`
	}
	if err := c.do(ctx, http.MethodPost, "/advice", body, &result); err != nil {
		return nil, err
	}
	return &result.Advice, nil
}

// AdviceReplies loads the full reply list of one advice request.
func (c *Client) AdviceReplies(ctx context.Context, adviceID string) (*models.AdviceReplyList, error) {
	var list models.AdviceReplyList
	if err := c.do(ctx, http.MethodGet, "/advice/"+url.PathEscape(adviceID)+"/replies", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ReplyAdvice answers an advice request.
func (c *Client) ReplyAdvice(ctx context.Context, adviceID, content string) error {
	body := map[string]string{"content": content}
	return c.do(ctx, http.MethodPost, "/advice/"+url.PathEscape(adviceID)+"/replies", body, nil)
}
