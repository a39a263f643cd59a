package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// ChatList loads the caller's conversations, most recently updated first.
func (c *Client) ChatList(ctx context.Context) (*models.ChatList, error) {
	var list models.ChatList
	if err := c.do(ctx, http.MethodGet, "/chat/list", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// StartChat opens (or returns the existing) conversation with a user.
func (c *Client) StartChat(ctx context.Context, userID string) (string, error) {
	body := map[string]string{"user_id": userID}
	var result struct {
		ConversationID string `json:"conversation_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/chat/start", body, &result); err != nil {
		return "", err
	}
	return result.ConversationID, nil
}

// ChatMessages loads one page of a conversation's history. before resumes
// from an older position; pages come newest-first.
func (c *Client) ChatMessages(ctx context.Context, conversationID, before string) (*models.ChatMessagesPage, error) {
	path := "/chat/" + url.PathEscape(conversationID) + "/messages"
	if before != "" {
		path += "?before=" + url.QueryEscape(before)
	}
	var page models.ChatMessagesPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SendChatMessage appends a message to a conversation.
func (c *Client) SendChatMessage(ctx context.Context, conversationID, content string) (*models.ChatMessage, error) {
	body := map[string]string{"content": content}
	var result struct {
		Message models.ChatMessage `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/chat/"+url.PathEscape(conversationID)+"/message", body, &result); err != nil {
		return nil, err
	}
	return &result.Message, nil
}
