package api

import (
	"context"
	"net/http"
)

// SignedUploadTicket is a short-lived credential issued by the backend that
// authorizes one direct upload to the asset host. The file bytes never pass
// through the backend.
type SignedUploadTicket struct {
	CloudName string `json:"cloud_name"`
	APIKey    string `json:"api_key"`
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	Signature string `json:"signature"`
}

// SignUpload requests an upload ticket. purpose is "post" or "profile".
func (c *Client) SignUpload(ctx context.Context, purpose string) (*SignedUploadTicket, error) {
	body := map[string]string{"purpose": purpose}
	var ticket SignedUploadTicket
	if err := c.do(ctx, http.MethodPost, "/media/sign-upload", body, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}
