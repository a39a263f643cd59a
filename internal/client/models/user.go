package models

// CurrentUser is the identity projection returned by the /me endpoint.
type CurrentUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// RegisterResult is the response of POST /register. The recovery key, when
// present, is issued exactly once and is never persisted by the client.
type RegisterResult struct {
	Success      bool   `json:"success"`
	SessionToken string `json:"session_token,omitempty"`
	RecoveryKey  string `json:"recovery_key,omitempty"`
}

// LoginResult is the response of POST /login.
type LoginResult struct {
	Success      bool   `json:"success"`
	SessionToken string `json:"session_token,omitempty"`
}

// UsernameSuggestion is the response of GET /username/suggest.
type UsernameSuggestion struct {
	Username string `json:"username"`
}
