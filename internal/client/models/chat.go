package models

// ChatParticipant identifies the other side of a conversation. Nil when the
// account behind it was deleted.
type ChatParticipant struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ChatLastMessage is the preview line shown in the conversation list.
type ChatLastMessage struct {
	ID             string `json:"id"`
	SenderID       string `json:"sender_id"`
	SenderUsername string `json:"sender_username"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
}

// ChatConversation is one row of GET /chat/list.
type ChatConversation struct {
	ConversationID string           `json:"conversation_id"`
	UpdatedAt      string           `json:"updated_at"`
	OtherUser      *ChatParticipant `json:"other_user"`
	LastMessage    *ChatLastMessage `json:"last_message"`
}

// ChatList is the response of GET /chat/list.
type ChatList struct {
	Conversations []ChatConversation `json:"conversations"`
}

// ChatMessage is one message of a conversation. The server returns messages
// newest-first; the client reverses each page so the newest end up last.
type ChatMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
}

// ChatMessagesPage is the response of GET /chat/:id/messages.
type ChatMessagesPage struct {
	Messages   []ChatMessage `json:"messages"`
	NextCursor *string       `json:"nextCursor"`
}
