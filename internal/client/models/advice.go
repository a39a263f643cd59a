package models

// Advice board modes.
const (
	AdviceModeNeed = "need"
	AdviceModeGive = "give"
)

// AdviceRecentReply is the trimmed reply preview embedded in an AdvicePost.
type AdviceRecentReply struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// AdvicePost is an anonymous advice request.
type AdvicePost struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Content       string              `json:"content"`
	CreatedAt     string              `json:"created_at"`
	Hidden        bool                `json:"hidden"`
	ReportCount   int                 `json:"report_count"`
	IsAnonymous   bool                `json:"is_anonymous"`
	ReplyCount    int                 `json:"reply_count"`
	RecentReplies []AdviceRecentReply `json:"recent_replies"`
}

// AdvicePage is the response of GET /advice.
type AdvicePage struct {
	Mode       string       `json:"mode"`
	Advice     []AdvicePost `json:"advice"`
	NextCursor *string      `json:"nextCursor"`
}

// AdviceReply is one full reply of GET /advice/:id/replies.
type AdviceReply struct {
	ID        string `json:"id"`
	AdviceID  string `json:"advice_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// AdviceReplyList is the response of GET /advice/:id/replies.
type AdviceReplyList struct {
	Replies []AdviceReply `json:"replies"`
}
