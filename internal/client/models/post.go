package models

// Reaction values accepted by the reaction endpoints.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
	ReactionEmoji   = "emoji"
)

// Engagement holds the aggregate counters for one post together with the
// viewer's own reaction/save state. The server is the only source of these
// numbers; the client replaces the whole snapshot and never does count math.
type Engagement struct {
	LikeCount    int            `json:"likeCount"`
	DislikeCount int            `json:"dislikeCount"`
	CommentCount int            `json:"commentCount"`
	SaveCount    int            `json:"saveCount"`
	MyReaction   *string        `json:"myReaction"`
	MyEmoji      *string        `json:"myEmoji"`
	IsSaved      bool           `json:"isSaved"`
	EmojiCounts  map[string]int `json:"emojiCounts"`
}

// FeedPost is one item of the home feed.
type FeedPost struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Username      string      `json:"username"`
	Channel       string      `json:"channel"`
	Content       string      `json:"content"`
	ImageURL      *string     `json:"image_url"`
	VideoURL      *string     `json:"video_url"`
	ImageBlurhash *string     `json:"image_blurhash"`
	CreatedAt     string      `json:"created_at"`
	ExpiresAt     string      `json:"expires_at"`
	Engagement    *Engagement `json:"engagement"`
}

// FeedPage is the response of GET /feed.
type FeedPage struct {
	Posts      []FeedPost `json:"posts"`
	NextCursor *string    `json:"nextCursor"`
}

// PostDraft is the body of POST /post. Optional media fields are omitted
// when empty so the backend does not see blank URLs.
type PostDraft struct {
	Channel        string `json:"channel"`
	Content        string `json:"content"`
	ImageURL       string `json:"image_url,omitempty"`
	VideoURL       string `json:"video_url,omitempty"`
	ImageBlurhash  string `json:"image_blurhash,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// PostComment is one comment under a post.
type PostComment struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CommentsPage is the response of GET /post/:id/comments.
type CommentsPage struct {
	Comments   []PostComment `json:"comments"`
	NextCursor *string       `json:"nextCursor"`
}
