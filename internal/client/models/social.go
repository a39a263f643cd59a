package models

// SearchUser is a user row in search results.
type SearchUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	CreatedAt   string `json:"created_at"`
	IsFollowing bool   `json:"is_following"`
}

// SearchPost is a post row in search results.
type SearchPost struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Channel   string  `json:"channel"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"image_url"`
	VideoURL  *string `json:"video_url"`
	CreatedAt string  `json:"created_at"`
}

// SearchResult is the response of GET /search.
type SearchResult struct {
	Query string       `json:"query"`
	Users []SearchUser `json:"users"`
	Posts []SearchPost `json:"posts"`
}

// Notification is one row of GET /notifications.
type Notification struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	CreatedAt     string  `json:"created_at"`
	ActorID       *string `json:"actor_id"`
	ActorUsername *string `json:"actor_username"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	EntityType    *string `json:"entity_type,omitempty"`
	EntityID      *string `json:"entity_id,omitempty"`
}

// NotificationList is the response of GET /notifications.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
}

// FollowUser is a row of the "following" list.
type FollowUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FollowedAt string `json:"followed_at"`
}

// FollowerUser is a row of the "followers" list.
type FollowerUser struct {
	FollowUser
	IsFollowingBack bool `json:"is_following_back"`
}

// FollowSuggestion is a "who to follow" candidate.
type FollowSuggestion struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	IsFollowing bool   `json:"is_following"`
}

// FollowData is the response of GET /follow.
type FollowData struct {
	Following   []FollowUser       `json:"following"`
	Followers   []FollowerUser     `json:"followers"`
	Suggestions []FollowSuggestion `json:"suggestions"`
}
