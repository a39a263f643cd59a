package models

// AdminStats is the aggregate counter block of GET /admin/overview.
type AdminStats struct {
	TotalUsers   int `json:"total_users"`
	ActiveUsers  int `json:"active_users"`
	BannedUsers  int `json:"banned_users"`
	OnlineUsers  int `json:"online_users"`
	TotalPosts   int `json:"total_posts"`
	HiddenPosts  int `json:"hidden_posts"`
	TotalReports int `json:"total_reports"`
}

// AdminOverview is the response of GET /admin/overview.
type AdminOverview struct {
	Stats AdminStats `json:"stats"`
}

// AdminUser is the moderation-facing user projection.
type AdminUser struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	RecoveryKeyHash string  `json:"recovery_key_hash"`
	CreatedAt       string  `json:"created_at"`
	TrustScore      int     `json:"trust_score"`
	IsActive        bool    `json:"is_active"`
	IsBanned        bool    `json:"is_banned"`
	IsShadowBanned  bool    `json:"is_shadow_banned"`
	Bio             *string `json:"bio"`
	AvatarURL       *string `json:"avatar_url"`
}

// AdminUserList is the response of GET /admin/users.
type AdminUserList struct {
	Users []AdminUser `json:"users"`
}

// AdminPost is the moderation-facing post projection.
type AdminPost struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Channel     string  `json:"channel"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
	CreatedAt   string  `json:"created_at"`
	ExpiresAt   string  `json:"expires_at"`
	Hidden      bool    `json:"hidden"`
	ReportCount int     `json:"report_count"`
	DeletedAt   *string `json:"deleted_at"`
}

// AdminPostList is the response of GET /admin/posts.
type AdminPostList struct {
	Posts []AdminPost `json:"posts"`
}

// AdminReport is one row of the report queue.
type AdminReport struct {
	ID          string  `json:"id"`
	ContentType string  `json:"content_type"`
	ContentID   string  `json:"content_id"`
	ReporterID  *string `json:"reporter_id"`
	CreatedAt   string  `json:"created_at"`
}

// AdminReportList is the response of GET /admin/reports.
type AdminReportList struct {
	Reports []AdminReport `json:"reports"`
}

// AdminModeration is the body of POST /admin/user/moderation. Pointer fields
// are sent only when the action changes them.
type AdminModeration struct {
	UserID         string `json:"user_id"`
	IsBanned       *bool  `json:"is_banned,omitempty"`
	IsShadowBanned *bool  `json:"is_shadow_banned,omitempty"`
}
