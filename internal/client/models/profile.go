package models

// ProfileUser is the detailed user record of GET /profile.
type ProfileUser struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	CreatedAt  string  `json:"created_at"`
	TrustScore int     `json:"trust_score"`
	Bio        *string `json:"bio"`
	AvatarURL  *string `json:"avatar_url"`
}

// ProfileStats carries follow counters plus the viewer's relation to the
// profile owner.
type ProfileStats struct {
	Followers   int  `json:"followers"`
	Following   int  `json:"following"`
	Posts       int  `json:"posts"`
	IsFollowing bool `json:"is_following"`
	IsSelf      bool `json:"is_self"`
}

// ProfilePost is a post as shown on a profile page.
type ProfilePost struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Channel       string  `json:"channel"`
	Content       string  `json:"content"`
	ImageURL      *string `json:"image_url"`
	VideoURL      *string `json:"video_url"`
	ImageBlurhash *string `json:"image_blurhash"`
	CreatedAt     string  `json:"created_at"`
	ExpiresAt     string  `json:"expires_at"`
	ReportCount   int     `json:"report_count,omitempty"`
}

// Profile is the response of GET /profile.
type Profile struct {
	User       ProfileUser   `json:"user"`
	Stats      ProfileStats  `json:"stats"`
	Posts      []ProfilePost `json:"posts"`
	SavedPosts []ProfilePost `json:"saved_posts"`
}

// ProfileUpdate is the body of PATCH /profile. Pointer fields are omitted
// when nil so an avatar-only update does not blank the bio.
type ProfileUpdate struct {
	Username  *string `json:"username,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// RecoveryRotation is the response of POST /account/recovery/rotate. The key
// is shown once and never written anywhere.
type RecoveryRotation struct {
	RecoveryKey string `json:"recovery_key"`
}
