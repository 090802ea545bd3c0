package entity

import "time"

// MediaRef points at an object in remote storage. Key is the bucket
// key used for later deletion.
type MediaRef struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

func (m MediaRef) IsZero() bool {
	return m.URL == "" && m.Key == ""
}

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Password      string    `json:"-"`
	Avatar        MediaRef  `json:"avatar"`
	CoverImage    MediaRef  `json:"cover_image"`
	RefreshToken  string    `json:"-"`
	VerifyToken   string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublicUser is the owner projection inlined into aggregated reads.
type PublicUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	FullName string   `json:"full_name"`
	Avatar   MediaRef `json:"avatar"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// ChannelProfile is the aggregated channel page payload.
type ChannelProfile struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Avatar          MediaRef `json:"avatar"`
	CoverImage      MediaRef `json:"cover_image"`
	SubscriberCount int64    `json:"subscriber_count"`
	SubscribedTo    int64    `json:"subscribed_to_count"`
	IsSubscribed    bool     `json:"is_subscribed"`
}
