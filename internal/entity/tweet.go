package entity

import "time"

type Tweet struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TweetWithOwner struct {
	Tweet
	Owner PublicUser `json:"owner"`
}
