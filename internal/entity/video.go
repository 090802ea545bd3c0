package entity

import "time"

type Video struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   MediaRef  `json:"video_file"`
	Thumbnail   MediaRef  `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoWithOwner inlines the owner's public fields for list and
// aggregation reads.
type VideoWithOwner struct {
	Video
	Owner PublicUser `json:"owner"`
}

// WatchEntry is one row of a user's watch history, newest first.
type WatchEntry struct {
	Video     VideoWithOwner `json:"video"`
	WatchedAt time.Time      `json:"watched_at"`
}
