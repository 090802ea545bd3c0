package entity

import "time"

// LikeTargetKind tags what a like edge points at. Exactly one target
// per edge, enforced by the tagged pair rather than optional fields.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

func (k LikeTargetKind) Valid() bool {
	switch k {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

type Like struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	TargetKind LikeTargetKind `json:"target_kind"`
	TargetID   string         `json:"target_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
