package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	Username      string         `gorm:"uniqueIndex;not null" json:"username"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	FullName      string         `gorm:"type:varchar(100);not null" json:"full_name"`
	Password      string         `gorm:"not null" json:"-"`
	AvatarURL     string         `gorm:"type:varchar(500);not null" json:"avatar_url"`
	AvatarKey     string         `gorm:"type:varchar(500);not null" json:"-"`
	CoverURL      string         `gorm:"type:varchar(500)" json:"cover_url"`
	CoverKey      string         `gorm:"type:varchar(500)" json:"-"`
	RefreshToken  string         `gorm:"type:text" json:"-"`
	VerifyToken   string         `gorm:"type:text" json:"-"`
	EmailVerified bool           `gorm:"default:false" json:"email_verified"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type WatchHistoryModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;index:idx_watch_user_video,unique" json:"user_id"`
	VideoID   string         `gorm:"type:uuid;not null;index:idx_watch_user_video,unique" json:"video_id"`
	WatchedAt time.Time      `gorm:"index" json:"watched_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WatchHistoryModel) TableName() string {
	return "watch_history"
}

func (w *WatchHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
