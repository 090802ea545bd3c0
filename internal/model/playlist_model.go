package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string               `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     string               `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string               `gorm:"type:varchar(255);not null" json:"name"`
	Description string               `gorm:"type:text" json:"description"`
	Videos      []PlaylistVideoModel `gorm:"foreignKey:PlaylistID" json:"videos,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	DeletedAt   gorm.DeletedAt       `gorm:"index" json:"-"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PlaylistVideoModel struct {
	ID         string         `gorm:"type:uuid;primary_key" json:"id"`
	PlaylistID string         `gorm:"type:uuid;not null;index:idx_playlist_video,unique" json:"playlist_id"`
	VideoID    string         `gorm:"type:uuid;not null;index:idx_playlist_video,unique" json:"video_id"`
	Position   int            `gorm:"default:0;index" json:"position"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}

func (pv *PlaylistVideoModel) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.New().String()
	}
	return nil
}
