package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID           string         `gorm:"type:uuid;primary_key" json:"id"`
	SubscriberID string         `gorm:"type:uuid;not null;index:idx_sub_channel,unique" json:"subscriber_id"`
	ChannelID    string         `gorm:"type:uuid;not null;index:idx_sub_channel,unique" json:"channel_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
