package persistent

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Get(subscriberID, channelID string) (*entity.Subscription, error)
	Create(subscriberID, channelID string) error
	Delete(subscriberID, channelID string) error
	CountSubscribers(channelID string) (int64, error)
	ListSubscribers(channelID string, opts ListOptions) ([]entity.PublicUser, error)
	ListSubscribedChannels(subscriberID string, opts ListOptions) ([]entity.PublicUser, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Get(subscriberID, channelID string) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&subscriptionModel).Error
	if err != nil {
		return nil, err
	}
	return ToSubscriptionEntity(&subscriptionModel), nil
}

func (r *subscriptionRepository) Create(subscriberID, channelID string) error {
	var existing model.SubscriptionModel
	err := r.db.Unscoped().Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&existing).Error
	if err == nil {
		if existing.DeletedAt.Valid {
			return r.db.Unscoped().Model(&existing).Update("deleted_at", nil).Error
		}
		return nil
	}

	subscriptionModel := &model.SubscriptionModel{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	return r.db.Create(subscriptionModel).Error
}

func (r *subscriptionRepository) Delete(subscriberID, channelID string) error {
	return r.db.Unscoped().
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{}).Error
}

func (r *subscriptionRepository) CountSubscribers(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) ListSubscribers(channelID string, opts ListOptions) ([]entity.PublicUser, error) {
	return r.listEdgeUsers("subscriptions.channel_id = ?", channelID, "subscriptions.subscriber_id", opts)
}

func (r *subscriptionRepository) ListSubscribedChannels(subscriberID string, opts ListOptions) ([]entity.PublicUser, error) {
	return r.listEdgeUsers("subscriptions.subscriber_id = ?", subscriberID, "subscriptions.channel_id", opts)
}

func (r *subscriptionRepository) listEdgeUsers(where, value, joinColumn string, opts ListOptions) ([]entity.PublicUser, error) {
	var userModels []model.UserModel
	query := r.db.Model(&model.UserModel{}).
		Joins("INNER JOIN subscriptions ON users.id = "+joinColumn).
		Where(where, value).
		Where("subscriptions.deleted_at IS NULL").
		Order("subscriptions.created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]entity.PublicUser, 0, len(userModels))
	for i := range userModels {
		users = append(users, toPublicUser(&userModels[i]))
	}
	return users, nil
}
