package usecase

import (
	"errors"
	"fmt"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"

	"gorm.io/gorm"
)

type SubscriptionUseCase interface {
	Toggle(subscriberID, channelID string) (bool, error)
	ListSubscribers(channelID string, opts persistent.ListOptions) ([]entity.PublicUser, error)
	ListSubscribedChannels(subscriberID string, opts persistent.ListOptions) ([]entity.PublicUser, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
}

func NewSubscriptionUseCase(subscriptionRepo persistent.SubscriptionRepository, userRepo persistent.UserRepository) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// Toggle flips the edge: absent creates it, present removes it. The
// returned bool reports the resulting state.
func (uc *subscriptionUseCase) Toggle(subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, fmt.Errorf("%w: cannot subscribe to yourself", ErrInvalidInput)
	}

	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return false, asStorageError(err)
	}

	_, err := uc.subscriptionRepo.Get(subscriberID, channelID)
	if err == nil {
		if err := uc.subscriptionRepo.Delete(subscriberID, channelID); err != nil {
			return false, fmt.Errorf("failed to unsubscribe: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Create(subscriberID, channelID); err != nil {
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}
	return true, nil
}

func (uc *subscriptionUseCase) ListSubscribers(channelID string, opts persistent.ListOptions) ([]entity.PublicUser, error) {
	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return nil, asStorageError(err)
	}
	return uc.subscriptionRepo.ListSubscribers(channelID, opts)
}

func (uc *subscriptionUseCase) ListSubscribedChannels(subscriberID string, opts persistent.ListOptions) ([]entity.PublicUser, error) {
	if _, err := uc.userRepo.GetByID(subscriberID); err != nil {
		return nil, asStorageError(err)
	}
	return uc.subscriptionRepo.ListSubscribedChannels(subscriberID, opts)
}
