package usecase

import (
	"fmt"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
)

type TweetUseCase interface {
	Create(ownerID, content string) (*entity.Tweet, error)
	ListByUser(userID string, opts persistent.ListOptions) ([]entity.TweetWithOwner, error)
	Update(tweetID, callerID, content string) (*entity.Tweet, error)
	Delete(tweetID, callerID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository) TweetUseCase {
	return &tweetUseCase{tweetRepo: tweetRepo}
}

func (uc *tweetUseCase) Create(ownerID, content string) (*entity.Tweet, error) {
	tweet := &entity.Tweet{
		OwnerID: ownerID,
		Content: content,
	}
	if err := uc.tweetRepo.Create(tweet); err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListByUser(userID string, opts persistent.ListOptions) ([]entity.TweetWithOwner, error) {
	tweets, err := uc.tweetRepo.ListByOwner(userID, opts)
	if err != nil {
		return nil, asStorageError(err)
	}
	return tweets, nil
}

func (uc *tweetUseCase) Update(tweetID, callerID, content string) (*entity.Tweet, error) {
	tweet, err := loadOwned(uc.tweetRepo.GetByID, func(t *entity.Tweet) string { return t.OwnerID }, tweetID, callerID)
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := uc.tweetRepo.Update(tweet); err != nil {
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) Delete(tweetID, callerID string) error {
	if _, err := loadOwned(uc.tweetRepo.GetByID, func(t *entity.Tweet) string { return t.OwnerID }, tweetID, callerID); err != nil {
		return err
	}
	return uc.tweetRepo.Delete(tweetID)
}
