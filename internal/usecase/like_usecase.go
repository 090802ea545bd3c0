package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type LikeUseCase interface {
	Toggle(userID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	Count(kind entity.LikeTargetKind, targetID string) (int64, error)
	LikedVideos(userID string, opts persistent.ListOptions) ([]entity.VideoWithOwner, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	redisClient *redis.Client,
	log *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		redisClient: redisClient,
		logger:      log,
	}
}

func (uc *likeUseCase) Toggle(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("%w: unknown like target kind", ErrInvalidInput)
	}

	if err := uc.targetExists(kind, targetID); err != nil {
		return false, err
	}

	liked, err := uc.likeRepo.IsLiked(userID, kind, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to check like status: %w", err)
	}

	ctx := context.Background()
	cacheKey := likeCountKey(kind, targetID)

	if liked {
		if err := uc.likeRepo.Delete(userID, kind, targetID); err != nil {
			return false, fmt.Errorf("failed to remove like: %w", err)
		}
		uc.adjustCountCache(ctx, cacheKey, kind, targetID, -1)
		return false, nil
	}

	if err := uc.likeRepo.Create(userID, kind, targetID); err != nil {
		return false, fmt.Errorf("failed to create like: %w", err)
	}
	uc.adjustCountCache(ctx, cacheKey, kind, targetID, 1)
	return true, nil
}

// adjustCountCache keeps the cached like counter in step with the database.
// A cold key is seeded from the stored count rather than incremented from
// zero, otherwise the first toggle after an eviction would report 1 for a
// target with N likes.
func (uc *likeUseCase) adjustCountCache(ctx context.Context, cacheKey string, kind entity.LikeTargetKind, targetID string, delta int64) {
	if uc.redisClient == nil {
		return
	}

	exists, err := uc.redisClient.Exists(ctx, cacheKey).Result()
	if err != nil {
		uc.logger.Warn("Failed to check like count cache: %v", err)
		return
	}

	if exists == 0 {
		count, err := uc.likeRepo.Count(kind, targetID)
		if err != nil {
			uc.logger.Warn("Failed to seed like count cache: %v", err)
			return
		}
		uc.redisClient.Set(ctx, cacheKey, count, 0)
		return
	}

	uc.redisClient.IncrBy(ctx, cacheKey, delta)
}

func (uc *likeUseCase) targetExists(kind entity.LikeTargetKind, targetID string) error {
	var err error
	switch kind {
	case entity.LikeTargetVideo:
		_, err = uc.videoRepo.GetByID(targetID)
	case entity.LikeTargetComment:
		_, err = uc.commentRepo.GetByID(targetID)
	case entity.LikeTargetTweet:
		_, err = uc.tweetRepo.GetByID(targetID)
	}
	if err != nil {
		return asStorageError(err)
	}
	return nil
}

func (uc *likeUseCase) Count(kind entity.LikeTargetKind, targetID string) (int64, error) {
	ctx := context.Background()
	cacheKey := likeCountKey(kind, targetID)

	if uc.redisClient != nil {
		if countStr, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			count, _ := strconv.ParseInt(countStr, 10, 64)
			return count, nil
		}
	}

	count, err := uc.likeRepo.Count(kind, targetID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, cacheKey, count, 0)
	}
	return count, nil
}

func (uc *likeUseCase) LikedVideos(userID string, opts persistent.ListOptions) ([]entity.VideoWithOwner, error) {
	return uc.likeRepo.ListLikedVideos(userID, opts)
}

func likeCountKey(kind entity.LikeTargetKind, targetID string) string {
	return fmt.Sprintf("likes:%s:%s", kind, targetID)
}
