package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const viewDedupeWindow = 6 * time.Hour

type PublishVideoInput struct {
	Title       string
	Description string
	Duration    float64
}

type VideoUseCase interface {
	Publish(ownerID string, input PublishVideoInput, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error)
	Get(videoID, viewerID string) (*entity.VideoWithOwner, int64, bool, error)
	List(filter persistent.VideoFilter, opts persistent.ListOptions) ([]entity.VideoWithOwner, error)
	Update(videoID, callerID string, title, description *string, thumbnail *multipart.FileHeader) (*entity.Video, error)
	Delete(videoID, callerID string) error
	TogglePublish(videoID, callerID string) (bool, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	likeRepo    persistent.LikeRepository
	media       *MediaService
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	likeRepo persistent.LikeRepository,
	media *MediaService,
	redisClient *redis.Client,
	log *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		media:       media,
		redisClient: redisClient,
		logger:      log,
	}
}

func (uc *videoUseCase) Publish(ownerID string, input PublishVideoInput, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	if videoFile == nil || thumbnail == nil {
		return nil, fmt.Errorf("%w: video file and thumbnail are required", ErrInvalidInput)
	}

	videoRef, err := uc.media.Upload(videoFile, "videos", "video/mp4")
	if err != nil {
		uc.logger.Error("Failed to upload video file: %v", err)
		return nil, fmt.Errorf("failed to upload video file: %w", err)
	}

	thumbRef, err := uc.media.Upload(thumbnail, "thumbnails", "image/jpeg")
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		// The video object is already remote; clean it up best-effort.
		uc.media.Remove(videoRef, "videos")
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	video := &entity.Video{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		VideoFile:   videoRef,
		Thumbnail:   thumbRef,
		Duration:    input.Duration,
		IsPublished: true,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return video, nil
}

func (uc *videoUseCase) Get(videoID, viewerID string) (*entity.VideoWithOwner, int64, bool, error) {
	video, err := uc.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		return nil, 0, false, asStorageError(err)
	}

	// Unpublished videos are visible to their owner only.
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, 0, false, ErrNotFound
	}

	if viewerID != "" && viewerID != video.OwnerID {
		uc.countView(videoID, viewerID, video)
	}

	likeCount, err := uc.likeRepo.Count(entity.LikeTargetVideo, videoID)
	if err != nil {
		uc.logger.Error("Failed to count likes for video %s: %v", videoID, err)
	}

	isLiked := false
	if viewerID != "" {
		isLiked, _ = uc.likeRepo.IsLiked(viewerID, entity.LikeTargetVideo, videoID)
	}

	return video, likeCount, isLiked, nil
}

// countView bumps the view counter at most once per viewer per dedupe
// window and records the watch-history entry.
func (uc *videoUseCase) countView(videoID, viewerID string, video *entity.VideoWithOwner) {
	ctx := context.Background()

	shouldCount := true
	if uc.redisClient != nil {
		dedupeKey := fmt.Sprintf("video:viewed:%s:%s", videoID, viewerID)
		set, err := uc.redisClient.SetNX(ctx, dedupeKey, 1, viewDedupeWindow).Result()
		if err == nil && !set {
			shouldCount = false
		}
	}

	if shouldCount {
		if err := uc.videoRepo.IncrementViews(videoID); err != nil {
			uc.logger.Error("Failed to increment views for video %s: %v", videoID, err)
		} else {
			video.Views++
		}
	}

	if err := uc.userRepo.RecordWatch(viewerID, videoID); err != nil {
		uc.logger.Error("Failed to record watch history: %v", err)
	}
}

func (uc *videoUseCase) List(filter persistent.VideoFilter, opts persistent.ListOptions) ([]entity.VideoWithOwner, error) {
	filter.OnlyPublished = true
	return uc.videoRepo.List(filter, opts)
}

func (uc *videoUseCase) Update(videoID, callerID string, title, description *string, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	video, err := loadOwned(uc.videoRepo.GetByID, func(v *entity.Video) string { return v.OwnerID }, videoID, callerID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		video.Title = *title
	}
	if description != nil {
		video.Description = *description
	}

	oldThumb := entity.MediaRef{}
	if thumbnail != nil {
		newRef, err := uc.media.Upload(thumbnail, "thumbnails", "image/jpeg")
		if err != nil {
			uc.logger.Error("Failed to upload thumbnail: %v", err)
			return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		oldThumb = video.Thumbnail
		video.Thumbnail = newRef
	}

	if err := uc.videoRepo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	uc.media.Remove(oldThumb, "thumbnails")

	return video, nil
}

func (uc *videoUseCase) Delete(videoID, callerID string) error {
	video, err := loadOwned(uc.videoRepo.GetByID, func(v *entity.Video) string { return v.OwnerID }, videoID, callerID)
	if err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(videoID); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	uc.media.Remove(video.VideoFile, "videos")
	uc.media.Remove(video.Thumbnail, "thumbnails")

	return nil
}

func (uc *videoUseCase) TogglePublish(videoID, callerID string) (bool, error) {
	video, err := loadOwned(uc.videoRepo.GetByID, func(v *entity.Video) string { return v.OwnerID }, videoID, callerID)
	if err != nil {
		return false, err
	}

	video.IsPublished = !video.IsPublished
	if err := uc.videoRepo.Update(video); err != nil {
		return false, fmt.Errorf("failed to toggle publish state: %w", err)
	}

	return video.IsPublished, nil
}
