package usecase

import (
	"fmt"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/pkg/logger"
)

type DashboardUseCase interface {
	Stats(ownerID string) (*entity.DashboardStats, error)
	Videos(ownerID string, opts persistent.ListOptions) ([]entity.VideoWithOwner, error)
}

type dashboardUseCase struct {
	videoRepo        persistent.VideoRepository
	subscriptionRepo persistent.SubscriptionRepository
	logger           *logger.Logger
}

func NewDashboardUseCase(
	videoRepo persistent.VideoRepository,
	subscriptionRepo persistent.SubscriptionRepository,
	log *logger.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *dashboardUseCase) Stats(ownerID string) (*entity.DashboardStats, error) {
	totalVideos, err := uc.videoRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}

	totalViews, err := uc.videoRepo.SumViewsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum views: %w", err)
	}

	totalLikes, err := uc.videoRepo.CountLikesByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	totalSubscribers, err := uc.subscriptionRepo.CountSubscribers(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribers: %w", err)
	}

	return &entity.DashboardStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalLikes:       totalLikes,
		TotalSubscribers: totalSubscribers,
	}, nil
}

// Videos lists the caller's own videos, published or not.
func (uc *dashboardUseCase) Videos(ownerID string, opts persistent.ListOptions) ([]entity.VideoWithOwner, error) {
	return uc.videoRepo.List(persistent.VideoFilter{OwnerID: ownerID}, opts)
}
