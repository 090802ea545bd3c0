package persistent

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	Create(userID string, kind entity.LikeTargetKind, targetID string) error
	Delete(userID string, kind entity.LikeTargetKind, targetID string) error
	Count(kind entity.LikeTargetKind, targetID string) (int64, error)
	ListLikedVideos(userID string, opts ListOptions) ([]entity.VideoWithOwner, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(kind), targetID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) Create(userID string, kind entity.LikeTargetKind, targetID string) error {
	var existing model.LikeModel
	err := r.db.Unscoped().
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(kind), targetID).
		First(&existing).Error
	if err == nil {
		if existing.DeletedAt.Valid {
			return r.db.Unscoped().Model(&existing).Update("deleted_at", nil).Error
		}
		return nil
	}

	likeModel := &model.LikeModel{
		ID:         uuid.New().String(),
		UserID:     userID,
		TargetKind: string(kind),
		TargetID:   targetID,
	}
	return r.db.Create(likeModel).Error
}

func (r *likeRepository) Delete(userID string, kind entity.LikeTargetKind, targetID string) error {
	return r.db.Unscoped().
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(kind), targetID).
		Delete(&model.LikeModel{}).Error
}

func (r *likeRepository) Count(kind entity.LikeTargetKind, targetID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("target_kind = ? AND target_id = ?", string(kind), targetID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) ListLikedVideos(userID string, opts ListOptions) ([]entity.VideoWithOwner, error) {
	var videoModels []model.VideoModel
	query := r.db.Model(&model.VideoModel{}).
		Joins("INNER JOIN likes ON videos.id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_kind = ? AND likes.deleted_at IS NULL", userID, "video").
		Order("likes.created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&videoModels).Error; err != nil {
		return nil, err
	}

	owners, err := fetchOwners(r.db, videoModels)
	if err != nil {
		return nil, err
	}

	videos := make([]entity.VideoWithOwner, 0, len(videoModels))
	for i := range videoModels {
		videos = append(videos, entity.VideoWithOwner{
			Video: *ToVideoEntity(&videoModels[i]),
			Owner: owners[videoModels[i].OwnerID],
		})
	}
	return videos, nil
}
