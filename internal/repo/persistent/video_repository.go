package persistent

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoFilter narrows List queries; zero values mean "no filter".
type VideoFilter struct {
	Query         string
	OwnerID       string
	OnlyPublished bool
}

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	GetByIDWithOwner(id string) (*entity.VideoWithOwner, error)
	List(filter VideoFilter, opts ListOptions) ([]entity.VideoWithOwner, error)
	Update(video *entity.Video) error
	Delete(id string) error
	IncrementViews(id string) error
	CountByOwner(ownerID string) (int64, error)
	SumViewsByOwner(ownerID string) (int64, error)
	CountLikesByOwner(ownerID string) (int64, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) GetByIDWithOwner(id string) (*entity.VideoWithOwner, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}

	owners, err := fetchOwners(r.db, []model.VideoModel{videoModel})
	if err != nil {
		return nil, err
	}

	return &entity.VideoWithOwner{
		Video: *ToVideoEntity(&videoModel),
		Owner: owners[videoModel.OwnerID],
	}, nil
}

func (r *videoRepository) List(filter VideoFilter, opts ListOptions) ([]entity.VideoWithOwner, error) {
	var videoModels []model.VideoModel
	query := r.db.Model(&model.VideoModel{}).Order(opts.OrderClause("videos"))

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}

	if err := query.Find(&videoModels).Error; err != nil {
		return nil, err
	}

	return r.withOwners(videoModels)
}

func (r *videoRepository) withOwners(videoModels []model.VideoModel) ([]entity.VideoWithOwner, error) {
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

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Save(ToVideoModel(video)).Error
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Delete(&model.VideoModel{}, "id = ?", id).Error
}

func (r *videoRepository) IncrementViews(id string) error {
	return r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

func (r *videoRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *videoRepository) SumViewsByOwner(ownerID string) (int64, error) {
	var total int64
	err := r.db.Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *videoRepository) CountLikesByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Joins("INNER JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_kind = ? AND likes.deleted_at IS NULL", "video").
		Where("videos.owner_id = ? AND videos.deleted_at IS NULL", ownerID).
		Count(&count).Error
	return count, err
}
