package persistent

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByVideo(videoID string, opts ListOptions) ([]entity.CommentWithOwner, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		ID:      uuid.New().String(),
		VideoID: comment.VideoID,
		OwnerID: comment.OwnerID,
		Content: comment.Content,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByVideo(videoID string, opts ListOptions) ([]entity.CommentWithOwner, error) {
	var commentModels []model.CommentModel
	query := r.db.Where("video_id = ?", videoID).Order("created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, err
	}

	if len(commentModels) == 0 {
		return []entity.CommentWithOwner{}, nil
	}

	ownerIDs := make([]string, 0, len(commentModels))
	for i := range commentModels {
		ownerIDs = append(ownerIDs, commentModels[i].OwnerID)
	}

	var userModels []model.UserModel
	if err := r.db.Where("id IN ?", ownerIDs).Find(&userModels).Error; err != nil {
		return nil, err
	}

	owners := make(map[string]entity.PublicUser, len(userModels))
	for i := range userModels {
		owners[userModels[i].ID] = toPublicUser(&userModels[i])
	}

	comments := make([]entity.CommentWithOwner, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, entity.CommentWithOwner{
			Comment: *ToCommentEntity(&commentModels[i]),
			Owner:   owners[commentModels[i].OwnerID],
		})
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&model.CommentModel{}).Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&model.CommentModel{}, "id = ?", id).Error
}
