package persistent

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *entity.Tweet) error
	GetByID(id string) (*entity.Tweet, error)
	ListByOwner(ownerID string, opts ListOptions) ([]entity.TweetWithOwner, error)
	Update(tweet *entity.Tweet) error
	Delete(id string) error
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entity.Tweet) error {
	tweetModel := &model.TweetModel{
		ID:      uuid.New().String(),
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}
	if err := r.db.Create(tweetModel).Error; err != nil {
		return err
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, err
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) ListByOwner(ownerID string, opts ListOptions) ([]entity.TweetWithOwner, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", ownerID).First(&userModel).Error; err != nil {
		return nil, err
	}

	var tweetModels []model.TweetModel
	query := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&tweetModels).Error; err != nil {
		return nil, err
	}

	owner := toPublicUser(&userModel)
	tweets := make([]entity.TweetWithOwner, 0, len(tweetModels))
	for i := range tweetModels {
		tweets = append(tweets, entity.TweetWithOwner{
			Tweet: *ToTweetEntity(&tweetModels[i]),
			Owner: owner,
		})
	}
	return tweets, nil
}

func (r *tweetRepository) Update(tweet *entity.Tweet) error {
	return r.db.Model(&model.TweetModel{}).Where("id = ?", tweet.ID).
		Update("content", tweet.Content).Error
}

func (r *tweetRepository) Delete(id string) error {
	return r.db.Delete(&model.TweetModel{}, "id = ?", id).Error
}
