package persistent

import (
	"time"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByUsernameOrEmail(identifier string) (*entity.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Update(user *entity.User) error
	UpdateRefreshToken(userID, token string) error
	UpdateVerifyToken(userID, token string) error
	MarkEmailVerified(userID string) error
	UpdatePassword(userID, hashed string) error
	ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	RecordWatch(userID, videoID string) error
	WatchHistory(userID string, opts ListOptions) ([]entity.WatchEntry, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsernameOrEmail(identifier string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateRefreshToken(userID, token string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", userID).
		Update("refresh_token", token).Error
}

func (r *userRepository) UpdateVerifyToken(userID, token string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", userID).
		Update("verify_token", token).Error
}

func (r *userRepository) MarkEmailVerified(userID string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"email_verified": true,
			"verify_token":   "",
		}).Error
}

func (r *userRepository) UpdatePassword(userID, hashed string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", userID).
		Update("password", hashed).Error
}

func (r *userRepository) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}

	var subscriberCount int64
	if err := r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", userModel.ID).
		Count(&subscriberCount).Error; err != nil {
		return nil, err
	}

	var subscribedTo int64
	if err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", userModel.ID).
		Count(&subscribedTo).Error; err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != "" {
		var count int64
		if err := r.db.Model(&model.SubscriptionModel{}).
			Where("subscriber_id = ? AND channel_id = ?", viewerID, userModel.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		isSubscribed = count > 0
	}

	return &entity.ChannelProfile{
		ID:              userModel.ID,
		Username:        userModel.Username,
		FullName:        userModel.FullName,
		Email:           userModel.Email,
		Avatar:          entity.MediaRef{URL: userModel.AvatarURL, Key: userModel.AvatarKey},
		CoverImage:      entity.MediaRef{URL: userModel.CoverURL, Key: userModel.CoverKey},
		SubscriberCount: subscriberCount,
		SubscribedTo:    subscribedTo,
		IsSubscribed:    isSubscribed,
	}, nil
}

func (r *userRepository) RecordWatch(userID, videoID string) error {
	now := time.Now()

	var existing model.WatchHistoryModel
	err := r.db.Unscoped().Where("user_id = ? AND video_id = ?", userID, videoID).First(&existing).Error
	if err == nil {
		return r.db.Unscoped().Model(&existing).Updates(map[string]interface{}{
			"watched_at": now,
			"deleted_at": nil,
		}).Error
	}

	entry := &model.WatchHistoryModel{
		ID:        uuid.New().String(),
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: now,
	}
	return r.db.Create(entry).Error
}

func (r *userRepository) WatchHistory(userID string, opts ListOptions) ([]entity.WatchEntry, error) {
	var entries []model.WatchHistoryModel
	query := r.db.Where("user_id = ?", userID).Order("watched_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return []entity.WatchEntry{}, nil
	}

	videoIDs := make([]string, 0, len(entries))
	for i := range entries {
		videoIDs = append(videoIDs, entries[i].VideoID)
	}

	var videoModels []model.VideoModel
	if err := r.db.Where("id IN ?", videoIDs).Find(&videoModels).Error; err != nil {
		return nil, err
	}

	owners, err := fetchOwners(r.db, videoModels)
	if err != nil {
		return nil, err
	}

	videosByID := make(map[string]*model.VideoModel, len(videoModels))
	for i := range videoModels {
		videosByID[videoModels[i].ID] = &videoModels[i]
	}

	history := make([]entity.WatchEntry, 0, len(entries))
	for i := range entries {
		vm, ok := videosByID[entries[i].VideoID]
		if !ok {
			// Video deleted after it was watched; drop the entry.
			continue
		}
		history = append(history, entity.WatchEntry{
			Video: entity.VideoWithOwner{
				Video: *ToVideoEntity(vm),
				Owner: owners[vm.OwnerID],
			},
			WatchedAt: entries[i].WatchedAt,
		})
	}
	return history, nil
}

// fetchOwners batch-loads the public projection of every owner
// referenced by the given videos.
func fetchOwners(db *gorm.DB, videos []model.VideoModel) (map[string]entity.PublicUser, error) {
	if len(videos) == 0 {
		return map[string]entity.PublicUser{}, nil
	}

	ownerIDs := make([]string, 0, len(videos))
	seen := make(map[string]bool, len(videos))
	for i := range videos {
		if !seen[videos[i].OwnerID] {
			seen[videos[i].OwnerID] = true
			ownerIDs = append(ownerIDs, videos[i].OwnerID)
		}
	}

	var userModels []model.UserModel
	if err := db.Where("id IN ?", ownerIDs).Find(&userModels).Error; err != nil {
		return nil, err
	}

	owners := make(map[string]entity.PublicUser, len(userModels))
	for i := range userModels {
		owners[userModels[i].ID] = toPublicUser(&userModels[i])
	}
	return owners, nil
}
