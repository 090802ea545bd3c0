package persistent

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	GetWithVideos(id string) (*entity.PlaylistWithVideos, error)
	ListByOwner(ownerID string) ([]entity.Playlist, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error
	HasVideo(playlistID, videoID string) (bool, error)
	AddVideo(playlistID, videoID string) error
	RemoveVideo(playlistID, videoID string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := &model.PlaylistModel{
		ID:          uuid.New().String(),
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("playlist_videos.position ASC")
	}).Where("id = ?", id).First(&playlistModel).Error; err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) GetWithVideos(id string) (*entity.PlaylistWithVideos, error) {
	playlist, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	videos := []entity.VideoWithOwner{}
	if len(playlist.VideoIDs) > 0 {
		var videoModels []model.VideoModel
		if err := r.db.Where("id IN ?", playlist.VideoIDs).Find(&videoModels).Error; err != nil {
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

		// Keep playlist order, skipping videos deleted since they were
		// added.
		for _, videoID := range playlist.VideoIDs {
			vm, ok := videosByID[videoID]
			if !ok {
				continue
			}
			videos = append(videos, entity.VideoWithOwner{
				Video: *ToVideoEntity(vm),
				Owner: owners[vm.OwnerID],
			})
		}
	}

	return &entity.PlaylistWithVideos{
		Playlist: *playlist,
		Videos:   videos,
	}, nil
}

func (r *playlistRepository) ListByOwner(ownerID string) ([]entity.Playlist, error) {
	var playlistModels []model.PlaylistModel
	if err := r.db.Preload("Videos").Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&playlistModels).Error; err != nil {
		return nil, err
	}

	playlists := make([]entity.Playlist, 0, len(playlistModels))
	for i := range playlistModels {
		playlists = append(playlists, *ToPlaylistEntity(&playlistModels[i]))
	}
	return playlists, nil
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Model(&model.PlaylistModel{}).Where("id = ?", playlist.ID).
		Updates(map[string]interface{}{
			"name":        playlist.Name,
			"description": playlist.Description,
		}).Error
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PlaylistModel{}, "id = ?", id).Error
	})
}

func (r *playlistRepository) HasVideo(playlistID, videoID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Count(&count).Error
	return count > 0, err
}

func (r *playlistRepository) AddVideo(playlistID, videoID string) error {
	var existing model.PlaylistVideoModel
	err := r.db.Unscoped().Where("playlist_id = ? AND video_id = ?", playlistID, videoID).First(&existing).Error
	if err == nil {
		if existing.DeletedAt.Valid {
			return r.db.Unscoped().Model(&existing).Update("deleted_at", nil).Error
		}
		return nil
	}

	var position int64
	if err := r.db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ?", playlistID).
		Count(&position).Error; err != nil {
		return err
	}

	entry := &model.PlaylistVideoModel{
		ID:         uuid.New().String(),
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   int(position),
	}
	return r.db.Create(entry).Error
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) error {
	return r.db.Unscoped().
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{}).Error
}
