package usecase

import (
	"fmt"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
)

type PlaylistUseCase interface {
	Create(ownerID, name, description string) (*entity.Playlist, error)
	Get(playlistID string) (*entity.PlaylistWithVideos, error)
	ListByUser(userID string) ([]entity.Playlist, error)
	Update(playlistID, callerID string, name, description *string) (*entity.Playlist, error)
	Delete(playlistID, callerID string) error
	AddVideo(playlistID, videoID, callerID string) (*entity.Playlist, error)
	RemoveVideo(playlistID, videoID, callerID string) (*entity.Playlist, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
}

func NewPlaylistUseCase(playlistRepo persistent.PlaylistRepository, videoRepo persistent.VideoRepository) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
	}
}

func (uc *playlistUseCase) Create(ownerID, name, description string) (*entity.Playlist, error) {
	playlist := &entity.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) Get(playlistID string) (*entity.PlaylistWithVideos, error) {
	playlist, err := uc.playlistRepo.GetWithVideos(playlistID)
	if err != nil {
		return nil, asStorageError(err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) ListByUser(userID string) ([]entity.Playlist, error) {
	return uc.playlistRepo.ListByOwner(userID)
}

func (uc *playlistUseCase) Update(playlistID, callerID string, name, description *string) (*entity.Playlist, error) {
	playlist, err := uc.ownedPlaylist(playlistID, callerID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		playlist.Name = *name
	}
	if description != nil {
		playlist.Description = *description
	}

	if err := uc.playlistRepo.Update(playlist); err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) Delete(playlistID, callerID string) error {
	if _, err := uc.ownedPlaylist(playlistID, callerID); err != nil {
		return err
	}
	return uc.playlistRepo.Delete(playlistID)
}

func (uc *playlistUseCase) AddVideo(playlistID, videoID, callerID string) (*entity.Playlist, error) {
	if _, err := uc.ownedPlaylist(playlistID, callerID); err != nil {
		return nil, err
	}

	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, asStorageError(err)
	}

	present, err := uc.playlistRepo.HasVideo(playlistID, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check playlist membership: %w", err)
	}
	if present {
		return nil, fmt.Errorf("%w: video already in playlist", ErrInvalidInput)
	}

	if err := uc.playlistRepo.AddVideo(playlistID, videoID); err != nil {
		return nil, fmt.Errorf("failed to add video to playlist: %w", err)
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, asStorageError(err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) RemoveVideo(playlistID, videoID, callerID string) (*entity.Playlist, error) {
	if _, err := uc.ownedPlaylist(playlistID, callerID); err != nil {
		return nil, err
	}

	present, err := uc.playlistRepo.HasVideo(playlistID, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check playlist membership: %w", err)
	}
	if !present {
		return nil, fmt.Errorf("%w: video not in playlist", ErrNotFound)
	}

	if err := uc.playlistRepo.RemoveVideo(playlistID, videoID); err != nil {
		return nil, fmt.Errorf("failed to remove video from playlist: %w", err)
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, asStorageError(err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) ownedPlaylist(playlistID, callerID string) (*entity.Playlist, error) {
	return loadOwned(uc.playlistRepo.GetByID, func(p *entity.Playlist) string { return p.OwnerID }, playlistID, callerID)
}
