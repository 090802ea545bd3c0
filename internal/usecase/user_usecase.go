package usecase

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/pkg/logger"
)

type UserUseCase interface {
	Get(userID string) (*entity.User, error)
	UpdateProfile(userID string, fullName, email *string) (*entity.User, error)
	UpdateAvatar(userID string, file *multipart.FileHeader) (*entity.User, error)
	UpdateCoverImage(userID string, file *multipart.FileHeader) (*entity.User, error)
	ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	WatchHistory(userID string, opts persistent.ListOptions) ([]entity.WatchEntry, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	media    *MediaService
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, media *MediaService, log *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		media:    media,
		logger:   log,
	}
}

func (uc *userUseCase) Get(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, asStorageError(err)
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (uc *userUseCase) UpdateProfile(userID string, fullName, email *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, asStorageError(err)
	}

	if fullName != nil {
		user.FullName = *fullName
	}
	if email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*email))
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (uc *userUseCase) UpdateAvatar(userID string, file *multipart.FileHeader) (*entity.User, error) {
	return uc.replaceImage(userID, file, "avatars", func(u *entity.User, ref entity.MediaRef) entity.MediaRef {
		old := u.Avatar
		u.Avatar = ref
		return old
	})
}

func (uc *userUseCase) UpdateCoverImage(userID string, file *multipart.FileHeader) (*entity.User, error) {
	return uc.replaceImage(userID, file, "covers", func(u *entity.User, ref entity.MediaRef) entity.MediaRef {
		old := u.CoverImage
		u.CoverImage = ref
		return old
	})
}

// replaceImage uploads the new asset first and deletes the previous
// remote object only after the record update sticks, so a failed
// upload never leaves the user without an image.
func (uc *userUseCase) replaceImage(userID string, file *multipart.FileHeader, folder string, swap func(*entity.User, entity.MediaRef) entity.MediaRef) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, asStorageError(err)
	}

	newRef, err := uc.media.Upload(file, folder, "image/jpeg")
	if err != nil {
		uc.logger.Error("Failed to upload image: %v", err)
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	oldRef := swap(user, newRef)

	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.media.Remove(oldRef, folder)

	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (uc *userUseCase) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	profile, err := uc.userRepo.ChannelProfile(strings.ToLower(strings.TrimSpace(username)), viewerID)
	if err != nil {
		return nil, asStorageError(err)
	}
	return profile, nil
}

func (uc *userUseCase) WatchHistory(userID string, opts persistent.ListOptions) ([]entity.WatchEntry, error) {
	return uc.userRepo.WatchHistory(userID, opts)
}
