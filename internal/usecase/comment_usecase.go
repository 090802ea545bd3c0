package usecase

import (
	"fmt"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
)

type CommentUseCase interface {
	Add(videoID, ownerID, content string) (*entity.Comment, error)
	List(videoID string, opts persistent.ListOptions) ([]entity.CommentWithOwner, error)
	Update(commentID, callerID, content string) (*entity.Comment, error)
	Delete(commentID, callerID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, videoRepo persistent.VideoRepository) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

func (uc *commentUseCase) Add(videoID, ownerID, content string) (*entity.Comment, error) {
	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, asStorageError(err)
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) List(videoID string, opts persistent.ListOptions) ([]entity.CommentWithOwner, error) {
	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, asStorageError(err)
	}
	return uc.commentRepo.ListByVideo(videoID, opts)
}

func (uc *commentUseCase) Update(commentID, callerID, content string) (*entity.Comment, error) {
	comment, err := loadOwned(uc.commentRepo.GetByID, func(c *entity.Comment) string { return c.OwnerID }, commentID, callerID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) Delete(commentID, callerID string) error {
	if _, err := loadOwned(uc.commentRepo.GetByID, func(c *entity.Comment) string { return c.OwnerID }, commentID, callerID); err != nil {
		return err
	}
	return uc.commentRepo.Delete(commentID)
}
