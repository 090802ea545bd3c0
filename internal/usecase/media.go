package usecase

import (
	"fmt"
	"mime/multipart"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/s3"
)

// MediaService delegates asset storage to S3. Uploads are fatal to the
// calling operation when they fail; removals never are.
type MediaService struct {
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewMediaService(s3Client *s3.Client, log *logger.Logger) *MediaService {
	return &MediaService{s3Client: s3Client, logger: log}
}

func (m *MediaService) Upload(file *multipart.FileHeader, folder, fallbackContentType string) (entity.MediaRef, error) {
	src, err := file.Open()
	if err != nil {
		return entity.MediaRef{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackContentType
	}

	key := s3.ObjectKey(folder, file.Filename)
	url, err := m.s3Client.UploadFile(key, src, contentType)
	if err != nil {
		return entity.MediaRef{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return entity.MediaRef{URL: url, Key: key}, nil
}

// Remove deletes a remote object best-effort. A missing remote object
// must never block the operation that triggered the deletion.
func (m *MediaService) Remove(ref entity.MediaRef, kind string) {
	if ref.Key == "" {
		return
	}
	if err := m.s3Client.DeleteFile(ref.Key); err != nil {
		m.logger.Warn("Failed to delete %s object %s: %v", kind, ref.Key, err)
	}
}
