package usecase

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors mapped onto HTTP status codes at the controller
// boundary.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// asStorageError converts gorm's not-found into the domain sentinel so
// controllers never see storage-level errors.
func asStorageError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
