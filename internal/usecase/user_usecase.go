package usecase

import (
	"context"
	"io"

	"contacts/internal/domain/entity"
)

// AvatarUploadInput describes an uploaded avatar image.
type AvatarUploadInput struct {
	User        *entity.User
	Body        io.Reader
	Size        int64
	ContentType string
}

// UserUsecase covers profile changes of the authenticated user.
type UserUsecase interface {
	UpdateAvatar(ctx context.Context, input *AvatarUploadInput) (*entity.User, error)
}
