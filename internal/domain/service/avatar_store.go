package service

import (
	"context"
	"io"
)

// AvatarStore keeps uploaded avatar images and returns their public URL.
type AvatarStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	// DefaultURL is the avatar shown until the user uploads one.
	DefaultURL(email string) string
}
