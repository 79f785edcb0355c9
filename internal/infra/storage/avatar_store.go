package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"contacts/config"
	"contacts/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// BlobAvatarStore keeps avatars in any bucket gocloud.dev can open.
type BlobAvatarStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// AvatarStoreParams holds dependencies for the avatar store, injected by Fx
type AvatarStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStore opens the configured bucket and closes it on shutdown.
func NewAvatarStore(params AvatarStoreParams) (service.AvatarStore, error) {
	cfg := params.Config.Avatar
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("avatar bucket URL is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open avatar bucket %q", cfg.BucketURL)
	}

	params.Logger.Info("Avatar bucket opened", slog.String("bucket", redactURL(cfg.BucketURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobAvatarStore(bucket, cfg.PublicBaseURL), nil
}

// NewBlobAvatarStore wraps an already opened bucket.
func NewBlobAvatarStore(bucket *blob.Bucket, publicBaseURL string) *BlobAvatarStore {
	return &BlobAvatarStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload writes body under key and returns the public URL of the object.
func (s *BlobAvatarStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "upload %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return u.Redacted()
}

// DefaultURL falls back to the Gravatar identicon for email.
func (s *BlobAvatarStore) DefaultURL(email string) string {
	return GravatarURL(email)
}
