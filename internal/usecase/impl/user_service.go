package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"
	"contacts/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAvatarMaxSize = 1 << 20

// avatarExtensions maps sniffed image types to object key suffixes.
var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	avatars  service.AvatarStore
	maxSize  int64
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Avatars  service.AvatarStore
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxSize := int64(defaultAvatarMaxSize)
	if params.Config != nil && params.Config.Avatar != nil && params.Config.Avatar.MaxSize > 0 {
		maxSize = params.Config.Avatar.MaxSize
	}

	return &userService{
		userRepo: params.UserRepo,
		avatars:  params.Avatars,
		maxSize:  maxSize,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateAvatar stores the uploaded image and points the user's avatar at it.
// The image type is sniffed from the content, not taken from the client.
func (srv *userService) UpdateAvatar(ctx context.Context, input *usecase.AvatarUploadInput) (*entity.User, error) {
	if input.Size > srv.maxSize {
		return nil, domainerrors.ErrAvatarTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, srv.maxSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read avatar upload")
	}
	if int64(len(data)) > srv.maxSize {
		return nil, domainerrors.ErrAvatarTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := avatarExtensions[contentType]
	if !ok {
		srv.log(ctx).Warn("Rejected avatar upload", slog.String("sniffedType", contentType), slog.String("declaredType", input.ContentType))

		return nil, domainerrors.ErrAvatarUnsupportedType
	}

	checksum, err := util.ContentChecksum(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to checksum avatar")
	}
	key := "avatars/" + input.User.ID.String() + "/" + checksum + ext

	url, err := srv.avatars.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload avatar")
	}

	// The caller may be a cached snapshot, so reload before writing.
	user, err := srv.userRepo.FindByID(ctx, input.User.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for avatar update")
	}

	user.Avatar = url
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store avatar url")
	}

	srv.log(ctx).Info("Avatar updated", slog.Any("userID", user.ID), slog.String("size", util.FormatBytes(int64(len(data)))))

	return user, nil
}
