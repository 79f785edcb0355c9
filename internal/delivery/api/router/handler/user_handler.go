package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// avatarFormField is the multipart field carrying the image.
const avatarFormField = "file"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the /api/users endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateAvatar stores an uploaded image and makes it the user's avatar.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.BindingError(c, "Avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "Avatar file could not be read")
	}
	defer file.Close()

	updated, err := h.userUC.UpdateAvatar(c.Request().Context(), &usecase.AvatarUploadInput{
		User:        user,
		Body:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(updated))
}
