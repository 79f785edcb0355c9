package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/delivery/api/validator"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the /api/contacts endpoints. Every route runs behind Authenticate.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler.
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ContactRequest is the body of create and update.
type ContactRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,email,max=50"`
	Phone          string `json:"phone" validate:"required,max=50"`
	Birthday       string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	AdditionalInfo string `json:"additional_info" validate:"max=250"`
}

func (r *ContactRequest) toInput() *usecase.ContactInput {
	input := &usecase.ContactInput{
		FirstName:      strings.TrimSpace(r.FirstName),
		LastName:       strings.TrimSpace(r.LastName),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		AdditionalData: r.AdditionalInfo,
	}
	// The layout was already checked by the validator.
	if birthday, err := time.Parse(birthdayLayout, r.Birthday); err == nil {
		input.Birthday = &birthday
	}

	return input
}

// Create adds a contact to the caller's address book.
func (h *ContactHandler) Create(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	input, ok, err := bindContact(c)
	if !ok {
		return err
	}

	contact, err := h.contactUC.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newContactResponse(contact))
}

// List pages through the caller's contacts with ?skip= and ?limit=.
func (h *ContactHandler) List(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	var skip, limit int
	if err := echo.QueryParamsBinder(c).
		Int("skip", &skip).
		Int("limit", &limit).
		BindError(); err != nil {
		return response.BindingError(c, "skip and limit must be integers")
	}

	contacts, err := h.contactUC.List(c.Request().Context(), ownerID, skip, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactResponses(contacts))
}

// Get returns one contact.
func (h *ContactHandler) Get(c echo.Context) error {
	ownerID, id, err := ownerAndContactID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.contactUC.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact))
}

// Update replaces the writable fields of a contact.
func (h *ContactHandler) Update(c echo.Context) error {
	ownerID, id, err := ownerAndContactID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, ok, err := bindContact(c)
	if !ok {
		return err
	}

	contact, err := h.contactUC.Update(c.Request().Context(), ownerID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact))
}

// Delete removes a contact and returns it.
func (h *ContactHandler) Delete(c echo.Context) error {
	ownerID, id, err := ownerAndContactID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.contactUC.Delete(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact))
}

// ByFirstName searches by exact first name.
func (h *ContactHandler) ByFirstName(c echo.Context) error {
	return h.search(c, repository.ContactFilter{FirstName: strings.TrimSpace(c.Param("name"))})
}

// ByLastName searches by exact last name.
func (h *ContactHandler) ByLastName(c echo.Context) error {
	return h.search(c, repository.ContactFilter{LastName: strings.TrimSpace(c.Param("name"))})
}

// ByEmail searches by exact email.
func (h *ContactHandler) ByEmail(c echo.Context) error {
	return h.search(c, repository.ContactFilter{Email: strings.TrimSpace(c.Param("email"))})
}

// UpcomingBirthdays lists contacts whose birthday falls within the next week.
func (h *ContactHandler) UpcomingBirthdays(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	contacts, err := h.contactUC.UpcomingBirthdays(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactResponses(contacts))
}

func (h *ContactHandler) search(c echo.Context, filter repository.ContactFilter) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	contacts, err := h.contactUC.Search(c.Request().Context(), ownerID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactResponses(contacts))
}

// ownerAndContactID reads the caller and the :id path parameter.
// A malformed contact id is reported as not found.
func ownerAndContactID(c echo.Context) (ownerID, id uuid.UUID, err error) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidCredentials
	}

	id, err = uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrContactNotFound
	}

	return ownerID, id, nil
}

// bindContact reports false once it has written a 400; err is the result of that write.
func bindContact(c echo.Context) (input *usecase.ContactInput, ok bool, err error) {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return nil, false, response.BindingError(c, "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, false, response.ValidationError(c, validator.FieldErrors(err))
	}

	return req.toInput(), true, nil
}

func currentUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return uuid.Nil, false
	}

	return user.ID, true
}
