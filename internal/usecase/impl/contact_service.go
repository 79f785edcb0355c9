package impl

import (
	"context"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	clock       service.Clock
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contactService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{OwnerID: ownerID}
	applyContactInput(contact, input)

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create contact")
	}

	srv.log(ctx).Debug("Contact created", slog.Any("contactID", contact.ID))

	return contact, nil
}

func (srv *contactService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapContactError(err, "failed to get contact")
	}

	return contact, nil
}

// List pages through the owner's contacts. A non-positive limit means the default page size.
func (srv *contactService) List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]*entity.Contact, error) {
	skip = max(skip, 0)
	if limit <= 0 {
		limit = constants.DefaultContactsLimit
	}
	limit = min(limit, constants.MaxContactsLimit)

	contacts, err := srv.contactRepo.List(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

func (srv *contactService) Search(ctx context.Context, ownerID uuid.UUID, filter repository.ContactFilter) ([]*entity.Contact, error) {
	if filter == (repository.ContactFilter{}) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one search field is required")
	}

	contacts, err := srv.contactRepo.Find(ctx, ownerID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}
	if len(contacts) == 0 {
		return nil, domainerrors.ErrContactNotFound
	}

	return contacts, nil
}

func (srv *contactService) Update(ctx context.Context, ownerID, id uuid.UUID, input *usecase.ContactInput) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapContactError(err, "failed to load contact for update")
	}

	applyContactInput(contact, input)

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, mapContactError(err, "failed to update contact")
	}

	return contact, nil
}

// Delete removes the contact and returns it as it was.
func (srv *contactService) Delete(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapContactError(err, "failed to load contact for delete")
	}

	if err := srv.contactRepo.Delete(ctx, ownerID, id); err != nil {
		return nil, mapContactError(err, "failed to delete contact")
	}

	srv.log(ctx).Debug("Contact deleted", slog.Any("contactID", id))

	return contact, nil
}

// UpcomingBirthdays returns contacts whose birthday falls within the next week, today included.
func (srv *contactService) UpcomingBirthdays(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contact, error) {
	candidates, err := srv.contactRepo.ListWithBirthday(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts with birthday")
	}

	today := srv.clock.Now()
	upcoming := make([]*entity.Contact, 0, len(candidates))
	for _, c := range candidates {
		if c.BirthdayWithin(today, constants.UpcomingBirthdayDays) {
			upcoming = append(upcoming, c)
		}
	}

	return upcoming, nil
}

func applyContactInput(contact *entity.Contact, input *usecase.ContactInput) {
	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.Birthday = input.Birthday
	contact.AdditionalData = input.AdditionalData
}

func mapContactError(err error, msg string) error {
	if errors.Is(err, repository.ErrContactNotFound) {
		return domainerrors.ErrContactNotFound
	}

	return errors.Wrap(err, msg)
}
