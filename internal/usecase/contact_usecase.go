package usecase

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"

	"github.com/google/uuid"
)

// ContactInput is the writable part of a contact.
type ContactInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Birthday       *time.Time
	AdditionalData string
}

// ContactUsecase manages the caller's own contacts.
type ContactUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *ContactInput) (*entity.Contact, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error)
	List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]*entity.Contact, error)
	// Search returns matching contacts, or ErrContactNotFound when there are none.
	Search(ctx context.Context, ownerID uuid.UUID, filter repository.ContactFilter) ([]*entity.Contact, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input *ContactInput) (*entity.Contact, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error)
	UpcomingBirthdays(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contact, error)
}
