package repository

import (
	"context"
	"errors"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when no contact matches, including when it belongs to another owner.
var ErrContactNotFound = errors.New("contact not found")

// ContactFilter narrows a contact lookup. Empty fields are ignored.
type ContactFilter struct {
	FirstName string
	LastName  string
	Email     string
}

// ContactRepository persists contacts. Every method is scoped to a single owner.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error)
	// Find returns the owner's contacts matching filter, ordered by id.
	Find(ctx context.Context, ownerID uuid.UUID, filter ContactFilter) ([]*entity.Contact, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Contact, error)
	// ListWithBirthday returns every contact of the owner that has a birthday set.
	ListWithBirthday(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
