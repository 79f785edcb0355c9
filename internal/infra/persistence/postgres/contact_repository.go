package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contactRepository implements the domain.ContactRepository interface using GORM.
// Every query is scoped by user_id so one owner can never see another's rows.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) owned(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.ContactModel{}).Where("user_id = ?", ownerID)
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)
	if err := assignID(&contactM.ID); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrContactAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("contact owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

func (repo *contactRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.owned(ctx, ownerID).Where("id = ?", id).First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

func (repo *contactRepository) Find(ctx context.Context, ownerID uuid.UUID, filter repository.ContactFilter) ([]*entity.Contact, error) {
	query := repo.owned(ctx, ownerID)
	if filter.FirstName != "" {
		query = query.Where("first_name = ?", filter.FirstName)
	}
	if filter.LastName != "" {
		query = query.Where("last_name = ?", filter.LastName)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var rows []model.ContactModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	return toContactsDomain(rows), nil
}

func (repo *contactRepository) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Contact, error) {
	var rows []model.ContactModel
	err := repo.owned(ctx, ownerID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return toContactsDomain(rows), nil
}

func (repo *contactRepository) ListWithBirthday(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contact, error) {
	var rows []model.ContactModel
	if err := repo.owned(ctx, ownerID).Where("birthday IS NOT NULL").Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts with birthday")
	}

	return toContactsDomain(rows), nil
}

func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	result := repo.db.WithContext(ctx).
		Model(contactM).
		Where("user_id = ?", contact.OwnerID).
		Select("*").
		Omit("id", "user_id", "created_at", clause.Associations).
		Updates(contactM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrContactAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

func (repo *contactRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("user_id = ? AND id = ?", ownerID, id).Delete(&model.ContactModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func toContactsDomain(rows []model.ContactModel) []*entity.Contact {
	contacts := make([]*entity.Contact, 0, len(rows))
	for i := range rows {
		contacts = append(contacts, toContactDomain(&rows[i]))
	}

	return contacts
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	var additional string
	if data.AdditionalData != nil {
		additional = *data.AdditionalData
	}

	return &entity.Contact{
		ID:             data.ID,
		OwnerID:        data.UserID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		Phone:          data.Phone,
		Birthday:       utcPtr(data.Birthday),
		AdditionalData: additional,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	var additional *string
	if data.AdditionalData != "" {
		v := data.AdditionalData
		additional = &v
	}

	return &model.ContactModel{
		ID:             data.ID,
		UserID:         data.OwnerID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		Phone:          data.Phone,
		Birthday:       data.Birthday,
		AdditionalData: additional,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
