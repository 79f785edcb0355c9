package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table. A contact belongs to exactly one user.
type ContactModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_contacts_user_email,priority:1"`
	FirstName      string     `gorm:"type:varchar(50);not null;index"`
	LastName       string     `gorm:"type:varchar(50);not null;index"`
	Email          string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_contacts_user_email,priority:2"`
	Phone          string     `gorm:"type:varchar(50);not null"`
	Birthday       *time.Time `gorm:"type:date"`
	AdditionalData *string    `gorm:"type:varchar(250)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
