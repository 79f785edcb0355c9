package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned by the repository.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username         string    `gorm:"type:varchar(50);not null"`
	Email            string    `gorm:"type:varchar(250);unique;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Avatar           string    `gorm:"type:varchar(255)"`
	Confirmed        bool      `gorm:"not null;default:false"`
	RefreshToken     *string   `gorm:"type:varchar(512)"`
	ResetToken       *string   `gorm:"type:varchar(64);index"`
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Contacts []ContactModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
