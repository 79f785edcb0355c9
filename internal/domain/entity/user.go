// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. The email is its natural identity and is unique.
type User struct {
	ID           uuid.UUID // Surrogate key, referenced by contacts.
	Username     string    // Display name chosen at signup.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt digest; never leaves the service.
	Avatar       string    // Public avatar URL.
	Confirmed    bool      // Set once by email confirmation.

	// RefreshToken is the single live refresh token, nil when logged out or revoked.
	RefreshToken *string

	// ResetToken and ResetTokenExpiry are set and cleared together.
	ResetToken       *string
	ResetTokenExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRefreshToken reports whether token is the stored refresh token.
func (u *User) HasRefreshToken(token string) bool {
	return u.RefreshToken != nil && *u.RefreshToken == token
}

// SetRefreshToken stores token, or clears the stored value when token is empty.
func (u *User) SetRefreshToken(token string) {
	if token == "" {
		u.RefreshToken = nil

		return
	}
	u.RefreshToken = &token
}

// SetResetToken stores a reset token together with its absolute expiry in UTC.
func (u *User) SetResetToken(token string, expiry time.Time) {
	expiry = expiry.UTC()
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
}

// ClearResetToken drops both reset fields.
func (u *User) ClearResetToken() {
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
}

// CachedUser is the snapshot kept in the session cache. It deliberately
// omits the password hash and every token.
type CachedUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCachedUser projects u for caching.
func NewCachedUser(u *User) *CachedUser {
	return &CachedUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Confirmed: u.Confirmed,
		CreatedAt: u.CreatedAt,
	}
}

// User rebuilds a partial user from the snapshot.
func (c *CachedUser) User() *User {
	return &User{
		ID:        c.ID,
		Username:  c.Username,
		Email:     c.Email,
		Avatar:    c.Avatar,
		Confirmed: c.Confirmed,
		CreatedAt: c.CreatedAt,
	}
}
