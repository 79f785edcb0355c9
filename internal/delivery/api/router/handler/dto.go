package handler

import (
	"time"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
)

// birthdayLayout is the wire format of a contact's birthday.
const birthdayLayout = time.DateOnly

// UserResponse is the public view of a user. It never carries the password hash or tokens.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// SignupResponse wraps the created user with the follow-up instruction.
type SignupResponse struct {
	User   *UserResponse `json:"user"`
	Detail string        `json:"detail"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// ContactResponse is the public view of a contact.
type ContactResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Birthday       *string   `json:"birthday"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newContactResponse(c *entity.Contact) *ContactResponse {
	resp := &ContactResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		AdditionalInfo: c.AdditionalData,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.Birthday != nil {
		birthday := c.Birthday.Format(birthdayLayout)
		resp.Birthday = &birthday
	}

	return resp
}

func newContactResponses(contacts []*entity.Contact) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, newContactResponse(c))
	}

	return out
}
