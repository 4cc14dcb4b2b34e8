package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/terramasterhub/hub-backend/pkg/db/models"
	"github.com/terramasterhub/hub-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	FullName       string           `json:"full_name"`
	Phone          *string          `json:"phone,omitempty"`
	City           *string          `json:"city,omitempty"`
	UserType       enums.UserType   `json:"user_type"`
	Status         enums.UserStatus `json:"status"`
	ProfilePicture *string          `json:"profile_picture,omitempty"`
	LastLoginAt    *time.Time       `json:"last_login_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        *string
	City         *string
	UserType     enums.UserType
	Status       *enums.UserStatus
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       FullName(u),
		Phone:          u.Phone,
		City:           u.City,
		UserType:       u.UserType,
		Status:         u.Status,
		ProfilePicture: u.ProfilePicture,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	status := enums.UserStatusPending
	if c.Status != nil {
		status = *c.Status
	}

	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Phone:        c.Phone,
		City:         c.City,
		UserType:     c.UserType,
		Status:       status,
	}
}

// FullName joins the user's first and last names, trimming the seam when
// either side is empty.
func FullName(u *models.User) string {
	if u == nil {
		return ""
	}
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
