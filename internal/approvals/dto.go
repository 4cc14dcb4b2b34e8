package approvals

import (
	"time"

	"github.com/google/uuid"

	"github.com/terramasterhub/hub-backend/internal/users"
	"github.com/terramasterhub/hub-backend/pkg/db/models"
	"github.com/terramasterhub/hub-backend/pkg/enums"
)

// PendingUserDTO carries everything the review screen needs in one fetch,
// including the identity document images.
type PendingUserDTO struct {
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
	FrontIDURL     *string          `json:"front_id_url,omitempty"`
	BackIDURL      *string          `json:"back_id_url,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

func pendingFromModel(u *models.User) PendingUserDTO {
	return PendingUserDTO{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       users.FullName(u),
		Phone:          u.Phone,
		City:           u.City,
		UserType:       u.UserType,
		Status:         u.Status,
		ProfilePicture: u.ProfilePicture,
		FrontIDURL:     u.FrontIDURL,
		BackIDURL:      u.BackIDURL,
		CreatedAt:      u.CreatedAt,
	}
}
