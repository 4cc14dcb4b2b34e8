package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/terramasterhub/hub-backend/pkg/enums"
)

// User represents the canonical identity entity. Status stays a plain text
// column because the registration flow has historically written free-text
// values into it.
type User struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email          string           `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash   string           `gorm:"column:password_hash;not null"`
	FirstName      string           `gorm:"column:first_name;not null"`
	LastName       string           `gorm:"column:last_name;not null"`
	Phone          *string          `gorm:"column:phone"`
	City           *string          `gorm:"column:city"`
	UserType       enums.UserType   `gorm:"column:user_type;not null"`
	Status         enums.UserStatus `gorm:"column:status;not null;default:'Pending'"`
	ProfilePicture *string          `gorm:"column:profile_picture"`
	FrontIDURL     *string          `gorm:"column:front_id_url"`
	BackIDURL      *string          `gorm:"column:back_id_url"`
	LastLoginAt    *time.Time       `gorm:"column:last_login_at"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
