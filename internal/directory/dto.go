package directory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/terramasterhub/hub-backend/internal/users"
	"github.com/terramasterhub/hub-backend/pkg/db/models"
	"github.com/terramasterhub/hub-backend/pkg/enums"
)

// PlaceholderAvatarURL is served when a user has no profile picture.
const PlaceholderAvatarURL = "https://cdn.terramasterhub.com/assets/avatar-placeholder.png"

const notAvailable = "N/A"

// Entry is a directory card. Missing name and city fields render "N/A"
// rather than empty strings, matching what the console displays.
type Entry struct {
	ID             uuid.UUID        `json:"id"`
	FullName       string           `json:"full_name"`
	City           string           `json:"city"`
	UserType       enums.UserType   `json:"user_type"`
	Status         enums.UserStatus `json:"status"`
	ProfilePicture string           `json:"profile_picture"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ListRequest carries the search and load-more inputs.
type ListRequest struct {
	Query  string
	Limit  int
	Offset int
}

// ListResponse returns one page of directory entries plus the total match
// count so the client can keep its "load more" control.
type ListResponse struct {
	Users      []Entry `json:"users"`
	Total      int64   `json:"total"`
	NextOffset *int    `json:"next_offset,omitempty"`
}

// RoleSummary is one slice of the dashboard role breakdown.
type RoleSummary struct {
	UserType   enums.UserType `json:"user_type"`
	Count      int64          `json:"count"`
	Percentage string         `json:"percentage"`
}

// SummaryResponse aggregates the dashboard counters.
type SummaryResponse struct {
	Total int64         `json:"total"`
	Roles []RoleSummary `json:"roles"`
}

func entryFromModel(u *models.User) Entry {
	name := strings.TrimSpace(users.FullName(u))
	if name == "" {
		name = notAvailable
	}
	city := notAvailable
	if u.City != nil && strings.TrimSpace(*u.City) != "" {
		city = *u.City
	}
	picture := PlaceholderAvatarURL
	if u.ProfilePicture != nil && strings.TrimSpace(*u.ProfilePicture) != "" {
		picture = *u.ProfilePicture
	}
	return Entry{
		ID:             u.ID,
		FullName:       name,
		City:           city,
		UserType:       u.UserType,
		Status:         u.Status,
		ProfilePicture: picture,
		CreatedAt:      u.CreatedAt,
	}
}
