package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/terramasterhub/hub-backend/pkg/db/models"
	"github.com/terramasterhub/hub-backend/pkg/enums"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail retrieves the user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs loads all users matching the provided UUIDs. Missing ids are
// silently absent from the result.
func (r *Repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// ListByTypes returns users whose user_type is in the provided set, newest
// first, with offset pagination.
func (r *Repository) ListByTypes(ctx context.Context, types []enums.UserType, limit, offset int) ([]models.User, error) {
	var found []models.User
	query := r.db.WithContext(ctx).
		Where("user_type IN ?", typeStrings(types)).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// SearchDirectory returns the directory-visible users matching the optional
// case-insensitive query, newest first, plus the total match count for
// load-more controls. Landowners are always visible; surveyors and
// processors only once their status is Verified.
func (r *Repository) SearchDirectory(ctx context.Context, q string, limit, offset int) ([]models.User, int64, error) {
	build := func() *gorm.DB {
		scoped := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("user_type IN ?", typeStrings(enums.DirectoryUserTypes)).
			Where("user_type = ? OR status = ?", string(enums.UserTypeLandowner), string(enums.UserStatusVerified))
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			pattern := "%" + strings.ToLower(trimmed) + "%"
			scoped = scoped.Where(
				"LOWER(first_name || ' ' || last_name) LIKE ? OR LOWER(COALESCE(city, '')) LIKE ? OR LOWER(user_type) LIKE ?",
				pattern, pattern, pattern,
			)
		}
		return scoped
	}

	var total int64
	if err := build().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var found []models.User
	query := build().Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&found).Error; err != nil {
		return nil, 0, err
	}
	return found, total, nil
}

// CountByTypeAndStatus tallies users grouped by user_type for the provided
// set, split into total and verified counts.
func (r *Repository) CountByTypeAndStatus(ctx context.Context, types []enums.UserType) (map[enums.UserType]TypeCounts, error) {
	rows := []struct {
		UserType enums.UserType
		Status   enums.UserStatus
		Count    int64
	}{}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("user_type, status, COUNT(*) AS count").
		Where("user_type IN ?", typeStrings(types)).
		Group("user_type, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enums.UserType]TypeCounts, len(types))
	for _, row := range rows {
		entry := counts[row.UserType]
		entry.Total += row.Count
		if row.Status == enums.UserStatusVerified {
			entry.Verified += row.Count
		}
		counts[row.UserType] = entry
	}
	return counts, nil
}

// ListPending returns users awaiting approval, oldest first so the queue is
// worked in arrival order.
func (r *Repository) ListPending(ctx context.Context) ([]models.User, error) {
	var found []models.User
	err := r.db.WithContext(ctx).
		Where("status = ?", string(enums.UserStatusPending)).
		Order("created_at ASC").
		Find(&found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}

// UpdateLastLogin refreshes the user's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

// ApproveIfPending flips the user's status to Active only when it is still
// Pending. The affected row count distinguishes a won transition from a lost
// one.
func (r *Repository) ApproveIfPending(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND status = ?", id, string(enums.UserStatusPending)).
		UpdateColumns(map[string]any{
			"status":     string(enums.UserStatusActive),
			"updated_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// TypeCounts aggregates a user type's directory tallies.
type TypeCounts struct {
	Total    int64
	Verified int64
}

func typeStrings(types []enums.UserType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}
