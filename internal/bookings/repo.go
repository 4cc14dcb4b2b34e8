package bookings

import (
	"context"

	"gorm.io/gorm"

	"github.com/terramasterhub/hub-backend/pkg/db/models"
)

// Repository exposes read-only access to the bookings ledger.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a bookings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every booking, newest start first. Rows without a start
// date sort last.
func (r *Repository) ListAll(ctx context.Context) ([]models.Booking, error) {
	var found []models.Booking
	err := r.db.WithContext(ctx).
		Order("start_date_time IS NULL, start_date_time DESC").
		Find(&found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}
