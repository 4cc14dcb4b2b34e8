package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is a transaction record produced by the booking flow. Rows are
// read-only here; BookedUserID is a soft reference (no FK) because bookings
// predate the users table cleanup and some rows point nowhere.
type Booking struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName      string          `gorm:"column:full_name;not null"`
	PropertyType  string          `gorm:"column:property_type"`
	ContractPrice decimal.Decimal `gorm:"column:contract_price;type:numeric(14,2)"`
	DownPayment   decimal.Decimal `gorm:"column:down_payment;type:numeric(14,2);not null;default:0"`
	Stage         string          `gorm:"column:stage"`
	StartDateTime *time.Time      `gorm:"column:start_date_time"`
	BookedUserID  *uuid.UUID      `gorm:"column:booked_user_id;type:uuid"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
