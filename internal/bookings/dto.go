package bookings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/terramasterhub/hub-backend/pkg/db/models"
)

// BookingDTO is one ledger row as the console renders it. Money fields are
// fixed two-decimal strings; HiredName degrades to "N/A" when the booked
// user cannot be resolved.
type BookingDTO struct {
	ID            uuid.UUID  `json:"id"`
	FullName      string     `json:"full_name"`
	PropertyType  string     `json:"property_type"`
	ContractPrice string     `json:"contract_price"`
	DownPayment   string     `json:"down_payment"`
	Commission    string     `json:"commission"`
	Stage         string     `json:"stage"`
	StartDateTime *time.Time `json:"start_date_time,omitempty"`
	HiredName     string     `json:"hired_name"`
	CreatedAt     time.Time  `json:"created_at"`
}

func bookingFromModel(b *models.Booking, hiredName string, rate decimal.Decimal) BookingDTO {
	return BookingDTO{
		ID:            b.ID,
		FullName:      b.FullName,
		PropertyType:  b.PropertyType,
		ContractPrice: b.ContractPrice.StringFixed(2),
		DownPayment:   b.DownPayment.StringFixed(2),
		Commission:    b.DownPayment.Mul(rate).Round(2).StringFixed(2),
		Stage:         b.Stage,
		StartDateTime: b.StartDateTime,
		HiredName:     hiredName,
		CreatedAt:     b.CreatedAt,
	}
}
