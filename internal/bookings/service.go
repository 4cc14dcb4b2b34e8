package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/terramasterhub/hub-backend/internal/users"
	"github.com/terramasterhub/hub-backend/pkg/config"
	"github.com/terramasterhub/hub-backend/pkg/db/models"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
	"github.com/terramasterhub/hub-backend/pkg/logger"
)

const notAvailable = "N/A"

// Service exposes the read-only transaction ledger.
type Service interface {
	List(ctx context.Context) ([]BookingDTO, error)
}

type service struct {
	bookings bookingsRepository
	users    userLookup
	logg     *logger.Logger
	rate     decimal.Decimal
}

type bookingsRepository interface {
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type userLookup interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

// ServiceParams bundles the dependencies required to build a bookings service.
type ServiceParams struct {
	BookingsRepo bookingsRepository
	UserRepo     userLookup
	Logger       *logger.Logger
	Commission   config.CommissionConfig
}

// NewService constructs the ledger service.
func NewService(params ServiceParams) (Service, error) {
	if params.BookingsRepo == nil {
		return nil, fmt.Errorf("bookings repository is required")
	}
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	rate, err := decimal.NewFromString(params.Commission.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid commission rate %q: %w", params.Commission.Rate, err)
	}
	return &service{
		bookings: params.BookingsRepo,
		users:    params.UserRepo,
		logg:     params.Logger,
		rate:     rate,
	}, nil
}

// List returns the whole ledger with hired-user names resolved in one batch.
// A failed or empty user lookup degrades that row's hired name to "N/A"
// rather than failing the fetch.
func (s *service) List(ctx context.Context) ([]BookingDTO, error) {
	found, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}

	names := s.resolveHiredNames(ctx, found)

	out := make([]BookingDTO, 0, len(found))
	for i := range found {
		hired := notAvailable
		if id := found[i].BookedUserID; id != nil {
			if name, ok := names[*id]; ok {
				hired = name
			}
		}
		out = append(out, bookingFromModel(&found[i], hired, s.rate))
	}
	return out, nil
}

func (s *service) resolveHiredNames(ctx context.Context, found []models.Booking) map[uuid.UUID]string {
	seen := make(map[uuid.UUID]struct{}, len(found))
	ids := make([]uuid.UUID, 0, len(found))
	for i := range found {
		id := found[i].BookedUserID
		if id == nil {
			continue
		}
		if _, dup := seen[*id]; dup {
			continue
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	if len(ids) == 0 {
		return nil
	}

	resolved, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "bookings.hired_user_lookup_failed", err)
		}
		return nil
	}

	names := make(map[uuid.UUID]string, len(resolved))
	for i := range resolved {
		if name := strings.TrimSpace(users.FullName(&resolved[i])); name != "" {
			names[resolved[i].ID] = name
		}
	}
	return names
}
