package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/terramasterhub/hub-backend/internal/users"
	"github.com/terramasterhub/hub-backend/pkg/db/models"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
)

// Service returns the authenticated admin's own profile.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error)
}

type service struct {
	repo profileRepository
}

type profileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// NewService constructs the profile service.
func NewService(repo profileRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	return &service{repo: repo}, nil
}

// Get loads the caller's user row. A deleted account yields NOT_FOUND even
// though the session may still be live.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return users.FromModel(user), nil
}
