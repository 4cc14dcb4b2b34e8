package approvals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/terramasterhub/hub-backend/internal/users"
	"github.com/terramasterhub/hub-backend/pkg/db/models"
	"github.com/terramasterhub/hub-backend/pkg/enums"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
)

// Service exposes the pending-user approval queue.
type Service interface {
	ListPending(ctx context.Context) ([]PendingUserDTO, error)
	Details(ctx context.Context, id uuid.UUID) (*PendingUserDTO, error)
	Approve(ctx context.Context, id uuid.UUID) (*users.UserDTO, error)
}

type service struct {
	repo approvalsRepository
}

type approvalsRepository interface {
	ListPending(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ApproveIfPending(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// NewService constructs the approval queue service.
func NewService(repo approvalsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("approvals repository is required")
	}
	return &service{repo: repo}, nil
}

// ListPending returns the queue in arrival order with full review payloads.
func (s *service) ListPending(ctx context.Context) ([]PendingUserDTO, error) {
	found, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending users")
	}
	queue := make([]PendingUserDTO, 0, len(found))
	for i := range found {
		queue = append(queue, pendingFromModel(&found[i]))
	}
	return queue, nil
}

// Details loads a single pending user for review. Users whose status already
// left Pending are reported as conflicts so the console drops them from the
// queue.
func (s *service) Details(ctx context.Context, id uuid.UUID) (*PendingUserDTO, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status != enums.UserStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "user is no longer pending")
	}
	dto := pendingFromModel(user)
	return &dto, nil
}

// Approve transitions the user from Pending to Active. The guarded update
// makes lost races explicit instead of silently rewriting the row.
func (s *service) Approve(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
	now := time.Now().UTC()
	won, err := s.repo.ApproveIfPending(ctx, id, now)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve user")
	}
	if !won {
		// zero rows affected: either the row is gone or someone else won
		user, err := s.findUser(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("user status is already %s", user.Status))
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return users.FromModel(user), nil
}

func (s *service) findUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return user, nil
}
