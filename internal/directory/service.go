package directory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/terramasterhub/hub-backend/internal/users"
	"github.com/terramasterhub/hub-backend/pkg/config"
	"github.com/terramasterhub/hub-backend/pkg/db/models"
	"github.com/terramasterhub/hub-backend/pkg/enums"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
	"github.com/terramasterhub/hub-backend/pkg/pagination"
)

var oneHundred = decimal.NewFromInt(100)

// Service exposes the dashboard directory and its role summary.
type Service interface {
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Summary(ctx context.Context) (*SummaryResponse, error)
}

type service struct {
	repo            directoryRepository
	defaultPageSize int
}

type directoryRepository interface {
	SearchDirectory(ctx context.Context, q string, limit, offset int) ([]models.User, int64, error)
	CountByTypeAndStatus(ctx context.Context, types []enums.UserType) (map[enums.UserType]users.TypeCounts, error)
}

// ServiceParams bundles the dependencies required to build a directory service.
type ServiceParams struct {
	Repo      directoryRepository
	Directory config.DirectoryConfig
}

// NewService constructs the directory service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("directory repository is required")
	}
	pageSize := params.Directory.PageSize
	if pageSize <= 0 {
		pageSize = pagination.DefaultLimit
	}
	return &service{
		repo:            params.Repo,
		defaultPageSize: pageSize,
	}, nil
}

// List returns one gated, searched page of the directory.
func (s *service) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	params := pagination.Normalize(pagination.Params{Limit: req.Limit, Offset: req.Offset})
	if req.Limit <= 0 {
		params.Limit = s.defaultPageSize
	}

	found, total, err := s.repo.SearchDirectory(ctx, req.Query, params.Limit, params.Offset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search directory")
	}

	entries := make([]Entry, 0, len(found))
	for i := range found {
		entries = append(entries, entryFromModel(&found[i]))
	}

	resp := &ListResponse{
		Users: entries,
		Total: total,
	}
	if next := pagination.NextOffset(params, len(entries)); int64(next) < total {
		resp.NextOffset = &next
	}
	return resp, nil
}

// Summary computes per-role counts over the directory-visible population and
// each role's percentage share with two decimals.
func (s *service) Summary(ctx context.Context) (*SummaryResponse, error) {
	counts, err := s.repo.CountByTypeAndStatus(ctx, enums.DirectoryUserTypes)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count directory users")
	}

	visible := make(map[enums.UserType]int64, len(enums.DirectoryUserTypes))
	var total int64
	for _, userType := range enums.DirectoryUserTypes {
		count := counts[userType].Total
		// surveyors and processors only count once verified
		if userType != enums.UserTypeLandowner {
			count = counts[userType].Verified
		}
		visible[userType] = count
		total += count
	}

	roles := make([]RoleSummary, 0, len(enums.DirectoryUserTypes))
	for _, userType := range enums.DirectoryUserTypes {
		roles = append(roles, RoleSummary{
			UserType:   userType,
			Count:      visible[userType],
			Percentage: percentage(visible[userType], total),
		})
	}

	return &SummaryResponse{Total: total, Roles: roles}, nil
}

func percentage(count, total int64) string {
	if total == 0 {
		return "0.00"
	}
	return decimal.NewFromInt(count).
		Div(decimal.NewFromInt(total)).
		Mul(oneHundred).
		StringFixed(2)
}
