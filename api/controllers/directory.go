package controllers

import (
	"net/http"

	"github.com/terramasterhub/hub-backend/api/responses"
	"github.com/terramasterhub/hub-backend/api/validators"
	"github.com/terramasterhub/hub-backend/internal/directory"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
	"github.com/terramasterhub/hub-backend/pkg/logger"
	"github.com/terramasterhub/hub-backend/pkg/pagination"
)

// DirectoryList serves the dashboard user directory with search and
// load-more pagination.
func DirectoryList(svc directory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		req := directory.ListRequest{
			Query:  validators.SanitizeString(validators.QueryString(r, "q"), 120),
			Limit:  limit,
			Offset: offset,
		}

		result, err := svc.List(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// DirectorySummary serves the dashboard role breakdown.
func DirectorySummary(svc directory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
			return
		}

		result, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
