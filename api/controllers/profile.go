package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/terramasterhub/hub-backend/api/middleware"
	"github.com/terramasterhub/hub-backend/api/responses"
	"github.com/terramasterhub/hub-backend/internal/profile"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
	"github.com/terramasterhub/hub-backend/pkg/logger"
)

// ProfileMe serves the authenticated admin's own profile.
func ProfileMe(svc profile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		raw := middleware.UserIDFromContext(r.Context())
		userID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		result, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
