package controllers

import (
	"net/http"

	"github.com/terramasterhub/hub-backend/api/responses"
	"github.com/terramasterhub/hub-backend/internal/bookings"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
	"github.com/terramasterhub/hub-backend/pkg/logger"
)

// BookingsList serves the transactions ledger, newest first.
func BookingsList(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		result, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
