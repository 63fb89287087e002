package controllers

import (
	"net/http"

	"github.com/naturetrails/naturetrails-backend/api/responses"
	dashboardsvc "github.com/naturetrails/naturetrails-backend/internal/dashboard"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
	"github.com/naturetrails/naturetrails-backend/pkg/logger"
)

// AdminDashboard serves the back-office summary counters.
func AdminDashboard(svc *dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		result, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
