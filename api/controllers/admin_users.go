package controllers

import (
	"net/http"
	"strings"

	"github.com/naturetrails/naturetrails-backend/api/responses"
	"github.com/naturetrails/naturetrails-backend/api/validators"
	usersvc "github.com/naturetrails/naturetrails-backend/internal/users"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
	"github.com/naturetrails/naturetrails-backend/pkg/logger"
	"github.com/naturetrails/naturetrails-backend/pkg/pagination"
)

// AdminListUsers pages through every account with a keyset cursor.
func AdminListUsers(svc *usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
