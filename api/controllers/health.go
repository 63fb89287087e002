package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/naturetrails/naturetrails-backend/api/responses"
	"github.com/naturetrails/naturetrails-backend/pkg/config"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
	"github.com/naturetrails/naturetrails-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NatureTrails-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the database and redis connections. Both checks run so
// the response names every unhealthy dependency, not just the first.
func HealthReady(cfg *config.Config, db, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NatureTrails-Env", cfg.App.Env)

		var errs error
		status := map[string]string{"database": "ok", "redis": "ok"}

		if db == nil {
			status["database"] = "unconfigured"
		} else if err := db.Ping(r.Context()); err != nil {
			status["database"] = "unreachable"
			errs = multierr.Append(errs, err)
		}

		if cache == nil {
			status["redis"] = "unconfigured"
		} else if err := cache.Ping(r.Context()); err != nil {
			status["redis"] = "unreachable"
			errs = multierr.Append(errs, err)
		}

		if errs != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "dependency check failed").
				WithDetails(status)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": status})
	}
}
