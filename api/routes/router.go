package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/naturetrails/naturetrails-backend/api/controllers"
	"github.com/naturetrails/naturetrails-backend/api/middleware"
	"github.com/naturetrails/naturetrails-backend/internal/auth"
	"github.com/naturetrails/naturetrails-backend/internal/bookings"
	"github.com/naturetrails/naturetrails-backend/internal/dashboard"
	"github.com/naturetrails/naturetrails-backend/internal/packages"
	"github.com/naturetrails/naturetrails-backend/internal/settings"
	"github.com/naturetrails/naturetrails-backend/internal/users"
	"github.com/naturetrails/naturetrails-backend/pkg/auth/session"
	"github.com/naturetrails/naturetrails-backend/pkg/config"
	"github.com/naturetrails/naturetrails-backend/pkg/db"
	"github.com/naturetrails/naturetrails-backend/pkg/enums"
	"github.com/naturetrails/naturetrails-backend/pkg/logger"
	"github.com/naturetrails/naturetrails-backend/pkg/metrics"
	"github.com/naturetrails/naturetrails-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	SessionManager  sessionManager
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsHandler  http.Handler
	AuthService     auth.Service
	RegisterService auth.RegisterService
	UserService     *users.Service
	PackageService  packages.Service
	BookingService  bookings.Service
	SettingsService *settings.Service
	Dashboard       *dashboard.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DB, p.Redis, logg))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", p.MetricsHandler)
	} else {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
				Post("/login", controllers.AuthLogin(p.AuthService, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).
				Post("/register", controllers.AuthRegister(p.RegisterService, p.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.JWT, logg))
		})

		r.Route("/packages", func(r chi.Router) {
			r.Get("/", controllers.ListPackages(p.PackageService, logg))
			r.Get("/{packageID}", controllers.GetPackage(p.PackageService, logg))
		})

		r.Get("/settings", controllers.GetSettings(p.SettingsService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))

			r.Get("/users/me", controllers.Profile(p.UserService, logg))

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", controllers.CreateBooking(p.BookingService, logg))
				r.Get("/", controllers.ListMyBookings(p.BookingService, logg))
				r.Get("/{bookingID}", controllers.GetMyBooking(p.BookingService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if !cfg.App.IsProd() {
				r.Post("/register", controllers.AdminAuthRegister(p.RegisterService, logg))
			}
			r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
				Post("/login", controllers.AdminAuthLogin(p.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))
			r.Use(middleware.RequireRole(enums.UserRoleAdmin.String(), logg))

			r.Get("/dashboard", controllers.AdminDashboard(p.Dashboard, logg))
			r.Get("/users", controllers.AdminListUsers(p.UserService, logg))

			r.Route("/packages", func(r chi.Router) {
				r.Get("/", controllers.AdminListPackages(p.PackageService, logg))
				r.Post("/", controllers.AdminCreatePackage(p.PackageService, logg))
				r.Patch("/{packageID}", controllers.AdminUpdatePackage(p.PackageService, logg))
				r.Delete("/{packageID}", controllers.AdminDeletePackage(p.PackageService, logg))
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", controllers.AdminListBookings(p.BookingService, logg))
				r.Patch("/{bookingID}/status", controllers.AdminUpdateBookingStatus(p.BookingService, logg))
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", controllers.GetSettings(p.SettingsService, logg))
				r.Put("/", controllers.AdminUpdateSettings(p.SettingsService, logg))
			})
		})
	})

	return r
}
