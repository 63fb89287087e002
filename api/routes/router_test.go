package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/naturetrails-backend/internal/auth"
	"github.com/naturetrails/naturetrails-backend/internal/bookings"
	"github.com/naturetrails/naturetrails-backend/internal/packages"
	"github.com/naturetrails/naturetrails-backend/internal/users"
	pkgAuth "github.com/naturetrails/naturetrails-backend/pkg/auth"
	"github.com/naturetrails/naturetrails-backend/pkg/config"
	"github.com/naturetrails/naturetrails-backend/pkg/enums"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessionManager struct{}

func (stubSessionManager) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

func (stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	return "", "", nil
}

func (stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{AccessToken: "a", RefreshToken: "r"}, nil
}

func (stubAuthService) AdminLogin(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{AccessToken: "a", RefreshToken: "r"}, nil
}

func (stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return &auth.RefreshResponse{}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error { return nil }

type stubPackageService struct{}

func (stubPackageService) Browse(ctx context.Context, filter packages.Filter) ([]packages.PackageDTO, error) {
	return []packages.PackageDTO{}, nil
}

func (stubPackageService) Get(ctx context.Context, id uuid.UUID) (*packages.PackageDTO, error) {
	return &packages.PackageDTO{ID: id}, nil
}

func (stubPackageService) ListAll(ctx context.Context) ([]packages.PackageDTO, error) {
	return []packages.PackageDTO{}, nil
}

func (stubPackageService) Create(ctx context.Context, req packages.CreatePackageRequest) (*packages.PackageDTO, error) {
	return &packages.PackageDTO{}, nil
}

func (stubPackageService) Update(ctx context.Context, id uuid.UUID, req packages.UpdatePackageRequest) (*packages.PackageDTO, error) {
	return &packages.PackageDTO{}, nil
}

func (stubPackageService) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubBookingService struct{}

func (stubBookingService) Create(ctx context.Context, userID uuid.UUID, req bookings.CreateBookingRequest) (*bookings.BookingDTO, error) {
	return &bookings.BookingDTO{}, nil
}

func (stubBookingService) ListMine(ctx context.Context, userID uuid.UUID) ([]bookings.BookingDTO, error) {
	return []bookings.BookingDTO{}, nil
}

func (stubBookingService) GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*bookings.BookingDTO, error) {
	return &bookings.BookingDTO{}, nil
}

func (stubBookingService) ListAdmin(ctx context.Context, filter bookings.AdminListFilter) ([]bookings.BookingDTO, error) {
	return []bookings.BookingDTO{}, nil
}

func (stubBookingService) UpdateStatus(ctx context.Context, id uuid.UUID, next enums.BookingStatus) (*bookings.BookingDTO, error) {
	return &bookings.BookingDTO{}, nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func (stubRegisterService) RegisterAdmin(ctx context.Context, req auth.RegisterRequest) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func testRouterConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "router-test-secret",
			Issuer:                 "naturetrails-test",
			ExpirationMinutes:      15,
			RefreshTokenTTLMinutes: 60,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(RouterParams{
		Config:          testRouterConfig(),
		Logger:          nil,
		DB:              stubPinger{},
		SessionManager:  stubSessionManager{},
		AuthService:     stubAuthService{},
		RegisterService: stubRegisterService{},
		PackageService:  stubPackageService{},
		BookingService:  stubBookingService{},
	})
}

func mintToken(t *testing.T, role enums.UserRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testRouterConfig().JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "router@example.com",
		Role:   role,
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterPublicEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/api/v1/packages", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterBookingsRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRouterBookingsWithToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleTraveler))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRouterAdminBlocksTravelers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleTraveler))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestRouterAdminAllowsAdmins(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}
