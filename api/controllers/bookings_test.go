package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/naturetrails/naturetrails-backend/api/middleware"
	bookingsvc "github.com/naturetrails/naturetrails-backend/internal/bookings"
	"github.com/naturetrails/naturetrails-backend/pkg/enums"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
)

type stubBookingService struct {
	created      *bookingsvc.BookingDTO
	createErr    error
	createdFor   uuid.UUID
	mine         []bookingsvc.BookingDTO
	single       *bookingsvc.BookingDTO
	singleErr    error
	adminRows    []bookingsvc.BookingDTO
	statusResult *bookingsvc.BookingDTO
	statusErr    error
	lastStatus   enums.BookingStatus
}

func (s *stubBookingService) Create(ctx context.Context, userID uuid.UUID, req bookingsvc.CreateBookingRequest) (*bookingsvc.BookingDTO, error) {
	s.createdFor = userID
	return s.created, s.createErr
}

func (s *stubBookingService) ListMine(ctx context.Context, userID uuid.UUID) ([]bookingsvc.BookingDTO, error) {
	return s.mine, nil
}

func (s *stubBookingService) GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*bookingsvc.BookingDTO, error) {
	return s.single, s.singleErr
}

func (s *stubBookingService) ListAdmin(ctx context.Context, filter bookingsvc.AdminListFilter) ([]bookingsvc.BookingDTO, error) {
	return s.adminRows, nil
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, id uuid.UUID, next enums.BookingStatus) (*bookingsvc.BookingDTO, error) {
	s.lastStatus = next
	return s.statusResult, s.statusErr
}

func createBookingBody(packageID uuid.UUID) []byte {
	return []byte(fmt.Sprintf(
		`{"package_id":%q,"travel_date":"2026-09-10","persons":3,"contact_name":"Jamie Rivera","contact_email":"jamie@example.com"}`,
		packageID,
	))
}

func TestCreateBookingUsesAuthenticatedUser(t *testing.T) {
	userID := uuid.New()
	svc := &stubBookingService{created: &bookingsvc.BookingDTO{BookingReference: "NT-ABC123-XY4Z"}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(createBookingBody(uuid.New())))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	resp := httptest.NewRecorder()

	CreateBooking(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.createdFor != userID {
		t.Fatalf("booking created for wrong user: %s", svc.createdFor)
	}
}

func TestCreateBookingWithoutUserContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(createBookingBody(uuid.New())))
	resp := httptest.NewRecorder()

	CreateBooking(&stubBookingService{}, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCreateBookingRejectsTooManyPersons(t *testing.T) {
	body := []byte(fmt.Sprintf(
		`{"package_id":%q,"travel_date":"2026-09-10","persons":11,"contact_name":"x","contact_email":"x@example.com"}`,
		uuid.New(),
	))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	CreateBooking(&stubBookingService{}, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCreateBookingSurfacesValidationFromService(t *testing.T) {
	svc := &stubBookingService{createErr: pkgerrors.New(pkgerrors.CodeValidation, "travel date is not offered by this package")}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(createBookingBody(uuid.New())))
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	CreateBooking(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestListMyBookings(t *testing.T) {
	svc := &stubBookingService{mine: []bookingsvc.BookingDTO{{BookingReference: "NT-ABC123-XY4Z"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	ListMyBookings(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
