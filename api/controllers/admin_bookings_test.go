package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	bookingsvc "github.com/naturetrails/naturetrails-backend/internal/bookings"
	"github.com/naturetrails/naturetrails-backend/pkg/enums"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
)

func TestAdminListBookingsRejectsUnknownStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/bookings?status=archived", nil)
	resp := httptest.NewRecorder()

	AdminListBookings(&stubBookingService{}, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminListBookings(t *testing.T) {
	svc := &stubBookingService{adminRows: []bookingsvc.BookingDTO{{BookingReference: "NT-ABC123-XY4Z"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/bookings?status=pending&search=NT-", nil)
	resp := httptest.NewRecorder()

	AdminListBookings(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAdminUpdateBookingStatus(t *testing.T) {
	svc := &stubBookingService{statusResult: &bookingsvc.BookingDTO{Status: enums.BookingStatusConfirmed}}
	router := chi.NewRouter()
	router.Patch("/bookings/{bookingID}/status", AdminUpdateBookingStatus(svc, nil))

	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status",
		bytes.NewReader([]byte(`{"status":"confirmed"}`)))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastStatus != enums.BookingStatusConfirmed {
		t.Fatalf("status not forwarded: %s", svc.lastStatus)
	}
}

func TestAdminUpdateBookingStatusConflict(t *testing.T) {
	svc := &stubBookingService{statusErr: pkgerrors.New(pkgerrors.CodeStateConflict, "cannot move booking from confirmed to confirmed")}
	router := chi.NewRouter()
	router.Patch("/bookings/{bookingID}/status", AdminUpdateBookingStatus(svc, nil))

	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status",
		bytes.NewReader([]byte(`{"status":"confirmed"}`)))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}
