package bookings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/naturetrails/naturetrails-backend/internal/packages"
	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
	"github.com/naturetrails/naturetrails-backend/pkg/enums"
)

// BookingDTO is the transport shape for a booking.
type BookingDTO struct {
	ID               uuid.UUID            `json:"id"`
	BookingReference string               `json:"booking_reference"`
	UserID           uuid.UUID            `json:"user_id"`
	PackageID        uuid.UUID            `json:"package_id"`
	TravelDate       string               `json:"travel_date"`
	Persons          int                  `json:"persons"`
	TotalPrice       decimal.Decimal      `json:"total_price"`
	Status           enums.BookingStatus  `json:"status"`
	ContactName      string               `json:"contact_name"`
	ContactEmail     string               `json:"contact_email"`
	ContactPhone     *string              `json:"contact_phone,omitempty"`
	Notes            *string              `json:"notes,omitempty"`
	Package          *packages.PackageDTO `json:"package,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// CreateBookingRequest is the traveler payload for a new booking.
type CreateBookingRequest struct {
	PackageID    uuid.UUID `json:"package_id" validate:"required"`
	TravelDate   string    `json:"travel_date" validate:"required"`
	Persons      int       `json:"persons" validate:"required,min=1,max=10"`
	ContactName  string    `json:"contact_name" validate:"required"`
	ContactEmail string    `json:"contact_email" validate:"required,email"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
}

// UpdateStatusRequest carries an admin status decision.
type UpdateStatusRequest struct {
	Status enums.BookingStatus `json:"status" validate:"required"`
}

// AdminListFilter narrows the back-office booking list.
type AdminListFilter struct {
	Status *enums.BookingStatus
	Search string
}

func FromModel(b *models.Booking) *BookingDTO {
	if b == nil {
		return nil
	}
	return &BookingDTO{
		ID:               b.ID,
		BookingReference: b.BookingReference,
		UserID:           b.UserID,
		PackageID:        b.PackageID,
		TravelDate:       b.TravelDate,
		Persons:          b.Persons,
		TotalPrice:       b.TotalPrice,
		Status:           b.Status,
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		ContactPhone:     b.ContactPhone,
		Notes:            b.Notes,
		Package:          packages.FromModel(b.Package),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func FromModels(rows []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
