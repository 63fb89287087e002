package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/naturetrails/naturetrails-backend/pkg/db"
	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
	"github.com/naturetrails/naturetrails-backend/pkg/enums"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
)

// referenceAttempts bounds retries when a generated booking reference collides
// with an existing one.
const referenceAttempts = 3

// Service defines the behavior needed by the booking controllers.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]BookingDTO, error)
	GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*BookingDTO, error)
	ListAdmin(ctx context.Context, filter AdminListFilter) ([]BookingDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next enums.BookingStatus) (*BookingDTO, error)
}

type repository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListAdmin(ctx context.Context, filter AdminListFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) (*models.Booking, error)
}

type packageFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.TravelPackage, error)
}

// ServiceParams collects the booking service dependencies.
type ServiceParams struct {
	Repo     repository
	Packages packageFinder
	Now      func() time.Time
}

type service struct {
	repo     repository
	packages packageFinder
	now      func() time.Time
}

// NewService constructs a booking service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("booking repository is required")
	}
	if params.Packages == nil {
		return nil, fmt.Errorf("package finder is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, packages: params.Packages, now: now}, nil
}

// Create reserves a package for a traveler. The travel date must be one the
// package offers, and the total is always computed server-side from the stored
// package price.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	pkg, err := s.packages.FindByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load package")
	}
	if !pkg.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "package is not available for booking")
	}

	travelDate := strings.TrimSpace(req.TravelDate)
	if !offersDate(pkg, travelDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "travel date is not offered by this package")
	}

	total := pkg.Price.Mul(decimal.NewFromInt(int64(req.Persons)))

	booking := &models.Booking{
		UserID:       userID,
		PackageID:    pkg.ID,
		TravelDate:   travelDate,
		Persons:      req.Persons,
		TotalPrice:   total,
		Status:       enums.BookingStatusPending,
		ContactName:  strings.TrimSpace(req.ContactName),
		ContactEmail: strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	}

	created, err := s.createWithReference(ctx, booking)
	if err != nil {
		return nil, err
	}
	created.Package = pkg
	return FromModel(created), nil
}

// createWithReference retries with a fresh reference when the unique index
// rejects a collision.
func (s *service) createWithReference(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		reference, err := NewReference(s.now())
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate booking reference")
		}
		booking.BookingReference = reference

		created, err := s.repo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}
		if !db.IsUniqueViolation(err, "bookings_booking_reference_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create booking")
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "could not allocate a unique booking reference")
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]BookingDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list bookings")
	}
	return FromModels(rows), nil
}

// GetMine loads a single booking and hides other travelers' bookings behind a
// not-found response.
func (s *service) GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*BookingDTO, error) {
	row, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load booking")
	}
	if row.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}
	return FromModel(row), nil
}

func (s *service) ListAdmin(ctx context.Context, filter AdminListFilter) ([]BookingDTO, error) {
	rows, err := s.repo.ListAdmin(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list bookings")
	}
	return FromModels(rows), nil
}

// UpdateStatus applies an admin decision, enforcing the booking lifecycle.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, next enums.BookingStatus) (*BookingDTO, error) {
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid booking status %q", next))
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load booking")
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move booking from %s to %s", current.Status, next))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update booking status")
	}
	return FromModel(updated), nil
}

func offersDate(pkg *models.TravelPackage, travelDate string) bool {
	for _, date := range pkg.AvailableDates {
		if date == travelDate {
			return true
		}
	}
	return false
}
