package bookings

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
	"github.com/naturetrails/naturetrails-backend/pkg/enums"
)

// Repository handles booking persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Package").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByUser returns a traveler's bookings, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var rows []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Package").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAdmin returns bookings for the back office, optionally narrowed by
// status and a case-insensitive search over reference and contact fields.
func (r *Repository) ListAdmin(ctx context.Context, filter AdminListFilter) ([]models.Booking, error) {
	query := r.db.WithContext(ctx).
		Preload("Package").
		Order("created_at DESC").
		Order("id DESC")

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"booking_reference ILIKE ? OR contact_name ILIKE ? OR contact_email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var rows []models.Booking
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) (*models.Booking, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status.String()).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) CountByStatus(ctx context.Context, status enums.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	return count, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

// ConfirmedRevenue sums total_price over confirmed bookings.
func (r *Repository) ConfirmedRevenue(ctx context.Context) (decimal.Decimal, error) {
	var raw *string
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", enums.BookingStatusConfirmed.String()).
		Select("COALESCE(SUM(total_price), 0)::text").
		Scan(&raw).Error
	if err != nil {
		return decimal.Decimal{}, err
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}
