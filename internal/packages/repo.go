package packages

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
)

// Repository exposes travel package persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a packages repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns all active listings, newest first.
func (r *Repository) ListActive(ctx context.Context) ([]models.TravelPackage, error) {
	var rows []models.TravelPackage
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every listing regardless of active state, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.TravelPackage, error) {
	var rows []models.TravelPackage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads one listing by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.TravelPackage, error) {
	var row models.TravelPackage
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new listing and returns the persisted model.
func (r *Repository) Create(ctx context.Context, pkg *models.TravelPackage) (*models.TravelPackage, error) {
	if pkg.Images == nil {
		pkg.Images = pq.StringArray{}
	}
	if pkg.AvailableDates == nil {
		pkg.AvailableDates = pq.StringArray{}
	}
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return nil, err
	}
	return pkg, nil
}

// Update persists the provided columns on the listing.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.TravelPackage, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.TravelPackage{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the listing.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TravelPackage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of listings.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TravelPackage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive returns the number of active listings.
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TravelPackage{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
