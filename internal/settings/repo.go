package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
)

// settingsRowID pins every read and write to the single settings row.
const settingsRowID = 1

// Repository handles the site settings singleton row.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the settings row. A missing row falls back to defaults so the
// site renders sensibly before anything has been saved.
func (r *Repository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var row models.SiteSettings
	err := r.db.WithContext(ctx).First(&row, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update persists the provided columns, creating the row first if the seed
// is missing.
func (r *Repository) Update(ctx context.Context, updates map[string]any) (*models.SiteSettings, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SiteSettings{}).
		Where("id = ?", settingsRowID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		row := defaultSettings()
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).
			Model(&models.SiteSettings{}).
			Where("id = ?", settingsRowID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return r.Get(ctx)
}

func defaultSettings() *models.SiteSettings {
	return &models.SiteSettings{
		ID:             settingsRowID,
		LogoURL:        "",
		PrimaryColor:   "#16a34a",
		SecondaryColor: "#059669",
		FontFamily:     "Inter",
		SiteName:       "NatureTrails",
	}
}
