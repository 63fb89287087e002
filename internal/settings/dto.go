package settings

import (
	"time"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
)

// SettingsDTO is the transport shape for site-wide branding.
type SettingsDTO struct {
	LogoURL        string    `json:"logo_url"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	FontFamily     string    `json:"font_family"`
	SiteName       string    `json:"site_name"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateSettingsRequest carries partial branding updates from the back office.
type UpdateSettingsRequest struct {
	LogoURL        *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	PrimaryColor   *string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondary_color,omitempty" validate:"omitempty,hexcolor"`
	FontFamily     *string `json:"font_family,omitempty" validate:"omitempty,min=1"`
	SiteName       *string `json:"site_name,omitempty" validate:"omitempty,min=1"`
}

func FromModel(row *models.SiteSettings) *SettingsDTO {
	if row == nil {
		return nil
	}
	return &SettingsDTO{
		LogoURL:        row.LogoURL,
		PrimaryColor:   row.PrimaryColor,
		SecondaryColor: row.SecondaryColor,
		FontFamily:     row.FontFamily,
		SiteName:       row.SiteName,
		UpdatedAt:      row.UpdatedAt,
	}
}
