package packages

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
)

// PackageDTO is the transport shape for a travel package.
type PackageDTO struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Destination    string          `json:"destination"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	DurationDays   int             `json:"duration_days"`
	Images         []string        `json:"images"`
	AvailableDates []string        `json:"available_dates"`
	MaxTravelers   int             `json:"max_travelers"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreatePackageRequest is the admin payload for a new listing.
type CreatePackageRequest struct {
	Title          string   `json:"title" validate:"required"`
	Destination    string   `json:"destination" validate:"required"`
	Description    string   `json:"description"`
	Price          string   `json:"price" validate:"required"`
	DurationDays   int      `json:"duration_days" validate:"required,min=1"`
	Images         []string `json:"images"`
	AvailableDates []string `json:"available_dates"`
	MaxTravelers   int      `json:"max_travelers" validate:"omitempty,min=1"`
	IsActive       *bool    `json:"is_active"`
}

// UpdatePackageRequest carries partial updates; nil fields are left unchanged.
type UpdatePackageRequest struct {
	Title          *string   `json:"title,omitempty"`
	Destination    *string   `json:"destination,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Price          *string   `json:"price,omitempty"`
	DurationDays   *int      `json:"duration_days,omitempty" validate:"omitempty,min=1"`
	Images         *[]string `json:"images,omitempty"`
	AvailableDates *[]string `json:"available_dates,omitempty"`
	MaxTravelers   *int      `json:"max_travelers,omitempty" validate:"omitempty,min=1"`
	IsActive       *bool     `json:"is_active,omitempty"`
}

func FromModel(p *models.TravelPackage) *PackageDTO {
	if p == nil {
		return nil
	}
	return &PackageDTO{
		ID:             p.ID,
		Title:          p.Title,
		Destination:    p.Destination,
		Description:    p.Description,
		Price:          p.Price,
		DurationDays:   p.DurationDays,
		Images:         append([]string(nil), p.Images...),
		AvailableDates: append([]string(nil), p.AvailableDates...),
		MaxTravelers:   p.MaxTravelers,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromModels(rows []models.TravelPackage) []PackageDTO {
	out := make([]PackageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
