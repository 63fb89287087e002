package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// TravelPackage represents a bookable trip listing.
type TravelPackage struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title          string          `gorm:"column:title;not null"`
	Destination    string          `gorm:"column:destination;not null"`
	Description    string          `gorm:"column:description;not null;default:''"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	DurationDays   int             `gorm:"column:duration_days;not null;default:1"`
	Images         pq.StringArray  `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	AvailableDates pq.StringArray  `gorm:"column:available_dates;type:text[];not null;default:ARRAY[]::text[]"`
	MaxTravelers   int             `gorm:"column:max_travelers;not null;default:10"`
	IsActive       bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the table name clear of the reserved word "package".
func (TravelPackage) TableName() string {
	return "travel_packages"
}
