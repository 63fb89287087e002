package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/naturetrails/naturetrails-backend/pkg/enums"
)

// Booking represents a traveler's reservation against a travel package.
type Booking struct {
	ID               uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BookingReference string              `gorm:"column:booking_reference;not null;uniqueIndex"`
	UserID           uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	PackageID        uuid.UUID           `gorm:"column:package_id;type:uuid;not null;index"`
	TravelDate       string              `gorm:"column:travel_date;not null"`
	Persons          int                 `gorm:"column:persons;not null"`
	TotalPrice       decimal.Decimal     `gorm:"column:total_price;type:numeric(12,2);not null"`
	Status           enums.BookingStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	ContactName      string              `gorm:"column:contact_name;not null"`
	ContactEmail     string              `gorm:"column:contact_email;not null"`
	ContactPhone     *string             `gorm:"column:contact_phone"`
	Notes            *string             `gorm:"column:notes"`
	User             *User               `gorm:"foreignKey:UserID"`
	Package          *TravelPackage      `gorm:"foreignKey:PackageID"`
	CreatedAt        time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
