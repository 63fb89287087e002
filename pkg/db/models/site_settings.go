package models

import "time"

// SiteSettings is the singleton row holding site-wide branding.
// ID is pinned to 1 so reads and writes always target the same row.
type SiteSettings struct {
	ID             int       `gorm:"column:id;primaryKey"`
	LogoURL        string    `gorm:"column:logo_url;not null;default:''"`
	PrimaryColor   string    `gorm:"column:primary_color;not null;default:'#16a34a'"`
	SecondaryColor string    `gorm:"column:secondary_color;not null;default:'#059669'"`
	FontFamily     string    `gorm:"column:font_family;not null;default:'Inter'"`
	SiteName       string    `gorm:"column:site_name;not null;default:'NatureTrails'"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
