package model

import (
	"time"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
// It represents a time-boxed offer published by a vendor.
type OfferModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	VendorID    int64      `gorm:"not null;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	PublishAt   time.Time  `gorm:"not null;index"`
	UnpublishAt *time.Time `gorm:"index"`
	IsActive    bool       `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// VendorModel is the GORM-specific struct for the 'vendors' table.
// Only the columns this service reads are mapped; vendor CRUD lives in the
// user-facing API.
type VendorModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Latitude  float64 `gorm:"type:decimal(10,7);not null"`
	Longitude float64 `gorm:"type:decimal(10,7);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
