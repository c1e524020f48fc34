package model

import (
	"time"
)

// VendorMetricsModel is the GORM-specific struct for the 'vendor_metrics' table.
// One row per vendor, replaced wholesale on every aggregation run.
type VendorMetricsModel struct {
	VendorID        int64   `gorm:"primaryKey;autoIncrement:false"`
	TotalOrders     int64   `gorm:"not null;default:0"`
	CompletedOrders int64   `gorm:"not null;default:0"`
	UniqueCustomers int64   `gorm:"not null;default:0"`
	RepeatCustomers int64   `gorm:"not null;default:0"`
	AvgRating       float64 `gorm:"type:decimal(3,2);not null;default:0"`
	QualityScore    float64 `gorm:"type:decimal(5,2);not null;default:0;index"`
	IsTop           bool    `gorm:"not null;default:false;index"`
	ComputedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorMetricsModel) TableName() string {
	return "vendor_metrics"
}
