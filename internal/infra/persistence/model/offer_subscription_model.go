package model

import (
	"time"
)

// OfferSubscriptionModel is the GORM-specific struct for the 'offer_subscriptions' table.
// It represents a subscriber's interest in offers by offer, business or area scope.
type OfferSubscriptionModel struct {
	ID           int64    `gorm:"primaryKey;autoIncrement"`
	SubscriberID int64    `gorm:"not null;index"`
	Scope        string   `gorm:"type:varchar(16);not null;index"`
	ScopeID      *int64   `gorm:"index"`
	Latitude     *float64 `gorm:"type:decimal(10,7)"`
	Longitude    *float64 `gorm:"type:decimal(10,7)"`
	RadiusKm     float64  `gorm:"type:decimal(10,3);not null;default:5.0"`
	IsActive     bool     `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferSubscriptionModel) TableName() string {
	return "offer_subscriptions"
}
