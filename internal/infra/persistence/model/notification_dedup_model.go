package model

import (
	"time"
)

// NotificationDedupModel is the GORM-specific struct for the 'notification_dedup' table.
// One row per (offer, subscriber, kind); sent_at is overwritten on resend so
// the table never grows beyond one row per key.
type NotificationDedupModel struct {
	OfferID      int64     `gorm:"primaryKey;autoIncrement:false"`
	SubscriberID int64     `gorm:"primaryKey;autoIncrement:false"`
	Kind         string    `gorm:"type:varchar(32);primaryKey"`
	SentAt       time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationDedupModel) TableName() string {
	return "notification_dedup"
}
