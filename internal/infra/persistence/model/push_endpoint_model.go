package model

import (
	"time"
)

// PushEndpointModel is the GORM-specific struct for the 'push_endpoints' table.
// The blob column carries the transport-specific address: an FCM registration
// token or a Web Push subscription JSON.
type PushEndpointModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	SubscriberID int64  `gorm:"not null;index"`
	Enabled      bool   `gorm:"not null;default:true;index"`
	Transport    string `gorm:"type:varchar(16);not null"`
	Blob         string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushEndpointModel) TableName() string {
	return "push_endpoints"
}
