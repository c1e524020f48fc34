package entity

import "time"

// PushEndpoint holds the transport-specific delivery address of a subscriber.
// The blob is opaque to the core: an FCM registration token or a Web Push
// subscription JSON, depending on the configured transport.
type PushEndpoint struct {
	ID           int64     `json:"id"`
	SubscriberID int64     `json:"subscriber_id"`
	Enabled      bool      `json:"enabled"` // Disabled endpoints are never targeted.
	Transport    string    `json:"transport"`
	Blob         string    `json:"blob"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
