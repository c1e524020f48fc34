package entity

import "time"

// DedupEntry records the last successful notification per
// (offer, subscriber, kind). At most one live entry exists per key; a send
// inside the anti-spam window is suppressed, a send outside it overwrites
// SentAt.
type DedupEntry struct {
	OfferID      int64     `json:"offer_id"`
	SubscriberID int64     `json:"subscriber_id"`
	Kind         string    `json:"kind"`
	SentAt       time.Time `json:"sent_at"`
}
