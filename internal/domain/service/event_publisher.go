package service

import "context"

// OfferLiveEvent is emitted whenever the activation state machine turns an
// offer live, for downstream consumers (feeds, analytics) beyond the push
// pipeline.
type OfferLiveEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing.
	OfferID   int64   `json:"offer_id"`
	VendorID  int64   `json:"vendor_id"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventPublisher publishes offer lifecycle events to a message queue.
type EventPublisher interface {
	// PublishOfferLive publishes an activation event. Publishing is
	// best-effort from the activation job's point of view.
	PublishOfferLive(ctx context.Context, event *OfferLiveEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
