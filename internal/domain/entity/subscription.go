package entity

import "time"

// OfferSubscription represents a subscriber's interest in offer notifications.
// Scope decides the granularity: a single offer, a vendor ("business"), or a
// geographic area around a fixed point.
type OfferSubscription struct {
	ID           int64     `json:"id"`            // Primary key of the subscription.
	SubscriberID int64     `json:"subscriber_id"` // The subscriber who owns this subscription.
	Scope        string    `json:"scope"`         // One of constants.ScopeOffer / ScopeBusiness / ScopeArea.
	ScopeID      *int64    `json:"scope_id"`      // Offer or vendor id; nil for area scope.
	Latitude     *float64  `json:"latitude"`      // Area center; required when scope is area.
	Longitude    *float64  `json:"longitude"`     // Area center; required when scope is area.
	RadiusKm     float64   `json:"radius_km"`     // Area radius in kilometers.
	IsActive     bool      `json:"is_active"`     // Inactive subscriptions are never matched.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
