// Package entity contains the core business objects of the project.
package entity

import "time"

// Offer represents a time-boxed food offer published by a vendor.
type Offer struct {
	ID          int64      `json:"id"`           // Primary key of the offer.
	VendorID    int64      `json:"vendor_id"`    // The vendor that owns this offer.
	Title       string     `json:"title"`        // Display title shown in notifications.
	PublishAt   time.Time  `json:"publish_at"`   // When the offer becomes visible.
	UnpublishAt *time.Time `json:"unpublish_at"` // When the offer window closes; nil means open-ended.
	IsActive    bool       `json:"is_active"`    // Derived state; written only by the activation job.
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ActivatedOffer is an offer that just transitioned to active in the current
// tick, joined with the owning vendor's coordinates for subscriber matching.
type ActivatedOffer struct {
	OfferID   int64   `json:"offer_id"`
	VendorID  int64   `json:"vendor_id"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
