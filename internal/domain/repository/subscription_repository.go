package repository

import (
	"context"
	"errors"

	"graze/internal/domain/entity"
)

// ErrSubscriptionNotFound is returned when a subscription does not exist.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository reads subscriber interest. Subscription CRUD lives
// in the user-facing API; this core only queries candidates for dispatch.
type SubscriptionRepository interface {
	// FindNotifiableSubscriptions returns the candidate subscriptions for an
	// activated offer: offer-scope rows matching the offer, business-scope
	// rows matching the vendor, and every area-scope row. All returned rows
	// are active and belong to subscribers with an enabled push endpoint.
	// Area-scope rows still need the geographic filter applied by the caller.
	FindNotifiableSubscriptions(ctx context.Context, offerID, vendorID int64) ([]*entity.OfferSubscription, error)
}
