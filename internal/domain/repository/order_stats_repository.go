package repository

import (
	"context"
	"errors"
)

// ErrMissingRelation is returned when a supporting table (orders, reviews)
// does not exist yet. Callers degrade the affected metric to zero instead of
// failing the vendor.
var ErrMissingRelation = errors.New("supporting relation does not exist")

// OrderStatsRepository is the read-side contract over order and review
// history consumed by the quality aggregator. The order/review tables are
// owned by the commerce plumbing outside this core.
type OrderStatsRepository interface {
	// CountOrders returns the total and completed order counts for a vendor.
	CountOrders(ctx context.Context, vendorID int64) (total, completed int64, err error)

	// CountCustomers returns the number of distinct customers and the number
	// of customers with more than one order for a vendor.
	CountCustomers(ctx context.Context, vendorID int64) (unique, repeat int64, err error)

	// AvgRating returns the vendor's average review rating, 0 when the
	// vendor has no reviews.
	AvgRating(ctx context.Context, vendorID int64) (float64, error)
}
