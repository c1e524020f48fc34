package postgres

import (
	"context"

	"graze/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderStatsRepository implements the repository.OrderStatsRepository
// interface. The orders and order_reviews tables are owned by the commerce
// plumbing; this repository only ever reads them, and maps their absence onto
// repository.ErrMissingRelation so the aggregator can degrade gracefully.
type orderStatsRepository struct {
	db *gorm.DB
}

// NewOrderStatsRepository is the constructor for orderStatsRepository.
func NewOrderStatsRepository(db *gorm.DB) repository.OrderStatsRepository {
	return &orderStatsRepository{
		db: db,
	}
}

// CountOrders returns the total and completed order counts for a vendor.
func (repo *orderStatsRepository) CountOrders(ctx context.Context, vendorID int64) (total, completed int64, err error) {
	var row struct {
		Total     int64
		Completed int64
	}

	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'completed') AS completed
		FROM orders
		WHERE vendor_id = ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, vendorID).
		Scan(&row).Error; err != nil {
		if isUndefinedRelation(err) {
			return 0, 0, repository.ErrMissingRelation
		}

		return 0, 0, errors.Wrap(err, "failed to count orders")
	}

	return row.Total, row.Completed, nil
}

// CountCustomers returns the number of distinct customers and the number of
// customers with more than one order for a vendor.
func (repo *orderStatsRepository) CountCustomers(ctx context.Context, vendorID int64) (unique, repeat int64, err error) {
	var row struct {
		UniqueCustomers int64
		RepeatCustomers int64
	}

	query := `
		SELECT COUNT(*) AS unique_customers,
		       COUNT(*) FILTER (WHERE order_count > 1) AS repeat_customers
		FROM (
			SELECT customer_id, COUNT(*) AS order_count
			FROM orders
			WHERE vendor_id = ?
			GROUP BY customer_id
		) per_customer
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, vendorID).
		Scan(&row).Error; err != nil {
		if isUndefinedRelation(err) {
			return 0, 0, repository.ErrMissingRelation
		}

		return 0, 0, errors.Wrap(err, "failed to count customers")
	}

	return row.UniqueCustomers, row.RepeatCustomers, nil
}

// AvgRating returns the vendor's average review rating, 0 when the vendor has
// no reviews.
func (repo *orderStatsRepository) AvgRating(ctx context.Context, vendorID int64) (float64, error) {
	var rating float64

	query := `
		SELECT COALESCE(AVG(rating), 0)
		FROM order_reviews
		WHERE vendor_id = ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, vendorID).
		Scan(&rating).Error; err != nil {
		if isUndefinedRelation(err) {
			return 0, repository.ErrMissingRelation
		}

		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return rating, nil
}
