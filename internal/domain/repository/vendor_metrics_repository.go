package repository

import (
	"context"

	"graze/internal/domain/entity"
)

// VendorMetricsRepository persists the output of the quality aggregator.
type VendorMetricsRepository interface {
	// ListVendorIDs returns the ids of all vendors eligible for scoring.
	ListVendorIDs(ctx context.Context) ([]int64, error)

	// Upsert replaces the stored metrics row for the vendor.
	Upsert(ctx context.Context, metrics *entity.VendorMetrics) error
}
