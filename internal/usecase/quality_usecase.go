package usecase

import (
	"context"
	"time"

	"graze/internal/domain/entity"
)

// QualitySummary reports the outcome of one scoring run.
type QualitySummary struct {
	Vendors    int           `json:"vendors"`     // Vendors considered.
	Updated    int           `json:"updated"`     // Vendors whose metrics row was written.
	TopVendors int           `json:"top_vendors"` // Vendors holding the badge after the run.
	Errors     int           `json:"errors"`      // Vendors skipped because aggregation failed.
	Duration   time.Duration `json:"duration"`
}

// QualityUsecase recomputes vendor quality metrics from order and review
// history. A run replaces each vendor's metrics row wholesale; per-vendor
// failures never abort the run.
type QualityUsecase interface {
	// RunAll scores every vendor. Used by the daily job and the on-demand
	// trigger.
	RunAll(ctx context.Context) (*QualitySummary, error)

	// RunForVendor scores a single vendor and returns the stored metrics.
	RunForVendor(ctx context.Context, vendorID int64) (*entity.VendorMetrics, error)
}
