package postgres

import (
	"context"

	"graze/internal/domain/entity"
	"graze/internal/domain/repository"
	"graze/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vendorMetricsRepository implements the repository.VendorMetricsRepository interface.
type vendorMetricsRepository struct {
	db *gorm.DB
}

// NewVendorMetricsRepository is the constructor for vendorMetricsRepository.
func NewVendorMetricsRepository(db *gorm.DB) repository.VendorMetricsRepository {
	return &vendorMetricsRepository{
		db: db,
	}
}

// ListVendorIDs returns the ids of all vendors eligible for scoring.
func (repo *vendorMetricsRepository) ListVendorIDs(ctx context.Context) ([]int64, error) {
	var vendorIDs []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Order("id").
		Pluck("id", &vendorIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendor ids")
	}

	return vendorIDs, nil
}

// Upsert replaces the stored metrics row for the vendor. Metrics are derived
// wholesale from history, so last write wins is the correct conflict policy.
func (repo *vendorMetricsRepository) Upsert(ctx context.Context, metrics *entity.VendorMetrics) error {
	metricsM := &model.VendorMetricsModel{
		VendorID:        metrics.VendorID,
		TotalOrders:     metrics.TotalOrders,
		CompletedOrders: metrics.CompletedOrders,
		UniqueCustomers: metrics.UniqueCustomers,
		RepeatCustomers: metrics.RepeatCustomers,
		AvgRating:       metrics.AvgRating,
		QualityScore:    metrics.QualityScore,
		IsTop:           metrics.IsTop,
		ComputedAt:      metrics.ComputedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}},
			UpdateAll: true,
		}).
		Create(metricsM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert vendor metrics")
	}

	return nil
}
