package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"graze/internal/domain/entity"
	"graze/internal/domain/quality"
	"graze/internal/domain/repository"
	"graze/internal/domain/service"
	"graze/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const defaultQualityWorkers = 4

type qualityService struct {
	metricsRepo repository.VendorMetricsRepository
	statsRepo   repository.OrderStatsRepository
	clock       service.Clock
	logger      *slog.Logger
	thresholds  quality.Thresholds
	workers     int
}

// NewQualityService creates a new quality scoring service instance
func NewQualityService(
	metricsRepo repository.VendorMetricsRepository,
	statsRepo repository.OrderStatsRepository,
	clock service.Clock,
	logger *slog.Logger,
	thresholds quality.Thresholds,
	workers int,
) usecase.QualityUsecase {
	if workers <= 0 {
		workers = defaultQualityWorkers
	}

	return &qualityService{
		metricsRepo: metricsRepo,
		statsRepo:   statsRepo,
		clock:       clock,
		logger:      logger,
		thresholds:  thresholds,
		workers:     workers,
	}
}

// RunAll scores every vendor. Vendors are independent: a failure is logged and
// counted, the run continues.
func (s *qualityService) RunAll(ctx context.Context) (*usecase.QualitySummary, error) {
	started := s.clock.Now()

	vendorIDs, err := s.metricsRepo.ListVendorIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	var updated, topVendors, failures atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for _, vendorID := range vendorIDs {
		group.Go(func() error {
			metrics, err := s.scoreVendor(groupCtx, vendorID)
			if err != nil {
				failures.Add(1)
				s.logger.Error("Failed to score vendor",
					slog.Int64("vendor_id", vendorID),
					slog.Any("error", err),
				)

				return nil
			}

			updated.Add(1)
			if metrics.IsTop {
				topVendors.Add(1)
			}

			return nil
		})
	}

	// Workers never return errors; Wait only observes context cancellation.
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "quality worker pool failed")
	}

	summary := &usecase.QualitySummary{
		Vendors:    len(vendorIDs),
		Updated:    int(updated.Load()),
		TopVendors: int(topVendors.Load()),
		Errors:     int(failures.Load()),
		Duration:   s.clock.Now().Sub(started),
	}

	s.logger.Info("Quality run completed",
		slog.Int("vendors", summary.Vendors),
		slog.Int("updated", summary.Updated),
		slog.Int("top_vendors", summary.TopVendors),
		slog.Int("errors", summary.Errors),
		slog.Duration("duration", summary.Duration),
	)

	return summary, nil
}

// RunForVendor scores a single vendor on demand.
func (s *qualityService) RunForVendor(ctx context.Context, vendorID int64) (*entity.VendorMetrics, error) {
	return s.scoreVendor(ctx, vendorID)
}

// scoreVendor collects the raw counts, computes the composite score and
// replaces the vendor's metrics row.
func (s *qualityService) scoreVendor(ctx context.Context, vendorID int64) (*entity.VendorMetrics, error) {
	inputs, err := s.collectInputs(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	score := quality.Score(inputs, s.thresholds)
	isTop := quality.IsTop(inputs, score, s.thresholds)

	metrics := &entity.VendorMetrics{
		VendorID:        vendorID,
		TotalOrders:     inputs.TotalOrders,
		CompletedOrders: inputs.CompletedOrders,
		UniqueCustomers: inputs.UniqueCustomers,
		RepeatCustomers: inputs.RepeatCustomers,
		AvgRating:       inputs.AvgRating,
		QualityScore:    score,
		IsTop:           isTop,
		ComputedAt:      s.clock.Now(),
	}

	if err := s.metricsRepo.Upsert(ctx, metrics); err != nil {
		return nil, errors.Wrap(err, "failed to store vendor metrics")
	}

	return metrics, nil
}

// collectInputs gathers per-vendor counts. A missing supporting table only
// zeroes the metrics it feeds; any other failure aborts the vendor.
func (s *qualityService) collectInputs(ctx context.Context, vendorID int64) (quality.Inputs, error) {
	var inputs quality.Inputs

	total, completed, err := s.statsRepo.CountOrders(ctx, vendorID)
	switch {
	case errors.Is(err, repository.ErrMissingRelation):
		s.logger.Debug("Orders table missing, order metrics degrade to zero",
			slog.Int64("vendor_id", vendorID),
		)
	case err != nil:
		return inputs, errors.Wrap(err, "failed to count orders")
	default:
		inputs.TotalOrders = total
		inputs.CompletedOrders = completed
	}

	unique, repeat, err := s.statsRepo.CountCustomers(ctx, vendorID)
	switch {
	case errors.Is(err, repository.ErrMissingRelation):
		// Same relation as CountOrders; already degraded.
	case err != nil:
		return inputs, errors.Wrap(err, "failed to count customers")
	default:
		inputs.UniqueCustomers = unique
		inputs.RepeatCustomers = repeat
	}

	rating, err := s.statsRepo.AvgRating(ctx, vendorID)
	switch {
	case errors.Is(err, repository.ErrMissingRelation):
		s.logger.Debug("Reviews table missing, rating degrades to zero",
			slog.Int64("vendor_id", vendorID),
		)
	case err != nil:
		return inputs, errors.Wrap(err, "failed to compute average rating")
	default:
		inputs.AvgRating = rating
	}

	return inputs, nil
}
