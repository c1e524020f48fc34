package impl

import (
	"context"
	"testing"
	"time"

	"graze/internal/domain/quality"
	"graze/internal/domain/repository"
	mockRepo "graze/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQualityFixture(t *testing.T, now time.Time) (
	*mockRepo.MockVendorMetricsRepository,
	*mockRepo.MockOrderStatsRepository,
	*qualityService,
) {
	t.Helper()

	mockMetricsRepo := mockRepo.NewMockVendorMetricsRepository(t)
	mockStatsRepo := mockRepo.NewMockOrderStatsRepository(t)

	svc := NewQualityService(
		mockMetricsRepo,
		mockStatsRepo,
		stubClock{now: now},
		discardLogger(),
		quality.DefaultThresholds(),
		2,
	).(*qualityService)

	return mockMetricsRepo, mockStatsRepo, svc
}

func TestQualityService_RunForVendor_ComputesCompositeScore(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	mockMetricsRepo, mockStatsRepo, svc := newQualityFixture(t, now)

	ctx := context.Background()

	mockStatsRepo.EXPECT().CountOrders(ctx, int64(7)).Return(int64(20), int64(19), nil)
	mockStatsRepo.EXPECT().CountCustomers(ctx, int64(7)).Return(int64(15), int64(10), nil)
	mockStatsRepo.EXPECT().AvgRating(ctx, int64(7)).Return(4.8, nil)

	mockMetricsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.VendorMetrics")).
		Return(nil)

	metrics, err := svc.RunForVendor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(20), metrics.TotalOrders)
	assert.Equal(t, int64(19), metrics.CompletedOrders)
	// completion 95*0.30 + rating 96*0.25 + repeat 66.67*0.25 + activity 66.11*0.20
	assert.InDelta(t, 82.39, metrics.QualityScore, 0.01)
	assert.True(t, metrics.IsTop)
	assert.Equal(t, now, metrics.ComputedAt)
}

func TestQualityService_RunForVendor_BelowOrderFloorScoresZero(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	mockMetricsRepo, mockStatsRepo, svc := newQualityFixture(t, now)

	ctx := context.Background()

	mockStatsRepo.EXPECT().CountOrders(ctx, int64(7)).Return(int64(5), int64(5), nil)
	mockStatsRepo.EXPECT().CountCustomers(ctx, int64(7)).Return(int64(5), int64(0), nil)
	mockStatsRepo.EXPECT().AvgRating(ctx, int64(7)).Return(5.0, nil)

	mockMetricsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.VendorMetrics")).
		Return(nil)

	metrics, err := svc.RunForVendor(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, metrics.QualityScore)
	assert.False(t, metrics.IsTop)
}

func TestQualityService_RunForVendor_MissingRelationsDegradeToZero(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	mockMetricsRepo, mockStatsRepo, svc := newQualityFixture(t, now)

	ctx := context.Background()

	mockStatsRepo.EXPECT().CountOrders(ctx, int64(7)).Return(int64(0), int64(0), repository.ErrMissingRelation)
	mockStatsRepo.EXPECT().CountCustomers(ctx, int64(7)).Return(int64(0), int64(0), repository.ErrMissingRelation)
	mockStatsRepo.EXPECT().AvgRating(ctx, int64(7)).Return(4.2, nil)

	mockMetricsRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.VendorMetrics")).
		Return(nil)

	metrics, err := svc.RunForVendor(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, metrics.TotalOrders)
	assert.Equal(t, 4.2, metrics.AvgRating)
	assert.Zero(t, metrics.QualityScore)
	assert.False(t, metrics.IsTop)
}

func TestQualityService_RunAll_IsolatesVendorFailures(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	mockMetricsRepo, mockStatsRepo, svc := newQualityFixture(t, now)

	ctx := context.Background()

	mockMetricsRepo.EXPECT().
		ListVendorIDs(mock.Anything).
		Return([]int64{1, 2, 3}, nil)

	goodStats := func(vendorID int64) {
		mockStatsRepo.EXPECT().CountOrders(mock.Anything, vendorID).Return(int64(20), int64(19), nil)
		mockStatsRepo.EXPECT().CountCustomers(mock.Anything, vendorID).Return(int64(15), int64(10), nil)
		mockStatsRepo.EXPECT().AvgRating(mock.Anything, vendorID).Return(4.8, nil)
	}
	goodStats(1)
	goodStats(3)

	mockStatsRepo.EXPECT().
		CountOrders(mock.Anything, int64(2)).
		Return(int64(0), int64(0), errors.New("connection reset"))

	mockMetricsRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.VendorMetrics")).
		Return(nil).
		Times(2)

	summary, err := svc.RunAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Vendors)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 2, summary.TopVendors)
	assert.Equal(t, 1, summary.Errors)
}

func TestQualityService_RunAll_ListError(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	mockMetricsRepo, _, svc := newQualityFixture(t, now)

	ctx := context.Background()

	mockMetricsRepo.EXPECT().
		ListVendorIDs(mock.Anything).
		Return(nil, errors.New("connection refused"))

	summary, err := svc.RunAll(ctx)
	require.Error(t, err)
	assert.Nil(t, summary)
}
