package impl

import (
	"context"
	"testing"
	"time"

	"graze/internal/domain/constants"
	"graze/internal/domain/entity"
	"graze/internal/domain/service"
	mockRepo "graze/internal/mocks/repository"
	mockSvc "graze/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func newDispatchFixture(t *testing.T, now time.Time) (
	*mockRepo.MockSubscriptionRepository,
	*mockRepo.MockPushEndpointRepository,
	*mockRepo.MockDedupRepository,
	*mockSvc.MockPushSender,
	*dispatchService,
) {
	t.Helper()

	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockEndpointRepo := mockRepo.NewMockPushEndpointRepository(t)
	mockDedupRepo := mockRepo.NewMockDedupRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)

	svc := NewDispatchService(
		mockSubRepo,
		mockEndpointRepo,
		mockDedupRepo,
		mockSender,
		stubClock{now: now},
		discardLogger(),
		DispatchConfig{
			AntispamWindow: 24 * time.Hour,
			SendTimeout:    5 * time.Second,
			Workers:        2,
			OfferURLBase:   "https://graze.example.com",
		},
	).(*dispatchService)

	return mockSubRepo, mockEndpointRepo, mockDedupRepo, mockSender, svc
}

func TestDispatchService_DispatchOfferLive_AreaFiltering(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mockSubRepo, mockEndpointRepo, mockDedupRepo, mockSender, svc := newDispatchFixture(t, now)

	ctx := context.Background()
	// Vendor in central Paris.
	offer := &entity.ActivatedOffer{OfferID: 1, VendorID: 10, Title: "Lunch box", Latitude: 48.8566, Longitude: 2.3522}

	candidates := []*entity.OfferSubscription{
		// ~1 km away with a 5 km radius: eligible.
		{ID: 1, SubscriberID: 100, Scope: constants.ScopeArea, Latitude: ptrFloat(48.8650), Longitude: ptrFloat(2.3550), RadiusKm: 5, IsActive: true},
		// London with a 5 km radius: filtered out.
		{ID: 2, SubscriberID: 200, Scope: constants.ScopeArea, Latitude: ptrFloat(51.5072), Longitude: ptrFloat(-0.1276), RadiusKm: 5, IsActive: true},
	}

	mockSubRepo.EXPECT().
		FindNotifiableSubscriptions(ctx, int64(1), int64(10)).
		Return(candidates, nil)

	mockDedupRepo.EXPECT().
		FindRecentlyNotified(ctx, int64(1), []int64{100}, constants.NotificationKindOfferLive, now.Add(-24*time.Hour)).
		Return(map[int64]struct{}{}, nil)

	mockEndpointRepo.EXPECT().
		FindEnabledBySubscribers(ctx, []int64{100}).
		Return([]*entity.PushEndpoint{
			{ID: 1000, SubscriberID: 100, Enabled: true, Transport: constants.PushProviderWebPush, Blob: "{}"},
		}, nil)

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*entity.PushEndpoint"), mock.AnythingOfType("*service.PushPayload")).
		Return(nil)

	mockDedupRepo.EXPECT().
		RecordSent(mock.Anything, &entity.DedupEntry{
			OfferID:      1,
			SubscriberID: 100,
			Kind:         constants.NotificationKindOfferLive,
			SentAt:       now,
		}).
		Return(nil)

	summary, err := svc.DispatchOfferLive(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Candidates)
	assert.Equal(t, 1, summary.Eligible)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 0, summary.Suppressed)
	assert.Equal(t, 0, summary.Failed)
}

func TestDispatchService_DispatchOfferLive_AntispamSuppression(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mockSubRepo, _, mockDedupRepo, _, svc := newDispatchFixture(t, now)

	ctx := context.Background()
	offer := &entity.ActivatedOffer{OfferID: 1, VendorID: 10, Title: "Lunch box", Latitude: 48.8566, Longitude: 2.3522}

	candidates := []*entity.OfferSubscription{
		{ID: 1, SubscriberID: 100, Scope: constants.ScopeOffer, IsActive: true},
	}

	mockSubRepo.EXPECT().
		FindNotifiableSubscriptions(ctx, int64(1), int64(10)).
		Return(candidates, nil)

	mockDedupRepo.EXPECT().
		FindRecentlyNotified(ctx, int64(1), []int64{100}, constants.NotificationKindOfferLive, now.Add(-24*time.Hour)).
		Return(map[int64]struct{}{100: {}}, nil)

	summary, err := svc.DispatchOfferLive(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Suppressed)
	assert.Equal(t, 0, summary.Sent)
}

func TestDispatchService_DispatchOfferLive_GoneEndpointDisabledWithoutLedgerEntry(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mockSubRepo, mockEndpointRepo, mockDedupRepo, mockSender, svc := newDispatchFixture(t, now)

	ctx := context.Background()
	offer := &entity.ActivatedOffer{OfferID: 1, VendorID: 10, Title: "Lunch box", Latitude: 48.8566, Longitude: 2.3522}

	candidates := []*entity.OfferSubscription{
		{ID: 1, SubscriberID: 100, Scope: constants.ScopeBusiness, IsActive: true},
	}

	mockSubRepo.EXPECT().
		FindNotifiableSubscriptions(ctx, int64(1), int64(10)).
		Return(candidates, nil)

	mockDedupRepo.EXPECT().
		FindRecentlyNotified(ctx, int64(1), []int64{100}, constants.NotificationKindOfferLive, now.Add(-24*time.Hour)).
		Return(map[int64]struct{}{}, nil)

	mockEndpointRepo.EXPECT().
		FindEnabledBySubscribers(ctx, []int64{100}).
		Return([]*entity.PushEndpoint{
			{ID: 1000, SubscriberID: 100, Enabled: true, Transport: constants.PushProviderWebPush, Blob: "{}"},
		}, nil)

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*entity.PushEndpoint"), mock.AnythingOfType("*service.PushPayload")).
		Return(errors.Wrap(service.ErrEndpointGone, "push service returned 410"))

	mockEndpointRepo.EXPECT().
		Disable(mock.Anything, int64(1000)).
		Return(nil)

	summary, err := svc.DispatchOfferLive(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Disabled)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	// No RecordSent expectation: a gone endpoint must not touch the ledger.
}

func TestDispatchService_DispatchOfferLive_TransientFailureKeepsEndpoint(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mockSubRepo, mockEndpointRepo, mockDedupRepo, mockSender, svc := newDispatchFixture(t, now)

	ctx := context.Background()
	offer := &entity.ActivatedOffer{OfferID: 1, VendorID: 10, Title: "Lunch box", Latitude: 48.8566, Longitude: 2.3522}

	candidates := []*entity.OfferSubscription{
		{ID: 1, SubscriberID: 100, Scope: constants.ScopeOffer, IsActive: true},
	}

	mockSubRepo.EXPECT().
		FindNotifiableSubscriptions(ctx, int64(1), int64(10)).
		Return(candidates, nil)

	mockDedupRepo.EXPECT().
		FindRecentlyNotified(ctx, int64(1), []int64{100}, constants.NotificationKindOfferLive, now.Add(-24*time.Hour)).
		Return(map[int64]struct{}{}, nil)

	mockEndpointRepo.EXPECT().
		FindEnabledBySubscribers(ctx, []int64{100}).
		Return([]*entity.PushEndpoint{
			{ID: 1000, SubscriberID: 100, Enabled: true, Transport: constants.PushProviderFCM, Blob: "token"},
		}, nil)

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*entity.PushEndpoint"), mock.AnythingOfType("*service.PushPayload")).
		Return(errors.New("503 service unavailable"))

	summary, err := svc.DispatchOfferLive(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.Disabled)
}

func TestDispatchService_DispatchOfferLive_CollapsesSubscriberScopes(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mockSubRepo, mockEndpointRepo, mockDedupRepo, mockSender, svc := newDispatchFixture(t, now)

	ctx := context.Background()
	offer := &entity.ActivatedOffer{OfferID: 1, VendorID: 10, Title: "Lunch box", Latitude: 48.8566, Longitude: 2.3522}

	// The same subscriber follows both the vendor and the area around it.
	candidates := []*entity.OfferSubscription{
		{ID: 1, SubscriberID: 100, Scope: constants.ScopeBusiness, IsActive: true},
		{ID: 2, SubscriberID: 100, Scope: constants.ScopeArea, Latitude: ptrFloat(48.8566), Longitude: ptrFloat(2.3522), RadiusKm: 5, IsActive: true},
	}

	mockSubRepo.EXPECT().
		FindNotifiableSubscriptions(ctx, int64(1), int64(10)).
		Return(candidates, nil)

	mockDedupRepo.EXPECT().
		FindRecentlyNotified(ctx, int64(1), []int64{100}, constants.NotificationKindOfferLive, now.Add(-24*time.Hour)).
		Return(map[int64]struct{}{}, nil)

	mockEndpointRepo.EXPECT().
		FindEnabledBySubscribers(ctx, []int64{100}).
		Return([]*entity.PushEndpoint{
			{ID: 1000, SubscriberID: 100, Enabled: true, Transport: constants.PushProviderWebPush, Blob: "{}"},
		}, nil)

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*entity.PushEndpoint"), mock.AnythingOfType("*service.PushPayload")).
		Return(nil).
		Once()

	mockDedupRepo.EXPECT().
		RecordSent(mock.Anything, mock.AnythingOfType("*entity.DedupEntry")).
		Return(nil).
		Once()

	summary, err := svc.DispatchOfferLive(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Candidates)
	assert.Equal(t, 1, summary.Eligible)
	assert.Equal(t, 1, summary.Sent)
}

func TestDispatchService_DispatchOfferLive_NoCandidates(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mockSubRepo, _, _, _, svc := newDispatchFixture(t, now)

	ctx := context.Background()
	offer := &entity.ActivatedOffer{OfferID: 1, VendorID: 10, Title: "Lunch box", Latitude: 48.8566, Longitude: 2.3522}

	mockSubRepo.EXPECT().
		FindNotifiableSubscriptions(ctx, int64(1), int64(10)).
		Return([]*entity.OfferSubscription{}, nil)

	summary, err := svc.DispatchOfferLive(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Candidates)
	assert.Equal(t, 0, summary.Sent)
}

func TestDispatchService_DispatchOfferLive_PayloadCarriesOfferData(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	_, _, _, _, svc := newDispatchFixture(t, now)

	offer := &entity.ActivatedOffer{OfferID: 42, VendorID: 7, Title: "Half-price sushi", Latitude: 48.85, Longitude: 2.35}
	payload := svc.buildPayload(offer)

	assert.Equal(t, "Half-price sushi", payload.Title)
	assert.Equal(t, constants.NotificationKindOfferLive, payload.Data.Type)
	assert.Equal(t, int64(42), payload.Data.OfferID)
	assert.Equal(t, int64(7), payload.Data.BusinessID)
	assert.Equal(t, "https://graze.example.com/offers/42", payload.Data.URL)
}
