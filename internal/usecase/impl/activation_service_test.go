package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"graze/internal/domain/entity"
	mockRepo "graze/internal/mocks/repository"
	mockSvc "graze/internal/mocks/service"
	mockUC "graze/internal/mocks/usecase"
	"graze/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestActivationService_RunTick_ActivatesAndDispatches(t *testing.T) {
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	mockDispatcher := mockUC.NewMockDispatchUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewActivationService(mockOfferRepo, mockDispatcher, mockPublisher, stubClock{now: now}, discardLogger())

	ctx := context.Background()
	activated := []*entity.ActivatedOffer{
		{OfferID: 1, VendorID: 10, Title: "Lunch box", Latitude: 48.85, Longitude: 2.35},
		{OfferID: 2, VendorID: 11, Title: "Surplus pastries", Latitude: 48.86, Longitude: 2.34},
	}

	mockOfferRepo.EXPECT().
		ActivateDue(ctx, now).
		Return(activated, nil)

	mockPublisher.EXPECT().
		PublishOfferLive(ctx, mock.AnythingOfType("*service.OfferLiveEvent")).
		Return(nil).
		Times(2)

	mockDispatcher.EXPECT().
		DispatchOfferLive(ctx, activated[0]).
		Return(&usecase.DispatchSummary{Eligible: 3, Sent: 3}, nil)

	mockDispatcher.EXPECT().
		DispatchOfferLive(ctx, activated[1]).
		Return(&usecase.DispatchSummary{Eligible: 1, Sent: 1}, nil)

	mockOfferRepo.EXPECT().
		DeactivateExpired(ctx, now).
		Return(int64(1), nil)

	summary, err := service.RunTick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Activated)
	assert.Equal(t, int64(1), summary.Deactivated)
	assert.Equal(t, 2, summary.Dispatched)
	assert.Equal(t, 0, summary.DispatchErrors)
}

func TestActivationService_RunTick_NoDueOffers(t *testing.T) {
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	mockDispatcher := mockUC.NewMockDispatchUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewActivationService(mockOfferRepo, mockDispatcher, mockPublisher, stubClock{now: now}, discardLogger())

	ctx := context.Background()

	mockOfferRepo.EXPECT().
		ActivateDue(ctx, now).
		Return([]*entity.ActivatedOffer{}, nil)

	mockOfferRepo.EXPECT().
		DeactivateExpired(ctx, now).
		Return(int64(0), nil)

	summary, err := service.RunTick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Activated)
	assert.Equal(t, int64(0), summary.Deactivated)
}

func TestActivationService_RunTick_DispatchFailureDoesNotAbortTick(t *testing.T) {
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	mockDispatcher := mockUC.NewMockDispatchUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewActivationService(mockOfferRepo, mockDispatcher, mockPublisher, stubClock{now: now}, discardLogger())

	ctx := context.Background()
	activated := []*entity.ActivatedOffer{
		{OfferID: 1, VendorID: 10, Title: "Lunch box"},
		{OfferID: 2, VendorID: 11, Title: "Surplus pastries"},
	}

	mockOfferRepo.EXPECT().
		ActivateDue(ctx, now).
		Return(activated, nil)

	mockPublisher.EXPECT().
		PublishOfferLive(ctx, mock.AnythingOfType("*service.OfferLiveEvent")).
		Return(nil).
		Times(2)

	mockDispatcher.EXPECT().
		DispatchOfferLive(ctx, activated[0]).
		Return(nil, errors.New("push transport unavailable"))

	mockDispatcher.EXPECT().
		DispatchOfferLive(ctx, activated[1]).
		Return(&usecase.DispatchSummary{Eligible: 1, Sent: 1}, nil)

	mockOfferRepo.EXPECT().
		DeactivateExpired(ctx, now).
		Return(int64(0), nil)

	summary, err := service.RunTick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Activated)
	assert.Equal(t, 1, summary.Dispatched)
	assert.Equal(t, 1, summary.DispatchErrors)
}

func TestActivationService_RunTick_PublishFailureStillDispatches(t *testing.T) {
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	mockDispatcher := mockUC.NewMockDispatchUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewActivationService(mockOfferRepo, mockDispatcher, mockPublisher, stubClock{now: now}, discardLogger())

	ctx := context.Background()
	activated := []*entity.ActivatedOffer{
		{OfferID: 7, VendorID: 20, Title: "Evening bundle"},
	}

	mockOfferRepo.EXPECT().
		ActivateDue(ctx, now).
		Return(activated, nil)

	mockPublisher.EXPECT().
		PublishOfferLive(ctx, mock.AnythingOfType("*service.OfferLiveEvent")).
		Return(errors.New("broker unreachable"))

	mockDispatcher.EXPECT().
		DispatchOfferLive(ctx, activated[0]).
		Return(&usecase.DispatchSummary{Eligible: 2, Sent: 2}, nil)

	mockOfferRepo.EXPECT().
		DeactivateExpired(ctx, now).
		Return(int64(0), nil)

	summary, err := service.RunTick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Dispatched)
}

func TestActivationService_RunTick_ActivateError(t *testing.T) {
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	mockDispatcher := mockUC.NewMockDispatchUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewActivationService(mockOfferRepo, mockDispatcher, mockPublisher, stubClock{now: now}, discardLogger())

	ctx := context.Background()

	mockOfferRepo.EXPECT().
		ActivateDue(ctx, now).
		Return(nil, errors.New("connection refused"))

	summary, err := service.RunTick(ctx)
	require.Error(t, err)
	assert.Nil(t, summary)
}
