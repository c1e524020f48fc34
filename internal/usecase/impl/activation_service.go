// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"

	"graze/internal/domain/repository"
	"graze/internal/domain/service"
	"graze/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type activationService struct {
	offerRepo  repository.OfferRepository
	dispatcher usecase.DispatchUsecase
	publisher  service.EventPublisher
	clock      service.Clock
	logger     *slog.Logger
}

// NewActivationService creates a new activation service instance
func NewActivationService(
	offerRepo repository.OfferRepository,
	dispatcher usecase.DispatchUsecase,
	publisher service.EventPublisher,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ActivationUsecase {
	return &activationService{
		offerRepo:  offerRepo,
		dispatcher: dispatcher,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

// RunTick executes one activation pass. Activation runs before deactivation so
// an offer due and expired in the same tick is settled by the activation
// predicate alone: its window already closed, it never goes live.
func (s *activationService) RunTick(ctx context.Context) (*usecase.ActivationSummary, error) {
	started := s.clock.Now()
	summary := &usecase.ActivationSummary{}

	activated, err := s.offerRepo.ActivateDue(ctx, started)
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate due offers")
	}
	summary.Activated = len(activated)

	for _, offer := range activated {
		requestID := uuid.NewString()

		// Event publishing is best-effort: downstream consumers catch up from
		// the database, the push fan-out must not be blocked.
		event := &service.OfferLiveEvent{
			RequestID: requestID,
			OfferID:   offer.OfferID,
			VendorID:  offer.VendorID,
			Title:     offer.Title,
			Latitude:  offer.Latitude,
			Longitude: offer.Longitude,
		}
		if err := s.publisher.PublishOfferLive(ctx, event); err != nil {
			s.logger.Warn("Failed to publish offer live event",
				slog.Int64("offer_id", offer.OfferID),
				slog.String("request_id", requestID),
				slog.Any("error", err),
			)
		}

		dispatchSummary, err := s.dispatcher.DispatchOfferLive(ctx, offer)
		if err != nil {
			// The offer stays active; subscribers missed here are picked up
			// by the dedup ledger being empty if the offer is dispatched again.
			summary.DispatchErrors++
			s.logger.Error("Failed to dispatch offer notifications",
				slog.Int64("offer_id", offer.OfferID),
				slog.String("request_id", requestID),
				slog.Any("error", err),
			)

			continue
		}

		summary.Dispatched++
		s.logger.Info("Offer dispatched",
			slog.Int64("offer_id", offer.OfferID),
			slog.Int64("vendor_id", offer.VendorID),
			slog.Int("eligible", dispatchSummary.Eligible),
			slog.Int("sent", dispatchSummary.Sent),
			slog.Int("suppressed", dispatchSummary.Suppressed),
		)
	}

	deactivated, err := s.offerRepo.DeactivateExpired(ctx, started)
	if err != nil {
		return nil, errors.Wrap(err, "failed to deactivate expired offers")
	}
	summary.Deactivated = deactivated

	summary.Duration = s.clock.Now().Sub(started)

	if summary.Activated > 0 || summary.Deactivated > 0 {
		s.logger.Info("Activation tick completed",
			slog.Int("activated", summary.Activated),
			slog.Int64("deactivated", summary.Deactivated),
			slog.Int("dispatch_errors", summary.DispatchErrors),
			slog.Duration("duration", summary.Duration),
		)
	}

	return summary, nil
}
