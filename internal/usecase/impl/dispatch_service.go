package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"graze/internal/domain/constants"
	"graze/internal/domain/entity"
	"graze/internal/domain/geo"
	"graze/internal/domain/repository"
	"graze/internal/domain/service"
	"graze/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const defaultDispatchWorkers = 8

// DispatchConfig tunes the fan-out behavior of the dispatcher.
type DispatchConfig struct {
	// AntispamWindow is the minimum interval before the same subscriber is
	// notified again about the same offer.
	AntispamWindow time.Duration

	// SendTimeout bounds a single outbound push.
	SendTimeout time.Duration

	// Workers caps concurrent subscriber deliveries.
	Workers int

	// OfferURLBase is prefixed to the offer id for the click-through URL.
	OfferURLBase string

	// DefaultRadiusKm substitutes for area subscriptions stored without a
	// radius.
	DefaultRadiusKm float64
}

type dispatchService struct {
	subscriptionRepo repository.SubscriptionRepository
	endpointRepo     repository.PushEndpointRepository
	dedupRepo        repository.DedupRepository
	sender           service.PushSender
	clock            service.Clock
	logger           *slog.Logger
	cfg              DispatchConfig
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	subscriptionRepo repository.SubscriptionRepository,
	endpointRepo repository.PushEndpointRepository,
	dedupRepo repository.DedupRepository,
	sender service.PushSender,
	clock service.Clock,
	logger *slog.Logger,
	cfg DispatchConfig,
) usecase.DispatchUsecase {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultDispatchWorkers
	}

	return &dispatchService{
		subscriptionRepo: subscriptionRepo,
		endpointRepo:     endpointRepo,
		dedupRepo:        dedupRepo,
		sender:           sender,
		clock:            clock,
		logger:           logger,
		cfg:              cfg,
	}
}

// DispatchOfferLive notifies every eligible subscriber that the offer went
// live. A subscriber with several matching subscriptions or endpoints still
// receives at most one recorded notification per anti-spam window.
func (s *dispatchService) DispatchOfferLive(ctx context.Context, offer *entity.ActivatedOffer) (*usecase.DispatchSummary, error) {
	started := s.clock.Now()
	summary := &usecase.DispatchSummary{}

	candidates, err := s.subscriptionRepo.FindNotifiableSubscriptions(ctx, offer.OfferID, offer.VendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate subscriptions")
	}
	summary.Candidates = len(candidates)

	if s.cfg.DefaultRadiusKm > 0 {
		for _, sub := range candidates {
			if sub.Scope == constants.ScopeArea && sub.RadiusKm <= 0 {
				sub.RadiusKm = s.cfg.DefaultRadiusKm
			}
		}
	}

	origin := orb.Point{offer.Longitude, offer.Latitude}
	eligible := geo.FilterEligible(origin, candidates)

	// Collapse subscriptions to distinct subscribers; one subscriber may
	// match through several scopes.
	subscriberIDs := make([]int64, 0, len(eligible))
	seen := make(map[int64]struct{}, len(eligible))
	for _, sub := range eligible {
		if _, ok := seen[sub.SubscriberID]; ok {
			continue
		}
		seen[sub.SubscriberID] = struct{}{}
		subscriberIDs = append(subscriberIDs, sub.SubscriberID)
	}
	summary.Eligible = len(subscriberIDs)

	if len(subscriberIDs) == 0 {
		summary.Duration = s.clock.Now().Sub(started)

		return summary, nil
	}

	cutoff := started.Add(-s.cfg.AntispamWindow)
	notified, err := s.dedupRepo.FindRecentlyNotified(ctx, offer.OfferID, subscriberIDs, constants.NotificationKindOfferLive, cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check notification ledger")
	}

	targets := make([]int64, 0, len(subscriberIDs))
	for _, id := range subscriberIDs {
		if _, ok := notified[id]; ok {
			summary.Suppressed++

			continue
		}
		targets = append(targets, id)
	}

	if len(targets) == 0 {
		summary.Duration = s.clock.Now().Sub(started)

		return summary, nil
	}

	endpoints, err := s.endpointRepo.FindEnabledBySubscribers(ctx, targets)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load push endpoints")
	}

	endpointsBySubscriber := make(map[int64][]*entity.PushEndpoint, len(targets))
	for _, endpoint := range endpoints {
		endpointsBySubscriber[endpoint.SubscriberID] = append(endpointsBySubscriber[endpoint.SubscriberID], endpoint)
	}

	payload := s.buildPayload(offer)

	var sent, failed, disabled atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.Workers)

	for _, subscriberID := range targets {
		subscriberEndpoints := endpointsBySubscriber[subscriberID]
		if len(subscriberEndpoints) == 0 {
			continue
		}

		group.Go(func() error {
			delivered := false
			for _, endpoint := range subscriberEndpoints {
				switch err := s.sendOne(groupCtx, endpoint, payload); {
				case err == nil:
					delivered = true
				case errors.Is(err, service.ErrEndpointGone):
					// Terminal: retire the endpoint, no ledger entry.
					disabled.Add(1)
					if disableErr := s.endpointRepo.Disable(groupCtx, endpoint.ID); disableErr != nil {
						s.logger.Warn("Failed to disable gone endpoint",
							slog.Int64("endpoint_id", endpoint.ID),
							slog.Any("error", disableErr),
						)
					}
				default:
					failed.Add(1)
					s.logger.Warn("Push delivery failed",
						slog.Int64("offer_id", offer.OfferID),
						slog.Int64("endpoint_id", endpoint.ID),
						slog.Any("error", err),
					)
				}
			}

			if !delivered {
				return nil
			}

			sent.Add(1)
			entry := &entity.DedupEntry{
				OfferID:      offer.OfferID,
				SubscriberID: subscriberID,
				Kind:         constants.NotificationKindOfferLive,
				SentAt:       s.clock.Now(),
			}
			if err := s.dedupRepo.RecordSent(groupCtx, entry); err != nil {
				// The notification went out; a missing ledger row only risks
				// one duplicate, never a lost notification.
				s.logger.Warn("Failed to record notification send",
					slog.Int64("offer_id", offer.OfferID),
					slog.Int64("subscriber_id", subscriberID),
					slog.Any("error", err),
				)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "dispatch worker pool failed")
	}

	summary.Sent = int(sent.Load())
	summary.Failed = int(failed.Load())
	summary.Disabled = int(disabled.Load())
	summary.Duration = s.clock.Now().Sub(started)

	return summary, nil
}

func (s *dispatchService) sendOne(ctx context.Context, endpoint *entity.PushEndpoint, payload *service.PushPayload) error {
	sendCtx := ctx
	if s.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.cfg.SendTimeout)
		defer cancel()
	}

	return s.sender.Send(sendCtx, endpoint, payload)
}

func (s *dispatchService) buildPayload(offer *entity.ActivatedOffer) *service.PushPayload {
	return &service.PushPayload{
		Title: offer.Title,
		Body:  fmt.Sprintf("%s is live now. Grab it before it's gone.", offer.Title),
		Icon:  "/icons/offer.png",
		Badge: "/icons/badge.png",
		Data: service.PushData{
			Type:       constants.NotificationKindOfferLive,
			OfferID:    offer.OfferID,
			BusinessID: offer.VendorID,
			URL:        fmt.Sprintf("%s/offers/%d", s.cfg.OfferURLBase, offer.OfferID),
		},
	}
}
