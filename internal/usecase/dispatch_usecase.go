package usecase

import (
	"context"
	"time"

	"graze/internal/domain/entity"
)

// DispatchSummary reports the outcome of one offer fan-out.
type DispatchSummary struct {
	Candidates int           `json:"candidates"` // Subscriptions matched by scope.
	Eligible   int           `json:"eligible"`   // Subscribers left after the geographic filter.
	Suppressed int           `json:"suppressed"` // Subscribers inside the anti-spam window.
	Sent       int           `json:"sent"`       // Successful deliveries.
	Failed     int           `json:"failed"`     // Transient delivery failures.
	Disabled   int           `json:"disabled"`   // Endpoints disabled because the transport reported them gone.
	Duration   time.Duration `json:"duration"`
}

// DispatchUsecase fans one activated offer out to its eligible subscribers:
// scope matching, geographic filtering, anti-spam suppression and the actual
// push delivery.
type DispatchUsecase interface {
	// DispatchOfferLive notifies every eligible subscriber that the offer went
	// live. Individual delivery failures never fail the batch.
	DispatchOfferLive(ctx context.Context, offer *entity.ActivatedOffer) (*DispatchSummary, error)
}
