// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"graze/internal/domain/entity"
)

// ErrOfferNotFound is returned when an offer does not exist.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository drives the offer activation state machine. Both transitions
// are single conditional statements so repeated ticks are idempotent and a
// missed tick self-heals on the next one.
type OfferRepository interface {
	// ActivateDue flips is_active on every offer whose publish window has
	// opened and not yet closed, and returns the flipped offers joined with
	// their vendor's coordinates. Offers whose entire window elapsed before
	// this call are left untouched; they never go live.
	ActivateDue(ctx context.Context, now time.Time) ([]*entity.ActivatedOffer, error)

	// DeactivateExpired flips is_active off on every active offer whose
	// unpublish time has passed, returning the number of offers touched.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)

	// FindOfferByID retrieves a single offer.
	FindOfferByID(ctx context.Context, id int64) (*entity.Offer, error)
}
