// Package usecase defines the application-level contracts of the service.
package usecase

import (
	"context"
	"time"
)

// ActivationSummary reports the outcome of one activation tick.
type ActivationSummary struct {
	Activated      int           `json:"activated"`       // Offers that went live this tick.
	Deactivated    int64         `json:"deactivated"`     // Offers whose window closed this tick.
	Dispatched     int           `json:"dispatched"`      // Offers whose fan-out completed without error.
	DispatchErrors int           `json:"dispatch_errors"` // Offers whose fan-out failed; retried implicitly by dedup on the next send.
	Duration       time.Duration `json:"duration"`
}

// ActivationUsecase drives the offer activation state machine. One tick scans
// for due and expired offers, flips their state and fans out notifications for
// the newly live ones.
type ActivationUsecase interface {
	// RunTick executes one activation pass. Ticks are idempotent: an offer is
	// activated and dispatched at most once regardless of tick frequency.
	RunTick(ctx context.Context) (*ActivationSummary, error)
}
