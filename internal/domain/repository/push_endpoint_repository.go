package repository

import (
	"context"
	"errors"

	"graze/internal/domain/entity"
)

// ErrPushEndpointNotFound is returned when a push endpoint does not exist.
var ErrPushEndpointNotFound = errors.New("push endpoint not found")

// PushEndpointRepository manages subscriber delivery addresses.
type PushEndpointRepository interface {
	// FindEnabledBySubscribers returns the enabled endpoints for the given
	// subscribers. Subscribers without an enabled endpoint are absent from
	// the result.
	FindEnabledBySubscribers(ctx context.Context, subscriberIDs []int64) ([]*entity.PushEndpoint, error)

	// Disable permanently disables an endpoint after the transport reported
	// it gone. Disabling an already-disabled endpoint is a no-op.
	Disable(ctx context.Context, id int64) error
}
