// Package service defines contracts implemented by infrastructure adapters.
package service

import (
	"context"
	"errors"

	"graze/internal/domain/entity"
)

// ErrEndpointGone is returned by a PushSender when the transport reports the
// endpoint no longer exists (unregistered token, expired subscription). The
// failure is terminal: the caller disables the endpoint and never retries.
var ErrEndpointGone = errors.New("push endpoint gone")

// PushData is the structured payload consumed by client apps for routing.
type PushData struct {
	Type       string `json:"type"`
	OfferID    int64  `json:"offerId"`
	BusinessID int64  `json:"businessId"`
	URL        string `json:"url"`
}

// PushPayload is the wire contract of a single push notification.
type PushPayload struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Icon  string   `json:"icon"`
	Badge string   `json:"badge"`
	Data  PushData `json:"data"`
}

// PushSender delivers one payload to one endpoint. Implementations map their
// transport's terminal "not found"/"expired" conditions onto ErrEndpointGone;
// every other failure is transient from the caller's point of view.
type PushSender interface {
	Send(ctx context.Context, endpoint *entity.PushEndpoint, payload *PushPayload) error
}
