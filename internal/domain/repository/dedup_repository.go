package repository

import (
	"context"
	"time"

	"graze/internal/domain/entity"
)

// DedupRepository is the durable anti-spam ledger. It stores at most one live
// entry per (offer, subscriber, kind) and enforces the minimum resend
// interval.
type DedupRepository interface {
	// FindRecentlyNotified returns the subscribers among subscriberIDs that
	// already received the given kind for the offer after the cutoff.
	FindRecentlyNotified(ctx context.Context, offerID int64, subscriberIDs []int64, kind string, cutoff time.Time) (map[int64]struct{}, error)

	// RecordSent upserts the ledger entry for a successful send, overwriting
	// sent_at when an entry for the key already exists.
	RecordSent(ctx context.Context, entry *entity.DedupEntry) error
}
