package postgres

import (
	"context"
	"time"

	"graze/internal/domain/entity"
	"graze/internal/domain/repository"
	"graze/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dedupRepository implements the repository.DedupRepository interface.
type dedupRepository struct {
	db *gorm.DB
}

// NewDedupRepository is the constructor for dedupRepository.
func NewDedupRepository(db *gorm.DB) repository.DedupRepository {
	return &dedupRepository{
		db: db,
	}
}

// FindRecentlyNotified returns the subscribers that already received the given
// kind for the offer after the cutoff, as a set for O(1) suppression checks.
func (repo *dedupRepository) FindRecentlyNotified(ctx context.Context, offerID int64, subscriberIDs []int64, kind string, cutoff time.Time) (map[int64]struct{}, error) {
	if len(subscriberIDs) == 0 {
		return map[int64]struct{}{}, nil
	}

	var notifiedIDs []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationDedupModel{}).
		Where("offer_id = ? AND subscriber_id IN ? AND kind = ? AND sent_at > ?", offerID, subscriberIDs, kind, cutoff).
		Pluck("subscriber_id", &notifiedIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recently notified subscribers")
	}

	notified := make(map[int64]struct{}, len(notifiedIDs))
	for _, id := range notifiedIDs {
		notified[id] = struct{}{}
	}

	return notified, nil
}

// RecordSent upserts the ledger entry for a successful send. The ON CONFLICT
// clause keeps the table at one row per (offer, subscriber, kind); a resend
// outside the anti-spam window only refreshes sent_at.
func (repo *dedupRepository) RecordSent(ctx context.Context, entry *entity.DedupEntry) error {
	dedupM := &model.NotificationDedupModel{
		OfferID:      entry.OfferID,
		SubscriberID: entry.SubscriberID,
		Kind:         entry.Kind,
		SentAt:       entry.SentAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "offer_id"},
				{Name: "subscriber_id"},
				{Name: "kind"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"sent_at"}),
		}).
		Create(dedupM).Error; err != nil {
		return errors.Wrap(err, "failed to record notification send")
	}

	return nil
}
