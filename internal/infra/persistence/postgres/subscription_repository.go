package postgres

import (
	"context"

	"graze/internal/domain/constants"
	"graze/internal/domain/entity"
	"graze/internal/domain/repository"
	"graze/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindNotifiableSubscriptions returns the candidate subscriptions for an
// activated offer. Offer and business scopes are matched in SQL; area scope
// rows are returned wholesale because the distance filter runs in the
// dispatcher. Subscribers without an enabled push endpoint are excluded up
// front so the fan-out never loads undeliverable rows.
func (repo *subscriptionRepository) FindNotifiableSubscriptions(ctx context.Context, offerID, vendorID int64) ([]*entity.OfferSubscription, error) {
	var subscriptionModels []*model.OfferSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			repo.db.
				Where("scope = ? AND scope_id = ?", constants.ScopeOffer, offerID).
				Or("scope = ? AND scope_id = ?", constants.ScopeBusiness, vendorID).
				Or("scope = ?", constants.ScopeArea),
		).
		Where("EXISTS (SELECT 1 FROM push_endpoints e WHERE e.subscriber_id = offer_subscriptions.subscriber_id AND e.enabled = TRUE)").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifiable subscriptions")
	}

	subscriptions := make([]*entity.OfferSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM OfferSubscriptionModel to a domain OfferSubscription entity.
func toSubscriptionDomain(data *model.OfferSubscriptionModel) *entity.OfferSubscription {
	if data == nil {
		return nil
	}

	return &entity.OfferSubscription{
		ID:           data.ID,
		SubscriberID: data.SubscriberID,
		Scope:        data.Scope,
		ScopeID:      data.ScopeID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusKm:     data.RadiusKm,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
