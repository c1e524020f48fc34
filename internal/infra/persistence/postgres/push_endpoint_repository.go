package postgres

import (
	"context"

	"graze/internal/domain/entity"
	"graze/internal/domain/repository"
	"graze/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pushEndpointRepository implements the repository.PushEndpointRepository interface.
type pushEndpointRepository struct {
	db *gorm.DB
}

// NewPushEndpointRepository is the constructor for pushEndpointRepository.
func NewPushEndpointRepository(db *gorm.DB) repository.PushEndpointRepository {
	return &pushEndpointRepository{
		db: db,
	}
}

// FindEnabledBySubscribers retrieves the enabled endpoints for the given subscribers.
func (repo *pushEndpointRepository) FindEnabledBySubscribers(ctx context.Context, subscriberIDs []int64) ([]*entity.PushEndpoint, error) {
	if len(subscriberIDs) == 0 {
		return []*entity.PushEndpoint{}, nil
	}

	var endpointModels []*model.PushEndpointModel

	if err := repo.db.WithContext(ctx).
		Where("subscriber_id IN ? AND enabled = ?", subscriberIDs, true).
		Find(&endpointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled push endpoints")
	}

	endpoints := make([]*entity.PushEndpoint, 0, len(endpointModels))
	for _, endpointM := range endpointModels {
		endpoints = append(endpoints, toPushEndpointDomain(endpointM))
	}

	return endpoints, nil
}

// Disable permanently disables an endpoint. Disabling an endpoint that is
// already disabled or gone is a no-op, so concurrent dispatchers reporting
// the same dead endpoint do not fail.
func (repo *pushEndpointRepository) Disable(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PushEndpointModel{}).
		Where("id = ?", id).
		Update("enabled", false).Error; err != nil {
		return errors.Wrap(err, "failed to disable push endpoint")
	}

	return nil
}

// --- Mapper Functions ---

// toPushEndpointDomain converts a GORM PushEndpointModel to a domain PushEndpoint entity.
func toPushEndpointDomain(data *model.PushEndpointModel) *entity.PushEndpoint {
	if data == nil {
		return nil
	}

	return &entity.PushEndpoint{
		ID:           data.ID,
		SubscriberID: data.SubscriberID,
		Enabled:      data.Enabled,
		Transport:    data.Transport,
		Blob:         data.Blob,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
