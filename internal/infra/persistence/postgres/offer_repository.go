// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"graze/internal/domain/entity"
	"graze/internal/domain/repository"
	"graze/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// activatedOfferRow is the scan target of the activation query.
type activatedOfferRow struct {
	OfferID   int64
	VendorID  int64
	Title     string
	Latitude  float64
	Longitude float64
}

// ActivateDue flips every due offer in one conditional UPDATE and returns the
// flipped rows joined with the vendor's coordinates. The predicate excludes
// offers whose whole window already elapsed, so a long outage cannot revive
// stale offers, and excludes already-active offers, so overlapping ticks flip
// each offer exactly once.
func (repo *offerRepository) ActivateDue(ctx context.Context, now time.Time) ([]*entity.ActivatedOffer, error) {
	query := `
		WITH flipped AS (
			UPDATE offers
			SET is_active = TRUE, updated_at = ?
			WHERE is_active = FALSE
			  AND publish_at <= ?
			  AND (unpublish_at IS NULL OR unpublish_at > ?)
			RETURNING id, vendor_id, title
		)
		SELECT f.id AS offer_id, f.vendor_id, f.title, v.latitude, v.longitude
		FROM flipped f
		JOIN vendors v ON v.id = f.vendor_id
	`

	var rows []*activatedOfferRow
	if err := repo.db.WithContext(ctx).
		Raw(query, now, now, now).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to activate due offers")
	}

	offers := make([]*entity.ActivatedOffer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, &entity.ActivatedOffer{
			OfferID:   row.OfferID,
			VendorID:  row.VendorID,
			Title:     row.Title,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
	}

	return offers, nil
}

// DeactivateExpired flips is_active off on every active offer whose window has
// closed.
func (repo *offerRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("is_active = ? AND unpublish_at IS NOT NULL AND unpublish_at <= ?", true, now).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": now,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate expired offers")
	}

	return result.RowsAffected, nil
}

// FindOfferByID retrieves a single offer.
func (repo *offerRepository) FindOfferByID(ctx context.Context, id int64) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Title:       data.Title,
		PublishAt:   data.PublishAt,
		UnpublishAt: data.UnpublishAt,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
