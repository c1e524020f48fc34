package geo

import (
	"testing"

	"graze/internal/domain/constants"
	"graze/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func ptrInt64(v int64) *int64 { return &v }

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Paris (2.3522E, 48.8566N) to London (0.1278W, 51.5074N) is roughly 344 km.
	paris := orb.Point{2.3522, 48.8566}
	london := orb.Point{-0.1278, 51.5074}

	assert.InDelta(t, 343.5, DistanceKm(paris, london), 1.5)
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	p := orb.Point{121.5654, 25.0330}

	assert.Zero(t, DistanceKm(p, p))
}

func TestFilterEligible_AreaBoundaryIncluded(t *testing.T) {
	origin := orb.Point{0, 0}
	center := orb.Point{0.05, 0}
	exact := DistanceKm(origin, center)

	onBoundary := &entity.OfferSubscription{
		ID:        1,
		Scope:     constants.ScopeArea,
		Latitude:  ptrFloat(center.Lat()),
		Longitude: ptrFloat(center.Lon()),
		RadiusKm:  exact,
		IsActive:  true,
	}
	justBeyond := &entity.OfferSubscription{
		ID:        2,
		Scope:     constants.ScopeArea,
		Latitude:  ptrFloat(center.Lat()),
		Longitude: ptrFloat(center.Lon()),
		RadiusKm:  exact - 0.001,
		IsActive:  true,
	}

	eligible := FilterEligible(origin, []*entity.OfferSubscription{onBoundary, justBeyond})

	require.Len(t, eligible, 1)
	assert.Equal(t, int64(1), eligible[0].ID)
}

func TestFilterEligible_NonAreaScopesPassThrough(t *testing.T) {
	origin := orb.Point{0, 0}
	candidates := []*entity.OfferSubscription{
		{ID: 1, Scope: constants.ScopeOffer, ScopeID: ptrInt64(42), IsActive: true},
		{ID: 2, Scope: constants.ScopeBusiness, ScopeID: ptrInt64(7), IsActive: true},
	}

	eligible := FilterEligible(origin, candidates)

	assert.Len(t, eligible, 2)
}

func TestFilterEligible_AreaWithoutCoordinatesSkipped(t *testing.T) {
	origin := orb.Point{0, 0}
	candidates := []*entity.OfferSubscription{
		{ID: 1, Scope: constants.ScopeArea, RadiusKm: 5, IsActive: true},
	}

	eligible := FilterEligible(origin, candidates)

	assert.Empty(t, eligible)
}
