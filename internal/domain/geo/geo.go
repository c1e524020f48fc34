// Package geo implements great-circle subscriber matching for offer
// notifications. It is pure: candidates go in, eligible subscriptions come
// out, no I/O.
package geo

import (
	"math"

	"graze/internal/domain/constants"
	"graze/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine (great-circle) distance between two
// points in kilometers. Points follow orb's (lon, lat) ordering.
func DistanceKm(a, b orb.Point) float64 {
	latA := a.Lat() * math.Pi / 180
	latB := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FilterEligible returns the subset of candidate subscriptions eligible for a
// notification originating at origin. Offer- and business-scope candidates
// were already matched by id and pass through; area-scope candidates must lie
// within their configured radius of the origin. A distance exactly equal to
// the radius is included. Area subscriptions without coordinates are skipped.
func FilterEligible(origin orb.Point, candidates []*entity.OfferSubscription) []*entity.OfferSubscription {
	eligible := make([]*entity.OfferSubscription, 0, len(candidates))
	for _, sub := range candidates {
		if sub.Scope != constants.ScopeArea {
			eligible = append(eligible, sub)

			continue
		}

		if sub.Latitude == nil || sub.Longitude == nil {
			continue
		}

		center := orb.Point{*sub.Longitude, *sub.Latitude}
		if DistanceKm(origin, center) <= sub.RadiusKm {
			eligible = append(eligible, sub)
		}
	}

	return eligible
}
