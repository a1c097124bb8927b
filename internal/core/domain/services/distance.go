package services

import (
	"deliverymarket/internal/core/domain/model/kernel"
)

// EstimateDistanceKm returns the great-circle distance between two optional
// waypoint coordinates. When either endpoint is missing, the fixed
// DefaultDistanceKm estimate is returned instead of guessing; parcel fees
// priced from the default must stay reproducible.
func EstimateDistanceKm(from, to *kernel.GeoPoint) float64 {
	if from == nil || to == nil {
		return DefaultDistanceKm
	}
	return from.DistanceKmTo(*to)
}
