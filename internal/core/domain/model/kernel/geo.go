package kernel

import (
	"fmt"
	"math"

	"deliverymarket/internal/pkg/errs"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// GeoPoint is a value object holding a geographic coordinate pair.
// Both pickup and delivery positions across the marketplace use it.
//
// The zero value (0, 0) is a legal coordinate, so GeoPoint carries a
// constructed flag and must be created via NewGeoPoint.
type GeoPoint struct {
	latitude  float64
	longitude float64

	isConstructed bool
}

// NewGeoPoint creates a GeoPoint after validating that latitude is within
// [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	// NaN slips through plain range comparisons.
	if math.IsNaN(latitude) || latitude < minLatitude || latitude > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if math.IsNaN(longitude) || longitude < minLongitude || longitude > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}

	return GeoPoint{
		latitude:      latitude,
		longitude:     longitude,
		isConstructed: true,
	}, nil
}

// Validate ensures the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")
	}
	return nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two points hold identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String renders the point as "lat,lon" for logs and error messages.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%g,%g", p.latitude, p.longitude)
}

// DistanceKmTo computes the great-circle distance to another point in
// kilometers using the haversine formula.
func (p GeoPoint) DistanceKmTo(other GeoPoint) float64 {
	lat1 := p.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - p.latitude) * math.Pi / 180
	dLon := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
