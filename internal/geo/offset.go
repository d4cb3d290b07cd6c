// Package geo converts pairs of geographic coordinates into local
// east/north meter offsets for the navigation loop.
package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"AquaRover/internal/model"
)

// Mean Earth radius in meters (IUGG).
const earthRadiusM = 6371008.8

// OffsetMeters returns the local east and north offsets in meters from a to
// b, using an equirectangular approximation. Accurate to well under the
// power-scaler deadband over the few hundred meters a waypoint leg spans.
func OffsetMeters(a, b model.Position) (east, north float64) {
	from := s2.LatLngFromDegrees(a.Lat, a.Lon)
	to := s2.LatLngFromDegrees(b.Lat, b.Lon)

	dLat := (to.Lat - from.Lat).Radians()
	dLng := (to.Lng - from.Lng).Radians()
	midLat := (from.Lat + to.Lat).Radians() / 2

	east = dLng * math.Cos(midLat) * earthRadiusM
	north = dLat * earthRadiusM
	return east, north
}

// DistanceMeters returns the straight-line distance in meters from a to b.
func DistanceMeters(a, b model.Position) float64 {
	east, north := OffsetMeters(a, b)
	return math.Hypot(east, north)
}
