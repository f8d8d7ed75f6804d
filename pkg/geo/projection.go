package geo

import (
	"math"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
)

// local tangent plane (equirectangular) projection centered at the mean of the input coordinates.
// x = R * (lon - refLon) * pi/180 * cos(refLat), y = R * (lat - refLat) * pi/180
// only accurate for extents of tens of kilometers. there is no antimeridian wrap and no polar handling.

// Reference is the tangent point of the projection, in degrees.
type Reference struct {
	Lon float64
	Lat float64
}

// NewReference returns the arithmetic mean of all input coordinates. empty input returns the zero reference.
func NewReference(points []datastructure.GeoPoint) Reference {
	if len(points) == 0 {
		return Reference{}
	}

	refLon, refLat := 0.0, 0.0
	for _, p := range points {
		refLon += p.Lon
		refLat += p.Lat
	}
	n := float64(len(points))
	return Reference{Lon: refLon / n, Lat: refLat / n}
}

// ToCartesian projects points into the local frame around their mean. OriginalIndex of the i-th output point is i.
func ToCartesian(points []datastructure.GeoPoint) ([]datastructure.CartesianPoint, Reference) {
	ref := NewReference(points)
	if len(points) == 0 {
		return []datastructure.CartesianPoint{}, ref
	}
	return ToCartesianWithReference(points, ref), ref
}

func ToCartesianWithReference(points []datastructure.GeoPoint, ref Reference) []datastructure.CartesianPoint {
	cosRefLat := math.Cos(degToRad(ref.Lat))

	cartesianPoints := make([]datastructure.CartesianPoint, len(points))
	for i, p := range points {
		x := EARTH_RADIUS_M * (p.Lon - ref.Lon) * math.Pi / 180.0 * cosRefLat
		y := EARTH_RADIUS_M * (p.Lat - ref.Lat) * math.Pi / 180.0
		cartesianPoints[i] = datastructure.NewCartesianPoint(x, y, p.ID, i)
	}
	return cartesianPoints
}

// ToGeographic is the inverse of ToCartesian for the same reference.
func ToGeographic(p datastructure.CartesianPoint, ref Reference) datastructure.GeoPoint {
	cosRefLat := math.Cos(degToRad(ref.Lat))

	lon := ref.Lon + radToDeg(p.X/(EARTH_RADIUS_M*cosRefLat))
	lat := ref.Lat + radToDeg(p.Y/EARTH_RADIUS_M)

	return datastructure.NewGeoPoint(lon, lat, p.ID)
}
