package geo

import (
	"math"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
)

type BoundingBox struct {
	min, max []float64 // lat, lon
}

func (bb *BoundingBox) GetMin() []float64 {
	return bb.min
}

func (bb *BoundingBox) GetMax() []float64 {
	return bb.max
}

func NewBoundingBox(lats, lons []float64) BoundingBox {
	min, max := []float64{lats[0], lons[0]}, []float64{lats[0], lons[0]}
	for i := 1; i < len(lats); i++ {
		if lats[i] < min[0] {
			min[0] = lats[i]
		}
		if lats[i] > max[0] {
			max[0] = lats[i]
		}
		if lons[i] < min[1] {
			min[1] = lons[i]
		}
		if lons[i] > max[1] {
			max[1] = lons[i]
		}
	}
	return BoundingBox{
		min: min,
		max: max,
	}
}

// NewBoundingBoxFromPoints. points must not be empty.
func NewBoundingBoxFromPoints(points []datastructure.GeoPoint) BoundingBox {
	lats := make([]float64, len(points))
	lons := make([]float64, len(points))
	for i, p := range points {
		lats[i] = p.Lat
		lons[i] = p.Lon
	}
	return NewBoundingBox(lats, lons)
}

func (bb *BoundingBox) Contains(lat, lon float64) bool {
	if lat < bb.min[0] || lat > bb.max[0] {
		return false
	}
	if lon < bb.min[1] || lon > bb.max[1] {
		return false
	}
	return true
}

// DiagonalMeters. haversine distance between the south west & north east corner.
func (bb *BoundingBox) DiagonalMeters() float64 {
	return HaversineDistance(bb.min[0], bb.min[1], bb.max[0], bb.max[1])
}

// Extent returns the bounding box diagonal of points in meters. 0 for empty input.
func Extent(points []datastructure.GeoPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	bb := NewBoundingBoxFromPoints(points)
	return bb.DiagonalMeters()
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}
