package datastructure

// Centroid returns the arithmetic mean of points. empty input returns the zero point.
func Centroid(points []CartesianPoint) CartesianPoint {
	if len(points) == 0 {
		return CartesianPoint{}
	}

	sumX, sumY := 0.0, 0.0
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))

	return NewCartesianPoint(sumX/n, sumY/n, 0, -1)
}
