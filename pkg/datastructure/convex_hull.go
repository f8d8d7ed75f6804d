package datastructure

import "sort"

const (
	// DEFAULT_COLLINEAR_EPSILON. cross product magnitude below which two points are treated as collinear with the pivot.
	// cross products scale with the coordinate magnitude (meters^2), tune it for very small or very large extents.
	DEFAULT_COLLINEAR_EPSILON = 1e-9
)

// ConvexHull computes the convex hull of points using graham scan. vertices are returned in counter-clockwise order starting at the pivot
// (lowest y, then lowest x). collinear points on the hull boundary are dropped.
// less than 3 points are returned unchanged.
func ConvexHull(points []CartesianPoint, eps float64) []CartesianPoint {
	if len(points) < 3 {
		return points
	}

	sorted := make([]CartesianPoint, len(points))
	copy(sorted, points)

	minIdx := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Y < sorted[minIdx].Y ||
			(sorted[i].Y == sorted[minIdx].Y && sorted[i].X < sorted[minIdx].X) {
			minIdx = i
		}
	}
	sorted[0], sorted[minIdx] = sorted[minIdx], sorted[0]

	pivot := sorted[0]

	// sort by polar angle around the pivot.
	rest := sorted[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		c := cross(pivot, a, b)
		if c < eps && c > -eps {
			// collinear with pivot, nearest first
			return SquaredDistance(pivot, a) < SquaredDistance(pivot, b)
		}
		return c > 0
	})

	hull := make([]CartesianPoint, 0, len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 {
			p1 := hull[len(hull)-2]
			p2 := hull[len(hull)-1]
			if cross(p1, p2, p) <= 0 {
				// not a strict left turn
				hull = hull[:len(hull)-1]
			} else {
				break
			}
		}
		hull = append(hull, p)
	}

	return hull
}
