package datastructure

import "math"

// SquaredDistance. squared euclidean distance in the local frame. radius comparisons use this, no sqrt.
func SquaredDistance(p1, p2 CartesianPoint) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

func Distance(p1, p2 CartesianPoint) float64 {
	return math.Sqrt(SquaredDistance(p1, p2))
}

// cross returns the z component of (a - o) x (b - o). positive if o->a->b is a counter-clockwise turn.
func cross(o, a, b CartesianPoint) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
