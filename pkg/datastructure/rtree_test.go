package datastructure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func traverseRtreeAndTestIfBoundingBoxCorrect(node *RtreeNode, countLeaf *int, t *testing.T) {
	maxBB := node.Items[0].getBound()
	for _, item := range node.Items {
		maxBB = stretch(maxBB, item.getBound())
		if node.IsLeaf {
			*countLeaf++
		} else {
			traverseRtreeAndTestIfBoundingBoxCorrect(item, countLeaf, t)
		}
	}

	if !node.Bound.isBBSame(maxBB) {
		t.Errorf("Bounding box not same")
	}
}

func randomPoints(n int, seed uint64, extent float64) []CartesianPoint {
	rng := rand.New(rand.NewSource(seed))
	points := make([]CartesianPoint, n)
	for i := 0; i < n; i++ {
		points[i] = NewCartesianPoint(rng.Float64()*2*extent-extent, rng.Float64()*2*extent-extent, i, i)
	}
	return points
}

func TestNewRtree(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		maxChildItems int
	}{
		{name: "single point", n: 1, maxChildItems: 16},
		{name: "one leaf", n: 10, maxChildItems: 16},
		{name: "two levels", n: 200, maxChildItems: 16},
		{name: "three levels", n: 1000, maxChildItems: 8},
		{name: "invalid fanout falls back to default", n: 100, maxChildItems: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := randomPoints(tt.n, 42, 1000)
			rt := NewRtree(points, tt.maxChildItems)
			assert.Equal(t, tt.n, rt.Size())

			countLeaf := 0
			traverseRtreeAndTestIfBoundingBoxCorrect(rt.Root, &countLeaf, t)
			assert.Equal(t, tt.n, countLeaf)
		})
	}

	t.Run("empty", func(t *testing.T) {
		rt := NewRtree(nil, 16)
		assert.Equal(t, 0, rt.Size())
		assert.Empty(t, rt.Candidates(NewCartesianPoint(0, 0, 0, 0), 100))
	})
}

func TestRtreeCandidatesNoFalseNegatives(t *testing.T) {
	points := randomPoints(2000, 7, 5000)
	rt := NewRtree(points, 16)

	for _, radius := range []float64{1, 50, 150, 1000} {
		for q := 0; q < 50; q++ {
			center := points[q*13]
			got := rt.Candidates(center, radius)

			gotSet := make(map[int]bool, len(got))
			for _, idx := range got {
				gotSet[idx] = true
			}

			for i, p := range points {
				if SquaredDistance(center, p) <= radius*radius {
					assert.True(t, gotSet[i], "point %d within %v m of query %d missing", i, radius, q*13)
				}
			}
		}
	}
}

func TestRtreeSearch(t *testing.T) {
	points := []CartesianPoint{
		NewCartesianPoint(0, 0, 0, 0),
		NewCartesianPoint(10, 10, 1, 1),
		NewCartesianPoint(10, 0, 2, 2),
		NewCartesianPoint(-5, 20, 3, 3),
		NewCartesianPoint(100, 100, 4, 4),
	}
	rt := NewRtree(points, 2)

	got := rt.Search(NewRtreeBoundingBox(2, []float64{0, 0}, []float64{10, 10}))
	sort.Ints(got)
	// boundary points are included
	assert.Equal(t, []int{0, 1, 2}, got)

	got = rt.Search(NewRtreeBoundingBox(2, []float64{200, 200}, []float64{300, 300}))
	assert.Empty(t, got)
}
