package datastructure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpatialGridInsert(t *testing.T) {
	grid := NewSpatialGrid(100)

	grid.Insert(NewCartesianPoint(10, 10, 0, 0), 0)
	grid.Insert(NewCartesianPoint(99.9, 0, 1, 1), 1)
	grid.Insert(NewCartesianPoint(100, 0, 2, 2), 2)
	grid.Insert(NewCartesianPoint(-0.1, -0.1, 3, 3), 3)

	assert.Equal(t, 3, grid.CellCount())
	assert.Equal(t, []int{0, 1}, grid.cells[GridCell{X: 0, Y: 0}])
	assert.Equal(t, []int{2}, grid.cells[GridCell{X: 1, Y: 0}])
	// floor, not truncation toward zero
	assert.Equal(t, []int{3}, grid.cells[GridCell{X: -1, Y: -1}])
}

func TestSpatialGridCandidates(t *testing.T) {
	t.Run("block of cells around the center", func(t *testing.T) {
		points := []CartesianPoint{
			NewCartesianPoint(0, 0, 0, 0),
			NewCartesianPoint(150, 0, 1, 1),
			NewCartesianPoint(250, 250, 2, 2),
			// k = ceil(100/100)+1 = 2, so cell (3,0) is outside the 5x5 block
			NewCartesianPoint(350, 0, 3, 3),
			NewCartesianPoint(-199, -199, 4, 4),
		}
		grid := NewSpatialGridFromPoints(points, 100)

		got := grid.Candidates(points[0], 100)
		sort.Ints(got)
		assert.Equal(t, []int{0, 1, 2, 4}, got)
	})

	t.Run("no false negatives", func(t *testing.T) {
		points := randomPoints(3000, 99, 2000)

		for _, radius := range []float64{5, 30, 100, 400} {
			grid := NewSpatialGridFromPoints(points, radius)
			for q := 0; q < 60; q++ {
				center := points[q*31]
				got := grid.Candidates(center, radius)

				gotSet := make(map[int]bool, len(got))
				for _, idx := range got {
					assert.False(t, gotSet[idx], "index %d returned twice", idx)
					gotSet[idx] = true
				}

				for i, p := range points {
					if SquaredDistance(center, p) <= radius*radius {
						assert.True(t, gotSet[i], "point %d within %v m of query %d missing", i, radius, q*31)
					}
				}
			}
		}
	})

	t.Run("radius larger than the cell size", func(t *testing.T) {
		points := []CartesianPoint{
			NewCartesianPoint(0, 0, 0, 0),
			NewCartesianPoint(480, 0, 1, 1),
		}
		grid := NewSpatialGridFromPoints(points, 100)

		got := grid.Candidates(points[0], 500)
		sort.Ints(got)
		assert.Equal(t, []int{0, 1}, got)
	})
}
