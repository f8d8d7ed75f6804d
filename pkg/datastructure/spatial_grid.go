package datastructure

import "math"

// GridCell. (floor(x/cellSize), floor(y/cellSize))
type GridCell struct {
	X int
	Y int
}

// SpatialGrid is a bucket hash over cartesian points. built once per aggregation call & read only afterwards.
type SpatialGrid struct {
	cellSize float64
	cells    map[GridCell][]int
}

// NewSpatialGrid. cellSize must be > 0.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[GridCell][]int),
	}
}

// NewSpatialGridFromPoints inserts every point with its position in points as the index.
func NewSpatialGridFromPoints(points []CartesianPoint, cellSize float64) *SpatialGrid {
	grid := NewSpatialGrid(cellSize)
	for i, p := range points {
		grid.Insert(p, i)
	}
	return grid
}

func (g *SpatialGrid) cellOf(p CartesianPoint) GridCell {
	return GridCell{
		X: int(math.Floor(p.X / g.cellSize)),
		Y: int(math.Floor(p.Y / g.cellSize)),
	}
}

func (g *SpatialGrid) Insert(p CartesianPoint, index int) {
	cell := g.cellOf(p)
	g.cells[cell] = append(g.cells[cell], index)
}

// Candidates returns the union of all buckets in the (2k+1)x(2k+1) block of cells around center, k = ceil(radius/cellSize) + 1.
// the result is a superset of the points within radius of center. caller must filter with the exact squared distance.
// cells are visited in a fixed order so the result order only depends on the insert order.
func (g *SpatialGrid) Candidates(center CartesianPoint, radius float64) []int {
	k := int(math.Ceil(radius/g.cellSize)) + 1
	centerCell := g.cellOf(center)

	candidates := []int{}
	for dx := -k; dx <= k; dx++ {
		for dy := -k; dy <= k; dy++ {
			bucket, ok := g.cells[GridCell{X: centerCell.X + dx, Y: centerCell.Y + dy}]
			if !ok {
				continue
			}
			candidates = append(candidates, bucket...)
		}
	}
	return candidates
}

func (g *SpatialGrid) CellCount() int {
	return len(g.cells)
}

func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}
