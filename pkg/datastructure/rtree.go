package datastructure

import (
	"math"
	"sort"
)

// static r-tree over cartesian points, bulk loaded with sort-tile-recursive packing.
// https://archive.org/details/nasa_techdoc_19970016975 (STR: A Simple and Efficient Algorithm for R-Tree Packing)
// the tree is built once per aggregation call and only queried afterwards, so there is no insert/split/reinsert.

const (
	DEFAULT_RTREE_MAX_CHILD_ITEMS = 16
)

type RtreeBoundingBox struct {
	// number of dimensions
	Dim int
	// Edges[i][0] = low value, Edges[i][1] = high value
	// i = 0,...,Dim
	Edges [][2]float64
}

func NewRtreeBoundingBox(dim int, minVal []float64, maxVal []float64) RtreeBoundingBox {
	b := RtreeBoundingBox{Dim: dim, Edges: make([][2]float64, dim)}
	for axis := 0; axis < dim; axis++ {
		b.Edges[axis] = [2]float64{minVal[axis], maxVal[axis]}
	}

	return b
}

func pointBound(p CartesianPoint) RtreeBoundingBox {
	return NewRtreeBoundingBox(2, []float64{p.X, p.Y}, []float64{p.X, p.Y})
}

// stretch returns the smallest box containing both b and bb.
func stretch(b RtreeBoundingBox, bb RtreeBoundingBox) RtreeBoundingBox {
	newBB := NewRtreeBoundingBox(b.Dim, make([]float64, b.Dim), make([]float64, b.Dim))
	for axis := 0; axis < b.Dim; axis++ {
		newBB.Edges[axis][0] = math.Min(b.Edges[axis][0], bb.Edges[axis][0])
		newBB.Edges[axis][1] = math.Max(b.Edges[axis][1], bb.Edges[axis][1])
	}
	return newBB
}

// intersects checks if two bounding boxes share at least one point. edges touching count, points are zero area boxes.
func intersects(b RtreeBoundingBox, bb RtreeBoundingBox) bool {
	for axis := 0; axis < b.Dim; axis++ {
		if b.Edges[axis][0] > bb.Edges[axis][1] || bb.Edges[axis][0] > b.Edges[axis][1] {
			return false
		}
	}

	return true
}

// isBBSame determines if two bounding boxes are identical
func (b *RtreeBoundingBox) isBBSame(bb RtreeBoundingBox) bool {
	for axis := 0; axis < b.Dim; axis++ {
		if b.Edges[axis][0] != bb.Edges[axis][0] || b.Edges[axis][1] != bb.Edges[axis][1] {
			return false
		}
	}

	return true
}

type RtreeNode struct {
	Bound  RtreeBoundingBox
	Items  []*RtreeNode
	IsLeaf bool
	// Index of the point in the input slice, only set on leaf entries.
	Index int
}

func (node *RtreeNode) getBound() RtreeBoundingBox {
	return node.Bound
}

type Rtree struct {
	Root          *RtreeNode
	maxChildItems int
	size          int
}

// NewRtree bulk loads points. the index of every leaf entry is the position of the point in points.
func NewRtree(points []CartesianPoint, maxChildItems int) *Rtree {
	if maxChildItems < 2 {
		maxChildItems = DEFAULT_RTREE_MAX_CHILD_ITEMS
	}
	rt := &Rtree{maxChildItems: maxChildItems, size: len(points)}
	if len(points) == 0 {
		rt.Root = &RtreeNode{IsLeaf: true, Bound: NewRtreeBoundingBox(2, []float64{0, 0}, []float64{0, 0})}
		return rt
	}

	entries := make([]*RtreeNode, len(points))
	for i, p := range points {
		entries[i] = &RtreeNode{Bound: pointBound(p), Index: i}
	}

	level := rt.pack(entries, true)
	for len(level) > 1 {
		level = rt.pack(level, false)
	}
	rt.Root = level[0]
	return rt
}

// pack groups entries into nodes of at most maxChildItems using STR: sort by x center, cut into vertical slices,
// sort every slice by y center & cut into nodes.
func (rt *Rtree) pack(entries []*RtreeNode, leaf bool) []*RtreeNode {
	m := rt.maxChildItems
	nodeCount := int(math.Ceil(float64(len(entries)) / float64(m)))
	sliceCount := int(math.Ceil(math.Sqrt(float64(nodeCount))))
	sliceSize := sliceCount * m

	sort.SliceStable(entries, func(i, j int) bool {
		return center(entries[i].Bound, 0) < center(entries[j].Bound, 0)
	})

	nodes := make([]*RtreeNode, 0, nodeCount)
	for start := 0; start < len(entries); start += sliceSize {
		end := min(start+sliceSize, len(entries))
		slice := entries[start:end]
		sort.SliceStable(slice, func(i, j int) bool {
			return center(slice[i].Bound, 1) < center(slice[j].Bound, 1)
		})

		for nodeStart := 0; nodeStart < len(slice); nodeStart += m {
			nodeEnd := min(nodeStart+m, len(slice))
			items := make([]*RtreeNode, nodeEnd-nodeStart)
			copy(items, slice[nodeStart:nodeEnd])

			bound := items[0].Bound
			for _, item := range items[1:] {
				bound = stretch(bound, item.Bound)
			}
			nodes = append(nodes, &RtreeNode{Bound: bound, Items: items, IsLeaf: leaf})
		}
	}
	return nodes
}

func center(b RtreeBoundingBox, axis int) float64 {
	return (b.Edges[axis][0] + b.Edges[axis][1]) / 2.0
}

// Search returns the index of every point inside bound.
func (rt *Rtree) Search(bound RtreeBoundingBox) []int {
	results := []int{}
	return rt.search(rt.Root, bound, results)
}

func (rt *Rtree) search(node *RtreeNode, bound RtreeBoundingBox, results []int) []int {
	for _, e := range node.Items {
		if !intersects(e.getBound(), bound) {
			continue
		}

		if !node.IsLeaf {
			results = rt.search(e, bound, results)
			continue
		}
		results = append(results, e.Index)
	}
	return results
}

// Candidates returns every point inside the axis aligned square of half side radius around center.
// the disk of radius around center is inside that square, so there are no false negatives.
// the square is padded a little so rounding in c.X+radius cannot drop a point lying exactly on the circle.
func (rt *Rtree) Candidates(c CartesianPoint, radius float64) []int {
	r := radius + radius*1e-9 + 1e-9
	bound := NewRtreeBoundingBox(2, []float64{c.X - r, c.Y - r}, []float64{c.X + r, c.Y + r})
	return rt.Search(bound)
}

func (rt *Rtree) Size() int {
	return rt.size
}
