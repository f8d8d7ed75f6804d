package cluster

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/lintang-b-s/geo-aggregator/pkg"
	"github.com/lintang-b-s/geo-aggregator/pkg/concurrent"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
	"github.com/lintang-b-s/geo-aggregator/pkg/geo"

	"go.uber.org/zap"
)

// SpatialIndex answers radius queries without false negatives. false positives are filtered by the engine.
type SpatialIndex interface {
	Candidates(center datastructure.CartesianPoint, radius float64) []int
}

// Cluster. one aggregated group.
type Cluster struct {
	GroupID int
	Lon     float64
	Lat     float64
	// Seed is the original index of the point that started the group. for the component strategies it is the lowest member index.
	Seed int
	// Members are the original indices of all points in the group, ascending.
	Members []int
}

type Result struct {
	// Clusters ordered by GroupID, GroupID starts at 1.
	Clusters   []Cluster
	Reference  geo.Reference
	InputCount int
}

// ByGroupID. group id -> cluster.
func (r *Result) ByGroupID() map[int]Cluster {
	res := make(map[int]Cluster, len(r.Clusters))
	for _, c := range r.Clusters {
		res[c.GroupID] = c
	}
	return res
}

// Engine reduces nearby points into representative centroids. every Aggregate call allocates its own buffers & index,
// one Engine can serve concurrent calls.
type Engine struct {
	log  *zap.Logger
	opts Options
}

func NewEngine(log *zap.Logger, opts Options) *Engine {
	if opts.CollinearEpsilon <= 0 {
		opts.CollinearEpsilon = datastructure.DEFAULT_COLLINEAR_EPSILON
	}
	if opts.Workers < 1 {
		opts.Workers = DefaultOptions().Workers
	}
	return &Engine{log: log, opts: opts}
}

func (e *Engine) Options() Options {
	return e.opts
}

// aggregation holds the state of one Aggregate call.
type aggregation struct {
	points   []datastructure.CartesianPoint
	ref      geo.Reference
	radius   float64
	progress ProgressReporter
}

// Aggregate groups points within radius meters & returns one representative per group.
// radius 0 makes every point its own group. negative or non finite radius returns ErrInvalidRadius.
func (e *Engine) Aggregate(points []datastructure.GeoPoint, radius float64) (*Result, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return nil, pkg.WrapErrorf(ErrInvalidRadius, pkg.ErrBadParamInput, "radius must be a finite number >= 0, got %v", radius)
	}

	start := time.Now()
	if len(points) == 0 {
		return &Result{Clusters: []Cluster{}}, nil
	}

	if extent := geo.Extent(points); extent > geo.MaxLocalExtentMeters {
		e.log.Warn("input extent exceeds the local projection range, distances are approximate",
			zap.Float64("extent_m", extent), zap.Float64("max_extent_m", geo.MaxLocalExtentMeters))
	}

	cartesianPoints, ref := geo.ToCartesian(points)
	agg := &aggregation{
		points:   cartesianPoints,
		ref:      ref,
		radius:   radius,
		progress: newSafeProgress(e.opts.Progress),
	}

	var clusters []Cluster
	if radius == 0 {
		// a grid with cell size 0 is undefined. every point only passes the self distance test.
		clusters = e.singletons(agg)
	} else {
		index := e.buildIndex(agg)
		switch e.opts.Strategy {
		case ConnectedComponentsStrategy:
			clusters = e.connectedComponents(agg, index)
		case ParallelComponentsStrategy:
			clusters = e.parallelComponents(agg, index)
		default:
			clusters = e.star(agg, index)
		}
	}

	e.log.Info("aggregation finished",
		zap.String("strategy", e.opts.Strategy.String()),
		zap.Int("input_count", len(points)),
		zap.Int("output_count", len(clusters)),
		zap.Float64("radius_m", radius),
		zap.Duration("duration", time.Since(start)))

	return &Result{Clusters: clusters, Reference: ref, InputCount: len(points)}, nil
}

func (e *Engine) buildIndex(agg *aggregation) SpatialIndex {
	if e.opts.Index == RtreeIndex {
		rt := datastructure.NewRtree(agg.points, datastructure.DEFAULT_RTREE_MAX_CHILD_ITEMS)
		e.log.Debug("spatial index built", zap.String("index", RtreeIndex.String()), zap.Int("points", rt.Size()))
		return rt
	}

	// cell size = radius keeps the candidate block at 5x5 cells.
	grid := datastructure.NewSpatialGridFromPoints(agg.points, agg.radius)
	e.log.Debug("spatial index built", zap.String("index", GridIndex.String()), zap.Int("cells", grid.CellCount()))
	return grid
}

// star. every point is visited in input order, an unprocessed point becomes the seed of a new group and takes every
// unprocessed point within radius of itself. membership is only tested against the seed.
func (e *Engine) star(agg *aggregation, index SpatialIndex) []Cluster {
	n := len(agg.points)
	radiusSquared := agg.radius * agg.radius
	processed := make([]bool, n)

	clusters := []Cluster{}
	for i := 0; i < n; i++ {
		if processed[i] {
			continue
		}

		seed := agg.points[i]
		candidates := index.Candidates(seed, agg.radius)

		groupPoints := make([]datastructure.CartesianPoint, 0, len(candidates))
		groupIndices := make([]int, 0, len(candidates))
		for _, j := range candidates {
			if processed[j] {
				continue
			}
			if datastructure.SquaredDistance(seed, agg.points[j]) <= radiusSquared {
				groupPoints = append(groupPoints, agg.points[j])
				groupIndices = append(groupIndices, j)
			}
		}

		if len(groupIndices) == 0 {
			// the seed always passes its own zero distance test.
			processed[i] = true
			continue
		}

		for _, idx := range groupIndices {
			processed[idx] = true
		}
		agg.progress.Add(len(groupIndices))

		clusters = append(clusters, e.newCluster(agg, len(clusters)+1, i, groupIndices, groupPoints))
	}
	return clusters
}

func (e *Engine) singletons(agg *aggregation) []Cluster {
	clusters := make([]Cluster, 0, len(agg.points))
	for i, p := range agg.points {
		clusters = append(clusters, e.newCluster(agg, i+1, i, []int{i}, []datastructure.CartesianPoint{p}))
	}
	agg.progress.Add(len(agg.points))
	return clusters
}

// connectedComponents unions every pair within radius. i < j pairs only, the relation is symmetric.
func (e *Engine) connectedComponents(agg *aggregation, index SpatialIndex) []Cluster {
	ds := datastructure.NewDisjointSet(len(agg.points))
	radiusSquared := agg.radius * agg.radius

	for i, p := range agg.points {
		for _, j := range index.Candidates(p, agg.radius) {
			if j <= i {
				continue
			}
			if datastructure.SquaredDistance(p, agg.points[j]) <= radiusSquared {
				ds.Union(i, j)
			}
		}
	}
	agg.progress.Add(len(agg.points))

	return e.collectComponents(agg, ds.Find)
}

type partitionJob struct {
	start, end int
}

// parallelComponents splits the index range into contiguous partitions scanned by a worker pool. the index is read only,
// all writes go to the concurrent disjoint set. the resulting components do not depend on scheduling.
func (e *Engine) parallelComponents(agg *aggregation, index SpatialIndex) []Cluster {
	n := len(agg.points)
	ds := datastructure.NewConcurrentDisjointSet(n)
	radiusSquared := agg.radius * agg.radius

	partitions := e.opts.Workers * 4
	partitionSize := (n + partitions - 1) / partitions

	worker := concurrent.NewBackgroundWorker[partitionJob, int](e.opts.Workers, partitions,
		func(job partitionJob) int {
			edges := 0
			for i := job.start; i < job.end; i++ {
				p := agg.points[i]
				for _, j := range index.Candidates(p, agg.radius) {
					if j <= i {
						continue
					}
					if datastructure.SquaredDistance(p, agg.points[j]) <= radiusSquared {
						ds.Union(i, j)
						edges++
					}
				}
			}
			agg.progress.Add(job.end - job.start)
			return edges
		})

	worker.Start()
	for start := 0; start < n; start += partitionSize {
		worker.TriggerProcessing(partitionJob{start: start, end: min(start+partitionSize, n)})
	}
	edges := 0
	for _, partitionEdges := range worker.Close() {
		edges += partitionEdges
	}
	e.log.Debug("parallel edge scan finished", zap.Int("workers", e.opts.Workers), zap.Int("edges", edges))

	return e.collectComponents(agg, ds.Find)
}

// collectComponents assigns group ids in order of the lowest member index.
func (e *Engine) collectComponents(agg *aggregation, find func(int) int) []Cluster {
	groupOfRoot := make(map[int]int)
	groups := [][]int{}
	for i := range agg.points {
		root := find(i)
		g, ok := groupOfRoot[root]
		if !ok {
			g = len(groups)
			groupOfRoot[root] = g
			groups = append(groups, []int{})
		}
		groups[g] = append(groups[g], i)
	}

	clusters := make([]Cluster, 0, len(groups))
	for g, members := range groups {
		groupPoints := make([]datastructure.CartesianPoint, len(members))
		for k, idx := range members {
			groupPoints[k] = agg.points[idx]
		}
		clusters = append(clusters, e.newCluster(agg, g+1, members[0], members, groupPoints))
	}
	return clusters
}

func (e *Engine) newCluster(agg *aggregation, groupID, seed int, members []int, groupPoints []datastructure.CartesianPoint) Cluster {
	centroid := e.representative(groupPoints)
	geographic := geo.ToGeographic(centroid, agg.ref)

	sortedMembers := make([]int, len(members))
	copy(sortedMembers, members)
	sort.Ints(sortedMembers)

	return Cluster{
		GroupID: groupID,
		Lon:     geographic.Lon,
		Lat:     geographic.Lat,
		Seed:    seed,
		Members: sortedMembers,
	}
}

// representative. mean of the convex hull vertices for 3 or more points, plain mean otherwise.
func (e *Engine) representative(groupPoints []datastructure.CartesianPoint) datastructure.CartesianPoint {
	if len(groupPoints) >= 3 {
		hull := datastructure.ConvexHull(groupPoints, e.opts.CollinearEpsilon)
		if len(hull) > 0 {
			return datastructure.Centroid(hull)
		}
	}
	return datastructure.Centroid(groupPoints)
}

type safeProgress struct {
	sync.Mutex
	progress ProgressReporter
}

func newSafeProgress(progress ProgressReporter) *safeProgress {
	return &safeProgress{progress: progress}
}

func (s *safeProgress) Add(num int) error {
	if s.progress == nil {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	return s.progress.Add(num)
}
