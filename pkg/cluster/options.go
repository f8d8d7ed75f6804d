package cluster

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
)

// Strategy decides how points are grouped.
type Strategy int

const (
	// StarStrategy. single forward pass, every unprocessed point within radius of the seed joins the seed's group.
	// depends on input order.
	StarStrategy Strategy = iota
	// ConnectedComponentsStrategy. groups are the connected components of the "within radius" graph.
	// chains of close points end up in one group.
	ConnectedComponentsStrategy
	// ParallelComponentsStrategy. same groups as ConnectedComponentsStrategy, edges are found by a worker pool
	// & merged into a concurrent disjoint set.
	ParallelComponentsStrategy
)

func (s Strategy) String() string {
	switch s {
	case StarStrategy:
		return "star"
	case ConnectedComponentsStrategy:
		return "components"
	case ParallelComponentsStrategy:
		return "parallel"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "star":
		return StarStrategy, nil
	case "components":
		return ConnectedComponentsStrategy, nil
	case "parallel":
		return ParallelComponentsStrategy, nil
	default:
		return StarStrategy, fmt.Errorf("unknown aggregation strategy %q, expected star, components or parallel", s)
	}
}

// IndexType selects the spatial index used for radius queries.
type IndexType int

const (
	GridIndex IndexType = iota
	RtreeIndex
)

func (t IndexType) String() string {
	switch t {
	case GridIndex:
		return "grid"
	case RtreeIndex:
		return "rtree"
	default:
		return fmt.Sprintf("index(%d)", int(t))
	}
}

func ParseIndexType(s string) (IndexType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return GridIndex, nil
	case "rtree":
		return RtreeIndex, nil
	default:
		return GridIndex, fmt.Errorf("unknown spatial index %q, expected grid or rtree", s)
	}
}

// ProgressReporter receives the number of points that got assigned to a group. *progressbar.ProgressBar satisfies it.
type ProgressReporter interface {
	Add(num int) error
}

type Options struct {
	Strategy Strategy
	Index    IndexType
	// CollinearEpsilon for the convex hull angular sort, in meters^2.
	CollinearEpsilon float64
	// Workers used by ParallelComponentsStrategy.
	Workers  int
	Progress ProgressReporter
}

func DefaultOptions() Options {
	return Options{
		Strategy:         StarStrategy,
		Index:            GridIndex,
		CollinearEpsilon: datastructure.DEFAULT_COLLINEAR_EPSILON,
		Workers:          runtime.GOMAXPROCS(0),
	}
}
