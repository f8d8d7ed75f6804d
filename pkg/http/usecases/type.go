package usecases

import (
	"github.com/lintang-b-s/geo-aggregator/pkg/cluster"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
)

type Aggregator interface {
	Aggregate(points []datastructure.GeoPoint, radius float64) (*cluster.Result, error)
	Options() cluster.Options
}

type RunStore interface {
	SaveRun(run datastructure.AggregationRun) error
	GetRun(id string) (datastructure.AggregationRun, error)
}
