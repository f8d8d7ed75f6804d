package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/lintang-b-s/geo-aggregator/pkg"
	"github.com/lintang-b-s/geo-aggregator/pkg/cluster"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
	"github.com/lintang-b-s/geo-aggregator/pkg/kvdb"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AggregationService struct {
	log        *zap.Logger
	aggregator Aggregator
	store      RunStore
}

func New(log *zap.Logger, aggregator Aggregator, store RunStore) *AggregationService {
	return &AggregationService{
		log:        log,
		aggregator: aggregator,
		store:      store,
	}
}

// Aggregate validates the input, groups the points & stores the run. the returned run carries member indices.
func (s *AggregationService) Aggregate(ctx context.Context, points []datastructure.GeoPoint,
	radius float64) (datastructure.AggregationRun, error) {
	if err := cluster.ValidateInput(points, radius); err != nil {
		return datastructure.AggregationRun{}, err
	}

	if err := ctx.Err(); err != nil {
		return datastructure.AggregationRun{}, err
	}

	result, err := s.aggregator.Aggregate(points, radius)
	if err != nil {
		return datastructure.AggregationRun{}, err
	}

	opts := s.aggregator.Options()
	run := datastructure.AggregationRun{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Radius:       radius,
		Strategy:     opts.Strategy.String(),
		SpatialIndex: opts.Index.String(),
		InputCount:   result.InputCount,
		Clusters:     make([]datastructure.AggregatedPoint, len(result.Clusters)),
	}
	for i, c := range result.Clusters {
		run.Clusters[i] = datastructure.AggregatedPoint{
			GroupID: c.GroupID,
			Lon:     c.Lon,
			Lat:     c.Lat,
			Members: c.Members,
		}
	}

	if err := s.store.SaveRun(run); err != nil {
		s.log.Error("failed to save aggregation run", zap.String("run_id", run.ID), zap.Error(err))
		return datastructure.AggregationRun{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "error when saving aggregation run")
	}

	return run, nil
}

func (s *AggregationService) GetRun(ctx context.Context, id string) (datastructure.AggregationRun, error) {
	if _, err := uuid.Parse(id); err != nil {
		return datastructure.AggregationRun{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "run id %q is not a valid uuid", id)
	}
	if err := ctx.Err(); err != nil {
		return datastructure.AggregationRun{}, err
	}

	run, err := s.store.GetRun(id)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return datastructure.AggregationRun{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "aggregation run %s not found", id)
	} else if err != nil {
		return datastructure.AggregationRun{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "error when reading aggregation run %s", id)
	}
	return run, nil
}
