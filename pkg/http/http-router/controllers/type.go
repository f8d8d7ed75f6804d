package controllers

import (
	"context"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
)

type AggregationService interface {
	Aggregate(ctx context.Context, points []datastructure.GeoPoint, radius float64) (datastructure.AggregationRun, error)
	GetRun(ctx context.Context, id string) (datastructure.AggregationRun, error)
}
