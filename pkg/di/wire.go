//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/geo-aggregator/pkg/cluster"
	aggregator_di "github.com/lintang-b-s/geo-aggregator/pkg/di/aggregator"
	"github.com/lintang-b-s/geo-aggregator/pkg/di/config"
	shortcontext "github.com/lintang-b-s/geo-aggregator/pkg/di/context"
	kv_di "github.com/lintang-b-s/geo-aggregator/pkg/di/kv"
	logger_di "github.com/lintang-b-s/geo-aggregator/pkg/di/logger"
	aggregateHttp "github.com/lintang-b-s/geo-aggregator/pkg/http"
	"github.com/lintang-b-s/geo-aggregator/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/geo-aggregator/pkg/http/usecases"
	"github.com/lintang-b-s/geo-aggregator/pkg/kvdb"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	aggregator_di.New,
	wire.Bind(new(usecases.Aggregator), new(*cluster.Engine)),
	wire.Bind(new(usecases.RunStore), new(*kvdb.KVDB)),
)

var aggregatorSet = wire.NewSet(
	defaultSet,
	NewAggregationService,
	NewAggregateAPIServer,
)

func NewAggregationService(log *zap.Logger, aggregator usecases.Aggregator, store usecases.RunStore) controllers.AggregationService {
	return usecases.New(log, aggregator, store)
}

func NewAggregateAPIServer(ctx context.Context, log *zap.Logger,
	aggregationService controllers.AggregationService) (*aggregateHttp.Server, error) {
	api := aggregateHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, aggregationService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeAggregatorService() (*aggregateHttp.Server, func(), error) {

	panic(wire.Build(aggregatorSet))
}
