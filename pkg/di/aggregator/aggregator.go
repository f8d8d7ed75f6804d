package aggregator_di

import (
	"runtime"

	"github.com/lintang-b-s/geo-aggregator/pkg/cluster"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
	"github.com/lintang-b-s/geo-aggregator/pkg/di/config"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New(_ *config.Config, log *zap.Logger) (*cluster.Engine, error) {
	viper.SetDefault("AGGREGATE_STRATEGY", cluster.StarStrategy.String())
	viper.SetDefault("SPATIAL_INDEX", cluster.GridIndex.String())
	viper.SetDefault("HULL_COLLINEAR_EPSILON", datastructure.DEFAULT_COLLINEAR_EPSILON)
	viper.SetDefault("AGGREGATE_WORKERS", runtime.GOMAXPROCS(0))

	strategy, err := cluster.ParseStrategy(viper.GetString("AGGREGATE_STRATEGY"))
	if err != nil {
		return nil, err
	}
	index, err := cluster.ParseIndexType(viper.GetString("SPATIAL_INDEX"))
	if err != nil {
		return nil, err
	}

	opts := cluster.DefaultOptions()
	opts.Strategy = strategy
	opts.Index = index
	opts.CollinearEpsilon = viper.GetFloat64("HULL_COLLINEAR_EPSILON")
	opts.Workers = viper.GetInt("AGGREGATE_WORKERS")

	log.Info("aggregation engine configured",
		zap.String("strategy", strategy.String()),
		zap.String("spatial_index", index.String()),
		zap.Int("workers", opts.Workers))

	return cluster.NewEngine(log, opts), nil
}
