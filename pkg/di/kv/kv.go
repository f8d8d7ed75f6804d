package kv_di

import (
	"time"

	"github.com/lintang-b-s/geo-aggregator/pkg/di/config"
	"github.com/lintang-b-s/geo-aggregator/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func New(_ *config.Config, log *zap.Logger) (*kvdb.KVDB, func(), error) {
	viper.SetDefault("DB_PATH", "aggregation_runs.db")
	path := viper.GetString("DB_PATH")

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	log.Info("aggregation run store opened", zap.String("path", path))

	cleanup := func() {
		bboltKV.Close()
		_ = db.Close()
	}

	return bboltKV, cleanup, nil
}
