package main

import (
	"log"

	"github.com/lintang-b-s/geo-aggregator/pkg/di"

	"go.uber.org/zap"
)

//	@title			Geo Aggregator API
//	@version		1.0
//	@description	reduce nearby geographic points into one representative point per group.

//	@host		localhost:6060
//	@BasePath	/
//	@schemes	http

func main() {
	server, cleanup, err := di.InitializeAggregatorService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error("api stopped", zap.Error(err))
		cleanup()
		log.Fatal(err)
	}
	server.Log.Info("api stopped")
}
