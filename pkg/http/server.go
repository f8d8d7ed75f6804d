package http

import (
	"context"

	http_router "github.com/lintang-b-s/geo-aggregator/pkg/http/http-router"
	"github.com/lintang-b-s/geo-aggregator/pkg/http/http-router/controllers"
	http_server "github.com/lintang-b-s/geo-aggregator/pkg/http/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log  *zap.Logger
	wait func() error
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	aggregationService controllers.AggregationService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "300s")
	viper.SetDefault("MAX_POINTS", 1000000)

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(
			gCtx, config, aggregationService, viper.GetInt("MAX_POINTS"),
		)
	})
	s.wait = g.Wait

	return s, nil

}

// Wait blocks until the API stopped, returns the error that stopped it.
func (s *Server) Wait() error {
	if s.wait == nil {
		return nil
	}
	return s.wait()
}
