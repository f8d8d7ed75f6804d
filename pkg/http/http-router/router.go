package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/lintang-b-s/geo-aggregator/pkg/docs"
	"github.com/lintang-b-s/geo-aggregator/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/geo-aggregator/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/geo-aggregator/pkg/http/server"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const (
	// 1e6 points of ~60 bytes each.
	MAX_BODY_BYTES = 64 << 20
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the router & the middleware chain.
func (api *API) Handler(aggregationService controllers.AggregationService, maxPoints int) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Location", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	aggregateRoutes := controllers.New(aggregationService, api.log, maxPoints)
	aggregateRoutes.Routes(group)
	router.POST("/aggregate", aggregateRoutes.AggregateHandle())

	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorJSON(w, http.StatusNotFound, "not_found", "the requested resource could not be found")
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method_not_allowed",
			fmt.Sprintf("the %s method is not supported for this resource", r.Method))
	})

	return alice.New(corsHandler.Handler, api.recoverPanic, Labels, RealIP, Logger(api.log),
		Heartbeat("/health"), EnforceJSONHandler, MaxBodySize(MAX_BODY_BYTES)).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	aggregationService controllers.AggregationService,
	maxPoints int,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(aggregationService, maxPoints), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
