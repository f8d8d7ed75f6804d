package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"
	helper "github.com/lintang-b-s/geo-aggregator/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

type aggregateAPI struct {
	aggregationService AggregationService
	log                *zap.Logger
	maxPoints          int
	validate           *validator.Validate
	trans              ut.Translator
}

func New(aggregationService AggregationService, log *zap.Logger, maxPoints int) *aggregateAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &aggregateAPI{
		aggregationService: aggregationService,
		log:                log,
		maxPoints:          maxPoints,
		validate:           validate,
		trans:              trans,
	}
}

func (api *aggregateAPI) Routes(group *helper.RouteGroup) {
	group.POST("/aggregate", api.aggregate)
	group.GET("/aggregations/:id", api.getAggregation)
}

// AggregateHandle is registered outside of the /api group too.
func (api *aggregateAPI) AggregateHandle() httprouter.Handle {
	return api.aggregate
}

// pointRequest model info
//
//	@Description	one input point.
type pointRequest struct {
	OID int      `json:"oid"`                                          // caller id of the point, not used for grouping.
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"` // longitude in degrees.
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`   // latitude in degrees.
}

// aggregateRequest model info
//
//	@Description	request body for point aggregation.
type aggregateRequest struct {
	Radius *float64       `json:"radius" validate:"required,gt=0"` // grouping radius in meters.
	Points []pointRequest `json:"points" validate:"required,dive"` // points to aggregate, in order. the order decides which point seeds a group.
}

// aggregateResponse model info
//
//	@Description	response body for point aggregation.
type aggregateResponse struct {
	Status           string                                   `json:"status" example:"success"`
	RunID            string                                   `json:"run_id"`            // id of the stored run, see /api/aggregations/{id}.
	AggregatedPoints map[string]datastructure.AggregatedPoint `json:"aggregated_points"` // group id -> representative point.
	InputCount       int                                      `json:"input_count"`
	OutputCount      int                                      `json:"output_count"`
}

// aggregate godoc
// @Summary		aggregate nearby points into one representative point per group.
// @Description	every point within radius meters of a group seed joins that group. the representative is the centroid of the group's convex hull (mean for groups under 3 points).
// @Tags			aggregate
// @ID aggregate
// @Param			body	body	aggregateRequest	true	"points and radius"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/aggregate [post]
// @Success		200	{object}	aggregateResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *aggregateAPI) aggregate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request aggregateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", translateError(err, api.trans)))
		return
	}

	if api.maxPoints > 0 && len(request.Points) > api.maxPoints {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: at most %d points are allowed, got %d",
			api.maxPoints, len(request.Points)))
		return
	}

	points := make([]datastructure.GeoPoint, len(request.Points))
	for i, p := range request.Points {
		points[i] = datastructure.NewGeoPoint(*p.Lon, *p.Lat, p.OID)
	}

	run, err := api.aggregationService.Aggregate(r.Context(), points, *request.Radius)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	aggregatedPoints := make(map[string]datastructure.AggregatedPoint, len(run.Clusters))
	for _, c := range run.Clusters {
		aggregatedPoints[strconv.Itoa(c.GroupID)] = datastructure.AggregatedPoint{
			GroupID: c.GroupID,
			Lon:     c.Lon,
			Lat:     c.Lat,
		}
	}

	headers := make(http.Header)
	headers.Set("Location", "/api/aggregations/"+run.ID)

	if err := api.writeJSON(w, http.StatusOK, envelope{
		"status":            "success",
		"run_id":            run.ID,
		"aggregated_points": aggregatedPoints,
		"input_count":       run.InputCount,
		"output_count":      len(run.Clusters),
	}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getAggregationResponse model info
//
//	@Description	a stored aggregation run.
type getAggregationResponse struct {
	Status string                       `json:"status" example:"success"`
	Data   datastructure.AggregationRun `json:"data"`
}

// getAggregation godoc
// @Summary		get a stored aggregation run.
// @Description	get a stored aggregation run including the input positions of the members of every group.
// @Tags			aggregate
// @ID get-aggregation
// @Param			id	path	string	true	"run id"
// @Produce		application/json
// @Router			/api/aggregations/{id} [get]
// @Success		200	{object}	getAggregationResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *aggregateAPI) getAggregation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	run, err := api.aggregationService.GetRun(r.Context(), ps.ByName("id"))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"status": "success", "data": run}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []string) {
	if err == nil {
		return nil
	}
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	for _, e := range validatorErrs {
		errs = append(errs, e.Translate(trans))
	}
	return errs
}
